package layout

import (
	"math"

	"github.com/matzehuels/canvas2svg/pkg/canvas"
	"github.com/matzehuels/canvas2svg/pkg/errors"
)

// DefaultPadding is the margin between the diagram and the canvas edges.
const DefaultPadding = 20.0

// Transform maps source coordinates into the output canvas.
// It is a pure translation; sizes are never scaled.
type Transform struct {
	DX, DY        float64 // Translation added to every source coordinate
	Width, Height float64 // Output canvas size
	Padding       float64 // Margin the transform was computed with
}

// Box is a node's rectangle in output coordinates.
type Box struct {
	X, Y, W, H float64
}

// CenterX returns the horizontal center of the box.
func (b Box) CenterX() float64 { return b.X + b.W/2 }

// CenterY returns the vertical center of the box.
func (b Box) CenterY() float64 { return b.Y + b.H/2 }

// Place returns n's rectangle after translation.
func (t Transform) Place(n canvas.Node) Box {
	return Box{X: n.X + t.DX, Y: n.Y + t.DY, W: n.Width, H: n.Height}
}

// Normalize computes the transform that insets the bounding box of nodes by
// padding on every side of the output canvas.
//
// Every node contributes to the bounding box, whatever its type, so that
// undrawn nodes used as edge endpoints still land on the canvas.
//
// Normalize returns an EMPTY_DOCUMENT error when nodes is empty, since no
// bounding box exists. A negative or non-finite padding, or a bounding box
// too large to represent, is an INVALID_INPUT error.
func Normalize(nodes []canvas.Node, padding float64) (Transform, error) {
	if len(nodes) == 0 {
		return Transform{}, errors.New(errors.ErrCodeEmptyDocument, "document has no nodes")
	}
	if padding < 0 || !isFinite(padding) {
		return Transform{}, errors.New(errors.ErrCodeInvalidInput, "padding must be a non-negative finite number, got %g", padding)
	}

	first := nodes[0]
	minX, minY := first.X, first.Y
	maxX, maxY := first.X+first.Width, first.Y+first.Height
	for _, n := range nodes[1:] {
		minX = min(minX, n.X)
		minY = min(minY, n.Y)
		maxX = max(maxX, n.X+n.Width)
		maxY = max(maxY, n.Y+n.Height)
	}

	t := Transform{
		DX:      -minX + padding,
		DY:      -minY + padding,
		Width:   (maxX - minX) + 2*padding,
		Height:  (maxY - minY) + 2*padding,
		Padding: padding,
	}
	for _, v := range []float64{t.DX, t.DY, t.Width, t.Height} {
		if !isFinite(v) {
			return Transform{}, errors.New(errors.ErrCodeInvalidInput,
				"canvas extent overflows: %gx%g", t.Width, t.Height)
		}
	}
	return t, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
