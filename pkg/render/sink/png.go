package sink

import (
	"bytes"

	"github.com/matzehuels/canvas2svg/pkg/render"
	"github.com/matzehuels/canvas2svg/pkg/render/scene"
)

// DefaultScale is the PNG resolution multiplier.
const DefaultScale = 2.0

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	scale float64
}

// WithScale sets the PNG scale factor (default 2.0 for 2x resolution).
func WithScale(s float64) PNGOption {
	return func(r *pngRenderer) { r.scale = s }
}

// RenderPNG renders the scene as PNG via SVG conversion.
//
// The rasterizer has no marker or text support, so the SVG handed to it is
// reduced to shapes and connector paths first.
func RenderPNG(s scene.Scene, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{scale: DefaultScale}
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	if err := WriteXML(&buf, rasterTree(s)); err != nil {
		return nil, err
	}
	return render.ToPNG(buf.Bytes(), r.scale)
}

// rasterTree is [Tree] without marker definitions, marker references, and
// text elements.
func rasterTree(s scene.Scene) *Element {
	root := Tree(s)
	kept := root.Children[:0]
	for _, c := range root.Children {
		switch c.Name {
		case "defs", "text":
			continue
		case "path":
			c.Attrs = dropAttr(c.Attrs, "marker-end")
		}
		kept = append(kept, c)
	}
	root.Children = kept
	return root
}

func dropAttr(attrs []Attr, name string) []Attr {
	out := attrs[:0]
	for _, a := range attrs {
		if a.Name != name {
			out = append(out, a)
		}
	}
	return out
}
