package layout

import "github.com/matzehuels/canvas2svg/pkg/canvas"

// Point is a position in output coordinates.
type Point struct {
	X, Y float64
}

// ResolveAnchor returns the point on n's boundary where an edge attached to
// side meets it, after translating n by (dx, dy).
//
// The four named sides map to the midpoint of that side. Any other value,
// including the empty side, maps to the center of the node.
func ResolveAnchor(n canvas.Node, side canvas.Side, dx, dy float64) Point {
	x := n.X + dx
	y := n.Y + dy
	w, h := n.Width, n.Height

	switch side {
	case canvas.SideTop:
		return Point{x + w/2, y}
	case canvas.SideBottom:
		return Point{x + w/2, y + h}
	case canvas.SideLeft:
		return Point{x, y + h/2}
	case canvas.SideRight:
		return Point{x + w, y + h/2}
	default:
		return Point{x + w/2, y + h/2}
	}
}

// Anchor resolves side of n under t.
func (t Transform) Anchor(n canvas.Node, side canvas.Side) Point {
	return ResolveAnchor(n, side, t.DX, t.DY)
}
