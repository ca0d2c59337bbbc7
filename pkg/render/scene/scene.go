package scene

import (
	"github.com/matzehuels/canvas2svg/pkg/canvas"
	"github.com/matzehuels/canvas2svg/pkg/errors"
	"github.com/matzehuels/canvas2svg/pkg/render/layout"
)

// Text anchors and baselines used by text primitives.
const (
	AnchorStart  = "start"
	AnchorMiddle = "middle"

	BaselineHanging = "hanging"
	BaselineMiddle  = "middle"
)

// Primitive is one drawing instruction. Concrete types are [Rect], [Text]
// and [Line].
type Primitive interface {
	// SourceID is the ID of the node or edge the primitive was built from.
	SourceID() string
}

// Rect is a filled, stroked rectangle.
type Rect struct {
	Source      string
	Box         layout.Box
	Radius      float64
	Fill        string
	Stroke      string
	FillOpacity float64
	StrokeWidth float64
}

// Text is a single line of text.
type Text struct {
	Source     string
	X, Y       float64
	Content    string
	Anchor     string
	Baseline   string
	FontFamily string
	FontSize   float64
}

// Line is a straight connector, optionally ending in an arrowhead.
type Line struct {
	Source      string
	From, To    layout.Point
	Stroke      string
	StrokeWidth float64
	ArrowEnd    bool
}

func (r Rect) SourceID() string { return r.Source }
func (t Text) SourceID() string { return t.Source }
func (l Line) SourceID() string { return l.Source }

// Scene is the ordered primitive list for one document. Later primitives
// are drawn on top of earlier ones.
type Scene struct {
	Transform  layout.Transform
	Primitives []Primitive
	// Skipped lists nodes that were not drawn because their type has no
	// visual representation. They still take part in layout and anchoring.
	Skipped []string
}

// Width returns the output canvas width.
func (s Scene) Width() float64 { return s.Transform.Width }

// Height returns the output canvas height.
func (s Scene) Height() float64 { return s.Transform.Height }

// Build emits the primitives for doc under t in draw order: groups, then
// text cards, then edges, each in input order.
//
// Every edge endpoint must name a node in doc. A missing endpoint aborts the
// build with a DANGLING_EDGE_REFERENCE error and no scene is returned.
func Build(doc canvas.Document, t layout.Transform, style Style) (Scene, error) {
	groups, cards := doc.Groups(), doc.Cards()
	prims := make([]Primitive, 0, 2*len(groups)+2*len(cards)+len(doc.Edges))

	for _, n := range groups {
		prims = append(prims, groupRect(n, t, style))
		if n.HasLabel() {
			prims = append(prims, groupLabel(n, t, style))
		}
	}

	for _, n := range cards {
		prims = append(prims, cardRect(n, t, style), cardText(n, t, style))
	}

	ix := canvas.NewIndex(doc.Nodes)
	for i, e := range doc.Edges {
		from, ok := ix.Lookup(e.FromNode)
		if !ok {
			return Scene{}, errors.New(errors.ErrCodeDanglingEdge,
				"edge %s: fromNode %q not found", doc.EdgeName(i), e.FromNode)
		}
		to, ok := ix.Lookup(e.ToNode)
		if !ok {
			return Scene{}, errors.New(errors.ErrCodeDanglingEdge,
				"edge %s: toNode %q not found", doc.EdgeName(i), e.ToNode)
		}
		prims = append(prims, Line{
			Source:      e.ID,
			From:        t.Anchor(from, e.FromSide),
			To:          t.Anchor(to, e.ToSide),
			Stroke:      Color(e.Color),
			StrokeWidth: style.EdgeStrokeWidth,
			ArrowEnd:    true,
		})
	}

	return Scene{Transform: t, Primitives: prims, Skipped: doc.Undrawn()}, nil
}

func groupRect(n canvas.Node, t layout.Transform, s Style) Rect {
	return Rect{
		Source:      n.ID,
		Box:         t.Place(n),
		Radius:      s.CornerRadius,
		Fill:        s.GroupFill,
		Stroke:      s.GroupStroke,
		FillOpacity: s.FillOpacity,
		StrokeWidth: s.GroupStrokeWidth,
	}
}

func groupLabel(n canvas.Node, t layout.Transform, s Style) Text {
	b := t.Place(n)
	x, y := b.X, b.Y-s.LabelOffset
	if s.LabelPlacement == LabelInside {
		x, y = b.X+s.LabelOffset, b.Y+s.LabelOffset
	}
	return Text{
		Source:     n.ID,
		X:          x,
		Y:          y,
		Content:    n.LabelText(),
		Anchor:     AnchorStart,
		Baseline:   BaselineHanging,
		FontFamily: s.FontFamily,
		FontSize:   s.FontSize,
	}
}

func cardRect(n canvas.Node, t layout.Transform, s Style) Rect {
	c := Color(n.Color)
	return Rect{
		Source:      n.ID,
		Box:         t.Place(n),
		Radius:      s.CornerRadius,
		Fill:        c,
		Stroke:      c,
		FillOpacity: s.FillOpacity,
		StrokeWidth: s.CardStrokeWidth,
	}
}

func cardText(n canvas.Node, t layout.Transform, s Style) Text {
	b := t.Place(n)
	return Text{
		Source:     n.ID,
		X:          b.CenterX(),
		Y:          b.CenterY(),
		Content:    n.TextContent(),
		Anchor:     AnchorMiddle,
		Baseline:   BaselineMiddle,
		FontFamily: s.FontFamily,
		FontSize:   s.FontSize,
	}
}
