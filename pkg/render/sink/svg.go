package sink

import (
	"bytes"
	"fmt"
	"io"

	"github.com/matzehuels/canvas2svg/pkg/render/scene"
)

// SVGNamespace is the namespace of the root element.
const SVGNamespace = "http://www.w3.org/2000/svg"

// ArrowMarkerID is the id of the shared arrowhead marker.
const ArrowMarkerID = "arrow"

// Tree builds the SVG markup tree for s: the root element, a single
// arrowhead marker definition, then one element per primitive in order.
func Tree(s scene.Scene) *Element {
	w, h := num(s.Width()), num(s.Height())
	root := NewElement("svg",
		"xmlns", SVGNamespace,
		"width", w,
		"height", h,
		"viewBox", "0 0 "+w+" "+h,
	)
	root.Add(arrowDefs())

	for _, p := range s.Primitives {
		root.Add(element(p))
	}
	return root
}

func arrowDefs() *Element {
	defs := NewElement("defs")
	marker := defs.Add(NewElement("marker",
		"id", ArrowMarkerID,
		"viewBox", "0 0 12 12",
		"refX", "10",
		"refY", "6",
		"markerWidth", "8",
		"markerHeight", "8",
		"orient", "auto",
	))
	marker.Add(NewElement("path",
		"d", "M0,0 L12,6 L0,12 Z",
		"fill", "context-stroke",
	))
	return defs
}

func element(p scene.Primitive) *Element {
	switch p := p.(type) {
	case scene.Rect:
		return rectElement(p)
	case scene.Text:
		return textElement(p)
	case scene.Line:
		return lineElement(p)
	default:
		panic(fmt.Sprintf("sink: unknown primitive %T", p))
	}
}

func rectElement(r scene.Rect) *Element {
	e := NewElement("rect",
		"x", num(r.Box.X),
		"y", num(r.Box.Y),
		"width", num(r.Box.W),
		"height", num(r.Box.H),
	)
	if r.Radius > 0 {
		e.Attrs = append(e.Attrs, Attr{"rx", num(r.Radius)}, Attr{"ry", num(r.Radius)})
	}
	e.Attrs = append(e.Attrs,
		Attr{"fill", r.Fill},
		Attr{"stroke", r.Stroke},
		Attr{"fill-opacity", num(r.FillOpacity)},
		Attr{"stroke-width", num(r.StrokeWidth)},
	)
	return e
}

func textElement(t scene.Text) *Element {
	e := NewElement("text",
		"x", num(t.X),
		"y", num(t.Y),
		"text-anchor", t.Anchor,
		"dominant-baseline", t.Baseline,
		"font-family", t.FontFamily,
		"font-size", num(t.FontSize),
	)
	e.Text = t.Content
	return e
}

func lineElement(l scene.Line) *Element {
	d := fmt.Sprintf("M %s %s L %s %s", num(l.From.X), num(l.From.Y), num(l.To.X), num(l.To.Y))
	e := NewElement("path",
		"d", d,
		"stroke", l.Stroke,
		"fill", "none",
		"stroke-width", num(l.StrokeWidth),
	)
	if l.ArrowEnd {
		e.Attrs = append(e.Attrs, Attr{"marker-end", "url(#" + ArrowMarkerID + ")"})
	}
	return e
}

// WriteSVG serializes s as an SVG document to w.
func WriteSVG(w io.Writer, s scene.Scene) error {
	return WriteXML(w, Tree(s))
}

// RenderSVG returns s as SVG document bytes.
func RenderSVG(s scene.Scene) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteSVG(&buf, s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
