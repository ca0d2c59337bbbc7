package canvas

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/samber/lo"
)

// Node types with a visual representation. Any other type is carried through
// the document untouched and may still be referenced by edges.
const (
	TypeGroup = "group"
	TypeText  = "text"
)

// Side names the boundary point of a node an edge attaches to.
// Values other than the four named sides (including empty) mean the center.
type Side string

const (
	SideTop    Side = "top"
	SideBottom Side = "bottom"
	SideLeft   Side = "left"
	SideRight  Side = "right"
)

// ColorKey is a palette key. Canvas files store it as a string digit, but some
// writers emit bare numbers; both decode to the same string form. Numbers are
// written in their shortest decimal form, so 1, 1.0 and 1e0 all become "1".
type ColorKey string

// UnmarshalJSON accepts a JSON string, a JSON number, or null. Strings are
// kept verbatim.
func (k *ColorKey) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		*k = ""
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*k = ColorKey(s)
	default:
		f, err := strconv.ParseFloat(string(data), 64)
		if err != nil {
			return fmt.Errorf("color: expected string or number, got %s", data)
		}
		*k = ColorKey(strconv.FormatFloat(f, 'f', -1, 64))
	}
	return nil
}

// Document is a decoded canvas: nodes and edges in input order.
type Document struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// Node is one rectangular diagram element in source coordinates.
type Node struct {
	ID     string   `json:"id"`
	Type   string   `json:"type"`
	X      float64  `json:"x"`
	Y      float64  `json:"y"`
	Width  float64  `json:"width"`
	Height float64  `json:"height"`
	Color  ColorKey `json:"color,omitempty"`
	Text   *string  `json:"text,omitempty"`
	Label  *string  `json:"label,omitempty"`
}

// IsGroup reports whether n is a group container.
func (n Node) IsGroup() bool { return n.Type == TypeGroup }

// IsText reports whether n is a text card.
func (n Node) IsText() bool { return n.Type == TypeText }

// Drawable reports whether n has a visual representation of its own.
func (n Node) Drawable() bool { return n.IsGroup() || n.IsText() }

// HasLabel reports whether the label key was present in the input,
// independently of whether the label is empty.
func (n Node) HasLabel() bool { return n.Label != nil }

// LabelText returns the label, or "" when absent.
func (n Node) LabelText() string { return lo.FromPtr(n.Label) }

// TextContent returns the card text, or "" when absent.
func (n Node) TextContent() string { return lo.FromPtr(n.Text) }

// Edge is a directed connector between two nodes.
type Edge struct {
	ID       string   `json:"id,omitempty"`
	FromNode string   `json:"fromNode"`
	ToNode   string   `json:"toNode"`
	FromSide Side     `json:"fromSide,omitempty"`
	ToSide   Side     `json:"toSide,omitempty"`
	Color    ColorKey `json:"color,omitempty"`
}

// Groups returns the group nodes in input order.
func (d Document) Groups() []Node {
	return lo.Filter(d.Nodes, func(n Node, _ int) bool { return n.IsGroup() })
}

// Cards returns the text nodes in input order.
func (d Document) Cards() []Node {
	return lo.Filter(d.Nodes, func(n Node, _ int) bool { return n.IsText() })
}

// Undrawn returns the IDs of nodes whose type has no visual representation.
func (d Document) Undrawn() []string {
	return lo.FilterMap(d.Nodes, func(n Node, _ int) (string, bool) {
		return n.ID, !n.Drawable()
	})
}

// EdgeName identifies the i-th edge in messages, preferring its ID.
func (d Document) EdgeName(i int) string {
	if id := d.Edges[i].ID; id != "" {
		return id
	}
	return fmt.Sprintf("edges[%d]", i)
}
