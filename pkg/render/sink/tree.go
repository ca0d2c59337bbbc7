package sink

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
)

// Attr is one markup attribute. Hyphenated names ("stroke-width") are
// ordinary names here.
type Attr struct {
	Name, Value string
}

// Element is a node of the markup tree. Attributes keep insertion order so
// that serialization is deterministic.
type Element struct {
	Name     string
	Attrs    []Attr
	Text     string
	Children []*Element
}

// NewElement creates an element from alternating attribute names and values.
// It panics on an odd number of strings, which is a programming error.
func NewElement(name string, attrs ...string) *Element {
	if len(attrs)%2 != 0 {
		panic(fmt.Sprintf("sink: odd attribute list for <%s>", name))
	}
	e := &Element{Name: name, Attrs: make([]Attr, 0, len(attrs)/2)}
	for i := 0; i < len(attrs); i += 2 {
		e.Attrs = append(e.Attrs, Attr{Name: attrs[i], Value: attrs[i+1]})
	}
	return e
}

// Add appends child and returns it.
func (e *Element) Add(child *Element) *Element {
	e.Children = append(e.Children, child)
	return child
}

// Attr returns the value of the named attribute.
func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Find returns the direct children with the given name.
func (e *Element) Find(name string) []*Element {
	var out []*Element
	for _, c := range e.Children {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

// WriteXML serializes the tree rooted at e as indented XML, preceded by an
// XML declaration.
func WriteXML(w io.Writer, e *Element) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := e.encode(enc); err != nil {
		return err
	}
	if err := enc.Flush(); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func (e *Element) encode(enc *xml.Encoder) error {
	start := xml.StartElement{Name: xml.Name{Local: e.Name}}
	for _, a := range e.Attrs {
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: a.Name}, Value: a.Value})
	}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	if e.Text != "" {
		if err := enc.EncodeToken(xml.CharData(e.Text)); err != nil {
			return err
		}
	}
	for _, c := range e.Children {
		if err := c.encode(enc); err != nil {
			return err
		}
	}
	return enc.EncodeToken(start.End())
}

// num formats v in its shortest exact decimal form ("120", "62.5").
func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
