package scene

import (
	"fmt"
	"slices"
	"strings"
)

// Style names.
const (
	StyleRounded = "rounded"
	StyleSquare  = "square"
)

// LabelPlacement controls where a group label is drawn.
type LabelPlacement int

const (
	// LabelAbove draws the label outside the group, above its top-left corner.
	LabelAbove LabelPlacement = iota
	// LabelInside draws the label inside the group, below its top-left corner.
	LabelInside
)

// Style is the visual policy applied to primitives. Geometry never depends
// on it: rectangle positions and sizes come from the layout alone.
type Style struct {
	Name             string
	CornerRadius     float64
	FillOpacity      float64
	GroupFill        string
	GroupStroke      string
	GroupStrokeWidth float64
	CardStrokeWidth  float64
	EdgeStrokeWidth  float64
	FontFamily       string
	FontSize         float64
	LabelPlacement   LabelPlacement
	LabelOffset      float64
}

// Rounded is the default style: rounded corners, labels above groups.
func Rounded() Style {
	return Style{
		Name:             StyleRounded,
		CornerRadius:     8,
		FillOpacity:      0.25,
		GroupFill:        "#EEEEEE",
		GroupStroke:      "#888888",
		GroupStrokeWidth: 1,
		CardStrokeWidth:  2,
		EdgeStrokeWidth:  2,
		FontFamily:       "Arial",
		FontSize:         18,
		LabelPlacement:   LabelAbove,
		LabelOffset:      20,
	}
}

// Square uses sharp corners, heavier group outlines, and labels inside groups.
func Square() Style {
	s := Rounded()
	s.Name = StyleSquare
	s.CornerRadius = 0
	s.GroupStrokeWidth = 2
	s.LabelPlacement = LabelInside
	s.LabelOffset = 8
	return s
}

var styles = map[string]func() Style{
	StyleRounded: Rounded,
	StyleSquare:  Square,
}

// StyleNames lists the known style names in sorted order.
func StyleNames() []string {
	names := make([]string, 0, len(styles))
	for name := range styles {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// StyleByName returns the named style preset.
func StyleByName(name string) (Style, error) {
	fn, ok := styles[name]
	if !ok {
		return Style{}, fmt.Errorf("unknown style %q (must be one of: %s)", name, strings.Join(StyleNames(), ", "))
	}
	return fn(), nil
}
