// Package scene turns a canvas document into an ordered list of drawing
// primitives.
//
// # Draw Order
//
// [Build] emits primitives in a fixed order, which determines stacking in
// the output (later primitives are painted on top):
//
//  1. Group nodes: a [Rect], plus a [Text] label when the node has a label key
//  2. Text nodes: a [Rect] in the node's palette color and a centered [Text]
//  3. Edges: a [Line] between the resolved anchors, arrowhead at the end
//
// Within each step the input order is kept.
//
// # Colors
//
// Card and edge colors come from a fixed seven-entry palette keyed by "0"
// to "6". [Color] falls back to [DefaultColor] for anything else.
//
// # Styles
//
// A [Style] holds everything that is a matter of taste rather than
// geometry: corner radius, stroke widths, group colors, fonts, and where
// group labels go. Two presets exist, [Rounded] (the default) and [Square].
//
//	s, err := scene.StyleByName("square")
//	sc, err := scene.Build(doc, transform, s)
package scene
