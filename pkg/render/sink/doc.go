// Package sink provides output format renderers for scenes.
//
// # Overview
//
// A "sink" transforms a built [scene.Scene] into a final output format:
//
//   - SVG: [Tree] builds a markup tree, [WriteSVG] / [RenderSVG] serialize it
//   - PNG: [RenderPNG] rasterizes the SVG in-process
//   - Swatch: [RenderSwatch] previews the color palette
//
// # SVG Output
//
// The document has a fixed shape:
//
//	<svg xmlns="http://www.w3.org/2000/svg" width=W height=H viewBox="0 0 W H">
//	  <defs><marker id="arrow" ...><path d="M0,0 L12,6 L0,12 Z"/></marker></defs>
//	  <rect .../> <text ...>label</text> ... <path d="M x1 y1 L x2 y2" marker-end="url(#arrow)"/>
//	</svg>
//
// Primitives appear in scene order. Numbers use the shortest exact decimal
// form, so integral coordinates print without a fraction.
//
// The tree is an ordinary value and can be inspected or extended before
// serialization:
//
//	root := sink.Tree(sc)
//	root.Add(sink.NewElement("title")).Text = "My diagram"
//	err := sink.WriteXML(w, root)
//
// # PNG Output
//
// [RenderPNG] drops markers and text before rasterizing, since the
// rasterizer supports neither. Use [WithScale] to change resolution.
package sink
