// Package render provides visualization rendering for canvas documents.
//
// # Overview
//
// Rendering happens in three steps, each in its own subpackage:
//
//   - [layout]: normalize coordinates and resolve edge anchors
//   - [scene]: build the ordered list of drawing primitives
//   - [sink]: turn a scene into SVG markup, PNG, or a palette swatch
//
//	t, err := layout.Normalize(doc.Nodes, layout.DefaultPadding)
//	sc, err := scene.Build(doc, t, scene.Rounded())
//	svg, err := sink.RenderSVG(sc)
//
// # Format Conversion
//
// [ToPNG] rasterizes any SVG in-process with oksvg and rasterx. The
// rasterizer covers shapes and paths; text and markers are not drawn, so
// PNG output is a preview of the diagram's structure.
//
//	png, err := render.ToPNG(svg, 2.0) // 2x scale
//
// [layout]: github.com/matzehuels/canvas2svg/pkg/render/layout
// [scene]: github.com/matzehuels/canvas2svg/pkg/render/scene
// [sink]: github.com/matzehuels/canvas2svg/pkg/render/sink
package render
