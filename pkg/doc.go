// Package pkg holds the canvas2svg libraries.
//
// # Overview
//
// canvas2svg turns infinite-canvas JSON documents (groups, text cards, and
// edges between named sides of nodes) into standalone SVG images. The pkg
// directory is organized by concern:
//
//  1. [canvas] - Document model, JSON decoding, validation, id lookup
//  2. [render] - Layout, scene building, and output sinks (SVG, PNG)
//  3. [pipeline] - Options and the cached render runner
//  4. [cache] - Artifact caches (file, Redis, null)
//  5. [api] - HTTP API over the pipeline
//
// Supporting packages: [errors] for coded errors, [observability] for
// hooks, [buildinfo] for version data.
//
// # Data Flow
//
//	canvas JSON
//	     ↓
//	[canvas] package (decode + validate)
//	     ↓
//	[render/layout] package (normalize coordinates, resolve anchors)
//	     ↓
//	[render/scene] package (ordered drawing primitives)
//	     ↓
//	[render/sink] package (SVG markup, PNG raster)
//
// # Quick Start
//
//	import (
//	    "os"
//
//	    "github.com/matzehuels/canvas2svg/pkg/canvas"
//	    "github.com/matzehuels/canvas2svg/pkg/render/layout"
//	    "github.com/matzehuels/canvas2svg/pkg/render/scene"
//	    "github.com/matzehuels/canvas2svg/pkg/render/sink"
//	)
//
//	doc, err := canvas.ImportJSON("board.canvas")
//	if err != nil {
//	    return err
//	}
//	t, err := layout.Normalize(doc.Nodes, layout.DefaultPadding)
//	if err != nil {
//	    return err
//	}
//	sc, err := scene.Build(doc, t, scene.Rounded())
//	if err != nil {
//	    return err
//	}
//	svg, err := sink.RenderSVG(sc)
//	if err != nil {
//	    return err
//	}
//	return os.WriteFile("board.svg", svg, 0644)
//
// For caching, several formats, and config-driven options, use
// [pipeline.Runner] instead:
//
//	runner := pipeline.NewRunner(cache.NewNullCache(), nil)
//	opts := pipeline.DefaultOptions()
//	opts.Formats = []string{pipeline.FormatSVG, pipeline.FormatPNG}
//	result, err := runner.Render(ctx, doc, opts)
//
// [canvas]: github.com/matzehuels/canvas2svg/pkg/canvas
// [render]: github.com/matzehuels/canvas2svg/pkg/render
// [render/layout]: github.com/matzehuels/canvas2svg/pkg/render/layout
// [render/scene]: github.com/matzehuels/canvas2svg/pkg/render/scene
// [render/sink]: github.com/matzehuels/canvas2svg/pkg/render/sink
// [pipeline]: github.com/matzehuels/canvas2svg/pkg/pipeline
// [pipeline.Runner]: github.com/matzehuels/canvas2svg/pkg/pipeline#Runner
// [cache]: github.com/matzehuels/canvas2svg/pkg/cache
// [api]: github.com/matzehuels/canvas2svg/pkg/api
// [errors]: github.com/matzehuels/canvas2svg/pkg/errors
// [observability]: github.com/matzehuels/canvas2svg/pkg/observability
// [buildinfo]: github.com/matzehuels/canvas2svg/pkg/buildinfo
package pkg
