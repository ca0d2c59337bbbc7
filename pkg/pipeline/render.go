package pipeline

import (
	"github.com/matzehuels/canvas2svg/pkg/canvas"
	"github.com/matzehuels/canvas2svg/pkg/errors"
	"github.com/matzehuels/canvas2svg/pkg/render/layout"
	"github.com/matzehuels/canvas2svg/pkg/render/scene"
	"github.com/matzehuels/canvas2svg/pkg/render/sink"
)

// BuildScene normalizes doc and builds its scene. opts must be validated.
func BuildScene(doc canvas.Document, opts Options) (scene.Scene, error) {
	style, err := opts.ResolveStyle()
	if err != nil {
		return scene.Scene{}, err
	}
	t, err := layout.Normalize(doc.Nodes, opts.Padding)
	if err != nil {
		return scene.Scene{}, err
	}
	return scene.Build(doc, t, style)
}

// RenderScene serializes sc in the given formats.
func RenderScene(sc scene.Scene, formats []string, scale float64) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, len(formats))
	for _, format := range formats {
		data, err := renderFormat(sc, format, scale)
		if err != nil {
			return nil, err
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

func renderFormat(sc scene.Scene, format string, scale float64) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	switch format {
	case FormatSVG:
		data, err = sink.RenderSVG(sc)
	case FormatPNG:
		data, err = sink.RenderPNG(sc, sink.WithScale(scale))
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "unsupported format: %s", format)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render %s", format)
	}
	return data, nil
}

// Render converts doc in every format of opts, without caching.
func Render(doc canvas.Document, opts Options) (map[string][]byte, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	sc, err := BuildScene(doc, opts)
	if err != nil {
		return nil, err
	}
	return RenderScene(sc, opts.Formats, opts.Scale)
}
