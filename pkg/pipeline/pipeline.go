// Package pipeline provides the canvas conversion pipeline shared by the CLI
// and the HTTP API.
//
// # Architecture
//
// A conversion runs three steps over a decoded [canvas.Document]:
//
//  1. Normalize: compute the translation and canvas size ([layout.Normalize])
//  2. Build: emit drawing primitives in draw order ([scene.Build])
//  3. Sink: serialize the scene in each requested format ([sink])
//
// Any error in steps 1 or 2 aborts the whole conversion; no format is
// produced from a partially built scene.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, logger)
//	opts := pipeline.DefaultOptions()
//	opts.Formats = []string{pipeline.FormatSVG, pipeline.FormatPNG}
//	result, err := runner.Render(ctx, doc, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// [canvas.Document]: github.com/matzehuels/canvas2svg/pkg/canvas.Document
// [layout.Normalize]: github.com/matzehuels/canvas2svg/pkg/render/layout.Normalize
// [scene.Build]: github.com/matzehuels/canvas2svg/pkg/render/scene.Build
// [sink]: github.com/matzehuels/canvas2svg/pkg/render/sink
package pipeline

import (
	"math"
	"slices"
	"strings"
	"time"

	"github.com/matzehuels/canvas2svg/pkg/cache"
	"github.com/matzehuels/canvas2svg/pkg/errors"
	"github.com/matzehuels/canvas2svg/pkg/render/layout"
	"github.com/matzehuels/canvas2svg/pkg/render/scene"
	"github.com/matzehuels/canvas2svg/pkg/render/sink"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultPadding is the margin added around the node bounding box.
	DefaultPadding = layout.DefaultPadding

	// DefaultStyle is the default styling preset.
	DefaultStyle = scene.StyleRounded

	// DefaultScale is the default PNG resolution multiplier.
	DefaultScale = sink.DefaultScale
)

// Format constants for output formats.
const (
	FormatSVG = "svg"
	FormatPNG = "png"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG: true,
	FormatPNG: true,
}

// ContentType returns the media type for format.
func ContentType(format string) string {
	switch format {
	case FormatPNG:
		return "image/png"
	default:
		return "image/svg+xml"
	}
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one conversion.
type Options struct {
	// Padding is the margin around the content. Zero is a valid padding,
	// so it is not defaulted; start from [DefaultOptions].
	Padding float64  `json:"padding"`
	Style   string   `json:"style,omitempty"`
	Formats []string `json:"formats,omitempty"`
	Scale   float64  `json:"scale,omitempty"`
	Theme   Theme    `json:"theme,omitempty"`
}

// DefaultOptions returns options with every field set to its default.
func DefaultOptions() Options {
	return Options{
		Padding: DefaultPadding,
		Style:   DefaultStyle,
		Formats: []string{FormatSVG},
		Scale:   DefaultScale,
	}
}

// Result contains the outputs of a conversion.
type Result struct {
	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Skipped lists ids of nodes whose type is not drawn.
	Skipped []string

	// CacheHit is true when every artifact came from the cache.
	CacheHit bool

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains conversion statistics. Width, Height, and Primitives are
// zero when every artifact came from the cache.
type Stats struct {
	NodeCount  int
	EdgeCount  int
	Primitives int
	Width      float64
	Height     float64
	Duration   time.Duration
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: svg, png)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateStyle checks that a style name is known.
func ValidateStyle(style string) error {
	if _, err := scene.StyleByName(style); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidStyle, err, "invalid style")
	}
	return nil
}

// ParseFormats parses a comma-separated format list, dropping blanks and
// duplicates. An empty string yields [FormatSVG].
func ParseFormats(s string) []string {
	var out []string
	for _, f := range strings.Split(s, ",") {
		f = strings.ToLower(strings.TrimSpace(f))
		if f != "" && !slices.Contains(out, f) {
			out = append(out, f)
		}
	}
	if len(out) == 0 {
		return []string{FormatSVG}
	}
	return out
}

// =============================================================================
// Options Methods
// =============================================================================

// SetDefaults fills in unset style, formats, and scale.
func (o *Options) SetDefaults() {
	if o.Style == "" {
		o.Style = DefaultStyle
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
}

// Validate applies defaults and checks every option.
func (o *Options) Validate() error {
	o.SetDefaults()
	if o.Padding < 0 || math.IsNaN(o.Padding) || math.IsInf(o.Padding, 0) {
		return errors.New(errors.ErrCodeInvalidInput, "padding must be a non-negative finite number, got %g", o.Padding)
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if err := ValidateStyle(o.Style); err != nil {
		return err
	}
	if !(o.Scale > 0) || math.IsInf(o.Scale, 0) {
		return errors.New(errors.ErrCodeInvalidInput, "scale must be a positive finite number, got %g", o.Scale)
	}
	if _, err := o.Theme.Normalize(); err != nil {
		return err
	}
	return nil
}

// ResolveStyle returns the named preset with the theme applied.
func (o *Options) ResolveStyle() (scene.Style, error) {
	style, err := scene.StyleByName(o.Style)
	if err != nil {
		return scene.Style{}, errors.Wrap(errors.ErrCodeInvalidStyle, err, "invalid style")
	}
	return o.Theme.Apply(style)
}

// ArtifactKeyOpts returns cache key options for one output format.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	opts := cache.ArtifactKeyOpts{
		Format:  format,
		Style:   o.Style,
		Padding: o.Padding,
		Theme:   o.Theme.keyMap(),
	}
	if format == FormatPNG {
		opts.Scale = o.Scale
	}
	return opts
}
