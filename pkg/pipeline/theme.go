package pipeline

import (
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/csscolorparser"

	"github.com/matzehuels/canvas2svg/pkg/errors"
	"github.com/matzehuels/canvas2svg/pkg/render/scene"
)

// Theme overrides parts of a style preset. Empty fields keep the preset's
// value. Colors accept any CSS color syntax ("teal", "rgb(0 128 128)",
// "#0f0") and are normalized to lowercase #rrggbb.
type Theme struct {
	GroupFill   string  `json:"group_fill,omitempty" toml:"group_fill"`
	GroupStroke string  `json:"group_stroke,omitempty" toml:"group_stroke"`
	FontFamily  string  `json:"font_family,omitempty" toml:"font_family"`
	FontSize    float64 `json:"font_size,omitempty" toml:"font_size"`
}

// IsZero reports whether the theme overrides nothing.
func (t Theme) IsZero() bool {
	return t == Theme{}
}

// Normalize returns a copy of t with colors in #rrggbb form.
func (t Theme) Normalize() (Theme, error) {
	var err error
	if t.GroupFill, err = normalizeColor("group_fill", t.GroupFill); err != nil {
		return Theme{}, err
	}
	if t.GroupStroke, err = normalizeColor("group_stroke", t.GroupStroke); err != nil {
		return Theme{}, err
	}
	if t.FontSize < 0 {
		return Theme{}, errors.New(errors.ErrCodeInvalidConfig, "theme font_size must be positive, got %g", t.FontSize)
	}
	return t, nil
}

// Apply returns s with the theme's overrides.
func (t Theme) Apply(s scene.Style) (scene.Style, error) {
	t, err := t.Normalize()
	if err != nil {
		return scene.Style{}, err
	}
	if t.GroupFill != "" {
		s.GroupFill = t.GroupFill
	}
	if t.GroupStroke != "" {
		s.GroupStroke = t.GroupStroke
	}
	if t.FontFamily != "" {
		s.FontFamily = t.FontFamily
	}
	if t.FontSize > 0 {
		s.FontSize = t.FontSize
	}
	return s, nil
}

// keyMap is the cache key form of the theme; nil when nothing is overridden.
func (t Theme) keyMap() map[string]string {
	if t.IsZero() {
		return nil
	}
	n, err := t.Normalize()
	if err != nil {
		n = t
	}
	m := map[string]string{}
	if n.GroupFill != "" {
		m["group_fill"] = n.GroupFill
	}
	if n.GroupStroke != "" {
		m["group_stroke"] = n.GroupStroke
	}
	if n.FontFamily != "" {
		m["font_family"] = n.FontFamily
	}
	if n.FontSize > 0 {
		m["font_size"] = strconv.FormatFloat(n.FontSize, 'f', -1, 64)
	}
	return m
}

func normalizeColor(field, v string) (string, error) {
	if v == "" {
		return "", nil
	}
	c, err := csscolorparser.Parse(v)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidConfig, err, "theme %s", field)
	}
	return colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped().Hex(), nil
}
