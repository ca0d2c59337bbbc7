package pipeline

import (
	"bytes"
	"context"
	"math"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/matzehuels/canvas2svg/pkg/canvas"
	"github.com/matzehuels/canvas2svg/pkg/errors"
	"github.com/matzehuels/canvas2svg/pkg/render/scene"
)

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"svg", false},
		{"png", false},
		{"pdf", true},
		{"SVG", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, errors.ErrCodeInvalidFormat) {
			t.Errorf("ValidateFormat(%q) code = %s", tt.format, errors.GetCode(err))
		}
	}
}

func TestValidateStyle(t *testing.T) {
	tests := []struct {
		style   string
		wantErr bool
	}{
		{"rounded", false},
		{"square", false},
		{"handdrawn", true},
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateStyle(tt.style)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateStyle(%q) error = %v, wantErr %v", tt.style, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, errors.ErrCodeInvalidStyle) {
			t.Errorf("ValidateStyle(%q) code = %s", tt.style, errors.GetCode(err))
		}
	}
}

func TestParseFormats(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "svg"},
		{"svg", "svg"},
		{"svg,png", "svg,png"},
		{" PNG , svg,png,", "png,svg"},
		{",,", "svg"},
	}
	for _, tt := range tests {
		got := strings.Join(ParseFormats(tt.in), ",")
		if got != tt.want {
			t.Errorf("ParseFormats(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		code errors.Code
	}{
		{"defaults", DefaultOptions(), ""},
		{"zero value", Options{}, ""},
		{"negative padding", Options{Padding: -1}, errors.ErrCodeInvalidInput},
		{"bad format", Options{Formats: []string{"gif"}}, errors.ErrCodeInvalidFormat},
		{"bad style", Options{Style: "fancy"}, errors.ErrCodeInvalidStyle},
		{"negative scale", Options{Scale: -2}, errors.ErrCodeInvalidInput},
		{"NaN padding", Options{Padding: math.NaN()}, errors.ErrCodeInvalidInput},
		{"infinite padding", Options{Padding: math.Inf(1)}, errors.ErrCodeInvalidInput},
		{"NaN scale", Options{Scale: math.NaN()}, errors.ErrCodeInvalidInput},
		{"infinite scale", Options{Scale: math.Inf(1)}, errors.ErrCodeInvalidInput},
		{"bad theme color", Options{Theme: Theme{GroupFill: "notacolor"}}, errors.ErrCodeInvalidConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.Validate()
			if got := errors.GetCode(err); got != tt.code {
				t.Errorf("Validate() code = %q, want %q (err %v)", got, tt.code, err)
			}
		})
	}
}

func TestOptionsSetDefaults(t *testing.T) {
	var o Options
	o.SetDefaults()
	if o.Style != DefaultStyle || o.Scale != DefaultScale || len(o.Formats) != 1 || o.Formats[0] != FormatSVG {
		t.Errorf("SetDefaults() = %+v", o)
	}
	if o.Padding != 0 {
		t.Errorf("padding should not be defaulted, got %v", o.Padding)
	}
}

func TestArtifactKeyOpts(t *testing.T) {
	o := DefaultOptions()
	if got := o.ArtifactKeyOpts(FormatSVG).Scale; got != 0 {
		t.Errorf("svg key scale = %v, want 0", got)
	}
	if got := o.ArtifactKeyOpts(FormatPNG).Scale; got != DefaultScale {
		t.Errorf("png key scale = %v, want %v", got, DefaultScale)
	}
}

func TestContentType(t *testing.T) {
	if ContentType(FormatSVG) != "image/svg+xml" || ContentType(FormatPNG) != "image/png" {
		t.Error("unexpected content types")
	}
}

func TestThemeNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"teal", "#008080"},
		{"#0F0", "#00ff00"},
		{"rgb(255, 0, 0)", "#ff0000"},
		{"hsl(0, 0%, 100%)", "#ffffff"},
		{"", ""},
	}
	for _, tt := range tests {
		th, err := Theme{GroupFill: tt.in, GroupStroke: tt.in}.Normalize()
		if err != nil {
			t.Errorf("Normalize(%q) error: %v", tt.in, err)
			continue
		}
		if th.GroupFill != tt.want || th.GroupStroke != tt.want {
			t.Errorf("Normalize(%q) = %s/%s, want %s", tt.in, th.GroupFill, th.GroupStroke, tt.want)
		}
	}
}

func TestThemeApply(t *testing.T) {
	s, err := Theme{GroupFill: "white", FontFamily: "Helvetica", FontSize: 12}.Apply(scene.Square())
	if err != nil {
		t.Fatalf("Apply() error: %v", err)
	}
	if s.GroupFill != "#ffffff" || s.FontFamily != "Helvetica" || s.FontSize != 12 {
		t.Errorf("Apply() = %+v", s)
	}
	if s.GroupStroke != scene.Square().GroupStroke || s.CornerRadius != 0 {
		t.Error("Apply() should keep fields the theme does not set")
	}

	if _, err := (Theme{FontSize: -1}).Apply(scene.Rounded()); !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("negative font size error = %v", err)
	}
}

const twoCards = `{
  "nodes": [
    {"id": "a", "type": "text", "x": 0, "y": 0, "width": 100, "height": 50, "text": "Hi"},
    {"id": "b", "type": "text", "x": 200, "y": 0, "width": 100, "height": 50, "text": "Bye"},
    {"id": "f", "type": "file", "x": 0, "y": 0, "width": 10, "height": 10}
  ],
  "edges": [{"id": "e", "fromNode": "a", "toNode": "b", "fromSide": "right", "toSide": "left"}]
}`

func mustDoc(t *testing.T, src string) canvas.Document {
	t.Helper()
	doc, err := canvas.ReadJSON(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ReadJSON() error: %v", err)
	}
	return doc
}

func TestRender(t *testing.T) {
	opts := DefaultOptions()
	opts.Formats = []string{FormatSVG, FormatPNG}
	opts.Scale = 1

	artifacts, err := Render(mustDoc(t, twoCards), opts)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	svg := string(artifacts[FormatSVG])
	if !strings.Contains(svg, `d="M 120 45 L 220 45"`) {
		t.Errorf("svg missing edge path:\n%s", svg)
	}
	if !bytes.HasPrefix(artifacts[FormatPNG], []byte("\x89PNG")) {
		t.Error("png artifact has no PNG signature")
	}
}

func TestRender_Theme(t *testing.T) {
	src := `{"nodes": [{"id": "g", "type": "group", "x": 0, "y": 0, "width": 10, "height": 10}]}`
	opts := DefaultOptions()
	opts.Theme = Theme{GroupFill: "navy"}

	artifacts, err := Render(mustDoc(t, src), opts)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if !strings.Contains(string(artifacts[FormatSVG]), `fill="#000080"`) {
		t.Errorf("themed group fill missing:\n%s", artifacts[FormatSVG])
	}
}

func TestRender_Errors(t *testing.T) {
	oneNode := canvas.Document{Nodes: []canvas.Node{{ID: "a", Type: canvas.TypeText, Width: 1, Height: 1}}}
	withPadding := func(p float64) Options {
		o := DefaultOptions()
		o.Padding = p
		return o
	}

	tests := []struct {
		name string
		doc  canvas.Document
		opts Options
		code errors.Code
	}{
		{"empty", canvas.Document{}, DefaultOptions(), errors.ErrCodeEmptyDocument},
		{"NaN padding", oneNode, withPadding(math.NaN()), errors.ErrCodeInvalidInput},
		{"infinite padding", oneNode, withPadding(math.Inf(1)), errors.ErrCodeInvalidInput},
		{
			"overflowing extent",
			canvas.Document{Nodes: []canvas.Node{
				{ID: "a", Type: canvas.TypeText, X: -1e308, Width: 1, Height: 1},
				{ID: "b", Type: canvas.TypeText, X: 1e308, Width: 1, Height: 1},
			}},
			DefaultOptions(),
			errors.ErrCodeInvalidInput,
		},
		{
			"dangling",
			canvas.Document{
				Nodes: []canvas.Node{{ID: "a", Type: canvas.TypeText, Width: 1, Height: 1}},
				Edges: []canvas.Edge{{FromNode: "a", ToNode: "zzz"}},
			},
			DefaultOptions(),
			errors.ErrCodeDanglingEdge,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			artifacts, err := Render(tt.doc, tt.opts)
			if !errors.Is(err, tt.code) {
				t.Errorf("Render() error = %v, want code %s", err, tt.code)
			}
			if artifacts != nil {
				t.Error("no artifacts expected on error")
			}
		})
	}
}

func TestRunner_Cache(t *testing.T) {
	ctx := context.Background()
	mc := newMemCache()
	r := NewRunner(mc, nil)

	doc := mustDoc(t, twoCards)
	first, err := r.Render(ctx, doc, DefaultOptions())
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if first.CacheHit {
		t.Error("first render should miss")
	}
	if first.Stats.Width != 340 || first.Stats.Height != 90 || first.Stats.Primitives != 5 {
		t.Errorf("stats = %+v", first.Stats)
	}
	if len(first.Skipped) != 1 || first.Skipped[0] != "f" {
		t.Errorf("Skipped = %v, want [f]", first.Skipped)
	}
	if mc.len() != 1 {
		t.Errorf("cache entries = %d, want 1", mc.len())
	}

	second, err := r.Render(ctx, doc, DefaultOptions())
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if !second.CacheHit {
		t.Error("second render should hit")
	}
	if !bytes.Equal(first.Artifacts[FormatSVG], second.Artifacts[FormatSVG]) {
		t.Error("cached artifact differs")
	}
	if len(second.Skipped) != 1 {
		t.Error("Skipped should be reported on a cache hit")
	}

	// a different style is a different artifact
	opts := DefaultOptions()
	opts.Style = scene.StyleSquare
	third, err := r.Render(ctx, doc, opts)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if third.CacheHit {
		t.Error("changed style should miss")
	}
}

func TestRunner_ErrorsNotCached(t *testing.T) {
	mc := newMemCache()
	r := NewRunner(mc, nil)
	doc := canvas.Document{
		Nodes: []canvas.Node{{ID: "a", Type: canvas.TypeText, Width: 1, Height: 1}},
		Edges: []canvas.Edge{{FromNode: "zzz", ToNode: "a"}},
	}

	_, err := r.Render(context.Background(), doc, DefaultOptions())
	if !errors.Is(err, errors.ErrCodeDanglingEdge) {
		t.Fatalf("err = %v, want DANGLING_EDGE_REFERENCE", err)
	}
	if mc.len() != 0 {
		t.Error("failed conversion should not be cached")
	}
}

func TestRunner_InvalidOptions(t *testing.T) {
	r := NewRunner(nil, nil)
	opts := DefaultOptions()
	opts.Formats = []string{"pdf"}
	if _, err := r.Render(context.Background(), mustDoc(t, twoCards), opts); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("err = %v, want INVALID_FORMAT", err)
	}
}

func TestRunner_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r := NewRunner(nil, nil)
	if _, err := r.Render(ctx, mustDoc(t, twoCards), DefaultOptions()); err == nil {
		t.Error("expected error for canceled context")
	}
}

type memCache struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMemCache() *memCache { return &memCache{data: map[string][]byte{}} }

func (c *memCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	d, ok := c.data[key]
	return d, ok, nil
}

func (c *memCache) Set(_ context.Context, key string, data []byte, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = data
	return nil
}

func (c *memCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	return nil
}

func (c *memCache) Close() error { return nil }

func (c *memCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.data)
}
