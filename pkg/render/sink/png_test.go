package sink

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/matzehuels/canvas2svg/pkg/render/scene"
)

func TestRenderPNG(t *testing.T) {
	sc := buildScene(t, twoCards, scene.Rounded())

	tests := []struct {
		name  string
		opts  []PNGOption
		wantW int
		wantH int
	}{
		{"default scale", nil, 680, 180},
		{"unit scale", []PNGOption{WithScale(1)}, 340, 90},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := RenderPNG(sc, tt.opts...)
			if err != nil {
				t.Fatalf("RenderPNG() error: %v", err)
			}
			img, err := png.Decode(bytes.NewReader(data))
			if err != nil {
				t.Fatalf("png.Decode() error: %v", err)
			}
			b := img.Bounds()
			if b.Dx() != tt.wantW || b.Dy() != tt.wantH {
				t.Errorf("size = %dx%d, want %dx%d", b.Dx(), b.Dy(), tt.wantW, tt.wantH)
			}
		})
	}
}

func TestRenderPNG_InvalidScale(t *testing.T) {
	sc := buildScene(t, twoCards, scene.Rounded())
	if _, err := RenderPNG(sc, WithScale(0)); err == nil {
		t.Error("expected error for zero scale")
	}
}

func TestRasterTree(t *testing.T) {
	root := rasterTree(buildScene(t, twoCards, scene.Rounded()))
	for _, c := range root.Children {
		switch c.Name {
		case "defs", "text":
			t.Errorf("raster tree contains <%s>", c.Name)
		case "path":
			if _, ok := c.Attr("marker-end"); ok {
				t.Error("raster path keeps marker-end")
			}
		}
	}
	if got := len(root.Find("rect")); got != 2 {
		t.Errorf("len(rect) = %d, want 2", got)
	}
	if got := len(root.Find("path")); got != 1 {
		t.Errorf("len(path) = %d, want 1", got)
	}
}
