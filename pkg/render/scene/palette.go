package scene

import (
	"slices"

	"github.com/matzehuels/canvas2svg/pkg/canvas"
)

// DefaultColor is used for nodes and edges without a recognized palette key.
const DefaultColor = "#444444"

// palette maps canvas color keys to fill/stroke colors. It is fixed.
var palette = map[canvas.ColorKey]string{
	"0": "#7e7e7e",
	"1": "#aa363d",
	"2": "#a56c3a",
	"3": "#aba960",
	"4": "#199e5c",
	"5": "#249391",
	"6": "#795fac",
}

// Color returns the palette color for key, or [DefaultColor] when the key is
// empty or unknown. It never fails.
func Color(key canvas.ColorKey) string {
	if c, ok := palette[key]; ok {
		return c
	}
	return DefaultColor
}

// Swatch is one palette entry.
type Swatch struct {
	Key   string `json:"key"`
	Color string `json:"color"`
}

// Palette returns the palette entries ordered by key, followed by the
// default entry under the key "default".
func Palette() []Swatch {
	keys := make([]canvas.ColorKey, 0, len(palette))
	for k := range palette {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	out := make([]Swatch, 0, len(keys)+1)
	for _, k := range keys {
		out = append(out, Swatch{Key: string(k), Color: palette[k]})
	}
	return append(out, Swatch{Key: "default", Color: DefaultColor})
}
