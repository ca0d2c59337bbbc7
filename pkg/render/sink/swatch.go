package sink

import (
	"bufio"
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/matzehuels/canvas2svg/pkg/render/scene"
)

const (
	swatchCell  = 60
	swatchGap   = 12
	swatchLabel = 22
)

// RenderSwatch writes an SVG preview of the palette: one card per entry,
// drawn the way text cards are drawn, captioned with its key and color.
// It returns the first error from w.
func RenderSwatch(w io.Writer, entries []scene.Swatch, style scene.Style) error {
	width := swatchGap + len(entries)*(swatchCell+swatchGap)
	height := 2*swatchGap + swatchCell + 2*swatchLabel
	radius := int(style.CornerRadius)

	bw := bufio.NewWriter(w)
	canvas := svg.New(bw)
	canvas.Start(width, height)
	for i, e := range entries {
		x := swatchGap + i*(swatchCell+swatchGap)
		canvas.Roundrect(x, swatchGap, swatchCell, swatchCell, radius, radius,
			fmt.Sprintf("fill:%s;stroke:%s;fill-opacity:%g;stroke-width:%g", e.Color, e.Color, style.FillOpacity, style.CardStrokeWidth))
		cx := x + swatchCell/2
		canvas.Text(cx, swatchGap+swatchCell+swatchLabel-4, e.Key,
			fmt.Sprintf("text-anchor:middle;font-family:%s;font-size:14", style.FontFamily))
		canvas.Text(cx, swatchGap+swatchCell+2*swatchLabel-4, e.Color,
			fmt.Sprintf("text-anchor:middle;font-family:%s;font-size:10;fill:#666666", style.FontFamily))
	}
	canvas.End()
	return bw.Flush()
}
