// Package ascii renders images as text, a stand-in for real graphics
// output in the demo commands.
package ascii

import (
	"image"
	"strings"

	"golang.org/x/image/draw"
)

// ramp orders glyphs by ink density, darkest input mapping to the
// lightest glyph.
const ramp = " .:-=+*#%@"

// Render scales img down to cols text columns and maps luminance onto
// the density ramp. Rows are halved relative to the aspect ratio to
// compensate for terminal cells being roughly twice as tall as wide.
// Each output row ends with a newline.
func Render(img image.Image, cols int) string {
	b := img.Bounds()
	if cols <= 0 || b.Dx() <= 0 || b.Dy() <= 0 {
		return ""
	}
	rows := b.Dy() * cols / b.Dx() / 2
	if rows < 1 {
		rows = 1
	}

	small := image.NewGray(image.Rect(0, 0, cols, rows))
	draw.ApproxBiLinear.Scale(small, small.Bounds(), img, b, draw.Src, nil)

	var sb strings.Builder
	sb.Grow(rows * (cols + 1))
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			v := int(small.GrayAt(x, y).Y)
			sb.WriteByte(ramp[v*(len(ramp)-1)/255])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
