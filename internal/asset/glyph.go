package asset

import (
	"image"

	"github.com/vovakirdan/tui-tiles/internal/core"
)

// GlyphOf averages the opaque pixels of each half of img.
// Pixels with alpha below 50% or pure magenta (#FF00FF) are transparent.
func GlyphOf(img image.Image) Glyph {
	b := img.Bounds()
	mid := b.Min.Y + b.Dy()/2

	top, hasTop := averageRows(img, b.Min.Y, mid)
	bottom, hasBottom := averageRows(img, mid, b.Max.Y)

	// One-pixel-high images have an empty upper half.
	if b.Dy() == 1 {
		top, hasTop = bottom, hasBottom
	}

	return Glyph{
		Top:       top,
		Bottom:    bottom,
		HasTop:    hasTop,
		HasBottom: hasBottom,
	}
}

func averageRows(img image.Image, y0, y1 int) (core.Color, bool) {
	b := img.Bounds()
	var sumR, sumG, sumB, n uint64

	for y := y0; y < y1; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, a := img.At(x, y).RGBA()
			r8, g8, b8 := uint8(r>>8), uint8(g>>8), uint8(bl>>8)
			if a < 0x8000 || (r8 == 0xFF && g8 == 0x00 && b8 == 0xFF) {
				continue
			}
			sumR += uint64(r8)
			sumG += uint64(g8)
			sumB += uint64(b8)
			n++
		}
	}

	if n == 0 {
		return core.Color{}, false
	}
	return core.RGB(uint8(sumR/n), uint8(sumG/n), uint8(sumB/n)), true
}
