// Package snapshot renders a visible subset to a still image, using the
// full-resolution tile and decoration images instead of terminal glyphs.
package snapshot

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	xdraw "golang.org/x/image/draw"

	"github.com/vovakirdan/tui-tiles/internal/core"
	"github.com/vovakirdan/tui-tiles/internal/world"
)

// Render draws sub into a width × height image, one image pixel per world
// pixel. Tiles go first, then their decorations in placement order.
// Area outside the world is filled with core.ColorVoid.
func Render(sub world.Subset, width, height int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	void := core.ColorVoid
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.RGBA{void.R, void.G, void.B, 0xff}), image.Point{}, draw.Src)

	tileW, tileH := sub.TileSize()
	sub.Each(func(_, _ int, t *world.Tile, x, y float64) {
		r := image.Rect(
			int(math.Floor(x)), int(math.Floor(y)),
			int(math.Floor(x+tileW)), int(math.Floor(y+tileH)),
		)
		if t.Proto != nil && t.Proto.Image != nil && t.Proto.Image.Image != nil {
			drawScaled(dst, r, t.Proto.Image.Image, draw.Src)
		}
		for _, d := range t.Decorations {
			if d.Proto.Image != nil && d.Proto.Image.Image != nil {
				drawScaled(dst, r, d.Proto.Image.Image, draw.Over)
			}
		}
	})
	return dst
}

// drawScaled draws src stretched over r with nearest-neighbour sampling.
// With draw.Over transparent decoration pixels leave the tile underneath.
func drawScaled(dst draw.Image, r image.Rectangle, src image.Image, op draw.Op) {
	xdraw.NearestNeighbor.Scale(dst, r, src, src.Bounds(), op, nil)
}

// Encode writes img as PNG.
func Encode(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("snapshot: encode: %w", err)
	}
	return nil
}
