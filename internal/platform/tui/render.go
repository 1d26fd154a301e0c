package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tiles/internal/core"
	"github.com/vovakirdan/tui-tiles/internal/world"
)

// DrawSubset paints the visible tiles into the top rows of dst.
//
// Every terminal cell covers cellW × cellH world pixels and shows two
// half-block pixels stacked vertically. Each half samples the world at its
// centre: the tile under the sample supplies its glyph colour for the half
// of the tile the sample falls in, and decorations on that tile paint over
// it where their glyph is opaque. Samples outside the subset stay void.
func DrawSubset(dst *core.Screen, sub world.Subset, cellW, cellH float64, rows int) {
	rows = min(rows, dst.Height())
	if sub.Empty() || rows <= 0 {
		return
	}

	tileW, tileH := sub.TileSize()
	originX, originY := sub.Place(0, 0)
	halfH := cellH / 2

	for hy := 0; hy < rows*2; hy++ {
		py := (float64(hy)+0.5)*halfH - originY
		r := int(math.Floor(py / tileH))
		if r < 0 || r >= sub.Rows() {
			continue
		}
		upper := py-float64(r)*tileH < tileH/2

		for x := 0; x < dst.Width(); x++ {
			px := (float64(x)+0.5)*cellW - originX
			c := int(math.Floor(px / tileW))
			if c < 0 || c >= sub.Columns() {
				continue
			}
			if color, ok := tileColor(sub.Tiles[r][c], upper); ok {
				dst.SetHalf(x, hy, color)
			}
		}
	}
}

// tileColor resolves one half of a tile, topmost decoration first.
func tileColor(t *world.Tile, upper bool) (core.Color, bool) {
	for i := len(t.Decorations) - 1; i >= 0; i-- {
		if img := t.Decorations[i].Proto.Image; img != nil {
			if color, ok := img.Glyph.Half(upper); ok {
				return color, true
			}
		}
	}
	if t.Proto.Image == nil {
		return core.Color{}, false
	}
	return t.Proto.Image.Glyph.Half(upper)
}

type cellStyleKey struct {
	fg, bg core.Color
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colours to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*4 + s.Height())

	styles := make(map[cellStyleKey]lipgloss.Style)
	styleFor := func(k cellStyleKey) lipgloss.Style {
		st, ok := styles[k]
		if !ok {
			st = lipgloss.NewStyle().
				Foreground(lipgloss.Color(k.fg.Hex())).
				Background(lipgloss.Color(k.bg.Hex()))
			styles[k] = st
		}
		return st
	}

	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same colours for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			k := cellStyleKey{fg: cell.Fg, bg: cell.Bg}

			// Collect consecutive cells with same colours
			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Fg != k.fg || cell.Bg != k.bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(k).Render(run.String()))
		}
	}
	return sb.String()
}
