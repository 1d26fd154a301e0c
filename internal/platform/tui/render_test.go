package tui

import (
	"image"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-tiles/internal/asset"
	"github.com/vovakirdan/tui-tiles/internal/core"
	"github.com/vovakirdan/tui-tiles/internal/world"
)

var (
	grassTop    = core.RGB(60, 140, 60)
	grassBottom = core.RGB(50, 120, 50)
	waterTop    = core.RGB(40, 90, 200)
	waterBottom = core.RGB(30, 80, 180)
	flagColor   = core.RGB(200, 30, 30)
)

func glyphAsset(g asset.Glyph) *asset.Asset {
	return &asset.Asset{Kind: asset.KindGlyph, Bounds: image.Rect(0, 0, 16, 16), Glyph: g}
}

// renderGrid is a 2x2 grid of 16x32 px tiles; with 8x16 px cells each tile
// covers 2x2 terminal cells. Tile (1,1) carries a decoration that only has
// an upper half.
func renderGrid(t *testing.T) *world.Grid {
	t.Helper()
	grass := &world.TilePrototype{
		Name:  "grass",
		Image: glyphAsset(asset.Glyph{Top: grassTop, Bottom: grassBottom, HasTop: true, HasBottom: true}),
	}
	water := &world.TilePrototype{
		Name:  "water",
		Image: glyphAsset(asset.Glyph{Top: waterTop, Bottom: waterBottom, HasTop: true, HasBottom: true}),
	}
	flag := &world.DecorationPrototype{
		Name:  "flag",
		Image: glyphAsset(asset.Glyph{Top: flagColor, HasTop: true}),
	}

	cells := [][]world.Tile{
		{{Proto: grass}, {Proto: water}},
		{{Proto: water}, {Proto: grass, Decorations: []world.Decoration{{Proto: flag}}}},
	}
	g, err := world.NewGrid(cells, 16, 32)
	if err != nil {
		t.Fatalf("NewGrid() failed: %v", err)
	}
	return g
}

func TestDrawSubset(t *testing.T) {
	g := renderGrid(t)
	screen := core.NewScreen(4, 4)
	DrawSubset(screen, g.VisibleSubset(core.NewRect(0, 0, 32, 64)), 8, 16, screen.Height())

	tests := []struct {
		x, y   int
		fg, bg core.Color
	}{
		{0, 0, grassTop, grassTop},
		{1, 1, grassBottom, grassBottom},
		{2, 0, waterTop, waterTop},
		{3, 1, waterBottom, waterBottom},
		{0, 2, waterTop, waterTop},
		{2, 2, flagColor, flagColor},     // decoration over the upper half
		{3, 3, grassBottom, grassBottom}, // no decoration pixels in the lower half
	}

	for _, tt := range tests {
		cell := screen.GetCell(tt.x, tt.y)
		if cell.Rune != core.HalfBlock {
			t.Errorf("cell (%d,%d) rune = %q, expected %q", tt.x, tt.y, cell.Rune, core.HalfBlock)
		}
		if cell.Fg != tt.fg || cell.Bg != tt.bg {
			t.Errorf("cell (%d,%d) = %v/%v, expected %v/%v", tt.x, tt.y, cell.Fg, cell.Bg, tt.fg, tt.bg)
		}
	}
}

func TestDrawSubsetSplitCell(t *testing.T) {
	g := renderGrid(t)
	screen := core.NewScreen(4, 4)
	// Shift by half a cell so each terminal row straddles a tile's halves.
	DrawSubset(screen, g.VisibleSubset(core.NewRect(0, 8, 32, 48)), 8, 16, screen.Height())

	cell := screen.GetCell(0, 0)
	if cell.Fg != grassTop || cell.Bg != grassBottom {
		t.Errorf("cell (0,0) = %v/%v, expected %v/%v", cell.Fg, cell.Bg, grassTop, grassBottom)
	}
}

func TestDrawSubsetSmallWorldMargins(t *testing.T) {
	g := renderGrid(t)
	screen := core.NewScreen(8, 8)
	// Camera centring a 32x64 world in a 64x128 viewport.
	DrawSubset(screen, g.VisibleSubset(core.NewRect(-16, -32, 64, 128)), 8, 16, screen.Height())

	margin := screen.GetCell(0, 0)
	if margin.Rune != ' ' || margin.Bg != core.ColorVoid {
		t.Errorf("margin cell = %q %v, expected blank void", margin.Rune, margin.Bg)
	}
	if cell := screen.GetCell(2, 2); cell.Fg != grassTop {
		t.Errorf("cell (2,2) fg = %v, expected %v", cell.Fg, grassTop)
	}
	if cell := screen.GetCell(7, 7); cell.Rune != ' ' {
		t.Errorf("cell (7,7) rune = %q, expected blank", cell.Rune)
	}
}

func TestDrawSubsetRowLimit(t *testing.T) {
	g := renderGrid(t)
	screen := core.NewScreen(4, 4)
	DrawSubset(screen, g.VisibleSubset(core.NewRect(0, 0, 32, 64)), 8, 16, 2)

	if cell := screen.GetCell(0, 2); cell.Rune != ' ' {
		t.Errorf("cell below the row limit = %q, expected blank", cell.Rune)
	}
	if cell := screen.GetCell(0, 1); cell.Rune != core.HalfBlock {
		t.Errorf("cell inside the row limit = %q, expected %q", cell.Rune, core.HalfBlock)
	}
}

func TestRenderScreen(t *testing.T) {
	g := renderGrid(t)
	screen := core.NewScreen(4, 3)
	DrawSubset(screen, g.VisibleSubset(core.NewRect(0, 0, 32, 48)), 8, 16, screen.Height())

	out := RenderScreen(screen)
	if got := strings.Count(out, "\n"); got != 2 {
		t.Errorf("RenderScreen() line breaks = %d, expected 2", got)
	}
	if got := strings.Count(out, string(core.HalfBlock)); got != 12 {
		t.Errorf("RenderScreen() half blocks = %d, expected 12", got)
	}
}
