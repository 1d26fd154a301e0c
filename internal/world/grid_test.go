package world

import (
	"errors"
	"image"
	"testing"

	"github.com/vovakirdan/tui-tiles/internal/asset"
)

// newTestGrid builds a rows×cols grid of walkable grass tiles that all share
// one prototype.
func newTestGrid(t *testing.T, rows, cols int, tw, th float64) (*Grid, *TilePrototype) {
	t.Helper()
	grass := &TilePrototype{
		Name:     "grass",
		Image:    &asset.Asset{Path: "tiles/grass.png", Kind: asset.KindGlyph, Bounds: image.Rect(0, 0, 16, 16)},
		Walkable: true,
	}
	cells := make([][]Tile, rows)
	for r := range cells {
		cells[r] = make([]Tile, cols)
		for c := range cells[r] {
			cells[r][c] = Tile{Proto: grass}
		}
	}
	g, err := NewGrid(cells, tw, th)
	if err != nil {
		t.Fatalf("NewGrid() failed: %v", err)
	}
	return g, grass
}

func TestNewGridDimensions(t *testing.T) {
	g, _ := newTestGrid(t, 10, 12, 64, 32)

	if g.Rows() != 10 || g.Columns() != 12 {
		t.Errorf("dimensions = %dx%d, expected 10x12", g.Rows(), g.Columns())
	}
	if g.Width() != 768 {
		t.Errorf("Width() = %v, expected 768", g.Width())
	}
	if g.Height() != 320 {
		t.Errorf("Height() = %v, expected 320", g.Height())
	}
	if g.TileWidth() != 64 || g.TileHeight() != 32 {
		t.Errorf("tile size = %vx%v, expected 64x32", g.TileWidth(), g.TileHeight())
	}
	b := g.Bounds()
	if b.X != 0 || b.Y != 0 || b.W != 768 || b.H != 320 {
		t.Errorf("Bounds() = %+v", b)
	}
}

func TestNewGridRejectsInvalidInput(t *testing.T) {
	proto := &TilePrototype{Name: "stone"}

	tests := []struct {
		name   string
		cells  [][]Tile
		tw, th float64
	}{
		{"zero tile width", [][]Tile{{{Proto: proto}}}, 0, 16},
		{"negative tile height", [][]Tile{{{Proto: proto}}}, 16, -1},
		{"no rows", nil, 16, 16},
		{"empty row", [][]Tile{{}}, 16, 16},
		{"ragged rows", [][]Tile{{{Proto: proto}, {Proto: proto}}, {{Proto: proto}}}, 16, 16},
		{"missing prototype", [][]Tile{{{Proto: proto}, {}}}, 16, 16},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewGrid(tc.cells, tc.tw, tc.th)
			if !errors.Is(err, ErrInvalidGrid) {
				t.Errorf("NewGrid() error = %v, expected ErrInvalidGrid", err)
			}
		})
	}
}

func TestIndexMapping(t *testing.T) {
	g, _ := newTestGrid(t, 10, 10, 64, 48)

	for x := 0.0; x < g.Width(); x += 7.5 {
		for y := 0.0; y < g.Height(); y += 5.25 {
			row, col := g.IndexAt(x, y)
			if col != int(x/64) || row != int(y/48) {
				t.Fatalf("IndexAt(%v, %v) = (%d, %d), expected (%d, %d)", x, y, row, col, int(y/48), int(x/64))
			}
			if _, ok := g.TileAt(x, y); !ok {
				t.Fatalf("TileAt(%v, %v) should be inside the grid", x, y)
			}
		}
	}
}

func TestAtBounds(t *testing.T) {
	g, grass := newTestGrid(t, 3, 4, 16, 16)

	tests := []struct {
		row, col int
		ok       bool
	}{
		{0, 0, true},
		{2, 3, true},
		{-1, 0, false},
		{0, -1, false},
		{3, 0, false},
		{0, 4, false},
	}

	for _, tc := range tests {
		tile, ok := g.At(tc.row, tc.col)
		if ok != tc.ok {
			t.Errorf("At(%d, %d) ok = %v, expected %v", tc.row, tc.col, ok, tc.ok)
		}
		if ok && tile.Proto != grass {
			t.Errorf("At(%d, %d) prototype = %v, expected grass", tc.row, tc.col, tile.Proto)
		}
	}
}

func TestWalkable(t *testing.T) {
	grass := &TilePrototype{Name: "grass", Walkable: true}
	water := &TilePrototype{Name: "water", Walkable: false}
	g, err := NewGrid([][]Tile{{{Proto: grass}, {Proto: water}}}, 16, 16)
	if err != nil {
		t.Fatalf("NewGrid() failed: %v", err)
	}

	if !g.Walkable(0, 0) {
		t.Error("grass should be walkable")
	}
	if g.Walkable(0, 1) {
		t.Error("water should not be walkable")
	}
	if g.Walkable(5, 5) {
		t.Error("out-of-grid tiles should not be walkable")
	}
}

func TestSharedPrototypes(t *testing.T) {
	bushImage := &asset.Asset{Path: "decorations/bush.png", Kind: asset.KindGlyph}
	bush := &DecorationPrototype{Name: "bush", Image: bushImage}
	grass := &TilePrototype{Name: "grass", Walkable: true}

	cells := [][]Tile{
		{{Proto: grass, Decorations: []Decoration{{Proto: bush}}}, {Proto: grass}},
		{{Proto: grass}, {Proto: grass, Decorations: []Decoration{{Proto: bush}}}},
	}
	g, err := NewGrid(cells, 16, 16)
	if err != nil {
		t.Fatalf("NewGrid() failed: %v", err)
	}

	a, _ := g.At(0, 0)
	b, _ := g.At(1, 1)
	if a.Decorations[0].Proto.Image != b.Decorations[0].Proto.Image {
		t.Error("decorations of the same type should share one image handle")
	}

	// Changing the shared prototype is seen by every tile that references it.
	grass.Walkable = false
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Columns(); c++ {
			if g.Walkable(r, c) {
				t.Errorf("tile (%d, %d) should observe the prototype change", r, c)
			}
		}
	}
}
