package world

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-tiles/internal/core"
)

// ErrInvalidGrid is returned for malformed grid input.
var ErrInvalidGrid = errors.New("world: invalid grid")

// Grid is a rows×columns array of tiles with a fixed tile size in pixels.
type Grid struct {
	rows  int
	cols  int
	cells [][]Tile
	tileW float64
	tileH float64
}

// NewGrid wraps cells (indexed [row][col]) into a grid. Every row must have
// the same non-zero length and the tile size must be positive.
// The grid takes ownership of cells.
func NewGrid(cells [][]Tile, tileW, tileH float64) (*Grid, error) {
	if tileW <= 0 || tileH <= 0 {
		return nil, fmt.Errorf("%w: tile size %vx%v", ErrInvalidGrid, tileW, tileH)
	}
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, fmt.Errorf("%w: empty grid", ErrInvalidGrid)
	}

	cols := len(cells[0])
	for r, row := range cells {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, expected %d", ErrInvalidGrid, r, len(row), cols)
		}
		for c := range row {
			if row[c].Proto == nil {
				return nil, fmt.Errorf("%w: tile (%d, %d) has no prototype", ErrInvalidGrid, r, c)
			}
		}
	}

	return &Grid{
		rows:  len(cells),
		cols:  cols,
		cells: cells,
		tileW: tileW,
		tileH: tileH,
	}, nil
}

// Rows returns the number of tile rows.
func (g *Grid) Rows() int {
	return g.rows
}

// Columns returns the number of tile columns.
func (g *Grid) Columns() int {
	return g.cols
}

// TileWidth returns the tile width in pixels.
func (g *Grid) TileWidth() float64 {
	return g.tileW
}

// TileHeight returns the tile height in pixels.
func (g *Grid) TileHeight() float64 {
	return g.tileH
}

// Width returns the world width in pixels.
func (g *Grid) Width() float64 {
	return float64(g.cols) * g.tileW
}

// Height returns the world height in pixels.
func (g *Grid) Height() float64 {
	return float64(g.rows) * g.tileH
}

// Bounds returns the world rectangle in pixels, anchored at the origin.
func (g *Grid) Bounds() core.Rect {
	return core.NewRect(0, 0, g.Width(), g.Height())
}

// At returns the tile at (row, col).
func (g *Grid) At(row, col int) (*Tile, bool) {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return nil, false
	}
	return &g.cells[row][col], true
}

// IndexAt returns the (row, col) index of the tile containing the world
// point (x, y). The result may be outside the grid.
func (g *Grid) IndexAt(x, y float64) (row, col int) {
	return core.FloorIndex(y, g.tileH), core.FloorIndex(x, g.tileW)
}

// TileAt returns the tile containing the world point (x, y).
func (g *Grid) TileAt(x, y float64) (*Tile, bool) {
	row, col := g.IndexAt(x, y)
	return g.At(row, col)
}

// Walkable reports whether the tile at (row, col) exists and is walkable.
func (g *Grid) Walkable(row, col int) bool {
	t, ok := g.At(row, col)
	return ok && t.Walkable()
}
