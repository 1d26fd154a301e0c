package world

import (
	"math"

	"github.com/vovakirdan/tui-tiles/internal/core"
)

// Subset is the block of tiles covering a viewport, in row-major order
// (Tiles[0] is the topmost visible row), plus the sub-tile alignment the
// renderer needs for smooth scrolling.
type Subset struct {
	Tiles [][]*Tile

	// FirstRow and FirstCol are the grid indices of Tiles[0][0].
	FirstRow int
	FirstCol int

	// OffsetX is tileW - (left mod tileW), or 0 when the viewport's left edge
	// sits on a tile boundary. OffsetY is the same for the top edge.
	OffsetX float64
	OffsetY float64

	view  core.Rect
	tileW float64
	tileH float64
}

// VisibleSubset returns every tile intersecting view.
//
// Indices are floor(edge / tileSize) on all four edges and the far indices
// are inclusive, so a viewport that does not align to the grid gets the
// partially visible trailing tile as well. Far indices are clamped to the
// last row/column. Leading indices are clamped to 0; they only go negative
// when the camera centres a world smaller than the viewport.
func (g *Grid) VisibleSubset(view core.Rect) Subset {
	idxLeft := core.FloorIndex(view.X, g.tileW)
	idxTop := core.FloorIndex(view.Y, g.tileH)
	idxRight := core.FloorIndex(view.Right(), g.tileW)
	idxBottom := core.FloorIndex(view.Bottom(), g.tileH)

	if idxRight >= g.cols {
		idxRight = g.cols - 1
	}
	if idxBottom >= g.rows {
		idxBottom = g.rows - 1
	}
	if idxLeft < 0 {
		idxLeft = 0
	}
	if idxTop < 0 {
		idxTop = 0
	}

	sub := Subset{
		FirstRow: idxTop,
		FirstCol: idxLeft,
		OffsetX:  subTileOffset(view.X, g.tileW),
		OffsetY:  subTileOffset(view.Y, g.tileH),
		view:     view,
		tileW:    g.tileW,
		tileH:    g.tileH,
	}

	// Viewport entirely outside the grid.
	if idxLeft > idxRight || idxTop > idxBottom {
		return sub
	}

	sub.Tiles = make([][]*Tile, idxBottom-idxTop+1)
	for r := range sub.Tiles {
		src := g.cells[idxTop+r]
		row := make([]*Tile, idxRight-idxLeft+1)
		for c := range row {
			row[c] = &src[idxLeft+c]
		}
		sub.Tiles[r] = row
	}
	return sub
}

// subTileOffset measures edge against the grid origin.
func subTileOffset(edge, size float64) float64 {
	rem := math.Mod(edge, size)
	if rem < 0 {
		rem += size
	}
	if rem == 0 {
		return 0
	}
	return size - rem
}

// Rows returns the number of visible tile rows.
func (s Subset) Rows() int {
	return len(s.Tiles)
}

// Columns returns the number of visible tile columns.
func (s Subset) Columns() int {
	if len(s.Tiles) == 0 {
		return 0
	}
	return len(s.Tiles[0])
}

// Empty reports whether no tile is visible.
func (s Subset) Empty() bool {
	return len(s.Tiles) == 0
}

// View returns the viewport rectangle the subset was computed for.
func (s Subset) View() core.Rect {
	return s.view
}

// TileSize returns the tile size in pixels.
func (s Subset) TileSize() (float64, float64) {
	return s.tileW, s.tileH
}

// Place returns the viewport-relative pixel position of the top-left corner
// of Tiles[row][col]. With the viewport inside the world, column 0 lands at
// -(tileW - OffsetX) when OffsetX is non-zero and at 0 otherwise; each later
// column is one tile width further right. Rows work the same way.
func (s Subset) Place(row, col int) (x, y float64) {
	x = float64(s.FirstCol+col)*s.tileW - s.view.X
	y = float64(s.FirstRow+row)*s.tileH - s.view.Y
	return x, y
}

// Each calls fn for every visible tile in row-major order with its
// viewport-relative position.
func (s Subset) Each(fn func(row, col int, t *Tile, x, y float64)) {
	for r, tiles := range s.Tiles {
		for c, t := range tiles {
			x, y := s.Place(r, c)
			fn(r, c, t, x, y)
		}
	}
}
