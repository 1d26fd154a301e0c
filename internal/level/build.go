package level

import (
	"errors"
	"fmt"
	"sort"

	"github.com/vovakirdan/tui-tiles/internal/asset"
	"github.com/vovakirdan/tui-tiles/internal/world"
)

// ErrInvalidLevel is returned by Build for levels that cannot form a grid.
var ErrInvalidLevel = errors.New("invalid level")

// World is a built level: the populated prototype libraries and the grid
// whose tiles reference them.
type World struct {
	Level       Level
	Tiles       *world.TileLibrary
	Decorations *world.DecorationLibrary
	Grid        *world.Grid
}

// Build populates the tile and decoration libraries through cache, loading
// every image as kind, and composes the grid from the layout and overlay.
//
// Prototypes are registered before any tile is created, so every tile of a
// given type shares one prototype and one image handle.
func Build(lvl Level, cache *asset.Cache, kind asset.Kind) (*World, error) {
	if lvl.TileW <= 0 || lvl.TileH <= 0 {
		return nil, invalid(lvl, "tile size %vx%v", lvl.TileW, lvl.TileH)
	}

	w := &World{
		Level:       lvl,
		Tiles:       world.NewTileLibrary(),
		Decorations: world.NewDecorationLibrary(),
	}

	for _, name := range sortedKeys(lvl.Tiles) {
		def := lvl.Tiles[name]
		img, err := cache.Load(kind, def.Image)
		if err != nil {
			return nil, fmt.Errorf("level %s: tile %q: %w", lvl.ID, name, err)
		}
		w.Tiles.Register(name, &world.TilePrototype{Name: name, Image: img, Walkable: def.Walkable})
	}

	for _, name := range sortedKeys(lvl.Decorations) {
		img, err := cache.Load(kind, lvl.Decorations[name])
		if err != nil {
			return nil, fmt.Errorf("level %s: decoration %q: %w", lvl.ID, name, err)
		}
		w.Decorations.Register(name, &world.DecorationPrototype{Name: name, Image: img})
	}

	cells, err := w.layout()
	if err != nil {
		return nil, err
	}
	if err := w.overlay(cells); err != nil {
		return nil, err
	}

	grid, err := world.NewGrid(cells, lvl.TileW, lvl.TileH)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", lvl.ID, err)
	}
	w.Grid = grid
	return w, nil
}

func (w *World) layout() ([][]world.Tile, error) {
	lvl := w.Level
	if len(lvl.Layout) == 0 {
		return nil, invalid(lvl, "empty layout")
	}

	cols := len([]rune(lvl.Layout[0]))
	cells := make([][]world.Tile, len(lvl.Layout))
	for r, line := range lvl.Layout {
		runes := []rune(line)
		if len(runes) != cols {
			return nil, invalid(lvl, "layout row %d has %d columns, expected %d", r, len(runes), cols)
		}

		row := make([]world.Tile, cols)
		for c, ch := range runes {
			name, ok := lvl.Legend[ch]
			if !ok {
				return nil, invalid(lvl, "row %d col %d: unknown legend character %q", r, c, ch)
			}
			proto, err := w.Tiles.Get(name)
			if err != nil {
				return nil, fmt.Errorf("level %s: row %d col %d: %w", lvl.ID, r, c, err)
			}
			row[c].Proto = proto
		}
		cells[r] = row
	}
	return cells, nil
}

func (w *World) overlay(cells [][]world.Tile) error {
	lvl := w.Level
	for i, p := range lvl.Overlay {
		if p.Row < 0 || p.Row >= len(cells) || p.Col < 0 || p.Col >= len(cells[p.Row]) {
			return invalid(lvl, "overlay %d: position (%d, %d) outside the layout", i, p.Row, p.Col)
		}
		proto, err := w.Decorations.Get(p.Decoration)
		if err != nil {
			return fmt.Errorf("level %s: overlay %d: %w", lvl.ID, i, err)
		}
		tile := &cells[p.Row][p.Col]
		tile.Decorations = append(tile.Decorations, world.Decoration{Proto: proto})
	}
	return nil
}

func invalid(lvl Level, format string, args ...any) error {
	return fmt.Errorf("level %s: %w: %s", lvl.ID, ErrInvalidLevel, fmt.Sprintf(format, args...))
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
