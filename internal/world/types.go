// Package world holds the tile grid and the viewport culling algorithm.
// Tiles reference shared prototypes from the tile and decoration libraries;
// the grid is built once and read-only afterwards, so it can be shared by
// any number of cameras without locking.
package world

import (
	"github.com/vovakirdan/tui-tiles/internal/asset"
	"github.com/vovakirdan/tui-tiles/internal/proto"
)

// TilePrototype is the shared description of one tile type.
type TilePrototype struct {
	Name     string
	Image    *asset.Asset
	Walkable bool
}

// DecorationPrototype is the shared description of one decoration type.
type DecorationPrototype struct {
	Name  string
	Image *asset.Asset
}

// Decoration is one placed instance of a decoration prototype.
type Decoration struct {
	Proto *DecorationPrototype
}

// Tile is one grid cell. It references, but does not own, its prototype.
type Tile struct {
	Proto       *TilePrototype
	Decorations []Decoration
}

// Walkable reports whether actors may stand on the tile.
func (t *Tile) Walkable() bool {
	return t.Proto != nil && t.Proto.Walkable
}

// TileLibrary is the registry of tile prototypes.
type TileLibrary = proto.Library[TilePrototype]

// DecorationLibrary is the registry of decoration prototypes.
type DecorationLibrary = proto.Library[DecorationPrototype]

// NewTileLibrary creates an empty tile prototype library.
func NewTileLibrary() *TileLibrary {
	return proto.NewLibrary[TilePrototype]("tile")
}

// NewDecorationLibrary creates an empty decoration prototype library.
func NewDecorationLibrary() *DecorationLibrary {
	return proto.NewLibrary[DecorationPrototype]("decoration")
}
