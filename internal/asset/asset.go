// Package asset loads image resources by path and memoizes them so every
// prototype that names the same file shares one decoded handle.
package asset

import (
	"image"

	"github.com/vovakirdan/tui-tiles/internal/core"
)

// Kind tags what a cached asset was decoded into.
type Kind uint8

const (
	// KindImage keeps the full decoded image. Used by the PNG snapshot renderer.
	KindImage Kind = iota + 1
	// KindGlyph reduces the image to a single half-block terminal cell.
	KindGlyph
)

// String returns the kind name used in log output.
func (k Kind) String() string {
	switch k {
	case KindImage:
		return "image"
	case KindGlyph:
		return "glyph"
	default:
		return "unknown"
	}
}

// Glyph is an image reduced to one terminal cell drawn with core.HalfBlock.
// Top is the average colour of the upper half of the image, Bottom of the
// lower half. A half with no opaque pixels is reported as absent so
// decorations can be layered over tiles.
type Glyph struct {
	Top       core.Color
	Bottom    core.Color
	HasTop    bool
	HasBottom bool
}

// Half returns the colour of the upper or lower half and whether that half
// has any opaque pixels.
func (g Glyph) Half(upper bool) (core.Color, bool) {
	if upper {
		return g.Top, g.HasTop
	}
	return g.Bottom, g.HasBottom
}

// Asset is a shared, kind-tagged handle to a loaded resource.
// Handles are never mutated after the cache hands them out.
type Asset struct {
	Path   string
	Kind   Kind
	Bounds image.Rectangle

	// Image is set for KindImage.
	Image image.Image
	// Glyph is set for KindGlyph.
	Glyph Glyph
}

// Width returns the source image width in pixels.
func (a *Asset) Width() int {
	return a.Bounds.Dx()
}

// Height returns the source image height in pixels.
func (a *Asset) Height() int {
	return a.Bounds.Dy()
}

// decode wraps a raw image into an asset of the requested kind.
func decode(kind Kind, path string, img image.Image) *Asset {
	a := &Asset{
		Path:   path,
		Kind:   kind,
		Bounds: img.Bounds(),
	}
	switch kind {
	case KindGlyph:
		a.Glyph = GlyphOf(img)
	default:
		a.Image = img
	}
	return a
}
