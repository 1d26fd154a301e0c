// Package camera tracks a viewport rectangle moving over a bounded world.
//
// The camera stores its centre; the edges are derived from the centre and
// the viewport size after every mutation. Moves clamp to the world bounds
// instead of failing. On an axis where the world is smaller than the
// viewport the camera stays centred on the world and shows margins.
package camera

import (
	"github.com/vovakirdan/tui-tiles/internal/core"
)

// Bounds is the world extent the viewport must stay inside.
type Bounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// BoundsOf converts a rectangle into camera bounds.
func BoundsOf(r core.Rect) Bounds {
	return Bounds{MinX: r.X, MaxX: r.Right(), MinY: r.Y, MaxY: r.Bottom()}
}

// Width returns MaxX - MinX.
func (b Bounds) Width() float64 { return b.MaxX - b.MinX }

// Height returns MaxY - MinY.
func (b Bounds) Height() float64 { return b.MaxY - b.MinY }

// Direction is one of the four scroll directions.
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

// String returns the lower-case direction name.
func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "unknown"
	}
}

// Camera is a viewport of fixed size positioned inside Bounds.
type Camera struct {
	x, y         float64 // centre in world space
	viewW, viewH float64
	bounds       Bounds
	stepX, stepY float64

	left, right float64
	top, bottom float64

	dirty bool
}

// New creates a camera with its viewport at the top-left corner of bounds.
// stepX and stepY are the distances moved by one scroll command.
func New(viewW, viewH float64, bounds Bounds, stepX, stepY float64) *Camera {
	c := &Camera{
		viewW:  viewW,
		viewH:  viewH,
		bounds: bounds,
		stepX:  stepX,
		stepY:  stepY,
	}
	c.x = bounds.MinX + viewW/2
	c.y = bounds.MinY + viewH/2
	c.settle()
	c.dirty = true
	return c
}

// MoveLeft scrolls left by one step, snapping to the left bound when a full
// step would cross it.
func (c *Camera) MoveLeft() {
	if c.fitsX() {
		if c.x-c.viewW/2-c.stepX >= c.bounds.MinX {
			c.x -= c.stepX
		} else {
			c.x = c.bounds.MinX + c.viewW/2
		}
	}
	c.settle()
}

// MoveRight scrolls right by one step, snapping to the right bound.
func (c *Camera) MoveRight() {
	if c.fitsX() {
		if c.x+c.viewW/2+c.stepX <= c.bounds.MaxX {
			c.x += c.stepX
		} else {
			c.x = c.bounds.MaxX - c.viewW/2
		}
	}
	c.settle()
}

// MoveUp scrolls up by one step, snapping to the top bound.
func (c *Camera) MoveUp() {
	if c.fitsY() {
		if c.y-c.viewH/2-c.stepY >= c.bounds.MinY {
			c.y -= c.stepY
		} else {
			c.y = c.bounds.MinY + c.viewH/2
		}
	}
	c.settle()
}

// MoveDown scrolls down by one step, snapping to the bottom bound.
func (c *Camera) MoveDown() {
	if c.fitsY() {
		if c.y+c.viewH/2+c.stepY <= c.bounds.MaxY {
			c.y += c.stepY
		} else {
			c.y = c.bounds.MaxY - c.viewH/2
		}
	}
	c.settle()
}

// Move dispatches to the directional move for d.
func (c *Camera) Move(d Direction) {
	switch d {
	case Left:
		c.MoveLeft()
	case Right:
		c.MoveRight()
	case Up:
		c.MoveUp()
	case Down:
		c.MoveDown()
	}
}

// CenterOn moves the camera centre to (x, y), clamped to the bounds.
func (c *Camera) CenterOn(x, y float64) {
	c.x, c.y = x, y
	c.settle()
}

// SetTopLeft positions the viewport's top-left corner at (left, top),
// clamped to the bounds.
func (c *Camera) SetTopLeft(left, top float64) {
	c.CenterOn(left+c.viewW/2, top+c.viewH/2)
}

// SetViewSize changes the viewport size, keeping the centre where possible.
func (c *Camera) SetViewSize(w, h float64) {
	c.viewW, c.viewH = w, h
	c.settle()
}

// settle clamps the centre into the bounds and recomputes the edges.
// It marks the camera dirty when anything changed.
func (c *Camera) settle() {
	x, y := c.x, c.y
	if c.fitsX() {
		x = core.ClampF(x, c.bounds.MinX+c.viewW/2, c.bounds.MaxX-c.viewW/2)
	} else {
		x = c.bounds.MinX + c.bounds.Width()/2
	}
	if c.fitsY() {
		y = core.ClampF(y, c.bounds.MinY+c.viewH/2, c.bounds.MaxY-c.viewH/2)
	} else {
		y = c.bounds.MinY + c.bounds.Height()/2
	}
	c.x, c.y = x, y

	left, right := x-c.viewW/2, x+c.viewW/2
	top, bottom := y-c.viewH/2, y+c.viewH/2
	if left != c.left || right != c.right || top != c.top || bottom != c.bottom {
		c.dirty = true
	}
	c.left, c.right, c.top, c.bottom = left, right, top, bottom
}

func (c *Camera) fitsX() bool { return c.bounds.Width() >= c.viewW }
func (c *Camera) fitsY() bool { return c.bounds.Height() >= c.viewH }

// X returns the centre x coordinate.
func (c *Camera) X() float64 { return c.x }

// Y returns the centre y coordinate.
func (c *Camera) Y() float64 { return c.y }

// Left returns the viewport's left edge.
func (c *Camera) Left() float64 { return c.left }

// Right returns the viewport's right edge.
func (c *Camera) Right() float64 { return c.right }

// Top returns the viewport's top edge.
func (c *Camera) Top() float64 { return c.top }

// Bottom returns the viewport's bottom edge.
func (c *Camera) Bottom() float64 { return c.bottom }

// TopLeft returns the viewport's top-left corner.
func (c *Camera) TopLeft() (float64, float64) { return c.left, c.top }

// ViewSize returns the viewport size.
func (c *Camera) ViewSize() (float64, float64) { return c.viewW, c.viewH }

// Bounds returns the world bounds.
func (c *Camera) Bounds() Bounds { return c.bounds }

// Rect returns the viewport rectangle in world space.
func (c *Camera) Rect() core.Rect {
	return core.RectFromEdges(c.left, c.top, c.right, c.bottom)
}

// Dirty reports whether the viewport moved since the last ClearDirty.
func (c *Camera) Dirty() bool { return c.dirty }

// ClearDirty resets the dirty flag after the caller consumed the new view.
func (c *Camera) ClearDirty() { c.dirty = false }
