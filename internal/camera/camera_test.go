package camera

import (
	"testing"

	"github.com/vovakirdan/tui-tiles/internal/core"
)

func worldBounds(w, h float64) Bounds {
	return Bounds{MinX: 0, MaxX: w, MinY: 0, MaxY: h}
}

func TestNewStartsAtTopLeft(t *testing.T) {
	c := New(300, 300, worldBounds(640, 640), 10, 10)

	if c.X() != 150 || c.Y() != 150 {
		t.Errorf("centre = (%v, %v), expected (150, 150)", c.X(), c.Y())
	}
	if c.Left() != 0 || c.Top() != 0 || c.Right() != 300 || c.Bottom() != 300 {
		t.Errorf("edges = %v,%v,%v,%v, expected 0,0,300,300", c.Left(), c.Top(), c.Right(), c.Bottom())
	}
	if !c.Dirty() {
		t.Error("new camera should be dirty")
	}
}

func TestMoveSteps(t *testing.T) {
	c := New(300, 300, worldBounds(640, 640), 10, 20)

	c.MoveRight()
	if c.Left() != 10 {
		t.Errorf("Left() after MoveRight = %v, expected 10", c.Left())
	}
	c.MoveDown()
	if c.Top() != 20 {
		t.Errorf("Top() after MoveDown = %v, expected 20", c.Top())
	}
	c.MoveLeft()
	c.MoveUp()
	if x, y := c.TopLeft(); x != 0 || y != 0 {
		t.Errorf("TopLeft() = (%v, %v), expected (0, 0)", x, y)
	}
}

func TestMoveSnapsToEdge(t *testing.T) {
	tests := []struct {
		name      string
		start     [2]float64 // top-left
		dir       Direction
		wantLeft  float64
		wantTop   float64
		wantRight float64
	}{
		{"left partial step", [2]float64{4, 0}, Left, 0, 0, 300},
		{"right partial step", [2]float64{335, 0}, Right, 340, 0, 640},
		{"up partial step", [2]float64{0, 7}, Up, 0, 0, 300},
		{"down partial step", [2]float64{0, 333}, Down, 0, 340, 300},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := New(300, 300, worldBounds(640, 640), 10, 10)
			c.SetTopLeft(tc.start[0], tc.start[1])
			c.Move(tc.dir)

			if c.Left() != tc.wantLeft || c.Top() != tc.wantTop || c.Right() != tc.wantRight {
				t.Errorf("after %s: left=%v top=%v right=%v, expected %v %v %v",
					tc.dir, c.Left(), c.Top(), c.Right(), tc.wantLeft, tc.wantTop, tc.wantRight)
			}
		})
	}
}

func TestClampIdempotentAtWall(t *testing.T) {
	c := New(300, 300, worldBounds(640, 640), 10, 10)

	c.MoveLeft()
	x := c.X()
	c.ClearDirty()
	for i := 0; i < 5; i++ {
		c.MoveLeft()
		if c.X() != x {
			t.Fatalf("MoveLeft() at wall changed x to %v, expected %v", c.X(), x)
		}
	}
	if c.Dirty() {
		t.Error("moves at a wall should not mark the camera dirty")
	}

	for i := 0; i < 100; i++ {
		c.MoveDown()
	}
	y := c.Y()
	c.MoveDown()
	if c.Y() != y || c.Bottom() != 640 {
		t.Errorf("MoveDown() at wall: y=%v bottom=%v, expected y=%v bottom=640", c.Y(), c.Bottom(), y)
	}
}

func TestStaysInBoundsOverMoveSequence(t *testing.T) {
	b := worldBounds(1000, 700)
	c := New(320, 240, b, 37, 23)

	// Deterministic pseudo-random walk.
	seed := uint32(12345)
	for i := 0; i < 2000; i++ {
		seed = seed*1664525 + 1013904223
		c.Move(Direction(seed >> 30))

		if c.Left() < b.MinX || c.Right() > b.MaxX || c.Top() < b.MinY || c.Bottom() > b.MaxY {
			t.Fatalf("step %d: viewport %+v escaped bounds %+v", i, c.Rect(), b)
		}
		if w, h := c.Right()-c.Left(), c.Bottom()-c.Top(); w != 320 || h != 240 {
			t.Fatalf("step %d: viewport size = %vx%v, expected 320x240", i, w, h)
		}
	}
}

func TestSmallWorldIsCentred(t *testing.T) {
	c := New(300, 300, worldBounds(64, 48), 10, 10)

	if c.X() != 32 || c.Y() != 24 {
		t.Errorf("centre = (%v, %v), expected (32, 24)", c.X(), c.Y())
	}
	for _, d := range []Direction{Left, Right, Up, Down} {
		c.Move(d)
		if c.X() != 32 || c.Y() != 24 {
			t.Errorf("Move(%s) moved a centred camera to (%v, %v)", d, c.X(), c.Y())
		}
	}
	if c.Left() != -118 || c.Top() != -126 {
		t.Errorf("TopLeft = (%v, %v), expected (-118, -126)", c.Left(), c.Top())
	}
}

func TestSingleAxisSmallWorld(t *testing.T) {
	// Wide but short world: x scrolls, y stays centred.
	c := New(300, 300, worldBounds(1000, 100), 10, 10)

	c.MoveRight()
	if c.Left() != 10 {
		t.Errorf("Left() = %v, expected 10", c.Left())
	}
	c.MoveDown()
	if c.Y() != 50 {
		t.Errorf("Y() = %v, expected 50", c.Y())
	}
}

func TestCenterOnClamps(t *testing.T) {
	c := New(200, 100, worldBounds(800, 600), 10, 10)

	c.CenterOn(10000, -50)
	if c.Right() != 800 || c.Top() != 0 {
		t.Errorf("CenterOn clamp: right=%v top=%v, expected 800 and 0", c.Right(), c.Top())
	}

	c.CenterOn(400, 300)
	if c.X() != 400 || c.Y() != 300 {
		t.Errorf("CenterOn(400, 300) = (%v, %v)", c.X(), c.Y())
	}
}

func TestSetViewSizeReclamps(t *testing.T) {
	c := New(200, 100, worldBounds(800, 600), 10, 10)
	c.SetTopLeft(600, 500)
	c.ClearDirty()

	c.SetViewSize(400, 200)
	if c.Right() != 800 || c.Bottom() != 600 {
		t.Errorf("after resize: right=%v bottom=%v, expected 800 and 600", c.Right(), c.Bottom())
	}
	if !c.Dirty() {
		t.Error("resize should mark the camera dirty")
	}
	if w, h := c.ViewSize(); w != 400 || h != 200 {
		t.Errorf("ViewSize() = (%v, %v)", w, h)
	}
}

func TestRectMatchesEdges(t *testing.T) {
	c := New(300, 200, worldBounds(640, 640), 10, 10)
	c.MoveRight()
	want := core.NewRect(10, 0, 300, 200)
	if got := c.Rect(); got != want {
		t.Errorf("Rect() = %+v, expected %+v", got, want)
	}
}

func TestBoundsOf(t *testing.T) {
	b := BoundsOf(core.NewRect(5, 10, 100, 50))
	if b.MinX != 5 || b.MaxX != 105 || b.MinY != 10 || b.MaxY != 60 {
		t.Errorf("BoundsOf() = %+v", b)
	}
	if b.Width() != 100 || b.Height() != 50 {
		t.Errorf("size = %vx%v", b.Width(), b.Height())
	}
}

func TestDirectionString(t *testing.T) {
	if Left.String() != "left" || Down.String() != "down" || Direction(9).String() != "unknown" {
		t.Error("unexpected direction names")
	}
}
