package core

// RuntimeConfig contains configuration passed to the viewer at start-up.
type RuntimeConfig struct {
	ScreenW  int     // Screen width in characters
	ScreenH  int     // Screen height in characters
	TickRate int     // Render ticks per second (default 30)
	CellW    float64 // World pixels covered by one terminal column
	CellH    float64 // World pixels covered by one terminal row
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		CellW:    8,
		CellH:    16,
	}
}

// ViewportSize returns the world-space size shown by a screen of the given
// character dimensions, reserving statusRows rows for the status line.
func (c RuntimeConfig) ViewportSize(statusRows int) (float64, float64) {
	rows := c.ScreenH - statusRows
	if rows < 1 {
		rows = 1
	}
	cols := c.ScreenW
	if cols < 1 {
		cols = 1
	}
	return float64(cols) * c.CellW, float64(rows) * c.CellH
}
