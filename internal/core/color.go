package core

import "fmt"

// Color is a 24-bit RGB colour used for screen cells.
type Color struct {
	R, G, B uint8
}

// RGB creates a colour from its components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Hex returns the colour as a "#rrggbb" string, the form lipgloss accepts.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Predefined colours for the viewer chrome.
var (
	ColorBlack = RGB(0, 0, 0)
	ColorWhite = RGB(255, 255, 255)
	ColorGray  = RGB(138, 138, 138)
	// ColorVoid fills screen area outside the world.
	ColorVoid = RGB(18, 18, 24)
)
