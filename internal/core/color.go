package core

// Color is a cell's foreground color. The platform maps each value to an
// ANSI 256-color code; games never see escape sequences.
type Color uint8

// Palette. Bright variants follow their base color in the same order.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

const brightOffset = ColorBrightRed - ColorRed

// Dim returns the next step toward gray: bright colors drop to their base
// color, orange to yellow, everything else to gray.
func (c Color) Dim() Color {
	switch {
	case c >= ColorBrightRed && c <= ColorBrightWhite:
		return c - brightOffset
	case c == ColorOrange:
		return ColorYellow
	default:
		return ColorGray
	}
}
