package canvas

// Color is an 8-bit RGB triple. It is a plain value; stores and layers
// pass copies around and never retain references.
type Color struct {
	R uint8
	G uint8
	B uint8
}

// RGB builds a Color from individual channels.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Invert returns the channel-wise complement of c.
func (c Color) Invert() Color {
	return Color{R: 255 - c.R, G: 255 - c.G, B: 255 - c.B}
}
