// Package palette ships a stock set of layer effects for tests and
// examples. The canvas engine itself stays effect-agnostic; consumers
// with their own effects can build a canvas.Registry directly and skip
// this package entirely.
package palette

import canvas "github.com/goliatone/go-canvas"

// Stock layer names, in registration order.
const (
	Black   = "black"
	Lighten = "lighten"
	Rainbow = "rainbow"
	Darken  = "darken"
	Invert  = "invert"
)

// rainbowCycle drives the rainbow effect through a small repeating
// palette keyed by timestamp and position.
var rainbowCycle = []canvas.Color{
	{R: 255, G: 0, B: 0},
	{R: 255, G: 165, B: 0},
	{R: 255, G: 255, B: 0},
	{R: 0, G: 255, B: 0},
	{R: 0, G: 0, B: 255},
	{R: 75, G: 0, B: 130},
	{R: 148, G: 0, B: 211},
}

// NewRegistry returns a registry populated with the stock effects.
func NewRegistry() *canvas.Registry {
	registry := canvas.NewRegistry()
	registry.MustRegister(Black, func(canvas.Color, int64, int, int) canvas.Color {
		return canvas.Color{}
	})
	registry.MustRegister(Lighten, func(start canvas.Color, _ int64, _, _ int) canvas.Color {
		return canvas.RGB(addClamped(start.R, 40), addClamped(start.G, 40), addClamped(start.B, 40))
	})
	registry.MustRegister(Rainbow, func(_ canvas.Color, timestamp int64, x, y int) canvas.Color {
		phase := timestamp + int64(x) + int64(y)
		if phase < 0 {
			phase = -phase
		}
		return rainbowCycle[phase%int64(len(rainbowCycle))]
	})
	registry.MustRegister(Darken, func(start canvas.Color, _ int64, _, _ int) canvas.Color {
		return canvas.RGB(subClamped(start.R, 40), subClamped(start.G, 40), subClamped(start.B, 40))
	})
	registry.MustRegister(Invert, func(start canvas.Color, _ int64, _, _ int) canvas.Color {
		return start.Invert()
	})
	return registry
}

func addClamped(channel uint8, delta uint8) uint8 {
	if channel > 255-delta {
		return 255
	}
	return channel + delta
}

func subClamped(channel uint8, delta uint8) uint8 {
	if channel < delta {
		return 0
	}
	return channel - delta
}
