package uik

import (
	"image/color"
	"math"
)

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// Common colors.
var (
	// White is opaque white.
	White = RGBA{R: 1, G: 1, B: 1, A: 1}

	// Black is opaque black.
	Black = RGBA{R: 0, G: 0, B: 0, A: 1}
)

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// Color converts RGBA to the standard color.Color interface.
// Components are clamped to [0, 1] and rounded to the nearest 8-bit value.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: channelByte(c.R),
		G: channelByte(c.G),
		B: channelByte(c.B),
		A: channelByte(c.A),
	}
}

// Bytes returns the 8-bit channel values of the color.
func (c RGBA) Bytes() (r, g, b, a uint8) {
	return channelByte(c.R), channelByte(c.G), channelByte(c.B), channelByte(c.A)
}

// channelByte maps a [0, 1] channel to an 8-bit value by rounding.
func channelByte(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(math.Round(v * 255))
}

// animatedColorPhases are the per-channel phase offsets (in radians) of
// the animated-circle color cycle, for R, G, and B respectively.
var animatedColorPhases = [3]float64{0, 2, 4}

// AnimatedColor returns the color of the animated test circle at the
// given time. Each channel follows a phase-shifted sinusoid
// sin(time+phase)*0.5+0.5; alpha is fully opaque.
func AnimatedColor(time float64) RGBA {
	return RGBA{
		R: math.Sin(time+animatedColorPhases[0])*0.5 + 0.5,
		G: math.Sin(time+animatedColorPhases[1])*0.5 + 0.5,
		B: math.Sin(time+animatedColorPhases[2])*0.5 + 0.5,
		A: 1.0,
	}
}
