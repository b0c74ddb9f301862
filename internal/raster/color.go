package raster

import (
	"image/color"
	"math"
)

// Color is a linear RGB triple. Displayable values lie in [0, 1].
type Color struct {
	R, G, B float64
}

// Black is the additive identity.
var Black = Color{}

// White is the multiplicative identity.
var White = Color{1, 1, 1}

// RGB8 builds a color from 0-255 channel values.
func RGB8(r, g, b uint8) Color {
	return Color{float64(r) / 255, float64(g) / 255, float64(b) / 255}
}

func (c Color) Add(o Color) Color {
	return Color{c.R + o.R, c.G + o.G, c.B + o.B}
}

// Mul multiplies elementwise.
func (c Color) Mul(o Color) Color {
	return Color{c.R * o.R, c.G * o.G, c.B * o.B}
}

func (c Color) Scale(s float64) Color {
	return Color{c.R * s, c.G * s, c.B * s}
}

// Clamp limits every channel to [0, 1]. NaN channels become 0.
func (c Color) Clamp() Color {
	return Color{clamp01(c.R), clamp01(c.G), clamp01(c.B)}
}

// Luminance returns the Rec. 601 weighted brightness.
func (c Color) Luminance() float64 {
	return 0.299*c.R + 0.587*c.G + 0.114*c.B
}

// NRGBA converts to an opaque 8-bit color, clamping first.
func (c Color) NRGBA() color.NRGBA {
	c = c.Clamp()
	return color.NRGBA{R: to8(c.R), G: to8(c.G), B: to8(c.B), A: 255}
}

func clamp01(v float64) float64 {
	if v > 0 {
		return math.Min(v, 1)
	}
	return 0
}

func to8(v float64) uint8 {
	return uint8(v*255 + 0.5)
}
