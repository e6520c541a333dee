package graphics

import (
	"math"
	"strconv"
)

// maxByte is the maximum value of a color channel.
const maxByte = 255.0

// Color is an [r, g, b, a] tuple. R, G and B range over 0-255 and A over
// 0-1. Channels are kept as float64 so interpolation can run without
// intermediate rounding; [Color.String] rounds on output.
type Color struct {
	R, G, B float64
	A       float64
}

// RGBA constructs a Color from red, green, blue bytes and alpha (0-1).
func RGBA(r, g, b uint8, a float64) Color {
	return Color{R: float64(r), G: float64(g), B: float64(b), A: clamp01(a)}
}

// RGB constructs an opaque Color from red, green, blue bytes.
func RGB(r, g, b uint8) Color {
	return RGBA(r, g, b, 1)
}

// RGBAF returns normalized color components (0.0 to 1.0).
func (c Color) RGBAF() (r, g, b, a float64) {
	return c.R / maxByte, c.G / maxByte, c.B / maxByte, c.A
}

// Alpha returns the alpha component as a value from 0.0 (transparent) to 1.0 (opaque).
func (c Color) Alpha() float64 {
	return c.A
}

// WithAlpha returns a copy of the color with the given alpha (0-1).
func (c Color) WithAlpha(a float64) Color {
	c.A = clamp01(a)
	return c
}

// Rounded returns the color with R, G and B rounded to integers and clamped
// to 0-255, and alpha rounded to three decimals and clamped to 0-1.
func (c Color) Rounded() Color {
	return Color{
		R: roundChannel(c.R),
		G: roundChannel(c.G),
		B: roundChannel(c.B),
		A: math.Round(clamp01(c.A)*1000) / 1000,
	}
}

// String formats the color as rgba(r, g, b, a). The source format (hex,
// hsl, named) is never preserved.
func (c Color) String() string {
	r := c.Rounded()
	buf := make([]byte, 0, 24)
	buf = append(buf, "rgba("...)
	buf = strconv.AppendInt(buf, int64(r.R), 10)
	buf = append(buf, ", "...)
	buf = strconv.AppendInt(buf, int64(r.G), 10)
	buf = append(buf, ", "...)
	buf = strconv.AppendInt(buf, int64(r.B), 10)
	buf = append(buf, ", "...)
	buf = strconv.AppendFloat(buf, r.A, 'f', -1, 64)
	buf = append(buf, ')')
	return string(buf)
}

func roundChannel(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Min(math.Max(math.Round(v), 0), maxByte)
}

// clamp01 clamps a value to the range [0, 1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Common colors.
var (
	ColorTransparent = Color{}
	ColorBlack       = RGB(0, 0, 0)
	ColorWhite       = RGB(255, 255, 255)
	ColorRed         = RGB(255, 0, 0)
	ColorGreen       = RGB(0, 255, 0)
	ColorBlue        = RGB(0, 0, 255)
)
