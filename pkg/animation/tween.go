package animation

import (
	"github.com/go-drift/dxmotion/pkg/graphics"
)

// LerpPoint linearly interpolates between two points.
func LerpPoint(a, b graphics.Point, t float64) graphics.Point {
	return graphics.Point{
		X: Mix(a.X, b.X, t),
		Y: Mix(a.Y, b.Y, t),
	}
}

// LerpColor interpolates two colors channel by channel. The result is
// rounded: integer RGB channels, alpha to three decimals.
func LerpColor(a, b graphics.Color, t float64) graphics.Color {
	return graphics.Color{
		R: Mix(a.R, b.R, t),
		G: Mix(a.G, b.G, t),
		B: Mix(a.B, b.B, t),
		A: Mix(a.A, b.A, t),
	}.Rounded()
}
