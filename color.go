package bezmesh

import (
	"fmt"
	"image/color"

	"golang.org/x/image/math/f32"
)

var (
	_ Vector[Color] = Color{}
	_ color.Color   = Color{}
)

// Color is a linear RGB color with components nominally in [0, 1].
//
// Colors are interpolated along with control points when patches are
// subdivided, so they support the same arithmetic as control values.
// Components are not clamped until the color is converted with
// [Color.RGBA] or [Color.F32].
type Color struct {
	R float64
	G float64
	B float64
}

var (
	Black = Color{0, 0, 0}
	White = Color{1, 1, 1}
	Red   = Color{1, 0, 0}
	Green = Color{0, 1, 0}
	Blue  = Color{0, 0, 1}
)

// RGB returns the color (r, g, b).
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

func (c Color) String() string {
	return fmt.Sprintf("rgb(%g, %g, %g)", c.R, c.G, c.B)
}

func (c Color) Add(o Color) Color {
	return Color{
		R: c.R + o.R,
		G: c.G + o.G,
		B: c.B + o.B,
	}
}

func (c Color) Mul(f float64) Color {
	return Color{
		R: c.R * f,
		G: c.G * f,
		B: c.B * f,
	}
}

// Lerp linearly interpolates between two colors.
func (c Color) Lerp(o Color, t float64) Color {
	return Lerp(c, o, t)
}

// RGBA implements [color.Color]. The color is fully opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	return unit16(c.R), unit16(c.G), unit16(c.B), 0xffff
}

// F32 returns the color as an opaque RGBA vector in single precision, with
// each component clamped to [0, 1].
func (c Color) F32() f32.Vec4 {
	return f32.Vec4{
		float32(clamp01(c.R)),
		float32(clamp01(c.G)),
		float32(clamp01(c.B)),
		1,
	}
}

func clamp01(f float64) float64 {
	// NaN maps to 0.
	if !(f > 0) {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

func unit16(f float64) uint32 {
	return uint32(clamp01(f)*0xffff + 0.5)
}
