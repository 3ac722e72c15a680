// Package colorutil provides the float color type shared by the lighting
// engine and its hosts, plus HSV conversion for animating light hue.
package colorutil

import "image/color"

// Color represents an RGBA color with float components.
// Channels are logically 0.0 to 1.0 but are never clamped implicitly;
// lit results and the zero-saturation HSV path routinely exceed 1.
type Color struct {
	R, G, B, A float32
}

// Predefined colors.
var (
	Transparent = Color{0, 0, 0, 0}
	White       = Color{1, 1, 1, 1}
	Black       = Color{0, 0, 0, 1}
	Red         = Color{1, 0, 0, 1}
	Green       = Color{0, 1, 0, 1}
	Blue        = Color{0, 0, 1, 1}
)

// RGBA creates a color from 8-bit RGBA values (0-255).
func RGBA(r, g, b, a uint8) Color {
	return Color{
		R: float32(r) / 255.0,
		G: float32(g) / 255.0,
		B: float32(b) / 255.0,
		A: float32(a) / 255.0,
	}
}

// RGB creates a color from 8-bit RGB values with full alpha.
func RGB(r, g, b uint8) Color {
	return RGBA(r, g, b, 255)
}

// FromNRGBA converts a non-premultiplied 8-bit color.
func FromNRGBA(c color.NRGBA) Color {
	return RGBA(c.R, c.G, c.B, c.A)
}

// WithAlpha returns a copy of the color with a different alpha value.
func (c Color) WithAlpha(a float32) Color {
	return Color{c.R, c.G, c.B, a}
}

// Add returns the per-channel sum of the RGB channels. Alpha is kept from c.
func (c Color) Add(o Color) Color {
	return Color{c.R + o.R, c.G + o.G, c.B + o.B, c.A}
}

// Mul returns the per-channel product of all four channels.
func (c Color) Mul(o Color) Color {
	return Color{c.R * o.R, c.G * o.G, c.B * o.B, c.A * o.A}
}

// Scale multiplies the RGB channels by s. Alpha is unchanged.
func (c Color) Scale(s float32) Color {
	return Color{c.R * s, c.G * s, c.B * s, c.A}
}

// Clamp returns the color with every channel limited to [0, 1].
func (c Color) Clamp() Color {
	return Color{clamp01(c.R), clamp01(c.G), clamp01(c.B), clamp01(c.A)}
}

// NRGBA converts to an 8-bit color, clamping first. This is the only place
// lit values are forced into display range.
func (c Color) NRGBA() color.NRGBA {
	k := c.Clamp()
	return color.NRGBA{
		R: to8(k.R),
		G: to8(k.G),
		B: to8(k.B),
		A: to8(k.A),
	}
}

// ApproxEqual reports whether every channel of c and o differs by at most eps.
func (c Color) ApproxEqual(o Color, eps float32) bool {
	return within(c.R, o.R, eps) && within(c.G, o.G, eps) &&
		within(c.B, o.B, eps) && within(c.A, o.A, eps)
}

func clamp01(v float32) float32 {
	if v < 0 || v != v {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func to8(v float32) uint8 {
	return uint8(v*255 + 0.5)
}

func within(a, b, eps float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= eps
}
