package colorutil

import "math"

// HSV clamping bounds. The sector math degenerates at exactly 0 and 1.
const (
	hsvMin = 0.001
	hsvMax = 0.999
)

// HSVToRGB converts hue, saturation and value to RGB with the given alpha.
//
// Inputs need not be normalized: each of h, s and v is first wrapped into
// [0, 1] by whole steps of 1, so a continuously increasing counter can drive
// hue directly. Hue and value are then kept strictly inside (0, 1) and
// saturation below 1.
//
// Achromatic input (saturation <= 0.001) returns (v*255, v*255, v*255, 1).
// That branch is scaled to 0-255 and ignores alpha, unlike every other
// branch; callers that feed the result to a light should keep saturation
// above the threshold.
func HSVToRGB(hue, saturation, value, alpha float32) Color {
	hue = wrapUnit(hue)
	saturation = wrapUnit(saturation)
	value = wrapUnit(value)

	if hue > hsvMax {
		hue = hsvMax
	}
	if hue < hsvMin {
		hue = hsvMin
	}
	if saturation > hsvMax {
		saturation = hsvMax
	}
	if saturation < hsvMin {
		return Color{value * 255, value * 255, value * 255, 1}
	}
	if value > hsvMax {
		value = hsvMax
	}
	if value < hsvMin {
		value = hsvMin
	}

	h6 := hue * 6
	if h6 == 6 {
		h6 = 0
	}
	sector := int(h6)
	f := h6 - float32(sector)

	p := value * (1 - saturation)
	q := value * (1 - saturation*f)
	t := value * (1 - saturation*(1-f))

	switch sector {
	case 0:
		return Color{value, t, p, alpha}
	case 1:
		return Color{q, value, p, alpha}
	case 2:
		return Color{p, value, t, alpha}
	case 3:
		return Color{p, q, value, alpha}
	case 4:
		return Color{t, p, value, alpha}
	default:
		return Color{value, p, q, alpha}
	}
}

// wrapUnit moves x into [0, 1] by whole steps, giving the same result as
// repeatedly subtracting 1 while x > 1 and adding 1 while x < 0. Exactly 1
// stays 1. Non-finite input maps to 0.
func wrapUnit(x float32) float32 {
	f := float64(x)
	switch {
	case math.IsNaN(f) || math.IsInf(f, 0):
		return 0
	case x > 1:
		return float32(f - math.Ceil(f-1))
	case x < 0:
		return float32(f + math.Ceil(-f))
	}
	return x
}
