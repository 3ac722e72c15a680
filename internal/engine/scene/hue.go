package scene

import (
	stdmath "math"

	"github.com/Faultbox/spritelight/pkg/colorutil"
)

// HueCycle sweeps a light's hue from an ever-increasing counter:
// counter += Rate*dt, hue = |sin(Frequency*counter)|.
type HueCycle struct {
	Rate       float32
	Frequency  float32
	Saturation float32
	Value      float32

	counter float32
}

// NewHueCycle returns a fully saturated cycle with rate and frequency 0.5.
func NewHueCycle() *HueCycle {
	return &HueCycle{
		Rate:       0.5,
		Frequency:  0.5,
		Saturation: 1,
		Value:      1,
	}
}

// Advance moves the counter by dt seconds and returns the new color.
func (h *HueCycle) Advance(dt float32) colorutil.Color {
	h.counter += h.Rate * dt
	return h.Color()
}

// Hue returns the current hue in [0, 1].
func (h *HueCycle) Hue() float32 {
	return float32(stdmath.Abs(stdmath.Sin(float64(h.Frequency * h.counter))))
}

// Color returns the current light color.
func (h *HueCycle) Color() colorutil.Color {
	return colorutil.HSVToRGB(h.Hue(), h.Saturation, h.Value, 1)
}

// Counter returns the accumulated counter.
func (h *HueCycle) Counter() float32 {
	return h.counter
}

// Reset rewinds the counter to zero.
func (h *HueCycle) Reset() {
	h.counter = 0
}
