package colorutil

import (
	"math"
	"testing"
)

func TestHSVToRGBSectors(t *testing.T) {
	const (
		v = 0.999           // value after clamping
		p = 0.999 * 0.001   // v * (1 - s) with s clamped to 0.999
		e = float32(0.01)
	)

	tests := []struct {
		name string
		hue  float32
		want Color
	}{
		{"red", 0, Color{v, 0.007, p, 1}},
		{"yellow", 1.0 / 6, Color{v, v, p, 1}},
		{"green", 2.0 / 6, Color{p, v, p, 1}},
		{"cyan", 3.0 / 6, Color{p, v, v, 1}},
		{"blue", 4.0 / 6, Color{p, p, v, 1}},
		{"magenta", 5.0 / 6, Color{v, p, v, 1}},
		{"orange-yellow midpoint", 0.25, Color{0.5, v, p, 1}},
		{"top clamp", 1, Color{v, p, 0.007, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HSVToRGB(tt.hue, 1, 1, 1)
			if !got.ApproxEqual(tt.want, e) {
				t.Errorf("HSVToRGB(%v, 1, 1, 1) = %+v, want ~%+v", tt.hue, got, tt.want)
			}
		})
	}
}

func TestHSVToRGBCyanExact(t *testing.T) {
	// hue 0.5 lands exactly on sector 3 with no fractional part, so q == v.
	got := HSVToRGB(0.5, 1, 1, 1)
	if got.G != got.B {
		t.Errorf("expected q == value at sector boundary, got G=%v B=%v", got.G, got.B)
	}
	if got.B != 0.999 {
		t.Errorf("expected value clamped to 0.999, got %v", got.B)
	}
}

func TestHSVToRGBZeroSaturation(t *testing.T) {
	got := HSVToRGB(0.3, 0.0, 0.5, 1.0)
	want := Color{127.5, 127.5, 127.5, 1}
	if got != want {
		t.Errorf("HSVToRGB(0.3, 0, 0.5, 1) = %+v, want %+v", got, want)
	}

	// Alpha is ignored on this path.
	if got := HSVToRGB(0.3, 0, 0.5, 0.25); got.A != 1 {
		t.Errorf("achromatic alpha = %v, want 1", got.A)
	}

	// Value is wrapped but not clamped before the achromatic return.
	if got := HSVToRGB(0.3, 0, 1, 1); got.R != 255 {
		t.Errorf("achromatic full value R = %v, want 255", got.R)
	}
	if got := HSVToRGB(0.3, 0, 1.5, 1); got.R != 127.5 {
		t.Errorf("achromatic wrapped value R = %v, want 127.5", got.R)
	}
}

func TestHSVToRGBPeriodicHue(t *testing.T) {
	// Dyadic hues survive the shift exactly, so results must be bit-identical.
	for _, h := range []float32{0.125, 0.375, 0.625, 0.875} {
		base := HSVToRGB(h, 0.8, 0.9, 0.7)
		for k := -3; k <= 3; k++ {
			got := HSVToRGB(h+float32(k), 0.8, 0.9, 0.7)
			if got != base {
				t.Errorf("hue %v+%d: got %+v, want %+v", h, k, got, base)
			}
		}
	}

	// Other hues only lose float32 rounding.
	for _, h := range []float32{0.1, 0.3, 0.55, 0.9} {
		base := HSVToRGB(h, 1, 1, 1)
		for k := -2; k <= 2; k++ {
			got := HSVToRGB(h+float32(k), 1, 1, 1)
			if !got.ApproxEqual(base, 1e-4) {
				t.Errorf("hue %v+%d: got %+v, want ~%+v", h, k, got, base)
			}
		}
	}
}

func TestHSVToRGBWrapsSaturationAndValue(t *testing.T) {
	want := HSVToRGB(0.2, 0.5, 0.25, 1)
	if got := HSVToRGB(0.2, 1.5, -0.75, 1); got != want {
		t.Errorf("wrapped s/v = %+v, want %+v", got, want)
	}
}

func TestHSVToRGBAlphaPassthrough(t *testing.T) {
	if got := HSVToRGB(0.4, 1, 1, 0.25); got.A != 0.25 {
		t.Errorf("alpha = %v, want 0.25", got.A)
	}
}

func TestHSVToRGBNonFinite(t *testing.T) {
	want := HSVToRGB(0, 1, 1, 1)
	for _, h := range []float32{float32(math.NaN()), float32(math.Inf(1)), float32(math.Inf(-1))} {
		if got := HSVToRGB(h, 1, 1, 1); got != want {
			t.Errorf("HSVToRGB(%v) = %+v, want %+v", h, got, want)
		}
	}
}

func TestHSVToRGBHueSweep(t *testing.T) {
	// Drive hue the way the viewer does and make sure every frame stays in range.
	var counter float32
	for i := 0; i < 2000; i++ {
		counter += 0.5 * (1.0 / 60)
		hue := float32(math.Abs(math.Sin(0.5 * float64(counter))))
		c := HSVToRGB(hue, 1, 1, 1)
		for _, ch := range []float32{c.R, c.G, c.B} {
			if ch < 0 || ch > 1 {
				t.Fatalf("frame %d: channel %v out of [0,1] for hue %v", i, ch, hue)
			}
		}
	}
}

func TestWrapUnit(t *testing.T) {
	tests := []struct {
		in, want float32
	}{
		{0, 0},
		{1, 1},
		{2, 1},
		{1.5, 0.5},
		{-0.5, 0.5},
		{-1, 0},
		{-2.75, 0.25},
		{50331648, 1},
	}
	for _, tt := range tests {
		if got := wrapUnit(tt.in); got != tt.want {
			t.Errorf("wrapUnit(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
