package colorutil

import (
	"image/color"
	"testing"
)

func TestRGB(t *testing.T) {
	c := RGB(255, 0, 255)
	if c != (Color{1, 0, 1, 1}) {
		t.Errorf("RGB(255, 0, 255) = %+v", c)
	}
}

func TestNRGBAClamps(t *testing.T) {
	tests := []struct {
		name string
		in   Color
		want color.NRGBA
	}{
		{"in range", Color{1, 0.5, 0, 1}, color.NRGBA{255, 128, 0, 255}},
		{"over bright", Color{16, 2, 1.2, 1}, color.NRGBA{255, 255, 255, 255}},
		{"negative", Color{-1, 0, 0, -3}, color.NRGBA{0, 0, 0, 0}},
		{"achromatic quirk", HSVToRGB(0.3, 0, 0.5, 1), color.NRGBA{255, 255, 255, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.NRGBA(); got != tt.want {
				t.Errorf("NRGBA() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFromNRGBARoundTrip(t *testing.T) {
	in := color.NRGBA{R: 128, G: 179, B: 255, A: 255}
	if got := FromNRGBA(in).NRGBA(); got != in {
		t.Errorf("round trip = %v, want %v", got, in)
	}
}

func TestArithmetic(t *testing.T) {
	a := Color{0.5, 0.25, 1, 0.5}
	b := Color{2, 2, 0.5, 0.5}

	if got := a.Mul(b); got != (Color{1, 0.5, 0.5, 0.25}) {
		t.Errorf("Mul = %+v", got)
	}
	if got := a.Add(b); got != (Color{2.5, 2.25, 1.5, 0.5}) {
		t.Errorf("Add = %+v", got)
	}
	if got := a.Scale(2); got != (Color{1, 0.5, 2, 0.5}) {
		t.Errorf("Scale = %+v", got)
	}
}

func TestNoImplicitClamp(t *testing.T) {
	c := White.Scale(8)
	if c.R != 8 {
		t.Errorf("Scale clamped: R = %v, want 8", c.R)
	}
}
