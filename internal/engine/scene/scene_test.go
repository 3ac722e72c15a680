package scene

import (
	"context"
	"image/color"
	"testing"

	"github.com/Faultbox/spritelight/internal/engine/lighting"
	"github.com/Faultbox/spritelight/internal/engine/surface"
	"github.com/Faultbox/spritelight/internal/engine/texture"
	"github.com/Faultbox/spritelight/pkg/colorutil"
	"github.com/Faultbox/spritelight/pkg/math"
)

func testLight() lighting.PointLight {
	return lighting.PointLight{
		Position:  math.Vec3{Z: -20},
		Color:     colorutil.White,
		Intensity: 8,
		Range:     600,
	}
}

func newTestScene(t *testing.T, w, h int, specular colorutil.Color, hue *HueCycle) *Scene {
	t.Helper()
	eng, err := lighting.Configure("imageAtlas_n", 2.5, colorutil.White, specular)
	if err != nil {
		t.Fatalf("Configure: %v", err)
	}
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = w, h
	cfg.ShowLight = false
	cfg.Workers = 2
	s, err := New(cfg, eng, testLight(), hue)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func solidSurface(t *testing.T, name string, size int, c color.NRGBA) *surface.Surface {
	t.Helper()
	s, err := surface.New(name, texture.Solid(size, size, c), nil)
	if err != nil {
		t.Fatalf("surface.New: %v", err)
	}
	return s
}

func TestNewValidation(t *testing.T) {
	eng, _ := lighting.Configure("n", 2.5, colorutil.White, colorutil.White)

	if _, err := New(DefaultConfig(), nil, testLight(), nil); err == nil {
		t.Error("expected error for nil engine")
	}

	bad := DefaultConfig()
	bad.Width = 0
	if _, err := New(bad, eng, testLight(), nil); err == nil {
		t.Error("expected error for zero width")
	}

	light := testLight()
	light.Range = 0
	if _, err := New(DefaultConfig(), eng, light, nil); err == nil {
		t.Error("expected error for zero light range")
	}
}

func TestScreenToLocal(t *testing.T) {
	s := newTestScene(t, 1280, 720, colorutil.White, nil)

	tests := []struct {
		x, y float32
		want math.Vec2
	}{
		{640, 360, math.Vec2{X: 0, Y: 0}},
		{0, 0, math.Vec2{X: -640, Y: 360}},
		{1280, 720, math.Vec2{X: 640, Y: -360}},
	}
	for _, tt := range tests {
		got := s.ScreenToLocal(tt.x, tt.y)
		if got != tt.want {
			t.Errorf("ScreenToLocal(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
		if x, y := s.LocalToScreen(got); x != tt.x || y != tt.y {
			t.Errorf("LocalToScreen(%v) = (%v, %v), want (%v, %v)", got, x, y, tt.x, tt.y)
		}
	}
}

func TestUpdateTracksCursor(t *testing.T) {
	hue := NewHueCycle()
	s := newTestScene(t, 1280, 720, colorutil.White, hue)

	s.Update(0.5, 740, 260)

	l := s.Light()
	if want := (math.Vec3{X: 100, Y: 100, Z: -15}); l.Position != want {
		t.Errorf("light position = %v, want %v", l.Position, want)
	}

	ref := NewHueCycle()
	if want := ref.Advance(0.5); l.Color != want {
		t.Errorf("light color = %+v, want %+v", l.Color, want)
	}
	if l.Intensity != 8 || l.Range != 600 {
		t.Errorf("intensity/range changed: %v/%v", l.Intensity, l.Range)
	}
}

func TestUpdateFixedColorWithoutHue(t *testing.T) {
	s := newTestScene(t, 64, 64, colorutil.White, nil)
	s.Update(1, 10, 10)
	if s.Light().Color != colorutil.White {
		t.Errorf("light color = %+v, want white", s.Light().Color)
	}
}

func TestRenderComposite(t *testing.T) {
	s := newTestScene(t, 8, 8, colorutil.White, nil)
	s.AddSurface(solidSurface(t, "sprite", 4, color.NRGBA{255, 255, 255, 255}))

	frame, err := s.Render(context.Background())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	white := color.NRGBA{255, 255, 255, 255}
	black := color.NRGBA{0, 0, 0, 255}
	tests := []struct {
		x, y int
		want color.NRGBA
	}{
		{4, 4, white},
		{2, 2, white},
		{5, 5, white},
		{1, 1, black},
		{6, 6, black},
		{0, 7, black},
	}
	for _, tt := range tests {
		if got := frame.NRGBAAt(tt.x, tt.y); got != tt.want {
			t.Errorf("pixel (%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestRenderSortZ(t *testing.T) {
	s := newTestScene(t, 8, 8, colorutil.Color{}, nil)

	top := solidSurface(t, "character", 4, color.NRGBA{255, 0, 0, 255})
	top.SortZ = 1
	bottom := solidSurface(t, "background", 8, color.NRGBA{0, 0, 255, 255})
	bottom.SortZ = 0

	s.AddSurface(top)
	s.AddSurface(bottom)

	if got := s.Surfaces()[0].Name; got != "background" {
		t.Fatalf("first surface = %s, want background", got)
	}

	frame, err := s.Render(context.Background())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got := frame.NRGBAAt(4, 4); got != (color.NRGBA{255, 0, 0, 255}) {
		t.Errorf("center = %v, want red on top", got)
	}
	if got := frame.NRGBAAt(0, 0); got != (color.NRGBA{0, 0, 255, 255}) {
		t.Errorf("corner = %v, want blue background", got)
	}
}

func TestRenderLightMarker(t *testing.T) {
	eng, _ := lighting.Configure("n", 2.5, colorutil.White, colorutil.White)
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 8, 8
	cfg.MarkerRadius = 2
	s, err := New(cfg, eng, testLight(), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	frame, err := s.Render(context.Background())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if c := frame.NRGBAAt(4, 4); c.R == 0 {
		t.Errorf("marker center = %v, want lit", c)
	}
	if c := frame.NRGBAAt(0, 0); c != (color.NRGBA{0, 0, 0, 255}) {
		t.Errorf("far pixel = %v, want background", c)
	}
}

func TestAddLight(t *testing.T) {
	s := newTestScene(t, 8, 8, colorutil.White, nil)

	if _, err := s.AddLight(lighting.PointLight{Intensity: 1}); err == nil {
		t.Error("expected validation error for zero range")
	}
	ok, err := s.AddLight(lighting.PointLight{Position: math.Vec3{X: 3, Z: -5}, Color: colorutil.Red, Intensity: 1, Range: 50})
	if err != nil || !ok {
		t.Fatalf("AddLight = %v, %v", ok, err)
	}
	if n := len(s.Lights()); n != 2 {
		t.Errorf("lights = %d, want 2", n)
	}
}

func TestToggleHue(t *testing.T) {
	hue := NewHueCycle()
	s := newTestScene(t, 64, 64, colorutil.White, hue)

	s.Step(1, math.Vec3{Z: -15})
	counter := hue.Counter()

	if s.ToggleHue() {
		t.Error("first toggle should pause the hue cycle")
	}
	s.Step(1, math.Vec3{Z: -15})
	if hue.Counter() != counter {
		t.Errorf("paused hue advanced: %v -> %v", counter, hue.Counter())
	}

	if !s.ToggleHue() {
		t.Error("second toggle should resume the hue cycle")
	}
	s.Step(1, math.Vec3{Z: -15})
	if hue.Counter() == counter {
		t.Error("resumed hue did not advance")
	}
}

func TestToggleMarker(t *testing.T) {
	s := newTestScene(t, 64, 64, colorutil.White, nil)
	if !s.ToggleMarker() || !s.Config().ShowLight {
		t.Error("marker should be shown after toggling from hidden")
	}
	if s.ToggleMarker() {
		t.Error("marker should be hidden after second toggle")
	}
}
