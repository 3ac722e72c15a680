// Package scene hosts the lighting engine: it owns the sprites that share one
// engine, moves the light each frame and composites lit sprites into frames.
package scene

import (
	"context"
	"fmt"
	"image"
	stdmath "math"
	"sort"
	"time"

	"go.uber.org/zap"
	"golang.org/x/image/draw"

	"github.com/Faultbox/spritelight/internal/engine/lighting"
	"github.com/Faultbox/spritelight/internal/engine/surface"
	"github.com/Faultbox/spritelight/internal/logger"
	"github.com/Faultbox/spritelight/pkg/colorutil"
	"github.com/Faultbox/spritelight/pkg/math"
)

// Config holds frame and host-side light settings.
type Config struct {
	Width        int
	Height       int
	Background   colorutil.Color
	View         math.Vec3 // Tangent-space view direction
	TrackDepth   float32   // Light Z while following the cursor; must be negative
	ShowLight    bool      // Draw the light marker over the sprites
	MarkerRadius float32
	Workers      int // Goroutines per surface render; <= 0 means GOMAXPROCS
}

// DefaultConfig returns settings matching a 1280x720 stage.
func DefaultConfig() Config {
	return Config{
		Width:        1280,
		Height:       720,
		Background:   colorutil.Black,
		View:         math.Vec3{Z: 1},
		TrackDepth:   -15,
		ShowLight:    true,
		MarkerRadius: 16,
	}
}

// Scene renders sprites lit by one dynamic point light.
// All surfaces share a single engine; per-frame light state lives here.
type Scene struct {
	cfg      Config
	engine   *lighting.Engine
	surfaces []*surface.Surface
	lights   *lighting.PointLightBuffer
	hue      *HueCycle
	paused   bool // Hue cycle frozen
	markers  markerCache
	log      *zap.Logger
}

// New creates a scene lit by light. hue may be nil to keep the light color fixed.
func New(cfg Config, eng *lighting.Engine, light lighting.PointLight, hue *HueCycle) (*Scene, error) {
	if eng == nil {
		return nil, fmt.Errorf("scene: nil lighting engine")
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("scene: invalid size %dx%d", cfg.Width, cfg.Height)
	}
	if err := light.Validate(); err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}

	lights := lighting.NewPointLightBuffer()
	lights.AddLight(light)

	s := &Scene{
		cfg:     cfg,
		engine:  eng,
		lights:  lights,
		hue:     hue,
		markers: make(markerCache),
		log:     logger.Named("scene"),
	}
	s.log.Debug("scene created",
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Stringer("light", light),
	)
	return s, nil
}

// Config returns the scene configuration.
func (s *Scene) Config() Config {
	return s.cfg
}

// Engine returns the shared lighting engine.
func (s *Scene) Engine() *lighting.Engine {
	return s.engine
}

// AddSurface adds a sprite, keeping surfaces ordered by SortZ.
// Surfaces with equal SortZ keep insertion order.
func (s *Scene) AddSurface(surf *surface.Surface) {
	s.surfaces = append(s.surfaces, surf)
	sort.SliceStable(s.surfaces, func(i, j int) bool {
		return s.surfaces[i].SortZ < s.surfaces[j].SortZ
	})
}

// Surfaces returns the sprites in draw order. The returned slice MUST NOT be mutated.
func (s *Scene) Surfaces() []*surface.Surface {
	return s.surfaces
}

// Light returns the primary light.
func (s *Scene) Light() lighting.PointLight {
	return s.lights.Lights[0]
}

// AddLight adds an extra static light. Returns false if the buffer is full.
func (s *Scene) AddLight(l lighting.PointLight) (bool, error) {
	if err := l.Validate(); err != nil {
		return false, err
	}
	return s.lights.AddLight(l), nil
}

// Lights returns a copy of all active lights.
func (s *Scene) Lights() []lighting.PointLight {
	return s.lights.Snapshot()
}

// ScreenToLocal maps a screen pixel (origin top-left, Y down) to local
// space (origin at the screen center, Y up).
func (s *Scene) ScreenToLocal(x, y float32) math.Vec2 {
	return math.Vec2{
		X: x - float32(s.cfg.Width)/2,
		Y: float32(s.cfg.Height)/2 - y,
	}
}

// LocalToScreen is the inverse of ScreenToLocal.
func (s *Scene) LocalToScreen(p math.Vec2) (x, y float32) {
	return p.X + float32(s.cfg.Width)/2, float32(s.cfg.Height)/2 - p.Y
}

// Update runs one frame tick: the light follows the cursor at TrackDepth
// and its color advances along the hue cycle.
func (s *Scene) Update(dt, cursorX, cursorY float32) {
	s.Step(dt, s.ScreenToLocal(cursorX, cursorY).WithZ(s.cfg.TrackDepth))
}

// Step places the primary light at pos and advances the hue cycle by dt.
func (s *Scene) Step(dt float32, pos math.Vec3) {
	l := &s.lights.Lights[0]
	l.Position = pos
	if s.hue != nil && !s.paused {
		l.Color = s.hue.Advance(dt)
	}
}

// ToggleHue freezes or resumes the hue cycle and reports whether it now runs.
func (s *Scene) ToggleHue() bool {
	s.paused = !s.paused
	return s.hue != nil && !s.paused
}

// ToggleMarker shows or hides the light marker and reports the new state.
func (s *Scene) ToggleMarker() bool {
	s.cfg.ShowLight = !s.cfg.ShowLight
	return s.cfg.ShowLight
}

// Render lights every surface against the current lights and composites
// them back to front over the background color.
func (s *Scene) Render(ctx context.Context) (*image.NRGBA, error) {
	start := time.Now()
	frame := image.NewNRGBA(image.Rect(0, 0, s.cfg.Width, s.cfg.Height))
	draw.Draw(frame, frame.Bounds(), image.NewUniform(s.cfg.Background.NRGBA()), image.Point{}, draw.Src)

	lights := s.lights.Snapshot()
	for _, surf := range s.surfaces {
		lit, err := surf.Render(ctx, s.engine, lights, s.cfg.View, s.cfg.Workers)
		if err != nil {
			return nil, fmt.Errorf("rendering %s: %w", surf.Name, err)
		}
		draw.Draw(frame, s.surfaceRect(surf), lit, image.Point{}, draw.Over)
	}

	if s.cfg.ShowLight {
		l := lights[0]
		sx, sy := s.LocalToScreen(l.Position.XY())
		drawMarker(frame, s.markers.get(s.cfg.MarkerRadius), l.Color, sx, sy)
	}

	s.log.Debug("frame rendered",
		zap.Int("surfaces", len(s.surfaces)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return frame, nil
}

// surfaceRect returns where a surface lands on screen.
func (s *Scene) surfaceRect(surf *surface.Surface) image.Rectangle {
	w, h := surf.Size()
	cx, cy := s.LocalToScreen(surf.Position)
	x0 := int(stdmath.Floor(float64(cx - float32(w)/2)))
	y0 := int(stdmath.Floor(float64(cy - float32(h)/2)))
	return image.Rect(x0, y0, x0+w, y0+h)
}
