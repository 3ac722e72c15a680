// Package viewer runs the interactive loop: the light follows the mouse,
// the hue cycles and every frame is relit and presented.
package viewer

import (
	"context"
	"fmt"
	"image"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/spritelight/internal/engine/capture"
	"github.com/Faultbox/spritelight/internal/engine/input"
	"github.com/Faultbox/spritelight/internal/engine/scene"
	"github.com/Faultbox/spritelight/internal/engine/window"
	"github.com/Faultbox/spritelight/internal/logger"
)

// Config holds viewer configuration.
type Config struct {
	Title      string
	Fullscreen bool
	VSync      bool
	FPSLimit   int // 0 = unlimited
}

// Viewer is the interactive viewer instance.
type Viewer struct {
	config  Config
	running bool
	scene   *scene.Scene
	window  *window.Window
	input   *input.Input
	capture *capture.Capture
	last    *image.NRGBA // Last presented frame, for screenshots
	log     *zap.Logger
}

// New creates a viewer around sc. Screenshots are written through shots.
func New(cfg Config, sc *scene.Scene, shots *capture.Capture) (*Viewer, error) {
	v := &Viewer{
		config:  cfg,
		scene:   sc,
		capture: shots,
		log:     logger.Named("viewer"),
	}

	sceneCfg := sc.Config()
	v.log.Info("initializing viewer",
		zap.String("title", cfg.Title),
		zap.Int("width", sceneCfg.Width),
		zap.Int("height", sceneCfg.Height),
	)

	var err error
	v.window, err = window.New(window.Config{
		Title:      cfg.Title,
		Width:      sceneCfg.Width,
		Height:     sceneCfg.Height,
		Fullscreen: cfg.Fullscreen,
		VSync:      cfg.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	v.input = input.New()

	v.log.Info("viewer initialized successfully")
	return v, nil
}

// Run starts the main loop and returns when the window closes or ctx ends.
func (v *Viewer) Run(ctx context.Context) error {
	v.running = true

	// Timing
	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()
	budget := frameBudget(v.config.FPSLimit)

	v.log.Info("starting render loop")

	for v.running {
		if err := ctx.Err(); err != nil {
			return nil
		}

		// Calculate delta time
		now := time.Now()
		dt := float32(now.Sub(lastTime).Seconds())
		lastTime = now

		// 1. Process input
		if v.input.Update() {
			v.running = false
			break
		}
		v.handleEvents()

		// 2. Move the light
		v.update(dt)

		// 3. Render and present
		if err := v.render(ctx); err != nil {
			return fmt.Errorf("render error: %w", err)
		}

		// FPS counter
		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			v.log.Debug("fps", zap.Int("count", frameCount), zap.Float32("dt_ms", dt*1000))
			v.window.SetTitle(fmt.Sprintf("%s - %d fps", v.config.Title, frameCount))
			frameCount = 0
			fpsTimer = time.Now()
		}

		if budget > 0 {
			if spent := time.Since(now); spent < budget {
				time.Sleep(budget - spent)
			}
		}
	}

	return nil
}

// Close cleans up viewer resources.
func (v *Viewer) Close() {
	v.log.Info("closing viewer")

	if v.window != nil {
		v.window.Close()
	}
}

func (v *Viewer) handleEvents() {
	for _, event := range v.input.Events() {
		if event.Type != input.EventKeyDown {
			continue
		}
		switch event.Key {
		case input.KeyScreenshot:
			v.screenshot()
		case input.KeyHue:
			v.log.Info("hue cycle toggled", zap.Bool("running", v.scene.ToggleHue()))
		case input.KeyMarker:
			v.log.Info("light marker toggled", zap.Bool("visible", v.scene.ToggleMarker()))
		}
	}
}

// update follows the cursor; before the cursor enters the window the light
// keeps its position and only the hue advances.
func (v *Viewer) update(dt float32) {
	mx, my, ok := v.input.Mouse()
	if !ok {
		v.scene.Step(dt, v.scene.Light().Position)
		return
	}
	fx, fy := v.window.WindowToFrame(mx, my)
	v.scene.Update(dt, fx, fy)
}

func (v *Viewer) render(ctx context.Context) error {
	img, err := v.scene.Render(ctx)
	if err != nil {
		return err
	}
	v.last = img
	return v.window.Present(img)
}

func (v *Viewer) screenshot() {
	if v.capture == nil || v.last == nil {
		return
	}
	path, err := v.capture.Screenshot(v.last)
	if err != nil {
		v.log.Error("screenshot failed", zap.Error(err))
		return
	}
	v.log.Info("screenshot saved", zap.String("path", path))
}

// frameBudget returns the minimum frame duration for an FPS limit.
func frameBudget(limit int) time.Duration {
	if limit <= 0 {
		return 0
	}
	return time.Second / time.Duration(limit)
}
