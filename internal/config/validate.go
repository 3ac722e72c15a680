package config

import (
	"errors"
	"fmt"
	stdmath "math"
	"strings"

	"github.com/Faultbox/spritelight/internal/engine/capture"
	"github.com/Faultbox/spritelight/internal/engine/scene"
	"github.com/Faultbox/spritelight/internal/logger"
)

// Validate reports every invalid setting, joined into one error.
func (c *Config) Validate() error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	if err := c.LightingMaterial().Validate(); err != nil {
		errs = append(errs, fmt.Errorf("material: %w", err))
	}
	if err := c.PointLight().Validate(); err != nil {
		errs = append(errs, fmt.Errorf("light: %w", err))
	}
	if !(c.Light.TrackDepth < 0) {
		add("light: track_depth must be negative, got %v", c.Light.TrackDepth)
	}
	if _, ok := scene.EaseByName(c.Light.Path.Easing); !ok {
		add("light: unknown path easing %q (want one of %s)",
			c.Light.Path.Easing, strings.Join(scene.EaseNames(), ", "))
	}
	if !(c.Light.Path.Duration > 0) {
		add("light: path duration must be positive, got %v", c.Light.Path.Duration)
	}

	if c.Hue.Enabled && (!finite(c.Hue.Rate) || !finite(c.Hue.Frequency)) {
		add("hue: rate and frequency must be finite")
	}

	if vec3(c.View.Direction).IsZero() {
		add("view: direction must be non-zero")
	}

	if len(c.Surfaces) == 0 {
		add("surfaces: at least one surface is required")
	}
	for i, s := range c.Surfaces {
		if s.Name == "" {
			add("surfaces[%d]: name is required", i)
		}
		if s.Diffuse == "" && (s.Size[0] <= 0 || s.Size[1] <= 0) {
			add("surfaces[%d]: generated surface needs a positive size, got %v", i, s.Size)
		}
	}

	if c.Render.Width <= 0 || c.Render.Height <= 0 {
		add("render: invalid size %dx%d", c.Render.Width, c.Render.Height)
	}
	if c.Render.Workers < 0 {
		add("render: workers must not be negative, got %d", c.Render.Workers)
	}

	if _, err := capture.ParseFormat(c.Output.Format); err != nil {
		errs = append(errs, fmt.Errorf("output: %w", err))
	}
	if !(c.Output.Scale > 0) {
		add("output: scale must be positive, got %v", c.Output.Scale)
	}
	if !(c.Output.FPS > 0) {
		add("output: fps must be positive, got %v", c.Output.FPS)
	}

	if !logger.ValidLevel(c.Logging.Level) {
		add("logging: unknown level %q", c.Logging.Level)
	}

	return errors.Join(errs...)
}

func finite(v float32) bool {
	f := float64(v)
	return !stdmath.IsNaN(f) && !stdmath.IsInf(f, 0)
}
