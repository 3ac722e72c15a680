package config

import (
	"github.com/Faultbox/spritelight/internal/engine/capture"
	"github.com/Faultbox/spritelight/internal/engine/lighting"
	"github.com/Faultbox/spritelight/internal/engine/scene"
	"github.com/Faultbox/spritelight/pkg/colorutil"
	"github.com/Faultbox/spritelight/pkg/math"
)

func color4(c [4]float32) colorutil.Color {
	return colorutil.Color{R: c[0], G: c[1], B: c[2], A: c[3]}
}

func vec3(v [3]float32) math.Vec3 {
	return math.Vec3{X: v[0], Y: v[1], Z: v[2]}
}

// Color converts a config color to colorutil.Color.
func Color(c [4]float32) colorutil.Color {
	return color4(c)
}

// Vec2 converts a config position to math.Vec2.
func Vec2(v [2]float32) math.Vec2 {
	return math.Vec2{X: v[0], Y: v[1]}
}

// LightingMaterial returns the configured material.
func (c *Config) LightingMaterial() lighting.Material {
	return lighting.Material{
		Diffuse:   color4(c.Material.Diffuse),
		Specular:  color4(c.Material.Specular),
		Shininess: c.Material.Shininess,
	}
}

// Engine configures the shared lighting engine.
func (c *Config) Engine() (*lighting.Engine, error) {
	m := c.LightingMaterial()
	return lighting.Configure(c.Material.NormalMap, m.Shininess, m.Diffuse, m.Specular)
}

// PointLight returns the light at its initial position.
func (c *Config) PointLight() lighting.PointLight {
	return lighting.PointLight{
		Position:  vec3(c.Light.Position),
		Color:     color4(c.Light.Color),
		Intensity: c.Light.Intensity,
		Range:     c.Light.Range,
	}
}

// HueCycle returns the light color animation, or nil when disabled.
func (c *Config) HueCycle() *scene.HueCycle {
	if !c.Hue.Enabled {
		return nil
	}
	return &scene.HueCycle{
		Rate:       c.Hue.Rate,
		Frequency:  c.Hue.Frequency,
		Saturation: c.Hue.Saturation,
		Value:      c.Hue.Value,
	}
}

// LightPath returns the scripted light path. The easing name must be valid.
func (c *Config) LightPath() *scene.LightPath {
	p := c.Light.Path
	fn, _ := scene.EaseByName(p.Easing)
	return scene.NewLightPath(vec3(p.From), vec3(p.To), p.Duration, fn, p.PingPong)
}

// SceneConfig returns the frame settings.
func (c *Config) SceneConfig() scene.Config {
	return scene.Config{
		Width:        c.Render.Width,
		Height:       c.Render.Height,
		Background:   color4(c.Render.Background),
		View:         vec3(c.View.Direction),
		TrackDepth:   c.Light.TrackDepth,
		ShowLight:    c.Light.Marker,
		MarkerRadius: c.Light.MarkerSize,
		Workers:      c.Render.Workers,
	}
}

// OutputFormat returns the parsed output format.
func (c *Config) OutputFormat() (capture.Format, error) {
	return capture.ParseFormat(c.Output.Format)
}
