// Package lighting computes per-pixel lit color for normal-mapped sprites
// under dynamic point lights.
package lighting

import (
	"fmt"

	"github.com/Faultbox/spritelight/pkg/colorutil"
	"github.com/Faultbox/spritelight/pkg/math"
)

// MaxPointLights is the maximum number of point lights a PointLightBuffer holds.
const MaxPointLights = 32

// PointLight is a point light in a surface's local space.
type PointLight struct {
	Position  math.Vec3       // Local position; negative Z is in front of the sprite plane
	Color     colorutil.Color // RGB color (0-1 range, not enforced)
	Intensity float32         // Brightness multiplier, must be > 0
	Range     float32         // Distance at which the light stops contributing, must be > 0
}

// Validate checks that intensity and range are strictly positive.
func (l PointLight) Validate() error {
	if !(l.Intensity > 0) {
		return &ConfigError{Field: "intensity", Value: l.Intensity, Reason: "must be positive"}
	}
	if !(l.Range > 0) {
		return &ConfigError{Field: "range", Value: l.Range, Reason: "must be positive"}
	}
	return nil
}

// String implements fmt.Stringer for log output.
func (l PointLight) String() string {
	return fmt.Sprintf("PointLight{pos=(%.1f, %.1f, %.1f) color=(%.3f, %.3f, %.3f) intensity=%.2f range=%.1f}",
		l.Position.X, l.Position.Y, l.Position.Z,
		l.Color.R, l.Color.G, l.Color.B,
		l.Intensity, l.Range)
}

// PointLightBuffer holds the active light set handed to Evaluate each frame.
type PointLightBuffer struct {
	Lights []PointLight
	Count  int
}

// NewPointLightBuffer creates an empty point light buffer.
func NewPointLightBuffer() *PointLightBuffer {
	return &PointLightBuffer{
		Lights: make([]PointLight, 0, MaxPointLights),
	}
}

// Clear removes all lights from the buffer.
func (b *PointLightBuffer) Clear() {
	b.Lights = b.Lights[:0]
	b.Count = 0
}

// AddLight adds a point light to the buffer.
// Returns false if buffer is full.
func (b *PointLightBuffer) AddLight(light PointLight) bool {
	if b.Count >= MaxPointLights {
		return false
	}
	b.Lights = append(b.Lights, light)
	b.Count++
	return true
}

// SetLights replaces all lights in the buffer.
// Truncates to MaxPointLights if necessary.
func (b *PointLightBuffer) SetLights(lights []PointLight) {
	b.Clear()
	count := len(lights)
	if count > MaxPointLights {
		count = MaxPointLights
	}
	b.Lights = append(b.Lights, lights[:count]...)
	b.Count = count
}

// Snapshot returns a copy of the current lights. Renders evaluate against a
// snapshot so the host can keep mutating the buffer for the next frame.
func (b *PointLightBuffer) Snapshot() []PointLight {
	out := make([]PointLight, b.Count)
	copy(out, b.Lights)
	return out
}
