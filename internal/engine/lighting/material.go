package lighting

import (
	stdmath "math"

	"github.com/Faultbox/spritelight/pkg/colorutil"
)

// Material holds the per-surface constants of the lighting model.
type Material struct {
	Diffuse   colorutil.Color
	Specular  colorutil.Color
	Shininess float32 // Specular exponent, must be > 0
}

// DefaultMaterial is a white diffuse/specular material with a soft highlight.
func DefaultMaterial() Material {
	return Material{
		Diffuse:   colorutil.White,
		Specular:  colorutil.White,
		Shininess: 2.5,
	}
}

// Validate checks the specular exponent.
func (m Material) Validate() error {
	s := float64(m.Shininess)
	if stdmath.IsNaN(s) || stdmath.IsInf(s, 0) {
		return &ConfigError{Field: "shininess", Value: m.Shininess, Reason: "must be finite"}
	}
	if m.Shininess <= 0 {
		return &ConfigError{Field: "shininess", Value: m.Shininess, Reason: "must be positive"}
	}
	return nil
}
