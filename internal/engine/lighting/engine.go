package lighting

import (
	stdmath "math"

	"github.com/Faultbox/spritelight/pkg/colorutil"
	"github.com/Faultbox/spritelight/pkg/math"
)

// SurfaceSample is the per-texel input to Evaluate.
type SurfaceSample struct {
	Position math.Vec3       // Texel position in the surface's local space
	Diffuse  colorutil.Color // Diffuse texel, already tinted by the sprite color
	Normal   math.Vec3       // Tangent-space normal; +Z faces out of the sprite
}

// Engine evaluates a Blinn-Phong point-light model for normal-mapped sprites.
//
// An Engine is immutable once configured. Lights are passed to every
// Evaluate call rather than stored, so one Engine can serve any number of
// surfaces and goroutines at once.
type Engine struct {
	normalMap string
	material  Material
}

// Configure binds a normal map reference and material constants.
// Returns a *ConfigError if shininess is not a positive finite number.
func Configure(normalMap string, shininess float32, diffuse, specular colorutil.Color) (*Engine, error) {
	m := Material{
		Diffuse:   diffuse,
		Specular:  specular,
		Shininess: shininess,
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &Engine{normalMap: normalMap, material: m}, nil
}

// NormalMap returns the normal map reference the engine was configured with.
func (e *Engine) NormalMap() string {
	return e.normalMap
}

// Material returns a copy of the engine's material.
func (e *Engine) Material() Material {
	return e.material
}

// Evaluate returns the lit color of one texel: the sum over all lights of a
// diffuse and a Blinn half-vector specular term, each scaled by linear
// range attenuation times intensity. The result is not clamped.
//
// viewDir is given in tangent space, (0, 0, 1) for a viewer looking straight
// at the sprite. Lights with a non-positive range or intensity are skipped.
func (e *Engine) Evaluate(sample SurfaceSample, lights []PointLight, viewDir math.Vec3) (colorutil.Color, error) {
	if sample.Normal.IsZero() || !sample.Normal.IsFinite() {
		return colorutil.Color{}, &InvalidNormalError{Normal: sample.Normal}
	}
	n := sample.Normal.Normalize()
	v := viewDir.Normalize()

	base := sample.Diffuse.Mul(e.material.Diffuse)
	out := colorutil.Color{A: base.A}

	for _, l := range lights {
		if !(l.Range > 0) || !(l.Intensity > 0) {
			continue
		}

		// Local space has the viewer at -Z; tangent space has the surface
		// facing +Z.
		toLight := l.Position.Sub(sample.Position).FlipZ()
		dist := toLight.Length()
		att := Attenuation(dist, l.Range) * l.Intensity
		if att == 0 {
			continue
		}

		dir := n
		if dist > 0 {
			dir = toLight.Scale(1 / dist)
		}

		lc := l.Color.Scale(att)
		if nl := n.Dot(dir); nl > 0 {
			out = out.Add(base.Mul(lc).Scale(nl))
		}
		if spec := e.specular(n, dir, v); spec > 0 {
			out = out.Add(e.material.Specular.Mul(lc).Scale(spec))
		}
	}

	return out, nil
}

// specular returns max(n·h, 0)^shininess for the half vector of dir and view.
// The specular term does not depend on n·L.
func (e *Engine) specular(n, dir, view math.Vec3) float32 {
	h := dir.Add(view)
	if h.IsZero() {
		return 0
	}
	nh := n.Dot(h.Normalize())
	if nh <= 0 {
		return 0
	}
	return float32(stdmath.Pow(float64(nh), float64(e.material.Shininess)))
}

// Attenuation returns clamp(1 - dist/rng, 0, 1). It is 1 at the light and
// 0 at or beyond rng.
func Attenuation(dist, rng float32) float32 {
	if !(rng > 0) {
		return 0
	}
	a := 1 - dist/rng
	if a < 0 {
		return 0
	}
	if a > 1 {
		return 1
	}
	return a
}
