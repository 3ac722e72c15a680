// Package surface evaluates the lighting engine over every texel of a sprite.
package surface

import (
	"context"
	"errors"
	"fmt"
	"image"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/Faultbox/spritelight/internal/engine/lighting"
	"github.com/Faultbox/spritelight/internal/engine/texture"
	"github.com/Faultbox/spritelight/pkg/colorutil"
	"github.com/Faultbox/spritelight/pkg/math"
)

// ErrSizeMismatch is returned when a normal map does not match its diffuse texture.
var ErrSizeMismatch = errors.New("surface: diffuse and normal map sizes differ")

// NormalSource provides the tangent-space normal of each texel.
// *texture.NormalMap is the usual implementation.
type NormalSource interface {
	At(x, y int) math.Vec3
}

// Surface is a sprite lit by a shared lighting engine.
type Surface struct {
	Name     string
	Diffuse  *image.NRGBA
	Normals  NormalSource
	Tint     colorutil.Color // Multiplied into every diffuse texel
	Position math.Vec2       // Center of the sprite in local space (Y up)
	SortZ    int             // Draw order, lower first
}

// New creates a surface at the origin with a white tint.
// A nil normal map is replaced by a flat one.
func New(name string, diffuse, normals *image.NRGBA) (*Surface, error) {
	if diffuse == nil {
		return nil, fmt.Errorf("surface %s: nil diffuse texture", name)
	}
	db := diffuse.Bounds()
	var nm NormalSource
	if normals == nil {
		nm = texture.Flat(db.Dx(), db.Dy())
	} else {
		if normals.Bounds().Size() != db.Size() {
			return nil, fmt.Errorf("%w: %s diffuse %v, normals %v",
				ErrSizeMismatch, name, db.Size(), normals.Bounds().Size())
		}
		nm = texture.NewNormalMap(texture.ToNRGBA(normals))
	}
	return &Surface{
		Name:    name,
		Diffuse: texture.ToNRGBA(diffuse),
		Normals: nm,
		Tint:    colorutil.White,
	}, nil
}

// Size returns the sprite size in texels.
func (s *Surface) Size() (w, h int) {
	b := s.Diffuse.Bounds()
	return b.Dx(), b.Dy()
}

// TexelPosition returns the local-space center of texel (x, y).
// Image rows run downward while local Y runs upward.
func (s *Surface) TexelPosition(x, y int) math.Vec3 {
	w, h := s.Size()
	return math.Vec3{
		X: s.Position.X + float32(x) - float32(w)/2 + 0.5,
		Y: s.Position.Y + float32(h)/2 - float32(y) - 0.5,
	}
}

// Sample builds the lighting input for texel (x, y).
func (s *Surface) Sample(x, y int) lighting.SurfaceSample {
	return lighting.SurfaceSample{
		Position: s.TexelPosition(x, y),
		Diffuse:  texture.ColorAt(s.Diffuse, x, y).Mul(s.Tint),
		Normal:   s.Normals.At(x, y),
	}
}

// Render lights every texel and returns the result clamped to 8 bits.
// Fully transparent texels are left transparent. Rows are evaluated in
// parallel on up to workers goroutines (GOMAXPROCS when workers <= 0).
// Any evaluation error cancels the render and no image is returned.
func (s *Surface) Render(ctx context.Context, eng *lighting.Engine, lights []lighting.PointLight, view math.Vec3, workers int) (*image.NRGBA, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	w, h := s.Size()
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for y := 0; y < h; y++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return s.renderRow(eng, lights, view, dst, y)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return dst, nil
}

func (s *Surface) renderRow(eng *lighting.Engine, lights []lighting.PointLight, view math.Vec3, dst *image.NRGBA, y int) error {
	w, _ := s.Size()
	for x := 0; x < w; x++ {
		if s.Diffuse.Pix[s.Diffuse.PixOffset(x, y)+3] == 0 {
			continue
		}
		c, err := eng.Evaluate(s.Sample(x, y), lights, view)
		if err != nil {
			return fmt.Errorf("surface %s texel (%d, %d): %w", s.Name, x, y, err)
		}
		dst.SetNRGBA(x, y, c.NRGBA())
	}
	return nil
}
