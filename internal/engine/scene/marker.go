package scene

import (
	"image"
	stdmath "math"

	"golang.org/x/image/draw"

	"github.com/Faultbox/spritelight/pkg/colorutil"
)

// markerCache keeps one feathered disc mask per integer radius.
type markerCache map[int]*image.Alpha

// get returns the mask for radius, generating it on first use.
func (mc markerCache) get(radius float32) *image.Alpha {
	key := int(stdmath.Ceil(float64(radius)))
	if key < 1 {
		key = 1
	}
	if m, ok := mc[key]; ok {
		return m
	}
	m := generateDisc(float64(key))
	mc[key] = m
	return m
}

// generateDisc creates a feathered circular alpha mask with smoothstep falloff.
func generateDisc(radius float64) *image.Alpha {
	size := int(stdmath.Ceil(radius * 2))
	if size < 1 {
		size = 1
	}
	img := image.NewAlpha(image.Rect(0, 0, size, size))

	cx, cy := radius, radius
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := float64(x) + 0.5 - cx
			dy := float64(y) + 0.5 - cy
			dist := stdmath.Sqrt(dx*dx+dy*dy) / radius

			var alpha float64
			if dist < 1 {
				t := 1 - dist
				alpha = t * t * (3 - 2*t)
			}
			img.Pix[y*img.Stride+x] = uint8(alpha * 255)
		}
	}
	return img
}

// drawMarker composites a disc tinted with c centered on screen point (sx, sy).
func drawMarker(dst draw.Image, mask *image.Alpha, c colorutil.Color, sx, sy float32) {
	size := mask.Bounds().Dx()
	x0 := int(stdmath.Floor(float64(sx))) - size/2
	y0 := int(stdmath.Floor(float64(sy))) - size/2
	r := image.Rect(x0, y0, x0+size, y0+size)

	tint := c.WithAlpha(1).NRGBA()
	draw.DrawMask(dst, r, image.NewUniform(tint), image.Point{}, mask, image.Point{}, draw.Over)
}
