package texture

import (
	"image"
	"image/color"
	stdmath "math"

	"github.com/Faultbox/spritelight/pkg/math"
)

// FlatNormal is the encoded tangent-space normal (0, 0, 1).
var FlatNormal = color.NRGBA{R: 128, G: 128, B: 255, A: 255}

// NormalMap wraps an image whose RGB channels encode tangent-space normals.
// Red is +X (right), green is +Y (up), blue is +Z (out of the sprite).
type NormalMap struct {
	img *image.NRGBA
}

// NewNormalMap wraps img as a normal map.
func NewNormalMap(img *image.NRGBA) *NormalMap {
	return &NormalMap{img: img}
}

// Flat returns a w x h normal map where every texel faces the viewer.
func Flat(w, h int) *NormalMap {
	return NewNormalMap(Solid(w, h, FlatNormal))
}

// Bounds returns the image bounds.
func (m *NormalMap) Bounds() image.Rectangle {
	return m.img.Bounds()
}

// Image returns the underlying image.
func (m *NormalMap) Image() *image.NRGBA {
	return m.img
}

// At returns the decoded (not renormalized) normal at (x, y).
func (m *NormalMap) At(x, y int) math.Vec3 {
	i := m.img.PixOffset(x, y)
	p := m.img.Pix[i : i+3 : i+3]
	return DecodeNormal(p[0], p[1], p[2])
}

// DecodeNormal maps 8-bit channels from [0, 255] to [-1, 1].
func DecodeNormal(r, g, b uint8) math.Vec3 {
	return math.Vec3{
		X: float32(r)/255*2 - 1,
		Y: float32(g)/255*2 - 1,
		Z: float32(b)/255*2 - 1,
	}
}

// EncodeNormal normalizes n and maps it to 8-bit channels.
func EncodeNormal(n math.Vec3) color.NRGBA {
	n = n.Normalize()
	enc := func(v float32) uint8 {
		f := (v+1)/2*255 + 0.5
		if f < 0 {
			return 0
		}
		if f > 255 {
			return 255
		}
		return uint8(f)
	}
	return color.NRGBA{R: enc(n.X), G: enc(n.Y), B: enc(n.Z), A: 255}
}

// Sphere returns a w x h normal map shaped like a dome filling the image.
// Texels outside the inscribed ellipse are flat.
func Sphere(w, h int) *NormalMap {
	img := Solid(w, h, FlatNormal)
	rx, ry := float32(w)/2, float32(h)/2
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			nx := (float32(x) + 0.5 - rx) / rx
			ny := (ry - float32(y) - 0.5) / ry
			d := nx*nx + ny*ny
			if d >= 1 {
				continue
			}
			img.SetNRGBA(x, y, EncodeNormal(math.Vec3{X: nx, Y: ny, Z: float32(stdmath.Sqrt(float64(1 - d)))}))
		}
	}
	return NewNormalMap(img)
}
