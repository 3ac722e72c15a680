// Package texture loads diffuse and normal-map images and converts texels
// into the float types the lighting engine consumes.
package texture

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"

	"github.com/Faultbox/spritelight/pkg/colorutil"
)

// ErrUnsupportedFormat is returned for file extensions with no decoder.
var ErrUnsupportedFormat = errors.New("texture: unsupported format")

// Extensions lists the file extensions Load understands.
var Extensions = []string{".png", ".tga", ".bmp", ".jpg", ".jpeg"}

// Load reads an image file and returns it as NRGBA.
// The decoder is chosen by extension; TGA has no magic number to sniff.
func Load(path string) (*image.NRGBA, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("texture: read %s: %w", path, err)
	}
	img, err := Decode(path, bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("texture: decode %s: %w", path, err)
	}
	return img, nil
}

// Decode decodes r using the decoder registered for name's extension.
func Decode(name string, r io.Reader) (*image.NRGBA, error) {
	var (
		img image.Image
		err error
	)
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".png":
		img, err = png.Decode(r)
	case ".tga":
		img, err = tga.Decode(r)
	case ".bmp":
		img, err = bmp.Decode(r)
	case ".jpg", ".jpeg":
		img, err = jpeg.Decode(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, err
	}
	return ToNRGBA(img), nil
}

// ToNRGBA converts any image to NRGBA with bounds starting at (0, 0).
// Texel coordinates of a diffuse texture and its normal map must line up,
// so every texture is rebased to the origin.
func ToNRGBA(src image.Image) *image.NRGBA {
	b := src.Bounds()
	if n, ok := src.(*image.NRGBA); ok && b.Min == (image.Point{}) {
		return n
	}
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst
}

// ColorAt returns the texel at (x, y) as a float color.
func ColorAt(img *image.NRGBA, x, y int) colorutil.Color {
	i := img.PixOffset(x, y)
	p := img.Pix[i : i+4 : i+4]
	return colorutil.RGBA(p[0], p[1], p[2], p[3])
}

// Solid returns a w x h image filled with c.
func Solid(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return img
}
