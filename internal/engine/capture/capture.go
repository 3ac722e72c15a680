// Package capture writes rendered frames to disk as PNG or WebP.
package capture

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/HugoSmits86/nativewebp"
	"golang.org/x/image/draw"
)

// Format is an output image encoding.
type Format string

// Supported output formats.
const (
	FormatPNG  Format = "png"
	FormatWebP Format = "webp"
)

// ParseFormat validates a format name (case-insensitive).
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatPNG, FormatWebP:
		return f, nil
	default:
		return "", fmt.Errorf("capture: unknown format %q (want png or webp)", s)
	}
}

// Capture saves frames into an output directory.
type Capture struct {
	outputDir string
	prefix    string
	format    Format
	scale     float64
	frame     int
}

// New creates a capture handler. scale resizes frames on save; 1 keeps them as-is.
func New(outputDir, prefix string, format Format, scale float64) (*Capture, error) {
	if _, err := ParseFormat(string(format)); err != nil {
		return nil, err
	}
	if scale <= 0 {
		return nil, fmt.Errorf("capture: scale must be positive, got %v", scale)
	}
	return &Capture{
		outputDir: outputDir,
		prefix:    prefix,
		format:    format,
		scale:     scale,
	}, nil
}

// SetOutputDir sets the output directory.
func (c *Capture) SetOutputDir(dir string) {
	c.outputDir = dir
}

// Frames returns the number of sequence frames saved so far.
func (c *Capture) Frames() int {
	return c.frame
}

// SaveFrame writes img as the next numbered frame (prefix_00000.png, ...).
func (c *Capture) SaveFrame(img image.Image) (string, error) {
	name := fmt.Sprintf("%s_%05d.%s", c.prefix, c.frame, c.format)
	path, err := c.save(name, img)
	if err != nil {
		return "", err
	}
	c.frame++
	return path, nil
}

// Screenshot writes img under a timestamped name.
func (c *Capture) Screenshot(img image.Image) (string, error) {
	return c.save(filepath.Base(c.GenerateFilename()), img)
}

// GenerateFilename generates a timestamped screenshot filename without saving.
func (c *Capture) GenerateFilename() string {
	timestamp := time.Now().Format("2006-01-02_15-04-05")
	filename := fmt.Sprintf("%s_%s.%s", c.prefix, timestamp, c.format)
	if c.outputDir != "" {
		filename = filepath.Join(c.outputDir, filename)
	}
	return filename
}

func (c *Capture) save(name string, img image.Image) (string, error) {
	if c.outputDir != "" {
		if err := os.MkdirAll(c.outputDir, 0755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
		name = filepath.Join(c.outputDir, name)
	}

	file, err := os.Create(name)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := Encode(file, Scale(img, c.scale), c.format); err != nil {
		return "", err
	}
	return name, nil
}

// FormatFromPath infers the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(strings.TrimPrefix(filepath.Ext(path), "."))
}

// WriteFile encodes img to path, picking the format from the extension.
func WriteFile(path string, img image.Image, scale float64) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	if scale <= 0 {
		return fmt.Errorf("capture: scale must be positive, got %v", scale)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output dir: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	if err := Encode(file, Scale(img, scale), format); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// Encode writes img to w in the given format.
func Encode(w io.Writer, img image.Image, format Format) error {
	switch format {
	case FormatPNG:
		if err := png.Encode(w, img); err != nil {
			return fmt.Errorf("encoding PNG: %w", err)
		}
	case FormatWebP:
		if err := nativewebp.Encode(w, img, nil); err != nil {
			return fmt.Errorf("encoding WebP: %w", err)
		}
	default:
		return fmt.Errorf("capture: unknown format %q", format)
	}
	return nil
}

// Scale resizes img by factor with Catmull-Rom filtering.
// A factor of 1 returns img unchanged.
func Scale(img image.Image, factor float64) image.Image {
	if factor == 1 {
		return img
	}
	b := img.Bounds()
	w := int(float64(b.Dx())*factor + 0.5)
	h := int(float64(b.Dy())*factor + 0.5)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
