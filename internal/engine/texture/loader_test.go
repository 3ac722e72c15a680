package texture

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
)

func writePNG(t *testing.T, path string, img image.Image) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode %s: %v", path, err)
	}
}

// tgaBytes builds an uncompressed 32-bit top-left origin TGA with a v2 footer.
func tgaBytes(w, h int, px color.NRGBA) []byte {
	data := make([]byte, 18, 18+w*h*4+26)
	data[2] = 2
	data[12], data[13] = byte(w), byte(w>>8)
	data[14], data[15] = byte(h), byte(h>>8)
	data[16] = 32
	data[17] = 0x28
	for i := 0; i < w*h; i++ {
		data = append(data, px.B, px.G, px.R, px.A)
	}
	data = append(data, make([]byte, 8)...)
	data = append(data, []byte("TRUEVISION-XFILE.\x00")...)
	return data
}

func TestLoadPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "background.png")
	want := color.NRGBA{R: 128, G: 179, B: 255, A: 255}
	writePNG(t, path, Solid(4, 3, want))

	img, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if img.Bounds() != image.Rect(0, 0, 4, 3) {
		t.Errorf("bounds = %v", img.Bounds())
	}
	if got := img.NRGBAAt(2, 1); got != want {
		t.Errorf("texel = %v, want %v", got, want)
	}
}

func TestLoadTGA(t *testing.T) {
	path := filepath.Join(t.TempDir(), "character_n.tga")
	want := color.NRGBA{R: 200, G: 100, B: 50, A: 255}
	if err := os.WriteFile(path, tgaBytes(2, 2, want), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	img, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := img.NRGBAAt(1, 1); got != want {
		t.Errorf("texel = %v, want %v", got, want)
	}
}

func TestLoadBMP(t *testing.T) {
	path := filepath.Join(t.TempDir(), "light.bmp")
	want := color.NRGBA{R: 10, G: 20, B: 30, A: 255}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := bmp.Encode(f, Solid(3, 3, want)); err != nil {
		t.Fatalf("encode: %v", err)
	}
	f.Close()

	img, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := img.NRGBAAt(0, 2); got != want {
		t.Errorf("texel = %v, want %v", got, want)
	}
}

func TestLoadUnsupported(t *testing.T) {
	path := filepath.Join(t.TempDir(), "atlas.txt")
	if err := os.WriteFile(path, []byte("not an image"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	_, err := Load(path)
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Load error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load("/nonexistent/texture.png"); err == nil {
		t.Error("expected error loading missing file")
	}
}

func TestToNRGBARebasesBounds(t *testing.T) {
	src := image.NewRGBA(image.Rect(10, 20, 14, 22))
	src.Set(10, 20, color.RGBA{R: 255, A: 255})

	got := ToNRGBA(src)
	if got.Bounds() != image.Rect(0, 0, 4, 2) {
		t.Fatalf("bounds = %v, want origin-based", got.Bounds())
	}
	if c := got.NRGBAAt(0, 0); c.R != 255 || c.A != 255 {
		t.Errorf("texel (0,0) = %v", c)
	}
}

func TestColorAt(t *testing.T) {
	img := Solid(1, 1, color.NRGBA{R: 255, G: 0, B: 255, A: 255})
	c := ColorAt(img, 0, 0)
	if c.R != 1 || c.G != 0 || c.B != 1 || c.A != 1 {
		t.Errorf("ColorAt = %+v", c)
	}
}
