// Package window handles the SDL2 window and presents CPU-rendered frames.
package window

import (
	"fmt"
	"image"
	"runtime"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/spritelight/internal/logger"
)

func init() {
	// SDL video calls must be made from the main thread
	runtime.LockOSThread()
}

// Config holds window configuration.
type Config struct {
	Title      string
	Width      int // Frame width; the window starts at this size
	Height     int
	Fullscreen bool
	VSync      bool
}

// Window wraps an SDL2 window, its renderer and a streaming frame texture.
type Window struct {
	config    Config
	sdlWindow *sdl.Window
	renderer  *sdl.Renderer
	frame     *sdl.Texture
	log       *zap.Logger
}

// New creates a new window with an accelerated renderer.
func New(cfg Config) (*Window, error) {
	w := &Window{
		config: cfg,
		log:    logger.Named("window"),
	}

	// Initialize SDL2
	w.log.Info("initializing SDL2")
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, fmt.Errorf("SDL_Init failed: %w", err)
	}

	flags := uint32(sdl.WINDOW_SHOWN | sdl.WINDOW_RESIZABLE)
	if cfg.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP
	}

	var err error
	w.sdlWindow, err = sdl.CreateWindow(
		cfg.Title,
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		int32(cfg.Width),
		int32(cfg.Height),
		flags,
	)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("SDL_CreateWindow failed: %w", err)
	}

	rflags := uint32(sdl.RENDERER_ACCELERATED)
	if cfg.VSync {
		rflags |= sdl.RENDERER_PRESENTVSYNC
	}
	w.renderer, err = sdl.CreateRenderer(w.sdlWindow, -1, rflags)
	if err != nil {
		w.sdlWindow.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("SDL_CreateRenderer failed: %w", err)
	}

	// Keep the frame's aspect ratio when the window is resized
	if err := w.renderer.SetLogicalSize(int32(cfg.Width), int32(cfg.Height)); err != nil {
		w.log.Warn("failed to set logical size", zap.Error(err))
	}

	// ABGR8888 matches image.NRGBA byte order on little-endian hosts
	w.frame, err = w.renderer.CreateTexture(sdl.PIXELFORMAT_ABGR8888, sdl.TEXTUREACCESS_STREAMING,
		int32(cfg.Width), int32(cfg.Height))
	if err != nil {
		w.renderer.Destroy()
		w.sdlWindow.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("SDL_CreateTexture failed: %w", err)
	}

	w.log.Info("window created",
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Bool("fullscreen", cfg.Fullscreen),
		zap.Bool("vsync", cfg.VSync),
	)

	return w, nil
}

// Close destroys the window and cleans up SDL2.
func (w *Window) Close() {
	w.log.Info("closing window")

	if w.frame != nil {
		w.frame.Destroy()
	}
	if w.renderer != nil {
		w.renderer.Destroy()
	}
	if w.sdlWindow != nil {
		w.sdlWindow.Destroy()
	}

	sdl.Quit()
}

// Present uploads img to the frame texture and shows it.
// img must match the configured frame size.
func (w *Window) Present(img *image.NRGBA) error {
	b := img.Bounds()
	if b.Dx() != w.config.Width || b.Dy() != w.config.Height {
		return fmt.Errorf("window: frame is %dx%d, want %dx%d", b.Dx(), b.Dy(), w.config.Width, w.config.Height)
	}
	if len(img.Pix) == 0 {
		return nil
	}

	if err := w.frame.Update(nil, unsafe.Pointer(&img.Pix[0]), img.Stride); err != nil {
		return fmt.Errorf("updating frame texture: %w", err)
	}
	if err := w.renderer.SetDrawColor(0, 0, 0, 255); err != nil {
		return err
	}
	if err := w.renderer.Clear(); err != nil {
		return err
	}
	if err := w.renderer.Copy(w.frame, nil, nil); err != nil {
		return fmt.Errorf("copying frame: %w", err)
	}
	w.renderer.Present()
	return nil
}

// GetSize returns the current window size.
func (w *Window) GetSize() (int, int) {
	width, height := w.sdlWindow.GetSize()
	return int(width), int(height)
}

// FrameSize returns the size of frames accepted by Present.
func (w *Window) FrameSize() (int, int) {
	return w.config.Width, w.config.Height
}

// WindowToFrame maps window pixel coordinates to frame pixels,
// accounting for the letterboxed logical size.
func (w *Window) WindowToFrame(x, y int) (float32, float32) {
	ww, wh := w.GetSize()
	return Letterbox(ww, wh, w.config.Width, w.config.Height).ToFrame(x, y)
}

// Viewport is where a frame lands inside a window.
type Viewport struct {
	X, Y  float32 // Top-left offset in window pixels
	Scale float32 // Window pixels per frame pixel
}

// Letterbox fits a frameW x frameH frame into a windowW x windowH window,
// preserving aspect ratio and centering it.
func Letterbox(windowW, windowH, frameW, frameH int) Viewport {
	if frameW <= 0 || frameH <= 0 || windowW <= 0 || windowH <= 0 {
		return Viewport{Scale: 1}
	}
	sx := float32(windowW) / float32(frameW)
	sy := float32(windowH) / float32(frameH)
	scale := min(sx, sy)
	return Viewport{
		X:     (float32(windowW) - float32(frameW)*scale) / 2,
		Y:     (float32(windowH) - float32(frameH)*scale) / 2,
		Scale: scale,
	}
}

// ToFrame maps a window pixel to frame coordinates.
func (v Viewport) ToFrame(x, y int) (float32, float32) {
	return (float32(x) - v.X) / v.Scale, (float32(y) - v.Y) / v.Scale
}

// SetTitle sets the window title.
func (w *Window) SetTitle(title string) {
	w.sdlWindow.SetTitle(title)
}
