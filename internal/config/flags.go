package config

import "flag"

// Flags holds the command-line overrides shared by the spritelight binaries.
type Flags struct {
	Config     *string
	Debug      *bool
	Windowed   *bool
	Fullscreen *bool
	Width      *int
	Height     *int
	Out        *string
	Format     *string
	Workers    *int
}

// RegisterFlags defines the override flags on fs.
func RegisterFlags(fs *flag.FlagSet) *Flags {
	return &Flags{
		Config:     fs.String("config", "", "Path to config file"),
		Debug:      fs.Bool("debug", false, "Enable debug logging"),
		Windowed:   fs.Bool("windowed", false, "Run in windowed mode"),
		Fullscreen: fs.Bool("fullscreen", false, "Run in fullscreen mode"),
		Width:      fs.Int("width", 0, "Frame width"),
		Height:     fs.Int("height", 0, "Frame height"),
		Out:        fs.String("out", "", "Output directory"),
		Format:     fs.String("format", "", "Output format (png, webp)"),
		Workers:    fs.Int("workers", 0, "Render goroutines per sprite (0 = GOMAXPROCS)"),
	}
}

var cliFlags = RegisterFlags(flag.CommandLine)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *cliFlags.Config
}

// apply applies CLI flag overrides to the config.
func (f *Flags) apply(cfg *Config) {
	if *f.Debug {
		cfg.Logging.Level = "debug"
	}
	if *f.Windowed {
		cfg.Window.Fullscreen = false
	}
	if *f.Fullscreen {
		cfg.Window.Fullscreen = true
	}
	if *f.Width > 0 {
		cfg.Render.Width = *f.Width
	}
	if *f.Height > 0 {
		cfg.Render.Height = *f.Height
	}
	if *f.Out != "" {
		cfg.Output.Dir = *f.Out
	}
	if *f.Format != "" {
		cfg.Output.Format = *f.Format
	}
	if *f.Workers > 0 {
		cfg.Render.Workers = *f.Workers
	}
}
