// Package config handles spritelight configuration loading and management.
package config

// Config holds all renderer and viewer settings.
type Config struct {
	Material MaterialConfig  `yaml:"material"`
	Light    LightConfig     `yaml:"light"`
	Hue      HueConfig       `yaml:"hue"`
	View     ViewConfig      `yaml:"view"`
	Surfaces []SurfaceConfig `yaml:"surfaces"`
	Render   RenderConfig    `yaml:"render"`
	Output   OutputConfig    `yaml:"output"`
	Window   WindowConfig    `yaml:"window"`
	Assets   AssetsConfig    `yaml:"assets"`
	Logging  LoggingConfig   `yaml:"logging"`
}

// MaterialConfig holds the shared lighting material.
type MaterialConfig struct {
	NormalMap string     `yaml:"normal_map"` // Identifier reported by the engine
	Shininess float32    `yaml:"shininess"`
	Diffuse   [4]float32 `yaml:"diffuse"`
	Specular  [4]float32 `yaml:"specular"`
}

// LightConfig holds the dynamic point light.
type LightConfig struct {
	Position   [3]float32 `yaml:"position"` // Initial local-space position
	Color      [4]float32 `yaml:"color"`    // Used when the hue cycle is off
	Intensity  float32    `yaml:"intensity"`
	Range      float32    `yaml:"range"`
	TrackDepth float32    `yaml:"track_depth"` // Z while following the cursor
	Marker     bool       `yaml:"marker"`
	MarkerSize float32    `yaml:"marker_size"`
	Path       PathConfig `yaml:"path"`
}

// PathConfig describes the scripted light path used by headless animations.
type PathConfig struct {
	From     [3]float32 `yaml:"from"`
	To       [3]float32 `yaml:"to"`
	Duration float32    `yaml:"duration"` // Seconds
	Easing   string     `yaml:"easing"`
	PingPong bool       `yaml:"ping_pong"`
}

// HueConfig holds the light color animation.
type HueConfig struct {
	Enabled    bool    `yaml:"enabled"`
	Rate       float32 `yaml:"rate"`
	Frequency  float32 `yaml:"frequency"`
	Saturation float32 `yaml:"saturation"`
	Value      float32 `yaml:"value"`
}

// ViewConfig holds the tangent-space view direction.
type ViewConfig struct {
	Direction [3]float32 `yaml:"direction"`
}

// SurfaceConfig describes one lit sprite.
// An empty Diffuse generates a solid Size texture filled with Color.
// Normal may be a file, "sphere" for a generated dome, or empty for flat.
type SurfaceConfig struct {
	Name     string     `yaml:"name"`
	Diffuse  string     `yaml:"diffuse"`
	Normal   string     `yaml:"normal"`
	Size     [2]int     `yaml:"size"`
	Color    [4]float32 `yaml:"color"`
	Tint     [4]float32 `yaml:"tint"`
	Position [2]float32 `yaml:"position"`
	SortZ    int        `yaml:"sort_z"`
}

// RenderConfig holds frame settings.
type RenderConfig struct {
	Width      int        `yaml:"width"`
	Height     int        `yaml:"height"`
	Background [4]float32 `yaml:"background"`
	Workers    int        `yaml:"workers"` // 0 = GOMAXPROCS
}

// OutputConfig holds frame and screenshot output settings.
type OutputConfig struct {
	Dir    string  `yaml:"dir"`
	Prefix string  `yaml:"prefix"`
	Format string  `yaml:"format"` // png or webp
	Scale  float64 `yaml:"scale"`
	Frames int     `yaml:"frames"`
	FPS    float32 `yaml:"fps"`
}

// WindowConfig holds viewer window settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
	FPSLimit   int    `yaml:"fps_limit"`
}

// AssetsConfig holds texture search paths.
type AssetsConfig struct {
	SearchPaths []string `yaml:"search_paths"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
// The default stage needs no asset files: a tinted backdrop and a dome.
func Default() *Config {
	return &Config{
		Material: MaterialConfig{
			NormalMap: "normal",
			Shininess: 2.5,
			Diffuse:   [4]float32{1, 1, 1, 1},
			Specular:  [4]float32{1, 1, 1, 1},
		},
		Light: LightConfig{
			Position:   [3]float32{0, 0, -20},
			Color:      [4]float32{1, 1, 1, 1},
			Intensity:  8,
			Range:      600,
			TrackDepth: -15,
			Marker:     true,
			MarkerSize: 16,
			Path: PathConfig{
				From:     [3]float32{-400, 0, -15},
				To:       [3]float32{400, 0, -15},
				Duration: 4,
				Easing:   "in-out-sine",
				PingPong: true,
			},
		},
		Hue: HueConfig{
			Enabled:    true,
			Rate:       0.5,
			Frequency:  0.5,
			Saturation: 1,
			Value:      1,
		},
		View: ViewConfig{
			Direction: [3]float32{0, 0, 1},
		},
		Surfaces: []SurfaceConfig{
			{
				Name:  "background",
				Size:  [2]int{1280, 720},
				Color: [4]float32{1, 1, 1, 1},
				Tint:  [4]float32{0.5, 0.7, 1, 1},
				SortZ: 0,
			},
			{
				Name:   "character",
				Normal: "sphere",
				Size:   [2]int{256, 256},
				Color:  [4]float32{1, 1, 1, 1},
				Tint:   [4]float32{1, 1, 1, 1},
				SortZ:  1,
			},
		},
		Render: RenderConfig{
			Width:      1280,
			Height:     720,
			Background: [4]float32{0, 0, 0, 1},
			Workers:    0,
		},
		Output: OutputConfig{
			Dir:    "out",
			Prefix: "frame",
			Format: "png",
			Scale:  1,
			Frames: 60,
			FPS:    30,
		},
		Window: WindowConfig{
			Title:      "spritelight",
			Fullscreen: false,
			VSync:      true,
			FPSLimit:   0,
		},
		Assets: AssetsConfig{
			SearchPaths: []string{"."},
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
