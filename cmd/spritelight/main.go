// spritelight renders normal-mapped sprites lit by a dynamic point light.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/Faultbox/spritelight/internal/config"
	"github.com/Faultbox/spritelight/internal/engine/capture"
	"github.com/Faultbox/spritelight/internal/engine/lighting"
	"github.com/Faultbox/spritelight/internal/logger"
	"github.com/Faultbox/spritelight/internal/stage"
	"github.com/Faultbox/spritelight/pkg/colorutil"
	"github.com/Faultbox/spritelight/pkg/math"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "render", "r":
		cmdRender(args)
	case "animate", "a":
		cmdAnimate(args)
	case "hsv":
		cmdHSV(args)
	case "eval":
		cmdEval(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`spritelight - normal-mapped sprite lighting

Usage:
  spritelight <command> [options]

Commands:
  render [options] [x y]        Render one frame, light at screen pixel (x, y)
  animate [options]             Render a frame sequence along the light path
  hsv <h> <s> <v> [a]           Convert HSV(A) to RGBA
  eval [options]                Light one texel and print the color

Common options:
  -config <file>   Config file (default ./spritelight.yaml)
  -out <dir>       Output directory
  -format <fmt>    png or webp
  -width, -height  Frame size
  -workers <n>     Render goroutines per sprite
  -debug           Debug logging

Examples:
  spritelight render -o lit.png 640 300
  spritelight animate -frames 120 -fps 60 -format webp
  spritelight hsv 0.5 1 1
  spritelight eval -lz -20`)
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// setup loads config from fs flags and initializes logging.
func setup(f *config.Flags) *config.Config {
	cfg, err := config.LoadWith(f)
	if err != nil {
		fatalf("config: %v", err)
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fatalf("logger: %v", err)
	}
	return cfg
}

func cmdRender(args []string) {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	f := config.RegisterFlags(fs)
	out := fs.String("o", "", "Output file (.png or .webp); default is a timestamped file in -out")
	t := fs.Float64("t", 0, "Seconds of hue animation before the frame")
	fs.Parse(args)

	if fs.NArg() != 0 && fs.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Usage: spritelight render [options] [x y]")
		os.Exit(1)
	}

	cfg := setup(f)
	defer logger.Sync()

	mgr := stage.NewManager(cfg)
	defer mgr.Close()
	sc, err := stage.Build(cfg, mgr)
	if err != nil {
		fatalf("%v", err)
	}

	if fs.NArg() == 2 {
		x, errX := strconv.ParseFloat(fs.Arg(0), 32)
		y, errY := strconv.ParseFloat(fs.Arg(1), 32)
		if errX != nil || errY != nil {
			fatalf("invalid cursor position %q %q", fs.Arg(0), fs.Arg(1))
		}
		sc.Update(float32(*t), float32(x), float32(y))
	} else {
		sc.Step(float32(*t), sc.Light().Position)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	frame, err := sc.Render(ctx)
	if err != nil {
		fatalf("render: %v", err)
	}

	var path string
	if *out != "" {
		path, err = *out, capture.WriteFile(*out, frame, cfg.Output.Scale)
	} else {
		var c *capture.Capture
		c, err = newCapture(cfg)
		if err == nil {
			path, err = c.Screenshot(frame)
		}
	}
	if err != nil {
		fatalf("%v", err)
	}

	logger.Info("frame written", zap.String("path", path), zap.Stringer("light", sc.Light()))
	fmt.Println(path)
}

func cmdAnimate(args []string) {
	fs := flag.NewFlagSet("animate", flag.ExitOnError)
	f := config.RegisterFlags(fs)
	frames := fs.Int("frames", 0, "Number of frames (default from config)")
	fps := fs.Float64("fps", 0, "Frames per second (default from config)")
	fs.Parse(args)

	cfg := setup(f)
	defer logger.Sync()

	if *frames > 0 {
		cfg.Output.Frames = *frames
	}
	if *fps > 0 {
		cfg.Output.FPS = float32(*fps)
	}

	mgr := stage.NewManager(cfg)
	defer mgr.Close()
	sc, err := stage.Build(cfg, mgr)
	if err != nil {
		fatalf("%v", err)
	}
	c, err := newCapture(cfg)
	if err != nil {
		fatalf("%v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	lp := cfg.LightPath()
	dt := 1 / cfg.Output.FPS
	sc.Step(0, lp.Position())

	for i := 0; i < cfg.Output.Frames; i++ {
		if i > 0 {
			pos, _ := lp.Update(dt)
			sc.Step(dt, pos)
		}

		frame, err := sc.Render(ctx)
		if err != nil {
			fatalf("frame %d: %v", i, err)
		}
		name, err := c.SaveFrame(frame)
		if err != nil {
			fatalf("frame %d: %v", i, err)
		}
		logger.Debug("frame saved", zap.Int("frame", i), zap.String("path", name))
	}

	logger.Info("animation written",
		zap.Int("frames", c.Frames()),
		zap.String("dir", cfg.Output.Dir),
		zap.String("format", cfg.Output.Format),
	)
	fmt.Printf("%d frames written to %s\n", c.Frames(), cfg.Output.Dir)
}

func cmdHSV(args []string) {
	if len(args) != 3 && len(args) != 4 {
		fmt.Fprintln(os.Stderr, "Usage: spritelight hsv <h> <s> <v> [a]")
		os.Exit(1)
	}

	vals := []float32{0, 0, 0, 1}
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 32)
		if err != nil {
			fatalf("invalid number %q", a)
		}
		vals[i] = float32(v)
	}

	c := colorutil.HSVToRGB(vals[0], vals[1], vals[2], vals[3])
	fmt.Printf("r=%g g=%g b=%g a=%g\n", c.R, c.G, c.B, c.A)
	n := c.NRGBA()
	fmt.Printf("#%02x%02x%02x%02x\n", n.R, n.G, n.B, n.A)
}

func cmdEval(args []string) {
	fs := flag.NewFlagSet("eval", flag.ExitOnError)
	f := config.RegisterFlags(fs)
	lx := fs.Float64("lx", 0, "Light X (local space)")
	ly := fs.Float64("ly", 0, "Light Y")
	lz := fs.Float64("lz", -20, "Light Z (negative is toward the viewer)")
	px := fs.Float64("px", 0, "Texel X")
	py := fs.Float64("py", 0, "Texel Y")
	normal := fs.String("n", "0,0,1", "Tangent-space normal x,y,z")
	fs.Parse(args)

	cfg := setup(f)
	defer logger.Sync()

	n, err := parseVec3(*normal)
	if err != nil {
		fatalf("normal: %v", err)
	}

	eng, err := cfg.Engine()
	if err != nil {
		fatalf("%v", err)
	}
	light := cfg.PointLight()
	light.Position = math.Vec3{X: float32(*lx), Y: float32(*ly), Z: float32(*lz)}

	sample := lighting.SurfaceSample{
		Position: math.Vec3{X: float32(*px), Y: float32(*py)},
		Diffuse:  colorutil.White,
		Normal:   n,
	}
	c, err := eng.Evaluate(sample, []lighting.PointLight{light}, cfg.SceneConfig().View)
	if err != nil {
		fatalf("%v", err)
	}

	dist := light.Position.Distance(sample.Position)
	fmt.Printf("distance=%g attenuation=%g\n", dist, lighting.Attenuation(dist, light.Range)*light.Intensity)
	fmt.Printf("r=%g g=%g b=%g a=%g\n", c.R, c.G, c.B, c.A)
}

func parseVec3(s string) (math.Vec3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return math.Vec3{}, fmt.Errorf("want x,y,z, got %q", s)
	}
	var v [3]float32
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return math.Vec3{}, fmt.Errorf("invalid component %q", p)
		}
		v[i] = float32(f)
	}
	return math.Vec3{X: v[0], Y: v[1], Z: v[2]}, nil
}

func newCapture(cfg *config.Config) (*capture.Capture, error) {
	format, err := cfg.OutputFormat()
	if err != nil {
		return nil, err
	}
	return capture.New(cfg.Output.Dir, cfg.Output.Prefix, format, cfg.Output.Scale)
}
