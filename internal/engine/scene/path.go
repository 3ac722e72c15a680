package scene

import (
	"sort"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/Faultbox/spritelight/pkg/math"
)

var easings = map[string]ease.TweenFunc{
	"linear":         ease.Linear,
	"in-out-quad":    ease.InOutQuad,
	"in-out-cubic":   ease.InOutCubic,
	"in-out-sine":    ease.InOutSine,
	"out-bounce":     ease.OutBounce,
	"in-out-elastic": ease.InOutElastic,
}

// EaseByName looks up an easing function by its config name.
func EaseByName(name string) (ease.TweenFunc, bool) {
	fn, ok := easings[name]
	return fn, ok
}

// EaseNames returns the accepted easing names, sorted.
func EaseNames() []string {
	names := make([]string, 0, len(easings))
	for name := range easings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LightPath moves a light between two local-space points for headless
// animations where there is no cursor to follow.
// With PingPong set the path reverses at each end instead of stopping.
type LightPath struct {
	From, To math.Vec3
	Duration float32
	Easing   ease.TweenFunc
	PingPong bool

	tweens [3]*gween.Tween
	pos    math.Vec3
	done   bool
}

// NewLightPath creates a path starting at from.
func NewLightPath(from, to math.Vec3, duration float32, easing ease.TweenFunc, pingPong bool) *LightPath {
	if easing == nil {
		easing = ease.Linear
	}
	p := &LightPath{
		From:     from,
		To:       to,
		Duration: duration,
		Easing:   easing,
		PingPong: pingPong,
	}
	p.start(from, to)
	return p
}

func (p *LightPath) start(from, to math.Vec3) {
	p.tweens[0] = gween.New(from.X, to.X, p.Duration, p.Easing)
	p.tweens[1] = gween.New(from.Y, to.Y, p.Duration, p.Easing)
	p.tweens[2] = gween.New(from.Z, to.Z, p.Duration, p.Easing)
	p.pos = from
	p.done = false
}

// Update advances the path by dt seconds and returns the light position.
// done is true once a one-way path reaches To; ping-pong paths never finish.
func (p *LightPath) Update(dt float32) (pos math.Vec3, done bool) {
	if p.done {
		return p.pos, true
	}

	x, fx := p.tweens[0].Update(dt)
	y, fy := p.tweens[1].Update(dt)
	z, fz := p.tweens[2].Update(dt)
	p.pos = math.Vec3{X: x, Y: y, Z: z}

	if fx && fy && fz {
		if p.PingPong {
			p.From, p.To = p.To, p.From
			p.start(p.From, p.To)
			return p.pos, false
		}
		p.done = true
	}
	return p.pos, p.done
}

// Position returns the last computed position.
func (p *LightPath) Position() math.Vec3 {
	return p.pos
}
