package scene

import "math"

// Property is the node attribute a tween drives
type Property int

const (
	PropRotateY Property = iota
	PropPositionY
	PropScale
	PropMaterial
)

// Tween changes one property by Delta over Duration seconds. Rotation deltas
// are in degrees. Scale deltas are fractions of the scale the clip started at.
// Material tweens rebind meshes from slot From to slot To when they complete.
type Tween struct {
	Property Property
	Delta    float64
	From, To string
	Duration float64
	Ease     bool
}

// Step runs its tweens in parallel; the step lasts as long as its longest tween
type Step []Tween

func (s Step) duration() float64 {
	var d float64
	for _, t := range s {
		d = math.Max(d, t.Duration)
	}
	return d
}

// Clip is a named animation. Embedded clips imported from an asset carry only
// a Duration; built-in clips are sequences of steps.
type Clip struct {
	Name     string
	Duration float64
	Steps    []Step
	Loop     bool
}

// Length returns the clip length in seconds
func (c Clip) Length() float64 {
	if len(c.Steps) == 0 {
		return c.Duration
	}
	var d float64
	for _, s := range c.Steps {
		d += s.duration()
	}
	return d
}

var (
	rotate       = Tween{Property: PropRotateY, Delta: 45, Duration: 1.0}
	hover        = Tween{Property: PropPositionY, Delta: 0.05, Duration: 1.0, Ease: true}
	hoverDown    = Tween{Property: PropPositionY, Delta: -0.05, Duration: 1.0, Ease: true}
	scaleUp      = Tween{Property: PropScale, Delta: 0.05, Duration: 0.8, Ease: true}
	scaleDown    = Tween{Property: PropScale, Delta: -0.05, Duration: 0.8, Ease: true}
	glowEffect   = Tween{Property: PropMaterial, From: SlotPrimary, To: SlotGlow, Duration: 0.5}
	normalEffect = Tween{Property: PropMaterial, From: SlotGlow, To: SlotPrimary, Duration: 0.5}
)

var builtinClips = map[string]Clip{
	"rotate":         {Name: "rotate", Steps: []Step{{rotate}}, Loop: true},
	"hover":          {Name: "hover", Steps: []Step{{hover}, {hoverDown}}, Loop: true},
	"scaleUp":        {Name: "scaleUp", Steps: []Step{{scaleUp}}},
	"scaleDown":      {Name: "scaleDown", Steps: []Step{{scaleDown}}},
	"glowEffect":     {Name: "glowEffect", Steps: []Step{{glowEffect}}},
	"normalEffect":   {Name: "normalEffect", Steps: []Step{{normalEffect}}},
	"pulseAndGlow":   {Name: "pulseAndGlow", Steps: []Step{{scaleUp, glowEffect}, {scaleDown, normalEffect}}, Loop: true},
	"floatAndRotate": {Name: "floatAndRotate", Steps: []Step{{hover, rotate}, {hoverDown, rotate}}, Loop: true},
	"showcase": {
		Name: "showcase",
		Steps: []Step{
			{rotate},
			{glowEffect, scaleUp},
			{normalEffect, scaleDown},
			{hover},
			{hoverDown},
		},
		Loop: true,
	},
}

// BuiltinClip returns one of the registered procedural animations
func BuiltinClip(name string) (Clip, bool) {
	c, ok := builtinClips[name]
	return c, ok
}
