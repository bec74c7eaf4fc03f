package effects

import (
	"fmt"
	"sync"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/tair/virtual-tryon/internal/ar/scene"
	"github.com/tair/virtual-tryon/pkg/logger"
)

// Status messages
const (
	StatusEffectRemoved = "Effect removed"
)

// Target is the scene the layer restyles
type Target interface {
	ModelLoaded() bool
	SetMaterial(slot string, m scene.Material)
	PlayClip(name string) error
	StopClip()
}

// Layer applies at most one effect and one colorway to the loaded model
type Layer struct {
	target Target

	mu     sync.Mutex
	effect Effect
	color  Color
	hex    string
	status string
}

// NewLayer registers the original colorway on target
func NewLayer(target Target) *Layer {
	l := &Layer{target: target, color: Original, hex: originalHex()}
	l.target.SetMaterial(scene.SlotSole, soleMaterial)
	l.target.SetMaterial(scene.SlotLaces, lacesMaterial)
	l.applyMaterials()
	return l
}

// SelectEffect activates e, replacing any active effect. Selecting the active
// effect again, or None, clears it. Before a model is loaded the call does
// nothing and returns false.
func (l *Layer) SelectEffect(e Effect) bool {
	if !l.target.ModelLoaded() {
		return false
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	next := e
	if e == l.effect {
		next = None
	}

	if TreatmentFor(l.effect).Clip != "" {
		l.target.StopClip()
	}
	l.effect = next
	l.applyMaterials()
	l.playClip()

	if next == None {
		l.status = StatusEffectRemoved
	} else {
		l.status = effectStatus(next)
	}
	return true
}

// SelectColor switches the colorway. Unknown ids that are hex colors are used
// as given; other unknown ids only change the status text.
func (l *Layer) SelectColor(c Color) bool {
	if !l.target.ModelLoaded() {
		return false
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	name := string(c)
	if s, ok := SwatchFor(c); ok {
		l.color, l.hex, name = c, s.Hex, s.Name
		l.applyMaterials()
	} else if _, err := colorful.Hex(string(c)); err == nil {
		l.color, l.hex = c, string(c)
		l.applyMaterials()
	}

	l.status = fmt.Sprintf("Changed color to %s", name)
	return true
}

// Reapply restarts the active effect's animation, e.g. after the model changed
func (l *Layer) Reapply() {
	if !l.target.ModelLoaded() {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.applyMaterials()
	l.playClip()
}

// Active returns the active effect
func (l *Layer) Active() Effect {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.effect
}

// Color returns the active colorway and its hex value
func (l *Layer) Color() (Color, string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.color, l.hex
}

// Status returns the text describing the last selection
func (l *Layer) Status() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.status
}

// applyMaterials pushes the colorway and effect to the target. Caller holds
// l.mu or owns l exclusively.
func (l *Layer) applyMaterials() {
	t := TreatmentFor(l.effect)

	primary := t.Material
	primary.Color = l.hex
	if primary.EmissiveIntensity > 0 {
		primary.Emissive = l.hex
	}
	l.target.SetMaterial(scene.SlotPrimary, primary)

	secondary := baseMaterial
	secondary.Color = Complement(l.hex)
	secondary.Metalness = 0.2
	secondary.Roughness = 0.7
	l.target.SetMaterial(scene.SlotSecondary, secondary)

	glow := baseMaterial
	glow.Color = l.hex
	glow.Metalness = 0.7
	glow.Roughness = 0.3
	glow.Emissive = l.hex
	glow.EmissiveIntensity = 1
	l.target.SetMaterial(scene.SlotGlow, glow)
}

func (l *Layer) playClip() {
	clip := TreatmentFor(l.effect).Clip
	if clip == "" {
		return
	}
	if err := l.target.PlayClip(clip); err != nil {
		logger.Logger.Warn().Err(err).Str("effect", string(l.effect)).Msg("Failed to start effect animation")
	}
}

func effectStatus(e Effect) string {
	if label := TreatmentFor(e).Label; label != "" {
		return label + " effect applied"
	}
	return fmt.Sprintf("Effect %q applied", string(e))
}

// Complement returns the RGB inverse of hex, or hex unchanged if it does not parse
func Complement(hex string) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return hex
	}
	return colorful.Color{R: 1 - c.R, G: 1 - c.G, B: 1 - c.B}.Hex()
}
