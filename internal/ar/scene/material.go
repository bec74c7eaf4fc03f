package scene

import "sync"

// LightingModel selects the shading model of a material
type LightingModel string

const (
	LightingPBR   LightingModel = "PBR"
	LightingBlinn LightingModel = "Blinn"
)

// Standard material slots shared by every shoe model
const (
	SlotPrimary   = "primary"
	SlotSecondary = "secondary"
	SlotSole      = "sole"
	SlotLaces     = "laces"
	SlotGlow      = "glow"
)

// Material is a fixed parameter record applied to mesh surfaces
type Material struct {
	Lighting          LightingModel
	Color             string // #RRGGBB
	Metalness         float64
	Roughness         float64
	Emissive          string
	EmissiveIntensity float64
	DiffuseIntensity  float64
	Shininess         float64
	FresnelExponent   float64
	Opacity           float64
	Wireframe         bool
	Iridescent        bool
}

// MaterialLibrary maps slot names to materials. Changing a slot restyles every
// mesh bound to it without reloading the model.
type MaterialLibrary struct {
	mu        sync.RWMutex
	materials map[string]Material
}

// NewMaterialLibrary returns an empty library
func NewMaterialLibrary() *MaterialLibrary {
	return &MaterialLibrary{materials: make(map[string]Material)}
}

// Set defines or replaces a slot
func (l *MaterialLibrary) Set(slot string, m Material) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.materials[slot] = m
}

// SetDefault defines a slot only when it is absent
func (l *MaterialLibrary) SetDefault(slot string, m Material) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.materials[slot]; !ok {
		l.materials[slot] = m
	}
}

// Get returns the material bound to slot
func (l *MaterialLibrary) Get(slot string) (Material, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	m, ok := l.materials[slot]
	return m, ok
}

// Snapshot copies the library contents
func (l *MaterialLibrary) Snapshot() map[string]Material {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make(map[string]Material, len(l.materials))
	for k, v := range l.materials {
		out[k] = v
	}
	return out
}
