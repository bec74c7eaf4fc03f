package effects

import "github.com/tair/virtual-tryon/internal/ar/scene"

// Effect identifies a cosmetic treatment of the loaded model
type Effect string

const (
	None        Effect = ""
	Sparkle     Effect = "sparkle"
	Neon        Effect = "neon"
	Rainbow     Effect = "rainbow"
	Rotate360   Effect = "rotate_360"
	SizeCompare Effect = "size_comparison"
	XRay        Effect = "x_ray_view"
)

// Effects lists the selectable effects in display order
var Effects = []Effect{Sparkle, Neon, Rainbow, Rotate360, SizeCompare, XRay}

// Color identifies a colorway
type Color string

const (
	Original Color = "original"
	Red      Color = "red"
	Yellow   Color = "yellow"
	Black    Color = "black"
	White    Color = "white"
	Green    Color = "green"
	Purple   Color = "purple"
)

// Colors lists the selectable colorways in display order
var Colors = []Color{Original, Red, Yellow, Black, White, Green, Purple}

// Swatch is the display name and value of a colorway
type Swatch struct {
	Name string
	Hex  string
}

var swatches = map[Color]Swatch{
	Original: {Name: "Prussian Blue", Hex: "#3B5BA5"},
	Red:      {Name: "Coral Orange", Hex: "#E87A5D"},
	Yellow:   {Name: "Mustard", Hex: "#F3B941"},
	Black:    {Name: "Black", Hex: "#333333"},
	White:    {Name: "White", Hex: "#FFFFFF"},
	Green:    {Name: "Green", Hex: "#4CAF50"},
	Purple:   {Name: "Purple", Hex: "#9C27B0"},
}

// SwatchFor returns the swatch of a known colorway
func SwatchFor(c Color) (Swatch, bool) {
	s, ok := swatches[c]
	return s, ok
}

func originalHex() string {
	s, _ := SwatchFor(Original)
	return s.Hex
}

// Treatment is what an effect does to the primary material and animation.
// The material color is always the active colorway.
type Treatment struct {
	Material scene.Material
	Clip     string
	Label    string
}

var baseMaterial = scene.Material{
	Lighting:  scene.LightingPBR,
	Metalness: 0.3,
	Roughness: 0.6,
	Opacity:   1,
}

var treatments = map[Effect]Treatment{
	None: {Material: baseMaterial},
	Sparkle: {
		Material: scene.Material{Lighting: scene.LightingPBR, Metalness: 0.3, Roughness: 0.6, Opacity: 1, EmissiveIntensity: 0.5},
		Clip:     "pulseAndGlow",
		Label:    "Sparkle",
	},
	Neon: {
		Material: scene.Material{
			Lighting:          scene.LightingBlinn,
			DiffuseIntensity:  1.0,
			Shininess:         2.0,
			FresnelExponent:   0.5,
			EmissiveIntensity: 1,
			Opacity:           1,
		},
		Label: "Neon",
	},
	Rainbow: {
		Material: scene.Material{Lighting: scene.LightingPBR, Metalness: 0.3, Roughness: 0.6, Opacity: 1, Iridescent: true},
		Label:    "Rainbow",
	},
	Rotate360:   {Material: baseMaterial, Clip: "rotate"},
	SizeCompare: {Material: baseMaterial, Clip: "scaleUp"},
	XRay: {
		Material: scene.Material{Lighting: scene.LightingPBR, Metalness: 0.3, Roughness: 0.6, Opacity: 0.35, Wireframe: true},
	},
}

// TreatmentFor returns the treatment of e. Unknown effects leave the
// material at its base record and play nothing.
func TreatmentFor(e Effect) Treatment {
	if t, ok := treatments[e]; ok {
		return t
	}
	return treatments[None]
}

// fixed materials that do not follow the colorway
var (
	soleMaterial  = scene.Material{Lighting: scene.LightingPBR, Color: "#303030", Metalness: 0.1, Roughness: 0.9, Opacity: 1}
	lacesMaterial = scene.Material{Lighting: scene.LightingPBR, Color: "#FFFFFF", Metalness: 0.1, Roughness: 0.8, Opacity: 1}
)
