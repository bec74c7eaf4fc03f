package scene

import "github.com/go-gl/mathgl/mgl64"

// Size is a viewport size in pixels
type Size struct {
	Width  int
	Height int
}

// Aspect returns width/height, or 1 for a degenerate size
func (s Size) Aspect() float64 {
	if s.Width <= 0 || s.Height <= 0 {
		return 1
	}
	return float64(s.Width) / float64(s.Height)
}

// Landscape reports whether the viewport is wider than tall
func (s Size) Landscape() bool {
	return s.Width > s.Height
}

// PerspectiveCamera is the virtual camera the model is rendered through
type PerspectiveCamera struct {
	FOV      float64 // vertical, degrees
	Near     float64
	Far      float64
	Aspect   float64
	Position mgl64.Vec3
	Viewport Size
}

// NewPerspectiveCamera returns the default AR camera sized to viewport
func NewPerspectiveCamera(viewport Size) PerspectiveCamera {
	return PerspectiveCamera{
		FOV:      75,
		Near:     0.1,
		Far:      1000,
		Aspect:   viewport.Aspect(),
		Position: mgl64.Vec3{0, 0, 5},
		Viewport: viewport,
	}
}

// Projection returns the perspective projection matrix
func (c PerspectiveCamera) Projection() mgl64.Mat4 {
	return mgl64.Perspective(mgl64.DegToRad(c.FOV), c.Aspect, c.Near, c.Far)
}

// View returns the view matrix looking at the origin
func (c PerspectiveCamera) View() mgl64.Mat4 {
	return mgl64.LookAtV(c.Position, mgl64.Vec3{}, mgl64.Vec3{0, 1, 0})
}

// LightKind distinguishes scene lights
type LightKind string

const (
	LightAmbient     LightKind = "ambient"
	LightDirectional LightKind = "directional"
)

// Light is a scene light source
type Light struct {
	Kind      LightKind
	Color     string
	Intensity float64
	Position  mgl64.Vec3
}

func defaultLights() []Light {
	return []Light{
		{Kind: LightDirectional, Color: "#FFFFFF", Intensity: 1, Position: mgl64.Vec3{0, 10, 10}},
		{Kind: LightAmbient, Color: "#FFFFFF", Intensity: 0.5},
	}
}
