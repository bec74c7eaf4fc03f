package scene

import "github.com/go-gl/mathgl/mgl64"

// Status messages shown over the AR view
const (
	StatusLookingForSurfaces = "Looking for surfaces..."
	StatusModelLoaded        = "Model loaded! Interact with it using gestures"
	StatusModelFailed        = "Failed to load model. Please try again."
)

// State is the AR scene state owned by one controller
type State struct {
	HasSurface    bool
	HasMarker     bool
	ModelLoaded   bool
	ModelRef      string
	Loading       string // ref of the in-flight load, if any
	ModelPosition mgl64.Vec3
	ModelRotation mgl64.Vec3
	AmbientLight  float64
	ShadowOpacity float64
	Clip          string
	Status        string
	LastError     error
}

// PlacementHint anchors the model relative to the camera
type PlacementHint struct {
	Position mgl64.Vec3
	Yaw      float64
}

// DefaultPlacement is the fixed pose used until foot detection exists
func DefaultPlacement() PlacementHint {
	return PlacementHint{Position: mgl64.Vec3{0, -1.5, -2}, Yaw: mgl64.DegToRad(45)}
}
