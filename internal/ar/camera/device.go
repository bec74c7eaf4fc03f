package camera

import (
	"context"
	"image"
)

// Facing selects the physical camera
type Facing string

const (
	FacingBack  Facing = "environment"
	FacingFront Facing = "user"
)

// Opposite returns the other camera
func (f Facing) Opposite() Facing {
	if f == FacingFront {
		return FacingBack
	}
	return FacingFront
}

// Constraints describe the stream requested from a device
type Constraints struct {
	Facing Facing
	Width  int // ideal
	Height int // ideal
}

// ConstraintsFor picks the ideal resolution for the viewport orientation
func ConstraintsFor(viewportWidth, viewportHeight int, facing Facing) Constraints {
	if viewportWidth > viewportHeight {
		return Constraints{Facing: facing, Width: 1280, Height: 720}
	}
	return Constraints{Facing: facing, Width: 720, Height: 1280}
}

// Device grants access to camera streams. Open blocks until the user has
// answered the permission prompt.
type Device interface {
	Open(ctx context.Context, c Constraints) (Stream, error)
}

// Stream is a live video stream. Stop releases every track.
type Stream interface {
	Frame() (image.Image, bool)
	TorchSupported() bool
	SetTorch(on bool) error
	Stop()
}
