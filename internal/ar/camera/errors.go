package camera

import "errors"

var (
	ErrPermissionDenied = errors.New("camera permission denied")
	ErrNotGranted       = errors.New("camera not granted")
	ErrTorchUnsupported = errors.New("torch not supported by this camera")
	// ErrSuperseded is returned by a reconfiguration that a later one, or
	// Close, overtook while the camera was opening
	ErrSuperseded = errors.New("camera reconfiguration superseded")
)
