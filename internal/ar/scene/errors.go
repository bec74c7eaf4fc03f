package scene

import (
	"errors"
	"fmt"
)

var (
	ErrNotInitialized     = errors.New("scene not initialized")
	ErrAlreadyInitialized = errors.New("scene already initialized")
	// ErrSuperseded is returned by a load whose result was discarded because
	// a newer model was requested while it was in flight
	ErrSuperseded = errors.New("model load superseded by a newer request")
	ErrNoModel    = errors.New("no model loaded")
)

// AssetLoadError reports a model that could not be fetched or parsed
type AssetLoadError struct {
	Ref string
	Err error
}

func (e *AssetLoadError) Error() string {
	return fmt.Sprintf("failed to load model %q: %v", e.Ref, e.Err)
}

func (e *AssetLoadError) Unwrap() error {
	return e.Err
}
