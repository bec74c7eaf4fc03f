package camera

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/jpeg"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tair/virtual-tryon/pkg/logger"
)

// State is the permission state of a capture
type State string

const (
	StateNoPermission State = "no_permission"
	StateRequesting   State = "requesting"
	StateGranted      State = "granted"
)

// TorchStatus reports the torch after a toggle
type TorchStatus struct {
	On        bool
	Supported bool
}

// Snapshot is an encoded still frame
type Snapshot struct {
	ID        string
	Width     int
	Height    int
	JPEG      []byte
	CreatedAt time.Time
}

// DataURL renders the snapshot as an inline image URL
func (s *Snapshot) DataURL() string {
	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(s.JPEG)
}

// Capture owns the single live camera stream of a session
type Capture struct {
	device   Device
	viewport image.Point
	quality  int

	mu         sync.Mutex
	state      State
	facing     Facing
	torch      bool
	stream     Stream
	generation uint64
}

// NewCapture creates a capture for a viewport of the given size
func NewCapture(device Device, viewportWidth, viewportHeight int) *Capture {
	return &Capture{
		device:   device,
		viewport: image.Pt(viewportWidth, viewportHeight),
		quality:  jpeg.DefaultQuality,
		state:    StateNoPermission,
		facing:   FacingBack,
	}
}

// RequestPermission opens the back camera. A denied request leaves the
// capture without permission and returns ErrPermissionDenied. A request
// overtaken by Close or another reconfiguration returns ErrSuperseded.
func (c *Capture) RequestPermission(ctx context.Context) (bool, error) {
	c.mu.Lock()
	if c.state == StateRequesting {
		c.mu.Unlock()
		return false, errors.New("permission request already in progress")
	}
	gen := c.beginLocked()
	c.state = StateRequesting
	c.facing = FacingBack
	c.mu.Unlock()

	stream, err := c.device.Open(ctx, c.constraints(FacingBack))

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.supersededLocked(gen, stream) {
		return false, ErrSuperseded
	}
	if err != nil {
		c.state = StateNoPermission
		logger.Info(ctx).Err(err).Msg("Camera permission not granted")
		if errors.Is(err, ErrPermissionDenied) {
			return false, err
		}
		return false, fmt.Errorf("%w: %v", ErrPermissionDenied, err)
	}

	c.stream = stream
	c.state = StateGranted
	return true, nil
}

// SwitchFacing restarts the stream on the other camera. The torch is off
// afterwards.
func (c *Capture) SwitchFacing(ctx context.Context) (Facing, error) {
	c.mu.Lock()
	if c.state != StateGranted {
		defer c.mu.Unlock()
		return c.facing, ErrNotGranted
	}
	next := c.facing.Opposite()
	gen := c.beginLocked()
	c.facing = next
	c.mu.Unlock()

	stream, err := c.device.Open(ctx, c.constraints(next))

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.supersededLocked(gen, stream) {
		return c.facing, ErrSuperseded
	}
	if err != nil {
		c.state = StateNoPermission
		return c.facing, fmt.Errorf("failed to switch camera: %w", err)
	}
	c.stream = stream
	return next, nil
}

// ToggleTorch flips the torch on the back camera. Cameras without a torch
// are left as they are and reported as unsupported.
func (c *Capture) ToggleTorch(ctx context.Context) (TorchStatus, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateGranted || c.stream == nil {
		return TorchStatus{}, ErrNotGranted
	}
	if c.facing != FacingBack || !c.stream.TorchSupported() {
		logger.Info(ctx).Str("facing", string(c.facing)).Msg("Torch not supported by this camera")
		return TorchStatus{On: c.torch, Supported: false}, nil
	}

	if err := c.stream.SetTorch(!c.torch); err != nil {
		if errors.Is(err, ErrTorchUnsupported) {
			return TorchStatus{On: c.torch, Supported: false}, nil
		}
		return TorchStatus{On: c.torch, Supported: true}, fmt.Errorf("failed to toggle torch: %w", err)
	}
	c.torch = !c.torch
	return TorchStatus{On: c.torch, Supported: true}, nil
}

// CaptureFrame encodes the current frame at its native resolution. It
// returns nil when the stream has no frame yet.
func (c *Capture) CaptureFrame(ctx context.Context) (*Snapshot, error) {
	c.mu.Lock()
	if c.state != StateGranted || c.stream == nil {
		c.mu.Unlock()
		return nil, ErrNotGranted
	}
	frame, ok := c.stream.Frame()
	c.mu.Unlock()

	if !ok || frame == nil || frame.Bounds().Empty() {
		return nil, nil
	}

	bounds := frame.Bounds()
	canvas := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(canvas, canvas.Bounds(), frame, bounds.Min, draw.Src)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, canvas, &jpeg.Options{Quality: c.quality}); err != nil {
		return nil, fmt.Errorf("failed to encode frame: %w", err)
	}

	snap := &Snapshot{
		ID:        uuid.NewString(),
		Width:     bounds.Dx(),
		Height:    bounds.Dy(),
		JPEG:      buf.Bytes(),
		CreatedAt: time.Now(),
	}
	logger.Debug(ctx).Str("snapshot_id", snap.ID).Int("bytes", len(snap.JPEG)).Msg("Frame captured")
	return snap, nil
}

// State returns the permission state
func (c *Capture) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Facing returns the active camera
func (c *Capture) Facing() Facing {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.facing
}

// TorchOn reports whether the torch is lit
func (c *Capture) TorchOn() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.torch
}

// Close stops the stream. The capture must be granted again before reuse.
func (c *Capture) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.beginLocked()
	c.state = StateNoPermission
}

func (c *Capture) constraints(f Facing) Constraints {
	return ConstraintsFor(c.viewport.X, c.viewport.Y, f)
}

// beginLocked stops the current stream and invalidates any open still in
// flight. Caller holds c.mu.
func (c *Capture) beginLocked() uint64 {
	c.stopLocked()
	c.generation++
	return c.generation
}

// supersededLocked reports whether gen is stale, stopping the stream it
// opened if so. Caller holds c.mu.
func (c *Capture) supersededLocked(gen uint64, opened Stream) bool {
	if gen == c.generation {
		return false
	}
	if opened != nil {
		opened.Stop()
	}
	return true
}

// stopLocked releases the current stream. Caller holds c.mu.
func (c *Capture) stopLocked() {
	if c.stream != nil {
		c.stream.Stop()
		c.stream = nil
	}
	c.torch = false
}
