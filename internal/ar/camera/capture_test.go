package camera

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStream struct {
	frame   image.Image
	torch   bool
	lit     bool
	stopped bool
}

func (s *fakeStream) Frame() (image.Image, bool) { return s.frame, s.frame != nil }
func (s *fakeStream) TorchSupported() bool       { return s.torch }
func (s *fakeStream) SetTorch(on bool) error {
	s.lit = on
	return nil
}
func (s *fakeStream) Stop() { s.stopped = true }

// fakeDevice hands out streams and remembers every request
type fakeDevice struct {
	deny     bool
	frame    image.Image
	requests []Constraints
	streams  []*fakeStream
}

func (d *fakeDevice) Open(_ context.Context, c Constraints) (Stream, error) {
	d.requests = append(d.requests, c)
	if d.deny {
		return nil, ErrPermissionDenied
	}
	s := &fakeStream{frame: d.frame, torch: c.Facing == FacingBack}
	d.streams = append(d.streams, s)
	return s, nil
}

func (d *fakeDevice) live() int {
	n := 0
	for _, s := range d.streams {
		if !s.stopped {
			n++
		}
	}
	return n
}

type gatedStream struct {
	facing  Facing
	stopped atomic.Bool
}

func (s *gatedStream) Frame() (image.Image, bool) { return nil, false }
func (s *gatedStream) TorchSupported() bool       { return false }
func (s *gatedStream) SetTorch(bool) error        { return ErrTorchUnsupported }
func (s *gatedStream) Stop()                      { s.stopped.Store(true) }

// gatedDevice blocks Open while held so reconfigurations can overlap
type gatedDevice struct {
	mu      sync.Mutex
	gate    chan struct{}
	entered chan struct{}
	streams []*gatedStream
}

func (d *gatedDevice) hold() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.gate = make(chan struct{})
	d.entered = make(chan struct{}, 8)
}

func (d *gatedDevice) release() {
	d.mu.Lock()
	defer d.mu.Unlock()
	close(d.gate)
	d.gate = nil
}

func (d *gatedDevice) Open(_ context.Context, c Constraints) (Stream, error) {
	d.mu.Lock()
	gate, entered := d.gate, d.entered
	d.mu.Unlock()
	if gate != nil {
		entered <- struct{}{}
		<-gate
	}

	s := &gatedStream{facing: c.Facing}
	d.mu.Lock()
	d.streams = append(d.streams, s)
	d.mu.Unlock()
	return s, nil
}

func (d *gatedDevice) live() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	n := 0
	for _, s := range d.streams {
		if !s.stopped.Load() {
			n++
		}
	}
	return n
}

func (d *gatedDevice) waitEntered(t *testing.T) {
	t.Helper()
	select {
	case <-d.entered:
	case <-time.After(2 * time.Second):
		t.Fatal("camera open never started")
	}
}

type switchResult struct {
	facing Facing
	err    error
}

func switchAsync(c *Capture) <-chan switchResult {
	out := make(chan switchResult, 1)
	go func() {
		f, err := c.SwitchFacing(context.Background())
		out <- switchResult{f, err}
	}()
	return out
}

func testFrame(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: 0x3B, G: 0x5B, B: 0xA5, A: 0xff})
		}
	}
	return img
}

func TestRequestPermissionGranted(t *testing.T) {
	device := &fakeDevice{}
	c := NewCapture(device, 390, 844)

	assert.Equal(t, StateNoPermission, c.State())
	granted, err := c.RequestPermission(context.Background())
	require.NoError(t, err)
	assert.True(t, granted)
	assert.Equal(t, StateGranted, c.State())
	assert.Equal(t, FacingBack, c.Facing())
	assert.Equal(t, Constraints{Facing: FacingBack, Width: 720, Height: 1280}, device.requests[0])
}

func TestRequestPermissionDenied(t *testing.T) {
	device := &fakeDevice{deny: true}
	c := NewCapture(device, 1280, 720)

	granted, err := c.RequestPermission(context.Background())
	assert.False(t, granted)
	assert.ErrorIs(t, err, ErrPermissionDenied)
	assert.Equal(t, StateNoPermission, c.State())

	snap, err := c.CaptureFrame(context.Background())
	assert.Nil(t, snap)
	assert.ErrorIs(t, err, ErrNotGranted)

	_, err = c.ToggleTorch(context.Background())
	assert.ErrorIs(t, err, ErrNotGranted)
}

func TestRequestPermissionAgainStopsPreviousStream(t *testing.T) {
	device := &fakeDevice{}
	c := NewCapture(device, 1280, 720)
	ctx := context.Background()

	_, err := c.RequestPermission(ctx)
	require.NoError(t, err)
	_, err = c.RequestPermission(ctx)
	require.NoError(t, err)

	require.Len(t, device.streams, 2)
	assert.True(t, device.streams[0].stopped)
	assert.Equal(t, 1, device.live())
}

func TestSwitchFacing(t *testing.T) {
	device := &fakeDevice{}
	c := NewCapture(device, 1280, 720)
	ctx := context.Background()

	_, err := c.SwitchFacing(ctx)
	assert.ErrorIs(t, err, ErrNotGranted)

	_, err = c.RequestPermission(ctx)
	require.NoError(t, err)

	status, err := c.ToggleTorch(ctx)
	require.NoError(t, err)
	assert.True(t, status.On)

	facing, err := c.SwitchFacing(ctx)
	require.NoError(t, err)
	assert.Equal(t, FacingFront, facing)
	assert.False(t, c.TorchOn(), "torch is forced off when switching")
	assert.Equal(t, 1, device.live())
	assert.Equal(t, FacingFront, device.requests[1].Facing)

	facing, err = c.SwitchFacing(ctx)
	require.NoError(t, err)
	assert.Equal(t, FacingBack, facing)
	assert.Equal(t, 1, device.live())
}

func TestToggleTorch(t *testing.T) {
	device := &fakeDevice{}
	c := NewCapture(device, 1280, 720)
	ctx := context.Background()
	_, err := c.RequestPermission(ctx)
	require.NoError(t, err)

	status, err := c.ToggleTorch(ctx)
	require.NoError(t, err)
	assert.Equal(t, TorchStatus{On: true, Supported: true}, status)
	assert.True(t, device.streams[0].lit)

	status, err = c.ToggleTorch(ctx)
	require.NoError(t, err)
	assert.Equal(t, TorchStatus{On: false, Supported: true}, status)

	_, err = c.SwitchFacing(ctx)
	require.NoError(t, err)
	status, err = c.ToggleTorch(ctx)
	require.NoError(t, err, "unsupported torch is not an error")
	assert.Equal(t, TorchStatus{On: false, Supported: false}, status)
}

func TestCaptureFrame(t *testing.T) {
	device := &fakeDevice{frame: testFrame(64, 48)}
	c := NewCapture(device, 1280, 720)
	ctx := context.Background()
	_, err := c.RequestPermission(ctx)
	require.NoError(t, err)

	snap, err := c.CaptureFrame(ctx)
	require.NoError(t, err)
	require.NotNil(t, snap)
	assert.NotEmpty(t, snap.ID)
	assert.Equal(t, 64, snap.Width)
	assert.Equal(t, 48, snap.Height)

	decoded, err := jpeg.Decode(bytes.NewReader(snap.JPEG))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 64, 48), decoded.Bounds())

	url := snap.DataURL()
	require.True(t, strings.HasPrefix(url, "data:image/jpeg;base64,"))
	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(url, "data:image/jpeg;base64,"))
	require.NoError(t, err)
	assert.Equal(t, snap.JPEG, raw)
}

func TestCaptureFrameWithoutFrame(t *testing.T) {
	c := NewCapture(&fakeDevice{}, 1280, 720)
	_, err := c.RequestPermission(context.Background())
	require.NoError(t, err)

	snap, err := c.CaptureFrame(context.Background())
	assert.NoError(t, err)
	assert.Nil(t, snap)
}

func TestCloseReleasesStream(t *testing.T) {
	device := &fakeDevice{}
	c := NewCapture(device, 1280, 720)
	_, err := c.RequestPermission(context.Background())
	require.NoError(t, err)

	c.Close()
	assert.Zero(t, device.live())
	assert.Equal(t, StateNoPermission, c.State())
}

func TestStillDevice(t *testing.T) {
	ctx := context.Background()

	stream, err := NewStillDevice(nil).Open(ctx, ConstraintsFor(1280, 720, FacingBack))
	require.NoError(t, err)
	frame, ok := stream.Frame()
	require.True(t, ok)
	assert.Equal(t, image.Rect(0, 0, 1280, 720), frame.Bounds())
	assert.ErrorIs(t, stream.SetTorch(true), ErrTorchUnsupported)

	stream.Stop()
	_, ok = stream.Frame()
	assert.False(t, ok)

	_, err = (&StillDevice{Deny: true}).Open(ctx, Constraints{})
	assert.True(t, errors.Is(err, ErrPermissionDenied))
}

func TestConstraintsFor(t *testing.T) {
	assert.Equal(t, Constraints{Facing: FacingFront, Width: 1280, Height: 720}, ConstraintsFor(1920, 1080, FacingFront))
	assert.Equal(t, Constraints{Facing: FacingBack, Width: 720, Height: 1280}, ConstraintsFor(390, 844, FacingBack))
	assert.Equal(t, FacingBack, FacingFront.Opposite())
}

func TestCloseDuringSwitchStopsLateStream(t *testing.T) {
	device := &gatedDevice{}
	c := NewCapture(device, 1280, 720)
	_, err := c.RequestPermission(context.Background())
	require.NoError(t, err)

	device.hold()
	pending := switchAsync(c)
	device.waitEntered(t)

	c.Close()
	device.release()

	res := <-pending
	assert.ErrorIs(t, res.err, ErrSuperseded)
	assert.Equal(t, StateNoPermission, c.State())
	assert.Zero(t, device.live())
}

func TestOverlappingSwitchesKeepOneStream(t *testing.T) {
	device := &gatedDevice{}
	c := NewCapture(device, 1280, 720)
	_, err := c.RequestPermission(context.Background())
	require.NoError(t, err)

	device.hold()
	first := switchAsync(c)
	device.waitEntered(t)
	second := switchAsync(c)
	device.waitEntered(t)
	device.release()

	r1, r2 := <-first, <-second
	assert.ErrorIs(t, r1.err, ErrSuperseded)
	require.NoError(t, r2.err)
	assert.Equal(t, FacingBack, r2.facing, "the later switch flips back")
	assert.Equal(t, FacingBack, c.Facing())
	assert.Equal(t, StateGranted, c.State())
	assert.Equal(t, 1, device.live())

	c.Close()
	assert.Zero(t, device.live())
}

func TestRequestPermissionDuringSwitch(t *testing.T) {
	device := &gatedDevice{}
	c := NewCapture(device, 1280, 720)
	_, err := c.RequestPermission(context.Background())
	require.NoError(t, err)

	device.hold()
	pending := switchAsync(c)
	device.waitEntered(t)

	granted := make(chan bool, 1)
	go func() {
		ok, _ := c.RequestPermission(context.Background())
		granted <- ok
	}()
	device.waitEntered(t)
	device.release()

	assert.ErrorIs(t, (<-pending).err, ErrSuperseded)
	assert.True(t, <-granted)
	assert.Equal(t, FacingBack, c.Facing())
	assert.Equal(t, 1, device.live())
}
