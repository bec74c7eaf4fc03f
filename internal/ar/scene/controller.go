package scene

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/tair/virtual-tryon/pkg/logger"
)

// Phase is the lifecycle stage of a controller
type Phase int

const (
	PhaseUninitialized Phase = iota
	PhaseInitialized
	PhaseModelLoading
	PhaseModelReady
	PhaseDisposed
)

func (p Phase) String() string {
	switch p {
	case PhaseUninitialized:
		return "uninitialized"
	case PhaseInitialized:
		return "initialized"
	case PhaseModelLoading:
		return "model_loading"
	case PhaseModelReady:
		return "model_ready"
	case PhaseDisposed:
		return "disposed"
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

const (
	defaultModelScale = 0.02
	spinPerFrame      = 0.005 // radians about Y
	defaultFrameRate  = 60
)

var defaultModelOffset = mgl64.Vec3{0, -1.5, 0}

// Options tunes a controller
type Options struct {
	// FrameInterval is the render loop period; zero means 60 frames per second
	FrameInterval time.Duration
	Registerer    prometheus.Registerer
	Materials     *MaterialLibrary
}

// Controller owns one AR scene: camera, lights, at most one model and the
// render loop that animates and draws them.
type Controller struct {
	engine    Engine
	materials *MaterialLibrary
	metrics   *Metrics
	interval  time.Duration
	log       zerolog.Logger

	mu         sync.Mutex
	phase      Phase
	camera     PerspectiveCamera
	lights     []Light
	model      *Node
	generation uint64
	mixer      Mixer
	state      State
	frameSeq   uint64

	cancel context.CancelFunc
	done   chan struct{}
}

// NewController creates a controller rendering through engine
func NewController(engine Engine, opts Options) *Controller {
	interval := opts.FrameInterval
	if interval <= 0 {
		interval = time.Second / defaultFrameRate
	}
	materials := opts.Materials
	if materials == nil {
		materials = NewMaterialLibrary()
	}
	return &Controller{
		engine:    engine,
		materials: materials,
		metrics:   NewMetrics(opts.Registerer),
		interval:  interval,
		log:       logger.Component("ar_scene"),
	}
}

// Materials returns the library mesh slots are resolved against
func (c *Controller) Materials() *MaterialLibrary {
	return c.materials
}

// Init builds the scene for viewport and starts the render loop
func (c *Controller) Init(viewport Size) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.phase != PhaseUninitialized {
		return ErrAlreadyInitialized
	}

	c.camera = NewPerspectiveCamera(viewport)
	c.lights = defaultLights()
	c.state = State{
		AmbientLight:  c.lights[1].Intensity,
		ShadowOpacity: 1,
		Status:        StatusLookingForSurfaces,
	}
	c.phase = PhaseInitialized

	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	c.done = make(chan struct{})
	go c.loop(ctx)

	c.log.Debug().
		Int("width", viewport.Width).
		Int("height", viewport.Height).
		Msg("AR scene initialized")
	return nil
}

// Resize keeps the camera aspect and render size in step with the viewport
func (c *Controller) Resize(viewport Size) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.live() {
		return ErrNotInitialized
	}
	c.camera.Aspect = viewport.Aspect()
	c.camera.Viewport = viewport
	return nil
}

// LoadModel replaces the current model with the asset at ref. The call
// blocks while the asset loads; only the most recently requested ref is ever
// attached, so an older load that completes late returns ErrSuperseded.
func (c *Controller) LoadModel(ctx context.Context, ref string) error {
	c.mu.Lock()
	if !c.live() {
		c.mu.Unlock()
		return ErrNotInitialized
	}
	if c.model != nil && c.state.ModelRef == ref {
		c.mu.Unlock()
		return nil
	}

	c.generation++
	gen := c.generation
	c.removeModel()
	c.phase = PhaseModelLoading
	c.state.Loading = ref
	c.mu.Unlock()

	node, err := c.engine.LoadAsset(ctx, ref)

	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.generation || !c.live() {
		c.metrics.modelLoads.WithLabelValues(outcomeSuperseded).Inc()
		logger.Debug(ctx).Str("model", ref).Msg("Discarding superseded model load")
		return ErrSuperseded
	}

	c.state.Loading = ""
	c.phase = PhaseModelReady

	if err != nil {
		loadErr := &AssetLoadError{Ref: ref, Err: err}
		c.state.LastError = loadErr
		c.state.Status = StatusModelFailed
		c.metrics.modelLoads.WithLabelValues(outcomeFailed).Inc()
		logger.Error(ctx).Err(err).Str("model", ref).Msg("Failed to load model")
		return loadErr
	}

	node.Scale = mgl64.Vec3{defaultModelScale, defaultModelScale, defaultModelScale}
	node.Position = defaultModelOffset
	c.engine.Attach(node)
	c.model = node
	c.state.ModelLoaded = true
	c.state.ModelRef = ref
	c.state.ModelPosition = node.Position
	c.state.ModelRotation = node.Rotation
	c.state.LastError = nil
	c.state.Status = StatusModelLoaded

	if len(node.Clips) > 0 {
		c.mixer.Play(node.Clips[0], node)
	}

	c.metrics.modelLoads.WithLabelValues(outcomeLoaded).Inc()
	logger.Info(ctx).Str("model", ref).Msg("Model loaded")
	return nil
}

// PositionModel applies hint to the current model
func (c *Controller) PositionModel(hint PlacementHint) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.model == nil {
		return ErrNoModel
	}
	c.model.Position = hint.Position
	c.model.Rotation[1] = hint.Yaw
	c.mixer.Rebase(c.model)
	c.state.ModelPosition = c.model.Position
	c.state.ModelRotation = c.model.Rotation
	return nil
}

// SurfaceDetected records a tracked plane and anchors the model on it
func (c *Controller) SurfaceDetected(anchor mgl64.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state.HasSurface = true
	c.state.ModelPosition = anchor
	if c.model != nil {
		c.model.Position = anchor
		c.mixer.Rebase(c.model)
	}
}

// MarkerFound records that the foot marker is being tracked
func (c *Controller) MarkerFound() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.HasMarker = true
}

// Drag moves the model across the tracked plane, keeping its height
func (c *Controller) Drag(to mgl64.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()

	pos := mgl64.Vec3{to.X(), c.state.ModelPosition.Y(), to.Z()}
	c.state.ModelPosition = pos
	if c.model != nil {
		c.model.Position = pos
		c.mixer.Rebase(c.model)
	}
}

// Reset forgets tracking results. The loaded model stays.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state.HasSurface = false
	c.state.HasMarker = false
	c.state.Status = StatusLookingForSurfaces
}

// PlayClip starts a named clip on the model. Clips embedded in the asset take
// precedence over the built-in ones.
func (c *Controller) PlayClip(name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.model == nil {
		return ErrNoModel
	}
	clip, ok := c.model.Clip(name)
	if !ok {
		clip, ok = BuiltinClip(name)
	}
	if !ok {
		return fmt.Errorf("unknown animation %q", name)
	}
	c.mixer.Play(clip, c.model)
	return nil
}

// StopClip stops the running clip, if any
func (c *Controller) StopClip() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mixer.Stop(c.model)
}

// ModelLoaded reports whether a model is attached
func (c *Controller) ModelLoaded() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.model != nil
}

// SetMaterial restyles every mesh bound to slot
func (c *Controller) SetMaterial(slot string, m Material) {
	c.materials.Set(slot, m)
}

// AdjustLighting maps an estimated scene brightness in [0,1] onto the ambient
// light and shadow strength
func (c *Controller) AdjustLighting(brightness float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	b := math.Min(math.Max(brightness, 0), 1)
	c.state.AmbientLight = math.Min(1000, b*2000)
	c.state.ShadowOpacity = math.Max(0.2, 1-b*0.8)
	for i := range c.lights {
		if c.lights[i].Kind == LightAmbient {
			c.lights[i].Intensity = c.state.AmbientLight
		}
	}
}

// State returns a copy of the scene state
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := c.state
	if name, ok := c.mixer.Active(); ok {
		s.Clip = name
	} else {
		s.Clip = ""
	}
	return s
}

// Phase returns the lifecycle stage
func (c *Controller) Phase() Phase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

// Model returns the attached model node, or nil
func (c *Controller) Model() *Node {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.model
}

// Dispose stops the render loop and detaches the model. In-flight loads
// complete with ErrSuperseded.
func (c *Controller) Dispose() {
	c.mu.Lock()
	if c.phase == PhaseDisposed {
		c.mu.Unlock()
		return
	}
	wasLive := c.live()
	c.generation++
	c.removeModel()
	c.phase = PhaseDisposed
	cancel, done := c.cancel, c.done
	c.mu.Unlock()

	if wasLive {
		cancel()
		<-done
	}
	c.log.Debug().Msg("AR scene disposed")
}

func (c *Controller) live() bool {
	return c.phase != PhaseUninitialized && c.phase != PhaseDisposed
}

// removeModel detaches the current model. Caller holds c.mu.
func (c *Controller) removeModel() {
	if c.model == nil {
		return
	}
	c.mixer.Stop(c.model)
	c.engine.Detach(c.model)
	c.model = nil
	c.state.ModelLoaded = false
	c.state.ModelRef = ""
}

func (c *Controller) loop(ctx context.Context) {
	defer close(c.done)

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			c.tick(now.Sub(last).Seconds())
			last = now
		}
	}
}

// tick advances animation by dt seconds and renders one frame. A panicking
// engine loses the frame, not the loop.
func (c *Controller) tick(dt float64) {
	defer func() {
		if r := recover(); r != nil {
			c.metrics.renderErrors.Inc()
			c.log.Error().Interface("panic", r).Msg("Render frame panicked")
		}
	}()

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.model != nil {
		c.mixer.Update(dt, c.model)
		c.model.Rotation[1] += spinPerFrame
		c.state.ModelRotation = c.model.Rotation
	}

	c.frameSeq++
	frame := Frame{
		Seq:       c.frameSeq,
		Camera:    c.camera,
		Lights:    append([]Light(nil), c.lights...),
		Materials: c.materials.Snapshot(),
		Shadow:    c.state.ShadowOpacity,
	}
	if c.model != nil {
		frame.Nodes = []*Node{c.model}
	}

	if err := c.engine.RenderFrame(frame); err != nil {
		c.metrics.renderErrors.Inc()
		c.log.Warn().Err(err).Uint64("frame", frame.Seq).Msg("Render frame failed")
		return
	}
	c.metrics.frames.Inc()
}

// IsAssetLoadError reports whether err is a model load failure
func IsAssetLoadError(err error) bool {
	var loadErr *AssetLoadError
	return errors.As(err, &loadErr)
}
