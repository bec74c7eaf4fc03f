package tryon

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/tair/virtual-tryon/internal/ar/camera"
	"github.com/tair/virtual-tryon/internal/ar/effects"
	"github.com/tair/virtual-tryon/internal/ar/scene"
	catalog "github.com/tair/virtual-tryon/internal/catalog/domain"
	"github.com/tair/virtual-tryon/pkg/logger"
)

// StatusCameraDenied is shown while the camera is not available
const StatusCameraDenied = "Camera access is required for virtual try-on"

// ProductResolver looks up catalog products by id
type ProductResolver interface {
	GetProduct(ctx context.Context, id uint) (*catalog.Product, error)
}

// State is a snapshot of everything the try-on view shows
type State struct {
	Product   *catalog.Product
	Camera    camera.State
	Facing    camera.Facing
	TorchOn   bool
	Scene     scene.State
	Effect    effects.Effect
	Color     effects.Color
	ColorHex  string
	Status    string
	Granted   bool
	PhaseName string
}

// Session is one AR try-on view: the camera feed, the scene composited over
// it and the effect layer restyling the model
type Session struct {
	capture  *camera.Capture
	scene    *scene.Controller
	effects  *effects.Layer
	products ProductResolver
	viewport scene.Size

	mu        sync.Mutex
	product   *catalog.Product
	status    string
	selection uint64
}

// NewSession wires a session. controller must not be initialized yet.
func NewSession(device camera.Device, controller *scene.Controller, products ProductResolver, viewport scene.Size) *Session {
	return &Session{
		capture:  camera.NewCapture(device, viewport.Width, viewport.Height),
		scene:    controller,
		effects:  effects.NewLayer(controller),
		products: products,
		viewport: viewport,
	}
}

// Start initializes the scene and asks for the camera. A denied camera is
// reported as granted == false, not as an error.
func (s *Session) Start(ctx context.Context) (bool, error) {
	if err := s.scene.Init(s.viewport); err != nil {
		return false, fmt.Errorf("failed to initialize scene: %w", err)
	}

	granted, err := s.capture.RequestPermission(ctx)
	if err != nil && !errors.Is(err, camera.ErrPermissionDenied) {
		return false, err
	}
	if !granted {
		s.setStatus(StatusCameraDenied)
		return false, nil
	}
	s.setStatus(scene.StatusLookingForSurfaces)
	return true, nil
}

// RetryPermission asks for the camera again after a denial. Like Start, a
// denial is reported as granted == false and other failures as errors.
func (s *Session) RetryPermission(ctx context.Context) (bool, error) {
	granted, err := s.capture.RequestPermission(ctx)
	if err != nil && !errors.Is(err, camera.ErrPermissionDenied) {
		return false, err
	}
	if !granted {
		s.setStatus(StatusCameraDenied)
		return false, nil
	}
	s.setStatus(scene.StatusLookingForSurfaces)
	return true, nil
}

// SelectProduct loads the product's model and places it. Load failures
// leave the scene without a model; the error is returned for display. A
// selection overtaken by a later one returns scene.ErrSuperseded.
func (s *Session) SelectProduct(ctx context.Context, id uint) error {
	s.mu.Lock()
	s.selection++
	gen := s.selection
	s.mu.Unlock()

	product, err := s.products.GetProduct(ctx, id)
	if err != nil {
		return err
	}

	s.mu.Lock()
	if gen != s.selection {
		s.mu.Unlock()
		return scene.ErrSuperseded
	}
	s.product = product
	s.mu.Unlock()

	if err := s.scene.LoadModel(ctx, product.ModelURL); err != nil {
		if !errors.Is(err, scene.ErrSuperseded) {
			s.setStatus(scene.StatusModelFailed)
		}
		return err
	}
	if !s.current(gen) {
		return scene.ErrSuperseded
	}
	if err := s.scene.PositionModel(scene.DefaultPlacement()); err != nil {
		// a newer selection detached the model after it loaded
		if errors.Is(err, scene.ErrNoModel) {
			return scene.ErrSuperseded
		}
		return err
	}
	s.effects.Reapply()
	s.setStatus(scene.StatusModelLoaded)

	logger.Info(ctx).Uint("product_id", product.ID).Str("model", product.ModelURL).Msg("Product placed in AR scene")
	return nil
}

func (s *Session) current(gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return gen == s.selection
}

// SelectEffect toggles an effect on the loaded model
func (s *Session) SelectEffect(e effects.Effect) bool {
	ok := s.effects.SelectEffect(e)
	if ok {
		s.setStatus(s.effects.Status())
	}
	return ok
}

// SelectColor switches the colorway of the loaded model
func (s *Session) SelectColor(c effects.Color) bool {
	ok := s.effects.SelectColor(c)
	if ok {
		s.setStatus(s.effects.Status())
	}
	return ok
}

// SwitchCamera flips between the front and back camera
func (s *Session) SwitchCamera(ctx context.Context) (camera.Facing, error) {
	return s.capture.SwitchFacing(ctx)
}

// ToggleTorch flips the flashlight when the camera has one
func (s *Session) ToggleTorch(ctx context.Context) (camera.TorchStatus, error) {
	status, err := s.capture.ToggleTorch(ctx)
	if err == nil && !status.Supported {
		s.setStatus("Flashlight not available on this camera")
	}
	return status, err
}

// Capture takes a still of the camera feed
func (s *Session) Capture(ctx context.Context) (*camera.Snapshot, error) {
	return s.capture.CaptureFrame(ctx)
}

// Scene exposes the scene controller for tracking callbacks
func (s *Session) Scene() *scene.Controller {
	return s.scene
}

// State returns a snapshot of the session
func (s *Session) State() State {
	s.mu.Lock()
	product, status := s.product, s.status
	s.mu.Unlock()

	color, hex := s.effects.Color()
	camState := s.capture.State()
	return State{
		Product:   product,
		Camera:    camState,
		Facing:    s.capture.Facing(),
		TorchOn:   s.capture.TorchOn(),
		Scene:     s.scene.State(),
		Effect:    s.effects.Active(),
		Color:     color,
		ColorHex:  hex,
		Status:    status,
		Granted:   camState == camera.StateGranted,
		PhaseName: s.scene.Phase().String(),
	}
}

// Close releases the camera and tears down the scene
func (s *Session) Close() {
	s.capture.Close()
	s.scene.Dispose()
}

func (s *Session) setStatus(status string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = status
}
