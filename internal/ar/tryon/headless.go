package tryon

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tair/virtual-tryon/internal/ar/asset"
	"github.com/tair/virtual-tryon/internal/ar/camera"
	"github.com/tair/virtual-tryon/internal/ar/scene"
)

// NewHeadlessSession builds a session rendering through the headless engine,
// loading models from fetcher
func NewHeadlessSession(
	device camera.Device,
	fetcher asset.Fetcher,
	products ProductResolver,
	viewport scene.Size,
	reg prometheus.Registerer,
) (*Session, *scene.HeadlessEngine) {
	materials := scene.NewMaterialLibrary()
	engine := scene.NewHeadlessEngine(asset.NewLoader(fetcher, materials))
	controller := scene.NewController(engine, scene.Options{Registerer: reg, Materials: materials})
	return NewSession(device, controller, products, viewport), engine
}
