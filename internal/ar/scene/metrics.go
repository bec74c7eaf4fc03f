package scene

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeLoaded     = "loaded"
	outcomeFailed     = "failed"
	outcomeSuperseded = "superseded"
)

// Metrics counts model loads and rendered frames
type Metrics struct {
	modelLoads   *prometheus.CounterVec
	frames       prometheus.Counter
	renderErrors prometheus.Counter
}

// NewMetrics registers the AR scene metrics on reg. A nil reg keeps the
// collectors unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		modelLoads: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tryon_ar_model_loads_total",
				Help: "Model loads by outcome",
			},
			[]string{"outcome"},
		),
		frames: factory.NewCounter(prometheus.CounterOpts{
			Name: "tryon_ar_frames_rendered_total",
			Help: "Frames rendered by the AR scene",
		}),
		renderErrors: factory.NewCounter(prometheus.CounterOpts{
			Name: "tryon_ar_render_errors_total",
			Help: "Frames the engine failed to render",
		}),
	}
}
