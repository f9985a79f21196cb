package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "ooh_proofs"

// Metrics holds the service's Prometheus collectors.
type Metrics struct {
	ProofsResolved      *prometheus.CounterVec
	FallbackResolutions prometheus.Counter
	PhotosUploaded      *prometheus.CounterVec
	PhotosWatermarked   prometheus.Counter
	WatermarkFailures   prometheus.Counter
}

// New registers the collectors on reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		ProofsResolved: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "proofs_resolved_total",
			Help:      "Proof resolutions by derived status",
		}, []string{"status"}),
		FallbackResolutions: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "proof_fallback_resolutions_total",
			Help:      "Resolutions served from the aggregated photos column",
		}),
		PhotosUploaded: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "photos_uploaded_total",
			Help:      "Proof photos uploaded by slot",
		}, []string{"slot"}),
		PhotosWatermarked: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "photos_watermarked_total",
			Help:      "Proof photos stamped and stored",
		}),
		WatermarkFailures: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "watermark_failures_total",
			Help:      "Watermark jobs that failed and were left uncommitted",
		}),
	}
}

func (m *Metrics) ObserveResolution(status string, fromFallback bool) {
	m.ProofsResolved.WithLabelValues(status).Inc()
	if fromFallback {
		m.FallbackResolutions.Inc()
	}
}
