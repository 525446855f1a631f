package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	SegmentsProcessed *prometheus.CounterVec
	MidpointsComputed *prometheus.CounterVec
	GeocoderSeconds   *prometheus.HistogramVec
	RequestSeconds    *prometheus.HistogramVec
	ActiveWorkers     prometheus.Gauge
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		SegmentsProcessed: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "meridian_segments_processed_total",
			Help: "Total number of stored segments processed by the midpoint worker.",
		}, []string{"status"}),
		MidpointsComputed: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "meridian_midpoints_computed_total",
			Help: "Total number of midpoints computed, by the surface that asked for them.",
		}, []string{"source"}),
		GeocoderSeconds: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "meridian_geocoder_request_duration_seconds",
			Help:    "Duration of address lookups against the geocoding provider.",
			Buckets: prometheus.DefBuckets,
		}, []string{"provider"}),
		RequestSeconds: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "meridian_http_request_duration_seconds",
			Help:    "Duration of HTTP requests served by the API.",
			Buckets: prometheus.DefBuckets,
		}, []string{"path", "status"}),
		ActiveWorkers: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "meridian_active_workers",
			Help: "Current number of workers computing segment midpoints.",
		}),
	}
}
