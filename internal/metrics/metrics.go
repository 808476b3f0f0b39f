// Package metrics exposes Prometheus collectors for the content studio.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Text generation
	TextGenerations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "studio_text_generations_total",
			Help: "Text generation requests by content type and result",
		},
		[]string{"content_type", "result"}, // result: success|failure
	)
	TextGenerationDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "studio_text_generation_duration_seconds",
			Help:    "Duration of text model calls",
			Buckets: prometheus.ExponentialBuckets(0.25, 2, 8), // 0.25s..32s
		},
		[]string{"content_type"},
	)

	// Images
	ImageGenerations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "studio_image_generations_total",
			Help: "Image service calls by result",
		},
		[]string{"result"}, // result: success|failure
	)
	ImagePlaceholders = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "studio_image_placeholders_total",
			Help: "Slides that received a placeholder instead of a generated image",
		},
	)
	ImagesSwept = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "studio_images_swept_total",
			Help: "Expired images removed by the sweeper",
		},
	)

	// Sessions
	ActiveSessions = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "studio_sessions_active",
			Help: "Current number of studio sessions held in memory",
		},
	)

	// Errors
	Errors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "studio_errors_total",
			Help: "Errors encountered in components",
		},
		[]string{"component", "type"},
	)
)

func init() {
	prometheus.MustRegister(
		TextGenerations,
		TextGenerationDurationSeconds,
		ImageGenerations,
		ImagePlaceholders,
		ImagesSwept,
		ActiveSessions,
		Errors,
	)
}

// Handler serves the default registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Text generation
func IncTextGeneration(contentType, result string) {
	TextGenerations.WithLabelValues(contentType, result).Inc()
}

func ObserveTextGenerationDuration(contentType string, d time.Duration) {
	TextGenerationDurationSeconds.WithLabelValues(contentType).Observe(d.Seconds())
}

// Images
func IncImageGeneration(result string) {
	ImageGenerations.WithLabelValues(result).Inc()
}

func IncImagePlaceholder() {
	ImagePlaceholders.Inc()
}

func AddImagesSwept(n int) {
	ImagesSwept.Add(float64(n))
}

// Sessions
func SetActiveSessions(n int) {
	ActiveSessions.Set(float64(n))
}

// Errors
func IncError(component, typ string) {
	Errors.WithLabelValues(component, typ).Inc()
}
