package client

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors a [Client] reports to.
type Metrics struct {
	Requests   *prometheus.CounterVec
	Duration   *prometheus.HistogramVec
	MediaBytes *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg. A nil
// reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		Requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "screenscraper_requests_total",
			Help: "Total number of ScreenScraper API calls.",
		}, []string{"endpoint", "code"}),
		Duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "screenscraper_request_duration_seconds",
			Help:    "Duration of ScreenScraper API calls in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),
		MediaBytes: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "screenscraper_media_bytes_total",
			Help: "Total number of media bytes downloaded.",
		}, []string{"endpoint"}),
	}
}

// observe records one call. code is 0 when no response was received.
func (m *Metrics) observe(endpoint string, code int, start time.Time) {
	if m == nil {
		return
	}

	label := "error"
	if code > 0 {
		label = strconv.Itoa(code)
	}

	m.Requests.WithLabelValues(endpoint, label).Inc()
	m.Duration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
}

func (m *Metrics) addMediaBytes(endpoint string, n int64) {
	if m == nil || n <= 0 {
		return
	}

	m.MediaBytes.WithLabelValues(endpoint).Add(float64(n))
}
