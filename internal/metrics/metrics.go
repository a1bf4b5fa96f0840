package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the counters and histograms used for monitoring the console.
// Backend metrics are labelled per API operation so a slow or failing
// endpoint can be told apart from the rest.
type Metrics struct {
	BackendRequests        *prometheus.CounterVec
	BackendRequestDuration *prometheus.HistogramVec
	PagesRendered          *prometheus.CounterVec
	FormRejections         *prometheus.CounterVec
}

// NewMetrics creates a new Metrics instance registered with the provided
// Registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	metrics := &Metrics{
		BackendRequests: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "staffdesk_backend_requests_total",
			Help: "Total backend API requests issued by the console.",
		}, []string{"operation", "status"}),
		BackendRequestDuration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "staffdesk_backend_request_duration_seconds",
			Help:    "Duration of backend API requests.",
			Buckets: prometheus.DefBuckets,
		}, []string{"operation"}),
		PagesRendered: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "staffdesk_pages_rendered_total",
			Help: "Total console pages rendered, by page name.",
		}, []string{"page"}),
		FormRejections: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "staffdesk_form_rejections_total",
			Help: "Total form submissions rejected by client-side validation.",
		}, []string{"form"}),
	}

	metrics.BackendRequests.WithLabelValues("list_employees", "success")
	metrics.BackendRequests.WithLabelValues("list_employees", "failure")

	return metrics
}
