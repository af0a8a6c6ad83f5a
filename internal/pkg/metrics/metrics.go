package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Request and domain counters. Registered against the default registry and
// exposed on /metrics.
var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "washline_http_requests_total",
		Help: "HTTP requests processed, labelled by method, path and status.",
	}, []string{"method", "path", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "washline_http_request_duration_seconds",
		Help:    "HTTP request latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	LaundrySubmissionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "washline_laundry_submissions_total",
		Help: "Laundry bags accepted.",
	})

	LaundryStatusUpdatesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "washline_laundry_status_updates_total",
		Help: "Laundry status transitions applied, labelled by target status.",
	}, []string{"status"})

	ItemPostsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "washline_item_posts_total",
		Help: "Lost-and-found items posted, labelled by tag.",
	}, []string{"tag"})

	ImageUploadFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "washline_image_upload_failures_total",
		Help: "Failed image store uploads.",
	})
)
