package httpapi

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "examhub_http_requests_total",
			Help: "HTTP requests served by the ExamHub API.",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "examhub_http_request_duration_seconds",
			Help:    "Latency of ExamHub API requests in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	uploadURLsIssued = promauto.NewCounter(prometheus.CounterOpts{
		Name: "examhub_upload_urls_issued_total",
		Help: "Presigned upload URLs handed out.",
	})

	examsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "examhub_exams_created_total",
		Help: "Exams recorded through the API.",
	})

	reportsFiled = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "examhub_reports_total",
			Help: "Reports filed, by report type.",
		},
		[]string{"type"},
	)
)

// metricsPath is the route template, so /api/exams/<uuid> counts as
// /api/exams/:id. Unrouted requests share one label.
func metricsPath(c *gin.Context) string {
	if p := c.FullPath(); p != "" {
		return p
	}
	return "unmatched"
}

func metricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := metricsPath(c)
		httpRequestsTotal.WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
		httpRequestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}
