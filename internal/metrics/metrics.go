// Package metrics declares the prometheus collectors of the service.
package metrics

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/maxviazov/paging-service/pkg/paging"
)

var (
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests served",
		},
		[]string{"method", "route", "status"},
	)

	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	Computations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "paging_computations_total",
			Help: "Paging infos computed, by branch",
		},
		[]string{"branch"},
	)

	ClampedPages = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "paging_clamped_pages_total",
			Help: "Requests for a page past the end that were clamped to the last page",
		},
	)

	ComputationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "paging_computation_errors_total",
			Help: "Paging computations rejected, by error kind",
		},
		[]string{"kind"},
	)
)

// Branch names the computation path that produced info.
func Branch(info paging.Info) string {
	switch {
	case info.IsUnbounded():
		return "unbounded"
	case info.TotalItems() == 0:
		return "empty"
	}
	return "bounded"
}

// ObserveComputation records one successful computation.
func ObserveComputation(info paging.Info) {
	Computations.WithLabelValues(Branch(info)).Inc()
	if info.IsClamped() && info.TotalItems() > 0 {
		ClampedPages.Inc()
	}
}

// ErrorKind labels a paging error for ComputationErrors.
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, paging.ErrOverflow):
		return "overflow"
	case errors.Is(err, paging.ErrOutOfRange):
		return "out_of_range"
	case errors.Is(err, paging.ErrInvalidArgument):
		return "invalid_argument"
	case errors.Is(err, paging.ErrDeserialization):
		return "deserialization"
	}
	return "other"
}

// Middleware records request counts and latencies per matched route.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		method := c.Request.Method
		HTTPRequests.WithLabelValues(method, route, strconv.Itoa(c.Writer.Status())).Inc()
		HTTPDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	}
}
