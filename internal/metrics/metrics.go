// Package metrics provides Prometheus metrics collection for the cart service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// CartMutationsTotal tracks cart mutations by operation and outcome.
	CartMutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cart_mutations_total",
			Help: "Total number of cart mutations",
		},
		[]string{"operation", "status"},
	)

	// OrdersPlacedTotal tracks placed orders by outcome.
	OrdersPlacedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "orders_placed_total",
			Help: "Total number of checkout attempts",
		},
		[]string{"status"},
	)

	// OrderGrandTotal tracks the distribution of order grand totals.
	OrderGrandTotal = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "order_grand_total",
			Help:    "Grand total of placed orders in currency units",
			Buckets: []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500},
		},
	)

	// SnapshotOperationsTotal tracks cart snapshot load/save operations.
	SnapshotOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cart_snapshot_operations_total",
			Help: "Total number of cart snapshot operations",
		},
		[]string{"operation", "result"},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordCartMutation records metrics for a cart mutation.
func RecordCartMutation(operation, status string) {
	CartMutationsTotal.WithLabelValues(operation, status).Inc()
}

// RecordOrderPlaced records metrics for a checkout attempt.
func RecordOrderPlaced(status string, grandTotal float64) {
	OrdersPlacedTotal.WithLabelValues(status).Inc()
	if status == "success" {
		OrderGrandTotal.Observe(grandTotal)
	}
}

// RecordSnapshotOperation records metrics for a cart snapshot operation.
func RecordSnapshotOperation(operation, result string) {
	SnapshotOperationsTotal.WithLabelValues(operation, result).Inc()
}
