package prometheus

import (
	"time"

	"reservation-service/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	HttpRequestsTotal   prometheus.CounterVec
	HttpRequestDuration prometheus.HistogramVec

	// Database operation metrics
	DbOperationDuration prometheus.HistogramVec

	// Property metrics
	PropertyOperationsCounter prometheus.CounterVec

	// Reservation metrics
	ReservationOperationsCounter prometheus.CounterVec

	// Availability check metrics, labeled by outcome
	AvailabilityChecksCounter prometheus.CounterVec

	// Booking conflict metrics
	BookingConflictsCounter prometheus.Counter
)

// InitMetrics initializes Prometheus metrics with configuration
func InitMetrics(config *config.Config) {
	// Use metric prefix from configuration
	prefix := config.Metrics.Prefix

	// HTTP request metrics
	HttpRequestsTotal = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTP request duration
	HttpRequestDuration = *promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// Database operation metrics
	DbOperationDuration = *promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_db_operation_duration_seconds",
			Help:    "Duration of database operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation_type"},
	)

	// Property metrics
	PropertyOperationsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_property_operations_total",
			Help: "Total number of property operations",
		},
		[]string{"operation"},
	)

	// Reservation metrics
	ReservationOperationsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_reservation_operations_total",
			Help: "Total number of reservation operations",
		},
		[]string{"operation"},
	)

	// Availability check metrics
	AvailabilityChecksCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_availability_checks_total",
			Help: "Total number of availability checks by outcome",
		},
		[]string{"outcome"},
	)

	// Booking conflict metrics
	BookingConflictsCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_booking_conflicts_total",
			Help: "Total number of reservation attempts rejected due to date conflicts",
		},
	)
}

// TrackDBOperation returns a function that records the duration of a database operation
func TrackDBOperation(operationType string) func(startTime time.Time) {
	return func(startTime time.Time) {
		duration := time.Since(startTime).Seconds()
		DbOperationDuration.WithLabelValues(operationType).Observe(duration)
	}
}

// RecordPropertyOperation increments the counter for property operations
func RecordPropertyOperation(operation string) {
	PropertyOperationsCounter.WithLabelValues(operation).Inc()
}

// RecordReservationOperation increments the counter for reservation operations
func RecordReservationOperation(operation string) {
	ReservationOperationsCounter.WithLabelValues(operation).Inc()
}

// RecordAvailabilityCheck increments the counter for availability check outcomes
func RecordAvailabilityCheck(outcome string) {
	AvailabilityChecksCounter.WithLabelValues(outcome).Inc()
}

// RecordBookingConflict increments the counter for rejected conflicting bookings
func RecordBookingConflict() {
	BookingConflictsCounter.Inc()
}
