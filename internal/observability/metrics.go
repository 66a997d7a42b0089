package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce          sync.Once
	bookingRequestsTotal  *prometheus.CounterVec
	bookingLatencySeconds *prometheus.HistogramVec
	bookingErrorsTotal    *prometheus.CounterVec
)

// RegisterMetrics initialises the Prometheus collectors for the booking API.
func RegisterMetrics() {
	registerOnce.Do(func() {
		bookingRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "booking_requests_total",
			Help: "Total number of booking API requests served.",
		}, []string{"method", "route", "status"})

		bookingLatencySeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "booking_latency_seconds",
			Help:    "Latency distribution for booking API requests.",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.0},
		}, []string{"method", "route"})

		bookingErrorsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "booking_errors_total",
			Help: "Total number of error responses returned by the booking API.",
		}, []string{"method", "route", "status"})

		prometheus.MustRegister(bookingRequestsTotal, bookingLatencySeconds, bookingErrorsTotal)
	})
}

// BookingRequests exposes the request counter.
func BookingRequests() *prometheus.CounterVec {
	RegisterMetrics()
	return bookingRequestsTotal
}

// BookingLatency exposes the latency histogram.
func BookingLatency() *prometheus.HistogramVec {
	RegisterMetrics()
	return bookingLatencySeconds
}

// BookingErrors exposes the error counter.
func BookingErrors() *prometheus.CounterVec {
	RegisterMetrics()
	return bookingErrorsTotal
}
