package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crs_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "crs_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	ChangeRequestTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crs_change_request_transitions_total",
			Help: "Change request status transitions by target status",
		},
		[]string{"status"},
	)

	ChangeRequestsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crs_change_requests_created_total",
			Help: "Change requests submitted by request type",
		},
		[]string{"request_type"},
	)

	LoginAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crs_login_attempts_total",
			Help: "Login attempts by result",
		},
		[]string{"result"},
	)
)

func RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

func RecordTransition(status string) {
	ChangeRequestTransitions.WithLabelValues(status).Inc()
}

func RecordCreated(requestType string) {
	ChangeRequestsCreated.WithLabelValues(requestType).Inc()
}

func RecordLogin(ok bool) {
	result := "failure"
	if ok {
		result = "success"
	}
	LoginAttempts.WithLabelValues(result).Inc()
}
