package veritrans_integration_metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// One series per endpoint so charge latency can be told apart from status polling
	GatewayRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "veritrans",
			Name:      "gateway_requests_total",
			Help:      "Total HTTP requests sent to the payment gateway",
		},
		[]string{"endpoint", "method", "code"},
	)

	GatewayRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "veritrans",
			Name:      "gateway_request_duration_seconds",
			Help:      "Duration of HTTP requests sent to the payment gateway",
			Buckets: []float64{
				0.05, 0.1, 0.2, 0.3, 0.5, 0.8, 1.2,
				2, 3, 5, 8, 13, 21, 30,
			},
		},
		[]string{"endpoint", "method"},
	)

	NotificationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "veritrans",
			Name:      "notifications_total",
			Help:      "Payment notifications received, by outcome",
		},
		[]string{"outcome"},
	)
)

func init() {
	prometheus.MustRegister(GatewayRequestsTotal, GatewayRequestDuration, NotificationsTotal)
}

// ObserveRequest records one gateway exchange. code is 0 when no response was received.
func ObserveRequest(endpoint, method string, code int, duration time.Duration) {
	GatewayRequestsTotal.WithLabelValues(endpoint, method, strconv.Itoa(code)).Inc()
	GatewayRequestDuration.WithLabelValues(endpoint, method).Observe(duration.Seconds())
}

func IncNotification(outcome string) {
	NotificationsTotal.WithLabelValues(outcome).Inc()
}
