package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "restaurante_http_requests_total",
		Help: "Total de peticiones HTTP",
	}, []string{"method", "route", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "restaurante_http_request_duration_seconds",
		Help:    "Duración de las peticiones HTTP",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route", "status"})

	authAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "restaurante_auth_attempts_total",
		Help: "Intentos de registro y login por resultado",
	}, []string{"operation", "result"})

	txDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "restaurante_db_transaction_duration_seconds",
		Help:    "Duración de las transacciones de escritura por resultado",
		Buckets: prometheus.DefBuckets,
	}, []string{"result"})

	rateLimited = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "restaurante_rate_limited_total",
		Help: "Peticiones rechazadas por límite de tasa",
	}, []string{"route"})
)

// ObserveHTTPRequest registra una petición HTTP.
func ObserveHTTPRequest(method, route, status string, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, route, status).Inc()
	httpRequestDuration.WithLabelValues(method, route, status).Observe(duration.Seconds())
}

// ObserveAuth cuenta un intento de autenticación (operation: register|login; result: ok|conflict|unauthorized|error).
func ObserveAuth(operation, result string) {
	authAttempts.WithLabelValues(operation, result).Inc()
}

// ObserveTx registra la duración de una transacción (result: commit|rollback).
func ObserveTx(result string, duration time.Duration) {
	txDuration.WithLabelValues(result).Observe(duration.Seconds())
}

// ObserveRateLimited cuenta una petición rechazada con 429.
func ObserveRateLimited(route string) {
	rateLimited.WithLabelValues(route).Inc()
}
