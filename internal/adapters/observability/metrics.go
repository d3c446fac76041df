package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "hotelapp", Name: "http_requests_total", Help: "HTTP requests."},
		[]string{"route", "method", "status"},
	)
	HTTPLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "hotelapp", Name: "http_request_duration_seconds",
			Help:    "HTTP request duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)
	FlashEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "hotelapp", Name: "flash_events_total", Help: "Flash store puts/pops/misses."},
		[]string{"event"}, // event: put|pop|miss
	)
	FormRejections = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "hotelapp", Name: "form_rejections_total", Help: "Form submissions rejected before persisting."},
		[]string{"form", "reason"}, // reason: validation|duplicate|ratelimit
	)
)

func InitRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(HTTPRequests, HTTPLatency, FlashEvents, FormRejections)
	return reg
}

func MetricsHandler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

func ObserveHTTP(route, method string, status int, dur time.Duration) {
	HTTPRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	HTTPLatency.WithLabelValues(route, method).Observe(dur.Seconds())
}

func ObserveFlash(event string) { // event: put|pop|miss
	FlashEvents.WithLabelValues(event).Inc()
}

func ObserveFormRejection(form, reason string) {
	FormRejections.WithLabelValues(form, reason).Inc()
}
