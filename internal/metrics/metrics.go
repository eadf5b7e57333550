package metrics

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry is the dedicated Prometheus registry for the API.
	Registry = prometheus.NewRegistry()

	// HTTPRequests counts requests by method, route pattern, and status.
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "http_requests_total", Help: "Total HTTP requests."},
		[]string{"method", "route", "status"},
	)
	// HTTPDuration records request durations in seconds.
	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "http_request_duration_seconds", Help: "HTTP request duration in seconds.", Buckets: prometheus.DefBuckets},
		[]string{"method", "route", "status"},
	)

	// RouteBuilds counts route computations by outcome.
	RouteBuilds = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "route_builds_total", Help: "Route computations by outcome."},
		[]string{"outcome"},
	)
	RouteDistance = prometheus.NewHistogram(
		prometheus.HistogramOpts{Name: "route_distance_km", Help: "Total distance of computed routes in km.", Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500}},
	)
	RouteStations = prometheus.NewHistogram(
		prometheus.HistogramOpts{Name: "route_stations", Help: "Stations visited per computed route.", Buckets: []float64{0, 10, 50, 100, 250, 500, 1000, 2500}},
	)
)

var regOnce sync.Once

// RegisterDefault registers all collectors on Registry. Safe to call more than once.
func RegisterDefault() {
	regOnce.Do(func() {
		Registry.MustRegister(HTTPRequests)
		Registry.MustRegister(HTTPDuration)
		Registry.MustRegister(RouteBuilds)
		Registry.MustRegister(RouteDistance)
		Registry.MustRegister(RouteStations)
		// Go/process collectors on our registry
		Registry.MustRegister(collectors.NewGoCollector())
		Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	})
}

// Handler exposes Registry in the Prometheus text format.
func Handler() http.Handler {
	RegisterDefault()
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

func ObserveHTTP(method, route string, status int, dur time.Duration) {
	code := strconv.Itoa(status)
	HTTPRequests.WithLabelValues(method, route, code).Inc()
	HTTPDuration.WithLabelValues(method, route, code).Observe(dur.Seconds())
}

func ObserveRouteBuild(outcome string) {
	RouteBuilds.WithLabelValues(outcome).Inc()
}

func ObserveRoute(distanceKm float64, stations int) {
	RouteDistance.Observe(distanceKm)
	RouteStations.Observe(float64(stations))
}
