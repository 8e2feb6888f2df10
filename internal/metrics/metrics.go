// Package metrics exposes prometheus collectors for HTTP traffic and
// catalog loads on a private registry.
package metrics

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/emulatorgames/rom-catalog/internal/fixtures"
)

const namespace = "rom_catalog"

const (
	FixtureResultLoaded  = "loaded"
	FixtureResultSkipped = "skipped"

	LoadResultOK         = "ok"
	LoadResultEmpty      = "empty"
	LoadResultMissingDir = "missing_dir"
)

type Metrics struct {
	registry *prometheus.Registry

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	catalogGames      prometheus.Gauge
	catalogCategories prometheus.Gauge
	fixtureFiles      *prometheus.CounterVec
	loads             *prometheus.CounterVec
	loadDuration      prometheus.Gauge
}

// New builds the collectors. environment is attached to every series.
func New(environment string) *Metrics {
	environment = strings.TrimSpace(environment)
	if environment == "" {
		environment = "unknown"
	}
	constLabels := prometheus.Labels{"env": environment}

	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "http_requests_total",
			Help:        "HTTP requests by method, route and status code.",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   namespace,
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency by method and route.",
			Buckets:     []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
			ConstLabels: constLabels,
		}, []string{"method", "route"}),
		catalogGames: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "games",
			Help:        "Games in the loaded catalog.",
			ConstLabels: constLabels,
		}),
		catalogCategories: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "categories",
			Help:        "Categories in the loaded catalog.",
			ConstLabels: constLabels,
		}),
		fixtureFiles: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "fixture_files_total",
			Help:        "Fixture files read by result.",
			ConstLabels: constLabels,
		}, []string{"result"}),
		loads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "loads_total",
			Help:        "Catalog load passes by result.",
			ConstLabels: constLabels,
		}, []string{"result"}),
		loadDuration: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "load_duration_seconds",
			Help:        "Duration of the last catalog load.",
			ConstLabels: constLabels,
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequests,
		m.httpDuration,
		m.catalogGames,
		m.catalogCategories,
		m.fixtureFiles,
		m.loads,
		m.loadDuration,
	)
	return m
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveRequest records one served request. route is the matched route
// template so that path parameters do not explode cardinality.
func (m *Metrics) ObserveRequest(method, route string, status int, duration time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveLoad is a fixtures.Observer.
func (m *Metrics) ObserveLoad(report fixtures.LoadReport) {
	m.catalogGames.Set(float64(report.Games))
	m.catalogCategories.Set(float64(report.Categories))
	m.fixtureFiles.WithLabelValues(FixtureResultLoaded).Add(float64(report.Files - report.Skipped))
	m.fixtureFiles.WithLabelValues(FixtureResultSkipped).Add(float64(report.Skipped))
	m.loadDuration.Set(report.Duration.Seconds())
	m.loads.WithLabelValues(loadResult(report.Err)).Inc()
}

func loadResult(err error) string {
	switch {
	case err == nil:
		return LoadResultOK
	case errors.Is(err, fixtures.ErrDataDirNotFound):
		return LoadResultMissingDir
	default:
		return LoadResultEmpty
	}
}
