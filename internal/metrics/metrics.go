// Metagraphus - Photo Metadata Analytics and Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/metagraphus

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus instrumentation for:
// - Metadata store query performance (MySQL)
// - Table builds: snapshot hits vs full database rebuilds
// - Reverse geocoding lookups
// - Chart rendering latency per chart kind
// - API endpoint latency and throughput

var (
	// Database Metrics
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mysql_query_duration_seconds",
			Help:    "Duration of MySQL queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "table"},
	)

	DBQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mysql_query_errors_total",
			Help: "Total number of MySQL query errors",
		},
		[]string{"operation", "table", "error_type"},
	)

	DBFilesLoaded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "metadata_files_loaded_total",
			Help: "Total number of raw metadata files loaded from the store",
		},
	)

	DBFilesSkipped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "metadata_files_skipped_total",
			Help: "Total number of raw metadata rows skipped as malformed",
		},
	)

	// Table Build Metrics
	TableBuilds = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "table_builds_total",
			Help: "Total number of metadata table builds",
		},
		[]string{"source"}, // "snapshot", "database"
	)

	TableBuildDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "table_build_duration_seconds",
			Help:    "Duration of metadata table builds in seconds",
			Buckets: []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30, 60},
		},
		[]string{"source"},
	)

	TableFiles = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "table_files",
			Help: "Number of files in the current metadata table",
		},
	)

	// Snapshot Metrics
	SnapshotLoads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "snapshot_loads_total",
			Help: "Total number of snapshot load attempts",
		},
		[]string{"result"}, // "hit", "miss", "error"
	)

	SnapshotSaves = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "snapshot_saves_total",
			Help: "Total number of snapshot save attempts",
		},
		[]string{"result"}, // "ok", "error"
	)

	// Geocoding Metrics
	GeocodeLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "geocode_lookups_total",
			Help: "Total number of reverse geocoding lookups",
		},
		[]string{"result"}, // "ok", "error"
	)

	GeocodeCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "geocode_cache_hits_total",
			Help: "Total number of coordinate lookups answered from the in-run cache",
		},
	)

	GeocodeDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "geocode_request_duration_seconds",
			Help:    "Duration of Nominatim reverse geocoding calls in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	// Render Metrics
	RenderDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "render_duration_seconds",
			Help:    "Duration of chart rendering in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"chart"},
	)

	RenderErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "render_errors_total",
			Help: "Total number of chart rendering failures",
		},
		[]string{"chart"},
	)

	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// System Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)

	AppUptime = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "app_uptime_seconds",
			Help: "Application uptime in seconds",
		},
	)
)

// RecordDBQuery records a database query metric
func RecordDBQuery(operation, table string, duration time.Duration, err error) {
	DBQueryDuration.WithLabelValues(operation, table).Observe(duration.Seconds())
	if err != nil {
		errorType := err.Error()
		// Truncate long error messages
		if len(errorType) > 50 {
			errorType = errorType[:50]
		}
		DBQueryErrors.WithLabelValues(operation, table, errorType).Inc()
	}
}

// RecordTableBuild records one metadata table build from the given source
// ("snapshot" or "database")
func RecordTableBuild(source string, files int, duration time.Duration) {
	TableBuilds.WithLabelValues(source).Inc()
	TableBuildDuration.WithLabelValues(source).Observe(duration.Seconds())
	TableFiles.Set(float64(files))
}

// RecordSnapshotLoad records a snapshot load attempt outcome
func RecordSnapshotLoad(result string) {
	SnapshotLoads.WithLabelValues(result).Inc()
}

// RecordSnapshotSave records a snapshot save attempt
func RecordSnapshotSave(err error) {
	if err != nil {
		SnapshotSaves.WithLabelValues("error").Inc()
		return
	}
	SnapshotSaves.WithLabelValues("ok").Inc()
}

// RecordGeocodeLookup records one reverse geocoding call
func RecordGeocodeLookup(duration time.Duration, err error) {
	GeocodeDuration.Observe(duration.Seconds())
	if err != nil {
		GeocodeLookups.WithLabelValues("error").Inc()
		return
	}
	GeocodeLookups.WithLabelValues("ok").Inc()
}

// RecordRender records a chart render and its outcome
func RecordRender(chart string, duration time.Duration, err error) {
	RenderDuration.WithLabelValues(chart).Observe(duration.Seconds())
	if err != nil {
		RenderErrors.WithLabelValues(chart).Inc()
	}
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}
