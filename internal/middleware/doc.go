// Metagraphus - Photo Metadata Analytics and Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/metagraphus

/*
Package middleware provides HTTP middleware for the API server.

Four middlewares compose onto the chi router:

  - RequestID assigns (or propagates) an X-Request-ID header and threads it
    through the logging context.
  - PrometheusMetrics records request counts, latency histograms and the
    active-request gauge.
  - Compression gzips responses for clients that accept it. Mounted on the
    JSON and HTML endpoints; PNG responses skip it.
  - PerformanceMonitor.Middleware keeps a sliding window of request
    durations with per-endpoint percentile stats, surfaced by /health, and
    warns on slow requests.

RequestID and PrometheusMetrics wrap http.HandlerFunc the way the route
table applies them per endpoint; PerformanceMonitor wraps the whole router.
*/
package middleware
