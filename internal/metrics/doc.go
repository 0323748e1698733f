// Metagraphus - Photo Metadata Analytics and Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/metagraphus

/*
Package metrics provides Prometheus metrics collection and export for observability.

All metrics register on the default registry through promauto and are served
by the /metrics endpoint in Prometheus text format:

	curl http://localhost:8080/metrics

# Available Metrics

Database:
  - mysql_query_duration_seconds: query execution time (histogram)
    Labels: operation, table
  - mysql_query_errors_total: query failures (counter)
    Labels: operation, table, error_type (truncated to 50 chars)
  - metadata_files_loaded_total / metadata_files_skipped_total: raw load outcome

Table builds:
  - table_builds_total / table_build_duration_seconds: one observation per
    build, labelled with its source ("snapshot" or "database")
  - table_files: files in the current in-memory table (gauge)

Snapshots:
  - snapshot_loads_total: load attempts by result ("hit", "miss", "error")
  - snapshot_saves_total: save attempts by result ("ok", "error")

Geocoding:
  - geocode_lookups_total: Nominatim calls by result
  - geocode_cache_hits_total: coordinates answered without a call
  - geocode_request_duration_seconds: call latency (histogram)

Rendering:
  - render_duration_seconds / render_errors_total: per chart kind

API:
  - api_requests_total, api_request_duration_seconds, api_active_requests,
    api_rate_limit_hits_total

System:
  - app_info{version, go_version}, app_uptime_seconds

# Usage

Handlers and stores call the Record* helpers rather than touching the
collectors directly, keeping label sets consistent:

	start := time.Now()
	rows, err := store.LoadRawMetadata(ctx)
	metrics.RecordDBQuery("SELECT", "metadata", time.Since(start), err)
*/
package metrics
