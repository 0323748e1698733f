// Metagraphus - Photo Metadata Analytics and Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/metagraphus

/*
Package api implements the HTTP surface of Metagraphus: the graph endpoints
that answer rendered PNG (or Leaflet HTML) bodies, the JSON metadata and
health endpoints, and the Prometheus scrape endpoint.

# Request Flow

Every graph request follows the same shape:

 1. Parse query-style parameters with per-endpoint defaults.
 2. Validate them with go-playground/validator; an invalid graph_type or
    output_type is rejected with 400 VALIDATION_ERROR, never silently
    replaced with a default chart.
 3. Obtain the cleaned metadata table from the table provider (snapshot
    file if present, otherwise built from the store and persisted).
 4. Aggregate with internal/analytics and render with internal/render.
 5. Answer image/png, or text/html for the interactive map.

graph_type=all composes every chart the endpoint family defines into a
single vertical PNG.

# Table Provider

The provider materializes the cleaned table once per process and shares it
read-only across requests. A mutex serializes the first build and the
country enrichment (the single mutation the table ever sees); everything
after that is lock-free reads. See tableProvider.

# Errors

All errors use the models.APIResponse envelope with a machine-readable
code: VALIDATION_ERROR (400), DATABASE_ERROR and RENDER_ERROR and
INVARIANT_ERROR (500), SERVICE_ERROR (503) when neither snapshot nor store
can serve, RATE_LIMIT_EXCEEDED (429).

# Routing

SetupChi builds the Chi router: request-ID and logging context, real IP,
panic recovery and CORS globally; rate limiting and Prometheus metrics on
the endpoint groups; gzip only where bodies compress (JSON and HTML, not
PNG).
*/
package api
