// Metagraphus - Photo Metadata Analytics and Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/metagraphus

package models

import (
	"time"
)

// APIResponse represents a standardized API response wrapper used by all
// JSON-returning endpoints. It provides consistent structure for both
// successful and error responses, with metadata for observability and
// snapshot-cache information. Chart endpoints return raw image/png or
// text/html bodies on success and fall back to this envelope on error.
//
// Status field values:
//   - "success": Request completed successfully, see Data field
//   - "error": Request failed, see Error field for details
//
// Fields:
//   - Status: Response status ("success" or "error")
//   - Data: Response payload (any JSON-serializable type)
//   - Metadata: Query execution metadata (timing, caching, timestamp)
//   - Error: Error details (populated only when Status is "error")
//
// Example successful response:
//
//	{
//	  "status": "success",
//	  "data": [{"filename": "IMG_0001.jpg", "make": "NIKON", ...}],
//	  "metadata": {
//	    "timestamp": "2026-08-26T12:00:00Z",
//	    "query_time_ms": 45,
//	    "cached": false
//	  }
//	}
//
// Example error response:
//
//	{
//	  "status": "error",
//	  "error": {
//	    "code": "VALIDATION_ERROR",
//	    "message": "Invalid graph_type parameter",
//	    "details": {"field": "graph_type", "value": "scatter"}
//	  },
//	  "metadata": {"timestamp": "2026-08-26T12:00:00Z"}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata contains response metadata for observability and performance
// tracking. All enveloped responses include it so clients can monitor query
// latency and snapshot-cache effectiveness.
//
// Fields:
//   - Timestamp: Server time when response was generated (RFC3339 format)
//   - QueryTimeMS: Table materialization plus aggregation time in milliseconds
//   - Cached: Whether the cleaned table was served from the CSV snapshot
//
// The snapshot is the only cache in the system: Cached is true exactly when
// the table came from the on-disk snapshot rather than the metadata store.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
	Cached      bool      `json:"cached,omitempty"`
}

// APIError represents an error response with structured error details.
// Provides consistent error format across all API endpoints for better
// client handling.
//
// Fields:
//   - Code: Machine-readable error code (e.g., "VALIDATION_ERROR", "DATABASE_ERROR")
//   - Message: Human-readable error message
//   - Details: Additional context (field names, offending values, etc.)
//
// Common error codes:
//   - VALIDATION_ERROR: Invalid input parameters (bad graph_type, nb_intervals, ...)
//   - DATABASE_ERROR: Metadata store query failure
//   - RENDER_ERROR: Chart rendering failure
//   - INVARIANT_ERROR: Aggregation invariant violated (color shares over 100%)
//   - SERVICE_ERROR: Required backing service unavailable (store, embeddings model)
//   - NOT_FOUND: Resource doesn't exist
//   - RATE_LIMIT_EXCEEDED: Too many requests
//
// Example:
//
//	{
//	  "code": "VALIDATION_ERROR",
//	  "message": "Invalid nb_intervals parameter (must be 1 to 100)",
//	  "details": {
//	    "field": "nb_intervals",
//	    "value": 500
//	  }
//	}
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
