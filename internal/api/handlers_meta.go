// Metagraphus - Photo Metadata Analytics and Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/metagraphus

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/metagraphus/internal/models"
)

// Metadata handles GET /metadata: the full cleaned table as JSON.
//
// The metadata envelope reports provenance: cached is true when the table
// came from memory or the CSV snapshot, false when this request built it
// from the store.
//
// @Summary Get the cleaned metadata table
// @Description Returns every cleaned metadata record, materializing the table on first use
// @Tags Metadata
// @Produce json
// @Success 200 {object} models.APIResponse{data=[]models.Record}
// @Failure 500 {object} models.APIResponse "Table load failed"
// @Router /metadata [get]
func (h *Handler) Metadata(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	records, cached, err := h.provider.table(r.Context())
	if err != nil {
		respondTableError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   records,
		Metadata: models.Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: time.Since(start).Milliseconds(),
			Cached:      cached,
		},
	})
}

// Health handles GET /health: liveness plus component status. Never builds
// the table; it only reports what already exists.
//
// @Summary Health check
// @Description Reports server status, store reachability, snapshot presence and embeddings availability
// @Tags Health
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.HealthStatus}
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	dbConnected := false
	if h.db != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		dbConnected = h.db.Ping(ctx) == nil
		cancel()
	}

	status := "healthy"
	if !dbConnected && !h.provider.snapshotPresent() {
		// Nothing can serve the table until one of the two comes back.
		status = "degraded"
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: models.HealthStatus{
			Status:            status,
			Version:           Version,
			DatabaseConnected: dbConnected,
			SnapshotPresent:   h.provider.snapshotPresent(),
			EmbeddingsLoaded:  h.categorizer != nil,
			Uptime:            time.Since(h.startTime).Seconds(),
		},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}

// Performance handles GET /health/performance: per-endpoint latency
// percentiles from the in-process sliding window.
//
// @Summary Endpoint performance statistics
// @Description Returns request counts and latency percentiles per endpoint over the recent request window
// @Tags Health
// @Produce json
// @Success 200 {object} models.APIResponse{data=[]middleware.EndpointStats}
// @Router /health/performance [get]
func (h *Handler) Performance(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   h.GetPerformanceStats(),
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}
