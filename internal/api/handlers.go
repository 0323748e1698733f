// Metagraphus - Photo Metadata Analytics and Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/metagraphus

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/metagraphus/internal/config"
	"github.com/tomtom215/metagraphus/internal/database"
	"github.com/tomtom215/metagraphus/internal/geocode"
	"github.com/tomtom215/metagraphus/internal/metrics"
	"github.com/tomtom215/metagraphus/internal/middleware"
	"github.com/tomtom215/metagraphus/internal/models"
	"github.com/tomtom215/metagraphus/internal/render"
	"github.com/tomtom215/metagraphus/internal/tags"
)

// Version is the application version reported by /health and the app_info
// metric.
const Version = "1.0.0"

// Handler processes HTTP requests for all API endpoints.
//
// It owns the table provider (the process-wide cleaned metadata table), the
// optional tag categorizer, and the performance monitor the router mounts.
// Handlers are safe for concurrent use; the provider serializes the only
// mutable state.
type Handler struct {
	db          *database.DB
	config      *config.Config
	provider    *tableProvider
	categorizer *tags.Categorizer
	perfMon     *middleware.PerformanceMonitor
	startTime   time.Time
}

// NewHandler creates an API handler with all required dependencies.
//
// db may be nil (store unreachable at startup); requests are then served
// from the snapshot if one exists and fail with SERVICE_ERROR otherwise.
// geocoder may be nil (geocoding disabled); country charts then only show
// countries already present in the snapshot. categorizer may be nil (no
// embeddings model configured); the dendrogram endpoint then answers
// SERVICE_ERROR.
func NewHandler(db *database.DB, cfg *config.Config, geocoder *geocode.Client, categorizer *tags.Categorizer) *Handler {
	return &Handler{
		db:          db,
		config:      cfg,
		provider:    newTableProvider(db, geocoder, cfg.Snapshot.Path),
		categorizer: categorizer,
		perfMon:     middleware.NewPerformanceMonitor(1000), // Keep last 1000 requests
		startTime:   time.Now(),
	}
}

// GetPerformanceStats returns performance monitoring statistics
func (h *Handler) GetPerformanceStats() []middleware.EndpointStats {
	if h.perfMon != nil {
		return h.perfMon.GetStats()
	}
	return nil
}

// respondChart renders one chart family selection and writes it as
// image/png, recording render metrics and mapping failures to RENDER_ERROR.
func (h *Handler) respondChart(w http.ResponseWriter, chart string, draw func() ([]byte, error)) {
	start := time.Now()
	png, err := draw()
	metrics.RecordRender(chart, time.Since(start), err)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "RENDER_ERROR", "Failed to render chart", err)
		return
	}
	respondPNG(w, png)
}

// composeAll renders every chart of a family in order and stacks them into
// one vertical PNG, the graph_type=all contract.
func composeAll(draws ...func() ([]byte, error)) ([]byte, error) {
	images := make([][]byte, 0, len(draws))
	for _, draw := range draws {
		img, err := draw()
		if err != nil {
			return nil, err
		}
		images = append(images, img)
	}
	return render.ComposeVertical(images)
}

// table fetches the cleaned metadata table, answering the error envelope
// itself on failure. The bool result reports whether the response can
// proceed.
func (h *Handler) table(w http.ResponseWriter, r *http.Request) ([]models.Record, bool) {
	records, _, err := h.provider.table(r.Context())
	if err != nil {
		respondTableError(w, err)
		return nil, false
	}
	return records, true
}

// tableWithCountries is table plus the lazy country enrichment used by the
// map and country endpoints.
func (h *Handler) tableWithCountries(w http.ResponseWriter, r *http.Request) ([]models.Record, bool) {
	records, _, err := h.provider.tableWithCountries(r.Context())
	if err != nil {
		respondTableError(w, err)
		return nil, false
	}
	return records, true
}
