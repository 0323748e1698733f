// Metagraphus - Photo Metadata Analytics and Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/metagraphus

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/metagraphus/internal/metrics"
	"github.com/tomtom215/metagraphus/internal/middleware"
)

// chiMiddleware adapts http.HandlerFunc middleware to Chi's
// func(http.Handler) http.Handler so the middleware package keeps one
// signature for both mux styles.
func chiMiddleware(mw func(http.HandlerFunc) http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return mw(next.ServeHTTP)
	}
}

// Routes builds the chi router with the full middleware stack and every
// endpoint of the service.
//
// Graph endpoints are POST and answer image/png (or text/html for the map);
// /metadata and /health answer the JSON envelope and are the only routes
// worth compressing. Selector validation happens inside the handlers, so
// the router never rewrites or defaults a graph_type.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied to all routes in order
	r.Use(chiMiddleware(middleware.RequestID))
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: h.config.Server.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))
	r.Use(h.rateLimiter())
	r.Use(h.perfMon.Middleware)

	// Operational endpoints
	r.Get("/metrics", promhttp.Handler().ServeHTTP)
	r.Group(func(r chi.Router) {
		r.Use(chiMiddleware(middleware.Compression))
		r.Get("/health", h.Health)
		r.Get("/health/performance", h.Performance)
		r.Get("/metadata", h.Metadata)
	})

	// Graph endpoints
	r.Route("/graph", func(r chi.Router) {
		r.Use(chiMiddleware(middleware.PrometheusMetrics))

		r.Post("/size", h.GraphSizeDynamic)
		r.Post("/size/static", h.GraphSizeStatic)
		r.Post("/size/dynamic", h.GraphSizeDynamic)
		r.Post("/datetime", h.GraphDatetime)
		r.Post("/brand", h.GraphBrand)
		r.Post("/gps/map", h.GraphMap)
		r.Post("/gps/country", h.GraphCountry)
		r.Post("/gps/altitude", h.GraphAltitude)
		r.Post("/dominant-color", h.GraphDominantColor)
		r.Post("/tags/top", h.GraphTagsTop)
		r.Post("/tags/dendrogram", h.GraphTagsDendrogram)
	})

	return r
}

// rateLimiter builds the per-IP request limiter from config. Rejections
// answer the JSON envelope with 429 and are counted per endpoint.
func (h *Handler) rateLimiter() func(http.Handler) http.Handler {
	reqs := h.config.Server.RateLimitReqs
	window := h.config.Server.RateLimitWindow
	if reqs <= 0 {
		reqs = 100
	}
	if window <= 0 {
		window = time.Minute
	}
	return httprate.Limit(reqs, window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			metrics.APIRateLimitHits.WithLabelValues(r.URL.Path).Inc()
			respondError(w, http.StatusTooManyRequests, "RATE_LIMITED", "Too many requests", nil)
		}),
	)
}
