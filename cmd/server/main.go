// Metagraphus - Photo Metadata Analytics and Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/metagraphus

// Package main is the entry point for the Metagraphus server.
//
// Metagraphus pulls per-photo EXIF-like metadata (camera make, capture
// timestamp, GPS coordinates, dominant colors, descriptive tags) from a
// MySQL/MariaDB store, cleans it into a typed table, and renders charts and
// maps on demand through POST endpoints. A CSV snapshot of the cleaned
// table short-circuits the store on subsequent requests; deleting the
// snapshot file and restarting the process is the cache invalidation
// protocol.
//
// # Application Architecture
//
// The server initializes components in the following order:
//
//  1. Configuration: defaults, optional YAML file, then environment
//     variables (Koanf v2), with a .env preload for the store credentials
//  2. Database: MySQL/MariaDB connection pool for the metadata table
//  3. Demo seeding (optional, SEED_DEMO_DATA=true): synthetic corpus for
//     development and CI
//  4. Geocoding: Nominatim reverse-geocoding client for country resolution
//  5. Embeddings: word2vec model for tag categorization (optional)
//  6. HTTP server: chart endpoints plus /metadata, /health and /metrics
//
// The store being unreachable at startup is not fatal: requests are served
// from the snapshot if one exists and answer SERVICE_ERROR otherwise.
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest
// priority wins): environment variables, config file (config.yaml), then
// built-in defaults. The store credentials use the SQL_* variable names the
// deployment's .env file has always carried:
//
//	export SQL_HOST=localhost
//	export SQL_USER=metagraphus
//	export SQL_PASSWORD=secret
//	export SQL_DATABASE=metagraphus
//	./metagraphus
//
// Tag categorization needs a binary word2vec model:
//
//	export EMBEDDINGS_MODEL_PATH=/data/GoogleNews-vectors-negative300.bin
//
// # Signal Handling
//
// The server handles graceful shutdown on SIGINT and SIGTERM: it stops
// accepting new connections, waits for in-flight requests to complete
// (HTTP_SHUTDOWN_TIMEOUT, default 30s), and closes the store connection.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/tomtom215/metagraphus/internal/api"
	"github.com/tomtom215/metagraphus/internal/config"
	"github.com/tomtom215/metagraphus/internal/database"
	"github.com/tomtom215/metagraphus/internal/geocode"
	"github.com/tomtom215/metagraphus/internal/logging"
	"github.com/tomtom215/metagraphus/internal/metrics"
	"github.com/tomtom215/metagraphus/internal/tags"
)

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.LoadWithKoanf()
	if err != nil {
		// Use default logger for config errors (config not yet available)
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Initialize zerolog with configuration
	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("version", api.Version).
		Str("store", cfg.Database.Redacted()).
		Str("snapshot", cfg.Snapshot.Path).
		Msg("Starting Metagraphus")

	metrics.AppInfo.WithLabelValues(api.Version, runtime.Version()).Set(1)

	// Hot-reload the logging settings when the config file changes. Store
	// and server settings still need a restart.
	if cfgPath := config.FindConfigFile(); cfgPath != "" {
		err := config.WatchConfigFile(cfgPath, func() {
			newCfg, err := config.LoadWithKoanf()
			if err != nil {
				logging.Error().Err(err).Msg("Config reload failed")
				return
			}
			logging.Init(logging.Config{
				Level:  newCfg.Logging.Level,
				Format: newCfg.Logging.Format,
				Caller: newCfg.Logging.Caller,
			})
			logging.Info().Str("config", cfgPath).Msg("Configuration reloaded")
		})
		if err != nil {
			logging.Warn().Err(err).Str("config", cfgPath).Msg("Config watch unavailable")
		}
	}

	// Connect to the metadata store. Unreachable is degraded, not fatal:
	// the snapshot can still serve every read endpoint.
	var db *database.DB
	db, err = database.New(&cfg.Database)
	if err != nil {
		logging.Warn().
			Err(err).
			Msg("Metadata store unreachable; serving from snapshot only")
		db = nil
	} else {
		defer func() {
			if err := db.Close(); err != nil {
				logging.Error().Err(err).Msg("Error closing database")
			}
		}()
		logging.Info().Msg("Connected to metadata store")
	}

	// Seed demo data if enabled (dev/test and CI screenshot runs)
	if cfg.Database.SeedDemoData {
		if db == nil {
			logging.Fatal().Msg("SEED_DEMO_DATA=true but the store is unreachable")
		}
		if err := db.SeedDemoData(context.Background()); err != nil {
			logging.Fatal().Err(err).Msg("Failed to seed demo data")
		}
	}

	// Reverse geocoding client for country resolution
	var geocoder *geocode.Client
	if cfg.Geocoding.Enabled {
		geocoder = geocode.NewClient(&cfg.Geocoding)
		logging.Info().
			Str("base_url", cfg.Geocoding.BaseURL).
			Msg("Reverse geocoding enabled")
	} else {
		logging.Info().Msg("Reverse geocoding disabled; country charts limited to snapshot data")
	}

	// Word embeddings for tag categorization. Optional: without a model the
	// dendrogram endpoint answers SERVICE_ERROR and everything else works.
	var categorizer *tags.Categorizer
	if cfg.Embeddings.Enabled() {
		categorizer, err = tags.NewCategorizer(cfg.Embeddings.ModelPath)
		if err != nil {
			logging.Fatal().Err(err).Msg("Failed to load embeddings model")
		}
	} else {
		logging.Info().Msg("No embeddings model configured; tag dendrogram disabled")
	}

	handler := api.NewHandler(db, cfg, geocoder, categorizer)

	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      handler.Routes(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Track uptime for the /metrics surface
	startTime := time.Now()
	uptimeDone := make(chan struct{})
	go func() {
		ticker := time.NewTicker(15 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				metrics.AppUptime.Set(time.Since(startTime).Seconds())
			case <-uptimeDone:
				return
			}
		}
	}()
	defer close(uptimeDone)

	// Serve until a shutdown signal arrives
	errCh := make(chan error, 1)
	go func() {
		logging.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		errCh <- server.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal().Err(err).Msg("HTTP server failed")
		}
	}

	// Drain in-flight requests within the configured window
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logging.Error().Err(err).Msg("Graceful shutdown failed")
	}

	logging.Info().Msg("Application stopped gracefully")
}
