// Metagraphus - Photo Metadata Analytics and Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/metagraphus

// Package main is the Metagraphus ingest tool.
//
// It walks a directory of photos (jpg, jpeg, png, tif, tiff), extracts
// EXIF metadata, decodes pixel dimensions, runs K-means dominant-color
// extraction on a thumbnail, and upserts the resulting key/value rows
// into the metadata store the server reads from.
//
// Usage:
//
//	export SQL_HOST=localhost
//	export SQL_USER=metagraphus
//	export SQL_PASSWORD=secret
//	export SQL_DATABASE=metagraphus
//	./metagraphus-ingest -dir /photos/2026
//
// Per-file failures (unreadable, undecodable) are logged and skipped;
// the run only fails when the walk itself or the store does. Filenames
// are stored relative to the walked root, so re-running over the same
// tree overwrites rather than duplicates.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/tomtom215/metagraphus/internal/config"
	"github.com/tomtom215/metagraphus/internal/database"
	"github.com/tomtom215/metagraphus/internal/ingest"
	"github.com/tomtom215/metagraphus/internal/logging"
)

func main() {
	dir := flag.String("dir", "", "directory of photos to ingest (required)")
	flag.Parse()

	cfg, err := config.LoadWithKoanf()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	if *dir == "" {
		flag.Usage()
		logging.Fatal().Msg("-dir is required")
	}

	// Unlike the server, ingest has nowhere to fall back to without the
	// store.
	db, err := database.New(&cfg.Database)
	if err != nil {
		logging.Fatal().
			Err(err).
			Str("store", cfg.Database.Redacted()).
			Msg("Metadata store unreachable")
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing database")
		}
	}()

	// Ctrl-C stops the walk at the next file boundary
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	res, err := ingest.New(db).Run(ctx, *dir)
	if err != nil {
		logging.Error().
			Err(err).
			Int("ingested", res.Ingested).
			Int("skipped", res.Skipped).
			Msg("Ingest failed")
		os.Exit(1)
	}
}
