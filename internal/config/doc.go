// Metagraphus - Photo Metadata Analytics and Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/metagraphus

// Package config provides layered configuration management for Metagraphus.
//
// Configuration is loaded with koanf v2 from three sources in increasing
// priority: built-in defaults, an optional YAML file (CONFIG_PATH or the
// well-known locations in DefaultConfigPaths), and environment variables.
// A .env file in the working directory is loaded into the environment before
// the environment layer runs, preserving the deployment's historical way of
// passing the metadata store credentials (SQL_HOST, SQL_USER, SQL_PASSWORD,
// SQL_DATABASE).
//
// Environment variable names map to nested config paths through an explicit
// table in envTransformFunc; unknown variables are ignored rather than
// guessed at. Comma-separated values are accepted for slice fields such as
// CORS_ORIGINS.
//
// Usage:
//
//	cfg, err := config.LoadWithKoanf()
//	if err != nil {
//	    logging.Fatal().Err(err).Msg("Cannot load configuration")
//	}
//	db, err := database.Open(cfg.Database)
//
// Validation happens as part of LoadWithKoanf; a Config that reaches the
// caller is structurally valid.
package config
