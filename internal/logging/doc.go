// Metagraphus - Photo Metadata Analytics and Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/metagraphus

// Package logging provides centralized zerolog-based structured logging for Metagraphus.
//
// This package implements a unified logging layer using zerolog, providing
// zero-allocation structured JSON logging for production and human-readable
// console output for development.
//
// # Overview
//
// The package provides:
//   - Zero-allocation structured logging via zerolog
//   - JSON output format for production (machine-parseable)
//   - Console output format for development (human-readable)
//   - Context-aware logging with correlation ID propagation
//   - Test loggers that capture output into a buffer
//
// # Usage Patterns
//
// The pipeline's failure model depends on this package: malformed store rows,
// corrupt timestamps, unparseable GPS fields, and failed geocode lookups are
// all logged and skipped rather than aborting the request. Handlers log
// through Ctx(ctx) so every entry carries the request and correlation IDs
// assigned by the middleware, and long-lived components use WithComponent to
// tag their entries.
//
// See logger.go for configuration and the package-level logging entry points,
// and context.go for correlation ID propagation.
package logging
