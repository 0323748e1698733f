// Metagraphus - Photo Metadata Analytics and Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/metagraphus

// Package metadata normalizes raw photo metadata into typed records.
//
// The cleaner handles the quirks of the indexed corpus: GPS coordinates
// stored as either decimal strings or DMS components with an all-zero
// sentinel meaning "unset", EXIF and ISO timestamp styles, camera makes
// padded with corporate suffixes, and color/tag lists stored as Python or
// JSON list literals. Cleaning is field-level best effort: a bad field is
// dropped and logged, the file always survives.
package metadata
