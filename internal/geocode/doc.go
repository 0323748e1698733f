// Metagraphus - Photo Metadata Analytics and Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/metagraphus

// Package geocode resolves photo coordinates to country names through a
// Nominatim-compatible reverse geocoding service.
//
// Resolution is best effort: a lookup that fails leaves the record without
// a country and the aggregation simply counts fewer located photos. Results
// are cached per coordinate pair for the duration of one enrichment pass.
package geocode
