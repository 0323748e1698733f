// Metagraphus - Photo Metadata Analytics and Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/metagraphus

// Package analytics computes the fixed aggregations behind each chart
// family: size bins, capture years, camera brands, countries, altitude
// bands, dominant-color shares and tag frequency.
//
// Every aggregation takes the full cleaned table and recomputes from
// scratch; nothing is cached here. Counts sort descending with stable
// ties, numeric bins keep their natural order.
package analytics
