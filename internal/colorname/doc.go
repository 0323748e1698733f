// Metagraphus - Photo Metadata Analytics and Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/metagraphus

// Package colorname maps hex colors onto the named web palette.
//
// Dominant-color aggregation groups per-image hex codes under their nearest
// named color so that visually identical shades from different images land
// in the same bucket.
package colorname
