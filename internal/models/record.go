// Metagraphus - Photo Metadata Analytics and Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/metagraphus

package models

import (
	"time"
)

// Record is one photo's cleaned metadata row, produced by the metadata
// cleaner from the raw key/value rows in the store and cached in the CSV
// snapshot between requests.
//
// Optionality conventions:
//   - Width/Height: 0 means the dimension is unknown.
//   - Make: "Undefined" when the camera make is absent.
//   - TakenAt: nil when the capture timestamp is absent, corrupt, or in the
//     future (future values are discarded, never clamped).
//   - Latitude/Longitude: both set or both nil. All-zero decimal and all-zero
//     DMS source fields mean "no GPS data", not coordinates at the origin.
//   - Altitude: nil whenever the coordinates are nil.
//   - Country: empty until resolved by reverse geocoding; resolution happens
//     lazily and is cached on the record for the life of the table.
type Record struct {
	Filename       string       `json:"filename"`
	Width          int          `json:"width,omitempty"`
	Height         int          `json:"height,omitempty"`
	Make           string       `json:"make"`
	TakenAt        *time.Time   `json:"taken_at,omitempty"`
	Latitude       *float64     `json:"latitude,omitempty"`
	Longitude      *float64     `json:"longitude,omitempty"`
	Altitude       *float64     `json:"altitude,omitempty"`
	Country        string       `json:"country,omitempty"`
	DominantColors []ColorShare `json:"dominant_colors,omitempty"`
	Tags           []string     `json:"tags,omitempty"`
}

// HasSize reports whether both pixel dimensions are known.
func (r *Record) HasSize() bool {
	return r.Width > 0 && r.Height > 0
}

// MinDimension returns the smaller of width and height, the measure used by
// the size distributions. Returns 0 when either dimension is unknown.
func (r *Record) MinDimension() int {
	if !r.HasSize() {
		return 0
	}
	if r.Width < r.Height {
		return r.Width
	}
	return r.Height
}

// HasLocation reports whether the record carries usable GPS coordinates.
func (r *Record) HasLocation() bool {
	return r.Latitude != nil && r.Longitude != nil
}

// ColorShare is one dominant color of a photo with the share of the image
// area it covers, as percent in [0, 100].
type ColorShare struct {
	Hex     string  `json:"hex"`
	Percent float64 `json:"percent"`
}
