// Metagraphus - Photo Metadata Analytics and Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/metagraphus

// This file holds the validated query parameters of the graph endpoints,
// one struct per endpoint family, with go-playground/validator tags.
//
// Selector fields (graph_type, output_type) use oneof so an unknown value
// is rejected with 400 VALIDATION_ERROR rather than silently falling back
// to a default chart. Interval counts are bounded to keep render sizes and
// bin computations sane.
//
// Example usage:
//
//	req := SizeGraphRequest{
//	    NbIntervals: getIntParam(r, "nb_intervals", 7),
//	    GraphType:   getStringParam(r, "graph_type", "all"),
//	}
//	if apiErr := validateRequest(&req); apiErr != nil {
//	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
//	    return
//	}
package api

// SizeGraphRequest represents the validated query parameters for
// /graph/size and /graph/size/dynamic.
//
// Fields:
//   - NbIntervals: Number of size bins over (0, max] (1-100, default 7)
//   - GraphType: Chart selection (bar, pie, or all)
type SizeGraphRequest struct {
	NbIntervals int    `validate:"min=1,max=100"`
	GraphType   string `validate:"oneof=bar pie all"`
}

// StaticSizeGraphRequest represents the validated query parameters for
// /graph/size/static, which always answers a bar chart.
//
// Fields:
//   - IntervalSize: Fixed bin width in pixels (1-100000, default 200)
//   - NbIntervals: Number of bins (1-100, default 4)
type StaticSizeGraphRequest struct {
	IntervalSize int `validate:"min=1,max=100000"`
	NbIntervals  int `validate:"min=1,max=100"`
}

// DatetimeGraphRequest represents the validated query parameters for
// /graph/datetime.
//
// Fields:
//   - NbIntervals: Top-N years kept for the bar and pie (1-100, default 10)
//   - GraphType: Chart selection (bar, pie, curve, or all)
type DatetimeGraphRequest struct {
	NbIntervals int    `validate:"min=1,max=100"`
	GraphType   string `validate:"oneof=bar pie curve all"`
}

// BrandGraphRequest represents the validated query parameters for
// /graph/brand.
//
// Fields:
//   - NbColumns: Top-N camera makes kept (1-100, default 5)
//   - GraphType: Chart selection (bar, pie, or all)
type BrandGraphRequest struct {
	NbColumns int    `validate:"min=1,max=100"`
	GraphType string `validate:"oneof=bar pie all"`
}

// MapRequest represents the validated query parameters for /graph/gps/map.
//
// Fields:
//   - OutputType: html for the interactive Leaflet document, png for a
//     rendered scatter of the markers
type MapRequest struct {
	OutputType string `validate:"oneof=html png"`
}

// CountryGraphRequest represents the validated query parameters for
// /graph/gps/country.
//
// Fields:
//   - NbIntervals: Top-N countries kept (1-100, default 5)
//   - GraphType: Chart selection (bar, pie, or all)
type CountryGraphRequest struct {
	NbIntervals int    `validate:"min=1,max=100"`
	GraphType   string `validate:"oneof=bar pie all"`
}

// AltitudeGraphRequest represents the validated query parameters for
// /graph/gps/altitude.
//
// Fields:
//   - NbIntervals: Number of altitude bands over [0, max) (1-100, default 5)
//   - GraphType: Chart selection (histogram, bar, pie, or all)
type AltitudeGraphRequest struct {
	NbIntervals int    `validate:"min=1,max=100"`
	GraphType   string `validate:"oneof=histogram bar pie all"`
}

// ColorGraphRequest represents the validated query parameters for
// /graph/dominant-color.
//
// Fields:
//   - NbIntervals: Top-N named colors kept (1-100, default 5)
//   - GraphType: Chart selection (bar, pie, treemap, or all)
type ColorGraphRequest struct {
	NbIntervals int    `validate:"min=1,max=100"`
	GraphType   string `validate:"oneof=bar pie treemap all"`
}

// TagGraphRequest represents the validated query parameters for
// /graph/tags/top.
//
// Fields:
//   - NbIntervals: Top-N tags kept (1-100, default 5)
//   - GraphType: Chart selection (bar, pie, or all)
type TagGraphRequest struct {
	NbIntervals int    `validate:"min=1,max=100"`
	GraphType   string `validate:"oneof=bar pie all"`
}

// DendrogramRequest represents the validated query parameters for
// /graph/tags/dendrogram.
//
// Fields:
//   - Categories: Comma-separated category names the tags are clustered
//     into; at least one is required
type DendrogramRequest struct {
	Categories []string `validate:"required,min=1,dive,required"`
}
