// Metagraphus - Photo Metadata Analytics and Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/metagraphus

// Package render turns aggregation results into chart images.
//
// Bar, pie, curve and histogram charts render through go-chart. Treemaps
// and dendrograms have no go-chart primitive and are drawn directly on its
// raw renderer. Maps come in two shapes: a self-contained Leaflet HTML
// document and an equirectangular PNG scatter.
//
// Every renderer returns the finished bytes; handlers decide the response
// content type. ComposeVertical stacks several charts into a single PNG so
// a combined request still answers with one image.
package render
