// Metagraphus - Photo Metadata Analytics and Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/metagraphus

// Package tags scores photo tags against caller-provided categories using
// word embeddings and clusters the assignments for dendrogram rendering.
//
// The categorizer is optional: without a configured model the dendrogram
// endpoint reports the service as unavailable while every other endpoint
// keeps working.
package tags
