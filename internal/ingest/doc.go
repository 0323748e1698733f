// Metagraphus - Photo Metadata Analytics and Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/metagraphus

// Package ingest extracts metadata from image files and writes it to the
// metadata store in the key/value shape the server's cleaner expects.
//
// Per file the pipeline extracts EXIF fields (camera make, capture
// timestamp, GPS position in both decimal and DMS form), decodes the pixel
// dimensions, and runs K-means over a downscaled thumbnail for the dominant
// colors. Every per-file failure is logged and the file skipped; a partial
// extraction (EXIF missing, colors present) still stores what it found.
//
// The server never writes to the store; this package is the feeder behind
// the cmd/ingest utility.
package ingest
