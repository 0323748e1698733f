// Metagraphus - Photo Metadata Analytics and Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/metagraphus

// Package database manages the MySQL connection to the metadata store.
//
// The store holds one row per (filename, key) pair in the metadata table.
// LoadRawMetadata regroups those rows into per-file key/value maps using a
// single GROUP_CONCAT query; rows that cannot be regrouped are logged and
// skipped rather than failing the load. SeedDemoData populates a small
// synthetic corpus for development and demos.
package database
