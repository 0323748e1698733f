// Metagraphus - Photo Metadata Analytics and Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/metagraphus

package models

// HealthStatus represents the health check response
type HealthStatus struct {
	Status            string  `json:"status"`
	Version           string  `json:"version"`
	DatabaseConnected bool    `json:"database_connected"`
	SnapshotPresent   bool    `json:"snapshot_present"`
	EmbeddingsLoaded  bool    `json:"embeddings_loaded"`
	Uptime            float64 `json:"uptime_seconds"`
}
