// Metagraphus - Photo Metadata Analytics and Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/metagraphus

package database

import (
	"io"

	"github.com/tomtom215/metagraphus/internal/logging"
)

// closeWithLog closes an io.Closer and logs any error with the resource type
// for context. Used where a close failure is worth a log line but must not
// mask the primary error path.
func closeWithLog(closer io.Closer, resourceType string) {
	if closer == nil {
		return
	}
	if err := closer.Close(); err != nil {
		logging.Warn().
			Err(err).
			Str("resource", resourceType).
			Msg("Failed to close resource")
	}
}

// closeQuietly closes an io.Closer ignoring any error. Used in error paths
// where the original error is what matters.
func closeQuietly(closer io.Closer) {
	if closer == nil {
		return
	}
	_ = closer.Close()
}
