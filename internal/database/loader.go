// Metagraphus - Photo Metadata Analytics and Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/metagraphus

package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/tomtom215/metagraphus/internal/logging"
	"github.com/tomtom215/metagraphus/internal/metrics"
)

// rawMetadataQuery collapses the key/value rows of each file into a single
// blob: pairs joined by tabs, rows joined by newlines. One result row per
// filename regardless of how many metadata keys the file carries.
const rawMetadataQuery = "SELECT filename, GROUP_CONCAT(CONCAT(mkey, '\t', mvalue) SEPARATOR '\n') AS metadata FROM metadata GROUP BY filename"

// LoadRawMetadata reads every file's metadata pairs from the store, grouped
// by filename. Files whose blob cannot be parsed (a pair without a tab, a
// NULL blob) are logged and skipped; a load never fails because of a single
// bad row. The returned map is keyed by filename, each value a key/value map
// exactly as stored.
func (db *DB) LoadRawMetadata(ctx context.Context) (map[string]map[string]string, error) {
	start := time.Now()

	rows, err := db.conn.QueryContext(ctx, rawMetadataQuery)
	if err != nil {
		metrics.RecordDBQuery("select", "metadata", time.Since(start), err)
		return nil, fmt.Errorf("failed to query metadata: %w", err)
	}
	defer closeWithLog(rows, "metadata rows")

	files := make(map[string]map[string]string)
	skipped := 0

	for rows.Next() {
		var filename string
		var blob sql.NullString

		if err := rows.Scan(&filename, &blob); err != nil {
			logging.Warn().Err(err).Msg("Skipping unreadable metadata row")
			skipped++
			continue
		}
		if !blob.Valid {
			logging.Warn().Str("filename", filename).Msg("Skipping file with NULL metadata blob")
			skipped++
			continue
		}

		pairs, err := parseRawPairs(blob.String)
		if err != nil {
			logging.Warn().Err(err).Str("filename", filename).Msg("Skipping file with malformed metadata")
			skipped++
			continue
		}

		files[filename] = pairs
	}

	if err := rows.Err(); err != nil {
		metrics.RecordDBQuery("select", "metadata", time.Since(start), err)
		return nil, fmt.Errorf("failed to iterate metadata rows: %w", err)
	}

	metrics.RecordDBQuery("select", "metadata", time.Since(start), nil)
	metrics.DBFilesLoaded.Add(float64(len(files)))
	metrics.DBFilesSkipped.Add(float64(skipped))

	logging.Info().
		Int("files", len(files)).
		Int("skipped", skipped).
		Msg("Loaded raw metadata from store")

	return files, nil
}

// parseRawPairs splits a grouped metadata blob back into its key/value map.
// Every line must contain a tab separating key from value; one malformed
// line poisons the whole file so the caller can skip it.
func parseRawPairs(blob string) (map[string]string, error) {
	pairs := make(map[string]string)
	for _, line := range strings.Split(blob, "\n") {
		if line == "" {
			continue
		}
		key, value, found := strings.Cut(line, "\t")
		if !found {
			return nil, fmt.Errorf("metadata pair %q has no separator", line)
		}
		pairs[key] = value
	}
	return pairs, nil
}
