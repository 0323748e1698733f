// Metagraphus - Photo Metadata Analytics and Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/metagraphus

package api

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/tomtom215/metagraphus/internal/database"
	"github.com/tomtom215/metagraphus/internal/geocode"
	"github.com/tomtom215/metagraphus/internal/logging"
	"github.com/tomtom215/metagraphus/internal/metadata"
	"github.com/tomtom215/metagraphus/internal/metrics"
	"github.com/tomtom215/metagraphus/internal/models"
	"github.com/tomtom215/metagraphus/internal/snapshot"
)

// errStoreUnavailable is returned when the table is not materialized, no
// snapshot exists, and no store connection is configured.
var errStoreUnavailable = errors.New("no snapshot and no store connection")

// tableProvider materializes the cleaned metadata table once per process
// and hands it out read-only afterwards.
//
// Materialization order: snapshot file if present, otherwise raw rows from
// the store, cleaned and persisted as a new snapshot. The mutex serializes
// the first build so concurrent cold requests do not double-load, and the
// country enrichment, which is the only mutation the table ever sees. The
// table then stays in memory until the process exits; deleting the snapshot
// file and restarting is the cache invalidation protocol.
type tableProvider struct {
	mu       sync.Mutex
	db       *database.DB
	geocoder *geocode.Client
	path     string

	records  []models.Record
	loaded   bool
	geocoded bool
}

func newTableProvider(db *database.DB, geocoder *geocode.Client, path string) *tableProvider {
	return &tableProvider{
		db:       db,
		geocoder: geocoder,
		path:     path,
	}
}

// table returns the cleaned metadata table, materializing it on first use.
// The bool reports provenance: true when the table came from memory or the
// snapshot file, false when this call built it from the store.
func (p *tableProvider) table(ctx context.Context) ([]models.Record, bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.tableLocked(ctx)
}

func (p *tableProvider) tableLocked(ctx context.Context) ([]models.Record, bool, error) {
	if p.loaded {
		return p.records, true, nil
	}

	start := time.Now()

	records, ok, err := snapshot.Load(p.path)
	if err != nil {
		metrics.RecordSnapshotLoad("error")
		return nil, false, fmt.Errorf("failed to load snapshot: %w", err)
	}
	if ok {
		metrics.RecordSnapshotLoad("hit")
		metrics.RecordTableBuild("snapshot", len(records), time.Since(start))
		p.records = records
		p.loaded = true
		return p.records, true, nil
	}
	metrics.RecordSnapshotLoad("miss")

	if p.db == nil {
		return nil, false, errStoreUnavailable
	}

	raw, err := p.db.LoadRawMetadata(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("failed to load metadata from store: %w", err)
	}
	records = metadata.Clean(raw)

	if err := snapshot.Save(p.path, records); err != nil {
		metrics.RecordSnapshotSave(err)
		return nil, false, fmt.Errorf("failed to save snapshot: %w", err)
	}
	metrics.RecordSnapshotSave(nil)
	metrics.RecordTableBuild("database", len(records), time.Since(start))

	p.records = records
	p.loaded = true
	return p.records, false, nil
}

// tableWithCountries is table plus the country enrichment: every record
// with coordinates but no country yet gets one reverse-geocoded, once per
// process. Failed lookups leave their records without a country and are
// not retried. The enriched table is persisted back to the snapshot on a
// best-effort basis so later processes skip the lookups.
func (p *tableProvider) tableWithCountries(ctx context.Context) ([]models.Record, bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	records, cached, err := p.tableLocked(ctx)
	if err != nil {
		return nil, false, err
	}
	if p.geocoded || p.geocoder == nil {
		return records, cached, nil
	}

	resolved := geocode.ResolveCountries(ctx, p.geocoder, p.records)
	p.geocoded = true

	if resolved > 0 {
		if err := snapshot.Save(p.path, p.records); err != nil {
			metrics.RecordSnapshotSave(err)
			logging.Warn().
				Err(err).
				Str("path", p.path).
				Msg("Failed to persist geocoded snapshot")
		} else {
			metrics.RecordSnapshotSave(nil)
		}
	}

	return p.records, cached, nil
}

// materialized reports whether the table has been built and how many files
// it holds. Never triggers a build; the health endpoint uses it.
func (p *tableProvider) materialized() (int, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.records), p.loaded
}

// snapshotPresent reports whether the snapshot file exists on disk
func (p *tableProvider) snapshotPresent() bool {
	_, err := os.Stat(p.path)
	return err == nil
}
