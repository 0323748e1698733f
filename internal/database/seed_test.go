// Metagraphus - Photo Metadata Analytics and Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/metagraphus

package database

import (
	"context"
	"regexp"
	"sort"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
)

func TestInsertFileMetadataSortedOrder(t *testing.T) {
	t.Parallel()

	db, mock := newMockDB(t)

	pairs := map[string]string{
		"Make":        "Canon",
		"ImageWidth":  "4000",
		"ImageHeight": "3000",
	}

	// Upserts run in sorted key order regardless of map iteration.
	for _, k := range []string{"ImageHeight", "ImageWidth", "Make"} {
		mock.ExpectExec(regexp.QuoteMeta(upsertMetadataPair)).
			WithArgs("a.jpg", k, pairs[k]).
			WillReturnResult(sqlmock.NewResult(0, 1))
	}

	if err := db.InsertFileMetadata(context.Background(), "a.jpg", pairs); err != nil {
		t.Fatalf("InsertFileMetadata failed: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestSeedDemoData(t *testing.T) {
	t.Parallel()

	db, mock := newMockDB(t)

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS metadata").
		WillReturnResult(sqlmock.NewResult(0, 0))

	for _, f := range demoCorpus() {
		keys := make([]string, 0, len(f.pairs))
		for k := range f.pairs {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			mock.ExpectExec(regexp.QuoteMeta(upsertMetadataPair)).
				WithArgs(f.filename, k, f.pairs[k]).
				WillReturnResult(sqlmock.NewResult(0, 1))
		}
	}

	if err := db.SeedDemoData(context.Background()); err != nil {
		t.Fatalf("SeedDemoData failed: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestDemoCorpusFilenamesUnique(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	for _, f := range demoCorpus() {
		if seen[f.filename] {
			t.Errorf("duplicate demo filename %s", f.filename)
		}
		seen[f.filename] = true
		if f.pairs["ImageWidth"] == "" {
			t.Errorf("%s has no ImageWidth", f.filename)
		}
	}
}
