// Metagraphus - Photo Metadata Analytics and Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/metagraphus

package database

import (
	"context"
	"fmt"
	"sort"

	"github.com/tomtom215/metagraphus/internal/logging"
)

const createMetadataTable = `CREATE TABLE IF NOT EXISTS metadata (
	filename VARCHAR(255) NOT NULL,
	mkey VARCHAR(64) NOT NULL,
	mvalue TEXT,
	PRIMARY KEY (filename, mkey)
)`

const upsertMetadataPair = "INSERT INTO metadata (filename, mkey, mvalue) VALUES (?, ?, ?) ON DUPLICATE KEY UPDATE mvalue = VALUES(mvalue)"

// demoFile is one synthetic photo in the demo corpus
type demoFile struct {
	filename string
	pairs    map[string]string
}

// demoCorpus returns a small set of files whose metadata covers the shapes
// the cleaner has to handle: decimal GPS, DMS-only GPS, the all-zero GPS
// sentinel, a future timestamp, corporate make suffixes, a missing make,
// ISO-style timestamps, and both textual list styles for colors and tags.
func demoCorpus() []demoFile {
	return []demoFile{
		{
			filename: "paris_notre_dame.jpg",
			pairs: map[string]string{
				"ImageWidth":       "5472",
				"ImageHeight":      "3648",
				"Make":             "Canon",
				"DateTimeOriginal": "2019:06:21 14:12:03",
				"Latitude":         "48.853000",
				"Longitude":        "2.349900",
				"Altitude":         "35.000000",
				"dominant_color":   "[('#8a9bb0', 46.3), ('#3e3a36', 31.2), ('#d9cfc0', 22.5)]",
				"tags":             "['architecture', 'city', 'church']",
			},
		},
		{
			filename: "alps_ridge.jpg",
			pairs: map[string]string{
				"ImageWidth":       "6000",
				"ImageHeight":      "4000",
				"Make":             "NIKON CORPORATION",
				"DateTimeOriginal": "2021:08:02 06:45:10",
				"Latitude":         "46",
				"Longitude":        "7",
				"LatitudeDegrees":  "46.000000",
				"LatitudeMinutes":  "33.000000",
				"LatitudeSeconds":  "14.000000",
				"LongitudeDegrees": "7.000000",
				"LongitudeMinutes": "59.000000",
				"LongitudeSeconds": "2.000000",
				"Altitude":         "4158.000000",
				"dominant_color":   "[('#ffffff', 52.0), ('#7d8ea3', 28.4), ('#2b3a4a', 19.6)]",
				"tags":             "['mountain', 'snow', 'hiking']",
			},
		},
		{
			filename: "rio_overlook.jpg",
			pairs: map[string]string{
				"ImageWidth":       "4608",
				"ImageHeight":      "3456",
				"Make":             "Canon",
				"DateTimeOriginal": "2017:02:14 17:30:55",
				"Latitude":         "-22",
				"Longitude":        "-43",
				"LatitudeDegrees":  "-22.000000",
				"LatitudeMinutes":  "57.000000",
				"LatitudeSeconds":  "8.000000",
				"LongitudeDegrees": "-43.000000",
				"LongitudeMinutes": "12.000000",
				"LongitudeSeconds": "38.000000",
				"Altitude":         "704.000000",
				"dominant_color":   "[('#3f6fb4', 44.1), ('#6a7f52', 33.0), ('#c9c2a8', 21.4)]",
				"tags":             "['mountain', 'sea', 'city']",
			},
		},
		{
			filename: "studio_portrait.jpg",
			pairs: map[string]string{
				"ImageWidth":       "3000",
				"ImageHeight":      "2000",
				"Make":             "SONY IMAGING",
				"DateTimeOriginal": "2020:11:05 10:02:41",
				"Latitude":         "0.000000",
				"Longitude":        "0.000000",
				"LatitudeDegrees":  "0.000000",
				"LatitudeMinutes":  "0.000000",
				"LatitudeSeconds":  "0.000000",
				"LongitudeDegrees": "0.000000",
				"LongitudeMinutes": "0.000000",
				"LongitudeSeconds": "0.000000",
				"Altitude":         "0.000000",
				"dominant_color":   "[('#1b1b1b', 58.9), ('#e8d6c3', 40.0)]",
				"tags":             "['portrait', 'studio']",
			},
		},
		{
			filename: "tokyo_crossing.jpg",
			pairs: map[string]string{
				"ImageWidth":       "4240",
				"ImageHeight":      "2832",
				"Make":             "FUJIFILM",
				"DateTimeOriginal": "2018-03-11T19:22:45+09:00",
				"Latitude":         "35.659500",
				"Longitude":        "139.700500",
				"Altitude":         "40.000000",
				"dominant_color":   "[('#14161c', 49.7), ('#c4314b', 27.8), ('#f0e9dd', 20.1)]",
				"tags":             "[\"street\", \"night\", \"city\"]",
			},
		},
		{
			filename: "sahara_dune.jpg",
			pairs: map[string]string{
				"ImageWidth":       "5184",
				"ImageHeight":      "3456",
				"Make":             "OLYMPUS CORP",
				"DateTimeOriginal": "2016:04:29 08:17:22",
				"Latitude":         "23.416200",
				"Longitude":        "25.662800",
				"Altitude":         "280.000000",
				"dominant_color":   "[('#d49a4f', 63.5), ('#8a5a2b', 24.0), ('#f4e3c1', 12.3)]",
				"tags":             "['desert', 'sand']",
			},
		},
		{
			filename: "harbor_gulls.jpg",
			pairs: map[string]string{
				"ImageWidth":       "4032",
				"ImageHeight":      "3024",
				"Make":             "Apple",
				"DateTimeOriginal": "2022:07:16 12:40:09",
				"dominant_color":   "[('#5f87a8', 51.2), ('#dfe6ea', 33.1), ('#30373d', 15.5)]",
				"tags":             "['sea', 'birds']",
			},
		},
		{
			filename: "broken_clock.jpg",
			pairs: map[string]string{
				"ImageWidth":       "1600",
				"ImageHeight":      "1200",
				"DateTimeOriginal": "2099:01:01 00:00:00",
				"dominant_color":   "[('#777777', 70.0), ('#222222', 29.5)]",
				"tags":             "['clock']",
			},
		},
	}
}

// SeedDemoData creates the metadata table if it does not exist and inserts
// the demo corpus. Safe to run repeatedly; existing pairs are overwritten.
func (db *DB) SeedDemoData(ctx context.Context) error {
	if _, err := db.conn.ExecContext(ctx, createMetadataTable); err != nil {
		return fmt.Errorf("failed to create metadata table: %w", err)
	}

	corpus := demoCorpus()
	for _, f := range corpus {
		if err := db.InsertFileMetadata(ctx, f.filename, f.pairs); err != nil {
			return fmt.Errorf("failed to seed %s: %w", f.filename, err)
		}
	}

	logging.Info().
		Int("files", len(corpus)).
		Msg("Seeded demo metadata")

	return nil
}

// InsertFileMetadata upserts every key/value pair for one file. Keys are
// written in sorted order so repeated runs produce identical statement
// sequences.
func (db *DB) InsertFileMetadata(ctx context.Context, filename string, pairs map[string]string) error {
	keys := make([]string, 0, len(pairs))
	for k := range pairs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if _, err := db.conn.ExecContext(ctx, upsertMetadataPair, filename, k, pairs[k]); err != nil {
			return fmt.Errorf("failed to upsert %s/%s: %w", filename, k, err)
		}
	}
	return nil
}
