// Metagraphus - Photo Metadata Analytics and Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/metagraphus

package snapshot

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/tomtom215/metagraphus/internal/models"
)

func floatPtr(f float64) *float64 { return &f }

func sampleRecords() []models.Record {
	taken := time.Date(2019, 6, 21, 14, 12, 3, 0, time.UTC)
	return []models.Record{
		{
			Filename: "paris.jpg",
			Width:    5472,
			Height:   3648,
			Make:     "Canon",
			TakenAt:  &taken,
			Latitude: floatPtr(48.853), Longitude: floatPtr(2.3499),
			Altitude: floatPtr(35),
			Country:  "France",
			DominantColors: []models.ColorShare{
				{Hex: "#8a9bb0", Percent: 46.3},
			},
			Tags: []string{"architecture", "city"},
		},
		{
			Filename: "bare.jpg",
			Make:     "Undefined",
		},
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "metadata.csv")

	if err := Save(path, sampleRecords()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	records, ok, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !ok {
		t.Fatal("expected snapshot hit")
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}

	paris := records[0]
	if paris.Filename != "paris.jpg" || paris.Width != 5472 || paris.Height != 3648 {
		t.Errorf("unexpected record %+v", paris)
	}
	if paris.TakenAt == nil || !paris.TakenAt.Equal(time.Date(2019, 6, 21, 14, 12, 3, 0, time.UTC)) {
		t.Errorf("TakenAt did not round-trip: %v", paris.TakenAt)
	}
	if paris.Latitude == nil || *paris.Latitude != 48.853 {
		t.Errorf("Latitude did not round-trip: %v", paris.Latitude)
	}
	if paris.Country != "France" {
		t.Errorf("Country did not round-trip: %q", paris.Country)
	}
	if len(paris.DominantColors) != 1 || paris.DominantColors[0].Hex != "#8a9bb0" {
		t.Errorf("colors did not round-trip: %v", paris.DominantColors)
	}
	if len(paris.Tags) != 2 || paris.Tags[1] != "city" {
		t.Errorf("tags did not round-trip: %v", paris.Tags)
	}

	bare := records[1]
	if bare.Width != 0 || bare.TakenAt != nil || bare.Latitude != nil ||
		bare.Altitude != nil || bare.DominantColors != nil || bare.Tags != nil {
		t.Errorf("absent fields should stay absent after round-trip: %+v", bare)
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	records, ok, err := Load(filepath.Join(t.TempDir(), "nope.csv"))
	if err != nil {
		t.Fatalf("missing file should not be an error: %v", err)
	}
	if ok || records != nil {
		t.Error("missing file should report a miss")
	}
}

func TestLoadCorruptSnapshot(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "metadata.csv")
	if err := os.WriteFile(path, []byte("not,a,snapshot\n1,2,3\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, _, err := Load(path); err == nil {
		t.Error("corrupt snapshot should be an error, not a miss")
	}
}

func TestLoadRejectsUnpairedCoordinates(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "metadata.csv")
	content := "filename,width,height,make,taken_at,latitude,longitude,altitude,country,dominant_colors,tags\n" +
		"odd.jpg,,,Canon,,48.85,,,,,\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, _, err := Load(path); err == nil {
		t.Error("latitude without longitude should fail the load")
	}
}

func TestSaveOverwritesAtomically(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "metadata.csv")

	if err := Save(path, sampleRecords()); err != nil {
		t.Fatalf("first Save failed: %v", err)
	}
	if err := Save(path, sampleRecords()[:1]); err != nil {
		t.Fatalf("second Save failed: %v", err)
	}

	records, ok, err := Load(path)
	if err != nil || !ok {
		t.Fatalf("Load after overwrite failed: ok=%v err=%v", ok, err)
	}
	if len(records) != 1 {
		t.Errorf("expected overwritten snapshot with 1 record, got %d", len(records))
	}

	// No temp files may survive a completed Save.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("expected only the snapshot in %s, found %d entries", dir, len(entries))
	}
}

func TestSaveCreatesParentDirectory(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "data", "metadata.csv")

	if err := Save(path, nil); err != nil {
		t.Fatalf("Save into missing directory failed: %v", err)
	}
	if _, ok, err := Load(path); err != nil || !ok {
		t.Errorf("expected empty snapshot to load: ok=%v err=%v", ok, err)
	}
}
