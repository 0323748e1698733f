// Metagraphus - Photo Metadata Analytics and Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/metagraphus

package analytics

import (
	"testing"

	"github.com/tomtom215/metagraphus/internal/models"
)

func altitudeRecords(altitudes ...float64) []models.Record {
	records := make([]models.Record, len(altitudes))
	for i := range altitudes {
		lat, lon := 10.0, 20.0
		records[i] = models.Record{
			Filename: "f.jpg",
			Latitude: &lat, Longitude: &lon,
			Altitude: &altitudes[i],
		}
	}
	return records
}

func TestAltitudeDistribution(t *testing.T) {
	t.Parallel()

	// Max 1000, nb 4: bands [0,250) [250,500) [500,750) [750,1000).
	bands := AltitudeDistribution(altitudeRecords(100, 300, 400, 800, 1000), 4)
	if len(bands) != 4 {
		t.Fatalf("expected 4 bands, got %d", len(bands))
	}

	want := []models.AltitudeBand{
		{Range: "0-250", Count: 1},
		{Range: "250-500", Count: 2},
		{Range: "500-750", Count: 0},
		{Range: "750-1000", Count: 1},
	}
	for i, w := range want {
		if bands[i] != w {
			t.Errorf("band %d: expected %+v, got %+v", i, w, bands[i])
		}
	}
}

func TestAltitudeDistributionMaxFallsOutside(t *testing.T) {
	t.Parallel()

	bands := AltitudeDistribution(altitudeRecords(100, 1000), 2)
	total := 0
	for _, b := range bands {
		total += b.Count
	}
	// The maximum altitude sits on the open upper edge of the last band.
	if total != 1 {
		t.Errorf("expected only the non-max altitude counted, total %d: %v", total, bands)
	}
}

func TestAltitudeDistributionTruncatesEdges(t *testing.T) {
	t.Parallel()

	// Max 1000.5, nb 3: float edges 0, 333.5, 667, 1000.5 -> 0, 333, 667, 1000.
	bands := AltitudeDistribution(altitudeRecords(200, 334, 700, 1000.5), 3)
	if bands[0].Range != "0-333" || bands[1].Range != "333-667" || bands[2].Range != "667-1000" {
		t.Errorf("unexpected ranges %v", bands)
	}
	if bands[0].Count != 1 || bands[1].Count != 1 || bands[2].Count != 1 {
		t.Errorf("unexpected counts %v", bands)
	}
}

func TestAltitudeDistributionIgnoresNonPositive(t *testing.T) {
	t.Parallel()

	records := append(altitudeRecords(-5, 0, 500),
		models.Record{Filename: "noalt.jpg"})

	bands := AltitudeDistribution(records, 2)
	total := 0
	for _, b := range bands {
		total += b.Count
	}
	// 500 is the max and falls outside; nothing else qualifies.
	if total != 0 {
		t.Errorf("expected zero counted, got %d: %v", total, bands)
	}
	if len(bands) != 2 {
		t.Errorf("bands should still cover (0, max): %v", bands)
	}
}

func TestAltitudeDistributionEmpty(t *testing.T) {
	t.Parallel()

	if bands := AltitudeDistribution(nil, 3); bands != nil {
		t.Errorf("expected nil for empty table, got %v", bands)
	}
	if bands := AltitudeDistribution(altitudeRecords(-1, 0), 3); bands != nil {
		t.Errorf("expected nil when no positive altitudes, got %v", bands)
	}
}

func TestAltitudeSamples(t *testing.T) {
	t.Parallel()

	records := append(altitudeRecords(35, -2, 0, 704), models.Record{Filename: "noalt.jpg"})

	samples := AltitudeSamples(records)
	if len(samples) != 2 || samples[0] != 35 || samples[1] != 704 {
		t.Errorf("unexpected samples %v", samples)
	}
}
