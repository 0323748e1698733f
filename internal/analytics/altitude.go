// Metagraphus - Photo Metadata Analytics and Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/metagraphus

package analytics

import (
	"fmt"

	"github.com/tomtom215/metagraphus/internal/models"
)

// AltitudeDistribution buckets positive altitudes into nbIntervals bands.
// Band edges are max/nb multiples truncated to whole meters and each band
// is half-open [lo, hi), so the single highest photo falls outside the last
// band. Bands keep their natural low-to-high order.
func AltitudeDistribution(records []models.Record, nbIntervals int) []models.AltitudeBand {
	altitudes := AltitudeSamples(records)
	if len(altitudes) == 0 || nbIntervals < 1 {
		return nil
	}

	max := altitudes[0]
	for _, a := range altitudes[1:] {
		if a > max {
			max = a
		}
	}

	edges := make([]int, nbIntervals+1)
	for i := range edges {
		edges[i] = int(float64(i) * max / float64(nbIntervals))
	}

	bands := make([]models.AltitudeBand, nbIntervals)
	for i := range bands {
		bands[i] = models.AltitudeBand{
			Range: fmt.Sprintf("%d-%d", edges[i], edges[i+1]),
		}
	}
	for _, a := range altitudes {
		for i := 0; i < nbIntervals; i++ {
			if a >= float64(edges[i]) && a < float64(edges[i+1]) {
				bands[i].Count++
				break
			}
		}
	}
	return bands
}

// AltitudeSamples returns the raw positive altitudes, the series the
// histogram renderer bins itself
func AltitudeSamples(records []models.Record) []float64 {
	var altitudes []float64
	for i := range records {
		if a := records[i].Altitude; a != nil && *a > 0 {
			altitudes = append(altitudes, *a)
		}
	}
	return altitudes
}
