// Metagraphus - Photo Metadata Analytics and Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/metagraphus

package analytics

import (
	"sort"

	"github.com/tomtom215/metagraphus/internal/models"
)

// TagFrequency counts every tag occurrence across the table and returns the
// topN most frequent, ties in first-seen order. topN < 1 returns the full
// ranking.
func TagFrequency(records []models.Record, topN int) []models.TagCount {
	var order []string
	tally := make(map[string]int)
	for i := range records {
		for _, tag := range records[i].Tags {
			if _, seen := tally[tag]; !seen {
				order = append(order, tag)
			}
			tally[tag]++
		}
	}

	counts := make([]models.TagCount, 0, len(order))
	for _, tag := range order {
		counts = append(counts, models.TagCount{Tag: tag, Count: tally[tag]})
	}
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})

	if topN > 0 && len(counts) > topN {
		counts = counts[:topN]
	}
	return counts
}
