// Metagraphus - Photo Metadata Analytics and Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/metagraphus

package analytics

import (
	"fmt"
	"sort"

	"github.com/tomtom215/metagraphus/internal/models"
)

// SizeDistribution buckets files by min(width, height) into nbIntervals
// equal bins spanning (0, max]. Bins are left-exclusive and right-inclusive
// so every sized file lands in exactly one bin and the largest file sits in
// the last one. Files with an unknown dimension are excluded. Buckets come
// back ordered by count descending, ties in bin order.
func SizeDistribution(records []models.Record, nbIntervals int) []models.SizeBucket {
	sizes := minSizes(records)
	if len(sizes) == 0 || nbIntervals < 1 {
		return nil
	}

	max := sizes[0]
	for _, s := range sizes[1:] {
		if s > max {
			max = s
		}
	}

	edges := make([]float64, nbIntervals+1)
	for i := range edges {
		edges[i] = float64(i) * float64(max) / float64(nbIntervals)
	}

	return countIntoBins(sizes, edges)
}

// SizeDistributionStatic buckets files by min(width, height) into
// fixed-width bins (i*w, (i+1)*w]. Files larger than the last edge fall
// outside every bin and are not counted.
func SizeDistributionStatic(records []models.Record, intervalSize, nbIntervals int) []models.SizeBucket {
	sizes := minSizes(records)
	if len(sizes) == 0 || intervalSize < 1 || nbIntervals < 1 {
		return nil
	}

	edges := make([]float64, nbIntervals+1)
	for i := range edges {
		edges[i] = float64(i * intervalSize)
	}

	return countIntoBins(sizes, edges)
}

// minSizes collects min(width, height) for every fully-sized file
func minSizes(records []models.Record) []int {
	sizes := make([]int, 0, len(records))
	for i := range records {
		if m := records[i].MinDimension(); m > 0 {
			sizes = append(sizes, m)
		}
	}
	return sizes
}

func countIntoBins(sizes []int, edges []float64) []models.SizeBucket {
	buckets := make([]models.SizeBucket, len(edges)-1)
	for i := range buckets {
		buckets[i] = models.SizeBucket{
			Range: fmt.Sprintf("%d-%d", int(edges[i]), int(edges[i+1])),
		}
	}

	for _, s := range sizes {
		v := float64(s)
		for i := 0; i < len(edges)-1; i++ {
			if v > edges[i] && v <= edges[i+1] {
				buckets[i].Count++
				break
			}
		}
	}

	sort.SliceStable(buckets, func(i, j int) bool {
		return buckets[i].Count > buckets[j].Count
	})
	return buckets
}
