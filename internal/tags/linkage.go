// Metagraphus - Photo Metadata Analytics and Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/metagraphus

package tags

import (
	"math"
	"sort"

	"github.com/tomtom215/metagraphus/internal/models"
)

// MergeStep is one agglomeration in a hierarchical clustering. Cluster
// indexes below the leaf count refer to leaves; index n+i refers to the
// cluster formed by step i.
type MergeStep struct {
	Left     int
	Right    int
	Distance float64
	Size     int
}

// DistFunc measures the distance between two leaves
type DistFunc func(a, b models.TagAssignment) float64

// CategoryDistance is the dendrogram metric: tags in the same category are
// as far apart as their similarity scores differ, tags in different
// categories are maximally apart.
func CategoryDistance(a, b models.TagAssignment) float64 {
	if a.Category == b.Category {
		return math.Abs(a.Similarity - b.Similarity)
	}
	return 1.0
}

// Linkage runs average-linkage agglomerative clustering over the leaves and
// returns the n-1 merge steps, each recording the two clusters merged, the
// average distance between them, and the merged size. Ties merge the
// lowest-indexed pair. Fewer than two leaves cluster trivially (no steps).
func Linkage(leaves []models.TagAssignment, dist DistFunc) []MergeStep {
	n := len(leaves)
	if n < 2 {
		return nil
	}

	// Pairwise leaf distances; cluster distances are averaged from these.
	d := make([][]float64, n)
	for i := range d {
		d[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d[i][j] = dist(leaves[i], leaves[j])
			d[j][i] = d[i][j]
		}
	}

	members := make(map[int][]int, n)
	for i := 0; i < n; i++ {
		members[i] = []int{i}
	}

	clusterDist := func(a, b []int) float64 {
		sum := 0.0
		for _, i := range a {
			for _, j := range b {
				sum += d[i][j]
			}
		}
		return sum / float64(len(a)*len(b))
	}

	steps := make([]MergeStep, 0, n-1)
	for next := n; len(members) > 1; next++ {
		ids := make([]int, 0, len(members))
		for id := range members {
			ids = append(ids, id)
		}
		sort.Ints(ids)

		bestA, bestB := -1, -1
		bestD := math.Inf(1)
		for x := 0; x < len(ids); x++ {
			for y := x + 1; y < len(ids); y++ {
				if dd := clusterDist(members[ids[x]], members[ids[y]]); dd < bestD {
					bestA, bestB, bestD = ids[x], ids[y], dd
				}
			}
		}

		merged := append(append([]int{}, members[bestA]...), members[bestB]...)
		steps = append(steps, MergeStep{
			Left:     bestA,
			Right:    bestB,
			Distance: bestD,
			Size:     len(merged),
		})
		delete(members, bestA)
		delete(members, bestB)
		members[next] = merged
	}

	return steps
}
