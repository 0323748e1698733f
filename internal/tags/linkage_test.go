// Metagraphus - Photo Metadata Analytics and Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/metagraphus

package tags

import (
	"math"
	"testing"

	"github.com/tomtom215/metagraphus/internal/models"
)

func TestCategoryDistance(t *testing.T) {
	t.Parallel()

	a := models.TagAssignment{Category: "nature", Tag: "snow", Similarity: 0.7}
	b := models.TagAssignment{Category: "nature", Tag: "mountain", Similarity: 0.8}
	c := models.TagAssignment{Category: "urban", Tag: "street", Similarity: 0.75}

	if got := CategoryDistance(a, b); math.Abs(got-0.1) > 1e-9 {
		t.Errorf("same-category distance = %v, expected 0.1", got)
	}
	if got := CategoryDistance(a, c); got != 1.0 {
		t.Errorf("cross-category distance = %v, expected 1.0", got)
	}
	if got := CategoryDistance(a, a); got != 0 {
		t.Errorf("self distance = %v, expected 0", got)
	}
}

func TestLinkageMergesClosestFirst(t *testing.T) {
	t.Parallel()

	leaves := []models.TagAssignment{
		{Category: "nature", Tag: "snow", Similarity: 0.70},     // 0
		{Category: "nature", Tag: "mountain", Similarity: 0.72}, // 1
		{Category: "urban", Tag: "street", Similarity: 0.75},    // 2
	}

	steps := Linkage(leaves, CategoryDistance)
	if len(steps) != 2 {
		t.Fatalf("expected 2 merge steps, got %d", len(steps))
	}

	// snow and mountain are 0.02 apart; street is 1.0 from both.
	first := steps[0]
	if first.Left != 0 || first.Right != 1 {
		t.Errorf("first merge should join leaves 0 and 1, got %d and %d", first.Left, first.Right)
	}
	if math.Abs(first.Distance-0.02) > 1e-9 {
		t.Errorf("first merge distance = %v, expected 0.02", first.Distance)
	}
	if first.Size != 2 {
		t.Errorf("first merge size = %d, expected 2", first.Size)
	}

	second := steps[1]
	if second.Left != 2 || second.Right != 3 {
		t.Errorf("second merge should join leaf 2 with cluster 3, got %d and %d", second.Left, second.Right)
	}
	if second.Distance != 1.0 {
		t.Errorf("second merge distance = %v, expected 1.0 (average of two 1.0s)", second.Distance)
	}
	if second.Size != 3 {
		t.Errorf("second merge size = %d, expected 3", second.Size)
	}
}

func TestLinkageAveragesClusterDistances(t *testing.T) {
	t.Parallel()

	// Distances: a-b 0.1, a-c 1.0, b-c 1.0, a-d 1.0, b-d 1.0, c-d 0.3.
	leaves := []models.TagAssignment{
		{Category: "nature", Tag: "snow", Similarity: 0.6},     // 0: a
		{Category: "nature", Tag: "mountain", Similarity: 0.7}, // 1: b
		{Category: "urban", Tag: "street", Similarity: 0.5},    // 2: c
		{Category: "urban", Tag: "night", Similarity: 0.8},     // 3: d
	}

	steps := Linkage(leaves, CategoryDistance)
	if len(steps) != 3 {
		t.Fatalf("expected 3 merge steps, got %d", len(steps))
	}

	if steps[0].Left != 0 || steps[0].Right != 1 || math.Abs(steps[0].Distance-0.1) > 1e-9 {
		t.Errorf("unexpected first step %+v", steps[0])
	}
	if steps[1].Left != 2 || steps[1].Right != 3 || math.Abs(steps[1].Distance-0.3) > 1e-9 {
		t.Errorf("unexpected second step %+v", steps[1])
	}
	// Final step joins clusters 4 and 5; every cross pair is 1.0.
	if steps[2].Left != 4 || steps[2].Right != 5 || steps[2].Distance != 1.0 || steps[2].Size != 4 {
		t.Errorf("unexpected final step %+v", steps[2])
	}
}

func TestLinkageDegenerateInputs(t *testing.T) {
	t.Parallel()

	if steps := Linkage(nil, CategoryDistance); steps != nil {
		t.Errorf("no leaves should produce no steps, got %v", steps)
	}

	one := []models.TagAssignment{{Category: "nature", Tag: "snow", Similarity: 0.7}}
	if steps := Linkage(one, CategoryDistance); steps != nil {
		t.Errorf("single leaf should produce no steps, got %v", steps)
	}
}

func TestLinkageIdenticalLeavesTieBreak(t *testing.T) {
	t.Parallel()

	leaves := []models.TagAssignment{
		{Category: "nature", Tag: "a", Similarity: 0.5},
		{Category: "nature", Tag: "b", Similarity: 0.5},
		{Category: "nature", Tag: "c", Similarity: 0.5},
	}

	steps := Linkage(leaves, CategoryDistance)
	if len(steps) != 2 {
		t.Fatalf("expected 2 steps, got %d", len(steps))
	}
	// All distances are zero; the lowest-indexed pair merges first.
	if steps[0].Left != 0 || steps[0].Right != 1 {
		t.Errorf("tie should merge leaves 0 and 1 first, got %+v", steps[0])
	}
	if steps[1].Left != 2 || steps[1].Right != 3 {
		t.Errorf("final merge should join leaf 2 and cluster 3, got %+v", steps[1])
	}
}
