// Metagraphus - Photo Metadata Analytics and Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/metagraphus

package render

import (
	"testing"

	"github.com/tomtom215/metagraphus/internal/tags"
)

func TestDendrogramRendersPNG(t *testing.T) {
	t.Parallel()

	merges := []tags.MergeStep{
		{Left: 0, Right: 1, Distance: 0.1, Size: 2},
		{Left: 2, Right: 3, Distance: 0.2, Size: 2},
		{Left: 4, Right: 5, Distance: 1.0, Size: 4},
	}
	labels := []string{
		"animal -> cat",
		"animal -> dog",
		"landscape -> beach",
		"landscape -> mountain",
	}

	out, err := Dendrogram(merges, labels)
	if err != nil {
		t.Fatalf("Dendrogram() error = %v", err)
	}
	w, h := decodePNG(t, out)
	if w != chartWidth || h != dendroHeight {
		t.Errorf("Dendrogram() dimensions = %dx%d, want %dx%d", w, h, chartWidth, dendroHeight)
	}
}

func TestDendrogramZeroDistances(t *testing.T) {
	t.Parallel()

	merges := []tags.MergeStep{{Left: 0, Right: 1, Distance: 0, Size: 2}}
	out, err := Dendrogram(merges, []string{"a -> x", "a -> y"})
	if err != nil {
		t.Fatalf("Dendrogram() error = %v", err)
	}
	decodePNG(t, out)
}

func TestDendrogramRejectsBadInput(t *testing.T) {
	t.Parallel()

	if _, err := Dendrogram(nil, []string{"solo"}); err == nil {
		t.Error("Dendrogram() with one leaf should fail")
	}
	merges := []tags.MergeStep{{Left: 0, Right: 1, Distance: 0.5, Size: 2}}
	if _, err := Dendrogram(merges, []string{"a", "b", "c"}); err == nil {
		t.Error("Dendrogram() with a merge/leaf mismatch should fail")
	}
}

func TestLeafOrderFollowsTree(t *testing.T) {
	t.Parallel()

	// Root merges cluster 5 (leaves 2,3) with cluster 4 (leaves 0,1), so
	// the walk visits 2,3 before 0,1.
	merges := []tags.MergeStep{
		{Left: 0, Right: 1, Distance: 0.1, Size: 2},
		{Left: 2, Right: 3, Distance: 0.2, Size: 2},
		{Left: 5, Right: 4, Distance: 0.9, Size: 4},
	}
	got := leafOrder(merges, 4)
	want := []int{2, 3, 0, 1}
	if len(got) != len(want) {
		t.Fatalf("leafOrder() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("leafOrder() = %v, want %v", got, want)
		}
	}
}
