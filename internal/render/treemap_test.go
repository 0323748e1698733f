// Metagraphus - Photo Metadata Analytics and Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/metagraphus

package render

import (
	"math"
	"testing"
)

func TestTreeMapRendersPNG(t *testing.T) {
	t.Parallel()

	out, err := TreeMap(Spec{
		Title:  "Top Colors",
		Labels: []string{"steelblue", "darkslategray", "linen"},
		Values: []float64{40.2, 22.5, 8.1},
		Colors: []string{"#4682b4", "#2f4f4f", "#faf0e6"},
	})
	if err != nil {
		t.Fatalf("TreeMap() error = %v", err)
	}
	w, h := decodePNG(t, out)
	if w != chartWidth || h != chartHeight {
		t.Errorf("TreeMap() dimensions = %dx%d, want %dx%d", w, h, chartWidth, chartHeight)
	}
}

func TestTreeMapDropsNonPositiveValues(t *testing.T) {
	t.Parallel()

	out, err := TreeMap(Spec{
		Title:  "mixed",
		Labels: []string{"zero", "real"},
		Values: []float64{0, 5},
	})
	if err != nil {
		t.Fatalf("TreeMap() error = %v", err)
	}
	decodePNG(t, out)
}

func TestTreeMapNoPositiveValues(t *testing.T) {
	t.Parallel()

	if _, err := TreeMap(Spec{Title: "empty", Labels: []string{"a"}, Values: []float64{0}}); err == nil {
		t.Fatal("TreeMap() without positive values should fail")
	}
}

func TestSquarifyPreservesAreas(t *testing.T) {
	t.Parallel()

	values := []float64{6, 4, 2, 1}
	bounds := cell{x: 10, y: 20, w: 120, h: 60}
	cells := squarify(values, bounds)

	if len(cells) != len(values) {
		t.Fatalf("squarify() produced %d cells, want %d", len(cells), len(values))
	}

	var total float64
	for _, v := range values {
		total += v
	}
	scale := bounds.w * bounds.h / total
	for i, c := range cells {
		got := c.w * c.h
		want := values[i] * scale
		if math.Abs(got-want) > 1e-6 {
			t.Errorf("cell %d area = %v, want %v", i, got, want)
		}
	}
}

func TestSquarifyStaysInBounds(t *testing.T) {
	t.Parallel()

	bounds := cell{x: 0, y: 0, w: 100, h: 100}
	cells := squarify([]float64{9, 5, 3, 2, 1}, bounds)

	const eps = 1e-6
	for i, c := range cells {
		if c.x < bounds.x-eps || c.y < bounds.y-eps ||
			c.x+c.w > bounds.x+bounds.w+eps || c.y+c.h > bounds.y+bounds.h+eps {
			t.Errorf("cell %d %+v escapes bounds %+v", i, c, bounds)
		}
	}
}
