// Metagraphus - Photo Metadata Analytics and Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/metagraphus

package ingest

import (
	"image"
	"image/color"
	"math"
	"regexp"
	"testing"

	"github.com/tomtom215/metagraphus/internal/metadata"
)

// gradientImage has enough distinct colors for K-means to find all its
// clusters.
func gradientImage(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{
				R: uint8(x % 256),
				G: uint8(y % 256),
				B: uint8((x + y) % 256),
				A: 255,
			})
		}
	}
	return img
}

func TestDominantColors(t *testing.T) {
	t.Parallel()

	colors, err := dominantColors(gradientImage(400, 300))
	if err != nil {
		t.Fatalf("dominantColors failed: %v", err)
	}
	if len(colors) == 0 || len(colors) > colorClusters {
		t.Fatalf("got %d colors, want 1..%d", len(colors), colorClusters)
	}

	hexPattern := regexp.MustCompile(`^#[0-9a-f]{6}$`)
	total := 0.0
	for _, c := range colors {
		if !hexPattern.MatchString(c.Hex) {
			t.Errorf("malformed hex %q", c.Hex)
		}
		if c.Percent <= 0 || c.Percent > 100 {
			t.Errorf("share %v out of range", c.Percent)
		}
		total += c.Percent
	}
	if math.Abs(total-100) > 1 {
		t.Errorf("shares sum to %v, want ~100", total)
	}
}

func TestEncodeColorListRoundTrip(t *testing.T) {
	t.Parallel()

	encoded, err := encodeColorList([]colorItem{
		{Hex: "#1e90ff", Percent: 62.37},
		{Hex: "#f5deb3", Percent: 21.0},
		{Hex: "#000000", Percent: 16.63},
	})
	if err != nil {
		t.Fatalf("encodeColorList failed: %v", err)
	}

	// The cleaner on the read side must accept what ingest writes.
	shares, err := metadata.ParseColorList(encoded)
	if err != nil {
		t.Fatalf("ParseColorList(%q) failed: %v", encoded, err)
	}
	if len(shares) != 3 {
		t.Fatalf("got %d shares, want 3", len(shares))
	}
	if shares[0].Hex != "#1e90ff" || shares[0].Percent != 62.37 {
		t.Errorf("shares[0] = %+v, want #1e90ff/62.37", shares[0])
	}
	if shares[2].Hex != "#000000" || shares[2].Percent != 16.63 {
		t.Errorf("shares[2] = %+v, want #000000/16.63", shares[2])
	}
}

func TestEncodeColorListEmpty(t *testing.T) {
	t.Parallel()

	encoded, err := encodeColorList(nil)
	if err != nil {
		t.Fatalf("encodeColorList failed: %v", err)
	}
	if encoded != "[]" {
		t.Errorf("encodeColorList(nil) = %q, want %q", encoded, "[]")
	}
}
