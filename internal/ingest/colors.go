// Metagraphus - Photo Metadata Analytics and Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/metagraphus

package ingest

import (
	"fmt"
	"image"
	"math"

	"github.com/EdlinOrg/prominentcolor"
	"github.com/disintegration/imaging"
	"github.com/goccy/go-json"
)

// Dominant-color extraction parameters. K-means runs over a downscaled
// thumbnail; clustering the full-resolution image costs seconds per photo
// for the same palette.
const (
	colorClusters  = 5
	thumbnailWidth = 256
)

// dominantColors clusters the image into up to colorClusters dominant
// colors with the share of the image area each covers, largest first.
func dominantColors(img image.Image) ([]colorItem, error) {
	thumb := imaging.Resize(img, thumbnailWidth, 0, imaging.Lanczos)

	items, err := prominentcolor.KmeansWithAll(
		colorClusters, thumb,
		prominentcolor.ArgumentNoCropping,
		prominentcolor.DefaultSize, nil)
	if err != nil {
		return nil, fmt.Errorf("dominant color clustering failed: %w", err)
	}

	total := 0
	for _, item := range items {
		total += item.Cnt
	}
	if total == 0 {
		return nil, nil
	}

	colors := make([]colorItem, 0, len(items))
	for _, item := range items {
		colors = append(colors, colorItem{
			Hex:     fmt.Sprintf("#%02x%02x%02x", item.Color.R, item.Color.G, item.Color.B),
			Percent: math.Round(float64(item.Cnt)/float64(total)*10000) / 100,
		})
	}
	return colors, nil
}

// colorItem is one dominant color with its area share in percent
type colorItem struct {
	Hex     string
	Percent float64
}

// encodeColorList renders the dominant colors in the store's textual list
// form, the JSON shape the cleaner's ParseColorList accepts.
func encodeColorList(colors []colorItem) (string, error) {
	pairs := make([][2]any, len(colors))
	for i, c := range colors {
		pairs[i] = [2]any{c.Hex, c.Percent}
	}
	encoded, err := json.Marshal(pairs)
	if err != nil {
		return "", fmt.Errorf("failed to encode color list: %w", err)
	}
	return string(encoded), nil
}
