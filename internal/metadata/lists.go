// Metagraphus - Photo Metadata Analytics and Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/metagraphus

package metadata

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/metagraphus/internal/models"
)

// normalizeListLiteral folds the indexer's Python-style list literals into
// JSON: tuples become arrays, single quotes become double quotes. Already
// JSON-shaped input passes through unchanged.
func normalizeListLiteral(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.ReplaceAll(s, "(", "[")
	s = strings.ReplaceAll(s, ")", "]")
	s = strings.ReplaceAll(s, "'", `"`)
	return s
}

// ParseTagList decodes a stored tag list. Both ['a', 'b'] and ["a","b"]
// forms are accepted.
func ParseTagList(raw string) ([]string, error) {
	var tags []string
	if err := json.Unmarshal([]byte(normalizeListLiteral(raw)), &tags); err != nil {
		return nil, fmt.Errorf("undecodable tag list %q: %w", raw, err)
	}
	return tags, nil
}

// ParseColorList decodes a stored dominant-color list: pairs of a hex code
// and the share of the image that color covers, in either tuple or array
// form.
func ParseColorList(raw string) ([]models.ColorShare, error) {
	var pairs [][2]any
	if err := json.Unmarshal([]byte(normalizeListLiteral(raw)), &pairs); err != nil {
		return nil, fmt.Errorf("undecodable color list %q: %w", raw, err)
	}

	colors := make([]models.ColorShare, 0, len(pairs))
	for _, p := range pairs {
		hex, ok := p[0].(string)
		if !ok {
			return nil, fmt.Errorf("color entry %v has no hex code", p)
		}
		percent, ok := p[1].(float64)
		if !ok {
			return nil, fmt.Errorf("color entry %v has no percentage", p)
		}
		colors = append(colors, models.ColorShare{Hex: hex, Percent: percent})
	}
	return colors, nil
}
