// Metagraphus - Photo Metadata Analytics and Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/metagraphus

package colorname

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// hexShape is checked before parsing: colorful.Hex scans with Sscanf and
// quietly accepts truncated strings like "#12345".
var hexShape = regexp.MustCompile(`^#([0-9a-f]{6}|[0-9a-f]{3})$`)

// Nearest maps a hex color to the closest named web color by squared RGB
// distance. An exact palette color maps to its own name; ties resolve to
// the alphabetically first name.
func Nearest(hex string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(hex))
	if !hexShape.MatchString(normalized) {
		return "", fmt.Errorf("invalid color %q", hex)
	}
	c, err := colorful.Hex(normalized)
	if err != nil {
		return "", fmt.Errorf("invalid color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()

	best := ""
	bestDist := 1 << 30
	for _, name := range colornames.Names {
		cand := colornames.Map[name]
		d := sqDiff(cand.R, r) + sqDiff(cand.G, g) + sqDiff(cand.B, b)
		if d < bestDist {
			best, bestDist = name, d
		}
	}
	return best, nil
}

// HexFor returns the #rrggbb code of a named web color
func HexFor(name string) (string, error) {
	c, ok := colornames.Map[strings.ToLower(name)]
	if !ok {
		return "", fmt.Errorf("unknown color name %q", name)
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B), nil
}

func sqDiff(a, b uint8) int {
	d := int(a) - int(b)
	return d * d
}
