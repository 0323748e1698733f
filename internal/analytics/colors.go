// Metagraphus - Photo Metadata Analytics and Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/metagraphus

package analytics

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/tomtom215/metagraphus/internal/logging"
	"github.com/tomtom215/metagraphus/internal/models"
)

// ErrColorShareOverflow reports a corrupt table: per-name shares are each
// image's dominant-color percentages divided by 100, so their total can
// only exceed 100 when the stored percentages were wrong to begin with.
var ErrColorShareOverflow = errors.New("sum of color shares exceeds 100")

// ColorShares sums dominant-color percentages per hex code across the
// table, folds the hexes onto named colors via nameFn, and returns one
// share per name with a representative hex from hexFn. Hexes nameFn
// rejects are skipped. Shares are percentage sums divided by 100, rounded
// to 5 places per hex before summing per name; ordering is share
// descending with ties in first-seen order.
func ColorShares(
	records []models.Record,
	nameFn func(hex string) (string, error),
	hexFn func(name string) (string, error),
) ([]models.ColorShareTotal, error) {
	var hexOrder []string
	hexTotals := make(map[string]float64)
	for i := range records {
		for _, share := range records[i].DominantColors {
			if _, seen := hexTotals[share.Hex]; !seen {
				hexOrder = append(hexOrder, share.Hex)
			}
			hexTotals[share.Hex] += share.Percent
		}
	}

	var nameOrder []string
	nameShares := make(map[string]float64)
	nameHex := make(map[string]string)
	for _, hex := range hexOrder {
		name, err := nameFn(hex)
		if err != nil {
			logging.Debug().
				Err(err).
				Str("hex", hex).
				Msg("Skipping unmappable dominant color")
			continue
		}
		if _, seen := nameShares[name]; !seen {
			nameOrder = append(nameOrder, name)
			if rep, err := hexFn(name); err == nil {
				nameHex[name] = rep
			}
		}
		nameShares[name] += round5(hexTotals[hex] / 100)
	}

	total := 0.0
	for _, share := range nameShares {
		total += share
	}
	if total > 100 {
		return nil, fmt.Errorf("%w: total %.5f", ErrColorShareOverflow, total)
	}

	shares := make([]models.ColorShareTotal, 0, len(nameOrder))
	for _, name := range nameOrder {
		shares = append(shares, models.ColorShareTotal{
			Name:  name,
			Hex:   nameHex[name],
			Share: nameShares[name],
		})
	}
	sort.SliceStable(shares, func(i, j int) bool {
		return shares[i].Share > shares[j].Share
	})
	return shares, nil
}

func round5(f float64) float64 {
	return math.Round(f*1e5) / 1e5
}
