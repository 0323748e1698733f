// Metagraphus - Photo Metadata Analytics and Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/metagraphus

package analytics

import (
	"sort"

	"github.com/tomtom215/metagraphus/internal/models"
)

// YearDistribution counts files per capture year, ordered by count
// descending with ties in ascending year order. Files without a timestamp
// are excluded.
func YearDistribution(records []models.Record) []models.YearCount {
	counts := YearSeries(records)
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	return counts
}

// YearSeries counts files per capture year in ascending year order, the
// shape line charts want
func YearSeries(records []models.Record) []models.YearCount {
	tally := make(map[int]int)
	for i := range records {
		if records[i].TakenAt != nil {
			tally[records[i].TakenAt.Year()]++
		}
	}

	years := make([]int, 0, len(tally))
	for y := range tally {
		years = append(years, y)
	}
	sort.Ints(years)

	counts := make([]models.YearCount, 0, len(years))
	for _, y := range years {
		counts = append(counts, models.YearCount{Year: y, Count: tally[y]})
	}
	return counts
}

// SortYearsAscending reorders year counts into ascending year order,
// in place. Used after top-N truncation when a line is drawn next to the
// truncated bar and pie.
func SortYearsAscending(counts []models.YearCount) {
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Year < counts[j].Year
	})
}

// BrandDistribution counts files per cleaned camera make, Undefined
// included, ordered by count descending with ties in first-seen order.
func BrandDistribution(records []models.Record) []models.BrandCount {
	var order []string
	tally := make(map[string]int)
	for i := range records {
		brand := records[i].Make
		if _, seen := tally[brand]; !seen {
			order = append(order, brand)
		}
		tally[brand]++
	}

	counts := make([]models.BrandCount, 0, len(order))
	for _, brand := range order {
		counts = append(counts, models.BrandCount{Make: brand, Count: tally[brand]})
	}
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	return counts
}

// CountryDistribution counts files per resolved country, ordered by count
// descending with ties in first-seen order. Files without a resolved
// country are excluded.
func CountryDistribution(records []models.Record) []models.CountryCount {
	var order []string
	tally := make(map[string]int)
	for i := range records {
		country := records[i].Country
		if country == "" {
			continue
		}
		if _, seen := tally[country]; !seen {
			order = append(order, country)
		}
		tally[country]++
	}

	counts := make([]models.CountryCount, 0, len(order))
	for _, country := range order {
		counts = append(counts, models.CountryCount{Country: country, Count: tally[country]})
	}
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	return counts
}

// MapMarkers extracts one marker per located file
func MapMarkers(records []models.Record) []models.MapMarker {
	markers := make([]models.MapMarker, 0, len(records))
	for i := range records {
		rec := &records[i]
		if !rec.HasLocation() {
			continue
		}
		markers = append(markers, models.MapMarker{
			Filename:  rec.Filename,
			Latitude:  *rec.Latitude,
			Longitude: *rec.Longitude,
		})
	}
	return markers
}
