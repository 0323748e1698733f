// Metagraphus - Photo Metadata Analytics and Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/metagraphus

package models

// SizeBucket represents an image-size interval with the number of images
// whose smaller dimension falls inside it
type SizeBucket struct {
	Range string `json:"range"`
	Count int    `json:"count"`
}

// YearCount represents the number of images captured in a year
type YearCount struct {
	Year  int `json:"year"`
	Count int `json:"count"`
}

// BrandCount represents the number of images taken with a camera make
type BrandCount struct {
	Make  string `json:"make"`
	Count int    `json:"count"`
}

// CountryCount represents the number of images geolocated to a country
type CountryCount struct {
	Country string `json:"country"`
	Count   int    `json:"count"`
}

// AltitudeBand represents an altitude interval with the number of images
// captured inside it
type AltitudeBand struct {
	Range string `json:"range"`
	Count int    `json:"count"`
}

// ColorShareTotal represents a named color with its accumulated share of
// image area across the whole table, as percent of one image
type ColorShareTotal struct {
	Name  string  `json:"name"`
	Hex   string  `json:"hex"`
	Share float64 `json:"share"`
}

// TagCount represents a tag with its occurrence count across all images
type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// TagAssignment represents one tag assigned to its best-matching category
// with the embedding similarity that won the assignment
type TagAssignment struct {
	Category   string  `json:"category"`
	Tag        string  `json:"tag"`
	Similarity float64 `json:"similarity"`
}

// MapMarker represents one geolocated image pinned on the interactive map
type MapMarker struct {
	Filename  string  `json:"filename"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
