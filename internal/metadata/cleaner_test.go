// Metagraphus - Photo Metadata Analytics and Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/metagraphus

package metadata

import (
	"math"
	"testing"
	"time"
)

func TestDMSToDecimal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		degrees  float64
		minutes  float64
		seconds  float64
		expected float64
	}{
		{name: "paris latitude", degrees: 48, minutes: 52, seconds: 0, expected: 48.8667},
		{name: "zero", degrees: 0, minutes: 0, seconds: 0, expected: 0},
		{name: "southern hemisphere", degrees: -22, minutes: 57, seconds: 8, expected: -22.9522},
		{name: "seconds only", degrees: 0, minutes: 0, seconds: 36, expected: 0.01},
		{name: "negative with large minutes", degrees: -43, minutes: 12, seconds: 38, expected: -43.2106},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := DMSToDecimal(tt.degrees, tt.minutes, tt.seconds)
			if math.Abs(got-tt.expected) > 0.0001 {
				t.Errorf("DMSToDecimal(%v, %v, %v) = %v, expected %v",
					tt.degrees, tt.minutes, tt.seconds, got, tt.expected)
			}
		})
	}
}

func TestCleanMake(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "corporation suffix", raw: "NIKON CORPORATION", want: "NIKON"},
		{name: "corp suffix", raw: "OLYMPUS CORP", want: "OLYMPUS"},
		{name: "imaging suffix", raw: "SONY IMAGING", want: "SONY"},
		{name: "ltd suffix", raw: "RICOH LTD", want: "RICOH"},
		{name: "plain make", raw: "Canon", want: "Canon"},
		{name: "digits and punctuation removed", raw: "Canon EOS-5D.", want: "CanonEOSD"},
		{name: "empty", raw: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := CleanMake(tt.raw)
			if got != tt.want {
				t.Errorf("CleanMake(%q) = %q, expected %q", tt.raw, got, tt.want)
			}

			// Cleaning an already-clean value must change nothing.
			if again := CleanMake(got); again != got {
				t.Errorf("CleanMake not idempotent: %q -> %q", got, again)
			}
		})
	}
}

func TestParseTimestamp(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		raw    string
		want   time.Time
		wantOK bool
	}{
		{
			name:   "exif style",
			raw:    "2019:06:21 14:12:03",
			want:   time.Date(2019, 6, 21, 14, 12, 3, 0, time.UTC),
			wantOK: true,
		},
		{
			name:   "iso style with offset",
			raw:    "2018-03-11T19:22:45+09:00",
			want:   time.Date(2018, 3, 11, 19, 22, 45, 0, time.UTC),
			wantOK: true,
		},
		{
			name:   "iso style without offset",
			raw:    "2020-01-02T03:04:05",
			want:   time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC),
			wantOK: true,
		},
		{
			name:   "trailing fraction truncated",
			raw:    "2019:06:21 14:12:03.123",
			want:   time.Date(2019, 6, 21, 14, 12, 3, 0, time.UTC),
			wantOK: true,
		},
		{name: "future rejected", raw: "2099:01:01 00:00:00"},
		{name: "one second past now rejected", raw: "2026:08:26 12:00:01"},
		{name: "garbage rejected", raw: "not a date"},
		{name: "empty rejected", raw: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := parseTimestamp(tt.raw, now)
			if ok != tt.wantOK {
				t.Fatalf("parseTimestamp(%q) ok = %v, expected %v", tt.raw, ok, tt.wantOK)
			}
			if ok && !got.Equal(tt.want) {
				t.Errorf("parseTimestamp(%q) = %v, expected %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParseDimension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want int
	}{
		{raw: "4000", want: 4000},
		{raw: " 300 ", want: 300},
		{raw: "", want: 0},
		{raw: "abc", want: 0},
		{raw: "12.5", want: 0},
		{raw: "-5", want: 0},
	}

	for _, tt := range tests {
		if got := parseDimension(tt.raw); got != tt.want {
			t.Errorf("parseDimension(%q) = %d, expected %d", tt.raw, got, tt.want)
		}
	}
}

func TestCleanGPSDecimal(t *testing.T) {
	t.Parallel()

	var c counters
	lat, lon, alt := cleanGPS("a.jpg", map[string]string{
		"Latitude":  "48.853000",
		"Longitude": "2.349900",
		"Altitude":  "35.000000",
	}, &c)

	if lat == nil || lon == nil {
		t.Fatal("expected resolved coordinates")
	}
	if math.Abs(*lat-48.853) > 1e-9 || math.Abs(*lon-2.3499) > 1e-9 {
		t.Errorf("unexpected coordinates (%v, %v)", *lat, *lon)
	}
	if alt == nil || *alt != 35 {
		t.Errorf("expected altitude 35, got %v", alt)
	}
	if c.gpsConverted != 0 {
		t.Error("decimal path should not count as converted")
	}
}

func TestCleanGPSFromDMS(t *testing.T) {
	t.Parallel()

	// Decimal Latitude has no dot, so the DMS components win.
	var c counters
	lat, lon, _ := cleanGPS("a.jpg", map[string]string{
		"Latitude":         "46",
		"Longitude":        "7",
		"LatitudeDegrees":  "46.000000",
		"LatitudeMinutes":  "33.000000",
		"LatitudeSeconds":  "14.000000",
		"LongitudeDegrees": "7.000000",
		"LongitudeMinutes": "59.000000",
		"LongitudeSeconds": "2.000000",
	}, &c)

	if lat == nil || lon == nil {
		t.Fatal("expected resolved coordinates")
	}
	if math.Abs(*lat-46.553888) > 0.0001 || math.Abs(*lon-7.983888) > 0.0001 {
		t.Errorf("unexpected coordinates (%v, %v)", *lat, *lon)
	}
	if c.gpsConverted != 1 {
		t.Errorf("expected 1 conversion, got %d", c.gpsConverted)
	}
}

func TestCleanGPSAllZeroSentinel(t *testing.T) {
	t.Parallel()

	var c counters
	lat, lon, alt := cleanGPS("a.jpg", map[string]string{
		"Latitude":         "0.000000",
		"Longitude":        "0.000000",
		"LatitudeDegrees":  "0.000000",
		"LongitudeDegrees": "0.000000",
		"Altitude":         "120.000000",
	}, &c)

	if lat != nil || lon != nil || alt != nil {
		t.Error("all-zero sentinel means no GPS data, altitude included")
	}
	if c.gpsAbsent != 1 {
		t.Errorf("expected 1 absent, got %d", c.gpsAbsent)
	}
}

func TestCleanGPSUnparseable(t *testing.T) {
	t.Parallel()

	var c counters
	lat, lon, alt := cleanGPS("a.jpg", map[string]string{
		"Latitude":  "48.85x",
		"Longitude": "2.349900",
	}, &c)

	if lat != nil || lon != nil || alt != nil {
		t.Error("unparseable coordinate should drop the whole GPS group")
	}
	if c.gpsFailed != 1 {
		t.Errorf("expected 1 failure, got %d", c.gpsFailed)
	}
}

func TestCleanCoordinatePairing(t *testing.T) {
	t.Parallel()

	raw := map[string]map[string]string{
		"with_gps.jpg": {
			"Latitude":  "35.659500",
			"Longitude": "139.700500",
		},
		"no_gps_keys.jpg": {
			"Make": "Apple",
		},
		"sentinel.jpg": {
			"Latitude":         "0.000000",
			"Longitude":        "0.000000",
			"LatitudeDegrees":  "0.000000",
			"LongitudeDegrees": "0.000000",
		},
	}

	for _, rec := range Clean(raw) {
		if (rec.Latitude == nil) != (rec.Longitude == nil) {
			t.Errorf("%s: latitude and longitude must be both set or both absent", rec.Filename)
		}
		if rec.Latitude == nil && rec.Altitude != nil {
			t.Errorf("%s: altitude without coordinates", rec.Filename)
		}
	}
}

func TestCleanFileFields(t *testing.T) {
	t.Parallel()

	raw := map[string]map[string]string{
		"full.jpg": {
			"ImageWidth":       "5472",
			"ImageHeight":      "3648",
			"Make":             "NIKON CORPORATION",
			"DateTimeOriginal": "2019:06:21 14:12:03",
			"Latitude":         "48.853000",
			"Longitude":        "2.349900",
			"Altitude":         "35.000000",
			"dominant_color":   "[('#8a9bb0', 46.3), ('#3e3a36', 31.2)]",
			"tags":             "['architecture', 'city']",
		},
		"bare.jpg": {
			"ImageWidth":  "800",
			"ImageHeight": "oops",
		},
	}

	records := Clean(raw)
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}

	// Sorted by filename: bare.jpg first.
	bare, full := records[0], records[1]

	if bare.Filename != "bare.jpg" || full.Filename != "full.jpg" {
		t.Fatalf("records not sorted by filename: %s, %s", records[0].Filename, records[1].Filename)
	}

	if full.Width != 5472 || full.Height != 3648 {
		t.Errorf("unexpected dimensions %dx%d", full.Width, full.Height)
	}
	if full.Make != "NIKON" {
		t.Errorf("expected make NIKON, got %q", full.Make)
	}
	if full.TakenAt == nil || full.TakenAt.Year() != 2019 {
		t.Errorf("unexpected TakenAt %v", full.TakenAt)
	}
	if full.Latitude == nil || full.Altitude == nil {
		t.Error("expected resolved GPS group")
	}
	if len(full.DominantColors) != 2 || full.DominantColors[0].Hex != "#8a9bb0" {
		t.Errorf("unexpected colors %v", full.DominantColors)
	}
	if len(full.Tags) != 2 || full.Tags[0] != "architecture" {
		t.Errorf("unexpected tags %v", full.Tags)
	}

	if bare.Width != 800 || bare.Height != 0 {
		t.Errorf("unparseable height should be 0, got %d", bare.Height)
	}
	if bare.Make != "Undefined" {
		t.Errorf("missing make should be Undefined, got %q", bare.Make)
	}
	if bare.TakenAt != nil || bare.Latitude != nil || bare.Tags != nil {
		t.Error("absent fields should stay absent")
	}
}

func TestCleanFutureTimestampDropped(t *testing.T) {
	t.Parallel()

	raw := map[string]map[string]string{
		"future.jpg": {
			"DateTimeOriginal": "2099:01:01 00:00:00",
		},
	}

	records := Clean(raw)
	if records[0].TakenAt != nil {
		t.Errorf("future timestamp must be discarded, got %v", records[0].TakenAt)
	}
}
