// Metagraphus - Photo Metadata Analytics and Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/metagraphus

package metadata

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/tomtom215/metagraphus/internal/logging"
	"github.com/tomtom215/metagraphus/internal/models"
)

// Raw key names as the indexer writes them into the metadata table.
const (
	keyWidth   = "ImageWidth"
	keyHeight  = "ImageHeight"
	keyMake    = "Make"
	keyTakenAt = "DateTimeOriginal"
	keyLat     = "Latitude"
	keyLon     = "Longitude"
	keyAlt     = "Altitude"
	keyLatDeg  = "LatitudeDegrees"
	keyLatMin  = "LatitudeMinutes"
	keyLatSec  = "LatitudeSeconds"
	keyLonDeg  = "LongitudeDegrees"
	keyLonMin  = "LongitudeMinutes"
	keyLonSec  = "LongitudeSeconds"
	keyColors  = "dominant_color"
	keyTags    = "tags"
)

// zeroSentinel is how the indexer marks an unset GPS field. A file whose
// decimal and DMS fields are all sentinels has no GPS data, not a fix on
// the null island.
const zeroSentinel = "0.000000"

// timestampLayout matches EXIF-style timestamps after normalization.
const timestampLayout = "2006:01:02 15:04:05"

// counters accumulates per-field outcomes for the summary log line.
type counters struct {
	gpsValid     int
	gpsConverted int
	gpsAbsent    int
	gpsFailed    int
	dateOK       int
	dateBad      int
	colorsBad    int
	tagsBad      int
}

// Clean normalizes raw per-file key/value pairs into typed Records, sorted
// by filename. A field that cannot be cleaned is dropped from its record
// and logged; the file itself always survives.
func Clean(raw map[string]map[string]string) []models.Record {
	now := time.Now()

	filenames := make([]string, 0, len(raw))
	for fn := range raw {
		filenames = append(filenames, fn)
	}
	sort.Strings(filenames)

	var c counters
	records := make([]models.Record, 0, len(raw))
	for _, fn := range filenames {
		records = append(records, cleanFile(fn, raw[fn], now, &c))
	}

	logging.Info().
		Int("files", len(records)).
		Int("gps_valid", c.gpsValid).
		Int("gps_converted", c.gpsConverted).
		Int("gps_absent", c.gpsAbsent).
		Int("gps_failed", c.gpsFailed).
		Int("dates_ok", c.dateOK).
		Int("dates_rejected", c.dateBad).
		Int("color_lists_rejected", c.colorsBad).
		Int("tag_lists_rejected", c.tagsBad).
		Msg("Cleaned metadata table")

	return records
}

func cleanFile(filename string, pairs map[string]string, now time.Time, c *counters) models.Record {
	rec := models.Record{
		Filename: filename,
		Width:    parseDimension(pairs[keyWidth]),
		Height:   parseDimension(pairs[keyHeight]),
		Make:     "Undefined",
	}

	if raw, ok := pairs[keyMake]; ok {
		rec.Make = CleanMake(raw)
	}

	if raw, ok := pairs[keyTakenAt]; ok {
		if t, ok := parseTimestamp(raw, now); ok {
			rec.TakenAt = &t
			c.dateOK++
		} else {
			logging.Debug().
				Str("filename", filename).
				Str("value", raw).
				Msg("Rejected capture timestamp")
			c.dateBad++
		}
	}

	rec.Latitude, rec.Longitude, rec.Altitude = cleanGPS(filename, pairs, c)

	if raw, ok := pairs[keyColors]; ok {
		colors, err := ParseColorList(raw)
		if err != nil {
			logging.Debug().
				Err(err).
				Str("filename", filename).
				Msg("Rejected dominant color list")
			c.colorsBad++
		} else {
			rec.DominantColors = colors
		}
	}

	if raw, ok := pairs[keyTags]; ok {
		tags, err := ParseTagList(raw)
		if err != nil {
			logging.Debug().
				Err(err).
				Str("filename", filename).
				Msg("Rejected tag list")
			c.tagsBad++
		} else {
			rec.Tags = tags
		}
	}

	return rec
}

// gpsField reads a GPS field, treating a missing key as the zero sentinel
func gpsField(pairs map[string]string, key string) string {
	if v, ok := pairs[key]; ok {
		return v
	}
	return zeroSentinel
}

// cleanGPS resolves a file's coordinates. The Latitude key gates the whole
// group: without it the file carries no GPS data at all. Coordinates come
// from the DMS components only when the decimal Latitude string has no
// fractional dot and a non-sentinel DMS field exists; otherwise the decimal
// strings are parsed directly. Altitude is only meaningful alongside
// resolved coordinates.
func cleanGPS(filename string, pairs map[string]string, c *counters) (lat, lon, alt *float64) {
	decLat, ok := pairs[keyLat]
	if !ok {
		return nil, nil, nil
	}

	hasDMS := gpsField(pairs, keyLatDeg) != zeroSentinel || gpsField(pairs, keyLonDeg) != zeroSentinel
	hasDecimal := decLat != zeroSentinel || gpsField(pairs, keyLon) != zeroSentinel

	if !hasDMS && !hasDecimal {
		c.gpsAbsent++
		return nil, nil, nil
	}

	var latV, lonV float64
	var err error
	converted := false

	if !strings.Contains(decLat, ".") && hasDMS {
		latV, lonV, err = dmsCoordinates(pairs)
		converted = err == nil
	} else {
		latV, err = strconv.ParseFloat(decLat, 64)
		if err == nil {
			lonV, err = strconv.ParseFloat(gpsField(pairs, keyLon), 64)
		}
	}
	if err != nil {
		logging.Debug().
			Err(err).
			Str("filename", filename).
			Msg("Rejected GPS fields")
		c.gpsFailed++
		return nil, nil, nil
	}

	c.gpsValid++
	if converted {
		c.gpsConverted++
	}

	if rawAlt, ok := pairs[keyAlt]; ok {
		if a, parseErr := strconv.ParseFloat(rawAlt, 64); parseErr == nil {
			alt = &a
		}
	}

	return &latV, &lonV, alt
}

// dmsCoordinates converts both axes from degree/minute/second components
func dmsCoordinates(pairs map[string]string) (lat, lon float64, err error) {
	components := [6]float64{}
	for i, key := range []string{keyLatDeg, keyLatMin, keyLatSec, keyLonDeg, keyLonMin, keyLonSec} {
		components[i], err = strconv.ParseFloat(gpsField(pairs, key), 64)
		if err != nil {
			return 0, 0, err
		}
	}
	lat = DMSToDecimal(components[0], components[1], components[2])
	lon = DMSToDecimal(components[3], components[4], components[5])
	return lat, lon, nil
}

// DMSToDecimal converts degree/minute/second components to decimal degrees.
// The sign of the degrees component decides the hemisphere; minutes and
// seconds contribute magnitude only.
func DMSToDecimal(degrees, minutes, seconds float64) float64 {
	decimal := math.Abs(degrees) + minutes/60 + seconds/3600
	if degrees < 0 {
		return -decimal
	}
	return decimal
}

// parseTimestamp normalizes an EXIF or ISO style timestamp string and
// parses it. ISO forms are folded into the EXIF layout: T becomes a space,
// dashes become colons, a +offset suffix is dropped, and only the first 19
// bytes are kept. Values after now are rejected, not clamped.
func parseTimestamp(raw string, now time.Time) (time.Time, bool) {
	s := strings.ReplaceAll(raw, "T", " ")
	s = strings.ReplaceAll(s, "-", ":")
	if i := strings.IndexByte(s, '+'); i >= 0 {
		s = s[:i]
	}
	if len(s) > 19 {
		s = s[:19]
	}

	t, err := time.Parse(timestampLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	if t.After(now) {
		return time.Time{}, false
	}
	return t, true
}

// CleanMake normalizes a camera make string: every non-letter rune is
// removed, then the corporate suffixes CORPORATION, CORP, COMPANY, LTD and
// IMAGING are stripped in that order. Applying it twice changes nothing.
func CleanMake(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if unicode.IsLetter(r) {
			b.WriteRune(r)
		}
	}

	s := b.String()
	for _, suffix := range []string{"CORPORATION", "CORP", "COMPANY", "LTD", "IMAGING"} {
		s = strings.ReplaceAll(s, suffix, "")
	}
	return s
}

// parseDimension parses a pixel dimension; anything unparseable is 0
func parseDimension(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
