// Metagraphus - Photo Metadata Analytics and Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/metagraphus

package ingest

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	exif "github.com/dsoprea/go-exif/v3"
	jpegstructure "github.com/dsoprea/go-jpeg-image-structure"
	pngstructure "github.com/dsoprea/go-png-image-structure"
	riimage "github.com/dsoprea/go-utility/image"

	"github.com/tomtom215/metagraphus/internal/logging"
)

// gpsZero is the sentinel the store uses for "no GPS data". The cleaner
// relies on the whole GPS group being written together, so extraction
// always emits every GPS key, zeroed when the file carries no position.
const gpsZero = "0.000000"

type exifParser interface {
	Parse(rs io.ReadSeeker, size int) (ec riimage.MediaContext, err error)
}

// parserFor returns the structured EXIF parser for a file extension, or
// nil when only the brute-force scan applies.
func parserFor(ext string) exifParser {
	switch ext {
	case ".jpg", ".jpeg":
		return jpegstructure.NewJpegMediaParser()
	case ".png":
		return pngstructure.NewPngMediaParser()
	default:
		return nil
	}
}

// extractExifData pulls the raw EXIF blob out of a file: the structured
// per-format parser first, then a brute-force scan of the whole stream.
// A file without EXIF returns an empty slice and no error.
func extractExifData(rs io.ReadSeeker, size int64, ext string) ([]byte, error) {
	if parser := parserFor(ext); parser != nil {
		if mc, err := parser.Parse(rs, int(size)); err == nil {
			if _, data, err := mc.Exif(); err == nil && len(data) > 0 {
				return data, nil
			}
		} else {
			logging.Debug().Err(err).Str("ext", ext).Msg("Structured EXIF parse failed, falling back to scan")
		}
	}

	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("failed to rewind for EXIF scan: %w", err)
	}
	data, err := exif.SearchAndExtractExifWithReader(rs)
	if err != nil {
		if errors.Is(err, exif.ErrNoExif) {
			return nil, nil
		}
		return nil, fmt.Errorf("EXIF scan failed: %w", err)
	}
	return data, nil
}

// exifPairs flattens an EXIF blob into the store's key space: Make,
// DateTimeOriginal, and the decimal + DMS GPS group.
func exifPairs(data []byte) map[string]string {
	pairs := make(map[string]string)
	if len(data) == 0 {
		return pairs
	}

	entries, _, err := exif.GetFlatExifData(data, nil)
	if err != nil {
		logging.Debug().Err(err).Msg("Undecodable EXIF block")
		return pairs
	}

	flat := make(map[string]string, len(entries))
	for _, entry := range entries {
		if entry.TagName == "" {
			continue
		}
		value := strings.ReplaceAll(entry.Formatted, "\x00", "")
		if value != "" {
			flat[entry.TagName] = value
		}
	}

	if make_, ok := flat["Make"]; ok {
		pairs["Make"] = strings.TrimSpace(make_)
	}
	for _, key := range []string{"DateTimeOriginal", "DateTimeDigitized", "DateTime"} {
		if v, ok := flat[key]; ok {
			pairs["DateTimeOriginal"] = v
			break
		}
	}

	gpsGroup(flat, pairs)
	return pairs
}

// gpsGroup writes the full GPS key group: decimal Latitude/Longitude/
// Altitude and the six DMS component keys, zero-sentineled when the file
// has no position.
func gpsGroup(flat, pairs map[string]string) {
	for _, key := range []string{
		"Latitude", "Longitude", "Altitude",
		"LatitudeDegrees", "LatitudeMinutes", "LatitudeSeconds",
		"LongitudeDegrees", "LongitudeMinutes", "LongitudeSeconds",
	} {
		pairs[key] = gpsZero
	}

	lat, latOK := parseDMS(flat["GPSLatitude"], flat["GPSLatitudeRef"] == "S")
	lon, lonOK := parseDMS(flat["GPSLongitude"], flat["GPSLongitudeRef"] == "W")
	if !latOK || !lonOK {
		return
	}

	pairs["Latitude"] = formatCoord(lat.decimal())
	pairs["Longitude"] = formatCoord(lon.decimal())
	pairs["LatitudeDegrees"] = formatCoord(lat.deg)
	pairs["LatitudeMinutes"] = formatCoord(lat.min)
	pairs["LatitudeSeconds"] = formatCoord(lat.sec)
	pairs["LongitudeDegrees"] = formatCoord(lon.deg)
	pairs["LongitudeMinutes"] = formatCoord(lon.min)
	pairs["LongitudeSeconds"] = formatCoord(lon.sec)

	if alt, ok := flat["GPSAltitude"]; ok {
		if v, err := parseRational(alt); err == nil {
			if flat["GPSAltitudeRef"] == "1" { // below sea level
				v = -v
			}
			pairs["Altitude"] = formatCoord(v)
		}
	}
}

// dms is a signed degrees/minutes/seconds position component. The sign
// lives on the degrees, matching the store convention; the hemisphere is
// also kept separately because a zero-degree band cannot carry it
// (negating 0 yields negative zero, which does not compare below zero).
type dms struct {
	deg, min, sec float64
	south         bool
}

func (d dms) decimal() float64 {
	v := abs(d.deg) + d.min/60 + d.sec/3600
	if d.south || d.deg < 0 {
		return -v
	}
	return v
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

// parseDMS decodes the EXIF rational triplet form "[48/1 52/1 30/1]".
// south reflects the hemisphere reference tag and lands as a negative
// degree component.
func parseDMS(formatted string, south bool) (dms, bool) {
	s := strings.TrimSpace(formatted)
	s = strings.TrimPrefix(s, "[")
	s = strings.TrimSuffix(s, "]")
	fields := strings.Fields(s)
	if len(fields) != 3 {
		return dms{}, false
	}

	var parts [3]float64
	for i, f := range fields {
		v, err := parseRational(f)
		if err != nil {
			return dms{}, false
		}
		parts[i] = v
	}

	d := dms{deg: parts[0], min: parts[1], sec: parts[2], south: south}
	if south {
		d.deg = -d.deg
	}
	return d, true
}

// parseRational decodes an EXIF rational "num/den"; a plain decimal
// string passes through.
func parseRational(s string) (float64, error) {
	if !strings.Contains(s, "/") {
		return strconv.ParseFloat(strings.TrimSpace(s), 64)
	}
	parts := strings.SplitN(s, "/", 2)
	num, err1 := strconv.ParseFloat(parts[0], 64)
	den, err2 := strconv.ParseFloat(parts[1], 64)
	if err1 != nil || err2 != nil || den == 0 {
		return 0, fmt.Errorf("invalid rational %q", s)
	}
	return num / den, nil
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}
