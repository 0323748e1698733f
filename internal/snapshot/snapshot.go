// Metagraphus - Photo Metadata Analytics and Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/metagraphus

package snapshot

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/metagraphus/internal/logging"
	"github.com/tomtom215/metagraphus/internal/models"
)

// header is the fixed column layout of the snapshot file. Optional fields
// encode as empty cells; colors and tags encode as JSON cells.
var header = []string{
	"filename", "width", "height", "make", "taken_at",
	"latitude", "longitude", "altitude", "country",
	"dominant_colors", "tags",
}

// timeLayout is the encoding for taken_at cells
const timeLayout = time.RFC3339

// Load reads the snapshot at path. The second return value reports whether
// the file existed: (records, true, nil) on a hit, (nil, false, nil) when
// there is no snapshot yet. A file that exists but cannot be decoded is an
// error, not a miss.
func Load(path string) ([]models.Record, bool, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to open snapshot: %w", err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.FieldsPerRecord = len(header)

	rows, err := r.ReadAll()
	if err != nil {
		return nil, false, fmt.Errorf("failed to read snapshot %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, false, fmt.Errorf("snapshot %s has no header", path)
	}
	for i, col := range header {
		if rows[0][i] != col {
			return nil, false, fmt.Errorf("snapshot %s has unexpected header column %q", path, rows[0][i])
		}
	}

	records := make([]models.Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec, err := decodeRecord(row)
		if err != nil {
			return nil, false, fmt.Errorf("failed to decode snapshot row for %q: %w", row[0], err)
		}
		records = append(records, rec)
	}

	logging.Info().
		Str("path", path).
		Int("records", len(records)).
		Msg("Loaded metadata snapshot")

	return records, true, nil
}

// Save writes the snapshot atomically: the rows land in a temp file in the
// target directory which is then renamed over path, so readers never see a
// half-written snapshot.
func Save(path string, records []models.Record) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create snapshot directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".snapshot-*.csv")
	if err != nil {
		return fmt.Errorf("failed to create snapshot temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	w := csv.NewWriter(tmp)
	if err := w.Write(header); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write snapshot header: %w", err)
	}
	for i := range records {
		row, err := encodeRecord(&records[i])
		if err != nil {
			_ = tmp.Close()
			return fmt.Errorf("failed to encode snapshot row for %q: %w", records[i].Filename, err)
		}
		if err := w.Write(row); err != nil {
			_ = tmp.Close()
			return fmt.Errorf("failed to write snapshot row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to flush snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close snapshot temp file: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("failed to move snapshot into place: %w", err)
	}

	logging.Info().
		Str("path", path).
		Int("records", len(records)).
		Msg("Saved metadata snapshot")

	return nil
}

func encodeRecord(rec *models.Record) ([]string, error) {
	row := make([]string, len(header))
	row[0] = rec.Filename
	if rec.Width > 0 {
		row[1] = strconv.Itoa(rec.Width)
	}
	if rec.Height > 0 {
		row[2] = strconv.Itoa(rec.Height)
	}
	row[3] = rec.Make
	if rec.TakenAt != nil {
		row[4] = rec.TakenAt.Format(timeLayout)
	}
	if rec.Latitude != nil {
		row[5] = formatFloat(*rec.Latitude)
	}
	if rec.Longitude != nil {
		row[6] = formatFloat(*rec.Longitude)
	}
	if rec.Altitude != nil {
		row[7] = formatFloat(*rec.Altitude)
	}
	row[8] = rec.Country
	if len(rec.DominantColors) > 0 {
		cell, err := json.Marshal(rec.DominantColors)
		if err != nil {
			return nil, err
		}
		row[9] = string(cell)
	}
	if len(rec.Tags) > 0 {
		cell, err := json.Marshal(rec.Tags)
		if err != nil {
			return nil, err
		}
		row[10] = string(cell)
	}
	return row, nil
}

func decodeRecord(row []string) (models.Record, error) {
	rec := models.Record{
		Filename: row[0],
		Make:     row[3],
		Country:  row[8],
	}

	var err error
	if row[1] != "" {
		if rec.Width, err = strconv.Atoi(row[1]); err != nil {
			return rec, fmt.Errorf("bad width %q: %w", row[1], err)
		}
	}
	if row[2] != "" {
		if rec.Height, err = strconv.Atoi(row[2]); err != nil {
			return rec, fmt.Errorf("bad height %q: %w", row[2], err)
		}
	}
	if row[4] != "" {
		t, err := time.Parse(timeLayout, row[4])
		if err != nil {
			return rec, fmt.Errorf("bad taken_at %q: %w", row[4], err)
		}
		rec.TakenAt = &t
	}
	if rec.Latitude, err = parseFloatCell(row[5]); err != nil {
		return rec, fmt.Errorf("bad latitude %q: %w", row[5], err)
	}
	if rec.Longitude, err = parseFloatCell(row[6]); err != nil {
		return rec, fmt.Errorf("bad longitude %q: %w", row[6], err)
	}
	if (rec.Latitude == nil) != (rec.Longitude == nil) {
		return rec, fmt.Errorf("latitude and longitude must be paired")
	}
	if rec.Altitude, err = parseFloatCell(row[7]); err != nil {
		return rec, fmt.Errorf("bad altitude %q: %w", row[7], err)
	}
	if row[9] != "" {
		if err := json.Unmarshal([]byte(row[9]), &rec.DominantColors); err != nil {
			return rec, fmt.Errorf("bad dominant_colors cell: %w", err)
		}
	}
	if row[10] != "" {
		if err := json.Unmarshal([]byte(row[10]), &rec.Tags); err != nil {
			return rec, fmt.Errorf("bad tags cell: %w", err)
		}
	}
	return rec, nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func parseFloatCell(cell string) (*float64, error) {
	if cell == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return nil, err
	}
	return &f, nil
}
