// Metagraphus - Photo Metadata Analytics and Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/metagraphus

package ingest

import (
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	_ "golang.org/x/image/tiff"

	"github.com/tomtom215/metagraphus/internal/database"
	"github.com/tomtom215/metagraphus/internal/logging"
)

// imageExtensions are the file types the directory walk picks up
var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".tif":  true,
	".tiff": true,
}

// Ingester walks image directories and writes extracted metadata to the
// store. Filenames are stored relative to the walked root, matching how
// the visualization side keys its table.
type Ingester struct {
	db *database.DB
}

// New creates an ingester writing through the given store.
func New(db *database.DB) *Ingester {
	return &Ingester{db: db}
}

// Result summarizes one directory run.
type Result struct {
	Ingested int
	Skipped  int
}

// Run walks root and ingests every image file found. Per-file failures
// are logged and counted as skipped, never fatal; the walk itself failing
// (root missing, permission) is.
func (ing *Ingester) Run(ctx context.Context, root string) (Result, error) {
	var res Result

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if d.IsDir() || !imageExtensions[strings.ToLower(filepath.Ext(path))] {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			rel = path
		}

		if err := ing.ingestFile(ctx, path, rel); err != nil {
			logging.Warn().Err(err).Str("file", rel).Msg("Skipping file")
			res.Skipped++
			return nil
		}
		res.Ingested++
		return nil
	})
	if err != nil {
		return res, fmt.Errorf("directory walk failed: %w", err)
	}

	logging.Info().
		Str("root", root).
		Int("ingested", res.Ingested).
		Int("skipped", res.Skipped).
		Msg("Ingest run complete")
	return res, nil
}

// ingestFile extracts one file's metadata and writes the key/value rows.
// EXIF and dominant colors are each best-effort; only an undecodable
// image or a failed insert rejects the file.
func (ing *Ingester) ingestFile(ctx context.Context, path, name string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open: %w", err)
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat: %w", err)
	}

	pairs := make(map[string]string)

	data, err := extractExifData(f, info.Size(), strings.ToLower(filepath.Ext(path)))
	if err != nil {
		logging.Debug().Err(err).Str("file", name).Msg("EXIF extraction failed")
	}
	for k, v := range exifPairs(data) {
		pairs[k] = v
	}

	if _, err := f.Seek(0, 0); err != nil {
		return fmt.Errorf("failed to rewind: %w", err)
	}
	img, _, err := image.Decode(f)
	if err != nil {
		return fmt.Errorf("undecodable image: %w", err)
	}

	bounds := img.Bounds()
	pairs["ImageWidth"] = strconv.Itoa(bounds.Dx())
	pairs["ImageHeight"] = strconv.Itoa(bounds.Dy())

	if colors, err := dominantColors(img); err != nil {
		logging.Debug().Err(err).Str("file", name).Msg("Dominant color extraction failed")
	} else if len(colors) > 0 {
		encoded, err := encodeColorList(colors)
		if err != nil {
			return err
		}
		pairs["dominant_color"] = encoded
	}

	if err := ing.db.InsertFileMetadata(ctx, name, pairs); err != nil {
		return fmt.Errorf("failed to store metadata: %w", err)
	}

	logging.Debug().
		Str("file", name).
		Int("keys", len(pairs)).
		Msg("Ingested file")
	return nil
}
