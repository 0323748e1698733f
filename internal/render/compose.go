// Metagraphus - Photo Metadata Analytics and Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/metagraphus

package render

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// ComposeVertical stacks rendered charts top to bottom into one PNG,
// centering narrower charts on a white canvas. A single chart passes
// through untouched.
func ComposeVertical(images [][]byte) ([]byte, error) {
	if len(images) == 0 {
		return nil, errors.New("no charts to compose")
	}
	if len(images) == 1 {
		return images[0], nil
	}

	decoded := make([]image.Image, 0, len(images))
	var width, height int
	for i, raw := range images {
		img, err := imaging.Decode(bytes.NewReader(raw))
		if err != nil {
			return nil, fmt.Errorf("failed to decode chart %d for composition: %w", i+1, err)
		}
		b := img.Bounds()
		if b.Dx() > width {
			width = b.Dx()
		}
		height += b.Dy()
		decoded = append(decoded, img)
	}

	canvas := imaging.New(width, height, color.White)
	y := 0
	for _, img := range decoded {
		b := img.Bounds()
		canvas = imaging.Paste(canvas, img, image.Pt((width-b.Dx())/2, y))
		y += b.Dy()
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, canvas, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode composed chart: %w", err)
	}
	return buf.Bytes(), nil
}
