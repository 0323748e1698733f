// Metagraphus - Photo Metadata Analytics and Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/metagraphus

package render

import (
	"bytes"
	"fmt"
	"math"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/tomtom215/metagraphus/internal/tags"
)

// Dendrogram canvas bands: plot above, rotated leaf labels below.
const (
	dendroHeight    = 640
	dendroLabelBand = 170
	dendroTop       = 30
	dendroSide      = 40
)

var dendroLinkColor = drawing.Color{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}

// Dendrogram draws the merge steps as a top-rooted dendrogram: leaves along
// the bottom in tree order, each merge a bracket at the height of its
// distance. labels must carry one entry per leaf, indexed like the merge
// steps index their leaves.
func Dendrogram(merges []tags.MergeStep, labels []string) ([]byte, error) {
	n := len(labels)
	if n < 2 {
		return nil, fmt.Errorf("dendrogram needs at least two leaves, got %d", n)
	}
	if len(merges) != n-1 {
		return nil, fmt.Errorf("dendrogram with %d leaves needs %d merges, got %d", n, n-1, len(merges))
	}

	// Wide trees stretch the canvas instead of crowding the leaves.
	width := n*26 + 2*dendroSide
	if width < chartWidth {
		width = chartWidth
	}

	r, err := chart.PNG(width, dendroHeight)
	if err != nil {
		return nil, fmt.Errorf("failed to create dendrogram renderer: %w", err)
	}
	font, err := chart.GetDefaultFont()
	if err != nil {
		return nil, fmt.Errorf("failed to load dendrogram font: %w", err)
	}
	fillRect(r, 0, 0, float64(width), dendroHeight, drawing.ColorWhite, drawing.ColorWhite, 0)

	order := leafOrder(merges, n)
	bottom := dendroHeight - dendroLabelBand
	slot := float64(width-2*dendroSide) / float64(n)

	// Node coordinates, leaves first. Cluster n+i is filled in by step i.
	xs := make([]float64, n+len(merges))
	ys := make([]float64, n+len(merges))
	for pos, leaf := range order {
		xs[leaf] = dendroSide + (float64(pos)+0.5)*slot
		ys[leaf] = float64(bottom)
	}

	maxDist := 0.0
	for _, step := range merges {
		maxDist = math.Max(maxDist, step.Distance)
	}
	if maxDist == 0 {
		maxDist = 1
	}
	scaleY := func(d float64) float64 {
		return float64(bottom) - d/maxDist*float64(bottom-dendroTop)
	}

	r.SetStrokeColor(dendroLinkColor)
	r.SetStrokeWidth(1.5)
	for i, step := range merges {
		yc := scaleY(step.Distance)
		r.MoveTo(int(xs[step.Left]), int(ys[step.Left]))
		r.LineTo(int(xs[step.Left]), int(yc))
		r.LineTo(int(xs[step.Right]), int(yc))
		r.LineTo(int(xs[step.Right]), int(ys[step.Right]))
		r.Stroke()

		xs[n+i] = (xs[step.Left] + xs[step.Right]) / 2
		ys[n+i] = yc
	}

	strokeLine(r, dendroSide, bottom, width-dendroSide, bottom,
		drawing.Color{R: 0xb0, G: 0xb0, B: 0xb0, A: 0xff}, 1)

	r.SetFont(font)
	r.SetFontSize(11)
	r.SetFontColor(chart.DefaultTextColor)
	r.SetTextRotation(math.Pi / 2)
	for _, leaf := range order {
		r.Text(labels[leaf], int(xs[leaf])+4, bottom+8)
	}
	r.ClearTextRotation()

	var buf bytes.Buffer
	if err := r.Save(&buf); err != nil {
		return nil, fmt.Errorf("failed to render dendrogram: %w", err)
	}
	return buf.Bytes(), nil
}

// leafOrder walks the linkage tree from the root, left child before right,
// and returns the leaf ids in drawing order.
func leafOrder(merges []tags.MergeStep, n int) []int {
	order := make([]int, 0, n)
	var walk func(id int)
	walk = func(id int) {
		if id < n {
			order = append(order, id)
			return
		}
		step := merges[id-n]
		walk(step.Left)
		walk(step.Right)
	}
	walk(n + len(merges) - 1)
	return order
}

// strokeLine draws one straight segment on the raw renderer.
func strokeLine(r chart.Renderer, x0, y0, x1, y1 int, c drawing.Color, width float64) {
	r.SetStrokeColor(c)
	r.SetStrokeWidth(width)
	r.MoveTo(x0, y0)
	r.LineTo(x1, y1)
	r.Stroke()
}
