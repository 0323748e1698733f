// Metagraphus - Photo Metadata Analytics and Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/metagraphus

package render

import (
	"bytes"
	"fmt"
	"math"
	"strings"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const treemapMargin = 16

// TreeMap renders a squarified treemap: one cell per value, cell area
// proportional to the value. Values arrive largest first from the
// aggregations, which keeps the layout quality high. Zero and negative
// values have no area and are dropped.
func TreeMap(spec Spec) ([]byte, error) {
	type item struct {
		label string
		value float64
		fill  drawing.Color
	}

	items := make([]item, 0, len(spec.Values))
	for i, v := range spec.Values {
		if v <= 0 {
			continue
		}
		fill := chart.GetDefaultColor(i)
		if i < len(spec.Colors) && spec.Colors[i] != "" {
			fill = drawing.ColorFromHex(strings.TrimPrefix(spec.Colors[i], "#"))
		}
		items = append(items, item{label: labelAt(spec.Labels, i), value: v, fill: fill})
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("treemap %q: no positive values to draw", spec.Title)
	}

	r, err := chart.PNG(chartWidth, chartHeight)
	if err != nil {
		return nil, fmt.Errorf("failed to create treemap renderer: %w", err)
	}
	font, err := chart.GetDefaultFont()
	if err != nil {
		return nil, fmt.Errorf("failed to load treemap font: %w", err)
	}

	fillRect(r, 0, 0, chartWidth, chartHeight, drawing.ColorWhite, drawing.ColorWhite, 0)

	r.SetFont(font)
	r.SetFontSize(16)
	r.SetFontColor(chart.DefaultTextColor)
	tb := r.MeasureText(spec.Title)
	r.Text(spec.Title, (chartWidth-tb.Width())/2, 30)

	values := make([]float64, len(items))
	for i, it := range items {
		values[i] = it.value
	}
	cells := squarify(values, cell{
		x: treemapMargin,
		y: 48,
		w: chartWidth - 2*treemapMargin,
		h: chartHeight - 48 - treemapMargin,
	})

	r.SetFontSize(12)
	for i, c := range cells {
		fillRect(r, c.x, c.y, c.w, c.h, items[i].fill, drawing.ColorWhite, 2)

		label := items[i].label
		r.SetFontColor(textColorFor(items[i].fill))
		lb := r.MeasureText(label)
		if float64(lb.Width()) < c.w-8 && c.h > 20 {
			r.Text(label, int(c.x)+5, int(c.y)+16)
			share := trimFloat(items[i].value)
			sb := r.MeasureText(share)
			if float64(sb.Width()) < c.w-8 && c.h > 36 {
				r.Text(share, int(c.x)+5, int(c.y)+32)
			}
		}
	}

	var buf bytes.Buffer
	if err := r.Save(&buf); err != nil {
		return nil, fmt.Errorf("failed to render treemap %q: %w", spec.Title, err)
	}
	return buf.Bytes(), nil
}

// cell is an axis-aligned rectangle in canvas coordinates.
type cell struct {
	x, y, w, h float64
}

// squarify lays the values out inside bounds with cell areas proportional
// to the values. Rows fill along the shorter free side and grow while the
// next value improves the worst aspect ratio in the row.
func squarify(values []float64, bounds cell) []cell {
	var total float64
	for _, v := range values {
		total += v
	}
	scale := bounds.w * bounds.h / total
	areas := make([]float64, len(values))
	for i, v := range values {
		areas[i] = v * scale
	}

	cells := make([]cell, 0, len(values))
	free := bounds
	i := 0
	for i < len(areas) {
		side := math.Min(free.w, free.h)
		rowSum := areas[i]
		j := i + 1
		worst := worstAspect(areas[i:j], rowSum, side)
		for j < len(areas) {
			nextSum := rowSum + areas[j]
			next := worstAspect(areas[i:j+1], nextSum, side)
			if next > worst {
				break
			}
			rowSum, worst = nextSum, next
			j++
		}
		cells = append(cells, layoutRow(areas[i:j], rowSum, &free)...)
		i = j
	}
	return cells
}

// worstAspect is the worst cell aspect ratio the row would have if laid
// along a free side of the given length.
func worstAspect(row []float64, sum, side float64) float64 {
	thickness := sum / side
	worst := 1.0
	for _, area := range row {
		length := area / thickness
		worst = math.Max(worst, math.Max(thickness/length, length/thickness))
	}
	return worst
}

// layoutRow slices one row off the free rectangle, along its shorter side.
func layoutRow(row []float64, sum float64, free *cell) []cell {
	out := make([]cell, 0, len(row))
	if free.w < free.h {
		t := sum / free.w
		x := free.x
		for _, area := range row {
			w := area / t
			out = append(out, cell{x: x, y: free.y, w: w, h: t})
			x += w
		}
		free.y += t
		free.h -= t
	} else {
		t := sum / free.h
		y := free.y
		for _, area := range row {
			h := area / t
			out = append(out, cell{x: free.x, y: y, w: t, h: h})
			y += h
		}
		free.x += t
		free.w -= t
	}
	return out
}

// textColorFor keeps cell labels readable against their fill.
func textColorFor(fill drawing.Color) drawing.Color {
	luma := 0.299*float64(fill.R) + 0.587*float64(fill.G) + 0.114*float64(fill.B)
	if luma < 140 {
		return drawing.ColorWhite
	}
	return drawing.Color{R: 0x22, G: 0x22, B: 0x22, A: 0xff}
}

// fillRect draws a filled, stroked rectangle on the raw renderer.
func fillRect(r chart.Renderer, x, y, w, h float64, fill, stroke drawing.Color, strokeWidth float64) {
	r.SetFillColor(fill)
	r.SetStrokeColor(stroke)
	r.SetStrokeWidth(strokeWidth)
	r.MoveTo(int(x), int(y))
	r.LineTo(int(x+w), int(y))
	r.LineTo(int(x+w), int(y+h))
	r.LineTo(int(x), int(y+h))
	r.Close()
	r.FillStroke()
}
