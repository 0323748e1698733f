// Metagraphus - Photo Metadata Analytics and Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/metagraphus

package render

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Chart canvas dimensions. Pies render square so the disc is not squashed.
const (
	chartWidth  = 1024
	chartHeight = 640
	pieSize     = 800
)

// Spec describes one chart: title, axis captions and labelled values with
// optional per-value colors.
type Spec struct {
	Title  string
	XLabel string
	YLabel string
	Labels []string
	Values []float64
	// Colors holds one hex color per value ("#1f77b4" or "1f77b4"); when
	// empty the default palette applies.
	Colors []string
	// XValues positions curve points on the numeric x axis. Curve falls
	// back to the value index when empty.
	XValues []float64
}

// HistogramSpec describes a histogram: raw samples to bin plus the number
// of equal-width bins spanning their range.
type HistogramSpec struct {
	Title   string
	XLabel  string
	YLabel  string
	Samples []float64
	Bins    int
}

// Bar renders a vertical bar chart.
func Bar(spec Spec) ([]byte, error) {
	if len(spec.Values) == 0 {
		return nil, fmt.Errorf("bar chart %q: no values to draw", spec.Title)
	}

	bars := make([]chart.Value, 0, len(spec.Values))
	for i, v := range spec.Values {
		bars = append(bars, chart.Value{
			Label: labelAt(spec.Labels, i),
			Value: v,
			Style: valueStyle(spec.Colors, i),
		})
	}

	barWidth, barSpacing := barLayout(len(bars))
	graph := chart.BarChart{
		Title:        spec.Title,
		Width:        chartWidth,
		Height:       chartHeight,
		BarWidth:     barWidth,
		BarSpacing:   barSpacing,
		Background:   chart.Style{Padding: chart.Box{Top: 48}},
		UseBaseValue: true,
		YAxis: chart.YAxis{
			Name:           spec.YLabel,
			ValueFormatter: chart.IntValueFormatter,
			Range:          countRange(spec.Values),
		},
		Bars:     bars,
		Elements: []chart.Renderable{axisCaptions(spec.XLabel, spec.YLabel)},
	}
	buf, err := renderPNG(graph.Render)
	if err != nil {
		return nil, fmt.Errorf("failed to render bar chart %q: %w", spec.Title, err)
	}
	return buf, nil
}

// Pie renders a pie chart; each slice label carries its percentage share.
func Pie(spec Spec) ([]byte, error) {
	if len(spec.Values) == 0 {
		return nil, fmt.Errorf("pie chart %q: no values to draw", spec.Title)
	}

	var total float64
	for _, v := range spec.Values {
		total += v
	}
	if total <= 0 {
		return nil, fmt.Errorf("pie chart %q: values sum to zero", spec.Title)
	}

	slices := make([]chart.Value, 0, len(spec.Values))
	for i, v := range spec.Values {
		if v <= 0 {
			continue
		}
		slices = append(slices, chart.Value{
			Label: fmt.Sprintf("%s %.1f%%", labelAt(spec.Labels, i), v/total*100),
			Value: v,
			Style: valueStyle(spec.Colors, i),
		})
	}

	graph := chart.PieChart{
		Title:      spec.Title,
		Width:      pieSize,
		Height:     pieSize,
		Background: chart.Style{Padding: chart.Box{Top: 48}},
		Values:     slices,
	}
	buf, err := renderPNG(graph.Render)
	if err != nil {
		return nil, fmt.Errorf("failed to render pie chart %q: %w", spec.Title, err)
	}
	return buf, nil
}

// Curve renders a continuous line over ordered points. Callers supply
// XValues already sorted; years feed in ascending so the line reads
// left to right.
func Curve(spec Spec) ([]byte, error) {
	if len(spec.Values) == 0 {
		return nil, fmt.Errorf("curve chart %q: no values to draw", spec.Title)
	}

	xs := spec.XValues
	if len(xs) == 0 {
		xs = make([]float64, len(spec.Values))
		for i := range xs {
			xs[i] = float64(i)
		}
	}
	if len(xs) != len(spec.Values) {
		return nil, fmt.Errorf("curve chart %q: %d x values for %d y values", spec.Title, len(xs), len(spec.Values))
	}

	graph := chart.Chart{
		Title:  spec.Title,
		Width:  chartWidth,
		Height: chartHeight,
		Background: chart.Style{
			Padding: chart.Box{Top: 48},
		},
		XAxis: chart.XAxis{
			Name:           spec.XLabel,
			Range:          paddedRange(xs),
			ValueFormatter: chart.IntValueFormatter,
		},
		YAxis: chart.YAxis{
			Name:           spec.YLabel,
			Range:          paddedRange(spec.Values),
			ValueFormatter: chart.IntValueFormatter,
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				XValues: xs,
				YValues: spec.Values,
				Style: chart.Style{
					StrokeColor: chart.ColorBlue,
					StrokeWidth: 2.0,
				},
			},
		},
	}
	buf, err := renderPNG(graph.Render)
	if err != nil {
		return nil, fmt.Errorf("failed to render curve chart %q: %w", spec.Title, err)
	}
	return buf, nil
}

// Histogram bins the samples into equal-width intervals across their range
// and renders the counts as bars labelled with the interval edges. The last
// bin includes its upper edge.
func Histogram(spec HistogramSpec) ([]byte, error) {
	if len(spec.Samples) == 0 {
		return nil, fmt.Errorf("histogram %q: no samples to bin", spec.Title)
	}
	if spec.Bins <= 0 {
		return nil, fmt.Errorf("histogram %q: bin count %d must be positive", spec.Title, spec.Bins)
	}

	lo, hi := spec.Samples[0], spec.Samples[0]
	for _, v := range spec.Samples[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	// A flat sample set still gets a drawable interval.
	if lo == hi {
		lo, hi = lo-0.5, hi+0.5
	}

	width := (hi - lo) / float64(spec.Bins)
	counts := make([]float64, spec.Bins)
	for _, v := range spec.Samples {
		idx := int((v - lo) / width)
		if idx >= spec.Bins {
			idx = spec.Bins - 1
		}
		counts[idx]++
	}

	labels := make([]string, spec.Bins)
	for i := range labels {
		labels[i] = fmt.Sprintf("%s-%s",
			trimFloat(lo+float64(i)*width),
			trimFloat(lo+float64(i+1)*width))
	}

	return Bar(Spec{
		Title:  spec.Title,
		XLabel: spec.XLabel,
		YLabel: spec.YLabel,
		Labels: labels,
		Values: counts,
	})
}

// renderPNG drives a go-chart Render method into a byte slice.
func renderPNG(render func(chart.RendererProvider, io.Writer) error) ([]byte, error) {
	var buf bytes.Buffer
	if err := render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func labelAt(labels []string, i int) string {
	if i < len(labels) {
		return labels[i]
	}
	return strconv.Itoa(i)
}

// valueStyle resolves the per-value color override; the zero style keeps
// the palette default.
func valueStyle(colors []string, i int) chart.Style {
	if i >= len(colors) || colors[i] == "" {
		return chart.Style{}
	}
	fill := drawing.ColorFromHex(strings.TrimPrefix(colors[i], "#"))
	return chart.Style{
		FillColor:   fill,
		StrokeColor: fill,
		StrokeWidth: 1.0,
	}
}

// barLayout sizes bars and their spacing so every bar fits the canvas
// regardless of count.
func barLayout(n int) (width, spacing int) {
	const usable = chartWidth - 160
	slot := usable / n
	width = slot * 3 / 5
	if width > 80 {
		width = 80
	}
	if width < 3 {
		width = 3
	}
	spacing = slot - width
	if spacing < 2 {
		spacing = 2
	}
	return width, spacing
}

// countRange anchors the bar value axis at zero and stretches it to the
// largest count, keeping the range non-degenerate for uniform bars.
func countRange(vs []float64) chart.Range {
	var max float64
	for _, v := range vs {
		max = math.Max(max, v)
	}
	if max <= 0 {
		max = 1
	}
	return &chart.ContinuousRange{Min: 0, Max: max}
}

// paddedRange pins a degenerate axis range open so single-point series
// still render.
func paddedRange(vs []float64) chart.Range {
	lo, hi := vs[0], vs[0]
	for _, v := range vs[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if lo == hi {
		return &chart.ContinuousRange{Min: lo - 1, Max: hi + 1}
	}
	return &chart.ContinuousRange{Min: lo, Max: hi}
}

// axisCaptions draws the axis captions on a bar chart, which go-chart only
// supports natively on continuous charts: the x caption centered under the
// plot, the y caption rotated along the left edge.
func axisCaptions(xLabel, yLabel string) chart.Renderable {
	return func(r chart.Renderer, canvasBox chart.Box, defaults chart.Style) {
		r.SetFont(defaults.GetFont())
		r.SetFontSize(12)
		r.SetFontColor(chart.DefaultTextColor)

		if xLabel != "" {
			tb := r.MeasureText(xLabel)
			x := canvasBox.Left + (canvasBox.Width()-tb.Width())/2
			r.Text(xLabel, x, canvasBox.Bottom+42)
		}
		if yLabel != "" {
			tb := r.MeasureText(yLabel)
			ty := canvasBox.Top + (canvasBox.Height()-tb.Width())/2
			r.SetTextRotation(math.Pi / 2)
			r.Text(yLabel, canvasBox.Left-34, ty)
			r.ClearTextRotation()
		}
	}
}

// trimFloat formats an interval edge rounded to one decimal, dropping a
// trailing ".0".
func trimFloat(v float64) string {
	return strconv.FormatFloat(math.Round(v*10)/10, 'f', -1, 64)
}
