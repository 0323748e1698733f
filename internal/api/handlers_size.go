// Metagraphus - Photo Metadata Analytics and Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/metagraphus

package api

import (
	"net/http"

	"github.com/tomtom215/metagraphus/internal/analytics"
	"github.com/tomtom215/metagraphus/internal/models"
	"github.com/tomtom215/metagraphus/internal/render"
)

// Default parameters of the size endpoints
const (
	defaultSizeIntervals       = 7
	defaultStaticIntervalSize  = 200
	defaultStaticSizeIntervals = 4
)

// GraphSizeDynamic handles /graph/size and /graph/size/dynamic: images
// bucketed by their smaller pixel dimension into nb_intervals uniform bins
// over (0, max].
//
// @Summary Graph images per size category (dynamic bins)
// @Description Buckets images by min(width, height) into uniformly sized intervals computed from the observed maximum
// @Tags Graphs
// @Produce png
// @Param nb_intervals query int false "Number of intervals" default(7)
// @Param graph_type query string false "bar, pie or all" default(all)
// @Success 200 {file} binary "Rendered chart"
// @Failure 400 {object} models.APIResponse "Invalid parameters"
// @Router /graph/size [post]
func (h *Handler) GraphSizeDynamic(w http.ResponseWriter, r *http.Request) {
	req := SizeGraphRequest{
		NbIntervals: getIntParam(r, "nb_intervals", defaultSizeIntervals),
		GraphType:   getStringParam(r, "graph_type", "all"),
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	records, ok := h.table(w, r)
	if !ok {
		return
	}

	buckets := analytics.SizeDistribution(records, req.NbIntervals)
	spec := sizeSpec(buckets, "Image size")

	h.respondChart(w, "size", func() ([]byte, error) {
		switch req.GraphType {
		case "bar":
			return render.Bar(spec)
		case "pie":
			return render.Pie(spec)
		default:
			return composeAll(
				func() ([]byte, error) { return render.Bar(spec) },
				func() ([]byte, error) { return render.Pie(spec) },
			)
		}
	})
}

// GraphSizeStatic handles /graph/size/static: fixed-width size bins,
// always a bar chart.
//
// @Summary Graph images per size category (fixed bins)
// @Description Buckets images by min(width, height) into nb_intervals bins of interval_size pixels each
// @Tags Graphs
// @Produce png
// @Param interval_size query int false "Bin width in pixels" default(200)
// @Param nb_intervals query int false "Number of intervals" default(4)
// @Success 200 {file} binary "Rendered chart"
// @Failure 400 {object} models.APIResponse "Invalid parameters"
// @Router /graph/size/static [post]
func (h *Handler) GraphSizeStatic(w http.ResponseWriter, r *http.Request) {
	req := StaticSizeGraphRequest{
		IntervalSize: getIntParam(r, "interval_size", defaultStaticIntervalSize),
		NbIntervals:  getIntParam(r, "nb_intervals", defaultStaticSizeIntervals),
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	records, ok := h.table(w, r)
	if !ok {
		return
	}

	buckets := analytics.SizeDistributionStatic(records, req.IntervalSize, req.NbIntervals)
	spec := sizeSpec(buckets, "Size category")

	h.respondChart(w, "size_static", func() ([]byte, error) {
		return render.Bar(spec)
	})
}

// sizeSpec converts size buckets into a render spec. The static and
// dynamic variants share everything but the x-axis caption.
func sizeSpec(buckets []models.SizeBucket, xLabel string) render.Spec {
	labels := make([]string, len(buckets))
	values := make([]float64, len(buckets))
	for i, b := range buckets {
		labels[i] = b.Range
		values[i] = float64(b.Count)
	}
	return render.Spec{
		Title:  "Number of images per size category",
		XLabel: xLabel,
		YLabel: "Number of images",
		Labels: labels,
		Values: values,
	}
}
