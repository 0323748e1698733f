// Metagraphus - Photo Metadata Analytics and Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/metagraphus

package api

import (
	"net/http"
	"strconv"

	"github.com/tomtom215/metagraphus/internal/analytics"
	"github.com/tomtom215/metagraphus/internal/models"
	"github.com/tomtom215/metagraphus/internal/render"
)

const defaultDatetimeIntervals = 10

// GraphDatetime handles /graph/datetime: images counted per capture year.
//
// The bar and pie show the top nb_intervals years by count. The standalone
// curve draws the full year series in ascending order; inside graph_type=all
// the curve covers the same truncated years as the bar and pie, re-sorted
// ascending, so all three panels describe one data set.
//
// @Summary Graph images per capture year
// @Description Counts images per year from the cleaned capture timestamps
// @Tags Graphs
// @Produce png
// @Param nb_intervals query int false "Top-N years for bar and pie" default(10)
// @Param graph_type query string false "bar, pie, curve or all" default(all)
// @Success 200 {file} binary "Rendered chart"
// @Failure 400 {object} models.APIResponse "Invalid parameters"
// @Router /graph/datetime [post]
func (h *Handler) GraphDatetime(w http.ResponseWriter, r *http.Request) {
	req := DatetimeGraphRequest{
		NbIntervals: getIntParam(r, "nb_intervals", defaultDatetimeIntervals),
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

	top := analytics.YearDistribution(records)
	if len(top) > req.NbIntervals {
		top = top[:req.NbIntervals]
	}

	h.respondChart(w, "datetime", func() ([]byte, error) {
		switch req.GraphType {
		case "bar":
			return render.Bar(yearSpec(top))
		case "pie":
			return render.Pie(yearSpec(top))
		case "curve":
			return render.Curve(yearSpec(analytics.YearSeries(records)))
		default:
			line := make([]models.YearCount, len(top))
			copy(line, top)
			analytics.SortYearsAscending(line)
			return composeAll(
				func() ([]byte, error) { return render.Bar(yearSpec(top)) },
				func() ([]byte, error) { return render.Pie(yearSpec(top)) },
				func() ([]byte, error) { return render.Curve(yearSpec(line)) },
			)
		}
	})
}

func yearSpec(counts []models.YearCount) render.Spec {
	labels := make([]string, len(counts))
	values := make([]float64, len(counts))
	xs := make([]float64, len(counts))
	for i, c := range counts {
		labels[i] = strconv.Itoa(c.Year)
		values[i] = float64(c.Count)
		xs[i] = float64(c.Year)
	}
	return render.Spec{
		Title:   "Number of images per year",
		XLabel:  "Year",
		YLabel:  "Number of images",
		Labels:  labels,
		Values:  values,
		XValues: xs,
	}
}
