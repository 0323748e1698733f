// Metagraphus - Photo Metadata Analytics and Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/metagraphus

package api

import (
	"net/http"

	"github.com/tomtom215/metagraphus/internal/analytics"
	"github.com/tomtom215/metagraphus/internal/render"
)

const defaultBrandColumns = 5

// GraphBrand handles /graph/brand: images counted per cleaned camera make,
// Undefined included.
//
// @Summary Graph images per camera brand
// @Description Counts images per cleaned camera make, top nb_columns shown
// @Tags Graphs
// @Produce png
// @Param nb_columns query int false "Top-N makes" default(5)
// @Param graph_type query string false "bar, pie or all" default(all)
// @Success 200 {file} binary "Rendered chart"
// @Failure 400 {object} models.APIResponse "Invalid parameters"
// @Router /graph/brand [post]
func (h *Handler) GraphBrand(w http.ResponseWriter, r *http.Request) {
	req := BrandGraphRequest{
		NbColumns: getIntParam(r, "nb_columns", defaultBrandColumns),
		GraphType: getStringParam(r, "graph_type", "all"),
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	records, ok := h.table(w, r)
	if !ok {
		return
	}

	brands := analytics.BrandDistribution(records)
	if len(brands) > req.NbColumns {
		brands = brands[:req.NbColumns]
	}

	labels := make([]string, len(brands))
	values := make([]float64, len(brands))
	for i, b := range brands {
		labels[i] = b.Make
		values[i] = float64(b.Count)
	}
	spec := render.Spec{
		Title:  "Number of images per brand",
		XLabel: "Brand",
		YLabel: "Number of images",
		Labels: labels,
		Values: values,
	}

	h.respondChart(w, "brand", func() ([]byte, error) {
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
