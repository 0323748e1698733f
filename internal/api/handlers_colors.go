// Metagraphus - Photo Metadata Analytics and Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/metagraphus

package api

import (
	"errors"
	"net/http"

	"github.com/tomtom215/metagraphus/internal/analytics"
	"github.com/tomtom215/metagraphus/internal/colorname"
	"github.com/tomtom215/metagraphus/internal/render"
)

const defaultColorIntervals = 5

// GraphDominantColor handles /graph/dominant-color: dominant-color area
// shares summed per named color across the whole table.
//
// Bars, slices and treemap cells are painted with a representative hex of
// their color name. A share sum above 100 means the stored percentages were
// corrupt and is rejected as INVARIANT_ERROR rather than plotted.
//
// @Summary Graph dominant colors
// @Description Sums dominant-color area shares per named color, top nb_intervals shown
// @Tags Graphs
// @Produce png
// @Param nb_intervals query int false "Top-N colors" default(5)
// @Param graph_type query string false "bar, pie, treemap or all" default(all)
// @Success 200 {file} binary "Rendered chart"
// @Failure 400 {object} models.APIResponse "Invalid parameters"
// @Router /graph/dominant-color [post]
func (h *Handler) GraphDominantColor(w http.ResponseWriter, r *http.Request) {
	req := ColorGraphRequest{
		NbIntervals: getIntParam(r, "nb_intervals", defaultColorIntervals),
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

	shares, err := analytics.ColorShares(records, colorname.Nearest, colorname.HexFor)
	if err != nil {
		if errors.Is(err, analytics.ErrColorShareOverflow) {
			respondError(w, http.StatusInternalServerError, "INVARIANT_ERROR", "Sum of color shares exceeds 100", err)
			return
		}
		respondError(w, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to aggregate dominant colors", err)
		return
	}
	if len(shares) > req.NbIntervals {
		shares = shares[:req.NbIntervals]
	}

	labels := make([]string, len(shares))
	values := make([]float64, len(shares))
	colors := make([]string, len(shares))
	for i, s := range shares {
		labels[i] = s.Name
		values[i] = s.Share
		colors[i] = s.Hex
	}
	spec := render.Spec{
		Title:  "Top Colors",
		XLabel: "Color",
		YLabel: "Percentage",
		Labels: labels,
		Values: values,
		Colors: colors,
	}

	h.respondChart(w, "dominant_color", func() ([]byte, error) {
		switch req.GraphType {
		case "bar":
			return render.Bar(spec)
		case "pie":
			return render.Pie(spec)
		case "treemap":
			return render.TreeMap(spec)
		default:
			return composeAll(
				func() ([]byte, error) { return render.Bar(spec) },
				func() ([]byte, error) { return render.Pie(spec) },
				func() ([]byte, error) { return render.TreeMap(spec) },
			)
		}
	})
}
