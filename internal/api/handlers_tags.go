// Metagraphus - Photo Metadata Analytics and Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/metagraphus

package api

import (
	"net/http"

	"github.com/tomtom215/metagraphus/internal/analytics"
	"github.com/tomtom215/metagraphus/internal/render"
	"github.com/tomtom215/metagraphus/internal/tags"
)

const defaultTagIntervals = 5

// GraphTagsTop handles /graph/tags/top: the most frequent descriptive tags
// across all images.
//
// @Summary Graph top tags
// @Description Counts every tag occurrence across the table, top nb_intervals shown
// @Tags Graphs
// @Produce png
// @Param nb_intervals query int false "Top-N tags" default(5)
// @Param graph_type query string false "bar, pie or all" default(all)
// @Success 200 {file} binary "Rendered chart"
// @Failure 400 {object} models.APIResponse "Invalid parameters"
// @Router /graph/tags/top [post]
func (h *Handler) GraphTagsTop(w http.ResponseWriter, r *http.Request) {
	req := TagGraphRequest{
		NbIntervals: getIntParam(r, "nb_intervals", defaultTagIntervals),
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

	counts := analytics.TagFrequency(records, req.NbIntervals)
	labels := make([]string, len(counts))
	values := make([]float64, len(counts))
	for i, c := range counts {
		labels[i] = c.Tag
		values[i] = float64(c.Count)
	}
	spec := render.Spec{
		Title:  "Top Tags",
		XLabel: "Tag",
		YLabel: "Count",
		Labels: labels,
		Values: values,
	}

	h.respondChart(w, "tags_top", func() ([]byte, error) {
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

// GraphTagsDendrogram handles /graph/tags/dendrogram: every distinct tag is
// assigned to the caller category it is most similar to, then the
// assignments are clustered by average linkage and drawn as a dendrogram.
//
// Answers SERVICE_ERROR when no embeddings model is configured.
//
// @Summary Dendrogram of categorized tags
// @Description Assigns tags to the given categories by embedding similarity and clusters the assignments
// @Tags Graphs
// @Produce png
// @Param categories query string true "Comma-separated category names"
// @Success 200 {file} binary "Rendered chart"
// @Failure 400 {object} models.APIResponse "Invalid parameters"
// @Failure 503 {object} models.APIResponse "No embeddings model configured"
// @Router /graph/tags/dendrogram [post]
func (h *Handler) GraphTagsDendrogram(w http.ResponseWriter, r *http.Request) {
	req := DendrogramRequest{
		Categories: parseCommaSeparated(getStringParam(r, "categories", "")),
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}
	if h.categorizer == nil {
		respondError(w, http.StatusServiceUnavailable, "SERVICE_ERROR",
			"Tag categorization requires a configured embeddings model", nil)
		return
	}

	records, ok := h.table(w, r)
	if !ok {
		return
	}

	leaves := h.categorizer.Categorize(records, req.Categories)
	if len(leaves) == 0 {
		respondError(w, http.StatusInternalServerError, "RENDER_ERROR",
			"No tags to cluster", nil)
		return
	}

	merges := tags.Linkage(leaves, tags.CategoryDistance)
	labels := make([]string, len(leaves))
	for i, leaf := range leaves {
		labels[i] = leaf.Tag
	}

	h.respondChart(w, "tags_dendrogram", func() ([]byte, error) {
		return render.Dendrogram(merges, labels)
	})
}
