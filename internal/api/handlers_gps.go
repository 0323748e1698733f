// Metagraphus - Photo Metadata Analytics and Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/metagraphus

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/metagraphus/internal/analytics"
	"github.com/tomtom215/metagraphus/internal/metrics"
	"github.com/tomtom215/metagraphus/internal/render"
)

// Default parameters of the GPS endpoints
const (
	defaultCountryIntervals  = 5
	defaultAltitudeIntervals = 5
)

// GraphMap handles /graph/gps/map: every geolocated image pinned on a world
// map, as an interactive Leaflet document or a rendered PNG scatter.
//
// @Summary Map of geolocated images
// @Description Pins every image with GPS coordinates on a world map centered at (0,0)
// @Tags Graphs
// @Produce html,png
// @Param output_type query string false "html or png" default(html)
// @Success 200 {file} binary "Map document or image"
// @Failure 400 {object} models.APIResponse "Invalid parameters"
// @Router /graph/gps/map [post]
func (h *Handler) GraphMap(w http.ResponseWriter, r *http.Request) {
	req := MapRequest{
		OutputType: getStringParam(r, "output_type", "html"),
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	records, ok := h.tableWithCountries(w, r)
	if !ok {
		return
	}
	markers := analytics.MapMarkers(records)

	if req.OutputType == "html" {
		start := time.Now()
		html, err := render.MapHTML(markers)
		metrics.RecordRender("map_html", time.Since(start), err)
		if err != nil {
			respondError(w, http.StatusInternalServerError, "RENDER_ERROR", "Failed to render map", err)
			return
		}
		respondHTML(w, html)
		return
	}

	h.respondChart(w, "map_png", func() ([]byte, error) {
		return render.MapPNG(markers)
	})
}

// GraphCountry handles /graph/gps/country: geolocated images counted per
// reverse-geocoded country.
//
// @Summary Graph images per country
// @Description Counts images per country resolved from GPS coordinates, top nb_intervals shown
// @Tags Graphs
// @Produce png
// @Param nb_intervals query int false "Top-N countries" default(5)
// @Param graph_type query string false "bar, pie or all" default(all)
// @Success 200 {file} binary "Rendered chart"
// @Failure 400 {object} models.APIResponse "Invalid parameters"
// @Router /graph/gps/country [post]
func (h *Handler) GraphCountry(w http.ResponseWriter, r *http.Request) {
	req := CountryGraphRequest{
		NbIntervals: getIntParam(r, "nb_intervals", defaultCountryIntervals),
		GraphType:   getStringParam(r, "graph_type", "all"),
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	records, ok := h.tableWithCountries(w, r)
	if !ok {
		return
	}

	countries := analytics.CountryDistribution(records)
	if len(countries) > req.NbIntervals {
		countries = countries[:req.NbIntervals]
	}

	labels := make([]string, len(countries))
	values := make([]float64, len(countries))
	for i, c := range countries {
		labels[i] = c.Country
		values[i] = float64(c.Count)
	}
	spec := render.Spec{
		Title:  "Number of images by country",
		XLabel: "Country",
		YLabel: "Image Count",
		Labels: labels,
		Values: values,
	}

	h.respondChart(w, "country", func() ([]byte, error) {
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

// GraphAltitude handles /graph/gps/altitude: images with a positive
// altitude counted into bands over [0, max).
//
// The histogram re-bins the raw altitude samples; bar and pie use the
// precomputed bands. graph_type=all stacks histogram, bar and pie.
//
// @Summary Graph images per altitude band
// @Description Counts images with positive GPS altitude into nb_intervals bands
// @Tags Graphs
// @Produce png
// @Param nb_intervals query int false "Number of bands" default(5)
// @Param graph_type query string false "histogram, bar, pie or all" default(all)
// @Success 200 {file} binary "Rendered chart"
// @Failure 400 {object} models.APIResponse "Invalid parameters"
// @Router /graph/gps/altitude [post]
func (h *Handler) GraphAltitude(w http.ResponseWriter, r *http.Request) {
	req := AltitudeGraphRequest{
		NbIntervals: getIntParam(r, "nb_intervals", defaultAltitudeIntervals),
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

	bands := analytics.AltitudeDistribution(records, req.NbIntervals)
	labels := make([]string, len(bands))
	values := make([]float64, len(bands))
	for i, b := range bands {
		labels[i] = b.Range
		values[i] = float64(b.Count)
	}
	spec := render.Spec{
		Title:  "Number of images by altitude",
		XLabel: "Altitude",
		YLabel: "Image Count",
		Labels: labels,
		Values: values,
	}
	histo := render.HistogramSpec{
		Title:   "Number of images by altitude",
		XLabel:  "Altitude",
		YLabel:  "Image Count",
		Samples: analytics.AltitudeSamples(records),
		Bins:    req.NbIntervals,
	}

	h.respondChart(w, "altitude", func() ([]byte, error) {
		switch req.GraphType {
		case "histogram":
			return render.Histogram(histo)
		case "bar":
			return render.Bar(spec)
		case "pie":
			return render.Pie(spec)
		default:
			return composeAll(
				func() ([]byte, error) { return render.Histogram(histo) },
				func() ([]byte, error) { return render.Bar(spec) },
				func() ([]byte, error) { return render.Pie(spec) },
			)
		}
	})
}
