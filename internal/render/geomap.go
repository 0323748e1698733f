// Metagraphus - Photo Metadata Analytics and Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/metagraphus

package render

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/goccy/go-json"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/tomtom215/metagraphus/internal/models"
)

// Equirectangular canvas: 2:1 so degrees map square.
const (
	mapWidth  = 1024
	mapHeight = 512
)

// mapPage is a self-contained Leaflet document. The marker array is
// injected as a JSON literal; everything else is static.
const mapPage = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Photo Map</title>
<link rel="stylesheet" href="https://unpkg.com/leaflet@1.9.4/dist/leaflet.css">
<script src="https://unpkg.com/leaflet@1.9.4/dist/leaflet.js"></script>
<style>html, body, #map { height: 100%; margin: 0; }</style>
</head>
<body>
<div id="map"></div>
<script>
var map = L.map('map').setView([0, 0], 1);
L.tileLayer('https://tile.openstreetmap.org/{z}/{x}/{y}.png', {
	maxZoom: 19,
	attribution: '&copy; OpenStreetMap contributors'
}).addTo(map);
var markers = {{.Markers}};
markers.forEach(function (m) {
	L.marker([m.latitude, m.longitude])
		.bindPopup('file: ' + m.filename + '<br>coord: [' + m.latitude + ', ' + m.longitude + ']')
		.addTo(map);
});
</script>
</body>
</html>
`

// MapHTML renders the markers as an interactive Leaflet map, centered on
// (0,0) at zoom 1 regardless of marker spread. The returned document is
// complete and serves as-is.
func MapHTML(markers []models.MapMarker) ([]byte, error) {
	if markers == nil {
		markers = []models.MapMarker{}
	}
	encoded, err := json.Marshal(markers)
	if err != nil {
		return nil, fmt.Errorf("failed to encode map markers: %w", err)
	}

	tmpl, err := template.New("map").Parse(mapPage)
	if err != nil {
		return nil, fmt.Errorf("failed to parse map template: %w", err)
	}

	var buf bytes.Buffer
	data := struct{ Markers template.JS }{Markers: template.JS(encoded)} //nolint:gosec // marker JSON is produced here, not user-supplied
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render map: %w", err)
	}
	return buf.Bytes(), nil
}

// MapPNG renders the markers as an equirectangular scatter over a
// graticule, one dot per geolocated photo.
func MapPNG(markers []models.MapMarker) ([]byte, error) {
	r, err := chart.PNG(mapWidth, mapHeight)
	if err != nil {
		return nil, fmt.Errorf("failed to create map renderer: %w", err)
	}

	sea := drawing.Color{R: 0xf4, G: 0xf7, B: 0xfa, A: 0xff}
	grid := drawing.Color{R: 0xd8, G: 0xde, B: 0xe4, A: 0xff}
	axis := drawing.Color{R: 0xb6, G: 0xbe, B: 0xc6, A: 0xff}
	dot := drawing.Color{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}

	fillRect(r, 0, 0, mapWidth, mapHeight, sea, axis, 1)

	// 30 degree graticule; equator and prime meridian darker.
	for lon := -150; lon <= 150; lon += 30 {
		x, _ := project(0, float64(lon))
		c := grid
		if lon == 0 {
			c = axis
		}
		strokeLine(r, x, 0, x, mapHeight, c, 1)
	}
	for lat := -60; lat <= 60; lat += 30 {
		_, y := project(float64(lat), 0)
		c := grid
		if lat == 0 {
			c = axis
		}
		strokeLine(r, 0, y, mapWidth, y, c, 1)
	}

	r.SetFillColor(dot)
	r.SetStrokeColor(drawing.ColorWhite)
	r.SetStrokeWidth(1)
	for _, m := range markers {
		x, y := project(m.Latitude, m.Longitude)
		r.Circle(4, x, y)
		r.FillStroke()
	}

	var buf bytes.Buffer
	if err := r.Save(&buf); err != nil {
		return nil, fmt.Errorf("failed to render map image: %w", err)
	}
	return buf.Bytes(), nil
}

// project maps a coordinate onto the equirectangular canvas.
func project(lat, lon float64) (x, y int) {
	x = int((lon + 180) / 360 * mapWidth)
	y = int((90 - lat) / 180 * mapHeight)
	return x, y
}
