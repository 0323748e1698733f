// Metagraphus - Photo Metadata Analytics and Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/metagraphus

package geocode

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/metagraphus/internal/config"
	"github.com/tomtom215/metagraphus/internal/logging"
	"github.com/tomtom215/metagraphus/internal/metrics"
	"github.com/tomtom215/metagraphus/internal/models"
)

// Client talks to a Nominatim-compatible reverse geocoding service.
//
// The service's usage policy requires an identifying User-Agent and tolerates
// at most one request per second from a single client; the rate is respected
// naturally here because lookups run serially during table enrichment.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

// NewClient builds a reverse geocoding client from config. Returns nil when
// geocoding is disabled; a nil client resolves nothing.
func NewClient(cfg *config.GeocodingConfig) *Client {
	if !cfg.Enabled {
		return nil
	}
	return &Client{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		userAgent: cfg.UserAgent,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// reverseResponse is the subset of the reverse payload this system reads
type reverseResponse struct {
	Address struct {
		Country string `json:"country"`
	} `json:"address"`
}

// Reverse resolves a coordinate pair to a country name. An empty string with
// a nil error means the provider knows no country for the location (open
// ocean, poles).
func (c *Client) Reverse(ctx context.Context, lat, lon float64) (string, error) {
	q := url.Values{}
	q.Set("format", "json")
	q.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	q.Set("zoom", "10")
	q.Set("accept-language", "en")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/reverse?"+q.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("failed to create reverse geocode request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("reverse geocode request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("failed to read reverse geocode response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("reverse geocode failed with status %d: %s", resp.StatusCode, string(body))
	}

	var payload reverseResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", fmt.Errorf("failed to decode reverse geocode response: %w", err)
	}
	return payload.Address.Country, nil
}

// ResolveCountries fills Country on every record that has coordinates but no
// country yet. Lookups are deduplicated by exact coordinate pair, run one at
// a time, and a failed lookup leaves its record without a country rather
// than failing the enrichment. Returns the number of records that gained a
// country.
func ResolveCountries(ctx context.Context, c *Client, records []models.Record) int {
	if c == nil {
		return 0
	}

	type coord struct{ lat, lon float64 }
	cache := make(map[coord]string)
	resolved := 0

	for i := range records {
		rec := &records[i]
		if !rec.HasLocation() || rec.Country != "" {
			continue
		}

		key := coord{*rec.Latitude, *rec.Longitude}
		country, seen := cache[key]
		if seen {
			metrics.GeocodeCacheHits.Inc()
		}
		if !seen {
			start := time.Now()
			var err error
			country, err = c.Reverse(ctx, key.lat, key.lon)
			metrics.RecordGeocodeLookup(time.Since(start), err)
			if err != nil {
				logging.Warn().
					Err(err).
					Str("filename", rec.Filename).
					Float64("lat", key.lat).
					Float64("lon", key.lon).
					Msg("Reverse geocode lookup failed")
				continue
			}
			cache[key] = country
		}

		if country != "" {
			rec.Country = country
			resolved++
		}
	}

	if resolved > 0 {
		logging.Info().
			Int("resolved", resolved).
			Int("lookups", len(cache)).
			Msg("Resolved countries for located records")
	}

	return resolved
}
