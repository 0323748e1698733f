// Metagraphus - Photo Metadata Analytics and Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/metagraphus

package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/tomtom215/metagraphus/internal/config"
	"github.com/tomtom215/metagraphus/internal/models"
)

func testClient(baseURL string) *Client {
	return NewClient(&config.GeocodingConfig{
		Enabled:   true,
		BaseURL:   baseURL,
		UserAgent: "metagraphus-test/1.0",
		Timeout:   5 * time.Second,
	})
}

func floatPtr(f float64) *float64 { return &f }

func TestReverse(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/reverse" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("format") != "json" || q.Get("zoom") != "10" || q.Get("accept-language") != "en" {
			t.Errorf("missing fixed query parameters: %v", q)
		}
		if q.Get("lat") != "48.853" || q.Get("lon") != "2.3499" {
			t.Errorf("unexpected coordinates: lat=%s lon=%s", q.Get("lat"), q.Get("lon"))
		}
		if r.Header.Get("User-Agent") != "metagraphus-test/1.0" {
			t.Errorf("unexpected user agent %q", r.Header.Get("User-Agent"))
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"address":{"country":"France","city":"Paris"}}`))
	}))
	defer server.Close()

	country, err := testClient(server.URL).Reverse(context.Background(), 48.853, 2.3499)
	if err != nil {
		t.Fatalf("Reverse failed: %v", err)
	}
	if country != "France" {
		t.Errorf("expected France, got %q", country)
	}
}

func TestReverseNoCountry(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"address":{}}`))
	}))
	defer server.Close()

	country, err := testClient(server.URL).Reverse(context.Background(), 0, 0)
	if err != nil {
		t.Fatalf("Reverse failed: %v", err)
	}
	if country != "" {
		t.Errorf("expected empty country, got %q", country)
	}
}

func TestReverseServerError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "over capacity", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	if _, err := testClient(server.URL).Reverse(context.Background(), 1, 2); err == nil {
		t.Fatal("expected error for 503 response")
	}
}

func TestNewClientDisabled(t *testing.T) {
	t.Parallel()

	c := NewClient(&config.GeocodingConfig{Enabled: false})
	if c != nil {
		t.Error("disabled config should produce a nil client")
	}
}

func TestResolveCountriesDeduplicates(t *testing.T) {
	t.Parallel()

	var requests atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		requests.Add(1)
		_, _ = w.Write([]byte(`{"address":{"country":"Japan"}}`))
	}))
	defer server.Close()

	records := []models.Record{
		{Filename: "a.jpg", Latitude: floatPtr(35.6595), Longitude: floatPtr(139.7005)},
		{Filename: "b.jpg", Latitude: floatPtr(35.6595), Longitude: floatPtr(139.7005)},
		{Filename: "no_gps.jpg"},
		{Filename: "done.jpg", Latitude: floatPtr(1), Longitude: floatPtr(2), Country: "France"},
	}

	resolved := ResolveCountries(context.Background(), testClient(server.URL), records)

	if resolved != 2 {
		t.Errorf("expected 2 records resolved, got %d", resolved)
	}
	if got := requests.Load(); got != 1 {
		t.Errorf("expected 1 lookup for identical coordinates, got %d", got)
	}
	if records[0].Country != "Japan" || records[1].Country != "Japan" {
		t.Errorf("expected Japan on both records, got %q and %q", records[0].Country, records[1].Country)
	}
	if records[2].Country != "" {
		t.Error("record without coordinates must stay without country")
	}
	if records[3].Country != "France" {
		t.Error("already-resolved record must keep its country")
	}
}

func TestResolveCountriesSkipsFailures(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer server.Close()

	records := []models.Record{
		{Filename: "a.jpg", Latitude: floatPtr(10), Longitude: floatPtr(20)},
	}

	if resolved := ResolveCountries(context.Background(), testClient(server.URL), records); resolved != 0 {
		t.Errorf("expected 0 resolved, got %d", resolved)
	}
	if records[0].Country != "" {
		t.Errorf("failed lookup must leave country empty, got %q", records[0].Country)
	}
}

func TestResolveCountriesNilClient(t *testing.T) {
	t.Parallel()

	records := []models.Record{
		{Filename: "a.jpg", Latitude: floatPtr(10), Longitude: floatPtr(20)},
	}
	if resolved := ResolveCountries(context.Background(), nil, records); resolved != 0 {
		t.Errorf("nil client must resolve nothing, got %d", resolved)
	}
}
