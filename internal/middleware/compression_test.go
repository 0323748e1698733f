// Metagraphus - Photo Metadata Analytics and Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/metagraphus

package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestCompression_WithGzipAccept(t *testing.T) {
	t.Parallel()

	payload := strings.Repeat(`{"status":"success"}`, 100)
	handler := Compression(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if _, err := w.Write([]byte(payload)); err != nil {
			t.Errorf("write failed: %v", err)
		}
	})

	req := httptest.NewRequest(http.MethodGet, "/metadata", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	handler(rec, req)

	if got := rec.Header().Get("Content-Encoding"); got != "gzip" {
		t.Fatalf("Content-Encoding = %q, want gzip", got)
	}

	gz, err := gzip.NewReader(rec.Body)
	if err != nil {
		t.Fatalf("response is not valid gzip: %v", err)
	}
	defer func() {
		if err := gz.Close(); err != nil {
			t.Errorf("failed to close gzip reader: %v", err)
		}
	}()

	decompressed, err := io.ReadAll(gz)
	if err != nil {
		t.Fatalf("failed to decompress response: %v", err)
	}
	if string(decompressed) != payload {
		t.Error("decompressed body does not match original payload")
	}
}

func TestCompression_WithoutGzipAccept(t *testing.T) {
	t.Parallel()

	handler := Compression(func(w http.ResponseWriter, r *http.Request) {
		if _, err := w.Write([]byte("plain body")); err != nil {
			t.Errorf("write failed: %v", err)
		}
	})

	req := httptest.NewRequest(http.MethodGet, "/metadata", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)

	if got := rec.Header().Get("Content-Encoding"); got != "" {
		t.Errorf("Content-Encoding = %q, want none", got)
	}
	if rec.Body.String() != "plain body" {
		t.Errorf("body = %q, want unmodified", rec.Body.String())
	}
}

func TestCompression_PartialAcceptHeader(t *testing.T) {
	t.Parallel()

	handler := Compression(func(w http.ResponseWriter, r *http.Request) {
		if _, err := w.Write([]byte("content")); err != nil {
			t.Errorf("write failed: %v", err)
		}
	})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Accept-Encoding", "deflate, gzip, br")
	rec := httptest.NewRecorder()
	handler(rec, req)

	if got := rec.Header().Get("Content-Encoding"); got != "gzip" {
		t.Errorf("Content-Encoding = %q, want gzip for mixed Accept-Encoding", got)
	}
}

func TestCompression_EmptyResponse(t *testing.T) {
	t.Parallel()

	handler := Compression(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNoContent)
	}
}

func TestGzipResponseWriter_ImplicitHeader(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	gz := gzip.NewWriter(rec.Body)
	gzw := &gzipResponseWriter{Writer: gz, ResponseWriter: rec}

	if _, err := gzw.Write([]byte("x")); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if !gzw.wroteHeader {
		t.Error("first Write should mark the header as written")
	}
	if rec.Code != http.StatusOK {
		t.Errorf("implicit status = %d, want %d", rec.Code, http.StatusOK)
	}
}
