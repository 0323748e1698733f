// Metagraphus - Photo Metadata Analytics and Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/metagraphus

package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
)

func TestRequestID_GeneratesNewID(t *testing.T) {
	t.Parallel()

	var captured string
	handler := RequestID(func(w http.ResponseWriter, r *http.Request) {
		captured = GetRequestID(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/metadata", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)

	if captured == "" {
		t.Fatal("handler saw no request ID in context")
	}
	if _, err := uuid.Parse(captured); err != nil {
		t.Errorf("generated request ID %q is not a UUID: %v", captured, err)
	}
	if got := rec.Header().Get("X-Request-ID"); got != captured {
		t.Errorf("response header ID = %q, context ID = %q", got, captured)
	}
}

func TestRequestID_PreservesUpstreamID(t *testing.T) {
	t.Parallel()

	const upstream = "proxy-assigned-id-42"

	var captured string
	handler := RequestID(func(w http.ResponseWriter, r *http.Request) {
		captured = GetRequestID(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", upstream)
	rec := httptest.NewRecorder()
	handler(rec, req)

	if captured != upstream {
		t.Errorf("context ID = %q, want upstream %q", captured, upstream)
	}
	if got := rec.Header().Get("X-Request-ID"); got != upstream {
		t.Errorf("response header ID = %q, want upstream %q", got, upstream)
	}
}

func TestRequestID_UniquePerRequest(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	handler := RequestID(func(w http.ResponseWriter, r *http.Request) {
		seen[GetRequestID(r.Context())] = true
	})

	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodGet, "/metadata", nil)
		handler(httptest.NewRecorder(), req)
	}

	if len(seen) != 5 {
		t.Errorf("5 requests produced %d distinct IDs", len(seen))
	}
}

func TestGetRequestID_WithoutID(t *testing.T) {
	t.Parallel()

	if got := GetRequestID(context.Background()); got != "" {
		t.Errorf("GetRequestID on bare context = %q, want empty", got)
	}
}

func TestGetRequestID_WithWrongType(t *testing.T) {
	t.Parallel()

	ctx := context.WithValue(context.Background(), RequestIDKey, 1234)
	if got := GetRequestID(ctx); got != "" {
		t.Errorf("GetRequestID with non-string value = %q, want empty", got)
	}
}
