package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestMiddleware_CorrelationIDGenerated(t *testing.T) {
	s := setupTestServer(t)

	rec := doRequest(t, s, http.MethodGet, "/api/health")
	if rec.Header().Get("X-Correlation-ID") == "" {
		t.Error("expected generated correlation ID header")
	}
}

func TestMiddleware_CorrelationIDPropagated(t *testing.T) {
	s := setupTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("X-Request-ID", "req-123")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Correlation-ID"); got != "req-123" {
		t.Errorf("expected propagated correlation ID req-123, got %q", got)
	}
}

func TestMiddleware_SecurityHeaders(t *testing.T) {
	s := setupTestServer(t)

	rec := doRequest(t, s, http.MethodGet, "/api/health")
	if rec.Header().Get("X-Content-Type-Options") != "nosniff" {
		t.Error("expected nosniff header")
	}
	if rec.Header().Get("X-Frame-Options") != "DENY" {
		t.Error("expected frame deny header")
	}
}

func TestMiddleware_CORSPreflight(t *testing.T) {
	s := setupTestServer(t)

	rec := doRequest(t, s, http.MethodOptions, "/api/stocks")
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200 for preflight, got %d", rec.Code)
	}
	if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("expected CORS allow-origin header")
	}
}

func TestMiddleware_BodySizeLimit(t *testing.T) {
	s := setupTestServer(t)

	big := strings.NewReader(strings.Repeat("x", 2<<20))
	req := httptest.NewRequest(http.MethodPut, "/api/settings", big)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	// MaxBytesReader makes the JSON decode fail before 2MB is consumed.
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for oversized body, got %d", rec.Code)
	}
}
