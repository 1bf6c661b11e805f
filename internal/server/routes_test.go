package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bayurmdn/garuda-saham-insight/internal/app"
	"github.com/bayurmdn/garuda-saham-insight/internal/common"
	"github.com/bayurmdn/garuda-saham-insight/internal/config"
)

func setupTestServer(t *testing.T) *Server {
	t.Helper()

	cfg := config.NewDefaultConfig()
	cfg.Environment = "dev"
	cfg.Storage.Badger.Path = t.TempDir()
	cfg.Maintenance.Enabled = false

	application, err := app.New(cfg, common.NewSilentLogger())
	if err != nil {
		t.Fatalf("failed to create app: %v", err)
	}
	t.Cleanup(func() { application.Close() })

	return New(application)
}

func doRequest(t *testing.T, s *Server, method, path string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestRoutes_Health(t *testing.T) {
	s := setupTestServer(t)

	rec := doRequest(t, s, http.MethodGet, "/api/health")
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

func TestRoutes_Version(t *testing.T) {
	s := setupTestServer(t)

	rec := doRequest(t, s, http.MethodGet, "/api/version")
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

func TestRoutes_StocksListAndDetail(t *testing.T) {
	s := setupTestServer(t)

	rec := doRequest(t, s, http.MethodGet, "/api/stocks")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from list, got %d", rec.Code)
	}

	var body map[string]interface{}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode list body: %v", err)
	}
	// Dev mode seeds the built-in sample set.
	if body["count"].(float64) == 0 {
		t.Fatal("expected seeded stocks in dev mode")
	}

	rec = doRequest(t, s, http.MethodGet, "/api/stocks/bbca")
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200 from detail, got %d", rec.Code)
	}
}

func TestRoutes_Export(t *testing.T) {
	s := setupTestServer(t)

	rec := doRequest(t, s, http.MethodGet, "/api/stocks/export")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/csv; charset=utf-8" {
		t.Errorf("unexpected content type %q", ct)
	}
}

func TestRoutes_SectorsAndDashboard(t *testing.T) {
	s := setupTestServer(t)

	if rec := doRequest(t, s, http.MethodGet, "/api/sectors"); rec.Code != http.StatusOK {
		t.Errorf("sectors: expected 200, got %d", rec.Code)
	}
	if rec := doRequest(t, s, http.MethodGet, "/api/dashboard"); rec.Code != http.StatusOK {
		t.Errorf("dashboard: expected 200, got %d", rec.Code)
	}
}

func TestRoutes_WatchlistLifecycle(t *testing.T) {
	s := setupTestServer(t)

	if rec := doRequest(t, s, http.MethodPut, "/api/watchlist/bbca"); rec.Code != http.StatusOK {
		t.Fatalf("add: expected 200, got %d", rec.Code)
	}
	if rec := doRequest(t, s, http.MethodGet, "/api/watchlist"); rec.Code != http.StatusOK {
		t.Errorf("list: expected 200, got %d", rec.Code)
	}
	if rec := doRequest(t, s, http.MethodDelete, "/api/watchlist/bbca"); rec.Code != http.StatusOK {
		t.Errorf("remove: expected 200, got %d", rec.Code)
	}
}

func TestRoutes_UnknownAPIPathIs404(t *testing.T) {
	s := setupTestServer(t)

	rec := doRequest(t, s, http.MethodGet, "/api/nope")
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected JSON 404, got content type %q", ct)
	}
}
