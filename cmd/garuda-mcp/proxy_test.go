package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bayurmdn/garuda-saham-insight/internal/common"
)

func testLogger() *common.Logger {
	return common.NewLoggerFromConfig(common.LoggingConfig{
		Level:   "error", // minimal logging
		Outputs: []string{"console"},
	})
}

func TestPortalProxy_Get_Success(t *testing.T) {
	expected := map[string]string{"status": "ok"}
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("Expected GET, got %s", r.Method)
		}
		if r.URL.Path != "/api/health" {
			t.Errorf("Expected /api/health, got %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(expected)
	}))
	defer mockServer.Close()

	proxy := NewPortalProxy(mockServer.URL, testLogger())
	body, err := proxy.get("/api/health")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	var result map[string]string
	if err := json.Unmarshal(body, &result); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if result["status"] != "ok" {
		t.Errorf("Expected status=ok, got %s", result["status"])
	}
}

func TestPortalProxy_Get_ErrorBody(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "stock not found"})
	}))
	defer mockServer.Close()

	proxy := NewPortalProxy(mockServer.URL, testLogger())
	_, err := proxy.get("/api/stocks/nope")
	if err == nil {
		t.Fatal("Expected error for 404 response")
	}
	if err.Error() != "stock not found" {
		t.Errorf("Expected portal error message to surface, got %q", err.Error())
	}
}

func TestPortalProxy_Get_NonJSONError(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("boom"))
	}))
	defer mockServer.Close()

	proxy := NewPortalProxy(mockServer.URL, testLogger())
	_, err := proxy.get("/api/stocks")
	if err == nil {
		t.Fatal("Expected error for 500 response")
	}
	if !strings.Contains(err.Error(), "portal returned 500") {
		t.Errorf("Expected status in error, got %q", err.Error())
	}
}

func TestPortalProxy_PutAndDelete(t *testing.T) {
	var methods []string
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		methods = append(methods, r.Method)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}))
	defer mockServer.Close()

	proxy := NewPortalProxy(mockServer.URL, testLogger())
	if _, err := proxy.put("/api/watchlist/bbca"); err != nil {
		t.Fatalf("Unexpected PUT error: %v", err)
	}
	if _, err := proxy.delete("/api/watchlist/bbca"); err != nil {
		t.Fatalf("Unexpected DELETE error: %v", err)
	}

	if len(methods) != 2 || methods[0] != http.MethodPut || methods[1] != http.MethodDelete {
		t.Errorf("Expected [PUT DELETE], got %v", methods)
	}
}

func TestPortalProxy_Get_ConnectionRefused(t *testing.T) {
	proxy := NewPortalProxy("http://127.0.0.1:1", testLogger())
	_, err := proxy.get("/api/health")
	if err == nil {
		t.Fatal("Expected error for unreachable portal")
	}
	if !strings.Contains(err.Error(), "portal request failed") {
		t.Errorf("Expected wrapped transport error, got %q", err.Error())
	}
}
