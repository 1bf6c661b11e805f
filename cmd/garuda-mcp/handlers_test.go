package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/bayurmdn/garuda-saham-insight/internal/models"
)

func testStockRow() map[string]interface{} {
	return map[string]interface{}{
		"id":                   "bbca",
		"ticker":               "BBCA",
		"name":                 "Bank Central Asia",
		"sector":               "Financials",
		"price":                9800.0,
		"change":               1.25,
		"market_cap":           1.2e15,
		"pe":                   22.5,
		"roe":                  21.3,
		"fundamental_score":    85,
		"valuation_score":      40,
		"fundamental_category": map[string]string{"label": "Excellent"},
		"valuation_category":   map[string]string{"label": "Fair"},
	}
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if len(result.Content) == 0 {
		t.Fatal("Result has no content")
	}
	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("Expected text content, got %T", result.Content[0])
	}
	return text.Text
}

func TestScreenQuery_Empty(t *testing.T) {
	request := mcp.CallToolRequest{}
	request.Params.Arguments = map[string]interface{}{}

	if q := screenQuery(request); q != "" {
		t.Errorf("Expected empty query for no arguments, got %q", q)
	}
}

func TestScreenQuery_BuildsParams(t *testing.T) {
	request := mcp.CallToolRequest{}
	request.Params.Arguments = map[string]interface{}{
		"search":           "bank",
		"sectors":          "Financials,Energy",
		"min_roe":          15.0,
		"undervalued_only": true,
		"sort_by":          "roe",
		"sort_dir":         "desc",
	}

	q := screenQuery(request)
	if !strings.HasPrefix(q, "?") {
		t.Fatalf("Expected query string to start with ?, got %q", q)
	}
	for _, want := range []string{"search=bank", "min_roe=15", "undervalued_only=true", "sort_by=roe", "sort_dir=desc"} {
		if !strings.Contains(q, want) {
			t.Errorf("Expected query to contain %q, got %q", want, q)
		}
	}
	if strings.Contains(q, "watchlist_only") {
		t.Errorf("Unset boolean should be omitted, got %q", q)
	}
}

func TestHandleScreenStocks_Success(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/stocks" {
			t.Errorf("Expected /api/stocks, got %s", r.URL.Path)
		}
		if r.URL.Query().Get("min_roe") != "15" {
			t.Errorf("Expected min_roe=15, got %s", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"stocks": []interface{}{testStockRow()},
			"count":  1,
		})
	}))
	defer mockServer.Close()

	proxy := NewPortalProxy(mockServer.URL, testLogger())
	handler := handleScreenStocks(proxy)

	request := mcp.CallToolRequest{}
	request.Params.Arguments = map[string]interface{}{"min_roe": 15.0}

	result, err := handler(nil, request)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if result.IsError {
		t.Fatalf("Expected success, got error: %v", result.Content)
	}

	text := resultText(t, result)
	if !strings.Contains(text, "BBCA") {
		t.Error("Result should contain ticker")
	}
	if !strings.Contains(text, "9.800") {
		t.Error("Result should contain grouped price")
	}
	if !strings.Contains(text, "85 (Excellent)") {
		t.Error("Result should contain fundamental score with label")
	}
}

func TestHandleGetStock_Success(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/stocks/bbca" {
			t.Errorf("Expected /api/stocks/bbca, got %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"stock": testStockRow(),
			"history": []models.FinancialHistory{
				{Year: 2025, Quarter: 2, EPS: 142.5, Revenue: 2.5e13, ROE: 21.3, ROA: 3.2, DebtToEquity: 0.85},
			},
		})
	}))
	defer mockServer.Close()

	proxy := NewPortalProxy(mockServer.URL, testLogger())
	handler := handleGetStock(proxy)

	request := mcp.CallToolRequest{}
	request.Params.Arguments = map[string]interface{}{"id": "bbca"}

	result, err := handler(nil, request)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if result.IsError {
		t.Fatalf("Expected success, got error: %v", result.Content)
	}

	text := resultText(t, result)
	if !strings.Contains(text, "BBCA — Bank Central Asia") {
		t.Error("Result should contain title")
	}
	if !strings.Contains(text, "2025 Q2") {
		t.Error("Result should contain history period")
	}
}

func TestHandleGetStock_MissingID(t *testing.T) {
	proxy := NewPortalProxy("http://127.0.0.1:1", testLogger())
	handler := handleGetStock(proxy)

	request := mcp.CallToolRequest{}
	request.Params.Arguments = map[string]interface{}{}

	result, err := handler(nil, request)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !result.IsError {
		t.Fatal("Expected error result for missing id")
	}
	if !strings.Contains(resultText(t, result), "id parameter is required") {
		t.Error("Result should explain the missing parameter")
	}
}

func TestHandleGetWatchlist_Empty(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"stocks": []interface{}{},
			"count":  0,
		})
	}))
	defer mockServer.Close()

	proxy := NewPortalProxy(mockServer.URL, testLogger())
	handler := handleGetWatchlist(proxy)

	result, err := handler(nil, mcp.CallToolRequest{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if resultText(t, result) != "The watchlist is empty." {
		t.Errorf("Expected empty-watchlist message, got %q", resultText(t, result))
	}
}

func TestHandleAddWatchlist_PortalError(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "stock not found"})
	}))
	defer mockServer.Close()

	proxy := NewPortalProxy(mockServer.URL, testLogger())
	handler := handleAddWatchlist(proxy)

	request := mcp.CallToolRequest{}
	request.Params.Arguments = map[string]interface{}{"id": "nope"}

	result, err := handler(nil, request)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !result.IsError {
		t.Fatal("Expected error result for unknown stock")
	}
	if !strings.Contains(resultText(t, result), "stock not found") {
		t.Error("Result should carry the portal error message")
	}
}

func TestHandleRemoveWatchlist_Success(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("Expected DELETE, got %s", r.Method)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}))
	defer mockServer.Close()

	proxy := NewPortalProxy(mockServer.URL, testLogger())
	handler := handleRemoveWatchlist(proxy)

	request := mcp.CallToolRequest{}
	request.Params.Arguments = map[string]interface{}{"id": "bbca"}

	result, err := handler(nil, request)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.Contains(resultText(t, result), "Removed bbca") {
		t.Error("Result should confirm removal")
	}
}

func TestHandleGetSectors_Success(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"sectors": []models.SectorStat{
				{Sector: "Financials", AvgROE: 18.5, AvgEPSGrowth: 9.2, StockCount: 12},
			},
		})
	}))
	defer mockServer.Close()

	proxy := NewPortalProxy(mockServer.URL, testLogger())
	handler := handleGetSectors(proxy)

	result, err := handler(nil, mcp.CallToolRequest{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	text := resultText(t, result)
	if !strings.Contains(text, "Financials") {
		t.Error("Result should contain sector name")
	}
	if !strings.Contains(text, "18.5%") {
		t.Error("Result should contain average ROE")
	}
}

func TestHandleExportCSV_ReturnsRawBody(t *testing.T) {
	csv := "Ticker,Name,Sector\nBBCA,\"Bank Central Asia\",Financials\n"
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/stocks/export" {
			t.Errorf("Expected /api/stocks/export, got %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Write([]byte(csv))
	}))
	defer mockServer.Close()

	proxy := NewPortalProxy(mockServer.URL, testLogger())
	handler := handleExportCSV(proxy)

	result, err := handler(nil, mcp.CallToolRequest{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if resultText(t, result) != csv {
		t.Errorf("Expected raw CSV passthrough, got %q", resultText(t, result))
	}
}

func TestHandleGetVersion_Success(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"version":    "1.2.3",
			"build":      "20260901",
			"git_commit": "abc1234",
		})
	}))
	defer mockServer.Close()

	proxy := NewPortalProxy(mockServer.URL, testLogger())
	handler := handleGetVersion(proxy)

	result, err := handler(nil, mcp.CallToolRequest{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	text := resultText(t, result)
	if !strings.Contains(text, "Version: 1.2.3") {
		t.Error("Result should contain version")
	}
	if !strings.Contains(text, "Commit: abc1234") {
		t.Error("Result should contain commit")
	}
}
