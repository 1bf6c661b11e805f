package server

import (
	"net/http"
	"strings"
)

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	// WebSocket stock-change stream
	mux.HandleFunc("/ws", s.app.WSHandler.HandleWebSocket)

	// API routes
	mux.HandleFunc("/api/health", s.app.HealthHandler.ServeHTTP)
	mux.HandleFunc("/api/version", s.app.VersionHandler.ServeHTTP)
	mux.HandleFunc("/api/stocks", s.app.StocksHandler.HandleList)
	mux.HandleFunc("/api/stocks/", s.handleStocksSubtree)
	mux.HandleFunc("/api/sectors", s.app.SectorsHandler.ServeHTTP)
	mux.HandleFunc("/api/dashboard", s.app.DashboardHandler.ServeHTTP)
	mux.HandleFunc("/api/watchlist", s.app.WatchlistHandler.ServeHTTP)
	mux.HandleFunc("/api/watchlist/", s.app.WatchlistHandler.ServeHTTP)
	mux.HandleFunc("/api/settings", s.app.SettingsHandler.ServeHTTP)

	// 404 handler for unmatched API routes
	mux.HandleFunc("/api/", s.handleNotFound)

	return mux
}

// handleStocksSubtree dispatches /api/stocks/export to the CSV exporter
// and everything else under /api/stocks/ to the detail handler.
func (s *Server) handleStocksSubtree(w http.ResponseWriter, r *http.Request) {
	if strings.TrimSuffix(r.URL.Path, "/") == "/api/stocks/export" {
		s.app.ExportHandler.ServeHTTP(w, r)
		return
	}
	s.app.StocksHandler.HandleDetail(w, r)
}

// handleNotFound returns a JSON 404 for unmatched API routes.
func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	w.Write([]byte(`{"error":"Not Found","message":"The requested endpoint does not exist"}`))
}
