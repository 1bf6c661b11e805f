package handlers

import (
	"net/http"

	"github.com/bayurmdn/garuda-saham-insight/internal/common"
	"github.com/bayurmdn/garuda-saham-insight/internal/interfaces"
)

// WatchlistHandler serves the watchlist endpoints.
type WatchlistHandler struct {
	service interfaces.StockService
	logger  *common.Logger
}

// NewWatchlistHandler creates a new watchlist handler.
func NewWatchlistHandler(service interfaces.StockService, logger *common.Logger) *WatchlistHandler {
	return &WatchlistHandler{service: service, logger: logger}
}

// ServeHTTP routes /api/watchlist and /api/watchlist/{id}:
// GET lists watched stocks, PUT adds one, DELETE removes one.
func (h *WatchlistHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := pathSuffix(r, "/api/watchlist")

	switch r.Method {
	case http.MethodGet, http.MethodHead:
		h.handleList(w, r)
	case http.MethodPut:
		h.handleAdd(w, r, id)
	case http.MethodDelete:
		h.handleRemove(w, r, id)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *WatchlistHandler) handleList(w http.ResponseWriter, r *http.Request) {
	stocks, err := h.service.Watchlist(r.Context())
	if err != nil {
		h.logger.Error().Str("error", err.Error()).Msg("failed to list watchlist")
		WriteError(w, http.StatusInternalServerError, "failed to list watchlist")
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"stocks": buildRows(stocks),
		"count":  len(stocks),
	})
}

func (h *WatchlistHandler) handleAdd(w http.ResponseWriter, r *http.Request, id string) {
	if id == "" {
		WriteError(w, http.StatusBadRequest, "missing stock id")
		return
	}

	if err := h.service.AddToWatchlist(r.Context(), id); err != nil {
		h.logger.Warn().Str("stock_id", id).Str("error", err.Error()).Msg("failed to add stock to watchlist")
		WriteError(w, http.StatusNotFound, "stock not found")
		return
	}

	WriteJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
		"id":     id,
	})
}

func (h *WatchlistHandler) handleRemove(w http.ResponseWriter, r *http.Request, id string) {
	if id == "" {
		WriteError(w, http.StatusBadRequest, "missing stock id")
		return
	}

	if err := h.service.RemoveFromWatchlist(r.Context(), id); err != nil {
		h.logger.Error().Str("stock_id", id).Str("error", err.Error()).Msg("failed to remove stock from watchlist")
		WriteError(w, http.StatusInternalServerError, "failed to remove stock from watchlist")
		return
	}

	WriteJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
		"id":     id,
	})
}
