package handlers

import (
	"net/http"

	"github.com/bayurmdn/garuda-saham-insight/internal/common"
	"github.com/bayurmdn/garuda-saham-insight/internal/interfaces"
)

// dashboardLimit caps each dashboard summary list.
const dashboardLimit = 5

// DashboardHandler serves the dashboard summary endpoint.
type DashboardHandler struct {
	service interfaces.StockService
	logger  *common.Logger
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(service interfaces.StockService, logger *common.Logger) *DashboardHandler {
	return &DashboardHandler{service: service, logger: logger}
}

// ServeHTTP handles GET /api/dashboard: the top-quality and undervalued
// summary lists shown on the landing dashboard.
func (h *DashboardHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	topQuality, err := h.service.TopQuality(r.Context(), dashboardLimit)
	if err != nil {
		h.logger.Error().Str("error", err.Error()).Msg("failed to build top quality summary")
		WriteError(w, http.StatusInternalServerError, "failed to build dashboard")
		return
	}

	undervalued, err := h.service.Undervalued(r.Context(), dashboardLimit)
	if err != nil {
		h.logger.Error().Str("error", err.Error()).Msg("failed to build undervalued summary")
		WriteError(w, http.StatusInternalServerError, "failed to build dashboard")
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"top_quality": buildRows(topQuality),
		"undervalued": buildRows(undervalued),
	})
}
