package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/bayurmdn/garuda-saham-insight/internal/common"
	"github.com/bayurmdn/garuda-saham-insight/internal/interfaces"
	"github.com/bayurmdn/garuda-saham-insight/internal/screener"
)

// ExportHandler serves the CSV download endpoint.
type ExportHandler struct {
	service interfaces.StockService
	logger  *common.Logger
}

// NewExportHandler creates a new export handler.
func NewExportHandler(service interfaces.StockService, logger *common.Logger) *ExportHandler {
	return &ExportHandler{service: service, logger: logger}
}

// ServeHTTP handles GET /api/stocks/export. The same filter and sort
// query parameters as the list endpoint apply, so the download matches
// whatever the client is currently viewing.
func (h *ExportHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	filter, err := filterFromQuery(r)
	if err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	stocks, err := h.service.Screen(r.Context(), filter, sortFromQuery(r))
	if err != nil {
		h.logger.Error().Str("error", err.Error()).Msg("failed to screen stocks for export")
		WriteError(w, http.StatusInternalServerError, "failed to export stocks")
		return
	}

	filename := screener.ExportFilename(time.Now())
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := screener.WriteCSV(w, stocks); err != nil {
		// Headers are gone at this point, just log.
		h.logger.Error().Str("error", err.Error()).Msg("failed to write CSV export")
		return
	}

	h.logger.Debug().Int("rows", len(stocks)).Str("filename", filename).Msg("CSV export served")
}
