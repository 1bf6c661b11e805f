package handlers

import (
	"net/http"

	"github.com/bayurmdn/garuda-saham-insight/internal/common"
	"github.com/bayurmdn/garuda-saham-insight/internal/interfaces"
	"github.com/bayurmdn/garuda-saham-insight/internal/models"
)

// SectorsHandler serves the sector overview endpoint.
type SectorsHandler struct {
	service interfaces.StockService
	logger  *common.Logger
}

// NewSectorsHandler creates a new sectors handler.
func NewSectorsHandler(service interfaces.StockService, logger *common.Logger) *SectorsHandler {
	return &SectorsHandler{service: service, logger: logger}
}

// ServeHTTP handles GET /api/sectors.
func (h *SectorsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	stats, err := h.service.SectorOverview(r.Context())
	if err != nil {
		h.logger.Error().Str("error", err.Error()).Msg("failed to build sector overview")
		WriteError(w, http.StatusInternalServerError, "failed to build sector overview")
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"sectors":     stats,
		"all_sectors": models.Sectors,
	})
}
