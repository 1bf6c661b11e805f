package handlers

import (
	"net/http"

	"github.com/bayurmdn/garuda-saham-insight/internal/common"
	"github.com/bayurmdn/garuda-saham-insight/internal/interfaces"
)

// HealthHandler handles health check requests.
type HealthHandler struct {
	storage interfaces.StorageManager
	logger  *common.Logger
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(storage interfaces.StorageManager, logger *common.Logger) *HealthHandler {
	return &HealthHandler{storage: storage, logger: logger}
}

// ServeHTTP handles GET /api/health. Storage is probed with a cheap
// count so a wedged database turns the check unhealthy.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	count, err := h.storage.Stocks().Count(r.Context())
	if err != nil {
		h.logger.Error().Str("error", err.Error()).Msg("health check storage probe failed")
		WriteJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status":  "degraded",
			"storage": "unavailable",
		})
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"stocks": count,
	})
}
