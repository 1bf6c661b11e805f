package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/bayurmdn/garuda-saham-insight/internal/common"
	"github.com/bayurmdn/garuda-saham-insight/internal/interfaces"
)

// SettingsHandler serves user preference storage as an opaque key-value
// map. Clients decide the keys; the portal only persists them.
type SettingsHandler struct {
	kv     interfaces.KeyValueStorage
	logger *common.Logger
}

// NewSettingsHandler creates a new settings handler.
func NewSettingsHandler(kv interfaces.KeyValueStorage, logger *common.Logger) *SettingsHandler {
	return &SettingsHandler{kv: kv, logger: logger}
}

// ServeHTTP routes /api/settings: GET returns all stored settings,
// PUT upserts the keys in the request body.
func (h *SettingsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet, http.MethodHead:
		h.handleGet(w, r)
	case http.MethodPut:
		h.handlePut(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *SettingsHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	settings, err := h.kv.GetAll(r.Context())
	if err != nil {
		h.logger.Error().Str("error", err.Error()).Msg("failed to load settings")
		WriteError(w, http.StatusInternalServerError, "failed to load settings")
		return
	}
	if settings == nil {
		settings = map[string]string{}
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"settings": settings,
	})
}

func (h *SettingsHandler) handlePut(w http.ResponseWriter, r *http.Request) {
	var updates map[string]string
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid settings payload")
		return
	}

	for key, value := range updates {
		if key == "" {
			WriteError(w, http.StatusBadRequest, "settings keys must be non-empty")
			return
		}
		if err := h.kv.Set(r.Context(), key, value); err != nil {
			h.logger.Error().Str("key", key).Str("error", err.Error()).Msg("failed to save setting")
			WriteError(w, http.StatusInternalServerError, "failed to save settings")
			return
		}
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"saved":  len(updates),
	})
}
