package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"assistant-backend/internal/models"
	"assistant-backend/internal/store"
)

type ConfigHandler struct {
	configStore *store.AssistantConfigStore
}

func NewConfigHandler(configStore *store.AssistantConfigStore) *ConfigHandler {
	return &ConfigHandler{configStore: configStore}
}

// Get returns the stored configuration, or an empty object when the
// assistant has never been configured.
func (h *ConfigHandler) Get(w http.ResponseWriter, r *http.Request) {
	raw, found, err := h.configStore.Load(r.Context())
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, false, err.Error())
		return
	}
	if !found {
		raw = json.RawMessage("{}")
	}

	writeJSON(w, http.StatusOK, models.ConfigResponse{Success: true, Config: raw})
}

// Save validates a full configuration payload and replaces the stored
// record wholesale. A rejected write leaves the previous record untouched.
func (h *ConfigHandler) Save(w http.ResponseWriter, r *http.Request) {
	var cfg models.AssistantConfig
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		// A non-numeric temperature surfaces here via its unmarshaller.
		writeMessage(w, http.StatusBadRequest, false, "Invalid config payload: "+err.Error())
		return
	}

	if missing := cfg.MissingFields(); len(missing) > 0 {
		writeMessage(w, http.StatusBadRequest, false,
			"Missing required config fields: "+strings.Join(missing, ", "))
		return
	}

	// Persist the canonical marshal so temperature is always stored as a
	// number, whatever form it arrived in.
	raw, err := json.Marshal(cfg)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, false, err.Error())
		return
	}

	if err := h.configStore.Save(r.Context(), raw); err != nil {
		writeMessage(w, http.StatusInternalServerError, false, err.Error())
		return
	}

	writeMessage(w, http.StatusOK, true, "Configuration saved successfully.")
}
