package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"assistant-backend/internal/models"
	"assistant-backend/internal/services"
	"assistant-backend/internal/store"
)

// notConfiguredMessage is recognized verbatim by the chat UI, which rewrites
// it into a friendlier prompt. Do not change the wording casually.
const notConfiguredMessage = "AI Assistant is not configured. Please contact the administrator."

type ChatHandler struct {
	configStore *store.AssistantConfigStore
	relay       *services.RelayService
}

func NewChatHandler(configStore *store.AssistantConfigStore, relay *services.RelayService) *ChatHandler {
	return &ChatHandler{configStore: configStore, relay: relay}
}

// Chat relays one conversation to the configured provider. Stateless per
// call: the client resends its whole history every time.
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	raw, found, err := h.configStore.Load(r.Context())
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, false, "Internal Server Error: "+err.Error())
		return
	}

	var cfg *models.AssistantConfig
	if found {
		cfg = &models.AssistantConfig{}
		if err := json.Unmarshal(raw, cfg); err != nil {
			writeMessage(w, http.StatusInternalServerError, false, "Internal Server Error: "+err.Error())
			return
		}
	}
	if !cfg.Configured() {
		writeMessage(w, http.StatusServiceUnavailable, false, notConfiguredMessage)
		return
	}

	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusInternalServerError, false, "Internal Server Error: "+err.Error())
		return
	}
	if len(req.Messages) == 0 {
		writeMessage(w, http.StatusBadRequest, false, "Message history is required.")
		return
	}

	replyText, err := h.relay.Complete(r.Context(), cfg, req.Messages)
	if err != nil {
		var provErr *services.ProviderError
		if errors.As(err, &provErr) {
			writeMessage(w, http.StatusBadGateway, false, provErr.Message)
			return
		}
		writeMessage(w, http.StatusInternalServerError, false, "Internal Server Error: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, models.ChatResponse{
		Success: true,
		Reply:   services.FormatReply(replyText),
	})
}
