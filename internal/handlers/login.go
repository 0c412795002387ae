package handlers

import (
	"encoding/json"
	"net/http"

	"assistant-backend/internal/middleware"
	"assistant-backend/internal/models"
)

// placeholderToken is what the admin UI stores after login. It carries no
// authority: every subsequent admin call re-sends the Basic header.
const placeholderToken = "valid-admin-token"

type LoginHandler struct {
	auth *middleware.BasicAuth
}

func NewLoginHandler(auth *middleware.BasicAuth) *LoginHandler {
	return &LoginHandler{auth: auth}
}

func (h *LoginHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, false, "Invalid request body")
		return
	}

	if !h.auth.Check(req.Username, req.Password) {
		writeMessage(w, http.StatusUnauthorized, false, "Invalid credentials.")
		return
	}

	writeJSON(w, http.StatusOK, models.LoginResponse{
		Success: true,
		Message: "Login successful.",
		Token:   placeholderToken,
	})
}
