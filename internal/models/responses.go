package models

import "encoding/json"

// APIResponse is the {success, message} envelope every endpoint falls back to.
type APIResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// LoginResponse is returned on successful login. The token is a static
// placeholder; subsequent admin calls re-send the Basic header instead.
type LoginResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Token   string `json:"token"`
}

// ConfigResponse wraps the stored assistant configuration as opaque JSON.
type ConfigResponse struct {
	Success bool            `json:"success"`
	Config  json.RawMessage `json:"config"`
}

// ChatResponse carries the formatted provider reply.
type ChatResponse struct {
	Success bool   `json:"success"`
	Reply   string `json:"reply"`
}
