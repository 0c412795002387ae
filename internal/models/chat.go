package models

// ChatMessage represents a single message in a conversation.
type ChatMessage struct {
	Role    string `json:"role"` // "user", "assistant" or "system"
	Content string `json:"content"`
}

// ChatRequest is the payload sent to the chat endpoint. The client resends
// the whole conversation on every call; the server keeps no history.
type ChatRequest struct {
	Messages []ChatMessage `json:"messages"`
}
