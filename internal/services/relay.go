package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"assistant-backend/internal/models"
)

// ProviderError means the provider answered but returned no usable reply
// (no choices, or an explicit error object). The chat endpoint maps it to
// a bad-gateway result; every other failure is internal.
type ProviderError struct {
	Message string
}

func (e *ProviderError) Error() string { return e.Message }

type chatCompletionRequest struct {
	Model       string               `json:"model"`
	Messages    []models.ChatMessage `json:"messages"`
	Temperature float64              `json:"temperature"`
	Stream      bool                 `json:"stream"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// RelayService forwards one conversation to whatever OpenAI-compatible
// chat-completion endpoint the assistant is configured with. It is
// stateless; each call is a single request/response with no retries.
type RelayService struct {
	httpClient *http.Client
}

func NewRelayService() *RelayService {
	// No client-side timeout: a slow completion is bounded by the provider
	// or the platform request timeout, not by us.
	return &RelayService{httpClient: &http.Client{}}
}

// Complete sends the conversation with the configured system instruction
// prepended and returns the first choice's raw reply text.
func (s *RelayService) Complete(ctx context.Context, cfg *models.AssistantConfig, messages []models.ChatMessage) (string, error) {
	systemMessage := models.ChatMessage{
		Role:    "system",
		Content: cfg.SystemInstructionOrDefault(),
	}

	payload := chatCompletionRequest{
		Model:       cfg.ModelOrDefault(),
		Messages:    append([]models.ChatMessage{systemMessage}, messages...),
		Temperature: cfg.TemperatureOrDefault(),
		Stream:      false,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to encode provider request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, cfg.APIEndpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build provider request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+cfg.APIKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("provider request failed: %w", err)
	}
	defer resp.Body.Close()

	var parsed chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("failed to decode provider response: %w", err)
	}

	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		if parsed.Error != nil && parsed.Error.Message != "" {
			return "", &ProviderError{Message: parsed.Error.Message}
		}
		return "", &ProviderError{Message: "Received invalid response from AI API."}
	}

	return parsed.Choices[0].Message.Content, nil
}

var paragraphBreak = regexp.MustCompile(`\n\s*\n`)

// FormatReply converts the provider's plain-text reply into the form the
// chat UI renders: blank-line runs become paragraph separators, remaining
// newlines become <br> tags. Cosmetic only.
func FormatReply(text string) string {
	if text == "" {
		return ""
	}
	out := paragraphBreak.ReplaceAllString(text, "<br><br>")
	return strings.ReplaceAll(out, "\n", "<br>")
}
