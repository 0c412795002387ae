package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestTemperature_Unmarshal(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
		wantErr  bool
	}{
		{"number", `{"temperature": 0.5}`, 0.5, false},
		{"integer", `{"temperature": 1}`, 1.0, false},
		{"numeric string", `{"temperature": "0.5"}`, 0.5, false},
		{"padded numeric string", `{"temperature": " 0.9 "}`, 0.9, false},
		{"non-numeric string", `{"temperature": "warm"}`, 0, true},
		{"empty string", `{"temperature": ""}`, 0, true},
		{"object", `{"temperature": {}}`, 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var cfg AssistantConfig
			err := json.Unmarshal([]byte(tc.input), &cfg)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("Expected error for input %s", tc.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if cfg.Temperature == nil {
				t.Fatal("Expected temperature to be set")
			}
			if float64(*cfg.Temperature) != tc.expected {
				t.Errorf("Expected %v, got %v", tc.expected, float64(*cfg.Temperature))
			}
		})
	}
}

func TestTemperature_NullMeansAbsent(t *testing.T) {
	var cfg AssistantConfig
	if err := json.Unmarshal([]byte(`{"temperature": null}`), &cfg); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.Temperature != nil {
		t.Error("Expected null temperature to stay absent")
	}
}

func TestTemperature_MarshalsAsNumber(t *testing.T) {
	temp := Temperature(0.5)
	cfg := AssistantConfig{
		Name:              "Helper",
		APIKey:            "sk-test",
		APIEndpoint:       "https://api.example.com/v1/chat/completions",
		Model:             "grok-4",
		SystemInstruction: "Be helpful.",
		Temperature:       &temp,
	}

	data, err := json.Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if !strings.Contains(string(data), `"temperature":0.5`) {
		t.Errorf("Expected numeric temperature in output, got %s", data)
	}
}

func TestAssistantConfig_MissingFields(t *testing.T) {
	temp := Temperature(0.7)

	tests := []struct {
		name    string
		config  AssistantConfig
		missing []string
	}{
		{
			"complete",
			AssistantConfig{
				Name: "Helper", APIKey: "sk", APIEndpoint: "https://x", Model: "grok-4",
				SystemInstruction: "Hi.", Temperature: &temp,
			},
			nil,
		},
		{
			"empty record",
			AssistantConfig{},
			[]string{"name", "apiKey", "apiEndpoint", "model", "systemInstruction", "temperature"},
		},
		{
			"missing apiKey only",
			AssistantConfig{
				Name: "Helper", APIEndpoint: "https://x", Model: "grok-4",
				SystemInstruction: "Hi.", Temperature: &temp,
			},
			[]string{"apiKey"},
		},
		{
			"whitespace counts as missing",
			AssistantConfig{
				Name: "  ", APIKey: "sk", APIEndpoint: "https://x", Model: "grok-4",
				SystemInstruction: "Hi.", Temperature: &temp,
			},
			[]string{"name"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.config.MissingFields()
			if len(got) != len(tc.missing) {
				t.Fatalf("Expected missing %v, got %v", tc.missing, got)
			}
			for i := range got {
				if got[i] != tc.missing[i] {
					t.Errorf("Expected missing %v, got %v", tc.missing, got)
					break
				}
			}
		})
	}
}

func TestAssistantConfig_Defaults(t *testing.T) {
	cfg := &AssistantConfig{APIKey: "sk", APIEndpoint: "https://x"}

	if !cfg.Configured() {
		t.Error("Expected config with key and endpoint to count as configured")
	}
	if cfg.ModelOrDefault() != DefaultModel {
		t.Errorf("Expected default model %q, got %q", DefaultModel, cfg.ModelOrDefault())
	}
	if cfg.TemperatureOrDefault() != DefaultTemperature {
		t.Errorf("Expected default temperature %v, got %v", DefaultTemperature, cfg.TemperatureOrDefault())
	}
	if cfg.SystemInstructionOrDefault() != DefaultSystemInstruction {
		t.Errorf("Expected default instruction, got %q", cfg.SystemInstructionOrDefault())
	}
}

func TestAssistantConfig_NotConfigured(t *testing.T) {
	tests := []struct {
		name   string
		config *AssistantConfig
	}{
		{"nil record", nil},
		{"missing apiKey", &AssistantConfig{APIEndpoint: "https://x"}},
		{"missing apiEndpoint", &AssistantConfig{APIKey: "sk"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.config.Configured() {
				t.Error("Expected Configured() to be false")
			}
		})
	}
}
