package models

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Defaults applied when the stored configuration leaves a field unset.
const (
	DefaultModel             = "grok-4"
	DefaultTemperature       = 0.7
	DefaultSystemInstruction = "You are a helpful and friendly AI assistant."
)

// Temperature is a sampling temperature. Admin UIs tend to submit it as a
// string ("0.5"), so it unmarshals from either a JSON number or a numeric
// string, and always marshals back as a number.
type Temperature float64

func (t *Temperature) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = strings.TrimSpace(s[1 : len(s)-1])
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("temperature %q is not a number", s)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("temperature must be a finite number")
	}
	*t = Temperature(f)
	return nil
}

func (t Temperature) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(t))
}

// AssistantConfig is the single persisted record describing the provider
// credentials, model and prompt settings. Temperature is a pointer so an
// absent field is distinguishable from zero.
type AssistantConfig struct {
	Name              string       `json:"name"`
	APIKey            string       `json:"apiKey"`
	APIEndpoint       string       `json:"apiEndpoint"`
	Model             string       `json:"model"`
	SystemInstruction string       `json:"systemInstruction"`
	Temperature       *Temperature `json:"temperature,omitempty"`
}

// MissingFields returns the JSON names of every required field absent from
// the record. The write path rejects the record unless this is empty.
func (c *AssistantConfig) MissingFields() []string {
	var missing []string
	if strings.TrimSpace(c.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(c.APIKey) == "" {
		missing = append(missing, "apiKey")
	}
	if strings.TrimSpace(c.APIEndpoint) == "" {
		missing = append(missing, "apiEndpoint")
	}
	if strings.TrimSpace(c.Model) == "" {
		missing = append(missing, "model")
	}
	if strings.TrimSpace(c.SystemInstruction) == "" {
		missing = append(missing, "systemInstruction")
	}
	if c.Temperature == nil {
		missing = append(missing, "temperature")
	}
	return missing
}

// Configured reports whether the record carries enough to reach a provider.
func (c *AssistantConfig) Configured() bool {
	return c != nil && c.APIKey != "" && c.APIEndpoint != ""
}

func (c *AssistantConfig) ModelOrDefault() string {
	if c.Model != "" {
		return c.Model
	}
	return DefaultModel
}

func (c *AssistantConfig) TemperatureOrDefault() float64 {
	if c.Temperature != nil {
		return float64(*c.Temperature)
	}
	return DefaultTemperature
}

func (c *AssistantConfig) SystemInstructionOrDefault() string {
	if c.SystemInstruction != "" {
		return c.SystemInstruction
	}
	return DefaultSystemInstruction
}
