package assist

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Provider selects the remote service shape used for assist calls.
type Provider int

const (
	// ProviderGoogle is the vendor-SDK-style generateContent shape.
	ProviderGoogle Provider = iota
	// ProviderCustom is the generic OpenAI-compatible chat-completion
	// shape, reachable at a configurable base endpoint.
	ProviderCustom
)

func (p Provider) String() string {
	switch p {
	case ProviderCustom:
		return "custom"
	default:
		return "google"
	}
}

// ParseProvider maps a stored provider code; unknown values collapse to
// google, matching the default configuration.
func ParseProvider(name string) Provider {
	if strings.EqualFold(strings.TrimSpace(name), "custom") {
		return ProviderCustom
	}
	return ProviderGoogle
}

// ParseProviderStrict is ParseProvider without the collapse, for settings
// validation.
func ParseProviderStrict(name string) (Provider, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "google":
		return ProviderGoogle, nil
	case "custom":
		return ProviderCustom, nil
	}
	return ProviderGoogle, fmt.Errorf("assist: unknown provider %q (one of google, custom)", name)
}

func (p Provider) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

func (p *Provider) UnmarshalJSON(b []byte) error {
	var name string
	if err := json.Unmarshal(b, &name); err != nil {
		return err
	}
	*p = ParseProvider(name)
	return nil
}

const defaultModel = "gemini-3-flash-preview"

// Config is the process-wide assist configuration. It is loaded once at
// startup from persisted settings and saved immediately on change. JSON
// field names match the persisted settings shape.
type Config struct {
	Provider Provider `json:"provider"`
	APIKey   string   `json:"apiKey"`
	BaseURL  string   `json:"baseUrl,omitempty"`
	Model    string   `json:"modelName"`
}

// DefaultConfig is used when no configuration has been persisted yet.
func DefaultConfig() Config {
	return Config{
		Provider: ProviderGoogle,
		Model:    defaultModel,
	}
}

// ModelOrDefault returns the configured model identifier or the default.
func (c Config) ModelOrDefault() string {
	if c.Model != "" {
		return c.Model
	}
	return defaultModel
}
