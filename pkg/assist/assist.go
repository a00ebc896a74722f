// Package assist is the stateless client for the configured language-model
// provider. Every generation operation degrades to a canned, localized
// fallback on failure; only the connection test propagates errors bare.
package assist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"tableflip.dev/lumiere/pkg/entry"
	"tableflip.dev/lumiere/pkg/i18n"
	"tableflip.dev/lumiere/pkg/mood"
)

// PromptType classifies a writing prompt suggestion.
type PromptType int

const (
	Reflection PromptType = iota
	Creative
	Memory
)

func (p PromptType) String() string {
	switch p {
	case Creative:
		return "creative"
	case Memory:
		return "memory"
	default:
		return "reflection"
	}
}

func parsePromptType(name string) PromptType {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "creative":
		return Creative
	case "memory":
		return Memory
	default:
		return Reflection
	}
}

// Suggestion is a generated writing prompt.
type Suggestion struct {
	Text string
	Type PromptType
}

// Analysis is the structured result of analyzing an entry's plain text.
type Analysis struct {
	Title   string
	Mood    mood.Mood
	Tags    []string
	Summary string
}

var errMissingKey = errors.New("assist: missing API key")

// Client issues single-attempt requests against the configured provider.
// No retry, no backoff; the transport's default timeout applies.
type Client struct {
	// HTTPClient overrides the transport, mainly for tests.
	HTTPClient *http.Client
	// GoogleBaseURL overrides the generateContent endpoint, mainly for tests.
	GoogleBaseURL string
}

func New() *Client {
	return &Client{}
}

// GeneratePrompt asks the provider for one short journaling prompt suited
// to the time of day. On any failure the canned localized reflection
// prompt is returned along with the underlying error, so callers always
// hold a usable suggestion.
func (c *Client) GeneratePrompt(ctx context.Context, timeOfDay string, lang i18n.Language, cfg Config) (Suggestion, error) {
	t := i18n.T(lang)
	fallback := Suggestion{Text: t.FallbackPrompt, Type: Reflection}

	if cfg.APIKey == "" {
		return fallback, errMissingKey
	}

	systemPrompt := fmt.Sprintf(
		"You are a thoughtful journaling assistant. Generate a single, short prompt for the %s. It should encourage reflection or creativity. %s",
		timeOfDay, t.OutputDirective)
	userPrompt := `Generate a journaling prompt. Return JSON in this format: { "text": "...", "type": "reflection" | "creative" | "memory" }`

	text, err := c.invoke(ctx, cfg, systemPrompt, userPrompt, promptSchema())
	if err != nil {
		return fallback, err
	}

	var raw struct {
		Text string `json:"text"`
		Type string `json:"type"`
	}
	if err := decodeLoose(text, &raw); err != nil {
		return fallback, err
	}
	if strings.TrimSpace(raw.Text) == "" {
		return fallback, errors.New("assist: provider returned an empty prompt")
	}
	return Suggestion{Text: raw.Text, Type: parsePromptType(raw.Type)}, nil
}

// AnalyzeEntry derives a title, mood, tags, and a one-sentence summary
// from an entry's plain text. The mood is constrained to the seven-value
// set. The canned fallback carries the error for callers that surface a
// notice on the interactive path.
func (c *Client) AnalyzeEntry(ctx context.Context, plainText string, lang i18n.Language, cfg Config) (Analysis, error) {
	t := i18n.T(lang)
	fallback := Analysis{
		Title:   t.FallbackAnalysisTitle,
		Mood:    mood.Neutral,
		Tags:    []string{t.FallbackTag},
		Summary: entry.Preview(plainText, 50),
	}

	if cfg.APIKey == "" {
		return fallback, errMissingKey
	}

	systemPrompt := "Analyze the journal entry. 1. Provide a short, poetic title (max 5 words). 2. Identify mood. 3. Suggest 3 tags. 4. One-sentence summary. " + t.AnalysisOutputDirective
	userPrompt := fmt.Sprintf(
		"Entry: %q. \nReturn JSON: { \"title\": \"...\", \"mood\": %s, \"tags\": [\"...\"], \"summary\": \"...\" }",
		truncate(plainText, 1000), strings.Join(quoteAll(mood.Names()), "|"))

	text, err := c.invoke(ctx, cfg, systemPrompt, userPrompt, analysisSchema())
	if err != nil {
		return fallback, err
	}

	var raw struct {
		Title   string   `json:"title"`
		Mood    string   `json:"mood"`
		Tags    []string `json:"tags"`
		Summary string   `json:"summary"`
	}
	if err := decodeLoose(text, &raw); err != nil {
		return fallback, err
	}
	if strings.TrimSpace(raw.Title) == "" {
		return fallback, errors.New("assist: provider returned an empty title")
	}
	return Analysis{
		Title:   raw.Title,
		Mood:    mood.Parse(raw.Mood),
		Tags:    raw.Tags,
		Summary: raw.Summary,
	}, nil
}

// TestConnection performs one minimal round trip. Success means the
// provider accepted the request; the response body is not inspected.
func (c *Client) TestConnection(ctx context.Context, cfg Config) error {
	if cfg.APIKey == "" {
		return errMissingKey
	}
	const ping = "Test connection. Reply with 'OK'."
	switch cfg.Provider {
	case ProviderCustom:
		_, err := c.callCustomPing(ctx, cfg, ping)
		return err
	default:
		_, err := c.callGoogle(ctx, cfg, ping, nil)
		return err
	}
}

// invoke dispatches to the configured provider shape and returns the raw
// text payload, expected (but not guaranteed) to be JSON.
func (c *Client) invoke(ctx context.Context, cfg Config, systemPrompt, userPrompt string, schema map[string]interface{}) (string, error) {
	switch cfg.Provider {
	case ProviderCustom:
		return c.callCustom(ctx, cfg, systemPrompt, userPrompt)
	default:
		return c.callGoogle(ctx, cfg, systemPrompt+"\n"+userPrompt, schema)
	}
}

func promptSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "OBJECT",
		"properties": map[string]interface{}{
			"text": map[string]interface{}{"type": "STRING"},
			"type": map[string]interface{}{
				"type": "STRING",
				"enum": []string{"reflection", "creative", "memory"},
			},
		},
		"required": []string{"text", "type"},
	}
}

func analysisSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "OBJECT",
		"properties": map[string]interface{}{
			"title": map[string]interface{}{"type": "STRING"},
			"mood": map[string]interface{}{
				"type": "STRING",
				"enum": mood.Names(),
			},
			"tags": map[string]interface{}{
				"type":  "ARRAY",
				"items": map[string]interface{}{"type": "STRING"},
			},
			"summary": map[string]interface{}{"type": "STRING"},
		},
		"required": []string{"title", "mood", "tags", "summary"},
	}
}

func quoteAll(names []string) []string {
	quoted := make([]string, len(names))
	for i, n := range names {
		b, _ := json.Marshal(n)
		quoted[i] = string(b)
	}
	return quoted
}
