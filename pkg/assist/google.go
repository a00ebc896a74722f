package assist

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

const googleBaseURL = "https://generativelanguage.googleapis.com"

// callGoogle issues a generateContent request, the vendor-SDK-style shape:
// one prompt string plus an optional structured output schema, returning a
// text payload expected to be JSON.
func (c *Client) callGoogle(ctx context.Context, cfg Config, prompt string, schema map[string]interface{}) (string, error) {
	if cfg.APIKey == "" {
		return "", errMissingKey
	}

	generationConfig := map[string]interface{}{
		"responseMimeType": "application/json",
	}
	if schema != nil {
		generationConfig["responseSchema"] = schema
	}
	body := map[string]interface{}{
		"contents": []map[string]interface{}{
			{"parts": []map[string]interface{}{{"text": prompt}}},
		},
		"generationConfig": generationConfig,
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("assist: encode request: %w", err)
	}

	base := c.GoogleBaseURL
	if base == "" {
		base = googleBaseURL
	}
	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", base, cfg.ModelOrDefault())

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("assist: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", cfg.APIKey)

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return "", fmt.Errorf("assist: google call: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("assist: read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("assist: google returned %d: %s", resp.StatusCode, truncate(string(data), 200))
	}

	var parsed struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.Unmarshal(data, &parsed); err != nil {
		return "", fmt.Errorf("assist: decode response: %w", err)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("assist: google returned no candidates")
	}
	return parsed.Candidates[0].Content.Parts[0].Text, nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}
