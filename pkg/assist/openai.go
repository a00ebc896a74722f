package assist

import (
	"context"
	"errors"

	openai "github.com/sashabaranov/go-openai"
)

// callCustom issues a chat completion against an OpenAI-compatible
// endpoint: a system/user message pair and a model identifier, returning
// the message content.
func (c *Client) callCustom(ctx context.Context, cfg Config, systemPrompt, userPrompt string) (string, error) {
	client, err := c.customClient(cfg)
	if err != nil {
		return "", err
	}

	resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: cfg.ModelOrDefault(),
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: systemPrompt + " You must respond with valid JSON only.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: userPrompt,
			},
		},
		Temperature: 0.7,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("assist: provider returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

func (c *Client) callCustomPing(ctx context.Context, cfg Config, ping string) (string, error) {
	client, err := c.customClient(cfg)
	if err != nil {
		return "", err
	}

	resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: cfg.ModelOrDefault(),
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: ping},
		},
		MaxTokens: 5,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("assist: provider returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

func (c *Client) customClient(cfg Config) (*openai.Client, error) {
	if cfg.APIKey == "" || cfg.BaseURL == "" {
		return nil, errors.New("assist: missing API key or base URL")
	}
	oc := openai.DefaultConfig(cfg.APIKey)
	oc.BaseURL = cfg.BaseURL
	if c.HTTPClient != nil {
		oc.HTTPClient = c.HTTPClient
	}
	return openai.NewClientWithConfig(oc), nil
}
