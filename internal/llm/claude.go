package llm

import (
	"context"
	"fmt"

	"github.com/liushuangls/go-anthropic/v2"
)

type ClaudeClient struct {
	client   *anthropic.Client
	model    string
	sampling Sampling
}

func NewClaudeClient(apiKey, model, baseURL string, sampling Sampling) *ClaudeClient {
	var opts []anthropic.ClientOption
	if baseURL != "" {
		opts = append(opts, anthropic.WithBaseURL(baseURL))
	}
	return &ClaudeClient{
		client:   anthropic.NewClient(apiKey, opts...),
		model:    model,
		sampling: sampling,
	}
}

func (c *ClaudeClient) Generate(ctx context.Context, userMessage, systemMessage string) (string, error) {
	temp := c.sampling.Temperature
	topP := c.sampling.TopP
	resp, err := c.client.CreateMessages(ctx, anthropic.MessagesRequest{
		Model:  anthropic.Model(c.model),
		System: systemMessage,
		Messages: []anthropic.Message{
			{
				Role: anthropic.RoleUser,
				Content: []anthropic.MessageContent{
					anthropic.NewTextMessageContent(userMessage),
				},
			},
		},
		MaxTokens:   4096,
		Temperature: &temp,
		TopP:        &topP,
	})
	if err != nil {
		return "", err
	}

	if len(resp.Content) > 0 && resp.Content[0].Text != nil {
		return *resp.Content[0].Text, nil
	}
	return "", fmt.Errorf("no response content")
}
