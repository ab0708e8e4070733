package llm

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

type GeminiClient struct {
	client   *genai.Client
	model    string
	sampling Sampling
}

func NewGeminiClient(ctx context.Context, apiKey, model string, sampling Sampling) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}
	return &GeminiClient{
		client:   client,
		model:    model,
		sampling: sampling,
	}, nil
}

func (c *GeminiClient) Generate(ctx context.Context, userMessage, systemMessage string) (string, error) {
	model := c.client.GenerativeModel(c.model)
	model.SetTemperature(c.sampling.Temperature)
	model.SetTopP(c.sampling.TopP)
	if systemMessage != "" {
		model.SystemInstruction = &genai.Content{
			Parts: []genai.Part{genai.Text(systemMessage)},
		}
	}

	resp, err := model.GenerateContent(ctx, genai.Text(userMessage))
	if err != nil {
		return "", err
	}

	if len(resp.Candidates) > 0 && resp.Candidates[0].Content != nil && len(resp.Candidates[0].Content.Parts) > 0 {
		if txt, ok := resp.Candidates[0].Content.Parts[0].(genai.Text); ok {
			return string(txt), nil
		}
	}
	return "", fmt.Errorf("no response candidates or content")
}
