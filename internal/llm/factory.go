package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/vincent623/graphmaker/internal/config"
)

const groqBaseURL = "https://api.groq.com/openai/v1"

// NewClient builds a provider client from config. Groq and Ollama are served
// by the OpenAI-compatible client with the appropriate base URL.
func NewClient(ctx context.Context, cfg config.LLMConfig) (Client, error) {
	sampling := Sampling{
		Temperature: cfg.Temperature,
		TopP:        cfg.TopP,
	}

	var inner Client
	switch provider := strings.ToLower(cfg.Provider); provider {
	case "openai":
		inner = NewOpenAIClient(cfg.APIKey, cfg.Model, cfg.BaseURL, sampling)

	case "groq":
		baseURL := cfg.BaseURL
		if baseURL == "" {
			baseURL = groqBaseURL
		}
		inner = NewOpenAIClient(cfg.APIKey, cfg.Model, baseURL, sampling)

	case "ollama":
		baseURL := cfg.BaseURL
		if baseURL == "" {
			baseURL = "http://localhost:11434"
		}
		if !strings.HasSuffix(baseURL, "/v1") {
			baseURL = fmt.Sprintf("%s/v1", strings.TrimRight(baseURL, "/"))
		}
		// API key is ignored by Ollama but required by the client config.
		apiKey := cfg.APIKey
		if apiKey == "" {
			apiKey = "ollama"
		}
		inner = NewOpenAIClient(apiKey, cfg.Model, baseURL, sampling)

	case "gemini":
		c, err := NewGeminiClient(ctx, cfg.APIKey, cfg.Model, sampling)
		if err != nil {
			return nil, err
		}
		inner = c

	case "claude":
		inner = NewClaudeClient(cfg.APIKey, cfg.Model, cfg.BaseURL, sampling)

	default:
		return nil, fmt.Errorf("unsupported llm provider: %s", cfg.Provider)
	}

	if cfg.Retries > 0 {
		return NewRetryClient(inner, cfg.Retries, cfg.RetryBackoff()), nil
	}
	return inner, nil
}
