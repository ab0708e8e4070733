package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vincent623/graphmaker/internal/config"
)

func TestNewClientUnsupportedProvider(t *testing.T) {
	_, err := NewClient(context.Background(), config.LLMConfig{Provider: "mystery"})
	assert.Error(t, err)
}

func TestNewClientWrapsWithRetry(t *testing.T) {
	client, err := NewClient(context.Background(), config.LLMConfig{
		Provider: "openai",
		Model:    "gpt-3.5-turbo",
		APIKey:   "sk-test",
		Retries:  2,
	})
	require.NoError(t, err)
	_, ok := client.(*RetryClient)
	assert.True(t, ok, "retries > 0 must wrap the provider client")
}

func TestNewClientGroqAndOllamaUseOpenAICompat(t *testing.T) {
	for _, provider := range []string{"groq", "ollama"} {
		client, err := NewClient(context.Background(), config.LLMConfig{
			Provider: provider,
			Model:    "some-model",
		})
		require.NoError(t, err, provider)
		_, ok := client.(*OpenAIClient)
		assert.True(t, ok, "%s should ride the OpenAI-compatible client", provider)
	}
}
