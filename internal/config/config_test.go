package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	data := `
[llm]
provider = "groq"
model = "mixtral-8x7b-32768"
temperature = 0.1
top_p = 0.5
retries = 3
retry_backoff_ms = 250

[neo4j]
uri = "bolt://db:7687"
user = "neo4j"

[pipeline]
delay_ms = 500
workers = 4
create_indices = true
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "groq", cfg.LLM.Provider)
	assert.Equal(t, "mixtral-8x7b-32768", cfg.LLM.Model)
	assert.Equal(t, 250*time.Millisecond, cfg.LLM.RetryBackoff())
	assert.Equal(t, "bolt://db:7687", cfg.Neo4j.URI)
	assert.Equal(t, 500*time.Millisecond, cfg.Pipeline.Delay())
	assert.Equal(t, 4, cfg.Pipeline.Workers)
	assert.True(t, cfg.Pipeline.CreateIndices)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/config.toml")
	assert.Error(t, err)
}

func TestApplyEnvWinsOverFile(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "claude")
	t.Setenv("LLM_API_KEY", "sk-test")
	t.Setenv("NEO4J_PASSWORD", "hunter2")

	cfg := Default()
	cfg.LLM.Provider = "openai"
	cfg.ApplyEnv()

	assert.Equal(t, "claude", cfg.LLM.Provider)
	assert.Equal(t, "sk-test", cfg.LLM.APIKey)
	assert.Equal(t, "hunter2", cfg.Neo4j.Password)
}

func TestDefaultBackoffFloor(t *testing.T) {
	cfg := LLMConfig{}
	assert.Equal(t, time.Second, cfg.RetryBackoff())
}
