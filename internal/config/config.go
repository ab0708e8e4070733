package config

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
)

type LLMConfig struct {
	Provider       string  `toml:"provider"`
	Model          string  `toml:"model"`
	APIKey         string  `toml:"api_key"`
	BaseURL        string  `toml:"base_url"`
	Temperature    float32 `toml:"temperature"`
	TopP           float32 `toml:"top_p"`
	Retries        int     `toml:"retries"`
	RetryBackoffMS int     `toml:"retry_backoff_ms"`
}

func (c LLMConfig) RetryBackoff() time.Duration {
	if c.RetryBackoffMS <= 0 {
		return time.Second
	}
	return time.Duration(c.RetryBackoffMS) * time.Millisecond
}

type Neo4jConfig struct {
	URI      string `toml:"uri"`
	User     string `toml:"user"`
	Password string `toml:"password"`
}

type PipelineConfig struct {
	DelayMS       int  `toml:"delay_ms"`       // pause between per-document model calls
	Workers       int  `toml:"workers"`        // >1 enables the bounded worker pool
	CreateIndices bool `toml:"create_indices"` // issue index statements before saving
}

func (c PipelineConfig) Delay() time.Duration {
	return time.Duration(c.DelayMS) * time.Millisecond
}

// PromptConfig overrides the compiled-in prompt templates. Templates are
// fmt format strings; see internal/core/extraction for the argument order.
type PromptConfig struct {
	Extraction string `toml:"extraction"`
	Summary    string `toml:"summary"`
}

type Config struct {
	LLM      LLMConfig      `toml:"llm"`
	Neo4j    Neo4jConfig    `toml:"neo4j"`
	Pipeline PipelineConfig `toml:"pipeline"`
	Prompts  PromptConfig   `toml:"prompts"`
}

// Default returns the config used when no file is given.
func Default() *Config {
	return &Config{
		LLM: LLMConfig{
			Provider:    "openai",
			Model:       "gpt-3.5-turbo",
			Temperature: 0.1,
			TopP:        0.5,
			Retries:     2,
		},
		Neo4j: Neo4jConfig{
			URI: "bolt://localhost:7687",
		},
		Pipeline: PipelineConfig{
			Workers: 1,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	return cfg, nil
}

// ApplyEnv overrides config values from the environment. Env vars win over
// the file so deployments can keep secrets out of it.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("LLM_PROVIDER"); v != "" {
		c.LLM.Provider = v
	}
	if v := os.Getenv("LLM_MODEL"); v != "" {
		c.LLM.Model = v
	}
	if v := os.Getenv("LLM_API_KEY"); v != "" {
		c.LLM.APIKey = v
	}
	if v := os.Getenv("LLM_BASE_URL"); v != "" {
		c.LLM.BaseURL = v
	}
	if v := os.Getenv("NEO4J_URI"); v != "" {
		c.Neo4j.URI = v
	}
	if v := os.Getenv("NEO4J_USER"); v != "" {
		c.Neo4j.User = v
	}
	if v := os.Getenv("NEO4J_PASSWORD"); v != "" {
		c.Neo4j.Password = v
	}
}
