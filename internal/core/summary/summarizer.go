package summary

import (
	"context"
	"fmt"

	"github.com/vincent623/graphmaker/internal/llm"
)

// DefaultSystemPrompt instructs the model for per-chunk summary enrichment.
const DefaultSystemPrompt = "Succinctly summarise the text provided by the user. Respond only with the summary and no other comments."

// Summarizer produces the optional summary metadata attached to documents
// before extraction. Failures are returned to the caller; whether an empty
// summary is acceptable is the caller's call, not this package's.
type Summarizer struct {
	LLM          llm.Client
	SystemPrompt string
}

func NewSummarizer(llmClient llm.Client, systemPrompt string) *Summarizer {
	if systemPrompt == "" {
		systemPrompt = DefaultSystemPrompt
	}
	return &Summarizer{
		LLM:          llmClient,
		SystemPrompt: systemPrompt,
	}
}

func (s *Summarizer) Summarize(ctx context.Context, text string) (string, error) {
	response, err := s.LLM.Generate(ctx, text, s.SystemPrompt)
	if err != nil {
		return "", fmt.Errorf("failed to generate summary: %w", err)
	}
	return response, nil
}
