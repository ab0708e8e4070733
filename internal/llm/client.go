package llm

import (
	"context"
)

// Client is the narrow contract the pipeline needs from a hosted model:
// one completion call. The system message sets behavioral instructions;
// callers must parse the returned text defensively.
type Client interface {
	Generate(ctx context.Context, userMessage, systemMessage string) (string, error)
}

// Sampling carries the generation parameters shared by all providers.
type Sampling struct {
	Temperature float32
	TopP        float32
}
