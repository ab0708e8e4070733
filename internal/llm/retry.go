package llm

import (
	"context"
	"fmt"
	"time"
)

// RetryClient wraps a Client with a fixed-count exponential backoff.
// Hosted providers rate-limit aggressively, so every client handed to the
// pipeline goes through this wrapper.
type RetryClient struct {
	Inner   Client
	Retries int
	Backoff time.Duration
}

func NewRetryClient(inner Client, retries int, backoff time.Duration) *RetryClient {
	if backoff <= 0 {
		backoff = time.Second
	}
	return &RetryClient{Inner: inner, Retries: retries, Backoff: backoff}
}

func (c *RetryClient) Generate(ctx context.Context, userMessage, systemMessage string) (string, error) {
	var lastErr error
	wait := c.Backoff
	for attempt := 0; attempt <= c.Retries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(wait):
			}
			wait *= 2
		}

		resp, err := c.Inner.Generate(ctx, userMessage, systemMessage)
		if err == nil {
			return resp, nil
		}
		lastErr = err
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
	}
	return "", fmt.Errorf("generate failed after %d attempts: %w", c.Retries+1, lastErr)
}
