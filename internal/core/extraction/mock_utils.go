package extraction

import (
	"context"
	"sync"
)

type MockLLMClient struct {
	Response      string
	Err           error
	ResponseQueue []string
	ErrQueue      []error

	mu    sync.Mutex
	Calls []string
}

func (m *MockLLMClient) Generate(ctx context.Context, userMessage, systemMessage string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, userMessage)

	if len(m.ErrQueue) > 0 {
		err := m.ErrQueue[0]
		m.ErrQueue = m.ErrQueue[1:]
		if err != nil {
			return "", err
		}
	} else if m.Err != nil {
		return "", m.Err
	}

	if len(m.ResponseQueue) > 0 {
		resp := m.ResponseQueue[0]
		m.ResponseQueue = m.ResponseQueue[1:]
		return resp, nil
	}
	return m.Response, nil
}
