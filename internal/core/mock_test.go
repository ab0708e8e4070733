package core

import (
	"context"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/vincent623/graphmaker/internal/core/model"
)

type MockDriver struct {
	SavedEdges     []model.Edge
	IndicesCreated bool
	SaveCalls      int
	Err            error
}

func (m *MockDriver) ExecuteQuery(ctx context.Context, query string, params map[string]interface{}) (neo4j.EagerResult, error) {
	return neo4j.EagerResult{}, m.Err
}

func (m *MockDriver) Save(ctx context.Context, edges []model.Edge, createIndices bool) error {
	if m.Err != nil {
		return m.Err
	}
	m.SaveCalls++
	if createIndices {
		m.IndicesCreated = true
	}
	m.SavedEdges = append(m.SavedEdges, edges...)
	return nil
}

func (m *MockDriver) BuildIndices(ctx context.Context) error {
	return m.Err
}

func (m *MockDriver) Close(ctx context.Context) error {
	return nil
}

type MockLLM struct {
	Response      string
	ResponseQueue []string
	Err           error
}

func (m *MockLLM) Generate(ctx context.Context, userMessage, systemMessage string) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	if len(m.ResponseQueue) > 0 {
		resp := m.ResponseQueue[0]
		m.ResponseQueue = m.ResponseQueue[1:]
		return resp, nil
	}
	return m.Response, nil
}
