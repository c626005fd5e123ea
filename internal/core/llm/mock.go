package llm

import (
	"context"
	"strings"
	"sync"
)

// MockClient is a Client for tests. It records every request and returns a
// canned response, or dispatches through RespondFunc when set.
type MockClient struct {
	mu          sync.Mutex
	Response    string
	Usage       Usage
	Err         error
	RespondFunc func(req Request) (string, error)
	Calls       []Request
}

func NewMockClient(response string) *MockClient {
	return &MockClient{
		Response: response,
		Usage:    Usage{InputTokens: 120, OutputTokens: 450},
	}
}

func (m *MockClient) Complete(_ context.Context, req Request) (*Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)
	if m.RespondFunc != nil {
		text, err := m.RespondFunc(req)
		if err != nil {
			return nil, err
		}
		return &Result{Text: text, Usage: m.Usage}, nil
	}
	if m.Err != nil {
		return nil, m.Err
	}
	return &Result{Text: m.Response, Usage: m.Usage}, nil
}

// CallCount returns the number of completion calls made.
func (m *MockClient) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

// LastCall returns the most recent request, or a zero Request if none.
func (m *MockClient) LastCall() Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Calls) == 0 {
		return Request{}
	}
	return m.Calls[len(m.Calls)-1]
}

// SawModel reports whether any recorded call used the given model.
func (m *MockClient) SawModel(model string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.Calls {
		if strings.EqualFold(c.Model, model) {
			return true
		}
	}
	return false
}
