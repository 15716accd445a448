package engine

import (
	"context"
	"sync"
)

// MockGenerator is a test implementation of the Generator interface.
// It returns a fixed continuation, or Err when set, and records every prompt.
type MockGenerator struct {
	Err          error
	Continuation string
	prompts      []string
	mu           sync.Mutex
}

// NewMockGenerator creates a mock that always answers with continuation.
func NewMockGenerator(continuation string) *MockGenerator {
	return &MockGenerator{Continuation: continuation}
}

// Complete records the prompt and returns the scripted reply.
func (m *MockGenerator) Complete(_ context.Context, prompt string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.prompts = append(m.prompts, prompt)
	if m.Err != nil {
		return "", m.Err
	}
	return m.Continuation, nil
}

// Prompts returns a copy of the prompts received so far.
func (m *MockGenerator) Prompts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	prompts := make([]string, len(m.prompts))
	copy(prompts, m.prompts)
	return prompts
}

// CallCount returns the number of times Complete was called.
func (m *MockGenerator) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.prompts)
}
