package tts

import (
	"context"
	"sync"
)

// MockResult is a canned result for the MockSynthesizer.
type MockResult struct {
	Speech *Speech
	Err    error
}

// MockSynthesizer is a deterministic Synthesizer for testing.
// It returns canned results in FIFO order and records all calls.
type MockSynthesizer struct {
	mu      sync.Mutex
	results []MockResult
	Calls   []string
}

// NewMockSynthesizer creates a MockSynthesizer with the given canned results.
func NewMockSynthesizer(results ...MockResult) *MockSynthesizer {
	return &MockSynthesizer{results: results}
}

func (m *MockSynthesizer) Synthesize(_ context.Context, text string, _ SpeechOptions) (*Speech, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, text)

	if len(m.results) == 0 {
		return nil, &ErrSynthesisFailed{Provider: "mock", Err: nil}
	}

	r := m.results[0]
	m.results = m.results[1:]
	return r.Speech, r.Err
}

// AddResult appends a canned result to the queue.
func (m *MockSynthesizer) AddResult(r MockResult) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results = append(m.results, r)
}

// CallCount returns the number of Synthesize calls made.
func (m *MockSynthesizer) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
