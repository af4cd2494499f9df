package stt

import (
	"context"
	"sync"
)

// MockResult is a canned result for the MockTranscriber.
type MockResult struct {
	Transcript string
	Err        error
}

// MockTranscriber is a deterministic Transcriber for testing.
// It returns canned results in FIFO order and records all calls.
type MockTranscriber struct {
	mu      sync.Mutex
	results []MockResult
	Calls   [][]byte
}

// NewMockTranscriber creates a MockTranscriber with the given canned results.
func NewMockTranscriber(results ...MockResult) *MockTranscriber {
	return &MockTranscriber{results: results}
}

func (m *MockTranscriber) Transcribe(_ context.Context, audio []byte, _ string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, audio)

	if len(m.results) == 0 {
		return "", &ErrTranscriptionFailed{Provider: "mock", Err: nil}
	}

	r := m.results[0]
	m.results = m.results[1:]
	return r.Transcript, r.Err
}

// AddResult appends a canned result to the queue.
func (m *MockTranscriber) AddResult(r MockResult) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results = append(m.results, r)
}

// CallCount returns the number of Transcribe calls made.
func (m *MockTranscriber) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
