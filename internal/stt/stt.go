// Package stt provides speech-to-text transcription for the voice pipeline.
package stt

import (
	"context"
	"fmt"
)

// Transcriber converts raw audio into text.
//
// An empty or whitespace-only transcript is returned as "" with a nil error:
// the provider succeeded but could not understand the audio, and the
// orchestrator decides what that means for the request. Implementations make
// exactly one provider call; retry policy belongs to the caller.
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte, mimeType string) (string, error)
}

// ErrTranscriptionFailed indicates the provider call itself failed.
type ErrTranscriptionFailed struct {
	Provider string
	Err      error
}

func (e *ErrTranscriptionFailed) Error() string {
	return fmt.Sprintf("%s transcription failed: %v", e.Provider, e.Err)
}

func (e *ErrTranscriptionFailed) Unwrap() error { return e.Err }
