// Package tts provides text-to-speech synthesis for the voice pipeline.
package tts

import (
	"context"
	"fmt"

	"github.com/abhisek/gurukul/internal/tutor"
)

// SpeechOptions selects voice and language for one synthesis call.
type SpeechOptions struct {
	VoiceID  string
	Language tutor.Language
}

// Speech is a synthesized audio payload.
type Speech struct {
	Audio    []byte
	MimeType string
}

// Synthesizer converts reply text into speech.
//
// Synthesis is the optional tail of the pipeline: a failure here must never
// discard an already-produced text reply, so callers treat errors as
// degraded output rather than request failure. Implementations make exactly
// one provider call; retry policy belongs to the caller.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string, opts SpeechOptions) (*Speech, error)
}

// ErrSynthesisFailed indicates the provider call failed.
type ErrSynthesisFailed struct {
	Provider string
	Err      error
}

func (e *ErrSynthesisFailed) Error() string {
	return fmt.Sprintf("%s speech synthesis failed: %v", e.Provider, e.Err)
}

func (e *ErrSynthesisFailed) Unwrap() error { return e.Err }
