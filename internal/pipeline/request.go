// Package pipeline orchestrates the voice tutoring flow: speech-to-text,
// LLM reply generation, and text-to-speech.
package pipeline

import (
	"fmt"

	"github.com/abhisek/gurukul/internal/tutor"
)

// Action selects which stages of the pipeline run.
type Action string

const (
	// ActionTranscribe runs STT only and returns the transcript.
	ActionTranscribe Action = "transcribe"

	// ActionRespond runs LLM (and TTS) on caller-supplied text, skipping STT.
	ActionRespond Action = "respond"

	// ActionFull runs the whole chain: STT, LLM, TTS.
	ActionFull Action = "full"
)

// ParseAction validates and returns an Action. Empty input defaults to full.
func ParseAction(s string) (Action, error) {
	switch Action(s) {
	case ActionTranscribe, ActionRespond, ActionFull:
		return Action(s), nil
	case "":
		return ActionFull, nil
	}
	return "", fmt.Errorf("unknown action: %q", s)
}

// Stage identifies where in the pipeline a failure occurred.
type Stage string

const (
	StageSTT Stage = "stt"
	StageLLM Stage = "llm"
	StageTTS Stage = "tts"
)

// Request is one pipeline invocation.
type Request struct {
	Action Action

	// Audio is the recorded question. Required for transcribe and full.
	Audio     []byte
	AudioMime string

	// Text is the student's question as text. Required for respond.
	Text string

	// Context carries the student profile used to shape the reply.
	Context tutor.Context
}

// Result is the outcome of one pipeline run.
//
// A run with reply text succeeds even when speech synthesis failed; the
// degraded audio is reported through SpeechError instead. FailureStage is
// set only when Succeeded is false.
type Result struct {
	Transcript string
	ReplyText  string
	Audio      []byte
	AudioMime  string

	Succeeded    bool
	FailureStage Stage
	ErrorMessage string

	// SpeechError notes a TTS failure on an otherwise successful run.
	SpeechError string
}
