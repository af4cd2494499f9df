package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/abhisek/gurukul/internal/llm"
	"github.com/abhisek/gurukul/internal/provider"
	"github.com/abhisek/gurukul/internal/stt"
	"github.com/abhisek/gurukul/internal/tts"
	"github.com/abhisek/gurukul/internal/tutor"
)

const (
	defaultStageTimeout = 30 * time.Second
	replyMaxTokens      = 1024

	emptyTranscriptMessage = "could not understand audio"

	fallbackReplyEnglish = "Sorry, I could not think of an answer just now. Please ask me again."
	fallbackReplyHindi   = "माफ़ कीजिए, मैं अभी जवाब नहीं सोच पाई। कृपया फिर से पूछिए।"
)

// Orchestrator runs the voice pipeline. Providers are resolved through the
// registry per run, so priority order and availability decide which concrete
// client serves each stage.
type Orchestrator struct {
	registry     *provider.Registry
	transcribers map[string]stt.Transcriber
	llms         map[string]llm.Provider
	synthesizers map[string]tts.Synthesizer
	stageTimeout time.Duration
}

// New creates an Orchestrator. The maps are keyed by provider ID and hold the
// concrete clients for providers the registry may resolve to.
func New(
	registry *provider.Registry,
	transcribers map[string]stt.Transcriber,
	llms map[string]llm.Provider,
	synthesizers map[string]tts.Synthesizer,
) *Orchestrator {
	return &Orchestrator{
		registry:     registry,
		transcribers: transcribers,
		llms:         llms,
		synthesizers: synthesizers,
		stageTimeout: defaultStageTimeout,
	}
}

// SetStageTimeout overrides the per-stage deadline. Zero restores the default.
func (o *Orchestrator) SetStageTimeout(d time.Duration) {
	if d <= 0 {
		d = defaultStageTimeout
	}
	o.stageTimeout = d
}

// Run executes the requested action. Stage failures are reported through the
// Result; the returned error covers only malformed requests.
func (o *Orchestrator) Run(ctx context.Context, req Request) (*Result, error) {
	action, err := ParseAction(string(req.Action))
	if err != nil {
		return nil, err
	}

	switch action {
	case ActionTranscribe, ActionFull:
		if len(req.Audio) == 0 {
			return nil, fmt.Errorf("action %q requires audio", action)
		}
	case ActionRespond:
		if strings.TrimSpace(req.Text) == "" {
			return nil, fmt.Errorf("action %q requires text", action)
		}
	}

	result := &Result{}

	question := strings.TrimSpace(req.Text)
	if action == ActionTranscribe || action == ActionFull {
		transcript, err := o.transcribe(ctx, req)
		if err != nil {
			return stageFailure(StageSTT, err), nil
		}
		result.Transcript = transcript
		question = transcript
	}

	if action == ActionTranscribe {
		result.Succeeded = true
		return result, nil
	}

	// An unintelligible recording must not reach the LLM: there is no
	// question to answer, so the run fails at the STT stage.
	if action == ActionFull && question == "" {
		result.FailureStage = StageSTT
		result.ErrorMessage = emptyTranscriptMessage
		return result, nil
	}

	reply, err := o.respond(ctx, question, req.Context)
	if err != nil {
		result.FailureStage = StageLLM
		result.ErrorMessage = err.Error()
		return result, nil
	}
	result.ReplyText = reply
	result.Succeeded = true

	// TTS is best effort: a reply the student can read is a success even
	// when the audio could not be produced.
	speech, err := o.synthesize(ctx, reply, req.Context)
	if err != nil {
		result.SpeechError = err.Error()
		return result, nil
	}
	if speech != nil {
		result.Audio = speech.Audio
		result.AudioMime = speech.MimeType
	}
	return result, nil
}

func stageFailure(stage Stage, err error) *Result {
	return &Result{FailureStage: stage, ErrorMessage: err.Error()}
}

func (o *Orchestrator) transcribe(ctx context.Context, req Request) (string, error) {
	desc, err := o.registry.Resolve(provider.CapabilitySTT)
	if err != nil {
		return "", err
	}
	t, ok := o.transcribers[desc.ID]
	if !ok {
		return "", fmt.Errorf("no client for STT provider %q", desc.ID)
	}

	ctx, cancel := context.WithTimeout(ctx, o.stageTimeout)
	defer cancel()
	return t.Transcribe(ctx, req.Audio, req.AudioMime)
}

func (o *Orchestrator) respond(ctx context.Context, question string, tc tutor.Context) (string, error) {
	desc, err := o.registry.Resolve(provider.CapabilityLLM)
	if err != nil {
		return "", err
	}
	p, ok := o.llms[desc.ID]
	if !ok {
		return "", fmt.Errorf("no client for LLM provider %q", desc.ID)
	}

	messages := make([]llm.Message, 0, len(tc.History)+1)
	for _, turn := range tc.History {
		role := llm.RoleUser
		if turn.Role == "assistant" {
			role = llm.RoleAssistant
		}
		messages = append(messages, llm.Message{Role: role, Content: turn.Content})
	}
	messages = append(messages, llm.Message{Role: llm.RoleUser, Content: question})

	ctx = llm.WithPurpose(ctx, "voice-reply")
	ctx, cancel := context.WithTimeout(ctx, o.stageTimeout)
	defer cancel()

	resp, err := p.Generate(ctx, llm.Request{
		System:      tutor.BuildVoicePrompt(tc),
		Messages:    messages,
		MaxTokens:   replyMaxTokens,
		Temperature: 0.7,
	})
	if err != nil {
		return "", err
	}

	reply := strings.TrimSpace(decodeText(resp.Content))
	if reply == "" {
		reply = fallbackReplyEnglish
		if tc.Language == tutor.LanguageHindi {
			reply = fallbackReplyHindi
		}
	}
	return reply, nil
}

// SynthesizeText runs the TTS stage by itself, outside a pipeline run.
// Unlike the optional tail of Run, a missing TTS provider is an error here:
// the caller asked for speech and nothing else.
func (o *Orchestrator) SynthesizeText(ctx context.Context, text string, opts tts.SpeechOptions) (*tts.Speech, error) {
	desc, err := o.registry.Resolve(provider.CapabilityTTS)
	if err != nil {
		return nil, err
	}
	s, ok := o.synthesizers[desc.ID]
	if !ok {
		return nil, fmt.Errorf("no client for TTS provider %q", desc.ID)
	}

	ctx, cancel := context.WithTimeout(ctx, o.stageTimeout)
	defer cancel()
	return s.Synthesize(ctx, text, opts)
}

func (o *Orchestrator) synthesize(ctx context.Context, text string, tc tutor.Context) (*tts.Speech, error) {
	desc, err := o.registry.Resolve(provider.CapabilityTTS)
	if err != nil {
		// No TTS configured at all: text-only replies are fine.
		return nil, nil
	}
	s, ok := o.synthesizers[desc.ID]
	if !ok {
		return nil, fmt.Errorf("no client for TTS provider %q", desc.ID)
	}

	ctx, cancel := context.WithTimeout(ctx, o.stageTimeout)
	defer cancel()
	return s.Synthesize(ctx, text, tts.SpeechOptions{Language: tc.Language})
}

// decodeText unwraps a text completion. Providers return plain text as a
// JSON-encoded string; anything else is used verbatim.
func decodeText(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}
