package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/gurukul/internal/llm"
	"github.com/abhisek/gurukul/internal/provider"
	"github.com/abhisek/gurukul/internal/stt"
	"github.com/abhisek/gurukul/internal/tts"
	"github.com/abhisek/gurukul/internal/tutor"
)

func testRegistry(withTTS bool) *provider.Registry {
	cfg := provider.DefaultConfig()
	cfg.Deepgram.APIKey = "dg"
	cfg.Groq.APIKey = "gq"
	if withTTS {
		cfg.ElevenLabs.APIKey = "el"
	}
	return provider.NewRegistry(cfg)
}

func testOrchestrator(reg *provider.Registry, transcriber *stt.MockTranscriber, model *llm.MockProvider, synth *tts.MockSynthesizer) *Orchestrator {
	transcribers := map[string]stt.Transcriber{}
	if transcriber != nil {
		transcribers[provider.IDDeepgram] = transcriber
	}
	llms := map[string]llm.Provider{}
	if model != nil {
		llms[provider.IDGroq] = model
	}
	synths := map[string]tts.Synthesizer{}
	if synth != nil {
		synths[provider.IDElevenLabs] = synth
	}
	return New(reg, transcribers, llms, synths)
}

func studentContext() tutor.Context {
	return tutor.Context{
		StudentName:  "Asha",
		Style:        tutor.StyleVisual,
		MasteryLevel: 55,
		Grade:        7,
		Topic:        "Photosynthesis",
		Language:     tutor.LanguageEnglish,
	}
}

func TestRun_FullSuccess(t *testing.T) {
	transcriber := stt.NewMockTranscriber(stt.MockResult{Transcript: "why do leaves need sunlight"})
	model := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`"Leaves use sunlight to make food."`)})
	synth := tts.NewMockSynthesizer(tts.MockResult{Speech: &tts.Speech{Audio: []byte("mp3"), MimeType: "audio/mpeg"}})

	o := testOrchestrator(testRegistry(true), transcriber, model, synth)

	result, err := o.Run(context.Background(), Request{
		Action:  ActionFull,
		Audio:   []byte("audio"),
		Context: studentContext(),
	})
	require.NoError(t, err)

	assert.True(t, result.Succeeded)
	assert.Empty(t, result.FailureStage)
	assert.Equal(t, "why do leaves need sunlight", result.Transcript)
	assert.Equal(t, "Leaves use sunlight to make food.", result.ReplyText)
	assert.Equal(t, []byte("mp3"), result.Audio)
	assert.Equal(t, "audio/mpeg", result.AudioMime)

	require.Equal(t, 1, model.CallCount())
	call := model.Calls[0]
	assert.Contains(t, call.System, "Asha")
	require.Len(t, call.Messages, 1)
	assert.Equal(t, "why do leaves need sunlight", call.Messages[0].Content)

	require.Equal(t, 1, synth.CallCount())
	assert.Equal(t, "Leaves use sunlight to make food.", synth.Calls[0])
}

func TestRun_EmptyTranscriptSkipsLLM(t *testing.T) {
	transcriber := stt.NewMockTranscriber(stt.MockResult{Transcript: ""})
	model := llm.NewMockProvider()
	synth := tts.NewMockSynthesizer()

	o := testOrchestrator(testRegistry(true), transcriber, model, synth)

	result, err := o.Run(context.Background(), Request{
		Action:  ActionFull,
		Audio:   []byte("silence"),
		Context: studentContext(),
	})
	require.NoError(t, err)

	assert.False(t, result.Succeeded)
	assert.Equal(t, StageSTT, result.FailureStage)
	assert.Equal(t, emptyTranscriptMessage, result.ErrorMessage)
	assert.Equal(t, 0, model.CallCount())
	assert.Equal(t, 0, synth.CallCount())
}

func TestRun_TTSFailureKeepsReply(t *testing.T) {
	transcriber := stt.NewMockTranscriber(stt.MockResult{Transcript: "what is a fraction"})
	model := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`"A fraction is a part of a whole."`)})
	synth := tts.NewMockSynthesizer(tts.MockResult{Err: fmt.Errorf("voice service down")})

	o := testOrchestrator(testRegistry(true), transcriber, model, synth)

	result, err := o.Run(context.Background(), Request{
		Action:  ActionFull,
		Audio:   []byte("audio"),
		Context: studentContext(),
	})
	require.NoError(t, err)

	assert.True(t, result.Succeeded)
	assert.Empty(t, result.FailureStage)
	assert.Equal(t, "A fraction is a part of a whole.", result.ReplyText)
	assert.Nil(t, result.Audio)
	assert.Contains(t, result.SpeechError, "voice service down")
}

func TestRun_NoTTSConfiguredStillSucceeds(t *testing.T) {
	model := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`"Here is the idea."`)})

	o := testOrchestrator(testRegistry(false), nil, model, nil)

	result, err := o.Run(context.Background(), Request{
		Action:  ActionRespond,
		Text:    "explain ratios",
		Context: studentContext(),
	})
	require.NoError(t, err)

	assert.True(t, result.Succeeded)
	assert.Equal(t, "Here is the idea.", result.ReplyText)
	assert.Nil(t, result.Audio)
	assert.Empty(t, result.SpeechError)
}

func TestRun_RespondSkipsSTT(t *testing.T) {
	transcriber := stt.NewMockTranscriber()
	model := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`"Sure."`)})

	o := testOrchestrator(testRegistry(false), transcriber, model, nil)

	result, err := o.Run(context.Background(), Request{
		Action:  ActionRespond,
		Text:    "what is velocity",
		Context: studentContext(),
	})
	require.NoError(t, err)

	assert.True(t, result.Succeeded)
	assert.Equal(t, 0, transcriber.CallCount())
	require.Equal(t, 1, model.CallCount())
	assert.Equal(t, "what is velocity", model.Calls[0].Messages[0].Content)
}

func TestRun_TranscribeOnly(t *testing.T) {
	transcriber := stt.NewMockTranscriber(stt.MockResult{Transcript: "repeat after me"})
	model := llm.NewMockProvider()

	o := testOrchestrator(testRegistry(false), transcriber, model, nil)

	result, err := o.Run(context.Background(), Request{
		Action: ActionTranscribe,
		Audio:  []byte("audio"),
	})
	require.NoError(t, err)

	assert.True(t, result.Succeeded)
	assert.Equal(t, "repeat after me", result.Transcript)
	assert.Empty(t, result.ReplyText)
	assert.Equal(t, 0, model.CallCount())
}

func TestRun_STTFailure(t *testing.T) {
	transcriber := stt.NewMockTranscriber(stt.MockResult{Err: &stt.ErrTranscriptionFailed{Provider: "deepgram", Err: fmt.Errorf("boom")}})
	model := llm.NewMockProvider()

	o := testOrchestrator(testRegistry(false), transcriber, model, nil)

	result, err := o.Run(context.Background(), Request{
		Action:  ActionFull,
		Audio:   []byte("audio"),
		Context: studentContext(),
	})
	require.NoError(t, err)

	assert.False(t, result.Succeeded)
	assert.Equal(t, StageSTT, result.FailureStage)
	assert.Contains(t, result.ErrorMessage, "deepgram")
	assert.Equal(t, 0, model.CallCount())
}

func TestRun_LLMFailure(t *testing.T) {
	model := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: fmt.Errorf("down")}})

	o := testOrchestrator(testRegistry(false), nil, model, nil)

	result, err := o.Run(context.Background(), Request{
		Action:  ActionRespond,
		Text:    "what is gravity",
		Context: studentContext(),
	})
	require.NoError(t, err)

	assert.False(t, result.Succeeded)
	assert.Equal(t, StageLLM, result.FailureStage)
	assert.NotEmpty(t, result.ErrorMessage)
}

func TestRun_EmptyReplyGetsFallback(t *testing.T) {
	model := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`"   "`)})

	o := testOrchestrator(testRegistry(false), nil, model, nil)

	result, err := o.Run(context.Background(), Request{
		Action:  ActionRespond,
		Text:    "hello",
		Context: studentContext(),
	})
	require.NoError(t, err)

	assert.True(t, result.Succeeded)
	assert.Equal(t, fallbackReplyEnglish, result.ReplyText)
}

func TestRun_EmptyReplyFallbackHindi(t *testing.T) {
	model := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`""`)})

	tc := studentContext()
	tc.Language = tutor.LanguageHindi

	o := testOrchestrator(testRegistry(false), nil, model, nil)

	result, err := o.Run(context.Background(), Request{
		Action:  ActionRespond,
		Text:    "नमस्ते",
		Context: tc,
	})
	require.NoError(t, err)
	assert.Equal(t, fallbackReplyHindi, result.ReplyText)
}

func TestRun_HistoryForwarded(t *testing.T) {
	model := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`"Right."`)})

	tc := studentContext()
	tc.History = []tutor.Turn{
		{Role: "user", Content: "what is a cell"},
		{Role: "assistant", Content: "The smallest unit of life."},
	}

	o := testOrchestrator(testRegistry(false), nil, model, nil)

	_, err := o.Run(context.Background(), Request{
		Action:  ActionRespond,
		Text:    "and what is inside one",
		Context: tc,
	})
	require.NoError(t, err)

	require.Equal(t, 1, model.CallCount())
	msgs := model.Calls[0].Messages
	require.Len(t, msgs, 3)
	assert.Equal(t, llm.RoleUser, msgs[0].Role)
	assert.Equal(t, llm.RoleAssistant, msgs[1].Role)
	assert.Equal(t, "and what is inside one", msgs[2].Content)
}

func TestRun_InvalidRequests(t *testing.T) {
	o := testOrchestrator(testRegistry(false), stt.NewMockTranscriber(), llm.NewMockProvider(), nil)

	_, err := o.Run(context.Background(), Request{Action: "summarize"})
	assert.Error(t, err)

	_, err = o.Run(context.Background(), Request{Action: ActionTranscribe})
	assert.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "audio"))

	_, err = o.Run(context.Background(), Request{Action: ActionRespond, Text: "   "})
	assert.Error(t, err)
}

// stalledProvider blocks until the stage deadline cancels it.
type stalledProvider struct{}

func (stalledProvider) Generate(ctx context.Context, _ llm.Request) (*llm.Response, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (stalledProvider) ModelID() string { return "stalled" }

func TestRun_StageTimeoutIsStageFailure(t *testing.T) {
	o := New(testRegistry(false), nil, map[string]llm.Provider{provider.IDGroq: stalledProvider{}}, nil)
	o.SetStageTimeout(5 * time.Millisecond)

	result, err := o.Run(context.Background(), Request{
		Action:  ActionRespond,
		Text:    "what is photosynthesis",
		Context: studentContext(),
	})
	require.NoError(t, err)

	assert.False(t, result.Succeeded)
	assert.Equal(t, StageLLM, result.FailureStage)
	assert.Contains(t, result.ErrorMessage, "deadline")
}

func TestRun_NoSTTProviderConfigured(t *testing.T) {
	cfg := provider.DefaultConfig()
	cfg.Groq.APIKey = "gq"
	reg := provider.NewRegistry(cfg)

	o := testOrchestrator(reg, nil, llm.NewMockProvider(), nil)

	result, err := o.Run(context.Background(), Request{
		Action: ActionTranscribe,
		Audio:  []byte("audio"),
	})
	require.NoError(t, err)

	assert.False(t, result.Succeeded)
	assert.Equal(t, StageSTT, result.FailureStage)
	assert.Contains(t, result.ErrorMessage, "stt")
}
