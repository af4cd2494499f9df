package httpapi

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/gurukul/internal/llm"
	"github.com/abhisek/gurukul/internal/pipeline"
	"github.com/abhisek/gurukul/internal/provider"
	"github.com/abhisek/gurukul/internal/renderjobs"
	"github.com/abhisek/gurukul/internal/store"
	"github.com/abhisek/gurukul/internal/stt"
	"github.com/abhisek/gurukul/internal/tts"
)

type testEnv struct {
	server      *Server
	transcriber *stt.MockTranscriber
	model       *llm.MockProvider
	synth       *tts.MockSynthesizer
}

func newTestEnv(t *testing.T, withTTS bool) *testEnv {
	t.Helper()

	cfg := provider.DefaultConfig()
	cfg.Deepgram.APIKey = "dg"
	cfg.Groq.APIKey = "gq"
	if withTTS {
		cfg.ElevenLabs.APIKey = "el"
	}
	registry := provider.NewRegistry(cfg)

	transcriber := stt.NewMockTranscriber()
	model := llm.NewMockProvider()
	synth := tts.NewMockSynthesizer()

	orch := pipeline.New(
		registry,
		map[string]stt.Transcriber{provider.IDDeepgram: transcriber},
		map[string]llm.Provider{provider.IDGroq: model},
		map[string]tts.Synthesizer{provider.IDElevenLabs: synth},
	)

	s, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	jobs := renderjobs.NewManager(s.RenderJobRepo(), renderjobs.NewSceneBuilder(nil))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := NewServer(Config{Logger: logger}, registry, orch, jobs)

	return &testEnv{server: srv, transcriber: transcriber, model: model, synth: synth}
}

func (e *testEnv) do(t *testing.T, method, path string, body any, header map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	e.server.Handler().ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode response: %v (%s)", err, rec.Body.String())
	}
	return v
}

func TestVoiceProcess_FullPipeline(t *testing.T) {
	env := newTestEnv(t, true)
	env.transcriber.AddResult(stt.MockResult{Transcript: "why is the sky blue"})
	env.model.AddResponse(llm.MockResponse{Content: json.RawMessage(`"Because sunlight scatters."`)})
	env.synth.AddResult(tts.MockResult{Speech: &tts.Speech{Audio: []byte("mp3"), MimeType: "audio/mpeg"}})

	audio := "data:audio/webm;base64," + base64.StdEncoding.EncodeToString([]byte("fake-audio"))
	rec := env.do(t, http.MethodPost, "/api/ai/voice/process", map[string]any{
		"audio": audio,
		"context": map[string]any{
			"studentName":           "Asha",
			"dominantLearningStyle": "visual",
			"masteryLevel":          55,
			"grade":                 7,
		},
	}, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[map[string]any](t, rec)
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "why is the sky blue", resp["transcript"])
	assert.Equal(t, "Because sunlight scatters.", resp["text"])
	audioOut, _ := resp["audio"].(string)
	assert.True(t, strings.HasPrefix(audioOut, "data:audio/mpeg;base64,"))
}

func TestVoiceProcess_EmptyTranscript(t *testing.T) {
	env := newTestEnv(t, true)
	env.transcriber.AddResult(stt.MockResult{Transcript: "  "})

	audio := "data:audio/webm;base64," + base64.StdEncoding.EncodeToString([]byte("silence"))
	rec := env.do(t, http.MethodPost, "/api/ai/voice/process", map[string]any{
		"audio":   audio,
		"context": map[string]any{"studentName": "Asha"},
	}, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[map[string]any](t, rec)
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, "could not understand audio", resp["error"])
	assert.Equal(t, 0, env.model.CallCount())
}

func TestVoiceProcess_TTSFailureStillSucceeds(t *testing.T) {
	env := newTestEnv(t, true)
	env.model.AddResponse(llm.MockResponse{Content: json.RawMessage(`"Short answer."`)})
	env.synth.AddResult(tts.MockResult{Err: fmt.Errorf("down")})

	rec := env.do(t, http.MethodPost, "/api/ai/voice/process", map[string]any{
		"action":  "respond",
		"text":    "what is light",
		"context": map[string]any{"studentName": "Asha"},
	}, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[map[string]any](t, rec)
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "Short answer.", resp["text"])
	_, hasAudio := resp["audio"]
	assert.False(t, hasAudio)
}

func TestVoiceProcess_BadRequests(t *testing.T) {
	env := newTestEnv(t, true)

	rec := env.do(t, http.MethodPost, "/api/ai/voice/process", map[string]any{
		"action": "summarize",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodPost, "/api/ai/voice/process", map[string]any{
		"audio": "data:audio/webm;base64,%%%not-base64%%%",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Full pipeline with no audio at all.
	rec = env.do(t, http.MethodPost, "/api/ai/voice/process", map[string]any{
		"context": map[string]any{"studentName": "Asha"},
	}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestVoiceAvailability(t *testing.T) {
	env := newTestEnv(t, false)

	rec := env.do(t, http.MethodGet, "/api/ai/voice/process", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[map[string]bool](t, rec)
	assert.True(t, resp["sttAvailable"])
	assert.True(t, resp["llmAvailable"])
	assert.False(t, resp["ttsAvailable"])
	assert.True(t, resp["renderAvailable"])
}

func TestTTS_Success(t *testing.T) {
	env := newTestEnv(t, true)
	env.synth.AddResult(tts.MockResult{Speech: &tts.Speech{Audio: []byte("mp3"), MimeType: "audio/mpeg"}})

	rec := env.do(t, http.MethodPost, "/api/ai/tts", map[string]any{
		"text": "hello there students",
	}, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[map[string]any](t, rec)
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "hello there students", resp["text"])
	audioOut, _ := resp["audio"].(string)
	assert.True(t, strings.HasPrefix(audioOut, "data:audio/mpeg;base64,"))
	assert.Equal(t, float64(2), resp["duration"])
}

func TestTTS_NoProviderIsTextOnly(t *testing.T) {
	env := newTestEnv(t, false)

	rec := env.do(t, http.MethodPost, "/api/ai/tts", map[string]any{
		"text": "hello",
	}, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[map[string]any](t, rec)
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, "hello", resp["text"])
	assert.NotEmpty(t, resp["error"])
}

func TestTTS_MissingText(t *testing.T) {
	env := newTestEnv(t, true)
	rec := env.do(t, http.MethodPost, "/api/ai/tts", map[string]any{}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRenderGenerateAndStatus(t *testing.T) {
	env := newTestEnv(t, false)

	rec := env.do(t, http.MethodPost, "/api/render/generate", map[string]any{
		"prompt":  "explain prime numbers",
		"quality": "low",
	}, nil)
	require.Equal(t, http.StatusAccepted, rec.Code)
	submitted := decodeBody[map[string]any](t, rec)
	jobID, _ := submitted["jobId"].(string)
	require.NotEmpty(t, jobID)
	assert.Equal(t, "queued", submitted["status"])

	rec = env.do(t, http.MethodGet, "/api/render/status/"+jobID, nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	job := decodeBody[map[string]any](t, rec)
	assert.Equal(t, "queued", job["status"])
	assert.Equal(t, "explain prime numbers", job["prompt"])

	// External renderer reports completion.
	rec = env.do(t, http.MethodPost, "/api/render/status/"+jobID, map[string]any{
		"status":    "completed",
		"resultUrl": "https://cdn.example/video.mp4",
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/render/status/"+jobID, nil, nil)
	job = decodeBody[map[string]any](t, rec)
	assert.Equal(t, "completed", job["status"])
	assert.Equal(t, "https://cdn.example/video.mp4", job["resultUrl"])

	// Terminal overwrite is rejected.
	rec = env.do(t, http.MethodPost, "/api/render/status/"+jobID, map[string]any{
		"status": "failed",
	}, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRenderGenerate_Rejections(t *testing.T) {
	env := newTestEnv(t, false)

	rec := env.do(t, http.MethodPost, "/api/render/generate", map[string]any{
		"prompt": "import os and explain",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodPost, "/api/render/generate", map[string]any{}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodPost, "/api/render/generate", map[string]any{
		"prompt": "explain sets", "quality": "4k",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRenderGenerate_RateLimited(t *testing.T) {
	env := newTestEnv(t, false)
	header := map[string]string{"X-Forwarded-For": "10.0.0.9"}

	for i := 0; i < 5; i++ {
		rec := env.do(t, http.MethodPost, "/api/render/generate", map[string]any{
			"prompt": "explain atoms",
		}, header)
		require.Equal(t, http.StatusAccepted, rec.Code, "request %d", i)
	}

	rec := env.do(t, http.MethodPost, "/api/render/generate", map[string]any{
		"prompt": "explain atoms",
	}, header)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	// A different client is unaffected.
	rec = env.do(t, http.MethodPost, "/api/render/generate", map[string]any{
		"prompt": "explain atoms",
	}, map[string]string{"X-Forwarded-For": "10.0.0.10"})
	assert.Equal(t, http.StatusAccepted, rec.Code)
}

func TestRenderStatus_NotFound(t *testing.T) {
	env := newTestEnv(t, false)

	rec := env.do(t, http.MethodGet, "/api/render/status/nope", nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.do(t, http.MethodPost, "/api/render/status/nope", map[string]any{
		"status": "rendering",
	}, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestChat_Success(t *testing.T) {
	env := newTestEnv(t, false)
	env.model.AddResponse(llm.MockResponse{Content: json.RawMessage(`"Plants turn sunlight into sugar. What would happen without light?"`)})

	rec := env.do(t, http.MethodPost, "/api/ai/chat", map[string]any{
		"grade":         7,
		"concept":       "Photosynthesis",
		"masteryLevel":  55,
		"learningStyle": "visual",
		"question":      "how do plants eat",
	}, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[map[string]any](t, rec)
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "Plants turn sunlight into sugar. What would happen without light?", resp["text"])

	require.Equal(t, 1, env.model.CallCount())
	prompt := env.model.Calls[0].Messages[0].Content
	assert.Contains(t, prompt, "Grade 7")
	assert.Contains(t, prompt, `"Photosynthesis"`)
	assert.Contains(t, prompt, "diagram")
	assert.Contains(t, prompt, "how do plants eat")
}

func TestChat_BadRequests(t *testing.T) {
	env := newTestEnv(t, false)

	tests := []struct {
		name string
		body map[string]any
	}{
		{"missing question", map[string]any{"grade": 7, "concept": "Fractions", "learningStyle": "reading"}},
		{"missing concept", map[string]any{"grade": 7, "learningStyle": "reading", "question": "what is a half"}},
		{"missing grade", map[string]any{"concept": "Fractions", "learningStyle": "reading", "question": "what is a half"}},
		{"unknown style", map[string]any{"grade": 7, "concept": "Fractions", "learningStyle": "telepathic", "question": "what is a half"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.do(t, http.MethodPost, "/api/ai/chat", tt.body, nil)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
	assert.Equal(t, 0, env.model.CallCount())
}

func TestChat_LLMFailureIsSoft(t *testing.T) {
	env := newTestEnv(t, false)
	env.model.AddResponse(llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: fmt.Errorf("down")}})

	rec := env.do(t, http.MethodPost, "/api/ai/chat", map[string]any{
		"grade":         5,
		"concept":       "Decimals",
		"learningStyle": "kinesthetic",
		"question":      "how do I compare 0.3 and 0.25",
	}, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[map[string]any](t, rec)
	assert.Equal(t, false, resp["success"])
	assert.NotEmpty(t, resp["error"])
}
