package tts

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/abhisek/gurukul/internal/tutor"
)

func TestElevenLabs_RequiresAPIKey(t *testing.T) {
	_, err := NewElevenLabsSynthesizer(ElevenLabsConfig{})
	if err == nil {
		t.Fatal("expected error for missing API key")
	}
}

func TestElevenLabs_Synthesize(t *testing.T) {
	var gotPath, gotKey, gotAccept string
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("xi-api-key")
		gotAccept = r.Header.Get("Accept")
		raw, _ := io.ReadAll(r.Body)
		json.Unmarshal(raw, &gotBody)

		w.Header().Set("Content-Type", "audio/mpeg")
		w.Write([]byte("mp3-bytes"))
	}))
	defer srv.Close()

	s, err := NewElevenLabsSynthesizer(ElevenLabsConfig{APIKey: "el-test", Endpoint: srv.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	speech, err := s.Synthesize(context.Background(), "namaste", SpeechOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(speech.Audio) != "mp3-bytes" {
		t.Fatalf("unexpected audio: %q", speech.Audio)
	}
	if speech.MimeType != "audio/mpeg" {
		t.Fatalf("unexpected mime type: %q", speech.MimeType)
	}
	if !strings.HasSuffix(gotPath, "/text-to-speech/"+DefaultVoiceID) {
		t.Errorf("unexpected path: %q", gotPath)
	}
	if gotKey != "el-test" {
		t.Errorf("unexpected api key header: %q", gotKey)
	}
	if gotAccept != "audio/mpeg" {
		t.Errorf("unexpected accept header: %q", gotAccept)
	}
	if gotBody["text"] != "namaste" {
		t.Errorf("unexpected text: %v", gotBody["text"])
	}
	if gotBody["model_id"] != "eleven_turbo_v2_5" {
		t.Errorf("unexpected model for english: %v", gotBody["model_id"])
	}
	settings, ok := gotBody["voice_settings"].(map[string]any)
	if !ok {
		t.Fatalf("missing voice_settings: %v", gotBody)
	}
	if settings["stability"] != 0.65 {
		t.Errorf("unexpected stability: %v", settings["stability"])
	}
	if settings["use_speaker_boost"] != true {
		t.Errorf("unexpected use_speaker_boost: %v", settings["use_speaker_boost"])
	}
}

func TestElevenLabs_HindiUsesMultilingualModel(t *testing.T) {
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		json.Unmarshal(raw, &gotBody)
		w.Write([]byte("mp3"))
	}))
	defer srv.Close()

	s, _ := NewElevenLabsSynthesizer(ElevenLabsConfig{APIKey: "el-test", Endpoint: srv.URL})

	_, err := s.Synthesize(context.Background(), "पत्तियों को धूप चाहिए", SpeechOptions{Language: tutor.LanguageHindi})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotBody["model_id"] != "eleven_multilingual_v2" {
		t.Errorf("unexpected model for hindi: %v", gotBody["model_id"])
	}
}

func TestElevenLabs_VoiceOverride(t *testing.T) {
	var gotPath string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte("mp3"))
	}))
	defer srv.Close()

	s, _ := NewElevenLabsSynthesizer(ElevenLabsConfig{APIKey: "el-test", Endpoint: srv.URL})

	_, err := s.Synthesize(context.Background(), "hello", SpeechOptions{VoiceID: "custom-voice"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasSuffix(gotPath, "/text-to-speech/custom-voice") {
		t.Errorf("unexpected path: %q", gotPath)
	}
}

func TestElevenLabs_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail":"quota exceeded"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	s, _ := NewElevenLabsSynthesizer(ElevenLabsConfig{APIKey: "el-test", Endpoint: srv.URL})

	_, err := s.Synthesize(context.Background(), "hello", SpeechOptions{})
	if err == nil {
		t.Fatal("expected error")
	}
	var sf *ErrSynthesisFailed
	if !errors.As(err, &sf) {
		t.Fatalf("expected ErrSynthesisFailed, got %T", err)
	}
	if sf.Provider != "elevenlabs" {
		t.Fatalf("unexpected provider: %q", sf.Provider)
	}
}
