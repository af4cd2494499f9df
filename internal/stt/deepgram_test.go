package stt

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestDeepgram_RequiresAPIKey(t *testing.T) {
	_, err := NewDeepgramTranscriber(DeepgramConfig{})
	if err == nil {
		t.Fatal("expected error for missing API key")
	}
}

func TestDeepgram_Transcribe(t *testing.T) {
	var gotAuth, gotContentType, gotModel string
	var gotBody []byte

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		gotModel = r.URL.Query().Get("model")
		gotBody, _ = io.ReadAll(r.Body)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results":{"channels":[{"alternatives":[{"transcript":"why do leaves need sunlight"}]}]}}`))
	}))
	defer srv.Close()

	d, err := NewDeepgramTranscriber(DeepgramConfig{APIKey: "dg-test", Endpoint: srv.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	transcript, err := d.Transcribe(context.Background(), []byte("fake-audio"), "audio/webm")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if transcript != "why do leaves need sunlight" {
		t.Fatalf("unexpected transcript: %q", transcript)
	}
	if gotAuth != "Token dg-test" {
		t.Errorf("unexpected auth header: %q", gotAuth)
	}
	if gotContentType != "audio/webm" {
		t.Errorf("unexpected content type: %q", gotContentType)
	}
	if gotModel != "nova-2" {
		t.Errorf("unexpected model: %q", gotModel)
	}
	if string(gotBody) != "fake-audio" {
		t.Errorf("audio bytes not forwarded: %q", gotBody)
	}
}

func TestDeepgram_EmptyTranscriptIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results":{"channels":[{"alternatives":[{"transcript":"   "}]}]}}`))
	}))
	defer srv.Close()

	d, _ := NewDeepgramTranscriber(DeepgramConfig{APIKey: "dg-test", Endpoint: srv.URL})

	transcript, err := d.Transcribe(context.Background(), []byte("noise"), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if transcript != "" {
		t.Fatalf("expected empty transcript, got %q", transcript)
	}
}

func TestDeepgram_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream broke", http.StatusBadGateway)
	}))
	defer srv.Close()

	d, _ := NewDeepgramTranscriber(DeepgramConfig{APIKey: "dg-test", Endpoint: srv.URL})

	_, err := d.Transcribe(context.Background(), []byte("audio"), "")
	if err == nil {
		t.Fatal("expected error")
	}
	var tf *ErrTranscriptionFailed
	if !errors.As(err, &tf) {
		t.Fatalf("expected ErrTranscriptionFailed, got %T", err)
	}
	if tf.Provider != "deepgram" {
		t.Fatalf("unexpected provider: %q", tf.Provider)
	}
}

func TestDeepgram_NoChannels(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results":{"channels":[]}}`))
	}))
	defer srv.Close()

	d, _ := NewDeepgramTranscriber(DeepgramConfig{APIKey: "dg-test", Endpoint: srv.URL})

	transcript, err := d.Transcribe(context.Background(), []byte("audio"), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if transcript != "" {
		t.Fatalf("expected empty transcript, got %q", transcript)
	}
}
