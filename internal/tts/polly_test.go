package tts

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/polly"
	"github.com/aws/aws-sdk-go-v2/service/polly/types"

	"github.com/abhisek/gurukul/internal/tutor"
)

type fakePollyClient struct {
	lastInput *polly.SynthesizeSpeechInput
	audio     string
	err       error
}

func (f *fakePollyClient) SynthesizeSpeech(_ context.Context, params *polly.SynthesizeSpeechInput, _ ...func(*polly.Options)) (*polly.SynthesizeSpeechOutput, error) {
	f.lastInput = params
	if f.err != nil {
		return nil, f.err
	}
	return &polly.SynthesizeSpeechOutput{
		AudioStream: io.NopCloser(strings.NewReader(f.audio)),
	}, nil
}

func TestPolly_Synthesize(t *testing.T) {
	fake := &fakePollyClient{audio: "mp3-bytes"}
	s := newPollySynthesizerWithClient(PollyConfig{}, fake)

	speech, err := s.Synthesize(context.Background(), "photosynthesis makes food", SpeechOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(speech.Audio) != "mp3-bytes" {
		t.Fatalf("unexpected audio: %q", speech.Audio)
	}
	if speech.MimeType != "audio/mpeg" {
		t.Fatalf("unexpected mime type: %q", speech.MimeType)
	}

	in := fake.lastInput
	if *in.Text != "photosynthesis makes food" {
		t.Errorf("unexpected text: %q", *in.Text)
	}
	if in.VoiceId != types.VoiceId("Kajal") {
		t.Errorf("unexpected voice: %q", in.VoiceId)
	}
	if in.Engine != types.EngineNeural {
		t.Errorf("unexpected engine: %q", in.Engine)
	}
	if in.OutputFormat != types.OutputFormatMp3 {
		t.Errorf("unexpected output format: %q", in.OutputFormat)
	}
	if in.LanguageCode != types.LanguageCodeEnIn {
		t.Errorf("unexpected language: %q", in.LanguageCode)
	}
}

func TestPolly_HindiLanguageCode(t *testing.T) {
	fake := &fakePollyClient{audio: "mp3"}
	s := newPollySynthesizerWithClient(PollyConfig{}, fake)

	_, err := s.Synthesize(context.Background(), "नमस्ते", SpeechOptions{Language: tutor.LanguageHindi})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fake.lastInput.LanguageCode != types.LanguageCodeHiIn {
		t.Errorf("unexpected language: %q", fake.lastInput.LanguageCode)
	}
}

func TestPolly_VoiceOverride(t *testing.T) {
	fake := &fakePollyClient{audio: "mp3"}
	s := newPollySynthesizerWithClient(PollyConfig{}, fake)

	_, err := s.Synthesize(context.Background(), "hello", SpeechOptions{VoiceID: "Aditi"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fake.lastInput.VoiceId != types.VoiceId("Aditi") {
		t.Errorf("unexpected voice: %q", fake.lastInput.VoiceId)
	}
}

func TestPolly_SynthesisError(t *testing.T) {
	fake := &fakePollyClient{err: fmt.Errorf("throttled")}
	s := newPollySynthesizerWithClient(PollyConfig{}, fake)

	_, err := s.Synthesize(context.Background(), "hello", SpeechOptions{})
	if err == nil {
		t.Fatal("expected error")
	}
	var sf *ErrSynthesisFailed
	if !errors.As(err, &sf) {
		t.Fatalf("expected ErrSynthesisFailed, got %T", err)
	}
	if sf.Provider != "polly" {
		t.Fatalf("unexpected provider: %q", sf.Provider)
	}
}
