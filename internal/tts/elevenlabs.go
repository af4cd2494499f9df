package tts

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/abhisek/gurukul/internal/tutor"
)

const (
	defaultElevenLabsEndpoint = "https://api.elevenlabs.io/v1"

	// Default voice: clear Indian-accent English female, also used for Hindi.
	DefaultVoiceID = "pFZP5JQG7iQjIQuC4Bku"

	elevenModelTurbo        = "eleven_turbo_v2_5"
	elevenModelMultilingual = "eleven_multilingual_v2"
)

// ElevenLabsConfig holds ElevenLabs-specific configuration.
type ElevenLabsConfig struct {
	APIKey   string
	Endpoint string // Default: the hosted ElevenLabs API base.
	VoiceID  string // Default: DefaultVoiceID.
	Timeout  time.Duration
}

// ElevenLabsSynthesizer implements Synthesizer against the ElevenLabs
// text-to-speech API.
type ElevenLabsSynthesizer struct {
	cfg    ElevenLabsConfig
	client *http.Client
}

// NewElevenLabsSynthesizer creates a new ElevenLabs synthesizer.
func NewElevenLabsSynthesizer(cfg ElevenLabsConfig) (*ElevenLabsSynthesizer, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("elevenlabs API key is required")
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = defaultElevenLabsEndpoint
	}
	if cfg.VoiceID == "" {
		cfg.VoiceID = DefaultVoiceID
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	return &ElevenLabsSynthesizer{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}, nil
}

type elevenLabsRequest struct {
	Text          string              `json:"text"`
	ModelID       string              `json:"model_id"`
	VoiceSettings elevenVoiceSettings `json:"voice_settings"`
}

type elevenVoiceSettings struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
	Style           float64 `json:"style"`
	UseSpeakerBoost bool    `json:"use_speaker_boost"`
}

func (e *ElevenLabsSynthesizer) Synthesize(ctx context.Context, text string, opts SpeechOptions) (*Speech, error) {
	voiceID := opts.VoiceID
	if voiceID == "" {
		voiceID = e.cfg.VoiceID
	}

	// Hindi needs the multilingual model; the turbo model covers English.
	model := elevenModelTurbo
	if opts.Language == tutor.LanguageHindi {
		model = elevenModelMultilingual
	}

	payload, err := json.Marshal(elevenLabsRequest{
		Text:    text,
		ModelID: model,
		VoiceSettings: elevenVoiceSettings{
			Stability:       0.65,
			SimilarityBoost: 0.85,
			Style:           0.7,
			UseSpeakerBoost: true,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("marshal elevenlabs request: %w", err)
	}

	url := fmt.Sprintf("%s/text-to-speech/%s", e.cfg.Endpoint, voiceID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build elevenlabs request: %w", err)
	}
	req.Header.Set("Accept", "audio/mpeg")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("xi-api-key", e.cfg.APIKey)

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, &ErrSynthesisFailed{Provider: "elevenlabs", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ErrSynthesisFailed{Provider: "elevenlabs", Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &ErrSynthesisFailed{
			Provider: "elevenlabs",
			Err:      fmt.Errorf("status %d: %s", resp.StatusCode, truncateBody(body)),
		}
	}

	return &Speech{Audio: body, MimeType: "audio/mpeg"}, nil
}

func truncateBody(b []byte) string {
	const max = 256
	if len(b) > max {
		b = b[:max]
	}
	return string(b)
}
