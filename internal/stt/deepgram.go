package stt

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultDeepgramEndpoint = "https://api.deepgram.com/v1/listen"

// DeepgramConfig holds Deepgram-specific configuration.
type DeepgramConfig struct {
	APIKey   string
	Endpoint string // Default: the hosted Deepgram listen endpoint.
	Model    string // Default: "nova-2"
	Timeout  time.Duration
}

// DeepgramTranscriber implements Transcriber against the Deepgram
// prerecorded-audio API.
type DeepgramTranscriber struct {
	cfg    DeepgramConfig
	client *http.Client
}

// NewDeepgramTranscriber creates a new Deepgram transcriber.
func NewDeepgramTranscriber(cfg DeepgramConfig) (*DeepgramTranscriber, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("deepgram API key is required")
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = defaultDeepgramEndpoint
	}
	if cfg.Model == "" {
		cfg.Model = "nova-2"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &DeepgramTranscriber{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}, nil
}

// deepgramResponse mirrors the slice of the Deepgram response we read.
type deepgramResponse struct {
	Results struct {
		Channels []struct {
			Alternatives []struct {
				Transcript string `json:"transcript"`
			} `json:"alternatives"`
		} `json:"channels"`
	} `json:"results"`
}

func (d *DeepgramTranscriber) Transcribe(ctx context.Context, audio []byte, mimeType string) (string, error) {
	if mimeType == "" {
		mimeType = "audio/webm"
	}

	endpoint, err := url.Parse(d.cfg.Endpoint)
	if err != nil {
		return "", fmt.Errorf("parse deepgram endpoint: %w", err)
	}
	q := endpoint.Query()
	q.Set("model", d.cfg.Model)
	q.Set("smart_format", "true")
	endpoint.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(audio))
	if err != nil {
		return "", fmt.Errorf("build deepgram request: %w", err)
	}
	req.Header.Set("Authorization", "Token "+d.cfg.APIKey)
	req.Header.Set("Content-Type", mimeType)

	resp, err := d.client.Do(req)
	if err != nil {
		return "", &ErrTranscriptionFailed{Provider: "deepgram", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &ErrTranscriptionFailed{Provider: "deepgram", Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		return "", &ErrTranscriptionFailed{
			Provider: "deepgram",
			Err:      fmt.Errorf("status %d: %s", resp.StatusCode, truncateBody(body)),
		}
	}

	var parsed deepgramResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", &ErrTranscriptionFailed{Provider: "deepgram", Err: fmt.Errorf("decode response: %w", err)}
	}

	transcript := ""
	if len(parsed.Results.Channels) > 0 && len(parsed.Results.Channels[0].Alternatives) > 0 {
		transcript = parsed.Results.Channels[0].Alternatives[0].Transcript
	}
	return strings.TrimSpace(transcript), nil
}

func truncateBody(b []byte) string {
	const max = 256
	if len(b) > max {
		b = b[:max]
	}
	return string(b)
}
