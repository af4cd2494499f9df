package llm

import "fmt"

const defaultGroqBaseURL = "https://api.groq.com/openai/v1"

// groqModels maps friendly names to Groq model IDs.
var groqModels = map[string]string{
	"llama-70b": "llama-3.3-70b-versatile",
	"llama-8b":  "llama-3.1-8b-instant",
}

// GroqProvider wraps OpenAIProvider with Groq-specific defaults.
// Groq exposes an OpenAI-compatible API, so the underlying SDK is reused.
// It is the preferred completion provider for voice tutoring because of its
// interactive-grade latency.
type GroqProvider struct {
	*OpenAIProvider
}

// NewGroqProvider creates a provider targeting the Groq API.
func NewGroqProvider(cfg GroqConfig) (*GroqProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("groq API key is required")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultGroqBaseURL
	}

	oaiCfg := OpenAIConfig{
		APIKey:  cfg.APIKey,
		Model:   resolveModel(cfg.Model, groqModels),
		BaseURL: baseURL,
	}

	inner, err := NewOpenAIProvider(oaiCfg)
	if err != nil {
		return nil, err
	}

	return &GroqProvider{OpenAIProvider: inner}, nil
}
