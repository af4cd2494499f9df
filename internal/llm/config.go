package llm

import (
	"fmt"
	"os"
	"time"
)

// Config holds all LLM provider configuration.
type Config struct {
	// Provider selects which LLM provider to use.
	// Values: "groq", "openai", "anthropic", "gemini", "mock"
	Provider string

	Groq      GroqConfig
	OpenAI    OpenAIConfig
	Anthropic AnthropicConfig
	Gemini    GeminiConfig
	Retry     RetryConfig

	// Timeout is the maximum duration for a single LLM request
	// (including retries). Default: 30s.
	Timeout time.Duration
}

// GroqConfig holds Groq-specific configuration. Groq serves the low-latency
// completion path for interactive voice tutoring.
type GroqConfig struct {
	APIKey  string
	Model   string // Default: "llama-3.3-70b-versatile"
	BaseURL string // Default: "https://api.groq.com/openai/v1"
}

// OpenAIConfig holds OpenAI-specific configuration.
type OpenAIConfig struct {
	APIKey  string
	Model   string // Default: "gpt-4o-mini"
	BaseURL string // Optional. Override for OpenAI-compatible APIs.
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey string
	Model  string // Default: "claude-haiku"
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey string
	Model  string // Default: "gemini-flash"
}

// RetryConfig configures retry behavior for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Provider: "groq",
		Groq: GroqConfig{
			Model: "llama-3.3-70b-versatile",
		},
		OpenAI: OpenAIConfig{
			Model: "gpt-4o-mini",
		},
		Anthropic: AnthropicConfig{
			Model: "claude-haiku",
		},
		Gemini: GeminiConfig{
			Model: "gemini-flash",
		},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 30 * time.Second,
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back to
// defaults for unset values. GURUKUL_-prefixed variables win; the bare
// vendor variables are probed so credentials already present in the
// environment are picked up.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if p := os.Getenv("GURUKUL_LLM_PROVIDER"); p != "" {
		cfg.Provider = p
	}

	cfg.Groq.APIKey = envOr("GURUKUL_GROQ_API_KEY", "GROQ_API_KEY")
	if m := os.Getenv("GURUKUL_GROQ_MODEL"); m != "" {
		cfg.Groq.Model = m
	}

	cfg.OpenAI.APIKey = envOr("GURUKUL_OPENAI_API_KEY", "OPENAI_API_KEY")
	if m := os.Getenv("GURUKUL_OPENAI_MODEL"); m != "" {
		cfg.OpenAI.Model = m
	}
	if u := os.Getenv("GURUKUL_OPENAI_BASE_URL"); u != "" {
		cfg.OpenAI.BaseURL = u
	}

	cfg.Anthropic.APIKey = envOr("GURUKUL_ANTHROPIC_API_KEY", "ANTHROPIC_API_KEY")
	if m := os.Getenv("GURUKUL_ANTHROPIC_MODEL"); m != "" {
		cfg.Anthropic.Model = m
	}

	cfg.Gemini.APIKey = envOr("GURUKUL_GEMINI_API_KEY", "GEMINI_API_KEY")
	if m := os.Getenv("GURUKUL_GEMINI_MODEL"); m != "" {
		cfg.Gemini.Model = m
	}

	return cfg
}

func envOr(key, fallbackKey string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return os.Getenv(fallbackKey)
}

// Validate checks that the selected provider has its required API key set.
func (c Config) Validate() error {
	switch c.Provider {
	case "groq":
		if c.Groq.APIKey == "" {
			return fmt.Errorf("GURUKUL_GROQ_API_KEY is required for the groq provider")
		}
	case "openai":
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("GURUKUL_OPENAI_API_KEY is required for the openai provider")
		}
	case "anthropic":
		if c.Anthropic.APIKey == "" {
			return fmt.Errorf("GURUKUL_ANTHROPIC_API_KEY is required for the anthropic provider")
		}
	case "gemini":
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("GURUKUL_GEMINI_API_KEY is required for the gemini provider")
		}
	case "mock":
		// No API key needed.
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	return nil
}
