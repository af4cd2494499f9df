package llm

import (
	"context"
	"fmt"

	"github.com/abhisek/gurukul/internal/store"
)

// NewProvider creates a Provider from configuration.
// It returns the provider wrapped with retry and logging middleware.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo) (Provider, error) {
	base, err := newBaseProvider(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if cfg.Provider == "mock" {
		return base, nil
	}

	// Wrap with middleware: caller → retry → logging → base
	logged := WithLogging(base, eventRepo)
	retried := WithRetry(logged, cfg.Retry)

	return retried, nil
}

// NewProviderFor creates a Provider for an explicit provider ID, ignoring
// cfg.Provider. The registry resolves which ID serves the llm capability;
// this builds the matching client.
func NewProviderFor(ctx context.Context, id string, cfg Config, eventRepo store.EventRepo) (Provider, error) {
	cfg.Provider = id
	return NewProvider(ctx, cfg, eventRepo)
}

func newBaseProvider(ctx context.Context, cfg Config) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "groq":
		base, err = NewGroqProvider(cfg.Groq)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}
	return base, nil
}
