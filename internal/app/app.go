// Package app wires the service together: store, provider registry,
// pipeline, job manager, and HTTP server.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/abhisek/gurukul/internal/httpapi"
	"github.com/abhisek/gurukul/internal/llm"
	"github.com/abhisek/gurukul/internal/pipeline"
	"github.com/abhisek/gurukul/internal/provider"
	"github.com/abhisek/gurukul/internal/renderjobs"
	"github.com/abhisek/gurukul/internal/store"
	"github.com/abhisek/gurukul/internal/stt"
	"github.com/abhisek/gurukul/internal/tts"
)

// Options configures the service.
type Options struct {
	DBPath string
	Addr   string
	Logger *slog.Logger
}

// App holds the assembled service.
type App struct {
	Store        *store.Store
	Registry     *provider.Registry
	Orchestrator *pipeline.Orchestrator
	Jobs         *renderjobs.Manager
	Server       *httpapi.Server

	logger *slog.Logger
}

// New builds the service from environment configuration. Provider clients
// are constructed only for providers whose credentials are present; the
// registry decides at request time which one serves each capability.
func New(ctx context.Context, opts Options) (*App, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, nil))
	}

	st, err := store.Open(opts.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	cfg := provider.ConfigFromEnv()
	registry := provider.NewRegistry(cfg)
	eventRepo := st.EventRepo()

	transcribers := make(map[string]stt.Transcriber)
	if cfg.Deepgram.APIKey != "" {
		t, err := stt.NewDeepgramTranscriber(stt.DeepgramConfig{APIKey: cfg.Deepgram.APIKey})
		if err != nil {
			st.Close()
			return nil, fmt.Errorf("init deepgram: %w", err)
		}
		transcribers[provider.IDDeepgram] = t
	}

	llmCfg := llm.ConfigFromEnv()
	llms := make(map[string]llm.Provider)
	for _, desc := range registry.All(provider.CapabilityLLM) {
		if !desc.Available {
			continue
		}
		p, err := llm.NewProviderFor(ctx, desc.ID, llmCfg, eventRepo)
		if err != nil {
			logger.Warn("skipping LLM provider", "provider", desc.ID, "error", err)
			continue
		}
		llms[desc.ID] = p
	}

	synthesizers := make(map[string]tts.Synthesizer)
	if cfg.ElevenLabs.APIKey != "" {
		s, err := tts.NewElevenLabsSynthesizer(tts.ElevenLabsConfig{APIKey: cfg.ElevenLabs.APIKey})
		if err != nil {
			st.Close()
			return nil, fmt.Errorf("init elevenlabs: %w", err)
		}
		synthesizers[provider.IDElevenLabs] = s
	}
	if cfg.Polly.Enabled {
		s, err := tts.NewPollySynthesizer(ctx, tts.PollyConfig{Region: cfg.Polly.Region})
		if err != nil {
			logger.Warn("skipping polly", "error", err)
		} else {
			synthesizers[provider.IDPolly] = s
		}
	}

	orch := pipeline.New(registry, transcribers, llms, synthesizers)

	// Scene generation rides on whichever LLM the registry prefers; with
	// none configured, render jobs fall back to deterministic specs.
	var sceneLLM llm.Provider
	if desc, err := registry.Resolve(provider.CapabilityLLM); err == nil {
		sceneLLM = llms[desc.ID]
	}
	jobs := renderjobs.NewManager(st.RenderJobRepo(), renderjobs.NewSceneBuilder(sceneLLM))

	server := httpapi.NewServer(httpapi.Config{Addr: opts.Addr, Logger: logger}, registry, orch, jobs)

	return &App{
		Store:        st,
		Registry:     registry,
		Orchestrator: orch,
		Jobs:         jobs,
		Server:       server,
		logger:       logger,
	}, nil
}

// Run serves HTTP until ctx is canceled.
func (a *App) Run(ctx context.Context) error {
	return a.Server.Run(ctx)
}

// Close releases the store.
func (a *App) Close() error {
	return a.Store.Close()
}
