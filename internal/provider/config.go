package provider

import (
	"os"
	"strings"
)

// Provider IDs known to the registry.
const (
	IDDeepgram   = "deepgram"
	IDGroq       = "groq"
	IDOpenAI     = "openai"
	IDAnthropic  = "anthropic"
	IDGemini     = "gemini"
	IDElevenLabs = "elevenlabs"
	IDPolly      = "polly"
	IDManim      = "manim"
)

// CredentialConfig is the minimal configuration the registry needs to decide
// availability for an API-key provider.
type CredentialConfig struct {
	APIKey string
}

// PollyConfig decides availability for the AWS Polly synthesizer. Polly
// authenticates through the AWS credential chain rather than a single key.
type PollyConfig struct {
	Region  string
	Enabled bool
}

// RendererConfig decides availability for the external video renderer.
// The job manager itself holds no credentials; the renderer is a separate
// process polling the job store, so this is a plain on/off switch.
type RendererConfig struct {
	Enabled bool
}

// Config holds everything needed to build the provider registry.
// Priority orders are explicit configuration: the default LLM order puts the
// low-latency provider first to favor interactive latency over model quality.
type Config struct {
	Deepgram   CredentialConfig
	Groq       CredentialConfig
	OpenAI     CredentialConfig
	Anthropic  CredentialConfig
	Gemini     CredentialConfig
	ElevenLabs CredentialConfig
	Polly      PollyConfig
	Renderer   RendererConfig

	// Preference order per capability, most preferred first.
	STTOrder []string
	LLMOrder []string
	TTSOrder []string
}

// DefaultConfig returns a Config with the default preference orders and no
// credentials.
func DefaultConfig() Config {
	return Config{
		Polly:    PollyConfig{Region: "ap-south-1"},
		Renderer: RendererConfig{Enabled: true},
		STTOrder: []string{IDDeepgram},
		LLMOrder: []string{IDGroq, IDOpenAI, IDAnthropic, IDGemini},
		TTSOrder: []string{IDElevenLabs, IDPolly},
	}
}

// ConfigFromEnv builds a Config from environment variables. GURUKUL_-prefixed
// variables win; the bare vendor variables are probed as fallback so the
// service picks up credentials already present in the environment.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	cfg.Deepgram.APIKey = envFirst("GURUKUL_DEEPGRAM_API_KEY", "DEEPGRAM_API_KEY")
	cfg.Groq.APIKey = envFirst("GURUKUL_GROQ_API_KEY", "GROQ_API_KEY")
	cfg.OpenAI.APIKey = envFirst("GURUKUL_OPENAI_API_KEY", "OPENAI_API_KEY")
	cfg.Anthropic.APIKey = envFirst("GURUKUL_ANTHROPIC_API_KEY", "ANTHROPIC_API_KEY")
	cfg.Gemini.APIKey = envFirst("GURUKUL_GEMINI_API_KEY", "GEMINI_API_KEY")
	cfg.ElevenLabs.APIKey = envFirst("GURUKUL_ELEVENLABS_API_KEY", "ELEVENLABS_API_KEY")

	if r := envFirst("GURUKUL_POLLY_REGION", "AWS_REGION"); r != "" {
		cfg.Polly.Region = r
	}
	cfg.Polly.Enabled = os.Getenv("AWS_ACCESS_KEY_ID") != "" || os.Getenv("AWS_PROFILE") != ""

	if v := os.Getenv("GURUKUL_RENDER_ENABLED"); v == "0" || strings.EqualFold(v, "false") {
		cfg.Renderer.Enabled = false
	}

	if order := splitOrder(os.Getenv("GURUKUL_LLM_PRIORITY")); len(order) > 0 {
		cfg.LLMOrder = order
	}
	if order := splitOrder(os.Getenv("GURUKUL_TTS_PRIORITY")); len(order) > 0 {
		cfg.TTSOrder = order
	}

	return cfg
}

func envFirst(keys ...string) string {
	for _, k := range keys {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return ""
}

func splitOrder(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(strings.ToLower(part)); p != "" {
			out = append(out, p)
		}
	}
	return out
}
