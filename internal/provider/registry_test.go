package provider

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_PrefersLowestPriority(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Groq.APIKey = "gk"
	cfg.OpenAI.APIKey = "ok"
	reg := NewRegistry(cfg)

	d, err := reg.Resolve(CapabilityLLM)
	require.NoError(t, err)
	assert.Equal(t, IDGroq, d.ID)
	assert.Equal(t, 0, d.Priority)
}

func TestResolve_SkipsUnavailable(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Anthropic.APIKey = "ak" // groq and openai unset
	reg := NewRegistry(cfg)

	d, err := reg.Resolve(CapabilityLLM)
	require.NoError(t, err)
	assert.Equal(t, IDAnthropic, d.ID)
}

func TestResolve_NoneConfigured(t *testing.T) {
	reg := NewRegistry(DefaultConfig())

	_, err := reg.Resolve(CapabilityTTS)
	require.Error(t, err)

	var na *ErrNotAvailable
	require.True(t, errors.As(err, &na))
	assert.Equal(t, CapabilityTTS, na.Capability)
}

func TestResolve_CustomOrder(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Groq.APIKey = "gk"
	cfg.OpenAI.APIKey = "ok"
	cfg.LLMOrder = []string{IDOpenAI, IDGroq}
	reg := NewRegistry(cfg)

	d, err := reg.Resolve(CapabilityLLM)
	require.NoError(t, err)
	assert.Equal(t, IDOpenAI, d.ID)
}

func TestResolve_RenderToggle(t *testing.T) {
	cfg := DefaultConfig()
	reg := NewRegistry(cfg)
	assert.True(t, reg.Available(CapabilityRender))

	cfg.Renderer.Enabled = false
	reg = NewRegistry(cfg)
	assert.False(t, reg.Available(CapabilityRender))
}

func TestAll_ReturnsCopyInPriorityOrder(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ElevenLabs.APIKey = "ek"
	reg := NewRegistry(cfg)

	descs := reg.All(CapabilityTTS)
	require.Len(t, descs, 2)
	assert.Equal(t, IDElevenLabs, descs[0].ID)
	assert.Equal(t, IDPolly, descs[1].ID)
	assert.True(t, descs[0].Available)
	assert.False(t, descs[1].Available)

	descs[0].Available = false
	again := reg.All(CapabilityTTS)
	assert.True(t, again[0].Available, "All must return a copy")
}

func TestDefaultConfig_PollyRegion(t *testing.T) {
	cfg := DefaultConfig()
	// Must match the synthesizer's own default so a registry-built config
	// and a bare PollyConfig land in the same region.
	assert.Equal(t, "ap-south-1", cfg.Polly.Region)
}
