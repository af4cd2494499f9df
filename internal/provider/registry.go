package provider

import "sort"

// Registry resolves the preferred provider per capability. It is built once
// at process start and read-only afterward, so concurrent reads need no
// locking.
type Registry struct {
	byCapability map[Capability][]Descriptor
}

// NewRegistry builds a Registry from configuration. Availability is decided
// here, from credential presence, and never re-evaluated until restart.
func NewRegistry(cfg Config) *Registry {
	available := map[string]bool{
		IDDeepgram:   cfg.Deepgram.APIKey != "",
		IDGroq:       cfg.Groq.APIKey != "",
		IDOpenAI:     cfg.OpenAI.APIKey != "",
		IDAnthropic:  cfg.Anthropic.APIKey != "",
		IDGemini:     cfg.Gemini.APIKey != "",
		IDElevenLabs: cfg.ElevenLabs.APIKey != "",
		IDPolly:      cfg.Polly.Enabled,
		IDManim:      cfg.Renderer.Enabled,
	}

	r := &Registry{byCapability: make(map[Capability][]Descriptor)}
	r.add(CapabilitySTT, cfg.STTOrder, available)
	r.add(CapabilityLLM, cfg.LLMOrder, available)
	r.add(CapabilityTTS, cfg.TTSOrder, available)
	r.add(CapabilityRender, []string{IDManim}, available)
	return r
}

func (r *Registry) add(cap Capability, order []string, available map[string]bool) {
	descs := make([]Descriptor, 0, len(order))
	for i, id := range order {
		descs = append(descs, Descriptor{
			Capability: cap,
			ID:         id,
			Priority:   i,
			Available:  available[id],
		})
	}
	sort.SliceStable(descs, func(i, j int) bool { return descs[i].Priority < descs[j].Priority })
	r.byCapability[cap] = descs
}

// Resolve returns the lowest-priority available provider for the capability,
// or ErrNotAvailable when none has credentials.
func (r *Registry) Resolve(cap Capability) (Descriptor, error) {
	for _, d := range r.byCapability[cap] {
		if d.Available {
			return d, nil
		}
	}
	return Descriptor{}, &ErrNotAvailable{Capability: cap}
}

// All returns a copy of every descriptor configured for the capability, in
// priority order.
func (r *Registry) All(cap Capability) []Descriptor {
	src := r.byCapability[cap]
	out := make([]Descriptor, len(src))
	copy(out, src)
	return out
}

// Available reports whether any provider serves the capability.
func (r *Registry) Available(cap Capability) bool {
	_, err := r.Resolve(cap)
	return err == nil
}
