package provider

import "fmt"

// Capability identifies one class of external AI service.
type Capability string

const (
	CapabilitySTT    Capability = "stt"
	CapabilityLLM    Capability = "llm"
	CapabilityTTS    Capability = "tts"
	CapabilityRender Capability = "render"
)

// Capabilities lists every capability the registry tracks, in pipeline order.
func Capabilities() []Capability {
	return []Capability{CapabilitySTT, CapabilityLLM, CapabilityTTS, CapabilityRender}
}

// Validate reports whether c is a known capability.
func (c Capability) Validate() error {
	switch c {
	case CapabilitySTT, CapabilityLLM, CapabilityTTS, CapabilityRender:
		return nil
	}
	return fmt.Errorf("unknown capability: %q", string(c))
}

// Descriptor describes one configured provider for a capability.
// Descriptors are built once at process start and never mutated.
type Descriptor struct {
	Capability Capability
	ID         string
	Priority   int  // lower is preferred
	Available  bool // credentials present at startup
}

// ErrNotAvailable indicates no provider for a capability has credentials.
// This is a configuration error: it is surfaced to the caller, never retried.
type ErrNotAvailable struct {
	Capability Capability
}

func (e *ErrNotAvailable) Error() string {
	return fmt.Sprintf("no available provider for capability %q", string(e.Capability))
}
