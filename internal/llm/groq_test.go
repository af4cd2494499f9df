package llm

import "testing"

func TestGroqProvider_RequiresAPIKey(t *testing.T) {
	_, err := NewGroqProvider(GroqConfig{})
	if err == nil {
		t.Fatal("expected error for missing API key")
	}
}

func TestGroqProvider_DefaultModel(t *testing.T) {
	p, err := NewGroqProvider(GroqConfig{APIKey: "gsk-test", Model: "llama-70b"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ModelID() != "llama-3.3-70b-versatile" {
		t.Fatalf("expected friendly name resolution, got %q", p.ModelID())
	}
}

func TestGroqProvider_DirectModelID(t *testing.T) {
	p, err := NewGroqProvider(GroqConfig{APIKey: "gsk-test", Model: "mixtral-8x7b-32768"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ModelID() != "mixtral-8x7b-32768" {
		t.Fatalf("expected pass-through model ID, got %q", p.ModelID())
	}
}
