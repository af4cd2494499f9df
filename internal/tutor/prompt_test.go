package tutor

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestBuildTutorPrompt_Deterministic(t *testing.T) {
	a, err := BuildTutorPrompt(7, "Photosynthesis", 30, StyleVisual, "Why do leaves need sunlight?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := BuildTutorPrompt(7, "Photosynthesis", 30, StyleVisual, "Why do leaves need sunlight?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a != b {
		t.Fatal("expected byte-identical prompts for identical inputs")
	}
}

func TestBuildTutorPrompt_Contents(t *testing.T) {
	p, err := BuildTutorPrompt(7, "Photosynthesis", 30, StyleVisual, "Why do leaves need sunlight?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{"Grade 7", "Photosynthesis", "diagram", "Why do leaves need sunlight?"} {
		if !strings.Contains(p, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
	if !strings.Contains(p, "exactly one short self-check question") {
		t.Error("prompt missing self-check instruction")
	}
	// The self-check requirement is the final instruction.
	if !strings.HasSuffix(p, "apply the main idea.") {
		t.Errorf("prompt does not end with the self-check instruction: ...%s", p[len(p)-60:])
	}
}

func TestBuildTutorPrompt_DepthTiers(t *testing.T) {
	tests := []struct {
		name    string
		mastery float64
		want    string
	}{
		{"low", 0, "step-by-step"},
		{"just below boundary", 39.9, "step-by-step"},
		{"boundary 40 is mid", 40, "concise conceptual overview"},
		{"mid", 55, "concise conceptual overview"},
		{"boundary 70 is mid", 70, "concise conceptual overview"},
		{"high", 70.1, "extension challenge"},
		{"top", 100, "extension challenge"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := BuildTutorPrompt(5, "Fractions", tt.mastery, StyleReading, "What is 1/2 + 1/4?")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !strings.Contains(p, tt.want) {
				t.Errorf("mastery %.1f: prompt missing %q", tt.mastery, tt.want)
			}
		})
	}
}

func TestBuildTutorPrompt_SanitizesMastery(t *testing.T) {
	tests := []struct {
		name    string
		mastery float64
		want    string
	}{
		{"negative clamps to 0", -50, "step-by-step"},
		{"above 100 clamps to 100", 250, "extension challenge"},
		{"NaN treated as 0", math.NaN(), "step-by-step"},
		{"+Inf treated as 0", math.Inf(1), "step-by-step"},
		{"-Inf treated as 0", math.Inf(-1), "step-by-step"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := BuildTutorPrompt(4, "Decimals", tt.mastery, StyleKinesthetic, "How do I compare 0.3 and 0.25?")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !strings.Contains(p, tt.want) {
				t.Errorf("mastery %v: prompt missing %q", tt.mastery, tt.want)
			}
		})
	}
}

func TestBuildTutorPrompt_UnknownStyleFails(t *testing.T) {
	_, err := BuildTutorPrompt(7, "Photosynthesis", 50, Style("tactile"), "Why?")
	if err == nil {
		t.Fatal("expected error for unknown style")
	}
	var unk *ErrUnknownStyle
	if !errors.As(err, &unk) {
		t.Fatalf("expected ErrUnknownStyle, got %T", err)
	}
}

func TestBuildTutorPrompt_StyleTemplates(t *testing.T) {
	tests := []struct {
		style Style
		want  string
	}{
		{StyleVisual, "diagram"},
		{StyleAuditory, "mnemonic"},
		{StyleReading, "bullet points"},
		{StyleKinesthetic, "hands-on"},
	}

	for _, tt := range tests {
		t.Run(string(tt.style), func(t *testing.T) {
			p, err := BuildTutorPrompt(6, "Gravity", 50, tt.style, "Why do things fall?")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !strings.Contains(p, tt.want) {
				t.Errorf("style %s: prompt missing %q", tt.style, tt.want)
			}
		})
	}
}

func TestParseStyle(t *testing.T) {
	for _, valid := range []string{"visual", "auditory", "reading", "kinesthetic"} {
		if _, err := ParseStyle(valid); err != nil {
			t.Errorf("ParseStyle(%q) unexpected error: %v", valid, err)
		}
	}
	if _, err := ParseStyle("telepathic"); err == nil {
		t.Error("expected error for invalid style")
	}
}

func TestBuildVoicePrompt_Languages(t *testing.T) {
	ctx := Context{StudentName: "Asha", Topic: "Algebra", MasteryLevel: 62}

	en := BuildVoicePrompt(ctx)
	if !strings.Contains(en, "Asha") || !strings.Contains(en, "Algebra") || !strings.Contains(en, "62%") {
		t.Errorf("english prompt missing context fields:\n%s", en)
	}

	ctx.Language = LanguageHindi
	hi := BuildVoicePrompt(ctx)
	if !strings.Contains(hi, "Asha") || !strings.Contains(hi, "शिक्षक") {
		t.Errorf("hindi prompt missing expected content:\n%s", hi)
	}
	if en == hi {
		t.Error("expected distinct prompts per language")
	}
}
