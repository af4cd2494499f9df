package renderjobs

import (
	"errors"
	"strings"
	"testing"
)

func TestSanitizePrompt_Valid(t *testing.T) {
	got, err := SanitizePrompt("  explain prime numbers  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "explain prime numbers" {
		t.Fatalf("unexpected prompt: %q", got)
	}
}

func TestSanitizePrompt_Empty(t *testing.T) {
	_, err := SanitizePrompt("   ")
	var rej *ErrPromptRejected
	if !errors.As(err, &rej) {
		t.Fatalf("expected ErrPromptRejected, got %v", err)
	}
}

func TestSanitizePrompt_ForbiddenTokens(t *testing.T) {
	cases := []string{
		"please import os and explain",
		"run subprocess to show me",
		"eval(1+1) in a video",
		"explain rm -rf to students",
		"__import__('os')",
	}
	for _, prompt := range cases {
		_, err := SanitizePrompt(prompt)
		var rej *ErrPromptRejected
		if !errors.As(err, &rej) {
			t.Errorf("prompt %q: expected rejection, got %v", prompt, err)
			continue
		}
		if !strings.Contains(rej.Reason, "forbidden token") {
			t.Errorf("prompt %q: unexpected reason %q", prompt, rej.Reason)
		}
	}
}

func TestSanitizePrompt_TooLong(t *testing.T) {
	_, err := SanitizePrompt(strings.Repeat("a", maxPromptLength+1))
	var rej *ErrPromptRejected
	if !errors.As(err, &rej) {
		t.Fatalf("expected ErrPromptRejected, got %v", err)
	}
	if !strings.Contains(rej.Reason, "too long") {
		t.Fatalf("unexpected reason: %q", rej.Reason)
	}
}

func TestSanitizePrompt_MaxLengthAccepted(t *testing.T) {
	if _, err := SanitizePrompt(strings.Repeat("a", maxPromptLength)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
