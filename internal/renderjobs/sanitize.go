package renderjobs

import (
	"fmt"
	"strings"
)

const maxPromptLength = 1000

// promptBlacklist rejects prompts that smell like code injection. The
// renderer runs generated scenes in a sandbox regardless; this only cuts
// down obvious attempts before they reach the LLM.
var promptBlacklist = []string{
	"import ",
	"from ",
	"subprocess",
	"os.",
	"sys.",
	"exec(",
	"eval(",
	"__import__",
	"socket",
	"requests",
	"urllib",
	"open(",
	"write(",
	"delete",
	"rm -rf",
	"curl",
	"wget",
}

// ErrPromptRejected indicates the prompt failed sanitization.
type ErrPromptRejected struct {
	Reason string
}

func (e *ErrPromptRejected) Error() string {
	return fmt.Sprintf("prompt rejected: %s", e.Reason)
}

// SanitizePrompt validates a render prompt. It returns the trimmed prompt or
// an ErrPromptRejected describing why it was refused.
func SanitizePrompt(prompt string) (string, error) {
	trimmed := strings.TrimSpace(prompt)
	if trimmed == "" {
		return "", &ErrPromptRejected{Reason: "empty prompt"}
	}

	lowered := strings.ToLower(trimmed)
	for _, token := range promptBlacklist {
		if strings.Contains(lowered, token) {
			return "", &ErrPromptRejected{Reason: fmt.Sprintf("forbidden token: %s", strings.TrimSpace(token))}
		}
	}

	if len(trimmed) > maxPromptLength {
		return "", &ErrPromptRejected{Reason: fmt.Sprintf("prompt too long (max %d chars)", maxPromptLength)}
	}

	return trimmed, nil
}
