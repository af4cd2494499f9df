package tutor

import "fmt"

// Style is a VARK dominant learning style.
type Style string

const (
	StyleVisual      Style = "visual"
	StyleAuditory    Style = "auditory"
	StyleReading     Style = "reading"
	StyleKinesthetic Style = "kinesthetic"
)

// ErrUnknownStyle indicates a learning style outside the VARK set.
// Prompt construction refuses to guess a default: a silently substituted
// style would produce an explanation mismatched to the student.
type ErrUnknownStyle struct {
	Style Style
}

func (e *ErrUnknownStyle) Error() string {
	return fmt.Sprintf("unknown learning style: %q", string(e.Style))
}

// ParseStyle validates a raw style string from an inbound request.
func ParseStyle(s string) (Style, error) {
	switch Style(s) {
	case StyleVisual, StyleAuditory, StyleReading, StyleKinesthetic:
		return Style(s), nil
	}
	return "", &ErrUnknownStyle{Style: Style(s)}
}

// Language selects the tutoring language for voice conversations.
type Language string

const (
	LanguageEnglish Language = "english"
	LanguageHindi   Language = "hindi"
)

// NormalizeLanguage maps a raw language string to a supported Language,
// defaulting to English for empty or unrecognized values.
func NormalizeLanguage(s string) Language {
	if Language(s) == LanguageHindi {
		return LanguageHindi
	}
	return LanguageEnglish
}
