package tutor

import (
	"fmt"
	"math"
	"strings"
)

// Mastery tier boundaries. Scores at exactly 40 and 70 fall in the middle
// tier (closed on both sides).
const (
	masteryLowBelow = 40
	masteryMidUpTo  = 70
)

// Depth instructions by mastery tier.
const (
	depthLow  = "Give a clear, step-by-step explanation with simple definitions, a worked example, and one short guided practice step the student can try now. Use minimal jargon."
	depthMid  = "Provide a concise conceptual overview with one worked example and one suggestion to deepen understanding. Balance definitions with the example."
	depthHigh = "Deliver a succinct, precise explanation that highlights connections, plus one optional extension challenge to push mastery further. Keep examples brief."
)

// Style instructions. One fixed template per VARK style.
var styleInstructions = map[Style]string{
	StyleVisual:      "Use descriptive visual language; include a simple diagram description or ASCII diagram the student can sketch, and call out key visual sequences or spatial relationships.",
	StyleAuditory:    "Use spoken-language cues and analogies; write as if reading the explanation aloud, with clear pausing markers and mnemonic phrases.",
	StyleReading:     "Present the explanation in well-structured paragraphs and bullet points; include clear definitions and labeled steps the student can re-read.",
	StyleKinesthetic: "Suggest a short hands-on activity or step-by-step practice the student can perform, describing what to do and what to observe.",
}

// BuildTutorPrompt produces the instruction string for the completion stage.
//
// The prompt constrains the model to grade-level syllabus content for the
// given concept, adapts explanation depth to the mastery score, matches the
// student's dominant learning style, and requires the response to end with
// exactly one self-check question. It is a pure function of its inputs:
// identical arguments always yield byte-identical output.
//
// Degenerate mastery scores are sanitized, never rejected: NaN and ±Inf
// become 0, out-of-range values clamp to [0,100]. An unknown style is the
// one loud failure.
func BuildTutorPrompt(grade int, concept string, masteryScore float64, style Style, studentQuestion string) (string, error) {
	instruction, ok := styleInstructions[style]
	if !ok {
		return "", &ErrUnknownStyle{Style: style}
	}

	ms := clampMastery(masteryScore)

	var depth string
	switch {
	case ms < masteryLowBelow:
		depth = depthLow
	case ms <= masteryMidUpTo:
		depth = depthMid
	default:
		depth = depthHigh
	}

	syllabusGuard := fmt.Sprintf(
		"Limit the explanation strictly to topics and depth appropriate for a Grade %d syllabus-level treatment of %q. Do not introduce concepts, facts, or examples beyond what would reasonably appear in a Grade %d curriculum for this concept.",
		grade, concept, grade)

	sections := []string{
		"You are a helpful, accurate AI tutor.",
		syllabusGuard,
		"Follow these rules exactly:",
		"1) " + depth,
		"2) Match explanation style: " + instruction,
		"3) Stay concise and avoid unnecessary tangents.",
		"4) If you are unsure about a factual detail, say you don't know or suggest consulting the syllabus or teacher.",
		"5) Do not invent external references, statistics, or citations.",
		fmt.Sprintf("Answer the student's question: %q.", studentQuestion),
		"End the response with exactly one short self-check question (one sentence) that asks the student to apply the main idea.",
	}

	return strings.Join(sections, "\n\n"), nil
}

// clampMastery sanitizes a mastery score into [0,100].
func clampMastery(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return math.Max(0, math.Min(100, v))
}
