package tutor

import (
	"fmt"
	"strings"
)

const defaultMasteryDisplay = 50

// BuildVoicePrompt produces the system prompt for real-time voice tutoring.
// Voice replies are intentionally short: the length constraint is expressed
// to the model here and reinforced by the completion stage's token limit.
func BuildVoicePrompt(ctx Context) string {
	if ctx.Language == LanguageHindi {
		return buildHindiVoicePrompt(ctx)
	}
	return buildEnglishVoicePrompt(ctx)
}

func buildEnglishVoicePrompt(ctx Context) string {
	topic := ctx.Topic
	if topic == "" {
		topic = "General learning"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You are a friendly AI tutor having a natural voice conversation with a student named %s.\n\n", ctx.StudentName)
	b.WriteString(`IMPORTANT RULES FOR NATURAL CONVERSATION:
1. Keep responses SHORT - 2-3 sentences max (this is real-time voice chat)
2. Be conversational and natural - speak like a friendly teacher
3. Pause naturally with commas for smooth flow
4. Be encouraging: "Great question!", "You're doing well!", "Exactly!"
5. Explain concepts simply and clearly
6. Ask follow-up questions to keep them engaged
7. Use relatable examples when explaining

`)
	fmt.Fprintf(&b, "Current topic: %s\n", topic)
	fmt.Fprintf(&b, "Student mastery level: %.0f%%\n\n", masteryDisplay(ctx.MasteryLevel))
	b.WriteString("Remember: You're TALKING to them naturally, keep it brief and clear!")
	return b.String()
}

func buildHindiVoicePrompt(ctx Context) string {
	topic := ctx.Topic
	if topic == "" {
		topic = "सामान्य शिक्षा"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "आप एक मित्रवत AI शिक्षक हैं जो %s नामक छात्र के साथ आवाज़ में बातचीत कर रहे हैं।\n\n", ctx.StudentName)
	b.WriteString(`महत्वपूर्ण नियम:
1. जवाब छोटे रखें - अधिकतम 2-3 वाक्य (यह वास्तविक समय की बातचीत है)
2. बहुत सरल और स्पष्ट भाषा में समझाएं
3. प्रोत्साहन दें: "बहुत अच्छे!", "शाबाश!", "बिल्कुल सही!"
4. उदाहरण देकर समझाएं
5. अगर नहीं समझ आया तो स्पष्टीकरण मांगें

`)
	fmt.Fprintf(&b, "विषय: %s\n", topic)
	fmt.Fprintf(&b, "छात्र का स्तर: %.0f%%\n\n", masteryDisplay(ctx.MasteryLevel))
	b.WriteString("याद रखें: आप एक मित्र की तरह बात कर रहे हैं, निबंध नहीं लिख रहे!")
	return b.String()
}

// masteryDisplay clamps the score and substitutes the midpoint when the
// caller sent nothing usable.
func masteryDisplay(v float64) float64 {
	ms := clampMastery(v)
	if ms == 0 {
		return defaultMasteryDisplay
	}
	return ms
}
