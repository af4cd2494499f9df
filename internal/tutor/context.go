package tutor

// Turn is one prior exchange in a tutoring conversation.
type Turn struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// Context carries the pedagogical state for one tutoring request.
// It is assembled by the caller (already authorized) and treated as
// immutable for the lifetime of the request.
type Context struct {
	StudentName  string   `json:"studentName"`
	Style        Style    `json:"dominantLearningStyle"`
	MasteryLevel float64  `json:"masteryLevel"` // 0-100
	Grade        int      `json:"grade"`
	Topic        string   `json:"topic,omitempty"`
	Language     Language `json:"language,omitempty"`

	// History is the bounded conversation so far. The caller decides the
	// window; prompt construction passes it through unmodified.
	History []Turn `json:"conversationHistory,omitempty"`
}
