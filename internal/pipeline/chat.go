package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/gurukul/internal/llm"
	"github.com/abhisek/gurukul/internal/provider"
	"github.com/abhisek/gurukul/internal/tutor"
)

// ChatRequest is one text tutoring exchange. Unlike the voice path, the
// prompt is built from explicit pedagogical inputs rather than a running
// conversation context.
type ChatRequest struct {
	Grade        int
	Concept      string
	MasteryLevel float64
	Style        tutor.Style
	Question     string
	History      []tutor.Turn
}

// Chat answers a text tutoring question through the completion stage.
// The full tutor prompt (syllabus guard, depth tier, style instruction,
// self-check requirement) is the final user message; prior turns precede it.
func (o *Orchestrator) Chat(ctx context.Context, req ChatRequest) (string, error) {
	prompt, err := tutor.BuildTutorPrompt(req.Grade, req.Concept, req.MasteryLevel, req.Style, req.Question)
	if err != nil {
		return "", err
	}

	desc, err := o.registry.Resolve(provider.CapabilityLLM)
	if err != nil {
		return "", err
	}
	p, ok := o.llms[desc.ID]
	if !ok {
		return "", fmt.Errorf("no client for LLM provider %q", desc.ID)
	}

	messages := make([]llm.Message, 0, len(req.History)+1)
	for _, turn := range req.History {
		role := llm.RoleUser
		if turn.Role == "assistant" {
			role = llm.RoleAssistant
		}
		messages = append(messages, llm.Message{Role: role, Content: turn.Content})
	}
	messages = append(messages, llm.Message{Role: llm.RoleUser, Content: prompt})

	ctx = llm.WithPurpose(ctx, "chat-reply")
	ctx, cancel := context.WithTimeout(ctx, o.stageTimeout)
	defer cancel()

	resp, err := p.Generate(ctx, llm.Request{
		Messages:    messages,
		MaxTokens:   replyMaxTokens,
		Temperature: 0.7,
	})
	if err != nil {
		return "", err
	}

	reply := strings.TrimSpace(decodeText(resp.Content))
	if reply == "" {
		reply = fallbackReplyEnglish
	}
	return reply, nil
}
