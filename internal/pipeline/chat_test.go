package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/gurukul/internal/llm"
	"github.com/abhisek/gurukul/internal/tutor"
)

func chatRequestFixture() ChatRequest {
	return ChatRequest{
		Grade:        7,
		Concept:      "Photosynthesis",
		MasteryLevel: 55,
		Style:        tutor.StyleVisual,
		Question:     "why do leaves need sunlight",
	}
}

func TestChat_UsesTutorPrompt(t *testing.T) {
	model := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`"Sunlight powers the food-making reaction."`)})

	o := testOrchestrator(testRegistry(false), nil, model, nil)

	reply, err := o.Chat(context.Background(), chatRequestFixture())
	require.NoError(t, err)
	assert.Equal(t, "Sunlight powers the food-making reaction.", reply)

	require.Equal(t, 1, model.CallCount())
	call := model.Calls[0]
	require.Len(t, call.Messages, 1)
	prompt := call.Messages[0].Content
	assert.Contains(t, prompt, "Grade 7")
	assert.Contains(t, prompt, `"Photosynthesis"`)
	assert.Contains(t, prompt, "diagram")
	assert.Contains(t, prompt, "why do leaves need sunlight")
	assert.Contains(t, prompt, "self-check question")
	assert.Equal(t, 0.7, call.Temperature)
}

func TestChat_UnknownStyleRejectedBeforeLLM(t *testing.T) {
	model := llm.NewMockProvider()

	o := testOrchestrator(testRegistry(false), nil, model, nil)

	req := chatRequestFixture()
	req.Style = "osmotic"
	_, err := o.Chat(context.Background(), req)

	var unk *tutor.ErrUnknownStyle
	require.ErrorAs(t, err, &unk)
	assert.Equal(t, 0, model.CallCount())
}

func TestChat_HistoryPrecedesPrompt(t *testing.T) {
	model := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`"Chlorophyll absorbs it."`)})

	req := chatRequestFixture()
	req.History = []tutor.Turn{
		{Role: "user", Content: "what is a leaf made of"},
		{Role: "assistant", Content: "Mostly cells with chloroplasts."},
	}

	o := testOrchestrator(testRegistry(false), nil, model, nil)

	_, err := o.Chat(context.Background(), req)
	require.NoError(t, err)

	msgs := model.Calls[0].Messages
	require.Len(t, msgs, 3)
	assert.Equal(t, llm.RoleUser, msgs[0].Role)
	assert.Equal(t, llm.RoleAssistant, msgs[1].Role)
	assert.Contains(t, msgs[2].Content, "Grade 7")
}

func TestChat_LLMFailure(t *testing.T) {
	model := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: fmt.Errorf("down")}})

	o := testOrchestrator(testRegistry(false), nil, model, nil)

	_, err := o.Chat(context.Background(), chatRequestFixture())
	assert.Error(t, err)
}

func TestChat_EmptyReplyGetsFallback(t *testing.T) {
	model := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`""`)})

	o := testOrchestrator(testRegistry(false), nil, model, nil)

	reply, err := o.Chat(context.Background(), chatRequestFixture())
	require.NoError(t, err)
	assert.Equal(t, fallbackReplyEnglish, reply)
}
