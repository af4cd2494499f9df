package renderjobs

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/gurukul/internal/llm"
)

func TestMatchPreset(t *testing.T) {
	tests := []struct {
		prompt    string
		sceneType string
	}{
		{"show me a DFA for binary strings", "dfa"},
		{"explain pythagoras theorem", "triangle"},
		{"what is a dbms", "diagram"},
		{"explain client-server architecture", "diagram"},
		{"database management systems overview", "diagram"},
	}
	for _, tt := range tests {
		spec, ok := matchPreset(tt.prompt)
		require.True(t, ok, "prompt %q should match a preset", tt.prompt)
		assert.Equal(t, tt.sceneType, spec["sceneType"], "prompt %q", tt.prompt)
	}

	_, ok := matchPreset("explain prime numbers")
	assert.False(t, ok)
}

func TestMatchPreset_ReturnsCopy(t *testing.T) {
	spec, ok := matchPreset("dfa")
	require.True(t, ok)
	spec["title"] = "mutated"

	again, ok := matchPreset("dfa")
	require.True(t, ok)
	assert.Equal(t, "DFA for strings ending with 01", again["title"])
}

func TestSceneBuilder_PresetSkipsLLM(t *testing.T) {
	model := llm.NewMockProvider()
	b := NewSceneBuilder(model)

	spec := b.Build(context.Background(), "explain pythagoras")
	assert.Equal(t, "triangle", spec["sceneType"])
	assert.Equal(t, 0, model.CallCount())
}

func TestSceneBuilder_GeneratesFromLLM(t *testing.T) {
	model := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"sceneType":"list","title":"Merge Sort","params":{"items":["Split","Sort","Merge"]}}`),
	})
	b := NewSceneBuilder(model)

	spec := b.Build(context.Background(), "explain merge sort")
	assert.Equal(t, "list", spec["sceneType"])
	assert.Equal(t, "Merge Sort", spec["title"])
	require.Equal(t, 1, model.CallCount())
	assert.NotNil(t, model.Calls[0].Schema)
}

func TestSceneBuilder_StrictRetryAfterBadJSON(t *testing.T) {
	model := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`"this is not a scene"`)},
		llm.MockResponse{Content: json.RawMessage(`{"sceneType":"diagram","title":"Sorting","params":{"nodes":[],"edges":[]}}`)},
	)
	b := NewSceneBuilder(model)

	spec := b.Build(context.Background(), "explain bubble sort")
	assert.Equal(t, "diagram", spec["sceneType"])
	assert.Equal(t, 2, model.CallCount())
	assert.Equal(t, 0.0, model.Calls[1].Temperature)
}

func TestSceneBuilder_FallbackAfterRepeatedFailure(t *testing.T) {
	model := llm.NewMockProvider(
		llm.MockResponse{Err: fmt.Errorf("boom")},
		llm.MockResponse{Err: fmt.Errorf("boom again")},
		llm.MockResponse{Content: json.RawMessage(`{"sceneType":"list","title":"Primes","params":{"items":["2 is prime","3 is prime"]}}`)},
	)
	b := NewSceneBuilder(model)

	spec := b.Build(context.Background(), "explain prime numbers")
	assert.Equal(t, "list", spec["sceneType"])
	require.Equal(t, 3, model.CallCount())
	// The fallback pass asks for a plain summary without the scene schema.
	assert.Nil(t, model.Calls[2].Schema)
}

func TestSceneBuilder_EverythingFailsStillUsable(t *testing.T) {
	model := llm.NewMockProvider(
		llm.MockResponse{Err: fmt.Errorf("boom")},
		llm.MockResponse{Err: fmt.Errorf("boom")},
		llm.MockResponse{Err: fmt.Errorf("boom")},
	)
	b := NewSceneBuilder(model)

	spec := b.Build(context.Background(), "explain entropy")
	assert.Equal(t, "text", spec["sceneType"])
	params := spec["params"].(map[string]any)
	assert.Equal(t, "explain entropy", params["content"])
}

func TestSceneBuilder_NilProvider(t *testing.T) {
	b := NewSceneBuilder(nil)

	spec := b.Build(context.Background(), "explain osmosis")
	assert.Equal(t, "text", spec["sceneType"])
}

func TestParseSceneJSON_CodeFences(t *testing.T) {
	raw := json.RawMessage("\"```json\\n{\\\"sceneType\\\":\\\"text\\\",\\\"title\\\":\\\"T\\\",\\\"params\\\":{}}\\n```\"")
	spec := parseSceneJSON(raw)
	require.NotNil(t, spec)
	assert.Equal(t, "text", spec["sceneType"])
}

func TestParseSceneJSON_EmbeddedObject(t *testing.T) {
	raw := json.RawMessage(`"Here you go: {\"sceneType\":\"list\",\"title\":\"L\",\"params\":{}} hope that helps"`)
	spec := parseSceneJSON(raw)
	require.NotNil(t, spec)
	assert.Equal(t, "list", spec["sceneType"])
}

func TestNormalizeSceneSpec_Defaults(t *testing.T) {
	spec := normalizeSceneSpec(map[string]any{"sceneType": "quadratic"}, "explain quadratics and their roots in depth")
	params := spec["params"].(map[string]any)
	assert.Equal(t, float64(1), params["a"])
	assert.Equal(t, float64(-3), params["b"])
	assert.Equal(t, float64(-4), params["c"])
	assert.Equal(t, true, params["showFormula"])
	assert.NotEmpty(t, spec["title"])

	spec = normalizeSceneSpec(map[string]any{"sceneType": "graph", "title": "G"}, "plot")
	params = spec["params"].(map[string]any)
	assert.Equal(t, true, params["showAxes"])
	assert.Equal(t, []any{float64(-6), float64(6)}, params["xRange"])

	spec = normalizeSceneSpec(map[string]any{"sceneType": "list", "title": "L", "params": map[string]any{}}, "steps")
	params = spec["params"].(map[string]any)
	assert.Len(t, params["items"], 3)
}
