package renderjobs

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/gurukul/internal/llm"
)

// sceneSystemPrompt forces diagram-first scene specifications for any topic.
const sceneSystemPrompt = `You are an assistant that converts a user's prompt into a JSON scene specification for rendering an educational animation.

IMPORTANT:
- Respond ONLY with a single valid JSON object.
- No markdown, no code fences, no explanations, no extra text.
- Prefer DIAGRAMMATIC / VISUAL explanations whenever possible.
- Use "text" ONLY when the prompt cannot be visualized.

SCHEMA:
{
  "sceneType": string,
  "title": string,
  "params": object
}

SUPPORTED sceneType values:
- "text"      : title + short content (minimal)
- "list"      : bullet list
- "diagram"   : generic labeled diagram (boxes + arrows)
- "dfa"       : automaton (nodes + edges)
- "triangle"  : geometry triangle
- "quadratic" : quadratic equation visualization
- "graph"     : coordinate axes + plotted function(s)

GENERAL RULES (diagram-first):
1) If prompt asks to "explain", "show", "visualize", "draw", "diagram"
   -> use "diagram" or "list" or a specialized sceneType.
2) If prompt contains keywords:
   - quadratic / parabola / x^2 / roots / vertex -> use "quadratic"
   - graph / plot / function / curve -> use "graph"
   - DFA / automata / finite automaton -> use "dfa"
   - triangle / pythagoras -> use "triangle"
3) If prompt is a process or algorithm -> use "list" with 4-8 steps.
4) Keep text short. Prefer labels, arrows, nodes, and structure.

DEFAULTS:
- If quadratic coefficients are not specified: a=1, b=-3, c=-4
- If graph ranges are not specified: xRange=[-6,6], yRange=[-6,6]
- Keep 1-2 functions max.

Now convert the user prompt into the JSON object.`

// fallbackSystemPrompt trades structure for reliability when the main scene
// generation fails twice.
const fallbackSystemPrompt = `You are a friendly tutor that produces a compact VISUAL-FIRST summary.

Return ONLY JSON in this schema:
{
  "sceneType": "list" | "text",
  "title": string,
  "params": { "items"?: string[], "content"?: string }
}

Rules:
- Prefer "list" with 4-7 short bullet points.
- Keep each bullet under 12 words.
- Use "text" only if list is impossible.`

var sceneSpecSchema = &llm.Schema{
	Name:        "render-scene",
	Description: "Scene specification for an educational animation",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"sceneType": map[string]any{
				"type": "string",
				"enum": []any{"text", "list", "diagram", "dfa", "triangle", "quadratic", "graph"},
			},
			"title": map[string]any{"type": "string"},
			"params": map[string]any{
				"type":                 "object",
				"additionalProperties": true,
			},
		},
		"required":             []any{"sceneType", "title", "params"},
		"additionalProperties": false,
	},
}

// scenePresets covers common curriculum topics with deterministic specs, so
// frequent prompts never spend an LLM call.
var scenePresets = map[string]map[string]any{
	"dfa": {
		"sceneType": "dfa",
		"title":     "DFA for strings ending with 01",
		"params": map[string]any{
			"nodes": []any{
				map[string]any{"id": "q0", "label": "q0", "start": true},
				map[string]any{"id": "q1", "label": "q1"},
				map[string]any{"id": "q2", "label": "q2", "accept": true},
			},
			"edges": []any{
				map[string]any{"from": "q0", "to": "q1", "label": "0"},
				map[string]any{"from": "q0", "to": "q0", "label": "1"},
				map[string]any{"from": "q1", "to": "q1", "label": "0"},
				map[string]any{"from": "q1", "to": "q2", "label": "1"},
				map[string]any{"from": "q2", "to": "q1", "label": "0"},
				map[string]any{"from": "q2", "to": "q0", "label": "1"},
			},
		},
	},
	"pythagoras": {
		"sceneType": "triangle",
		"title":     "Pythagoras Theorem",
		"params": map[string]any{
			"labels":         map[string]any{"a": "a", "b": "b", "c": "c"},
			"showRightAngle": true,
		},
	},
	"dbaas": {
		"sceneType": "diagram",
		"title":     "DBaaS Architecture",
		"params": map[string]any{
			"nodes": []any{
				map[string]any{"id": "client", "label": "Client"},
				map[string]any{"id": "app", "label": "Application"},
				map[string]any{"id": "db", "label": "DBaaS Provider"},
			},
			"edges": []any{
				map[string]any{"from": "client", "to": "app", "label": "Uses API"},
				map[string]any{"from": "app", "to": "db", "label": "Managed DB Calls"},
				map[string]any{"from": "db", "to": "app", "label": "Responses"},
			},
		},
	},
	"dbms": {
		"sceneType": "diagram",
		"title":     "DBMS Components",
		"params": map[string]any{
			"nodes": []any{
				map[string]any{"id": "user", "label": "User"},
				map[string]any{"id": "dbms", "label": "DBMS"},
				map[string]any{"id": "storage", "label": "Storage Engine"},
			},
			"edges": []any{
				map[string]any{"from": "user", "to": "dbms", "label": "Queries"},
				map[string]any{"from": "dbms", "to": "storage", "label": "Reads/Writes"},
			},
		},
	},
	"clientServer": {
		"sceneType": "diagram",
		"title":     "Client-Server Architecture",
		"params": map[string]any{
			"nodes": []any{
				map[string]any{"id": "client", "label": "Client"},
				map[string]any{"id": "server", "label": "Server"},
				map[string]any{"id": "db", "label": "Database"},
			},
			"edges": []any{
				map[string]any{"from": "client", "to": "server", "label": "HTTP Request"},
				map[string]any{"from": "server", "to": "client", "label": "HTTP Response"},
				map[string]any{"from": "server", "to": "db", "label": "Query"},
				map[string]any{"from": "db", "to": "server", "label": "Result"},
			},
		},
	},
}

// matchPreset returns a preset spec for well-known topics.
func matchPreset(prompt string) (map[string]any, bool) {
	p := strings.ToLower(prompt)
	switch {
	case strings.Contains(p, "dfa"), strings.Contains(p, "automaton"), strings.Contains(p, "automata"):
		return clone(scenePresets["dfa"]), true
	case strings.Contains(p, "pythag"), strings.Contains(p, "triangle"):
		return clone(scenePresets["pythagoras"]), true
	case strings.Contains(p, "dbaas"):
		return clone(scenePresets["dbaas"]), true
	case strings.Contains(p, "dbms"),
		strings.Contains(p, "database") && strings.Contains(p, "management"):
		return clone(scenePresets["dbms"]), true
	case strings.Contains(p, "client server"), strings.Contains(p, "client-server"), strings.Contains(p, "clientserver"):
		return clone(scenePresets["clientServer"]), true
	}
	return nil, false
}

// clone deep-copies a preset through JSON so callers can't mutate the shared map.
func clone(spec map[string]any) map[string]any {
	b, err := json.Marshal(spec)
	if err != nil {
		return spec
	}
	var out map[string]any
	if err := json.Unmarshal(b, &out); err != nil {
		return spec
	}
	return out
}

// SceneBuilder derives a scene specification from a render prompt.
// Generation degrades through four levels and never fails: preset match,
// schema-constrained LLM call, a stricter retry, then a plain visual-summary
// fallback. Whatever comes out is normalized so the renderer always receives
// a usable structure.
type SceneBuilder struct {
	provider llm.Provider
}

// NewSceneBuilder creates a SceneBuilder. A nil provider is allowed: every
// prompt then resolves to a preset or the normalized text fallback.
func NewSceneBuilder(provider llm.Provider) *SceneBuilder {
	return &SceneBuilder{provider: provider}
}

// Build returns the scene spec for a sanitized prompt.
func (b *SceneBuilder) Build(ctx context.Context, prompt string) map[string]any {
	if spec, ok := matchPreset(prompt); ok {
		return normalizeSceneSpec(spec, prompt)
	}

	if b.provider == nil {
		return normalizeSceneSpec(nil, prompt)
	}

	ctx = llm.WithPurpose(ctx, "scene-spec")

	spec := b.generate(ctx, llm.Request{
		System:      sceneSystemPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: prompt}},
		Schema:      sceneSpecSchema,
		MaxTokens:   600,
		Temperature: 0.2,
	})

	// Retry once with a stricter instruction and zero temperature.
	if spec == nil {
		spec = b.generate(ctx, llm.Request{
			System: sceneSystemPrompt,
			Messages: []llm.Message{{
				Role:    llm.RoleUser,
				Content: fmt.Sprintf("Return ONLY JSON. No markdown. No extra words.\nPrompt: %s", prompt),
			}},
			Schema:      sceneSpecSchema,
			MaxTokens:   600,
			Temperature: 0.0,
		})
	}

	// Last LLM resort: a list/text summary, still visual-friendly.
	if spec == nil {
		spec = b.generate(ctx, llm.Request{
			System:      fallbackSystemPrompt,
			Messages:    []llm.Message{{Role: llm.RoleUser, Content: prompt}},
			MaxTokens:   250,
			Temperature: 0.6,
		})
	}

	return normalizeSceneSpec(spec, prompt)
}

func (b *SceneBuilder) generate(ctx context.Context, req llm.Request) map[string]any {
	resp, err := b.provider.Generate(ctx, req)
	if err != nil || resp == nil {
		return nil
	}
	return parseSceneJSON(resp.Content)
}

// parseSceneJSON decodes a scene spec, tolerating code fences and prose
// around the JSON object.
func parseSceneJSON(raw json.RawMessage) map[string]any {
	var spec map[string]any
	if err := json.Unmarshal(raw, &spec); err == nil {
		return spec
	}

	// The content may be a JSON-encoded string holding the object.
	var text string
	if err := json.Unmarshal(raw, &text); err != nil {
		text = string(raw)
	}

	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	if err := json.Unmarshal([]byte(text), &spec); err == nil {
		return spec
	}

	// Extract the first {...} block.
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start >= 0 && end > start {
		if err := json.Unmarshal([]byte(text[start:end+1]), &spec); err == nil {
			return spec
		}
	}
	return nil
}

// normalizeSceneSpec fills defaults so the renderer never sees a broken spec.
func normalizeSceneSpec(spec map[string]any, prompt string) map[string]any {
	if spec == nil {
		return map[string]any{
			"sceneType": "text",
			"title":     "Explanation",
			"params":    map[string]any{"content": prompt},
		}
	}

	sceneType, _ := spec["sceneType"].(string)
	if sceneType == "" {
		sceneType = "text"
		spec["sceneType"] = sceneType
	}
	if title, _ := spec["title"].(string); title == "" {
		spec["title"] = truncate(prompt, 60)
	}

	params, ok := spec["params"].(map[string]any)
	if !ok {
		params = map[string]any{}
		spec["params"] = params
	}

	switch sceneType {
	case "quadratic":
		setDefault(params, "a", float64(1))
		setDefault(params, "b", float64(-3))
		setDefault(params, "c", float64(-4))
		setDefault(params, "showFormula", true)
		setDefault(params, "showGraph", true)
		setDefault(params, "showRoots", true)
		setDefault(params, "showVertex", true)
		setDefault(params, "showAxisOfSymmetry", true)
		setDefault(params, "notes", []any{})
	case "graph":
		setDefault(params, "showAxes", true)
		setDefault(params, "xRange", []any{float64(-6), float64(6)})
		setDefault(params, "yRange", []any{float64(-6), float64(6)})
		setDefault(params, "functions", []any{map[string]any{"expr": "x", "label": "y=x"}})
	case "list":
		setDefault(params, "items", []any{"Key point 1", "Key point 2", "Key point 3"})
	case "text":
		setDefault(params, "content", prompt)
	}

	return spec
}

func setDefault(m map[string]any, key string, value any) {
	if _, ok := m[key]; !ok {
		m[key] = value
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
