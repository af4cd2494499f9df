package store

import (
	"context"
	"sync"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestAppendAndQueryLLMEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	data := LLMRequestEventData{
		Provider:     "groq",
		Model:        "llama-3.3-70b-versatile",
		Purpose:      "voice-reply",
		InputTokens:  120,
		OutputTokens: 45,
		LatencyMs:    830,
		Success:      true,
		RequestBody:  "[user]\nwhat is gravity",
		ResponseBody: `"Gravity pulls things together."`,
	}
	if err := repo.AppendLLMRequest(ctx, data); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "groq",
		Model:    "llama-3.3-70b-versatile",
		Purpose:  "scene-spec",
		Success:  false,
	}); err != nil {
		t.Fatalf("append: %v", err)
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	// Most recent first.
	if events[0].Purpose != "scene-spec" {
		t.Errorf("expected scene-spec first, got %q", events[0].Purpose)
	}
	if events[1].RequestBody != data.RequestBody {
		t.Errorf("request body not stored: %q", events[1].RequestBody)
	}
	if events[1].ResponseBody != data.ResponseBody {
		t.Errorf("response body not stored: %q", events[1].ResponseBody)
	}
	if events[0].Sequence <= events[1].Sequence {
		t.Errorf("sequence not monotonic: %d then %d", events[1].Sequence, events[0].Sequence)
	}

	got, err := repo.GetLLMEvent(ctx, events[1].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.Purpose != "voice-reply" {
		t.Fatalf("unexpected event: %+v", got)
	}

	missing, err := repo.GetLLMEvent(ctx, 99999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Fatalf("expected nil for missing event, got %+v", missing)
	}
}

func TestQueryLLMEventsLimit(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider: "groq", Model: "m", Purpose: "voice-reply", Success: true,
		}); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 3})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}
}

func TestLLMUsageAggregation(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "groq", Model: "llama-3.3-70b-versatile", Purpose: "voice-reply", InputTokens: 100, OutputTokens: 40, LatencyMs: 800, Success: true},
		{Provider: "groq", Model: "llama-3.3-70b-versatile", Purpose: "voice-reply", InputTokens: 50, OutputTokens: 20, LatencyMs: 400, Success: true},
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "scene-spec", InputTokens: 200, OutputTokens: 80, LatencyMs: 1200, Success: true},
	}
	for _, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(byPurpose) != 2 {
		t.Fatalf("expected 2 purposes, got %d", len(byPurpose))
	}
	for _, u := range byPurpose {
		if u.Purpose == "voice-reply" {
			if u.Calls != 2 || u.InputTokens != 150 || u.OutputTokens != 60 {
				t.Errorf("unexpected voice-reply usage: %+v", u)
			}
			if u.AvgLatencyMs != 600 {
				t.Errorf("unexpected avg latency: %d", u.AvgLatencyMs)
			}
		}
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 2 {
		t.Fatalf("expected 2 models, got %d", len(byModel))
	}
}

func TestRenderJobCreateAndGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.RenderJobRepo()
	ctx := context.Background()

	rec := &RenderJobRecord{
		JobID:   "job-1",
		Prompt:  "pythagorean theorem",
		Quality: "low",
		Status:  "queued",
		SceneParams: map[string]any{
			"template": "pythagoras",
		},
	}
	if err := repo.Create(ctx, rec); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.Get(ctx, "job-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatal("expected job, got nil")
	}
	if got.Status != "queued" || got.Prompt != "pythagorean theorem" {
		t.Errorf("unexpected record: %+v", got)
	}
	if got.SceneParams["template"] != "pythagoras" {
		t.Errorf("scene params not stored: %+v", got.SceneParams)
	}

	missing, err := repo.Get(ctx, "nope")
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Fatalf("expected nil for missing job, got %+v", missing)
	}
}

func TestRenderJobTerminalStatusIsImmutable(t *testing.T) {
	s := openTestStore(t)
	repo := s.RenderJobRepo()
	ctx := context.Background()

	if err := repo.Create(ctx, &RenderJobRecord{
		JobID: "job-2", Prompt: "dfa", Quality: "low", Status: "queued",
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := repo.UpdateStatus(ctx, "job-2", "rendering", "", "")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !updated {
		t.Fatal("expected queued -> rendering to apply")
	}

	updated, err = repo.UpdateStatus(ctx, "job-2", "completed", "/videos/job-2.mp4", "")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !updated {
		t.Fatal("expected rendering -> completed to apply")
	}

	// Terminal states cannot be overwritten.
	updated, err = repo.UpdateStatus(ctx, "job-2", "failed", "", "late failure")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated {
		t.Fatal("terminal job must not be updated")
	}

	got, err := repo.Get(ctx, "job-2")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Status != "completed" || got.ResultURL != "/videos/job-2.mp4" {
		t.Errorf("terminal state changed: %+v", got)
	}
}

func TestRenderJobConcurrentTerminalWrites(t *testing.T) {
	s := openTestStore(t)
	repo := s.RenderJobRepo()
	ctx := context.Background()

	if err := repo.Create(ctx, &RenderJobRecord{
		JobID: "job-race", Prompt: "pythagoras", Quality: "low", Status: "rendering",
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	// Racing renderer write-backs: exactly one terminal transition may win.
	statuses := []string{
		"completed", "failed", "completed", "failed",
		"completed", "failed", "completed", "failed",
	}
	wins := make(chan string, len(statuses))
	var wg sync.WaitGroup
	for _, status := range statuses {
		wg.Add(1)
		go func(status string) {
			defer wg.Done()
			updated, err := repo.UpdateStatus(ctx, "job-race", status, "", "")
			if err != nil {
				t.Errorf("update %s: %v", status, err)
				return
			}
			if updated {
				wins <- status
			}
		}(status)
	}
	wg.Wait()
	close(wins)

	var winners []string
	for w := range wins {
		winners = append(winners, w)
	}
	if len(winners) != 1 {
		t.Fatalf("expected exactly one terminal transition, got %d (%v)", len(winners), winners)
	}

	got, err := repo.Get(ctx, "job-race")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Status != winners[0] {
		t.Errorf("stored status %q does not match winning write %q", got.Status, winners[0])
	}
}

func TestRenderJobList(t *testing.T) {
	s := openTestStore(t)
	repo := s.RenderJobRepo()
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c"} {
		if err := repo.Create(ctx, &RenderJobRecord{
			JobID: id, Prompt: "p", Quality: "low", Status: "queued",
		}); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	jobs, err := repo.List(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(jobs) != 2 {
		t.Fatalf("expected 2 jobs, got %d", len(jobs))
	}
}
