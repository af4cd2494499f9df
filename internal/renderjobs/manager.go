package renderjobs

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/abhisek/gurukul/internal/store"
)

// Manager owns the render job lifecycle: submission, status reads, and the
// status writes the external renderer reports back.
type Manager struct {
	repo   store.RenderJobRepo
	scenes *SceneBuilder
}

// NewManager creates a Manager.
func NewManager(repo store.RenderJobRepo, scenes *SceneBuilder) *Manager {
	return &Manager{repo: repo, scenes: scenes}
}

// Submit sanitizes the prompt, derives a scene spec, and queues a new job.
// It returns the queued job immediately; rendering happens out of process.
func (m *Manager) Submit(ctx context.Context, prompt string, quality Quality) (*Job, error) {
	clean, err := SanitizePrompt(prompt)
	if err != nil {
		return nil, err
	}
	if err := quality.validate(); err != nil {
		return nil, err
	}

	spec := m.scenes.Build(ctx, clean)

	job := &Job{
		ID:          uuid.NewString(),
		Prompt:      clean,
		Quality:     quality,
		Status:      StatusQueued,
		SceneParams: spec,
	}

	if err := m.repo.Create(ctx, jobToRecord(job)); err != nil {
		return nil, fmt.Errorf("queue render job: %w", err)
	}

	return m.Get(ctx, job.ID)
}

// Get returns the job with the given ID.
func (m *Manager) Get(ctx context.Context, jobID string) (*Job, error) {
	rec, err := m.repo.Get(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, &ErrJobNotFound{ID: jobID}
	}
	return recordToJob(rec), nil
}

// UpdateStatus applies a renderer-reported transition. Terminal records are
// immutable: attempting to overwrite one returns ErrJobTerminal.
func (m *Manager) UpdateStatus(ctx context.Context, jobID string, status Status, resultURL, errorDetail string) (*Job, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	updated, err := m.repo.UpdateStatus(ctx, jobID, string(status), resultURL, errorDetail)
	if err != nil {
		return nil, err
	}
	if !updated {
		// Distinguish a missing job from a terminal one.
		current, err := m.Get(ctx, jobID)
		if err != nil {
			return nil, err
		}
		return nil, &ErrJobTerminal{ID: jobID, Status: current.Status}
	}

	return m.Get(ctx, jobID)
}

// List returns the most recent jobs, newest first.
func (m *Manager) List(ctx context.Context, limit int) ([]*Job, error) {
	recs, err := m.repo.List(ctx, store.QueryOpts{Limit: limit})
	if err != nil {
		return nil, err
	}
	jobs := make([]*Job, 0, len(recs))
	for _, rec := range recs {
		jobs = append(jobs, recordToJob(rec))
	}
	return jobs, nil
}

func (q Quality) validate() error {
	switch q {
	case QualityLow, QualityHigh:
		return nil
	}
	return fmt.Errorf("unknown quality tier: %q", string(q))
}

func jobToRecord(job *Job) *store.RenderJobRecord {
	return &store.RenderJobRecord{
		JobID:       job.ID,
		Prompt:      job.Prompt,
		Quality:     string(job.Quality),
		Status:      string(job.Status),
		SceneParams: job.SceneParams,
		ResultURL:   job.ResultURL,
		ErrorDetail: job.ErrorDetail,
	}
}

func recordToJob(rec *store.RenderJobRecord) *Job {
	return &Job{
		ID:          rec.JobID,
		Prompt:      rec.Prompt,
		Quality:     Quality(rec.Quality),
		Status:      Status(rec.Status),
		SceneParams: rec.SceneParams,
		ResultURL:   rec.ResultURL,
		ErrorDetail: rec.ErrorDetail,
		CreatedAt:   rec.CreatedAt,
		UpdatedAt:   rec.UpdatedAt,
	}
}
