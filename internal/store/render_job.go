package store

import (
	"context"
	"fmt"

	"github.com/abhisek/gurukul/ent"
	"github.com/abhisek/gurukul/ent/renderjob"
)

// renderJobRepo implements RenderJobRepo using the ent client.
type renderJobRepo struct {
	client *ent.Client
}

func (r *renderJobRepo) Create(ctx context.Context, rec *RenderJobRecord) error {
	_, err := r.client.RenderJob.Create().
		SetJobID(rec.JobID).
		SetPrompt(rec.Prompt).
		SetQuality(renderjob.Quality(rec.Quality)).
		SetStatus(renderjob.Status(rec.Status)).
		SetSceneParams(rec.SceneParams).
		SetResultURL(rec.ResultURL).
		SetErrorDetail(rec.ErrorDetail).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save render job: %w", err)
	}
	return nil
}

func (r *renderJobRepo) Get(ctx context.Context, jobID string) (*RenderJobRecord, error) {
	row, err := r.client.RenderJob.Query().
		Where(renderjob.JobIDEQ(jobID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get render job: %w", err)
	}
	return entRenderJobToRecord(row), nil
}

// UpdateStatus is guarded at the database level: the WHERE clause excludes
// terminal rows, so a completed or failed job can never be overwritten even
// under concurrent updates.
func (r *renderJobRepo) UpdateStatus(ctx context.Context, jobID, status, resultURL, errorDetail string) (bool, error) {
	n, err := r.client.RenderJob.Update().
		Where(
			renderjob.JobIDEQ(jobID),
			renderjob.StatusNotIn(renderjob.StatusCompleted, renderjob.StatusFailed),
		).
		SetStatus(renderjob.Status(status)).
		SetResultURL(resultURL).
		SetErrorDetail(errorDetail).
		Save(ctx)
	if err != nil {
		return false, fmt.Errorf("update render job status: %w", err)
	}
	return n > 0, nil
}

func (r *renderJobRepo) List(ctx context.Context, opts QueryOpts) ([]*RenderJobRecord, error) {
	q := r.client.RenderJob.Query().
		Order(ent.Desc(renderjob.FieldCreatedAt))

	if !opts.From.IsZero() {
		q = q.Where(renderjob.CreatedAtGTE(opts.From))
	}
	if !opts.To.IsZero() {
		q = q.Where(renderjob.CreatedAtLTE(opts.To))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list render jobs: %w", err)
	}

	recs := make([]*RenderJobRecord, 0, len(rows))
	for _, row := range rows {
		recs = append(recs, entRenderJobToRecord(row))
	}
	return recs, nil
}

func entRenderJobToRecord(row *ent.RenderJob) *RenderJobRecord {
	return &RenderJobRecord{
		ID:          row.ID,
		JobID:       row.JobID,
		Prompt:      row.Prompt,
		Quality:     string(row.Quality),
		Status:      string(row.Status),
		SceneParams: row.SceneParams,
		ResultURL:   row.ResultURL,
		ErrorDetail: row.ErrorDetail,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}
