package renderjobs

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/gurukul/internal/store"
)

func testManager(t *testing.T) *Manager {
	t.Helper()
	s, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return NewManager(s.RenderJobRepo(), NewSceneBuilder(nil))
}

func TestManager_SubmitAndGet(t *testing.T) {
	m := testManager(t)
	ctx := context.Background()

	job, err := m.Submit(ctx, "explain prime numbers", QualityLow)
	require.NoError(t, err)
	require.NotEmpty(t, job.ID)
	assert.Equal(t, StatusQueued, job.Status)
	assert.Equal(t, QualityLow, job.Quality)
	assert.Equal(t, "explain prime numbers", job.Prompt)
	assert.NotNil(t, job.SceneParams)
	assert.False(t, job.CreatedAt.IsZero())

	got, err := m.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, job.ID, got.ID)
	assert.Equal(t, StatusQueued, got.Status)
}

func TestManager_SubmitUniqueIDs(t *testing.T) {
	m := testManager(t)
	ctx := context.Background()

	a, err := m.Submit(ctx, "explain fractions", QualityLow)
	require.NoError(t, err)
	b, err := m.Submit(ctx, "explain fractions", QualityHigh)
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestManager_SubmitRejectsBadPrompt(t *testing.T) {
	m := testManager(t)

	_, err := m.Submit(context.Background(), "import os; explain", QualityLow)
	var rej *ErrPromptRejected
	assert.True(t, errors.As(err, &rej))

	_, err = m.Submit(context.Background(), "explain sets", Quality("ultra"))
	assert.Error(t, err)
}

func TestManager_GetNotFound(t *testing.T) {
	m := testManager(t)

	_, err := m.Get(context.Background(), "missing-id")
	var nf *ErrJobNotFound
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "missing-id", nf.ID)
}

func TestManager_StatusLifecycle(t *testing.T) {
	m := testManager(t)
	ctx := context.Background()

	job, err := m.Submit(ctx, "explain prime numbers", QualityLow)
	require.NoError(t, err)

	job, err = m.UpdateStatus(ctx, job.ID, StatusRendering, "", "")
	require.NoError(t, err)
	assert.Equal(t, StatusRendering, job.Status)

	job, err = m.UpdateStatus(ctx, job.ID, StatusCompleted, "https://cdn.example/video.mp4", "")
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, job.Status)
	assert.Equal(t, "https://cdn.example/video.mp4", job.ResultURL)

	// Terminal record stays untouched.
	_, err = m.UpdateStatus(ctx, job.ID, StatusFailed, "", "too late")
	var term *ErrJobTerminal
	require.True(t, errors.As(err, &term))
	assert.Equal(t, StatusCompleted, term.Status)

	got, err := m.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, got.Status)
	assert.Equal(t, "https://cdn.example/video.mp4", got.ResultURL)
	assert.Empty(t, got.ErrorDetail)
}

func TestManager_UpdateStatusValidation(t *testing.T) {
	m := testManager(t)
	ctx := context.Background()

	job, err := m.Submit(ctx, "explain atoms", QualityLow)
	require.NoError(t, err)

	_, err = m.UpdateStatus(ctx, job.ID, Status("paused"), "", "")
	assert.Error(t, err)

	_, err = m.UpdateStatus(ctx, "no-such-job", StatusRendering, "", "")
	var nf *ErrJobNotFound
	assert.True(t, errors.As(err, &nf))
}

func TestManager_List(t *testing.T) {
	m := testManager(t)
	ctx := context.Background()

	for _, p := range []string{"explain atoms", "explain cells", "explain light"} {
		_, err := m.Submit(ctx, p, QualityLow)
		require.NoError(t, err)
	}

	jobs, err := m.List(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, jobs, 2)
}

func TestParseQuality(t *testing.T) {
	q, err := ParseQuality("")
	require.NoError(t, err)
	assert.Equal(t, QualityLow, q)

	q, err = ParseQuality("high")
	require.NoError(t, err)
	assert.Equal(t, QualityHigh, q)

	_, err = ParseQuality("4k")
	assert.Error(t, err)
}

func TestStatusTerminal(t *testing.T) {
	assert.False(t, StatusQueued.Terminal())
	assert.False(t, StatusRendering.Terminal())
	assert.True(t, StatusCompleted.Terminal())
	assert.True(t, StatusFailed.Terminal())
}
