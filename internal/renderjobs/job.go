// Package renderjobs manages durable video render jobs. Submission builds a
// scene specification and queues a job record; an external renderer process
// picks queued jobs up and reports status back through UpdateStatus.
package renderjobs

import (
	"fmt"
	"time"
)

// Status is the lifecycle state of a render job.
type Status string

const (
	StatusQueued    Status = "queued"
	StatusRendering Status = "rendering"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// Terminal reports whether the status ends the job's lifecycle.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// Validate reports whether s is a known status.
func (s Status) Validate() error {
	switch s {
	case StatusQueued, StatusRendering, StatusCompleted, StatusFailed:
		return nil
	}
	return fmt.Errorf("unknown job status: %q", string(s))
}

// Quality selects the render quality tier.
type Quality string

const (
	QualityLow  Quality = "low"
	QualityHigh Quality = "high"
)

// ParseQuality validates a quality string. Empty input defaults to low.
func ParseQuality(s string) (Quality, error) {
	switch Quality(s) {
	case QualityLow, QualityHigh:
		return Quality(s), nil
	case "":
		return QualityLow, nil
	}
	return "", fmt.Errorf("unknown quality tier: %q", s)
}

// Job is one video render job.
type Job struct {
	ID          string
	Prompt      string
	Quality     Quality
	Status      Status
	SceneParams map[string]any
	ResultURL   string
	ErrorDetail string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ErrJobNotFound indicates no job exists for the given ID.
type ErrJobNotFound struct {
	ID string
}

func (e *ErrJobNotFound) Error() string {
	return fmt.Sprintf("render job %q not found", e.ID)
}

// ErrJobTerminal indicates an attempt to overwrite a completed or failed job.
// Terminal records are immutable; a re-run allocates a new job ID.
type ErrJobTerminal struct {
	ID     string
	Status Status
}

func (e *ErrJobTerminal) Error() string {
	return fmt.Sprintf("render job %q is already %s", e.ID, string(e.Status))
}
