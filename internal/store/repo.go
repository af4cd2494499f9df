package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a stored LLM request event as returned by queries.
type LLMEvent struct {
	ID           int
	Sequence     int64
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMPurposeUsage aggregates token usage per purpose label.
type LLMPurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates token usage per model for cost estimation.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns LLM events, most recent first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]*LLMEvent, error)

	// GetLLMEvent returns one event by ID, or nil if it doesn't exist.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)

	// LLMUsageByPurpose aggregates successful-call token usage per purpose.
	LLMUsageByPurpose(ctx context.Context) ([]LLMPurposeUsage, error)

	// LLMUsageByModel aggregates token usage per model.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}

// RenderJobRecord is the durable state of one video render job.
type RenderJobRecord struct {
	ID          int
	JobID       string
	Prompt      string
	Quality     string
	Status      string
	SceneParams map[string]any
	ResultURL   string
	ErrorDetail string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// RenderJobRepo manages the render job table.
type RenderJobRepo interface {
	// Create inserts a new job record.
	Create(ctx context.Context, rec *RenderJobRecord) error

	// Get returns the job with the given public ID, or nil if it doesn't exist.
	Get(ctx context.Context, jobID string) (*RenderJobRecord, error)

	// UpdateStatus transitions a non-terminal job to the given status and
	// records resultURL / errorDetail. It reports whether a row changed:
	// false means the job is already terminal (or missing) and was left
	// untouched.
	UpdateStatus(ctx context.Context, jobID, status, resultURL, errorDetail string) (bool, error)

	// List returns jobs, most recent first.
	List(ctx context.Context, opts QueryOpts) ([]*RenderJobRecord, error)
}
