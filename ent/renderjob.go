// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/gurukul/ent/renderjob"
)

// RenderJob is the model entity for the RenderJob schema.
type RenderJob struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Public job identifier handed to the caller
	JobID string `json:"job_id,omitempty"`
	// Sanitized topic prompt the scene was derived from
	Prompt string `json:"prompt,omitempty"`
	// Quality holds the value of the "quality" field.
	Quality renderjob.Quality `json:"quality,omitempty"`
	// Status holds the value of the "status" field.
	Status renderjob.Status `json:"status,omitempty"`
	// Normalized scene specification for the renderer
	SceneParams map[string]interface{} `json:"scene_params,omitempty"`
	// Location of the rendered video, set on completion
	ResultURL string `json:"result_url,omitempty"`
	// Failure reason, set when status is failed
	ErrorDetail string `json:"error_detail,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RenderJob) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case renderjob.FieldSceneParams:
			values[i] = new([]byte)
		case renderjob.FieldID:
			values[i] = new(sql.NullInt64)
		case renderjob.FieldJobID, renderjob.FieldPrompt, renderjob.FieldQuality, renderjob.FieldStatus, renderjob.FieldResultURL, renderjob.FieldErrorDetail:
			values[i] = new(sql.NullString)
		case renderjob.FieldCreatedAt, renderjob.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RenderJob fields.
func (_m *RenderJob) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case renderjob.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case renderjob.FieldJobID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field job_id", values[i])
			} else if value.Valid {
				_m.JobID = value.String
			}
		case renderjob.FieldPrompt:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field prompt", values[i])
			} else if value.Valid {
				_m.Prompt = value.String
			}
		case renderjob.FieldQuality:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field quality", values[i])
			} else if value.Valid {
				_m.Quality = renderjob.Quality(value.String)
			}
		case renderjob.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = renderjob.Status(value.String)
			}
		case renderjob.FieldSceneParams:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field scene_params", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SceneParams); err != nil {
					return fmt.Errorf("unmarshal field scene_params: %w", err)
				}
			}
		case renderjob.FieldResultURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field result_url", values[i])
			} else if value.Valid {
				_m.ResultURL = value.String
			}
		case renderjob.FieldErrorDetail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_detail", values[i])
			} else if value.Valid {
				_m.ErrorDetail = value.String
			}
		case renderjob.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case renderjob.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the RenderJob.
// This includes values selected through modifiers, order, etc.
func (_m *RenderJob) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this RenderJob.
// Note that you need to call RenderJob.Unwrap() before calling this method if this RenderJob
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *RenderJob) Update() *RenderJobUpdateOne {
	return NewRenderJobClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the RenderJob entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *RenderJob) Unwrap() *RenderJob {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: RenderJob is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *RenderJob) String() string {
	var builder strings.Builder
	builder.WriteString("RenderJob(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("job_id=")
	builder.WriteString(_m.JobID)
	builder.WriteString(", ")
	builder.WriteString("prompt=")
	builder.WriteString(_m.Prompt)
	builder.WriteString(", ")
	builder.WriteString("quality=")
	builder.WriteString(fmt.Sprintf("%v", _m.Quality))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("scene_params=")
	builder.WriteString(fmt.Sprintf("%v", _m.SceneParams))
	builder.WriteString(", ")
	builder.WriteString("result_url=")
	builder.WriteString(_m.ResultURL)
	builder.WriteString(", ")
	builder.WriteString("error_detail=")
	builder.WriteString(_m.ErrorDetail)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// RenderJobs is a parsable slice of RenderJob.
type RenderJobs []*RenderJob
