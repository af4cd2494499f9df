package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RenderJob is one queued video render request. Rows are the durable record
// the async renderer and the status endpoint both work from.
type RenderJob struct {
	ent.Schema
}

func (RenderJob) Fields() []ent.Field {
	return []ent.Field{
		field.String("job_id").
			Unique().
			Immutable().
			Comment("Public job identifier handed to the caller"),
		field.Text("prompt").
			Comment("Sanitized topic prompt the scene was derived from"),
		field.Enum("quality").
			Values("low", "high").
			Default("low"),
		field.Enum("status").
			Values("queued", "rendering", "completed", "failed").
			Default("queued"),
		field.JSON("scene_params", map[string]any{}).
			Optional().
			Comment("Normalized scene specification for the renderer"),
		field.String("result_url").
			Default("").
			Comment("Location of the rendered video, set on completion"),
		field.String("error_detail").
			Default("").
			Comment("Failure reason, set when status is failed"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (RenderJob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("created_at"),
	}
}
