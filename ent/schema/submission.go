package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Submission holds the schema definition for the Submission entity.
// A participant's final code for a problem, snapshotted at submit time.
type Submission struct {
	ent.Schema
}

// Fields of the Submission.
func (Submission) Fields() []ent.Field {
	return []ent.Field{
		field.Int("session_id").
			Immutable(),
		field.Int("exam_id").
			Positive().
			Immutable(),
		field.Int("participant_id").
			Positive().
			Immutable(),
		field.Int("spec_id").
			Positive().
			Immutable(),
		field.Text("code"),
		field.String("language").
			Default("python"),
		field.Enum("status").
			Values("pending", "evaluating", "completed", "failed").
			Default("pending"),
		field.String("task_id").
			Optional().
			Comment("Execution queue task id, set once the code is enqueued"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the Submission.
func (Submission) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", PromptSession.Type).
			Ref("submissions").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
		edge.To("runs", SubmissionRun.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("score", Score.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Submission.
func (Submission) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("exam_id", "participant_id", "spec_id"),
		index.Fields("session_id"),
		index.Fields("status", "created_at"),
	}
}
