package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SubmissionRun holds the schema definition for the SubmissionRun entity.
// Per-test-case sandbox outcome for a submission.
type SubmissionRun struct {
	ent.Schema
}

// Fields of the SubmissionRun.
func (SubmissionRun) Fields() []ent.Field {
	return []ent.Field{
		field.Int("submission_id").
			Immutable(),
		field.Int("case_index").
			NonNegative().
			Immutable(),
		field.Enum("verdict").
			Values("success", "timeout", "error", "memory_limit"),
		field.Bool("passed").
			Default(false),
		field.Text("output").
			Optional().
			Comment("Actual stdout, truncated by the worker"),
		field.Text("stderr").
			Optional(),
		field.Float("execution_time").
			Default(0).
			Comment("Seconds"),
		field.Int("memory_kb").
			Default(0),
		field.Int("exit_code").
			Default(0),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the SubmissionRun.
func (SubmissionRun) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("submission", Submission.Type).
			Ref("runs").
			Field("submission_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the SubmissionRun.
func (SubmissionRun) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("submission_id", "case_index").
			Unique(),
	}
}
