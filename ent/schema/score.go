package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Score holds the schema definition for the Score entity.
// Final grading record for a submission: prompt quality, code performance,
// code correctness, the 0.25/0.25/0.50 weighted total, and a letter grade.
type Score struct {
	ent.Schema
}

// Fields of the Score.
func (Score) Fields() []ent.Field {
	return []ent.Field{
		field.Int("submission_id").
			Immutable(),
		field.Int("session_id").
			Immutable().
			Comment("Denormalized for lookup by session without a join"),
		field.Float("prompt_score").
			Optional().
			Nillable().
			SchemaType(map[string]string{
				dialect.Postgres: "numeric(5,2)",
			}).
			Comment("NULL when no prompt evaluation succeeded"),
		field.Float("performance_score").
			SchemaType(map[string]string{
				dialect.Postgres: "numeric(5,2)",
			}),
		field.Float("correctness_score").
			SchemaType(map[string]string{
				dialect.Postgres: "numeric(5,2)",
			}),
		field.Float("total_score").
			SchemaType(map[string]string{
				dialect.Postgres: "numeric(5,2)",
			}),
		field.String("grade").
			MaxLen(2),
		field.JSON("rubric", map[string]interface{}{}).
			Optional().
			Comment("Per-turn scores, holistic analysis, skip reasons"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Score.
func (Score) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("submission", Submission.Type).
			Ref("score").
			Field("submission_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Score.
func (Score) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("submission_id").
			Unique(),
		index.Fields("session_id"),
	}
}
