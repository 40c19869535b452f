package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PromptEvaluation holds the schema definition for the PromptEvaluation entity.
// Durable record of an LLM-judged score: per-turn rows carry the turn number,
// holistic rows (whole-conversation flow, code performance fallback) leave it
// NULL. Rows are written once at submission time and are idempotent per
// (session, turn, evaluation_type).
type PromptEvaluation struct {
	ent.Schema
}

// Fields of the PromptEvaluation.
func (PromptEvaluation) Fields() []ent.Field {
	return []ent.Field{
		field.Int("session_id").
			Immutable(),
		field.Int("turn").
			Optional().
			Nillable().
			Immutable().
			Comment("NULL for holistic evaluations"),
		field.Enum("evaluation_type").
			Values("TURN_EVAL", "HOLISTIC_FLOW", "HOLISTIC_PERFORMANCE").
			Immutable(),
		field.String("node_name").
			Optional().
			Comment("Graph node that produced the evaluation"),
		field.Float("score").
			SchemaType(map[string]string{
				dialect.Postgres: "numeric(5,2)",
			}),
		field.Text("analysis").
			Optional(),
		field.JSON("details", map[string]interface{}{}).
			Optional().
			Comment("Rubric breakdown, intent, confidence, token usage"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the PromptEvaluation.
func (PromptEvaluation) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", PromptSession.Type).
			Ref("evaluations").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the PromptEvaluation.
func (PromptEvaluation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "evaluation_type"),
		index.Fields("session_id", "turn", "evaluation_type").
			Unique(),
	}
}
