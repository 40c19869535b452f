package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PromptSession holds the schema definition for the PromptSession entity.
// One session is the full chat history of a participant working on one
// problem during an exam. A session is open while ended_at IS NULL.
type PromptSession struct {
	ent.Schema
}

// Fields of the PromptSession.
func (PromptSession) Fields() []ent.Field {
	return []ent.Field{
		field.Int("exam_id").
			Positive().
			Immutable(),
		field.Int("participant_id").
			Positive().
			Immutable(),
		field.Int("spec_id").
			Positive().
			Immutable().
			Comment("Problem spec the participant is solving"),
		field.Time("started_at").
			Default(time.Now).
			Immutable(),
		field.Time("ended_at").
			Optional().
			Nillable().
			Comment("Set when the session is closed; open sessions have NULL"),
		field.Int("total_tokens").
			Default(0).
			NonNegative().
			Comment("Cumulative LLM tokens consumed across the session"),
	}
}

// Edges of the PromptSession.
func (PromptSession) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("messages", PromptMessage.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("evaluations", PromptEvaluation.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("submissions", Submission.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the PromptSession.
func (PromptSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("exam_id", "participant_id"),
		index.Fields("started_at"),

		// At most one open session per (exam, participant)
		index.Fields("exam_id", "participant_id").
			Unique().
			StorageKey("promptsession_exam_id_participant_id_open").
			Annotations(entsql.IndexWhere("ended_at IS NULL")),
	}
}
