package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PromptMessage holds the schema definition for the PromptMessage entity.
// One row per chat message. Turn numbers are assigned atomically server-side
// (MAX(turn)+1 per session in a single INSERT..SELECT), never by the client,
// so a turn is never NULL and never duplicated for a role.
type PromptMessage struct {
	ent.Schema
}

// Fields of the PromptMessage.
func (PromptMessage) Fields() []ent.Field {
	return []ent.Field{
		field.Int("session_id").
			Immutable(),
		field.Int("turn").
			Positive().
			Immutable(),
		field.Enum("role").
			Values("user", "ai").
			Immutable(),
		field.Text("content"),
		field.Int("token_count").
			Default(0).
			NonNegative(),
		field.JSON("meta", map[string]interface{}{}).
			Optional().
			Comment("Intent status, guardrail flags, and other per-message annotations"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the PromptMessage.
func (PromptMessage) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", PromptSession.Type).
			Ref("messages").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the PromptMessage.
func (PromptMessage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "created_at"),

		// One row per (session, turn, role); the USER/AI pair of an exchange
		// uses consecutive turn numbers.
		index.Fields("session_id", "turn", "role").
			Unique(),
	}
}
