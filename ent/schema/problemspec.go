package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ProblemSpec holds the schema definition for the ProblemSpec entity.
// One row is the full problem context for one spec id: statement,
// constraints, tutoring guide, reference solution, test cases, and guardrail
// keywords, stored as one JSON document. The problem bank is written by the
// exam tooling and read-only for the evaluation engine; unknown spec ids fall
// back to the built-in static registry.
type ProblemSpec struct {
	ent.Schema
}

// Fields of the ProblemSpec.
func (ProblemSpec) Fields() []ent.Field {
	return []ent.Field{
		field.Int("spec_id").
			Positive().
			Unique().
			Immutable(),
		field.JSON("context", json.RawMessage{}).
			Comment("Full problem context document"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the ProblemSpec.
func (ProblemSpec) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("spec_id").Unique(),
	}
}
