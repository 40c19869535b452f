// Code generated by ent, DO NOT EDIT.

package promptsession

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/examkit/proctor/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.PromptSession {
	return predicate.PromptSession(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.PromptSession {
	return predicate.PromptSession(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.PromptSession {
	return predicate.PromptSession(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.PromptSession {
	return predicate.PromptSession(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.PromptSession {
	return predicate.PromptSession(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.PromptSession {
	return predicate.PromptSession(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.PromptSession {
	return predicate.PromptSession(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.PromptSession {
	return predicate.PromptSession(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.PromptSession {
	return predicate.PromptSession(sql.FieldLTE(FieldID, id))
}

// ExamID applies equality check predicate on the "exam_id" field. It's identical to ExamIDEQ.
func ExamID(v int) predicate.PromptSession {
	return predicate.PromptSession(sql.FieldEQ(FieldExamID, v))
}

// ParticipantID applies equality check predicate on the "participant_id" field. It's identical to ParticipantIDEQ.
func ParticipantID(v int) predicate.PromptSession {
	return predicate.PromptSession(sql.FieldEQ(FieldParticipantID, v))
}

// SpecID applies equality check predicate on the "spec_id" field. It's identical to SpecIDEQ.
func SpecID(v int) predicate.PromptSession {
	return predicate.PromptSession(sql.FieldEQ(FieldSpecID, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.PromptSession {
	return predicate.PromptSession(sql.FieldEQ(FieldStartedAt, v))
}

// EndedAt applies equality check predicate on the "ended_at" field. It's identical to EndedAtEQ.
func EndedAt(v time.Time) predicate.PromptSession {
	return predicate.PromptSession(sql.FieldEQ(FieldEndedAt, v))
}

// TotalTokens applies equality check predicate on the "total_tokens" field. It's identical to TotalTokensEQ.
func TotalTokens(v int) predicate.PromptSession {
	return predicate.PromptSession(sql.FieldEQ(FieldTotalTokens, v))
}

// ExamIDEQ applies the EQ predicate on the "exam_id" field.
func ExamIDEQ(v int) predicate.PromptSession {
	return predicate.PromptSession(sql.FieldEQ(FieldExamID, v))
}

// ExamIDNEQ applies the NEQ predicate on the "exam_id" field.
func ExamIDNEQ(v int) predicate.PromptSession {
	return predicate.PromptSession(sql.FieldNEQ(FieldExamID, v))
}

// ExamIDIn applies the In predicate on the "exam_id" field.
func ExamIDIn(vs ...int) predicate.PromptSession {
	return predicate.PromptSession(sql.FieldIn(FieldExamID, vs...))
}

// ExamIDNotIn applies the NotIn predicate on the "exam_id" field.
func ExamIDNotIn(vs ...int) predicate.PromptSession {
	return predicate.PromptSession(sql.FieldNotIn(FieldExamID, vs...))
}

// ExamIDGT applies the GT predicate on the "exam_id" field.
func ExamIDGT(v int) predicate.PromptSession {
	return predicate.PromptSession(sql.FieldGT(FieldExamID, v))
}

// ExamIDGTE applies the GTE predicate on the "exam_id" field.
func ExamIDGTE(v int) predicate.PromptSession {
	return predicate.PromptSession(sql.FieldGTE(FieldExamID, v))
}

// ExamIDLT applies the LT predicate on the "exam_id" field.
func ExamIDLT(v int) predicate.PromptSession {
	return predicate.PromptSession(sql.FieldLT(FieldExamID, v))
}

// ExamIDLTE applies the LTE predicate on the "exam_id" field.
func ExamIDLTE(v int) predicate.PromptSession {
	return predicate.PromptSession(sql.FieldLTE(FieldExamID, v))
}

// ParticipantIDEQ applies the EQ predicate on the "participant_id" field.
func ParticipantIDEQ(v int) predicate.PromptSession {
	return predicate.PromptSession(sql.FieldEQ(FieldParticipantID, v))
}

// ParticipantIDNEQ applies the NEQ predicate on the "participant_id" field.
func ParticipantIDNEQ(v int) predicate.PromptSession {
	return predicate.PromptSession(sql.FieldNEQ(FieldParticipantID, v))
}

// ParticipantIDIn applies the In predicate on the "participant_id" field.
func ParticipantIDIn(vs ...int) predicate.PromptSession {
	return predicate.PromptSession(sql.FieldIn(FieldParticipantID, vs...))
}

// ParticipantIDNotIn applies the NotIn predicate on the "participant_id" field.
func ParticipantIDNotIn(vs ...int) predicate.PromptSession {
	return predicate.PromptSession(sql.FieldNotIn(FieldParticipantID, vs...))
}

// ParticipantIDGT applies the GT predicate on the "participant_id" field.
func ParticipantIDGT(v int) predicate.PromptSession {
	return predicate.PromptSession(sql.FieldGT(FieldParticipantID, v))
}

// ParticipantIDGTE applies the GTE predicate on the "participant_id" field.
func ParticipantIDGTE(v int) predicate.PromptSession {
	return predicate.PromptSession(sql.FieldGTE(FieldParticipantID, v))
}

// ParticipantIDLT applies the LT predicate on the "participant_id" field.
func ParticipantIDLT(v int) predicate.PromptSession {
	return predicate.PromptSession(sql.FieldLT(FieldParticipantID, v))
}

// ParticipantIDLTE applies the LTE predicate on the "participant_id" field.
func ParticipantIDLTE(v int) predicate.PromptSession {
	return predicate.PromptSession(sql.FieldLTE(FieldParticipantID, v))
}

// SpecIDEQ applies the EQ predicate on the "spec_id" field.
func SpecIDEQ(v int) predicate.PromptSession {
	return predicate.PromptSession(sql.FieldEQ(FieldSpecID, v))
}

// SpecIDNEQ applies the NEQ predicate on the "spec_id" field.
func SpecIDNEQ(v int) predicate.PromptSession {
	return predicate.PromptSession(sql.FieldNEQ(FieldSpecID, v))
}

// SpecIDIn applies the In predicate on the "spec_id" field.
func SpecIDIn(vs ...int) predicate.PromptSession {
	return predicate.PromptSession(sql.FieldIn(FieldSpecID, vs...))
}

// SpecIDNotIn applies the NotIn predicate on the "spec_id" field.
func SpecIDNotIn(vs ...int) predicate.PromptSession {
	return predicate.PromptSession(sql.FieldNotIn(FieldSpecID, vs...))
}

// SpecIDGT applies the GT predicate on the "spec_id" field.
func SpecIDGT(v int) predicate.PromptSession {
	return predicate.PromptSession(sql.FieldGT(FieldSpecID, v))
}

// SpecIDGTE applies the GTE predicate on the "spec_id" field.
func SpecIDGTE(v int) predicate.PromptSession {
	return predicate.PromptSession(sql.FieldGTE(FieldSpecID, v))
}

// SpecIDLT applies the LT predicate on the "spec_id" field.
func SpecIDLT(v int) predicate.PromptSession {
	return predicate.PromptSession(sql.FieldLT(FieldSpecID, v))
}

// SpecIDLTE applies the LTE predicate on the "spec_id" field.
func SpecIDLTE(v int) predicate.PromptSession {
	return predicate.PromptSession(sql.FieldLTE(FieldSpecID, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.PromptSession {
	return predicate.PromptSession(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.PromptSession {
	return predicate.PromptSession(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.PromptSession {
	return predicate.PromptSession(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.PromptSession {
	return predicate.PromptSession(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.PromptSession {
	return predicate.PromptSession(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.PromptSession {
	return predicate.PromptSession(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.PromptSession {
	return predicate.PromptSession(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.PromptSession {
	return predicate.PromptSession(sql.FieldLTE(FieldStartedAt, v))
}

// EndedAtEQ applies the EQ predicate on the "ended_at" field.
func EndedAtEQ(v time.Time) predicate.PromptSession {
	return predicate.PromptSession(sql.FieldEQ(FieldEndedAt, v))
}

// EndedAtNEQ applies the NEQ predicate on the "ended_at" field.
func EndedAtNEQ(v time.Time) predicate.PromptSession {
	return predicate.PromptSession(sql.FieldNEQ(FieldEndedAt, v))
}

// EndedAtIn applies the In predicate on the "ended_at" field.
func EndedAtIn(vs ...time.Time) predicate.PromptSession {
	return predicate.PromptSession(sql.FieldIn(FieldEndedAt, vs...))
}

// EndedAtNotIn applies the NotIn predicate on the "ended_at" field.
func EndedAtNotIn(vs ...time.Time) predicate.PromptSession {
	return predicate.PromptSession(sql.FieldNotIn(FieldEndedAt, vs...))
}

// EndedAtGT applies the GT predicate on the "ended_at" field.
func EndedAtGT(v time.Time) predicate.PromptSession {
	return predicate.PromptSession(sql.FieldGT(FieldEndedAt, v))
}

// EndedAtGTE applies the GTE predicate on the "ended_at" field.
func EndedAtGTE(v time.Time) predicate.PromptSession {
	return predicate.PromptSession(sql.FieldGTE(FieldEndedAt, v))
}

// EndedAtLT applies the LT predicate on the "ended_at" field.
func EndedAtLT(v time.Time) predicate.PromptSession {
	return predicate.PromptSession(sql.FieldLT(FieldEndedAt, v))
}

// EndedAtLTE applies the LTE predicate on the "ended_at" field.
func EndedAtLTE(v time.Time) predicate.PromptSession {
	return predicate.PromptSession(sql.FieldLTE(FieldEndedAt, v))
}

// EndedAtIsNil applies the IsNil predicate on the "ended_at" field.
func EndedAtIsNil() predicate.PromptSession {
	return predicate.PromptSession(sql.FieldIsNull(FieldEndedAt))
}

// EndedAtNotNil applies the NotNil predicate on the "ended_at" field.
func EndedAtNotNil() predicate.PromptSession {
	return predicate.PromptSession(sql.FieldNotNull(FieldEndedAt))
}

// TotalTokensEQ applies the EQ predicate on the "total_tokens" field.
func TotalTokensEQ(v int) predicate.PromptSession {
	return predicate.PromptSession(sql.FieldEQ(FieldTotalTokens, v))
}

// TotalTokensNEQ applies the NEQ predicate on the "total_tokens" field.
func TotalTokensNEQ(v int) predicate.PromptSession {
	return predicate.PromptSession(sql.FieldNEQ(FieldTotalTokens, v))
}

// TotalTokensIn applies the In predicate on the "total_tokens" field.
func TotalTokensIn(vs ...int) predicate.PromptSession {
	return predicate.PromptSession(sql.FieldIn(FieldTotalTokens, vs...))
}

// TotalTokensNotIn applies the NotIn predicate on the "total_tokens" field.
func TotalTokensNotIn(vs ...int) predicate.PromptSession {
	return predicate.PromptSession(sql.FieldNotIn(FieldTotalTokens, vs...))
}

// TotalTokensGT applies the GT predicate on the "total_tokens" field.
func TotalTokensGT(v int) predicate.PromptSession {
	return predicate.PromptSession(sql.FieldGT(FieldTotalTokens, v))
}

// TotalTokensGTE applies the GTE predicate on the "total_tokens" field.
func TotalTokensGTE(v int) predicate.PromptSession {
	return predicate.PromptSession(sql.FieldGTE(FieldTotalTokens, v))
}

// TotalTokensLT applies the LT predicate on the "total_tokens" field.
func TotalTokensLT(v int) predicate.PromptSession {
	return predicate.PromptSession(sql.FieldLT(FieldTotalTokens, v))
}

// TotalTokensLTE applies the LTE predicate on the "total_tokens" field.
func TotalTokensLTE(v int) predicate.PromptSession {
	return predicate.PromptSession(sql.FieldLTE(FieldTotalTokens, v))
}

// HasMessages applies the HasEdge predicate on the "messages" edge.
func HasMessages() predicate.PromptSession {
	return predicate.PromptSession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, MessagesTable, MessagesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMessagesWith applies the HasEdge predicate on the "messages" edge with a given conditions (other predicates).
func HasMessagesWith(preds ...predicate.PromptMessage) predicate.PromptSession {
	return predicate.PromptSession(func(s *sql.Selector) {
		step := newMessagesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasEvaluations applies the HasEdge predicate on the "evaluations" edge.
func HasEvaluations() predicate.PromptSession {
	return predicate.PromptSession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, EvaluationsTable, EvaluationsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEvaluationsWith applies the HasEdge predicate on the "evaluations" edge with a given conditions (other predicates).
func HasEvaluationsWith(preds ...predicate.PromptEvaluation) predicate.PromptSession {
	return predicate.PromptSession(func(s *sql.Selector) {
		step := newEvaluationsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSubmissions applies the HasEdge predicate on the "submissions" edge.
func HasSubmissions() predicate.PromptSession {
	return predicate.PromptSession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, SubmissionsTable, SubmissionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSubmissionsWith applies the HasEdge predicate on the "submissions" edge with a given conditions (other predicates).
func HasSubmissionsWith(preds ...predicate.Submission) predicate.PromptSession {
	return predicate.PromptSession(func(s *sql.Selector) {
		step := newSubmissionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PromptSession) predicate.PromptSession {
	return predicate.PromptSession(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PromptSession) predicate.PromptSession {
	return predicate.PromptSession(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PromptSession) predicate.PromptSession {
	return predicate.PromptSession(sql.NotPredicates(p))
}
