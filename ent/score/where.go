// Code generated by ent, DO NOT EDIT.

package score

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/examkit/proctor/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Score {
	return predicate.Score(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Score {
	return predicate.Score(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Score {
	return predicate.Score(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Score {
	return predicate.Score(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Score {
	return predicate.Score(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Score {
	return predicate.Score(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Score {
	return predicate.Score(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Score {
	return predicate.Score(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Score {
	return predicate.Score(sql.FieldLTE(FieldID, id))
}

// SubmissionID applies equality check predicate on the "submission_id" field. It's identical to SubmissionIDEQ.
func SubmissionID(v int) predicate.Score {
	return predicate.Score(sql.FieldEQ(FieldSubmissionID, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v int) predicate.Score {
	return predicate.Score(sql.FieldEQ(FieldSessionID, v))
}

// PromptScore applies equality check predicate on the "prompt_score" field. It's identical to PromptScoreEQ.
func PromptScore(v float64) predicate.Score {
	return predicate.Score(sql.FieldEQ(FieldPromptScore, v))
}

// PerformanceScore applies equality check predicate on the "performance_score" field. It's identical to PerformanceScoreEQ.
func PerformanceScore(v float64) predicate.Score {
	return predicate.Score(sql.FieldEQ(FieldPerformanceScore, v))
}

// CorrectnessScore applies equality check predicate on the "correctness_score" field. It's identical to CorrectnessScoreEQ.
func CorrectnessScore(v float64) predicate.Score {
	return predicate.Score(sql.FieldEQ(FieldCorrectnessScore, v))
}

// TotalScore applies equality check predicate on the "total_score" field. It's identical to TotalScoreEQ.
func TotalScore(v float64) predicate.Score {
	return predicate.Score(sql.FieldEQ(FieldTotalScore, v))
}

// Grade applies equality check predicate on the "grade" field. It's identical to GradeEQ.
func Grade(v string) predicate.Score {
	return predicate.Score(sql.FieldEQ(FieldGrade, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Score {
	return predicate.Score(sql.FieldEQ(FieldCreatedAt, v))
}

// SubmissionIDEQ applies the EQ predicate on the "submission_id" field.
func SubmissionIDEQ(v int) predicate.Score {
	return predicate.Score(sql.FieldEQ(FieldSubmissionID, v))
}

// SubmissionIDNEQ applies the NEQ predicate on the "submission_id" field.
func SubmissionIDNEQ(v int) predicate.Score {
	return predicate.Score(sql.FieldNEQ(FieldSubmissionID, v))
}

// SubmissionIDIn applies the In predicate on the "submission_id" field.
func SubmissionIDIn(vs ...int) predicate.Score {
	return predicate.Score(sql.FieldIn(FieldSubmissionID, vs...))
}

// SubmissionIDNotIn applies the NotIn predicate on the "submission_id" field.
func SubmissionIDNotIn(vs ...int) predicate.Score {
	return predicate.Score(sql.FieldNotIn(FieldSubmissionID, vs...))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v int) predicate.Score {
	return predicate.Score(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v int) predicate.Score {
	return predicate.Score(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...int) predicate.Score {
	return predicate.Score(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...int) predicate.Score {
	return predicate.Score(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v int) predicate.Score {
	return predicate.Score(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v int) predicate.Score {
	return predicate.Score(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v int) predicate.Score {
	return predicate.Score(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v int) predicate.Score {
	return predicate.Score(sql.FieldLTE(FieldSessionID, v))
}

// PromptScoreEQ applies the EQ predicate on the "prompt_score" field.
func PromptScoreEQ(v float64) predicate.Score {
	return predicate.Score(sql.FieldEQ(FieldPromptScore, v))
}

// PromptScoreNEQ applies the NEQ predicate on the "prompt_score" field.
func PromptScoreNEQ(v float64) predicate.Score {
	return predicate.Score(sql.FieldNEQ(FieldPromptScore, v))
}

// PromptScoreIn applies the In predicate on the "prompt_score" field.
func PromptScoreIn(vs ...float64) predicate.Score {
	return predicate.Score(sql.FieldIn(FieldPromptScore, vs...))
}

// PromptScoreNotIn applies the NotIn predicate on the "prompt_score" field.
func PromptScoreNotIn(vs ...float64) predicate.Score {
	return predicate.Score(sql.FieldNotIn(FieldPromptScore, vs...))
}

// PromptScoreGT applies the GT predicate on the "prompt_score" field.
func PromptScoreGT(v float64) predicate.Score {
	return predicate.Score(sql.FieldGT(FieldPromptScore, v))
}

// PromptScoreGTE applies the GTE predicate on the "prompt_score" field.
func PromptScoreGTE(v float64) predicate.Score {
	return predicate.Score(sql.FieldGTE(FieldPromptScore, v))
}

// PromptScoreLT applies the LT predicate on the "prompt_score" field.
func PromptScoreLT(v float64) predicate.Score {
	return predicate.Score(sql.FieldLT(FieldPromptScore, v))
}

// PromptScoreLTE applies the LTE predicate on the "prompt_score" field.
func PromptScoreLTE(v float64) predicate.Score {
	return predicate.Score(sql.FieldLTE(FieldPromptScore, v))
}

// PromptScoreIsNil applies the IsNil predicate on the "prompt_score" field.
func PromptScoreIsNil() predicate.Score {
	return predicate.Score(sql.FieldIsNull(FieldPromptScore))
}

// PromptScoreNotNil applies the NotNil predicate on the "prompt_score" field.
func PromptScoreNotNil() predicate.Score {
	return predicate.Score(sql.FieldNotNull(FieldPromptScore))
}

// PerformanceScoreEQ applies the EQ predicate on the "performance_score" field.
func PerformanceScoreEQ(v float64) predicate.Score {
	return predicate.Score(sql.FieldEQ(FieldPerformanceScore, v))
}

// PerformanceScoreNEQ applies the NEQ predicate on the "performance_score" field.
func PerformanceScoreNEQ(v float64) predicate.Score {
	return predicate.Score(sql.FieldNEQ(FieldPerformanceScore, v))
}

// PerformanceScoreIn applies the In predicate on the "performance_score" field.
func PerformanceScoreIn(vs ...float64) predicate.Score {
	return predicate.Score(sql.FieldIn(FieldPerformanceScore, vs...))
}

// PerformanceScoreNotIn applies the NotIn predicate on the "performance_score" field.
func PerformanceScoreNotIn(vs ...float64) predicate.Score {
	return predicate.Score(sql.FieldNotIn(FieldPerformanceScore, vs...))
}

// PerformanceScoreGT applies the GT predicate on the "performance_score" field.
func PerformanceScoreGT(v float64) predicate.Score {
	return predicate.Score(sql.FieldGT(FieldPerformanceScore, v))
}

// PerformanceScoreGTE applies the GTE predicate on the "performance_score" field.
func PerformanceScoreGTE(v float64) predicate.Score {
	return predicate.Score(sql.FieldGTE(FieldPerformanceScore, v))
}

// PerformanceScoreLT applies the LT predicate on the "performance_score" field.
func PerformanceScoreLT(v float64) predicate.Score {
	return predicate.Score(sql.FieldLT(FieldPerformanceScore, v))
}

// PerformanceScoreLTE applies the LTE predicate on the "performance_score" field.
func PerformanceScoreLTE(v float64) predicate.Score {
	return predicate.Score(sql.FieldLTE(FieldPerformanceScore, v))
}

// CorrectnessScoreEQ applies the EQ predicate on the "correctness_score" field.
func CorrectnessScoreEQ(v float64) predicate.Score {
	return predicate.Score(sql.FieldEQ(FieldCorrectnessScore, v))
}

// CorrectnessScoreNEQ applies the NEQ predicate on the "correctness_score" field.
func CorrectnessScoreNEQ(v float64) predicate.Score {
	return predicate.Score(sql.FieldNEQ(FieldCorrectnessScore, v))
}

// CorrectnessScoreIn applies the In predicate on the "correctness_score" field.
func CorrectnessScoreIn(vs ...float64) predicate.Score {
	return predicate.Score(sql.FieldIn(FieldCorrectnessScore, vs...))
}

// CorrectnessScoreNotIn applies the NotIn predicate on the "correctness_score" field.
func CorrectnessScoreNotIn(vs ...float64) predicate.Score {
	return predicate.Score(sql.FieldNotIn(FieldCorrectnessScore, vs...))
}

// CorrectnessScoreGT applies the GT predicate on the "correctness_score" field.
func CorrectnessScoreGT(v float64) predicate.Score {
	return predicate.Score(sql.FieldGT(FieldCorrectnessScore, v))
}

// CorrectnessScoreGTE applies the GTE predicate on the "correctness_score" field.
func CorrectnessScoreGTE(v float64) predicate.Score {
	return predicate.Score(sql.FieldGTE(FieldCorrectnessScore, v))
}

// CorrectnessScoreLT applies the LT predicate on the "correctness_score" field.
func CorrectnessScoreLT(v float64) predicate.Score {
	return predicate.Score(sql.FieldLT(FieldCorrectnessScore, v))
}

// CorrectnessScoreLTE applies the LTE predicate on the "correctness_score" field.
func CorrectnessScoreLTE(v float64) predicate.Score {
	return predicate.Score(sql.FieldLTE(FieldCorrectnessScore, v))
}

// TotalScoreEQ applies the EQ predicate on the "total_score" field.
func TotalScoreEQ(v float64) predicate.Score {
	return predicate.Score(sql.FieldEQ(FieldTotalScore, v))
}

// TotalScoreNEQ applies the NEQ predicate on the "total_score" field.
func TotalScoreNEQ(v float64) predicate.Score {
	return predicate.Score(sql.FieldNEQ(FieldTotalScore, v))
}

// TotalScoreIn applies the In predicate on the "total_score" field.
func TotalScoreIn(vs ...float64) predicate.Score {
	return predicate.Score(sql.FieldIn(FieldTotalScore, vs...))
}

// TotalScoreNotIn applies the NotIn predicate on the "total_score" field.
func TotalScoreNotIn(vs ...float64) predicate.Score {
	return predicate.Score(sql.FieldNotIn(FieldTotalScore, vs...))
}

// TotalScoreGT applies the GT predicate on the "total_score" field.
func TotalScoreGT(v float64) predicate.Score {
	return predicate.Score(sql.FieldGT(FieldTotalScore, v))
}

// TotalScoreGTE applies the GTE predicate on the "total_score" field.
func TotalScoreGTE(v float64) predicate.Score {
	return predicate.Score(sql.FieldGTE(FieldTotalScore, v))
}

// TotalScoreLT applies the LT predicate on the "total_score" field.
func TotalScoreLT(v float64) predicate.Score {
	return predicate.Score(sql.FieldLT(FieldTotalScore, v))
}

// TotalScoreLTE applies the LTE predicate on the "total_score" field.
func TotalScoreLTE(v float64) predicate.Score {
	return predicate.Score(sql.FieldLTE(FieldTotalScore, v))
}

// GradeEQ applies the EQ predicate on the "grade" field.
func GradeEQ(v string) predicate.Score {
	return predicate.Score(sql.FieldEQ(FieldGrade, v))
}

// GradeNEQ applies the NEQ predicate on the "grade" field.
func GradeNEQ(v string) predicate.Score {
	return predicate.Score(sql.FieldNEQ(FieldGrade, v))
}

// GradeIn applies the In predicate on the "grade" field.
func GradeIn(vs ...string) predicate.Score {
	return predicate.Score(sql.FieldIn(FieldGrade, vs...))
}

// GradeNotIn applies the NotIn predicate on the "grade" field.
func GradeNotIn(vs ...string) predicate.Score {
	return predicate.Score(sql.FieldNotIn(FieldGrade, vs...))
}

// GradeGT applies the GT predicate on the "grade" field.
func GradeGT(v string) predicate.Score {
	return predicate.Score(sql.FieldGT(FieldGrade, v))
}

// GradeGTE applies the GTE predicate on the "grade" field.
func GradeGTE(v string) predicate.Score {
	return predicate.Score(sql.FieldGTE(FieldGrade, v))
}

// GradeLT applies the LT predicate on the "grade" field.
func GradeLT(v string) predicate.Score {
	return predicate.Score(sql.FieldLT(FieldGrade, v))
}

// GradeLTE applies the LTE predicate on the "grade" field.
func GradeLTE(v string) predicate.Score {
	return predicate.Score(sql.FieldLTE(FieldGrade, v))
}

// GradeContains applies the Contains predicate on the "grade" field.
func GradeContains(v string) predicate.Score {
	return predicate.Score(sql.FieldContains(FieldGrade, v))
}

// GradeHasPrefix applies the HasPrefix predicate on the "grade" field.
func GradeHasPrefix(v string) predicate.Score {
	return predicate.Score(sql.FieldHasPrefix(FieldGrade, v))
}

// GradeHasSuffix applies the HasSuffix predicate on the "grade" field.
func GradeHasSuffix(v string) predicate.Score {
	return predicate.Score(sql.FieldHasSuffix(FieldGrade, v))
}

// GradeEqualFold applies the EqualFold predicate on the "grade" field.
func GradeEqualFold(v string) predicate.Score {
	return predicate.Score(sql.FieldEqualFold(FieldGrade, v))
}

// GradeContainsFold applies the ContainsFold predicate on the "grade" field.
func GradeContainsFold(v string) predicate.Score {
	return predicate.Score(sql.FieldContainsFold(FieldGrade, v))
}

// RubricIsNil applies the IsNil predicate on the "rubric" field.
func RubricIsNil() predicate.Score {
	return predicate.Score(sql.FieldIsNull(FieldRubric))
}

// RubricNotNil applies the NotNil predicate on the "rubric" field.
func RubricNotNil() predicate.Score {
	return predicate.Score(sql.FieldNotNull(FieldRubric))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Score {
	return predicate.Score(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Score {
	return predicate.Score(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Score {
	return predicate.Score(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Score {
	return predicate.Score(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Score {
	return predicate.Score(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Score {
	return predicate.Score(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Score {
	return predicate.Score(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Score {
	return predicate.Score(sql.FieldLTE(FieldCreatedAt, v))
}

// HasSubmission applies the HasEdge predicate on the "submission" edge.
func HasSubmission() predicate.Score {
	return predicate.Score(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, SubmissionTable, SubmissionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSubmissionWith applies the HasEdge predicate on the "submission" edge with a given conditions (other predicates).
func HasSubmissionWith(preds ...predicate.Submission) predicate.Score {
	return predicate.Score(func(s *sql.Selector) {
		step := newSubmissionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Score) predicate.Score {
	return predicate.Score(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Score) predicate.Score {
	return predicate.Score(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Score) predicate.Score {
	return predicate.Score(sql.NotPredicates(p))
}
