// Code generated by ent, DO NOT EDIT.

package promptevaluation

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/examkit/proctor/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.PromptEvaluation {
	return predicate.PromptEvaluation(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.PromptEvaluation {
	return predicate.PromptEvaluation(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.PromptEvaluation {
	return predicate.PromptEvaluation(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.PromptEvaluation {
	return predicate.PromptEvaluation(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.PromptEvaluation {
	return predicate.PromptEvaluation(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.PromptEvaluation {
	return predicate.PromptEvaluation(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.PromptEvaluation {
	return predicate.PromptEvaluation(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.PromptEvaluation {
	return predicate.PromptEvaluation(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.PromptEvaluation {
	return predicate.PromptEvaluation(sql.FieldLTE(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v int) predicate.PromptEvaluation {
	return predicate.PromptEvaluation(sql.FieldEQ(FieldSessionID, v))
}

// Turn applies equality check predicate on the "turn" field. It's identical to TurnEQ.
func Turn(v int) predicate.PromptEvaluation {
	return predicate.PromptEvaluation(sql.FieldEQ(FieldTurn, v))
}

// NodeName applies equality check predicate on the "node_name" field. It's identical to NodeNameEQ.
func NodeName(v string) predicate.PromptEvaluation {
	return predicate.PromptEvaluation(sql.FieldEQ(FieldNodeName, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v float64) predicate.PromptEvaluation {
	return predicate.PromptEvaluation(sql.FieldEQ(FieldScore, v))
}

// Analysis applies equality check predicate on the "analysis" field. It's identical to AnalysisEQ.
func Analysis(v string) predicate.PromptEvaluation {
	return predicate.PromptEvaluation(sql.FieldEQ(FieldAnalysis, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PromptEvaluation {
	return predicate.PromptEvaluation(sql.FieldEQ(FieldCreatedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v int) predicate.PromptEvaluation {
	return predicate.PromptEvaluation(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v int) predicate.PromptEvaluation {
	return predicate.PromptEvaluation(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...int) predicate.PromptEvaluation {
	return predicate.PromptEvaluation(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...int) predicate.PromptEvaluation {
	return predicate.PromptEvaluation(sql.FieldNotIn(FieldSessionID, vs...))
}

// TurnEQ applies the EQ predicate on the "turn" field.
func TurnEQ(v int) predicate.PromptEvaluation {
	return predicate.PromptEvaluation(sql.FieldEQ(FieldTurn, v))
}

// TurnNEQ applies the NEQ predicate on the "turn" field.
func TurnNEQ(v int) predicate.PromptEvaluation {
	return predicate.PromptEvaluation(sql.FieldNEQ(FieldTurn, v))
}

// TurnIn applies the In predicate on the "turn" field.
func TurnIn(vs ...int) predicate.PromptEvaluation {
	return predicate.PromptEvaluation(sql.FieldIn(FieldTurn, vs...))
}

// TurnNotIn applies the NotIn predicate on the "turn" field.
func TurnNotIn(vs ...int) predicate.PromptEvaluation {
	return predicate.PromptEvaluation(sql.FieldNotIn(FieldTurn, vs...))
}

// TurnGT applies the GT predicate on the "turn" field.
func TurnGT(v int) predicate.PromptEvaluation {
	return predicate.PromptEvaluation(sql.FieldGT(FieldTurn, v))
}

// TurnGTE applies the GTE predicate on the "turn" field.
func TurnGTE(v int) predicate.PromptEvaluation {
	return predicate.PromptEvaluation(sql.FieldGTE(FieldTurn, v))
}

// TurnLT applies the LT predicate on the "turn" field.
func TurnLT(v int) predicate.PromptEvaluation {
	return predicate.PromptEvaluation(sql.FieldLT(FieldTurn, v))
}

// TurnLTE applies the LTE predicate on the "turn" field.
func TurnLTE(v int) predicate.PromptEvaluation {
	return predicate.PromptEvaluation(sql.FieldLTE(FieldTurn, v))
}

// TurnIsNil applies the IsNil predicate on the "turn" field.
func TurnIsNil() predicate.PromptEvaluation {
	return predicate.PromptEvaluation(sql.FieldIsNull(FieldTurn))
}

// TurnNotNil applies the NotNil predicate on the "turn" field.
func TurnNotNil() predicate.PromptEvaluation {
	return predicate.PromptEvaluation(sql.FieldNotNull(FieldTurn))
}

// EvaluationTypeEQ applies the EQ predicate on the "evaluation_type" field.
func EvaluationTypeEQ(v EvaluationType) predicate.PromptEvaluation {
	return predicate.PromptEvaluation(sql.FieldEQ(FieldEvaluationType, v))
}

// EvaluationTypeNEQ applies the NEQ predicate on the "evaluation_type" field.
func EvaluationTypeNEQ(v EvaluationType) predicate.PromptEvaluation {
	return predicate.PromptEvaluation(sql.FieldNEQ(FieldEvaluationType, v))
}

// EvaluationTypeIn applies the In predicate on the "evaluation_type" field.
func EvaluationTypeIn(vs ...EvaluationType) predicate.PromptEvaluation {
	return predicate.PromptEvaluation(sql.FieldIn(FieldEvaluationType, vs...))
}

// EvaluationTypeNotIn applies the NotIn predicate on the "evaluation_type" field.
func EvaluationTypeNotIn(vs ...EvaluationType) predicate.PromptEvaluation {
	return predicate.PromptEvaluation(sql.FieldNotIn(FieldEvaluationType, vs...))
}

// NodeNameEQ applies the EQ predicate on the "node_name" field.
func NodeNameEQ(v string) predicate.PromptEvaluation {
	return predicate.PromptEvaluation(sql.FieldEQ(FieldNodeName, v))
}

// NodeNameNEQ applies the NEQ predicate on the "node_name" field.
func NodeNameNEQ(v string) predicate.PromptEvaluation {
	return predicate.PromptEvaluation(sql.FieldNEQ(FieldNodeName, v))
}

// NodeNameIn applies the In predicate on the "node_name" field.
func NodeNameIn(vs ...string) predicate.PromptEvaluation {
	return predicate.PromptEvaluation(sql.FieldIn(FieldNodeName, vs...))
}

// NodeNameNotIn applies the NotIn predicate on the "node_name" field.
func NodeNameNotIn(vs ...string) predicate.PromptEvaluation {
	return predicate.PromptEvaluation(sql.FieldNotIn(FieldNodeName, vs...))
}

// NodeNameGT applies the GT predicate on the "node_name" field.
func NodeNameGT(v string) predicate.PromptEvaluation {
	return predicate.PromptEvaluation(sql.FieldGT(FieldNodeName, v))
}

// NodeNameGTE applies the GTE predicate on the "node_name" field.
func NodeNameGTE(v string) predicate.PromptEvaluation {
	return predicate.PromptEvaluation(sql.FieldGTE(FieldNodeName, v))
}

// NodeNameLT applies the LT predicate on the "node_name" field.
func NodeNameLT(v string) predicate.PromptEvaluation {
	return predicate.PromptEvaluation(sql.FieldLT(FieldNodeName, v))
}

// NodeNameLTE applies the LTE predicate on the "node_name" field.
func NodeNameLTE(v string) predicate.PromptEvaluation {
	return predicate.PromptEvaluation(sql.FieldLTE(FieldNodeName, v))
}

// NodeNameContains applies the Contains predicate on the "node_name" field.
func NodeNameContains(v string) predicate.PromptEvaluation {
	return predicate.PromptEvaluation(sql.FieldContains(FieldNodeName, v))
}

// NodeNameHasPrefix applies the HasPrefix predicate on the "node_name" field.
func NodeNameHasPrefix(v string) predicate.PromptEvaluation {
	return predicate.PromptEvaluation(sql.FieldHasPrefix(FieldNodeName, v))
}

// NodeNameHasSuffix applies the HasSuffix predicate on the "node_name" field.
func NodeNameHasSuffix(v string) predicate.PromptEvaluation {
	return predicate.PromptEvaluation(sql.FieldHasSuffix(FieldNodeName, v))
}

// NodeNameIsNil applies the IsNil predicate on the "node_name" field.
func NodeNameIsNil() predicate.PromptEvaluation {
	return predicate.PromptEvaluation(sql.FieldIsNull(FieldNodeName))
}

// NodeNameNotNil applies the NotNil predicate on the "node_name" field.
func NodeNameNotNil() predicate.PromptEvaluation {
	return predicate.PromptEvaluation(sql.FieldNotNull(FieldNodeName))
}

// NodeNameEqualFold applies the EqualFold predicate on the "node_name" field.
func NodeNameEqualFold(v string) predicate.PromptEvaluation {
	return predicate.PromptEvaluation(sql.FieldEqualFold(FieldNodeName, v))
}

// NodeNameContainsFold applies the ContainsFold predicate on the "node_name" field.
func NodeNameContainsFold(v string) predicate.PromptEvaluation {
	return predicate.PromptEvaluation(sql.FieldContainsFold(FieldNodeName, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v float64) predicate.PromptEvaluation {
	return predicate.PromptEvaluation(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v float64) predicate.PromptEvaluation {
	return predicate.PromptEvaluation(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...float64) predicate.PromptEvaluation {
	return predicate.PromptEvaluation(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...float64) predicate.PromptEvaluation {
	return predicate.PromptEvaluation(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v float64) predicate.PromptEvaluation {
	return predicate.PromptEvaluation(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v float64) predicate.PromptEvaluation {
	return predicate.PromptEvaluation(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v float64) predicate.PromptEvaluation {
	return predicate.PromptEvaluation(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v float64) predicate.PromptEvaluation {
	return predicate.PromptEvaluation(sql.FieldLTE(FieldScore, v))
}

// AnalysisEQ applies the EQ predicate on the "analysis" field.
func AnalysisEQ(v string) predicate.PromptEvaluation {
	return predicate.PromptEvaluation(sql.FieldEQ(FieldAnalysis, v))
}

// AnalysisNEQ applies the NEQ predicate on the "analysis" field.
func AnalysisNEQ(v string) predicate.PromptEvaluation {
	return predicate.PromptEvaluation(sql.FieldNEQ(FieldAnalysis, v))
}

// AnalysisIn applies the In predicate on the "analysis" field.
func AnalysisIn(vs ...string) predicate.PromptEvaluation {
	return predicate.PromptEvaluation(sql.FieldIn(FieldAnalysis, vs...))
}

// AnalysisNotIn applies the NotIn predicate on the "analysis" field.
func AnalysisNotIn(vs ...string) predicate.PromptEvaluation {
	return predicate.PromptEvaluation(sql.FieldNotIn(FieldAnalysis, vs...))
}

// AnalysisGT applies the GT predicate on the "analysis" field.
func AnalysisGT(v string) predicate.PromptEvaluation {
	return predicate.PromptEvaluation(sql.FieldGT(FieldAnalysis, v))
}

// AnalysisGTE applies the GTE predicate on the "analysis" field.
func AnalysisGTE(v string) predicate.PromptEvaluation {
	return predicate.PromptEvaluation(sql.FieldGTE(FieldAnalysis, v))
}

// AnalysisLT applies the LT predicate on the "analysis" field.
func AnalysisLT(v string) predicate.PromptEvaluation {
	return predicate.PromptEvaluation(sql.FieldLT(FieldAnalysis, v))
}

// AnalysisLTE applies the LTE predicate on the "analysis" field.
func AnalysisLTE(v string) predicate.PromptEvaluation {
	return predicate.PromptEvaluation(sql.FieldLTE(FieldAnalysis, v))
}

// AnalysisContains applies the Contains predicate on the "analysis" field.
func AnalysisContains(v string) predicate.PromptEvaluation {
	return predicate.PromptEvaluation(sql.FieldContains(FieldAnalysis, v))
}

// AnalysisHasPrefix applies the HasPrefix predicate on the "analysis" field.
func AnalysisHasPrefix(v string) predicate.PromptEvaluation {
	return predicate.PromptEvaluation(sql.FieldHasPrefix(FieldAnalysis, v))
}

// AnalysisHasSuffix applies the HasSuffix predicate on the "analysis" field.
func AnalysisHasSuffix(v string) predicate.PromptEvaluation {
	return predicate.PromptEvaluation(sql.FieldHasSuffix(FieldAnalysis, v))
}

// AnalysisIsNil applies the IsNil predicate on the "analysis" field.
func AnalysisIsNil() predicate.PromptEvaluation {
	return predicate.PromptEvaluation(sql.FieldIsNull(FieldAnalysis))
}

// AnalysisNotNil applies the NotNil predicate on the "analysis" field.
func AnalysisNotNil() predicate.PromptEvaluation {
	return predicate.PromptEvaluation(sql.FieldNotNull(FieldAnalysis))
}

// AnalysisEqualFold applies the EqualFold predicate on the "analysis" field.
func AnalysisEqualFold(v string) predicate.PromptEvaluation {
	return predicate.PromptEvaluation(sql.FieldEqualFold(FieldAnalysis, v))
}

// AnalysisContainsFold applies the ContainsFold predicate on the "analysis" field.
func AnalysisContainsFold(v string) predicate.PromptEvaluation {
	return predicate.PromptEvaluation(sql.FieldContainsFold(FieldAnalysis, v))
}

// DetailsIsNil applies the IsNil predicate on the "details" field.
func DetailsIsNil() predicate.PromptEvaluation {
	return predicate.PromptEvaluation(sql.FieldIsNull(FieldDetails))
}

// DetailsNotNil applies the NotNil predicate on the "details" field.
func DetailsNotNil() predicate.PromptEvaluation {
	return predicate.PromptEvaluation(sql.FieldNotNull(FieldDetails))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PromptEvaluation {
	return predicate.PromptEvaluation(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PromptEvaluation {
	return predicate.PromptEvaluation(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PromptEvaluation {
	return predicate.PromptEvaluation(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PromptEvaluation {
	return predicate.PromptEvaluation(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PromptEvaluation {
	return predicate.PromptEvaluation(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PromptEvaluation {
	return predicate.PromptEvaluation(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PromptEvaluation {
	return predicate.PromptEvaluation(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PromptEvaluation {
	return predicate.PromptEvaluation(sql.FieldLTE(FieldCreatedAt, v))
}

// HasSession applies the HasEdge predicate on the "session" edge.
func HasSession() predicate.PromptEvaluation {
	return predicate.PromptEvaluation(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionWith applies the HasEdge predicate on the "session" edge with a given conditions (other predicates).
func HasSessionWith(preds ...predicate.PromptSession) predicate.PromptEvaluation {
	return predicate.PromptEvaluation(func(s *sql.Selector) {
		step := newSessionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PromptEvaluation) predicate.PromptEvaluation {
	return predicate.PromptEvaluation(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PromptEvaluation) predicate.PromptEvaluation {
	return predicate.PromptEvaluation(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PromptEvaluation) predicate.PromptEvaluation {
	return predicate.PromptEvaluation(sql.NotPredicates(p))
}
