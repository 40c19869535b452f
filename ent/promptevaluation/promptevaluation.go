// Code generated by ent, DO NOT EDIT.

package promptevaluation

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the promptevaluation type in the database.
	Label = "prompt_evaluation"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldTurn holds the string denoting the turn field in the database.
	FieldTurn = "turn"
	// FieldEvaluationType holds the string denoting the evaluation_type field in the database.
	FieldEvaluationType = "evaluation_type"
	// FieldNodeName holds the string denoting the node_name field in the database.
	FieldNodeName = "node_name"
	// FieldScore holds the string denoting the score field in the database.
	FieldScore = "score"
	// FieldAnalysis holds the string denoting the analysis field in the database.
	FieldAnalysis = "analysis"
	// FieldDetails holds the string denoting the details field in the database.
	FieldDetails = "details"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeSession holds the string denoting the session edge name in mutations.
	EdgeSession = "session"
	// Table holds the table name of the promptevaluation in the database.
	Table = "prompt_evaluations"
	// SessionTable is the table that holds the session relation/edge.
	SessionTable = "prompt_evaluations"
	// SessionInverseTable is the table name for the PromptSession entity.
	// It exists in this package in order to avoid circular dependency with the "promptsession" package.
	SessionInverseTable = "prompt_sessions"
	// SessionColumn is the table column denoting the session relation/edge.
	SessionColumn = "session_id"
)

// Columns holds all SQL columns for promptevaluation fields.
var Columns = []string{
	FieldID,
	FieldSessionID,
	FieldTurn,
	FieldEvaluationType,
	FieldNodeName,
	FieldScore,
	FieldAnalysis,
	FieldDetails,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// EvaluationType defines the type for the "evaluation_type" enum field.
type EvaluationType string

// EvaluationType values.
const (
	EvaluationTypeTURN_EVAL            EvaluationType = "TURN_EVAL"
	EvaluationTypeHOLISTIC_FLOW        EvaluationType = "HOLISTIC_FLOW"
	EvaluationTypeHOLISTIC_PERFORMANCE EvaluationType = "HOLISTIC_PERFORMANCE"
)

func (et EvaluationType) String() string {
	return string(et)
}

// EvaluationTypeValidator is a validator for the "evaluation_type" field enum values. It is called by the builders before save.
func EvaluationTypeValidator(et EvaluationType) error {
	switch et {
	case EvaluationTypeTURN_EVAL, EvaluationTypeHOLISTIC_FLOW, EvaluationTypeHOLISTIC_PERFORMANCE:
		return nil
	default:
		return fmt.Errorf("promptevaluation: invalid enum value for evaluation_type field: %q", et)
	}
}

// OrderOption defines the ordering options for the PromptEvaluation queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByTurn orders the results by the turn field.
func ByTurn(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTurn, opts...).ToFunc()
}

// ByEvaluationType orders the results by the evaluation_type field.
func ByEvaluationType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEvaluationType, opts...).ToFunc()
}

// ByNodeName orders the results by the node_name field.
func ByNodeName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNodeName, opts...).ToFunc()
}

// ByScore orders the results by the score field.
func ByScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScore, opts...).ToFunc()
}

// ByAnalysis orders the results by the analysis field.
func ByAnalysis(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnalysis, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// BySessionField orders the results by session field.
func BySessionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSessionStep(), sql.OrderByField(field, opts...))
	}
}
func newSessionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SessionInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
	)
}
