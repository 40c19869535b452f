// Code generated by ent, DO NOT EDIT.

package score

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the score type in the database.
	Label = "score"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSubmissionID holds the string denoting the submission_id field in the database.
	FieldSubmissionID = "submission_id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldPromptScore holds the string denoting the prompt_score field in the database.
	FieldPromptScore = "prompt_score"
	// FieldPerformanceScore holds the string denoting the performance_score field in the database.
	FieldPerformanceScore = "performance_score"
	// FieldCorrectnessScore holds the string denoting the correctness_score field in the database.
	FieldCorrectnessScore = "correctness_score"
	// FieldTotalScore holds the string denoting the total_score field in the database.
	FieldTotalScore = "total_score"
	// FieldGrade holds the string denoting the grade field in the database.
	FieldGrade = "grade"
	// FieldRubric holds the string denoting the rubric field in the database.
	FieldRubric = "rubric"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeSubmission holds the string denoting the submission edge name in mutations.
	EdgeSubmission = "submission"
	// Table holds the table name of the score in the database.
	Table = "scores"
	// SubmissionTable is the table that holds the submission relation/edge.
	SubmissionTable = "scores"
	// SubmissionInverseTable is the table name for the Submission entity.
	// It exists in this package in order to avoid circular dependency with the "submission" package.
	SubmissionInverseTable = "submissions"
	// SubmissionColumn is the table column denoting the submission relation/edge.
	SubmissionColumn = "submission_id"
)

// Columns holds all SQL columns for score fields.
var Columns = []string{
	FieldID,
	FieldSubmissionID,
	FieldSessionID,
	FieldPromptScore,
	FieldPerformanceScore,
	FieldCorrectnessScore,
	FieldTotalScore,
	FieldGrade,
	FieldRubric,
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
	// GradeValidator is a validator for the "grade" field. It is called by the builders before save.
	GradeValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the Score queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySubmissionID orders the results by the submission_id field.
func BySubmissionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubmissionID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByPromptScore orders the results by the prompt_score field.
func ByPromptScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPromptScore, opts...).ToFunc()
}

// ByPerformanceScore orders the results by the performance_score field.
func ByPerformanceScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPerformanceScore, opts...).ToFunc()
}

// ByCorrectnessScore orders the results by the correctness_score field.
func ByCorrectnessScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrectnessScore, opts...).ToFunc()
}

// ByTotalScore orders the results by the total_score field.
func ByTotalScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalScore, opts...).ToFunc()
}

// ByGrade orders the results by the grade field.
func ByGrade(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGrade, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// BySubmissionField orders the results by submission field.
func BySubmissionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSubmissionStep(), sql.OrderByField(field, opts...))
	}
}
func newSubmissionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SubmissionInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, true, SubmissionTable, SubmissionColumn),
	)
}
