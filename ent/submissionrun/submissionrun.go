// Code generated by ent, DO NOT EDIT.

package submissionrun

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the submissionrun type in the database.
	Label = "submission_run"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSubmissionID holds the string denoting the submission_id field in the database.
	FieldSubmissionID = "submission_id"
	// FieldCaseIndex holds the string denoting the case_index field in the database.
	FieldCaseIndex = "case_index"
	// FieldVerdict holds the string denoting the verdict field in the database.
	FieldVerdict = "verdict"
	// FieldPassed holds the string denoting the passed field in the database.
	FieldPassed = "passed"
	// FieldOutput holds the string denoting the output field in the database.
	FieldOutput = "output"
	// FieldStderr holds the string denoting the stderr field in the database.
	FieldStderr = "stderr"
	// FieldExecutionTime holds the string denoting the execution_time field in the database.
	FieldExecutionTime = "execution_time"
	// FieldMemoryKB holds the string denoting the memory_kb field in the database.
	FieldMemoryKB = "memory_kb"
	// FieldExitCode holds the string denoting the exit_code field in the database.
	FieldExitCode = "exit_code"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeSubmission holds the string denoting the submission edge name in mutations.
	EdgeSubmission = "submission"
	// Table holds the table name of the submissionrun in the database.
	Table = "submission_runs"
	// SubmissionTable is the table that holds the submission relation/edge.
	SubmissionTable = "submission_runs"
	// SubmissionInverseTable is the table name for the Submission entity.
	// It exists in this package in order to avoid circular dependency with the "submission" package.
	SubmissionInverseTable = "submissions"
	// SubmissionColumn is the table column denoting the submission relation/edge.
	SubmissionColumn = "submission_id"
)

// Columns holds all SQL columns for submissionrun fields.
var Columns = []string{
	FieldID,
	FieldSubmissionID,
	FieldCaseIndex,
	FieldVerdict,
	FieldPassed,
	FieldOutput,
	FieldStderr,
	FieldExecutionTime,
	FieldMemoryKB,
	FieldExitCode,
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
	// CaseIndexValidator is a validator for the "case_index" field. It is called by the builders before save.
	CaseIndexValidator func(int) error
	// DefaultPassed holds the default value on creation for the "passed" field.
	DefaultPassed bool
	// DefaultExecutionTime holds the default value on creation for the "execution_time" field.
	DefaultExecutionTime float64
	// DefaultMemoryKB holds the default value on creation for the "memory_kb" field.
	DefaultMemoryKB int
	// DefaultExitCode holds the default value on creation for the "exit_code" field.
	DefaultExitCode int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Verdict defines the type for the "verdict" enum field.
type Verdict string

// Verdict values.
const (
	VerdictSuccess     Verdict = "success"
	VerdictTimeout     Verdict = "timeout"
	VerdictError       Verdict = "error"
	VerdictMemoryLimit Verdict = "memory_limit"
)

func (v Verdict) String() string {
	return string(v)
}

// VerdictValidator is a validator for the "verdict" field enum values. It is called by the builders before save.
func VerdictValidator(v Verdict) error {
	switch v {
	case VerdictSuccess, VerdictTimeout, VerdictError, VerdictMemoryLimit:
		return nil
	default:
		return fmt.Errorf("submissionrun: invalid enum value for verdict field: %q", v)
	}
}

// OrderOption defines the ordering options for the SubmissionRun queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySubmissionID orders the results by the submission_id field.
func BySubmissionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubmissionID, opts...).ToFunc()
}

// ByCaseIndex orders the results by the case_index field.
func ByCaseIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCaseIndex, opts...).ToFunc()
}

// ByVerdict orders the results by the verdict field.
func ByVerdict(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVerdict, opts...).ToFunc()
}

// ByPassed orders the results by the passed field.
func ByPassed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPassed, opts...).ToFunc()
}

// ByOutput orders the results by the output field.
func ByOutput(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutput, opts...).ToFunc()
}

// ByStderr orders the results by the stderr field.
func ByStderr(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStderr, opts...).ToFunc()
}

// ByExecutionTime orders the results by the execution_time field.
func ByExecutionTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExecutionTime, opts...).ToFunc()
}

// ByMemoryKB orders the results by the memory_kb field.
func ByMemoryKB(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMemoryKB, opts...).ToFunc()
}

// ByExitCode orders the results by the exit_code field.
func ByExitCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExitCode, opts...).ToFunc()
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
		sqlgraph.Edge(sqlgraph.M2O, true, SubmissionTable, SubmissionColumn),
	)
}
