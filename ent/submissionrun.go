// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/examkit/proctor/ent/submission"
	"github.com/examkit/proctor/ent/submissionrun"
)

// SubmissionRun is the model entity for the SubmissionRun schema.
type SubmissionRun struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// SubmissionID holds the value of the "submission_id" field.
	SubmissionID int `json:"submission_id,omitempty"`
	// CaseIndex holds the value of the "case_index" field.
	CaseIndex int `json:"case_index,omitempty"`
	// Verdict holds the value of the "verdict" field.
	Verdict submissionrun.Verdict `json:"verdict,omitempty"`
	// Passed holds the value of the "passed" field.
	Passed bool `json:"passed,omitempty"`
	// Actual stdout, truncated by the worker
	Output string `json:"output,omitempty"`
	// Stderr holds the value of the "stderr" field.
	Stderr string `json:"stderr,omitempty"`
	// Seconds
	ExecutionTime float64 `json:"execution_time,omitempty"`
	// MemoryKB holds the value of the "memory_kb" field.
	MemoryKB int `json:"memory_kb,omitempty"`
	// ExitCode holds the value of the "exit_code" field.
	ExitCode int `json:"exit_code,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SubmissionRunQuery when eager-loading is set.
	Edges        SubmissionRunEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SubmissionRunEdges holds the relations/edges for other nodes in the graph.
type SubmissionRunEdges struct {
	// Submission holds the value of the submission edge.
	Submission *Submission `json:"submission,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SubmissionOrErr returns the Submission value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SubmissionRunEdges) SubmissionOrErr() (*Submission, error) {
	if e.Submission != nil {
		return e.Submission, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: submission.Label}
	}
	return nil, &NotLoadedError{edge: "submission"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SubmissionRun) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case submissionrun.FieldPassed:
			values[i] = new(sql.NullBool)
		case submissionrun.FieldExecutionTime:
			values[i] = new(sql.NullFloat64)
		case submissionrun.FieldID, submissionrun.FieldSubmissionID, submissionrun.FieldCaseIndex, submissionrun.FieldMemoryKB, submissionrun.FieldExitCode:
			values[i] = new(sql.NullInt64)
		case submissionrun.FieldVerdict, submissionrun.FieldOutput, submissionrun.FieldStderr:
			values[i] = new(sql.NullString)
		case submissionrun.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SubmissionRun fields.
func (_m *SubmissionRun) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case submissionrun.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case submissionrun.FieldSubmissionID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field submission_id", values[i])
			} else if value.Valid {
				_m.SubmissionID = int(value.Int64)
			}
		case submissionrun.FieldCaseIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field case_index", values[i])
			} else if value.Valid {
				_m.CaseIndex = int(value.Int64)
			}
		case submissionrun.FieldVerdict:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field verdict", values[i])
			} else if value.Valid {
				_m.Verdict = submissionrun.Verdict(value.String)
			}
		case submissionrun.FieldPassed:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field passed", values[i])
			} else if value.Valid {
				_m.Passed = value.Bool
			}
		case submissionrun.FieldOutput:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field output", values[i])
			} else if value.Valid {
				_m.Output = value.String
			}
		case submissionrun.FieldStderr:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stderr", values[i])
			} else if value.Valid {
				_m.Stderr = value.String
			}
		case submissionrun.FieldExecutionTime:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field execution_time", values[i])
			} else if value.Valid {
				_m.ExecutionTime = value.Float64
			}
		case submissionrun.FieldMemoryKB:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field memory_kb", values[i])
			} else if value.Valid {
				_m.MemoryKB = int(value.Int64)
			}
		case submissionrun.FieldExitCode:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field exit_code", values[i])
			} else if value.Valid {
				_m.ExitCode = int(value.Int64)
			}
		case submissionrun.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SubmissionRun.
// This includes values selected through modifiers, order, etc.
func (_m *SubmissionRun) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySubmission queries the "submission" edge of the SubmissionRun entity.
func (_m *SubmissionRun) QuerySubmission() *SubmissionQuery {
	return NewSubmissionRunClient(_m.config).QuerySubmission(_m)
}

// Update returns a builder for updating this SubmissionRun.
// Note that you need to call SubmissionRun.Unwrap() before calling this method if this SubmissionRun
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SubmissionRun) Update() *SubmissionRunUpdateOne {
	return NewSubmissionRunClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SubmissionRun entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SubmissionRun) Unwrap() *SubmissionRun {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SubmissionRun is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SubmissionRun) String() string {
	var builder strings.Builder
	builder.WriteString("SubmissionRun(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("submission_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.SubmissionID))
	builder.WriteString(", ")
	builder.WriteString("case_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.CaseIndex))
	builder.WriteString(", ")
	builder.WriteString("verdict=")
	builder.WriteString(fmt.Sprintf("%v", _m.Verdict))
	builder.WriteString(", ")
	builder.WriteString("passed=")
	builder.WriteString(fmt.Sprintf("%v", _m.Passed))
	builder.WriteString(", ")
	builder.WriteString("output=")
	builder.WriteString(_m.Output)
	builder.WriteString(", ")
	builder.WriteString("stderr=")
	builder.WriteString(_m.Stderr)
	builder.WriteString(", ")
	builder.WriteString("execution_time=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExecutionTime))
	builder.WriteString(", ")
	builder.WriteString("memory_kb=")
	builder.WriteString(fmt.Sprintf("%v", _m.MemoryKB))
	builder.WriteString(", ")
	builder.WriteString("exit_code=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExitCode))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SubmissionRuns is a parsable slice of SubmissionRun.
type SubmissionRuns []*SubmissionRun
