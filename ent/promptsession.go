// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/examkit/proctor/ent/promptsession"
)

// PromptSession is the model entity for the PromptSession schema.
type PromptSession struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// ExamID holds the value of the "exam_id" field.
	ExamID int `json:"exam_id,omitempty"`
	// ParticipantID holds the value of the "participant_id" field.
	ParticipantID int `json:"participant_id,omitempty"`
	// Problem spec the participant is solving
	SpecID int `json:"spec_id,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt time.Time `json:"started_at,omitempty"`
	// Set when the session is closed; open sessions have NULL
	EndedAt *time.Time `json:"ended_at,omitempty"`
	// Cumulative LLM tokens consumed across the session
	TotalTokens int `json:"total_tokens,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PromptSessionQuery when eager-loading is set.
	Edges        PromptSessionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PromptSessionEdges holds the relations/edges for other nodes in the graph.
type PromptSessionEdges struct {
	// Messages holds the value of the messages edge.
	Messages []*PromptMessage `json:"messages,omitempty"`
	// Evaluations holds the value of the evaluations edge.
	Evaluations []*PromptEvaluation `json:"evaluations,omitempty"`
	// Submissions holds the value of the submissions edge.
	Submissions []*Submission `json:"submissions,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// MessagesOrErr returns the Messages value or an error if the edge
// was not loaded in eager-loading.
func (e PromptSessionEdges) MessagesOrErr() ([]*PromptMessage, error) {
	if e.loadedTypes[0] {
		return e.Messages, nil
	}
	return nil, &NotLoadedError{edge: "messages"}
}

// EvaluationsOrErr returns the Evaluations value or an error if the edge
// was not loaded in eager-loading.
func (e PromptSessionEdges) EvaluationsOrErr() ([]*PromptEvaluation, error) {
	if e.loadedTypes[1] {
		return e.Evaluations, nil
	}
	return nil, &NotLoadedError{edge: "evaluations"}
}

// SubmissionsOrErr returns the Submissions value or an error if the edge
// was not loaded in eager-loading.
func (e PromptSessionEdges) SubmissionsOrErr() ([]*Submission, error) {
	if e.loadedTypes[2] {
		return e.Submissions, nil
	}
	return nil, &NotLoadedError{edge: "submissions"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PromptSession) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case promptsession.FieldID, promptsession.FieldExamID, promptsession.FieldParticipantID, promptsession.FieldSpecID, promptsession.FieldTotalTokens:
			values[i] = new(sql.NullInt64)
		case promptsession.FieldStartedAt, promptsession.FieldEndedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PromptSession fields.
func (_m *PromptSession) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case promptsession.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case promptsession.FieldExamID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field exam_id", values[i])
			} else if value.Valid {
				_m.ExamID = int(value.Int64)
			}
		case promptsession.FieldParticipantID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field participant_id", values[i])
			} else if value.Valid {
				_m.ParticipantID = int(value.Int64)
			}
		case promptsession.FieldSpecID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field spec_id", values[i])
			} else if value.Valid {
				_m.SpecID = int(value.Int64)
			}
		case promptsession.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case promptsession.FieldEndedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field ended_at", values[i])
			} else if value.Valid {
				_m.EndedAt = new(time.Time)
				*_m.EndedAt = value.Time
			}
		case promptsession.FieldTotalTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_tokens", values[i])
			} else if value.Valid {
				_m.TotalTokens = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PromptSession.
// This includes values selected through modifiers, order, etc.
func (_m *PromptSession) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryMessages queries the "messages" edge of the PromptSession entity.
func (_m *PromptSession) QueryMessages() *PromptMessageQuery {
	return NewPromptSessionClient(_m.config).QueryMessages(_m)
}

// QueryEvaluations queries the "evaluations" edge of the PromptSession entity.
func (_m *PromptSession) QueryEvaluations() *PromptEvaluationQuery {
	return NewPromptSessionClient(_m.config).QueryEvaluations(_m)
}

// QuerySubmissions queries the "submissions" edge of the PromptSession entity.
func (_m *PromptSession) QuerySubmissions() *SubmissionQuery {
	return NewPromptSessionClient(_m.config).QuerySubmissions(_m)
}

// Update returns a builder for updating this PromptSession.
// Note that you need to call PromptSession.Unwrap() before calling this method if this PromptSession
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PromptSession) Update() *PromptSessionUpdateOne {
	return NewPromptSessionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PromptSession entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PromptSession) Unwrap() *PromptSession {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PromptSession is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PromptSession) String() string {
	var builder strings.Builder
	builder.WriteString("PromptSession(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("exam_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExamID))
	builder.WriteString(", ")
	builder.WriteString("participant_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ParticipantID))
	builder.WriteString(", ")
	builder.WriteString("spec_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.SpecID))
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.EndedAt; v != nil {
		builder.WriteString("ended_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("total_tokens=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalTokens))
	builder.WriteByte(')')
	return builder.String()
}

// PromptSessions is a parsable slice of PromptSession.
type PromptSessions []*PromptSession
