// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/examkit/proctor/ent/promptevaluation"
	"github.com/examkit/proctor/ent/promptsession"
)

// PromptEvaluation is the model entity for the PromptEvaluation schema.
type PromptEvaluation struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID int `json:"session_id,omitempty"`
	// NULL for holistic evaluations
	Turn *int `json:"turn,omitempty"`
	// EvaluationType holds the value of the "evaluation_type" field.
	EvaluationType promptevaluation.EvaluationType `json:"evaluation_type,omitempty"`
	// Graph node that produced the evaluation
	NodeName string `json:"node_name,omitempty"`
	// Score holds the value of the "score" field.
	Score float64 `json:"score,omitempty"`
	// Analysis holds the value of the "analysis" field.
	Analysis string `json:"analysis,omitempty"`
	// Rubric breakdown, intent, confidence, token usage
	Details map[string]interface{} `json:"details,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PromptEvaluationQuery when eager-loading is set.
	Edges        PromptEvaluationEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PromptEvaluationEdges holds the relations/edges for other nodes in the graph.
type PromptEvaluationEdges struct {
	// Session holds the value of the session edge.
	Session *PromptSession `json:"session,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SessionOrErr returns the Session value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PromptEvaluationEdges) SessionOrErr() (*PromptSession, error) {
	if e.Session != nil {
		return e.Session, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: promptsession.Label}
	}
	return nil, &NotLoadedError{edge: "session"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PromptEvaluation) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case promptevaluation.FieldDetails:
			values[i] = new([]byte)
		case promptevaluation.FieldScore:
			values[i] = new(sql.NullFloat64)
		case promptevaluation.FieldID, promptevaluation.FieldSessionID, promptevaluation.FieldTurn:
			values[i] = new(sql.NullInt64)
		case promptevaluation.FieldEvaluationType, promptevaluation.FieldNodeName, promptevaluation.FieldAnalysis:
			values[i] = new(sql.NullString)
		case promptevaluation.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PromptEvaluation fields.
func (_m *PromptEvaluation) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case promptevaluation.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case promptevaluation.FieldSessionID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = int(value.Int64)
			}
		case promptevaluation.FieldTurn:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field turn", values[i])
			} else if value.Valid {
				_m.Turn = new(int)
				*_m.Turn = int(value.Int64)
			}
		case promptevaluation.FieldEvaluationType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field evaluation_type", values[i])
			} else if value.Valid {
				_m.EvaluationType = promptevaluation.EvaluationType(value.String)
			}
		case promptevaluation.FieldNodeName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field node_name", values[i])
			} else if value.Valid {
				_m.NodeName = value.String
			}
		case promptevaluation.FieldScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = value.Float64
			}
		case promptevaluation.FieldAnalysis:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field analysis", values[i])
			} else if value.Valid {
				_m.Analysis = value.String
			}
		case promptevaluation.FieldDetails:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field details", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Details); err != nil {
					return fmt.Errorf("unmarshal field details: %w", err)
				}
			}
		case promptevaluation.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the PromptEvaluation.
// This includes values selected through modifiers, order, etc.
func (_m *PromptEvaluation) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySession queries the "session" edge of the PromptEvaluation entity.
func (_m *PromptEvaluation) QuerySession() *PromptSessionQuery {
	return NewPromptEvaluationClient(_m.config).QuerySession(_m)
}

// Update returns a builder for updating this PromptEvaluation.
// Note that you need to call PromptEvaluation.Unwrap() before calling this method if this PromptEvaluation
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PromptEvaluation) Update() *PromptEvaluationUpdateOne {
	return NewPromptEvaluationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PromptEvaluation entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PromptEvaluation) Unwrap() *PromptEvaluation {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PromptEvaluation is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PromptEvaluation) String() string {
	var builder strings.Builder
	builder.WriteString("PromptEvaluation(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.SessionID))
	builder.WriteString(", ")
	if v := _m.Turn; v != nil {
		builder.WriteString("turn=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("evaluation_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.EvaluationType))
	builder.WriteString(", ")
	builder.WriteString("node_name=")
	builder.WriteString(_m.NodeName)
	builder.WriteString(", ")
	builder.WriteString("score=")
	builder.WriteString(fmt.Sprintf("%v", _m.Score))
	builder.WriteString(", ")
	builder.WriteString("analysis=")
	builder.WriteString(_m.Analysis)
	builder.WriteString(", ")
	builder.WriteString("details=")
	builder.WriteString(fmt.Sprintf("%v", _m.Details))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// PromptEvaluations is a parsable slice of PromptEvaluation.
type PromptEvaluations []*PromptEvaluation
