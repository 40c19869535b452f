// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/examkit/proctor/ent/predicate"
	"github.com/examkit/proctor/ent/problemspec"
	"github.com/examkit/proctor/ent/promptevaluation"
	"github.com/examkit/proctor/ent/promptmessage"
	"github.com/examkit/proctor/ent/promptsession"
	"github.com/examkit/proctor/ent/score"
	"github.com/examkit/proctor/ent/submission"
	"github.com/examkit/proctor/ent/submissionrun"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeProblemSpec      = "ProblemSpec"
	TypePromptEvaluation = "PromptEvaluation"
	TypePromptMessage    = "PromptMessage"
	TypePromptSession    = "PromptSession"
	TypeScore            = "Score"
	TypeSubmission       = "Submission"
	TypeSubmissionRun    = "SubmissionRun"
)

// ProblemSpecMutation represents an operation that mutates the ProblemSpec nodes in the graph.
type ProblemSpecMutation struct {
	config
	op            Op
	typ           string
	id            *int
	spec_id       *int
	addspec_id    *int
	context       *json.RawMessage
	appendcontext json.RawMessage
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*ProblemSpec, error)
	predicates    []predicate.ProblemSpec
}

var _ ent.Mutation = (*ProblemSpecMutation)(nil)

// problemspecOption allows management of the mutation configuration using functional options.
type problemspecOption func(*ProblemSpecMutation)

// newProblemSpecMutation creates new mutation for the ProblemSpec entity.
func newProblemSpecMutation(c config, op Op, opts ...problemspecOption) *ProblemSpecMutation {
	m := &ProblemSpecMutation{
		config:        c,
		op:            op,
		typ:           TypeProblemSpec,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProblemSpecID sets the ID field of the mutation.
func withProblemSpecID(id int) problemspecOption {
	return func(m *ProblemSpecMutation) {
		var (
			err   error
			once  sync.Once
			value *ProblemSpec
		)
		m.oldValue = func(ctx context.Context) (*ProblemSpec, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ProblemSpec.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProblemSpec sets the old ProblemSpec of the mutation.
func withProblemSpec(node *ProblemSpec) problemspecOption {
	return func(m *ProblemSpecMutation) {
		m.oldValue = func(context.Context) (*ProblemSpec, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProblemSpecMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProblemSpecMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProblemSpecMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProblemSpecMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ProblemSpec.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSpecID sets the "spec_id" field.
func (m *ProblemSpecMutation) SetSpecID(i int) {
	m.spec_id = &i
	m.addspec_id = nil
}

// SpecID returns the value of the "spec_id" field in the mutation.
func (m *ProblemSpecMutation) SpecID() (r int, exists bool) {
	v := m.spec_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSpecID returns the old "spec_id" field's value of the ProblemSpec entity.
// If the ProblemSpec object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProblemSpecMutation) OldSpecID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSpecID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSpecID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSpecID: %w", err)
	}
	return oldValue.SpecID, nil
}

// AddSpecID adds i to the "spec_id" field.
func (m *ProblemSpecMutation) AddSpecID(i int) {
	if m.addspec_id != nil {
		*m.addspec_id += i
	} else {
		m.addspec_id = &i
	}
}

// AddedSpecID returns the value that was added to the "spec_id" field in this mutation.
func (m *ProblemSpecMutation) AddedSpecID() (r int, exists bool) {
	v := m.addspec_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetSpecID resets all changes to the "spec_id" field.
func (m *ProblemSpecMutation) ResetSpecID() {
	m.spec_id = nil
	m.addspec_id = nil
}

// SetContext sets the "context" field.
func (m *ProblemSpecMutation) SetContext(jm json.RawMessage) {
	m.context = &jm
	m.appendcontext = nil
}

// Context returns the value of the "context" field in the mutation.
func (m *ProblemSpecMutation) Context() (r json.RawMessage, exists bool) {
	v := m.context
	if v == nil {
		return
	}
	return *v, true
}

// OldContext returns the old "context" field's value of the ProblemSpec entity.
// If the ProblemSpec object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProblemSpecMutation) OldContext(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContext is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContext requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContext: %w", err)
	}
	return oldValue.Context, nil
}

// AppendContext adds jm to the "context" field.
func (m *ProblemSpecMutation) AppendContext(jm json.RawMessage) {
	m.appendcontext = append(m.appendcontext, jm...)
}

// AppendedContext returns the list of values that were appended to the "context" field in this mutation.
func (m *ProblemSpecMutation) AppendedContext() (json.RawMessage, bool) {
	if len(m.appendcontext) == 0 {
		return nil, false
	}
	return m.appendcontext, true
}

// ResetContext resets all changes to the "context" field.
func (m *ProblemSpecMutation) ResetContext() {
	m.context = nil
	m.appendcontext = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ProblemSpecMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProblemSpecMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ProblemSpec entity.
// If the ProblemSpec object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProblemSpecMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ProblemSpecMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ProblemSpecMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ProblemSpecMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ProblemSpec entity.
// If the ProblemSpec object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProblemSpecMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ProblemSpecMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the ProblemSpecMutation builder.
func (m *ProblemSpecMutation) Where(ps ...predicate.ProblemSpec) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProblemSpecMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProblemSpecMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ProblemSpec, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProblemSpecMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProblemSpecMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ProblemSpec).
func (m *ProblemSpecMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProblemSpecMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.spec_id != nil {
		fields = append(fields, problemspec.FieldSpecID)
	}
	if m.context != nil {
		fields = append(fields, problemspec.FieldContext)
	}
	if m.created_at != nil {
		fields = append(fields, problemspec.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, problemspec.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProblemSpecMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case problemspec.FieldSpecID:
		return m.SpecID()
	case problemspec.FieldContext:
		return m.Context()
	case problemspec.FieldCreatedAt:
		return m.CreatedAt()
	case problemspec.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProblemSpecMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case problemspec.FieldSpecID:
		return m.OldSpecID(ctx)
	case problemspec.FieldContext:
		return m.OldContext(ctx)
	case problemspec.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case problemspec.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ProblemSpec field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProblemSpecMutation) SetField(name string, value ent.Value) error {
	switch name {
	case problemspec.FieldSpecID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSpecID(v)
		return nil
	case problemspec.FieldContext:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContext(v)
		return nil
	case problemspec.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case problemspec.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ProblemSpec field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProblemSpecMutation) AddedFields() []string {
	var fields []string
	if m.addspec_id != nil {
		fields = append(fields, problemspec.FieldSpecID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProblemSpecMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case problemspec.FieldSpecID:
		return m.AddedSpecID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProblemSpecMutation) AddField(name string, value ent.Value) error {
	switch name {
	case problemspec.FieldSpecID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSpecID(v)
		return nil
	}
	return fmt.Errorf("unknown ProblemSpec numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProblemSpecMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProblemSpecMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProblemSpecMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ProblemSpec nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProblemSpecMutation) ResetField(name string) error {
	switch name {
	case problemspec.FieldSpecID:
		m.ResetSpecID()
		return nil
	case problemspec.FieldContext:
		m.ResetContext()
		return nil
	case problemspec.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case problemspec.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ProblemSpec field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProblemSpecMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProblemSpecMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProblemSpecMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProblemSpecMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProblemSpecMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProblemSpecMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProblemSpecMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ProblemSpec unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProblemSpecMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ProblemSpec edge %s", name)
}

// PromptEvaluationMutation represents an operation that mutates the PromptEvaluation nodes in the graph.
type PromptEvaluationMutation struct {
	config
	op              Op
	typ             string
	id              *int
	turn            *int
	addturn         *int
	evaluation_type *promptevaluation.EvaluationType
	node_name       *string
	score           *float64
	addscore        *float64
	analysis        *string
	details         *map[string]interface{}
	created_at      *time.Time
	clearedFields   map[string]struct{}
	session         *int
	clearedsession  bool
	done            bool
	oldValue        func(context.Context) (*PromptEvaluation, error)
	predicates      []predicate.PromptEvaluation
}

var _ ent.Mutation = (*PromptEvaluationMutation)(nil)

// promptevaluationOption allows management of the mutation configuration using functional options.
type promptevaluationOption func(*PromptEvaluationMutation)

// newPromptEvaluationMutation creates new mutation for the PromptEvaluation entity.
func newPromptEvaluationMutation(c config, op Op, opts ...promptevaluationOption) *PromptEvaluationMutation {
	m := &PromptEvaluationMutation{
		config:        c,
		op:            op,
		typ:           TypePromptEvaluation,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPromptEvaluationID sets the ID field of the mutation.
func withPromptEvaluationID(id int) promptevaluationOption {
	return func(m *PromptEvaluationMutation) {
		var (
			err   error
			once  sync.Once
			value *PromptEvaluation
		)
		m.oldValue = func(ctx context.Context) (*PromptEvaluation, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PromptEvaluation.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPromptEvaluation sets the old PromptEvaluation of the mutation.
func withPromptEvaluation(node *PromptEvaluation) promptevaluationOption {
	return func(m *PromptEvaluationMutation) {
		m.oldValue = func(context.Context) (*PromptEvaluation, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PromptEvaluationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PromptEvaluationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PromptEvaluationMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PromptEvaluationMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PromptEvaluation.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *PromptEvaluationMutation) SetSessionID(i int) {
	m.session = &i
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *PromptEvaluationMutation) SessionID() (r int, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the PromptEvaluation entity.
// If the PromptEvaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptEvaluationMutation) OldSessionID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *PromptEvaluationMutation) ResetSessionID() {
	m.session = nil
}

// SetTurn sets the "turn" field.
func (m *PromptEvaluationMutation) SetTurn(i int) {
	m.turn = &i
	m.addturn = nil
}

// Turn returns the value of the "turn" field in the mutation.
func (m *PromptEvaluationMutation) Turn() (r int, exists bool) {
	v := m.turn
	if v == nil {
		return
	}
	return *v, true
}

// OldTurn returns the old "turn" field's value of the PromptEvaluation entity.
// If the PromptEvaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptEvaluationMutation) OldTurn(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTurn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTurn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTurn: %w", err)
	}
	return oldValue.Turn, nil
}

// AddTurn adds i to the "turn" field.
func (m *PromptEvaluationMutation) AddTurn(i int) {
	if m.addturn != nil {
		*m.addturn += i
	} else {
		m.addturn = &i
	}
}

// AddedTurn returns the value that was added to the "turn" field in this mutation.
func (m *PromptEvaluationMutation) AddedTurn() (r int, exists bool) {
	v := m.addturn
	if v == nil {
		return
	}
	return *v, true
}

// ClearTurn clears the value of the "turn" field.
func (m *PromptEvaluationMutation) ClearTurn() {
	m.turn = nil
	m.addturn = nil
	m.clearedFields[promptevaluation.FieldTurn] = struct{}{}
}

// TurnCleared returns if the "turn" field was cleared in this mutation.
func (m *PromptEvaluationMutation) TurnCleared() bool {
	_, ok := m.clearedFields[promptevaluation.FieldTurn]
	return ok
}

// ResetTurn resets all changes to the "turn" field.
func (m *PromptEvaluationMutation) ResetTurn() {
	m.turn = nil
	m.addturn = nil
	delete(m.clearedFields, promptevaluation.FieldTurn)
}

// SetEvaluationType sets the "evaluation_type" field.
func (m *PromptEvaluationMutation) SetEvaluationType(pt promptevaluation.EvaluationType) {
	m.evaluation_type = &pt
}

// EvaluationType returns the value of the "evaluation_type" field in the mutation.
func (m *PromptEvaluationMutation) EvaluationType() (r promptevaluation.EvaluationType, exists bool) {
	v := m.evaluation_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEvaluationType returns the old "evaluation_type" field's value of the PromptEvaluation entity.
// If the PromptEvaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptEvaluationMutation) OldEvaluationType(ctx context.Context) (v promptevaluation.EvaluationType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEvaluationType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEvaluationType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEvaluationType: %w", err)
	}
	return oldValue.EvaluationType, nil
}

// ResetEvaluationType resets all changes to the "evaluation_type" field.
func (m *PromptEvaluationMutation) ResetEvaluationType() {
	m.evaluation_type = nil
}

// SetNodeName sets the "node_name" field.
func (m *PromptEvaluationMutation) SetNodeName(s string) {
	m.node_name = &s
}

// NodeName returns the value of the "node_name" field in the mutation.
func (m *PromptEvaluationMutation) NodeName() (r string, exists bool) {
	v := m.node_name
	if v == nil {
		return
	}
	return *v, true
}

// OldNodeName returns the old "node_name" field's value of the PromptEvaluation entity.
// If the PromptEvaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptEvaluationMutation) OldNodeName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNodeName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNodeName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNodeName: %w", err)
	}
	return oldValue.NodeName, nil
}

// ClearNodeName clears the value of the "node_name" field.
func (m *PromptEvaluationMutation) ClearNodeName() {
	m.node_name = nil
	m.clearedFields[promptevaluation.FieldNodeName] = struct{}{}
}

// NodeNameCleared returns if the "node_name" field was cleared in this mutation.
func (m *PromptEvaluationMutation) NodeNameCleared() bool {
	_, ok := m.clearedFields[promptevaluation.FieldNodeName]
	return ok
}

// ResetNodeName resets all changes to the "node_name" field.
func (m *PromptEvaluationMutation) ResetNodeName() {
	m.node_name = nil
	delete(m.clearedFields, promptevaluation.FieldNodeName)
}

// SetScore sets the "score" field.
func (m *PromptEvaluationMutation) SetScore(f float64) {
	m.score = &f
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *PromptEvaluationMutation) Score() (r float64, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the PromptEvaluation entity.
// If the PromptEvaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptEvaluationMutation) OldScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds f to the "score" field.
func (m *PromptEvaluationMutation) AddScore(f float64) {
	if m.addscore != nil {
		*m.addscore += f
	} else {
		m.addscore = &f
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *PromptEvaluationMutation) AddedScore() (r float64, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ResetScore resets all changes to the "score" field.
func (m *PromptEvaluationMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
}

// SetAnalysis sets the "analysis" field.
func (m *PromptEvaluationMutation) SetAnalysis(s string) {
	m.analysis = &s
}

// Analysis returns the value of the "analysis" field in the mutation.
func (m *PromptEvaluationMutation) Analysis() (r string, exists bool) {
	v := m.analysis
	if v == nil {
		return
	}
	return *v, true
}

// OldAnalysis returns the old "analysis" field's value of the PromptEvaluation entity.
// If the PromptEvaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptEvaluationMutation) OldAnalysis(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnalysis is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnalysis requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnalysis: %w", err)
	}
	return oldValue.Analysis, nil
}

// ClearAnalysis clears the value of the "analysis" field.
func (m *PromptEvaluationMutation) ClearAnalysis() {
	m.analysis = nil
	m.clearedFields[promptevaluation.FieldAnalysis] = struct{}{}
}

// AnalysisCleared returns if the "analysis" field was cleared in this mutation.
func (m *PromptEvaluationMutation) AnalysisCleared() bool {
	_, ok := m.clearedFields[promptevaluation.FieldAnalysis]
	return ok
}

// ResetAnalysis resets all changes to the "analysis" field.
func (m *PromptEvaluationMutation) ResetAnalysis() {
	m.analysis = nil
	delete(m.clearedFields, promptevaluation.FieldAnalysis)
}

// SetDetails sets the "details" field.
func (m *PromptEvaluationMutation) SetDetails(value map[string]interface{}) {
	m.details = &value
}

// Details returns the value of the "details" field in the mutation.
func (m *PromptEvaluationMutation) Details() (r map[string]interface{}, exists bool) {
	v := m.details
	if v == nil {
		return
	}
	return *v, true
}

// OldDetails returns the old "details" field's value of the PromptEvaluation entity.
// If the PromptEvaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptEvaluationMutation) OldDetails(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetails is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetails requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetails: %w", err)
	}
	return oldValue.Details, nil
}

// ClearDetails clears the value of the "details" field.
func (m *PromptEvaluationMutation) ClearDetails() {
	m.details = nil
	m.clearedFields[promptevaluation.FieldDetails] = struct{}{}
}

// DetailsCleared returns if the "details" field was cleared in this mutation.
func (m *PromptEvaluationMutation) DetailsCleared() bool {
	_, ok := m.clearedFields[promptevaluation.FieldDetails]
	return ok
}

// ResetDetails resets all changes to the "details" field.
func (m *PromptEvaluationMutation) ResetDetails() {
	m.details = nil
	delete(m.clearedFields, promptevaluation.FieldDetails)
}

// SetCreatedAt sets the "created_at" field.
func (m *PromptEvaluationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PromptEvaluationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PromptEvaluation entity.
// If the PromptEvaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptEvaluationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PromptEvaluationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearSession clears the "session" edge to the PromptSession entity.
func (m *PromptEvaluationMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[promptevaluation.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the PromptSession entity was cleared.
func (m *PromptEvaluationMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *PromptEvaluationMutation) SessionIDs() (ids []int) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *PromptEvaluationMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// Where appends a list predicates to the PromptEvaluationMutation builder.
func (m *PromptEvaluationMutation) Where(ps ...predicate.PromptEvaluation) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PromptEvaluationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PromptEvaluationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PromptEvaluation, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PromptEvaluationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PromptEvaluationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PromptEvaluation).
func (m *PromptEvaluationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PromptEvaluationMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.session != nil {
		fields = append(fields, promptevaluation.FieldSessionID)
	}
	if m.turn != nil {
		fields = append(fields, promptevaluation.FieldTurn)
	}
	if m.evaluation_type != nil {
		fields = append(fields, promptevaluation.FieldEvaluationType)
	}
	if m.node_name != nil {
		fields = append(fields, promptevaluation.FieldNodeName)
	}
	if m.score != nil {
		fields = append(fields, promptevaluation.FieldScore)
	}
	if m.analysis != nil {
		fields = append(fields, promptevaluation.FieldAnalysis)
	}
	if m.details != nil {
		fields = append(fields, promptevaluation.FieldDetails)
	}
	if m.created_at != nil {
		fields = append(fields, promptevaluation.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PromptEvaluationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case promptevaluation.FieldSessionID:
		return m.SessionID()
	case promptevaluation.FieldTurn:
		return m.Turn()
	case promptevaluation.FieldEvaluationType:
		return m.EvaluationType()
	case promptevaluation.FieldNodeName:
		return m.NodeName()
	case promptevaluation.FieldScore:
		return m.Score()
	case promptevaluation.FieldAnalysis:
		return m.Analysis()
	case promptevaluation.FieldDetails:
		return m.Details()
	case promptevaluation.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PromptEvaluationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case promptevaluation.FieldSessionID:
		return m.OldSessionID(ctx)
	case promptevaluation.FieldTurn:
		return m.OldTurn(ctx)
	case promptevaluation.FieldEvaluationType:
		return m.OldEvaluationType(ctx)
	case promptevaluation.FieldNodeName:
		return m.OldNodeName(ctx)
	case promptevaluation.FieldScore:
		return m.OldScore(ctx)
	case promptevaluation.FieldAnalysis:
		return m.OldAnalysis(ctx)
	case promptevaluation.FieldDetails:
		return m.OldDetails(ctx)
	case promptevaluation.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PromptEvaluation field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PromptEvaluationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case promptevaluation.FieldSessionID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case promptevaluation.FieldTurn:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTurn(v)
		return nil
	case promptevaluation.FieldEvaluationType:
		v, ok := value.(promptevaluation.EvaluationType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEvaluationType(v)
		return nil
	case promptevaluation.FieldNodeName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNodeName(v)
		return nil
	case promptevaluation.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	case promptevaluation.FieldAnalysis:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnalysis(v)
		return nil
	case promptevaluation.FieldDetails:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetails(v)
		return nil
	case promptevaluation.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PromptEvaluation field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PromptEvaluationMutation) AddedFields() []string {
	var fields []string
	if m.addturn != nil {
		fields = append(fields, promptevaluation.FieldTurn)
	}
	if m.addscore != nil {
		fields = append(fields, promptevaluation.FieldScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PromptEvaluationMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case promptevaluation.FieldTurn:
		return m.AddedTurn()
	case promptevaluation.FieldScore:
		return m.AddedScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PromptEvaluationMutation) AddField(name string, value ent.Value) error {
	switch name {
	case promptevaluation.FieldTurn:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTurn(v)
		return nil
	case promptevaluation.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	}
	return fmt.Errorf("unknown PromptEvaluation numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PromptEvaluationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(promptevaluation.FieldTurn) {
		fields = append(fields, promptevaluation.FieldTurn)
	}
	if m.FieldCleared(promptevaluation.FieldNodeName) {
		fields = append(fields, promptevaluation.FieldNodeName)
	}
	if m.FieldCleared(promptevaluation.FieldAnalysis) {
		fields = append(fields, promptevaluation.FieldAnalysis)
	}
	if m.FieldCleared(promptevaluation.FieldDetails) {
		fields = append(fields, promptevaluation.FieldDetails)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PromptEvaluationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PromptEvaluationMutation) ClearField(name string) error {
	switch name {
	case promptevaluation.FieldTurn:
		m.ClearTurn()
		return nil
	case promptevaluation.FieldNodeName:
		m.ClearNodeName()
		return nil
	case promptevaluation.FieldAnalysis:
		m.ClearAnalysis()
		return nil
	case promptevaluation.FieldDetails:
		m.ClearDetails()
		return nil
	}
	return fmt.Errorf("unknown PromptEvaluation nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PromptEvaluationMutation) ResetField(name string) error {
	switch name {
	case promptevaluation.FieldSessionID:
		m.ResetSessionID()
		return nil
	case promptevaluation.FieldTurn:
		m.ResetTurn()
		return nil
	case promptevaluation.FieldEvaluationType:
		m.ResetEvaluationType()
		return nil
	case promptevaluation.FieldNodeName:
		m.ResetNodeName()
		return nil
	case promptevaluation.FieldScore:
		m.ResetScore()
		return nil
	case promptevaluation.FieldAnalysis:
		m.ResetAnalysis()
		return nil
	case promptevaluation.FieldDetails:
		m.ResetDetails()
		return nil
	case promptevaluation.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown PromptEvaluation field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PromptEvaluationMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.session != nil {
		edges = append(edges, promptevaluation.EdgeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PromptEvaluationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case promptevaluation.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PromptEvaluationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PromptEvaluationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PromptEvaluationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsession {
		edges = append(edges, promptevaluation.EdgeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PromptEvaluationMutation) EdgeCleared(name string) bool {
	switch name {
	case promptevaluation.EdgeSession:
		return m.clearedsession
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PromptEvaluationMutation) ClearEdge(name string) error {
	switch name {
	case promptevaluation.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown PromptEvaluation unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PromptEvaluationMutation) ResetEdge(name string) error {
	switch name {
	case promptevaluation.EdgeSession:
		m.ResetSession()
		return nil
	}
	return fmt.Errorf("unknown PromptEvaluation edge %s", name)
}

// PromptMessageMutation represents an operation that mutates the PromptMessage nodes in the graph.
type PromptMessageMutation struct {
	config
	op             Op
	typ            string
	id             *int
	turn           *int
	addturn        *int
	role           *promptmessage.Role
	content        *string
	token_count    *int
	addtoken_count *int
	meta           *map[string]interface{}
	created_at     *time.Time
	clearedFields  map[string]struct{}
	session        *int
	clearedsession bool
	done           bool
	oldValue       func(context.Context) (*PromptMessage, error)
	predicates     []predicate.PromptMessage
}

var _ ent.Mutation = (*PromptMessageMutation)(nil)

// promptmessageOption allows management of the mutation configuration using functional options.
type promptmessageOption func(*PromptMessageMutation)

// newPromptMessageMutation creates new mutation for the PromptMessage entity.
func newPromptMessageMutation(c config, op Op, opts ...promptmessageOption) *PromptMessageMutation {
	m := &PromptMessageMutation{
		config:        c,
		op:            op,
		typ:           TypePromptMessage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPromptMessageID sets the ID field of the mutation.
func withPromptMessageID(id int) promptmessageOption {
	return func(m *PromptMessageMutation) {
		var (
			err   error
			once  sync.Once
			value *PromptMessage
		)
		m.oldValue = func(ctx context.Context) (*PromptMessage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PromptMessage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPromptMessage sets the old PromptMessage of the mutation.
func withPromptMessage(node *PromptMessage) promptmessageOption {
	return func(m *PromptMessageMutation) {
		m.oldValue = func(context.Context) (*PromptMessage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PromptMessageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PromptMessageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PromptMessageMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PromptMessageMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PromptMessage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *PromptMessageMutation) SetSessionID(i int) {
	m.session = &i
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *PromptMessageMutation) SessionID() (r int, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the PromptMessage entity.
// If the PromptMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptMessageMutation) OldSessionID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *PromptMessageMutation) ResetSessionID() {
	m.session = nil
}

// SetTurn sets the "turn" field.
func (m *PromptMessageMutation) SetTurn(i int) {
	m.turn = &i
	m.addturn = nil
}

// Turn returns the value of the "turn" field in the mutation.
func (m *PromptMessageMutation) Turn() (r int, exists bool) {
	v := m.turn
	if v == nil {
		return
	}
	return *v, true
}

// OldTurn returns the old "turn" field's value of the PromptMessage entity.
// If the PromptMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptMessageMutation) OldTurn(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTurn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTurn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTurn: %w", err)
	}
	return oldValue.Turn, nil
}

// AddTurn adds i to the "turn" field.
func (m *PromptMessageMutation) AddTurn(i int) {
	if m.addturn != nil {
		*m.addturn += i
	} else {
		m.addturn = &i
	}
}

// AddedTurn returns the value that was added to the "turn" field in this mutation.
func (m *PromptMessageMutation) AddedTurn() (r int, exists bool) {
	v := m.addturn
	if v == nil {
		return
	}
	return *v, true
}

// ResetTurn resets all changes to the "turn" field.
func (m *PromptMessageMutation) ResetTurn() {
	m.turn = nil
	m.addturn = nil
}

// SetRole sets the "role" field.
func (m *PromptMessageMutation) SetRole(pr promptmessage.Role) {
	m.role = &pr
}

// Role returns the value of the "role" field in the mutation.
func (m *PromptMessageMutation) Role() (r promptmessage.Role, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the PromptMessage entity.
// If the PromptMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptMessageMutation) OldRole(ctx context.Context) (v promptmessage.Role, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *PromptMessageMutation) ResetRole() {
	m.role = nil
}

// SetContent sets the "content" field.
func (m *PromptMessageMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *PromptMessageMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the PromptMessage entity.
// If the PromptMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptMessageMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *PromptMessageMutation) ResetContent() {
	m.content = nil
}

// SetTokenCount sets the "token_count" field.
func (m *PromptMessageMutation) SetTokenCount(i int) {
	m.token_count = &i
	m.addtoken_count = nil
}

// TokenCount returns the value of the "token_count" field in the mutation.
func (m *PromptMessageMutation) TokenCount() (r int, exists bool) {
	v := m.token_count
	if v == nil {
		return
	}
	return *v, true
}

// OldTokenCount returns the old "token_count" field's value of the PromptMessage entity.
// If the PromptMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptMessageMutation) OldTokenCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokenCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokenCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokenCount: %w", err)
	}
	return oldValue.TokenCount, nil
}

// AddTokenCount adds i to the "token_count" field.
func (m *PromptMessageMutation) AddTokenCount(i int) {
	if m.addtoken_count != nil {
		*m.addtoken_count += i
	} else {
		m.addtoken_count = &i
	}
}

// AddedTokenCount returns the value that was added to the "token_count" field in this mutation.
func (m *PromptMessageMutation) AddedTokenCount() (r int, exists bool) {
	v := m.addtoken_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetTokenCount resets all changes to the "token_count" field.
func (m *PromptMessageMutation) ResetTokenCount() {
	m.token_count = nil
	m.addtoken_count = nil
}

// SetMeta sets the "meta" field.
func (m *PromptMessageMutation) SetMeta(value map[string]interface{}) {
	m.meta = &value
}

// Meta returns the value of the "meta" field in the mutation.
func (m *PromptMessageMutation) Meta() (r map[string]interface{}, exists bool) {
	v := m.meta
	if v == nil {
		return
	}
	return *v, true
}

// OldMeta returns the old "meta" field's value of the PromptMessage entity.
// If the PromptMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptMessageMutation) OldMeta(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMeta is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMeta requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMeta: %w", err)
	}
	return oldValue.Meta, nil
}

// ClearMeta clears the value of the "meta" field.
func (m *PromptMessageMutation) ClearMeta() {
	m.meta = nil
	m.clearedFields[promptmessage.FieldMeta] = struct{}{}
}

// MetaCleared returns if the "meta" field was cleared in this mutation.
func (m *PromptMessageMutation) MetaCleared() bool {
	_, ok := m.clearedFields[promptmessage.FieldMeta]
	return ok
}

// ResetMeta resets all changes to the "meta" field.
func (m *PromptMessageMutation) ResetMeta() {
	m.meta = nil
	delete(m.clearedFields, promptmessage.FieldMeta)
}

// SetCreatedAt sets the "created_at" field.
func (m *PromptMessageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PromptMessageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PromptMessage entity.
// If the PromptMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptMessageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PromptMessageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearSession clears the "session" edge to the PromptSession entity.
func (m *PromptMessageMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[promptmessage.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the PromptSession entity was cleared.
func (m *PromptMessageMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *PromptMessageMutation) SessionIDs() (ids []int) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *PromptMessageMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// Where appends a list predicates to the PromptMessageMutation builder.
func (m *PromptMessageMutation) Where(ps ...predicate.PromptMessage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PromptMessageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PromptMessageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PromptMessage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PromptMessageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PromptMessageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PromptMessage).
func (m *PromptMessageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PromptMessageMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.session != nil {
		fields = append(fields, promptmessage.FieldSessionID)
	}
	if m.turn != nil {
		fields = append(fields, promptmessage.FieldTurn)
	}
	if m.role != nil {
		fields = append(fields, promptmessage.FieldRole)
	}
	if m.content != nil {
		fields = append(fields, promptmessage.FieldContent)
	}
	if m.token_count != nil {
		fields = append(fields, promptmessage.FieldTokenCount)
	}
	if m.meta != nil {
		fields = append(fields, promptmessage.FieldMeta)
	}
	if m.created_at != nil {
		fields = append(fields, promptmessage.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PromptMessageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case promptmessage.FieldSessionID:
		return m.SessionID()
	case promptmessage.FieldTurn:
		return m.Turn()
	case promptmessage.FieldRole:
		return m.Role()
	case promptmessage.FieldContent:
		return m.Content()
	case promptmessage.FieldTokenCount:
		return m.TokenCount()
	case promptmessage.FieldMeta:
		return m.Meta()
	case promptmessage.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PromptMessageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case promptmessage.FieldSessionID:
		return m.OldSessionID(ctx)
	case promptmessage.FieldTurn:
		return m.OldTurn(ctx)
	case promptmessage.FieldRole:
		return m.OldRole(ctx)
	case promptmessage.FieldContent:
		return m.OldContent(ctx)
	case promptmessage.FieldTokenCount:
		return m.OldTokenCount(ctx)
	case promptmessage.FieldMeta:
		return m.OldMeta(ctx)
	case promptmessage.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PromptMessage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PromptMessageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case promptmessage.FieldSessionID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case promptmessage.FieldTurn:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTurn(v)
		return nil
	case promptmessage.FieldRole:
		v, ok := value.(promptmessage.Role)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case promptmessage.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case promptmessage.FieldTokenCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokenCount(v)
		return nil
	case promptmessage.FieldMeta:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMeta(v)
		return nil
	case promptmessage.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PromptMessage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PromptMessageMutation) AddedFields() []string {
	var fields []string
	if m.addturn != nil {
		fields = append(fields, promptmessage.FieldTurn)
	}
	if m.addtoken_count != nil {
		fields = append(fields, promptmessage.FieldTokenCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PromptMessageMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case promptmessage.FieldTurn:
		return m.AddedTurn()
	case promptmessage.FieldTokenCount:
		return m.AddedTokenCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PromptMessageMutation) AddField(name string, value ent.Value) error {
	switch name {
	case promptmessage.FieldTurn:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTurn(v)
		return nil
	case promptmessage.FieldTokenCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTokenCount(v)
		return nil
	}
	return fmt.Errorf("unknown PromptMessage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PromptMessageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(promptmessage.FieldMeta) {
		fields = append(fields, promptmessage.FieldMeta)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PromptMessageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PromptMessageMutation) ClearField(name string) error {
	switch name {
	case promptmessage.FieldMeta:
		m.ClearMeta()
		return nil
	}
	return fmt.Errorf("unknown PromptMessage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PromptMessageMutation) ResetField(name string) error {
	switch name {
	case promptmessage.FieldSessionID:
		m.ResetSessionID()
		return nil
	case promptmessage.FieldTurn:
		m.ResetTurn()
		return nil
	case promptmessage.FieldRole:
		m.ResetRole()
		return nil
	case promptmessage.FieldContent:
		m.ResetContent()
		return nil
	case promptmessage.FieldTokenCount:
		m.ResetTokenCount()
		return nil
	case promptmessage.FieldMeta:
		m.ResetMeta()
		return nil
	case promptmessage.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown PromptMessage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PromptMessageMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.session != nil {
		edges = append(edges, promptmessage.EdgeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PromptMessageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case promptmessage.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PromptMessageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PromptMessageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PromptMessageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsession {
		edges = append(edges, promptmessage.EdgeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PromptMessageMutation) EdgeCleared(name string) bool {
	switch name {
	case promptmessage.EdgeSession:
		return m.clearedsession
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PromptMessageMutation) ClearEdge(name string) error {
	switch name {
	case promptmessage.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown PromptMessage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PromptMessageMutation) ResetEdge(name string) error {
	switch name {
	case promptmessage.EdgeSession:
		m.ResetSession()
		return nil
	}
	return fmt.Errorf("unknown PromptMessage edge %s", name)
}

// PromptSessionMutation represents an operation that mutates the PromptSession nodes in the graph.
type PromptSessionMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	exam_id            *int
	addexam_id         *int
	participant_id     *int
	addparticipant_id  *int
	spec_id            *int
	addspec_id         *int
	started_at         *time.Time
	ended_at           *time.Time
	total_tokens       *int
	addtotal_tokens    *int
	clearedFields      map[string]struct{}
	messages           map[int]struct{}
	removedmessages    map[int]struct{}
	clearedmessages    bool
	evaluations        map[int]struct{}
	removedevaluations map[int]struct{}
	clearedevaluations bool
	submissions        map[int]struct{}
	removedsubmissions map[int]struct{}
	clearedsubmissions bool
	done               bool
	oldValue           func(context.Context) (*PromptSession, error)
	predicates         []predicate.PromptSession
}

var _ ent.Mutation = (*PromptSessionMutation)(nil)

// promptsessionOption allows management of the mutation configuration using functional options.
type promptsessionOption func(*PromptSessionMutation)

// newPromptSessionMutation creates new mutation for the PromptSession entity.
func newPromptSessionMutation(c config, op Op, opts ...promptsessionOption) *PromptSessionMutation {
	m := &PromptSessionMutation{
		config:        c,
		op:            op,
		typ:           TypePromptSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPromptSessionID sets the ID field of the mutation.
func withPromptSessionID(id int) promptsessionOption {
	return func(m *PromptSessionMutation) {
		var (
			err   error
			once  sync.Once
			value *PromptSession
		)
		m.oldValue = func(ctx context.Context) (*PromptSession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PromptSession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPromptSession sets the old PromptSession of the mutation.
func withPromptSession(node *PromptSession) promptsessionOption {
	return func(m *PromptSessionMutation) {
		m.oldValue = func(context.Context) (*PromptSession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PromptSessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PromptSessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PromptSessionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PromptSessionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PromptSession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetExamID sets the "exam_id" field.
func (m *PromptSessionMutation) SetExamID(i int) {
	m.exam_id = &i
	m.addexam_id = nil
}

// ExamID returns the value of the "exam_id" field in the mutation.
func (m *PromptSessionMutation) ExamID() (r int, exists bool) {
	v := m.exam_id
	if v == nil {
		return
	}
	return *v, true
}

// OldExamID returns the old "exam_id" field's value of the PromptSession entity.
// If the PromptSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptSessionMutation) OldExamID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExamID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExamID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExamID: %w", err)
	}
	return oldValue.ExamID, nil
}

// AddExamID adds i to the "exam_id" field.
func (m *PromptSessionMutation) AddExamID(i int) {
	if m.addexam_id != nil {
		*m.addexam_id += i
	} else {
		m.addexam_id = &i
	}
}

// AddedExamID returns the value that was added to the "exam_id" field in this mutation.
func (m *PromptSessionMutation) AddedExamID() (r int, exists bool) {
	v := m.addexam_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetExamID resets all changes to the "exam_id" field.
func (m *PromptSessionMutation) ResetExamID() {
	m.exam_id = nil
	m.addexam_id = nil
}

// SetParticipantID sets the "participant_id" field.
func (m *PromptSessionMutation) SetParticipantID(i int) {
	m.participant_id = &i
	m.addparticipant_id = nil
}

// ParticipantID returns the value of the "participant_id" field in the mutation.
func (m *PromptSessionMutation) ParticipantID() (r int, exists bool) {
	v := m.participant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldParticipantID returns the old "participant_id" field's value of the PromptSession entity.
// If the PromptSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptSessionMutation) OldParticipantID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParticipantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParticipantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParticipantID: %w", err)
	}
	return oldValue.ParticipantID, nil
}

// AddParticipantID adds i to the "participant_id" field.
func (m *PromptSessionMutation) AddParticipantID(i int) {
	if m.addparticipant_id != nil {
		*m.addparticipant_id += i
	} else {
		m.addparticipant_id = &i
	}
}

// AddedParticipantID returns the value that was added to the "participant_id" field in this mutation.
func (m *PromptSessionMutation) AddedParticipantID() (r int, exists bool) {
	v := m.addparticipant_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetParticipantID resets all changes to the "participant_id" field.
func (m *PromptSessionMutation) ResetParticipantID() {
	m.participant_id = nil
	m.addparticipant_id = nil
}

// SetSpecID sets the "spec_id" field.
func (m *PromptSessionMutation) SetSpecID(i int) {
	m.spec_id = &i
	m.addspec_id = nil
}

// SpecID returns the value of the "spec_id" field in the mutation.
func (m *PromptSessionMutation) SpecID() (r int, exists bool) {
	v := m.spec_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSpecID returns the old "spec_id" field's value of the PromptSession entity.
// If the PromptSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptSessionMutation) OldSpecID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSpecID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSpecID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSpecID: %w", err)
	}
	return oldValue.SpecID, nil
}

// AddSpecID adds i to the "spec_id" field.
func (m *PromptSessionMutation) AddSpecID(i int) {
	if m.addspec_id != nil {
		*m.addspec_id += i
	} else {
		m.addspec_id = &i
	}
}

// AddedSpecID returns the value that was added to the "spec_id" field in this mutation.
func (m *PromptSessionMutation) AddedSpecID() (r int, exists bool) {
	v := m.addspec_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetSpecID resets all changes to the "spec_id" field.
func (m *PromptSessionMutation) ResetSpecID() {
	m.spec_id = nil
	m.addspec_id = nil
}

// SetStartedAt sets the "started_at" field.
func (m *PromptSessionMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *PromptSessionMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the PromptSession entity.
// If the PromptSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptSessionMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *PromptSessionMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetEndedAt sets the "ended_at" field.
func (m *PromptSessionMutation) SetEndedAt(t time.Time) {
	m.ended_at = &t
}

// EndedAt returns the value of the "ended_at" field in the mutation.
func (m *PromptSessionMutation) EndedAt() (r time.Time, exists bool) {
	v := m.ended_at
	if v == nil {
		return
	}
	return *v, true
}

// OldEndedAt returns the old "ended_at" field's value of the PromptSession entity.
// If the PromptSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptSessionMutation) OldEndedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndedAt: %w", err)
	}
	return oldValue.EndedAt, nil
}

// ClearEndedAt clears the value of the "ended_at" field.
func (m *PromptSessionMutation) ClearEndedAt() {
	m.ended_at = nil
	m.clearedFields[promptsession.FieldEndedAt] = struct{}{}
}

// EndedAtCleared returns if the "ended_at" field was cleared in this mutation.
func (m *PromptSessionMutation) EndedAtCleared() bool {
	_, ok := m.clearedFields[promptsession.FieldEndedAt]
	return ok
}

// ResetEndedAt resets all changes to the "ended_at" field.
func (m *PromptSessionMutation) ResetEndedAt() {
	m.ended_at = nil
	delete(m.clearedFields, promptsession.FieldEndedAt)
}

// SetTotalTokens sets the "total_tokens" field.
func (m *PromptSessionMutation) SetTotalTokens(i int) {
	m.total_tokens = &i
	m.addtotal_tokens = nil
}

// TotalTokens returns the value of the "total_tokens" field in the mutation.
func (m *PromptSessionMutation) TotalTokens() (r int, exists bool) {
	v := m.total_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalTokens returns the old "total_tokens" field's value of the PromptSession entity.
// If the PromptSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptSessionMutation) OldTotalTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalTokens: %w", err)
	}
	return oldValue.TotalTokens, nil
}

// AddTotalTokens adds i to the "total_tokens" field.
func (m *PromptSessionMutation) AddTotalTokens(i int) {
	if m.addtotal_tokens != nil {
		*m.addtotal_tokens += i
	} else {
		m.addtotal_tokens = &i
	}
}

// AddedTotalTokens returns the value that was added to the "total_tokens" field in this mutation.
func (m *PromptSessionMutation) AddedTotalTokens() (r int, exists bool) {
	v := m.addtotal_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalTokens resets all changes to the "total_tokens" field.
func (m *PromptSessionMutation) ResetTotalTokens() {
	m.total_tokens = nil
	m.addtotal_tokens = nil
}

// AddMessageIDs adds the "messages" edge to the PromptMessage entity by ids.
func (m *PromptSessionMutation) AddMessageIDs(ids ...int) {
	if m.messages == nil {
		m.messages = make(map[int]struct{})
	}
	for i := range ids {
		m.messages[ids[i]] = struct{}{}
	}
}

// ClearMessages clears the "messages" edge to the PromptMessage entity.
func (m *PromptSessionMutation) ClearMessages() {
	m.clearedmessages = true
}

// MessagesCleared reports if the "messages" edge to the PromptMessage entity was cleared.
func (m *PromptSessionMutation) MessagesCleared() bool {
	return m.clearedmessages
}

// RemoveMessageIDs removes the "messages" edge to the PromptMessage entity by IDs.
func (m *PromptSessionMutation) RemoveMessageIDs(ids ...int) {
	if m.removedmessages == nil {
		m.removedmessages = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.messages, ids[i])
		m.removedmessages[ids[i]] = struct{}{}
	}
}

// RemovedMessages returns the removed IDs of the "messages" edge to the PromptMessage entity.
func (m *PromptSessionMutation) RemovedMessagesIDs() (ids []int) {
	for id := range m.removedmessages {
		ids = append(ids, id)
	}
	return
}

// MessagesIDs returns the "messages" edge IDs in the mutation.
func (m *PromptSessionMutation) MessagesIDs() (ids []int) {
	for id := range m.messages {
		ids = append(ids, id)
	}
	return
}

// ResetMessages resets all changes to the "messages" edge.
func (m *PromptSessionMutation) ResetMessages() {
	m.messages = nil
	m.clearedmessages = false
	m.removedmessages = nil
}

// AddEvaluationIDs adds the "evaluations" edge to the PromptEvaluation entity by ids.
func (m *PromptSessionMutation) AddEvaluationIDs(ids ...int) {
	if m.evaluations == nil {
		m.evaluations = make(map[int]struct{})
	}
	for i := range ids {
		m.evaluations[ids[i]] = struct{}{}
	}
}

// ClearEvaluations clears the "evaluations" edge to the PromptEvaluation entity.
func (m *PromptSessionMutation) ClearEvaluations() {
	m.clearedevaluations = true
}

// EvaluationsCleared reports if the "evaluations" edge to the PromptEvaluation entity was cleared.
func (m *PromptSessionMutation) EvaluationsCleared() bool {
	return m.clearedevaluations
}

// RemoveEvaluationIDs removes the "evaluations" edge to the PromptEvaluation entity by IDs.
func (m *PromptSessionMutation) RemoveEvaluationIDs(ids ...int) {
	if m.removedevaluations == nil {
		m.removedevaluations = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.evaluations, ids[i])
		m.removedevaluations[ids[i]] = struct{}{}
	}
}

// RemovedEvaluations returns the removed IDs of the "evaluations" edge to the PromptEvaluation entity.
func (m *PromptSessionMutation) RemovedEvaluationsIDs() (ids []int) {
	for id := range m.removedevaluations {
		ids = append(ids, id)
	}
	return
}

// EvaluationsIDs returns the "evaluations" edge IDs in the mutation.
func (m *PromptSessionMutation) EvaluationsIDs() (ids []int) {
	for id := range m.evaluations {
		ids = append(ids, id)
	}
	return
}

// ResetEvaluations resets all changes to the "evaluations" edge.
func (m *PromptSessionMutation) ResetEvaluations() {
	m.evaluations = nil
	m.clearedevaluations = false
	m.removedevaluations = nil
}

// AddSubmissionIDs adds the "submissions" edge to the Submission entity by ids.
func (m *PromptSessionMutation) AddSubmissionIDs(ids ...int) {
	if m.submissions == nil {
		m.submissions = make(map[int]struct{})
	}
	for i := range ids {
		m.submissions[ids[i]] = struct{}{}
	}
}

// ClearSubmissions clears the "submissions" edge to the Submission entity.
func (m *PromptSessionMutation) ClearSubmissions() {
	m.clearedsubmissions = true
}

// SubmissionsCleared reports if the "submissions" edge to the Submission entity was cleared.
func (m *PromptSessionMutation) SubmissionsCleared() bool {
	return m.clearedsubmissions
}

// RemoveSubmissionIDs removes the "submissions" edge to the Submission entity by IDs.
func (m *PromptSessionMutation) RemoveSubmissionIDs(ids ...int) {
	if m.removedsubmissions == nil {
		m.removedsubmissions = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.submissions, ids[i])
		m.removedsubmissions[ids[i]] = struct{}{}
	}
}

// RemovedSubmissions returns the removed IDs of the "submissions" edge to the Submission entity.
func (m *PromptSessionMutation) RemovedSubmissionsIDs() (ids []int) {
	for id := range m.removedsubmissions {
		ids = append(ids, id)
	}
	return
}

// SubmissionsIDs returns the "submissions" edge IDs in the mutation.
func (m *PromptSessionMutation) SubmissionsIDs() (ids []int) {
	for id := range m.submissions {
		ids = append(ids, id)
	}
	return
}

// ResetSubmissions resets all changes to the "submissions" edge.
func (m *PromptSessionMutation) ResetSubmissions() {
	m.submissions = nil
	m.clearedsubmissions = false
	m.removedsubmissions = nil
}

// Where appends a list predicates to the PromptSessionMutation builder.
func (m *PromptSessionMutation) Where(ps ...predicate.PromptSession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PromptSessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PromptSessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PromptSession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PromptSessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PromptSessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PromptSession).
func (m *PromptSessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PromptSessionMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.exam_id != nil {
		fields = append(fields, promptsession.FieldExamID)
	}
	if m.participant_id != nil {
		fields = append(fields, promptsession.FieldParticipantID)
	}
	if m.spec_id != nil {
		fields = append(fields, promptsession.FieldSpecID)
	}
	if m.started_at != nil {
		fields = append(fields, promptsession.FieldStartedAt)
	}
	if m.ended_at != nil {
		fields = append(fields, promptsession.FieldEndedAt)
	}
	if m.total_tokens != nil {
		fields = append(fields, promptsession.FieldTotalTokens)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PromptSessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case promptsession.FieldExamID:
		return m.ExamID()
	case promptsession.FieldParticipantID:
		return m.ParticipantID()
	case promptsession.FieldSpecID:
		return m.SpecID()
	case promptsession.FieldStartedAt:
		return m.StartedAt()
	case promptsession.FieldEndedAt:
		return m.EndedAt()
	case promptsession.FieldTotalTokens:
		return m.TotalTokens()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PromptSessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case promptsession.FieldExamID:
		return m.OldExamID(ctx)
	case promptsession.FieldParticipantID:
		return m.OldParticipantID(ctx)
	case promptsession.FieldSpecID:
		return m.OldSpecID(ctx)
	case promptsession.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case promptsession.FieldEndedAt:
		return m.OldEndedAt(ctx)
	case promptsession.FieldTotalTokens:
		return m.OldTotalTokens(ctx)
	}
	return nil, fmt.Errorf("unknown PromptSession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PromptSessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case promptsession.FieldExamID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExamID(v)
		return nil
	case promptsession.FieldParticipantID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParticipantID(v)
		return nil
	case promptsession.FieldSpecID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSpecID(v)
		return nil
	case promptsession.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case promptsession.FieldEndedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndedAt(v)
		return nil
	case promptsession.FieldTotalTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalTokens(v)
		return nil
	}
	return fmt.Errorf("unknown PromptSession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PromptSessionMutation) AddedFields() []string {
	var fields []string
	if m.addexam_id != nil {
		fields = append(fields, promptsession.FieldExamID)
	}
	if m.addparticipant_id != nil {
		fields = append(fields, promptsession.FieldParticipantID)
	}
	if m.addspec_id != nil {
		fields = append(fields, promptsession.FieldSpecID)
	}
	if m.addtotal_tokens != nil {
		fields = append(fields, promptsession.FieldTotalTokens)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PromptSessionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case promptsession.FieldExamID:
		return m.AddedExamID()
	case promptsession.FieldParticipantID:
		return m.AddedParticipantID()
	case promptsession.FieldSpecID:
		return m.AddedSpecID()
	case promptsession.FieldTotalTokens:
		return m.AddedTotalTokens()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PromptSessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case promptsession.FieldExamID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExamID(v)
		return nil
	case promptsession.FieldParticipantID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddParticipantID(v)
		return nil
	case promptsession.FieldSpecID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSpecID(v)
		return nil
	case promptsession.FieldTotalTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalTokens(v)
		return nil
	}
	return fmt.Errorf("unknown PromptSession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PromptSessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(promptsession.FieldEndedAt) {
		fields = append(fields, promptsession.FieldEndedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PromptSessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PromptSessionMutation) ClearField(name string) error {
	switch name {
	case promptsession.FieldEndedAt:
		m.ClearEndedAt()
		return nil
	}
	return fmt.Errorf("unknown PromptSession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PromptSessionMutation) ResetField(name string) error {
	switch name {
	case promptsession.FieldExamID:
		m.ResetExamID()
		return nil
	case promptsession.FieldParticipantID:
		m.ResetParticipantID()
		return nil
	case promptsession.FieldSpecID:
		m.ResetSpecID()
		return nil
	case promptsession.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case promptsession.FieldEndedAt:
		m.ResetEndedAt()
		return nil
	case promptsession.FieldTotalTokens:
		m.ResetTotalTokens()
		return nil
	}
	return fmt.Errorf("unknown PromptSession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PromptSessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.messages != nil {
		edges = append(edges, promptsession.EdgeMessages)
	}
	if m.evaluations != nil {
		edges = append(edges, promptsession.EdgeEvaluations)
	}
	if m.submissions != nil {
		edges = append(edges, promptsession.EdgeSubmissions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PromptSessionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case promptsession.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.messages))
		for id := range m.messages {
			ids = append(ids, id)
		}
		return ids
	case promptsession.EdgeEvaluations:
		ids := make([]ent.Value, 0, len(m.evaluations))
		for id := range m.evaluations {
			ids = append(ids, id)
		}
		return ids
	case promptsession.EdgeSubmissions:
		ids := make([]ent.Value, 0, len(m.submissions))
		for id := range m.submissions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PromptSessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedmessages != nil {
		edges = append(edges, promptsession.EdgeMessages)
	}
	if m.removedevaluations != nil {
		edges = append(edges, promptsession.EdgeEvaluations)
	}
	if m.removedsubmissions != nil {
		edges = append(edges, promptsession.EdgeSubmissions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PromptSessionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case promptsession.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.removedmessages))
		for id := range m.removedmessages {
			ids = append(ids, id)
		}
		return ids
	case promptsession.EdgeEvaluations:
		ids := make([]ent.Value, 0, len(m.removedevaluations))
		for id := range m.removedevaluations {
			ids = append(ids, id)
		}
		return ids
	case promptsession.EdgeSubmissions:
		ids := make([]ent.Value, 0, len(m.removedsubmissions))
		for id := range m.removedsubmissions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PromptSessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedmessages {
		edges = append(edges, promptsession.EdgeMessages)
	}
	if m.clearedevaluations {
		edges = append(edges, promptsession.EdgeEvaluations)
	}
	if m.clearedsubmissions {
		edges = append(edges, promptsession.EdgeSubmissions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PromptSessionMutation) EdgeCleared(name string) bool {
	switch name {
	case promptsession.EdgeMessages:
		return m.clearedmessages
	case promptsession.EdgeEvaluations:
		return m.clearedevaluations
	case promptsession.EdgeSubmissions:
		return m.clearedsubmissions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PromptSessionMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown PromptSession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PromptSessionMutation) ResetEdge(name string) error {
	switch name {
	case promptsession.EdgeMessages:
		m.ResetMessages()
		return nil
	case promptsession.EdgeEvaluations:
		m.ResetEvaluations()
		return nil
	case promptsession.EdgeSubmissions:
		m.ResetSubmissions()
		return nil
	}
	return fmt.Errorf("unknown PromptSession edge %s", name)
}

// ScoreMutation represents an operation that mutates the Score nodes in the graph.
type ScoreMutation struct {
	config
	op                   Op
	typ                  string
	id                   *int
	session_id           *int
	addsession_id        *int
	prompt_score         *float64
	addprompt_score      *float64
	performance_score    *float64
	addperformance_score *float64
	correctness_score    *float64
	addcorrectness_score *float64
	total_score          *float64
	addtotal_score       *float64
	grade                *string
	rubric               *map[string]interface{}
	created_at           *time.Time
	clearedFields        map[string]struct{}
	submission           *int
	clearedsubmission    bool
	done                 bool
	oldValue             func(context.Context) (*Score, error)
	predicates           []predicate.Score
}

var _ ent.Mutation = (*ScoreMutation)(nil)

// scoreOption allows management of the mutation configuration using functional options.
type scoreOption func(*ScoreMutation)

// newScoreMutation creates new mutation for the Score entity.
func newScoreMutation(c config, op Op, opts ...scoreOption) *ScoreMutation {
	m := &ScoreMutation{
		config:        c,
		op:            op,
		typ:           TypeScore,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withScoreID sets the ID field of the mutation.
func withScoreID(id int) scoreOption {
	return func(m *ScoreMutation) {
		var (
			err   error
			once  sync.Once
			value *Score
		)
		m.oldValue = func(ctx context.Context) (*Score, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Score.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withScore sets the old Score of the mutation.
func withScore(node *Score) scoreOption {
	return func(m *ScoreMutation) {
		m.oldValue = func(context.Context) (*Score, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ScoreMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ScoreMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ScoreMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ScoreMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Score.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSubmissionID sets the "submission_id" field.
func (m *ScoreMutation) SetSubmissionID(i int) {
	m.submission = &i
}

// SubmissionID returns the value of the "submission_id" field in the mutation.
func (m *ScoreMutation) SubmissionID() (r int, exists bool) {
	v := m.submission
	if v == nil {
		return
	}
	return *v, true
}

// OldSubmissionID returns the old "submission_id" field's value of the Score entity.
// If the Score object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScoreMutation) OldSubmissionID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubmissionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubmissionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubmissionID: %w", err)
	}
	return oldValue.SubmissionID, nil
}

// ResetSubmissionID resets all changes to the "submission_id" field.
func (m *ScoreMutation) ResetSubmissionID() {
	m.submission = nil
}

// SetSessionID sets the "session_id" field.
func (m *ScoreMutation) SetSessionID(i int) {
	m.session_id = &i
	m.addsession_id = nil
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *ScoreMutation) SessionID() (r int, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the Score entity.
// If the Score object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScoreMutation) OldSessionID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// AddSessionID adds i to the "session_id" field.
func (m *ScoreMutation) AddSessionID(i int) {
	if m.addsession_id != nil {
		*m.addsession_id += i
	} else {
		m.addsession_id = &i
	}
}

// AddedSessionID returns the value that was added to the "session_id" field in this mutation.
func (m *ScoreMutation) AddedSessionID() (r int, exists bool) {
	v := m.addsession_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *ScoreMutation) ResetSessionID() {
	m.session_id = nil
	m.addsession_id = nil
}

// SetPromptScore sets the "prompt_score" field.
func (m *ScoreMutation) SetPromptScore(f float64) {
	m.prompt_score = &f
	m.addprompt_score = nil
}

// PromptScore returns the value of the "prompt_score" field in the mutation.
func (m *ScoreMutation) PromptScore() (r float64, exists bool) {
	v := m.prompt_score
	if v == nil {
		return
	}
	return *v, true
}

// OldPromptScore returns the old "prompt_score" field's value of the Score entity.
// If the Score object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScoreMutation) OldPromptScore(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPromptScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPromptScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPromptScore: %w", err)
	}
	return oldValue.PromptScore, nil
}

// AddPromptScore adds f to the "prompt_score" field.
func (m *ScoreMutation) AddPromptScore(f float64) {
	if m.addprompt_score != nil {
		*m.addprompt_score += f
	} else {
		m.addprompt_score = &f
	}
}

// AddedPromptScore returns the value that was added to the "prompt_score" field in this mutation.
func (m *ScoreMutation) AddedPromptScore() (r float64, exists bool) {
	v := m.addprompt_score
	if v == nil {
		return
	}
	return *v, true
}

// ClearPromptScore clears the value of the "prompt_score" field.
func (m *ScoreMutation) ClearPromptScore() {
	m.prompt_score = nil
	m.addprompt_score = nil
	m.clearedFields[score.FieldPromptScore] = struct{}{}
}

// PromptScoreCleared returns if the "prompt_score" field was cleared in this mutation.
func (m *ScoreMutation) PromptScoreCleared() bool {
	_, ok := m.clearedFields[score.FieldPromptScore]
	return ok
}

// ResetPromptScore resets all changes to the "prompt_score" field.
func (m *ScoreMutation) ResetPromptScore() {
	m.prompt_score = nil
	m.addprompt_score = nil
	delete(m.clearedFields, score.FieldPromptScore)
}

// SetPerformanceScore sets the "performance_score" field.
func (m *ScoreMutation) SetPerformanceScore(f float64) {
	m.performance_score = &f
	m.addperformance_score = nil
}

// PerformanceScore returns the value of the "performance_score" field in the mutation.
func (m *ScoreMutation) PerformanceScore() (r float64, exists bool) {
	v := m.performance_score
	if v == nil {
		return
	}
	return *v, true
}

// OldPerformanceScore returns the old "performance_score" field's value of the Score entity.
// If the Score object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScoreMutation) OldPerformanceScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPerformanceScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPerformanceScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPerformanceScore: %w", err)
	}
	return oldValue.PerformanceScore, nil
}

// AddPerformanceScore adds f to the "performance_score" field.
func (m *ScoreMutation) AddPerformanceScore(f float64) {
	if m.addperformance_score != nil {
		*m.addperformance_score += f
	} else {
		m.addperformance_score = &f
	}
}

// AddedPerformanceScore returns the value that was added to the "performance_score" field in this mutation.
func (m *ScoreMutation) AddedPerformanceScore() (r float64, exists bool) {
	v := m.addperformance_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetPerformanceScore resets all changes to the "performance_score" field.
func (m *ScoreMutation) ResetPerformanceScore() {
	m.performance_score = nil
	m.addperformance_score = nil
}

// SetCorrectnessScore sets the "correctness_score" field.
func (m *ScoreMutation) SetCorrectnessScore(f float64) {
	m.correctness_score = &f
	m.addcorrectness_score = nil
}

// CorrectnessScore returns the value of the "correctness_score" field in the mutation.
func (m *ScoreMutation) CorrectnessScore() (r float64, exists bool) {
	v := m.correctness_score
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrectnessScore returns the old "correctness_score" field's value of the Score entity.
// If the Score object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScoreMutation) OldCorrectnessScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrectnessScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrectnessScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrectnessScore: %w", err)
	}
	return oldValue.CorrectnessScore, nil
}

// AddCorrectnessScore adds f to the "correctness_score" field.
func (m *ScoreMutation) AddCorrectnessScore(f float64) {
	if m.addcorrectness_score != nil {
		*m.addcorrectness_score += f
	} else {
		m.addcorrectness_score = &f
	}
}

// AddedCorrectnessScore returns the value that was added to the "correctness_score" field in this mutation.
func (m *ScoreMutation) AddedCorrectnessScore() (r float64, exists bool) {
	v := m.addcorrectness_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetCorrectnessScore resets all changes to the "correctness_score" field.
func (m *ScoreMutation) ResetCorrectnessScore() {
	m.correctness_score = nil
	m.addcorrectness_score = nil
}

// SetTotalScore sets the "total_score" field.
func (m *ScoreMutation) SetTotalScore(f float64) {
	m.total_score = &f
	m.addtotal_score = nil
}

// TotalScore returns the value of the "total_score" field in the mutation.
func (m *ScoreMutation) TotalScore() (r float64, exists bool) {
	v := m.total_score
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalScore returns the old "total_score" field's value of the Score entity.
// If the Score object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScoreMutation) OldTotalScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalScore: %w", err)
	}
	return oldValue.TotalScore, nil
}

// AddTotalScore adds f to the "total_score" field.
func (m *ScoreMutation) AddTotalScore(f float64) {
	if m.addtotal_score != nil {
		*m.addtotal_score += f
	} else {
		m.addtotal_score = &f
	}
}

// AddedTotalScore returns the value that was added to the "total_score" field in this mutation.
func (m *ScoreMutation) AddedTotalScore() (r float64, exists bool) {
	v := m.addtotal_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalScore resets all changes to the "total_score" field.
func (m *ScoreMutation) ResetTotalScore() {
	m.total_score = nil
	m.addtotal_score = nil
}

// SetGrade sets the "grade" field.
func (m *ScoreMutation) SetGrade(s string) {
	m.grade = &s
}

// Grade returns the value of the "grade" field in the mutation.
func (m *ScoreMutation) Grade() (r string, exists bool) {
	v := m.grade
	if v == nil {
		return
	}
	return *v, true
}

// OldGrade returns the old "grade" field's value of the Score entity.
// If the Score object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScoreMutation) OldGrade(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGrade is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGrade requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGrade: %w", err)
	}
	return oldValue.Grade, nil
}

// ResetGrade resets all changes to the "grade" field.
func (m *ScoreMutation) ResetGrade() {
	m.grade = nil
}

// SetRubric sets the "rubric" field.
func (m *ScoreMutation) SetRubric(value map[string]interface{}) {
	m.rubric = &value
}

// Rubric returns the value of the "rubric" field in the mutation.
func (m *ScoreMutation) Rubric() (r map[string]interface{}, exists bool) {
	v := m.rubric
	if v == nil {
		return
	}
	return *v, true
}

// OldRubric returns the old "rubric" field's value of the Score entity.
// If the Score object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScoreMutation) OldRubric(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRubric is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRubric requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRubric: %w", err)
	}
	return oldValue.Rubric, nil
}

// ClearRubric clears the value of the "rubric" field.
func (m *ScoreMutation) ClearRubric() {
	m.rubric = nil
	m.clearedFields[score.FieldRubric] = struct{}{}
}

// RubricCleared returns if the "rubric" field was cleared in this mutation.
func (m *ScoreMutation) RubricCleared() bool {
	_, ok := m.clearedFields[score.FieldRubric]
	return ok
}

// ResetRubric resets all changes to the "rubric" field.
func (m *ScoreMutation) ResetRubric() {
	m.rubric = nil
	delete(m.clearedFields, score.FieldRubric)
}

// SetCreatedAt sets the "created_at" field.
func (m *ScoreMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ScoreMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Score entity.
// If the Score object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScoreMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ScoreMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearSubmission clears the "submission" edge to the Submission entity.
func (m *ScoreMutation) ClearSubmission() {
	m.clearedsubmission = true
	m.clearedFields[score.FieldSubmissionID] = struct{}{}
}

// SubmissionCleared reports if the "submission" edge to the Submission entity was cleared.
func (m *ScoreMutation) SubmissionCleared() bool {
	return m.clearedsubmission
}

// SubmissionIDs returns the "submission" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SubmissionID instead. It exists only for internal usage by the builders.
func (m *ScoreMutation) SubmissionIDs() (ids []int) {
	if id := m.submission; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSubmission resets all changes to the "submission" edge.
func (m *ScoreMutation) ResetSubmission() {
	m.submission = nil
	m.clearedsubmission = false
}

// Where appends a list predicates to the ScoreMutation builder.
func (m *ScoreMutation) Where(ps ...predicate.Score) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ScoreMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ScoreMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Score, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ScoreMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ScoreMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Score).
func (m *ScoreMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ScoreMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.submission != nil {
		fields = append(fields, score.FieldSubmissionID)
	}
	if m.session_id != nil {
		fields = append(fields, score.FieldSessionID)
	}
	if m.prompt_score != nil {
		fields = append(fields, score.FieldPromptScore)
	}
	if m.performance_score != nil {
		fields = append(fields, score.FieldPerformanceScore)
	}
	if m.correctness_score != nil {
		fields = append(fields, score.FieldCorrectnessScore)
	}
	if m.total_score != nil {
		fields = append(fields, score.FieldTotalScore)
	}
	if m.grade != nil {
		fields = append(fields, score.FieldGrade)
	}
	if m.rubric != nil {
		fields = append(fields, score.FieldRubric)
	}
	if m.created_at != nil {
		fields = append(fields, score.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ScoreMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case score.FieldSubmissionID:
		return m.SubmissionID()
	case score.FieldSessionID:
		return m.SessionID()
	case score.FieldPromptScore:
		return m.PromptScore()
	case score.FieldPerformanceScore:
		return m.PerformanceScore()
	case score.FieldCorrectnessScore:
		return m.CorrectnessScore()
	case score.FieldTotalScore:
		return m.TotalScore()
	case score.FieldGrade:
		return m.Grade()
	case score.FieldRubric:
		return m.Rubric()
	case score.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ScoreMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case score.FieldSubmissionID:
		return m.OldSubmissionID(ctx)
	case score.FieldSessionID:
		return m.OldSessionID(ctx)
	case score.FieldPromptScore:
		return m.OldPromptScore(ctx)
	case score.FieldPerformanceScore:
		return m.OldPerformanceScore(ctx)
	case score.FieldCorrectnessScore:
		return m.OldCorrectnessScore(ctx)
	case score.FieldTotalScore:
		return m.OldTotalScore(ctx)
	case score.FieldGrade:
		return m.OldGrade(ctx)
	case score.FieldRubric:
		return m.OldRubric(ctx)
	case score.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Score field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScoreMutation) SetField(name string, value ent.Value) error {
	switch name {
	case score.FieldSubmissionID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubmissionID(v)
		return nil
	case score.FieldSessionID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case score.FieldPromptScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPromptScore(v)
		return nil
	case score.FieldPerformanceScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPerformanceScore(v)
		return nil
	case score.FieldCorrectnessScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrectnessScore(v)
		return nil
	case score.FieldTotalScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalScore(v)
		return nil
	case score.FieldGrade:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGrade(v)
		return nil
	case score.FieldRubric:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRubric(v)
		return nil
	case score.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Score field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ScoreMutation) AddedFields() []string {
	var fields []string
	if m.addsession_id != nil {
		fields = append(fields, score.FieldSessionID)
	}
	if m.addprompt_score != nil {
		fields = append(fields, score.FieldPromptScore)
	}
	if m.addperformance_score != nil {
		fields = append(fields, score.FieldPerformanceScore)
	}
	if m.addcorrectness_score != nil {
		fields = append(fields, score.FieldCorrectnessScore)
	}
	if m.addtotal_score != nil {
		fields = append(fields, score.FieldTotalScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ScoreMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case score.FieldSessionID:
		return m.AddedSessionID()
	case score.FieldPromptScore:
		return m.AddedPromptScore()
	case score.FieldPerformanceScore:
		return m.AddedPerformanceScore()
	case score.FieldCorrectnessScore:
		return m.AddedCorrectnessScore()
	case score.FieldTotalScore:
		return m.AddedTotalScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScoreMutation) AddField(name string, value ent.Value) error {
	switch name {
	case score.FieldSessionID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSessionID(v)
		return nil
	case score.FieldPromptScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPromptScore(v)
		return nil
	case score.FieldPerformanceScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPerformanceScore(v)
		return nil
	case score.FieldCorrectnessScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCorrectnessScore(v)
		return nil
	case score.FieldTotalScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalScore(v)
		return nil
	}
	return fmt.Errorf("unknown Score numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ScoreMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(score.FieldPromptScore) {
		fields = append(fields, score.FieldPromptScore)
	}
	if m.FieldCleared(score.FieldRubric) {
		fields = append(fields, score.FieldRubric)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ScoreMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ScoreMutation) ClearField(name string) error {
	switch name {
	case score.FieldPromptScore:
		m.ClearPromptScore()
		return nil
	case score.FieldRubric:
		m.ClearRubric()
		return nil
	}
	return fmt.Errorf("unknown Score nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ScoreMutation) ResetField(name string) error {
	switch name {
	case score.FieldSubmissionID:
		m.ResetSubmissionID()
		return nil
	case score.FieldSessionID:
		m.ResetSessionID()
		return nil
	case score.FieldPromptScore:
		m.ResetPromptScore()
		return nil
	case score.FieldPerformanceScore:
		m.ResetPerformanceScore()
		return nil
	case score.FieldCorrectnessScore:
		m.ResetCorrectnessScore()
		return nil
	case score.FieldTotalScore:
		m.ResetTotalScore()
		return nil
	case score.FieldGrade:
		m.ResetGrade()
		return nil
	case score.FieldRubric:
		m.ResetRubric()
		return nil
	case score.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Score field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ScoreMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.submission != nil {
		edges = append(edges, score.EdgeSubmission)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ScoreMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case score.EdgeSubmission:
		if id := m.submission; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ScoreMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ScoreMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ScoreMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsubmission {
		edges = append(edges, score.EdgeSubmission)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ScoreMutation) EdgeCleared(name string) bool {
	switch name {
	case score.EdgeSubmission:
		return m.clearedsubmission
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ScoreMutation) ClearEdge(name string) error {
	switch name {
	case score.EdgeSubmission:
		m.ClearSubmission()
		return nil
	}
	return fmt.Errorf("unknown Score unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ScoreMutation) ResetEdge(name string) error {
	switch name {
	case score.EdgeSubmission:
		m.ResetSubmission()
		return nil
	}
	return fmt.Errorf("unknown Score edge %s", name)
}

// SubmissionMutation represents an operation that mutates the Submission nodes in the graph.
type SubmissionMutation struct {
	config
	op                Op
	typ               string
	id                *int
	exam_id           *int
	addexam_id        *int
	participant_id    *int
	addparticipant_id *int
	spec_id           *int
	addspec_id        *int
	code              *string
	language          *string
	status            *submission.Status
	task_id           *string
	created_at        *time.Time
	completed_at      *time.Time
	clearedFields     map[string]struct{}
	session           *int
	clearedsession    bool
	runs              map[int]struct{}
	removedruns       map[int]struct{}
	clearedruns       bool
	score             *int
	clearedscore      bool
	done              bool
	oldValue          func(context.Context) (*Submission, error)
	predicates        []predicate.Submission
}

var _ ent.Mutation = (*SubmissionMutation)(nil)

// submissionOption allows management of the mutation configuration using functional options.
type submissionOption func(*SubmissionMutation)

// newSubmissionMutation creates new mutation for the Submission entity.
func newSubmissionMutation(c config, op Op, opts ...submissionOption) *SubmissionMutation {
	m := &SubmissionMutation{
		config:        c,
		op:            op,
		typ:           TypeSubmission,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSubmissionID sets the ID field of the mutation.
func withSubmissionID(id int) submissionOption {
	return func(m *SubmissionMutation) {
		var (
			err   error
			once  sync.Once
			value *Submission
		)
		m.oldValue = func(ctx context.Context) (*Submission, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Submission.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSubmission sets the old Submission of the mutation.
func withSubmission(node *Submission) submissionOption {
	return func(m *SubmissionMutation) {
		m.oldValue = func(context.Context) (*Submission, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SubmissionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SubmissionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SubmissionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SubmissionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Submission.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *SubmissionMutation) SetSessionID(i int) {
	m.session = &i
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *SubmissionMutation) SessionID() (r int, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the Submission entity.
// If the Submission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionMutation) OldSessionID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *SubmissionMutation) ResetSessionID() {
	m.session = nil
}

// SetExamID sets the "exam_id" field.
func (m *SubmissionMutation) SetExamID(i int) {
	m.exam_id = &i
	m.addexam_id = nil
}

// ExamID returns the value of the "exam_id" field in the mutation.
func (m *SubmissionMutation) ExamID() (r int, exists bool) {
	v := m.exam_id
	if v == nil {
		return
	}
	return *v, true
}

// OldExamID returns the old "exam_id" field's value of the Submission entity.
// If the Submission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionMutation) OldExamID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExamID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExamID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExamID: %w", err)
	}
	return oldValue.ExamID, nil
}

// AddExamID adds i to the "exam_id" field.
func (m *SubmissionMutation) AddExamID(i int) {
	if m.addexam_id != nil {
		*m.addexam_id += i
	} else {
		m.addexam_id = &i
	}
}

// AddedExamID returns the value that was added to the "exam_id" field in this mutation.
func (m *SubmissionMutation) AddedExamID() (r int, exists bool) {
	v := m.addexam_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetExamID resets all changes to the "exam_id" field.
func (m *SubmissionMutation) ResetExamID() {
	m.exam_id = nil
	m.addexam_id = nil
}

// SetParticipantID sets the "participant_id" field.
func (m *SubmissionMutation) SetParticipantID(i int) {
	m.participant_id = &i
	m.addparticipant_id = nil
}

// ParticipantID returns the value of the "participant_id" field in the mutation.
func (m *SubmissionMutation) ParticipantID() (r int, exists bool) {
	v := m.participant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldParticipantID returns the old "participant_id" field's value of the Submission entity.
// If the Submission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionMutation) OldParticipantID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParticipantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParticipantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParticipantID: %w", err)
	}
	return oldValue.ParticipantID, nil
}

// AddParticipantID adds i to the "participant_id" field.
func (m *SubmissionMutation) AddParticipantID(i int) {
	if m.addparticipant_id != nil {
		*m.addparticipant_id += i
	} else {
		m.addparticipant_id = &i
	}
}

// AddedParticipantID returns the value that was added to the "participant_id" field in this mutation.
func (m *SubmissionMutation) AddedParticipantID() (r int, exists bool) {
	v := m.addparticipant_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetParticipantID resets all changes to the "participant_id" field.
func (m *SubmissionMutation) ResetParticipantID() {
	m.participant_id = nil
	m.addparticipant_id = nil
}

// SetSpecID sets the "spec_id" field.
func (m *SubmissionMutation) SetSpecID(i int) {
	m.spec_id = &i
	m.addspec_id = nil
}

// SpecID returns the value of the "spec_id" field in the mutation.
func (m *SubmissionMutation) SpecID() (r int, exists bool) {
	v := m.spec_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSpecID returns the old "spec_id" field's value of the Submission entity.
// If the Submission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionMutation) OldSpecID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSpecID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSpecID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSpecID: %w", err)
	}
	return oldValue.SpecID, nil
}

// AddSpecID adds i to the "spec_id" field.
func (m *SubmissionMutation) AddSpecID(i int) {
	if m.addspec_id != nil {
		*m.addspec_id += i
	} else {
		m.addspec_id = &i
	}
}

// AddedSpecID returns the value that was added to the "spec_id" field in this mutation.
func (m *SubmissionMutation) AddedSpecID() (r int, exists bool) {
	v := m.addspec_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetSpecID resets all changes to the "spec_id" field.
func (m *SubmissionMutation) ResetSpecID() {
	m.spec_id = nil
	m.addspec_id = nil
}

// SetCode sets the "code" field.
func (m *SubmissionMutation) SetCode(s string) {
	m.code = &s
}

// Code returns the value of the "code" field in the mutation.
func (m *SubmissionMutation) Code() (r string, exists bool) {
	v := m.code
	if v == nil {
		return
	}
	return *v, true
}

// OldCode returns the old "code" field's value of the Submission entity.
// If the Submission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionMutation) OldCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCode: %w", err)
	}
	return oldValue.Code, nil
}

// ResetCode resets all changes to the "code" field.
func (m *SubmissionMutation) ResetCode() {
	m.code = nil
}

// SetLanguage sets the "language" field.
func (m *SubmissionMutation) SetLanguage(s string) {
	m.language = &s
}

// Language returns the value of the "language" field in the mutation.
func (m *SubmissionMutation) Language() (r string, exists bool) {
	v := m.language
	if v == nil {
		return
	}
	return *v, true
}

// OldLanguage returns the old "language" field's value of the Submission entity.
// If the Submission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionMutation) OldLanguage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLanguage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLanguage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLanguage: %w", err)
	}
	return oldValue.Language, nil
}

// ResetLanguage resets all changes to the "language" field.
func (m *SubmissionMutation) ResetLanguage() {
	m.language = nil
}

// SetStatus sets the "status" field.
func (m *SubmissionMutation) SetStatus(s submission.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *SubmissionMutation) Status() (r submission.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Submission entity.
// If the Submission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionMutation) OldStatus(ctx context.Context) (v submission.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *SubmissionMutation) ResetStatus() {
	m.status = nil
}

// SetTaskID sets the "task_id" field.
func (m *SubmissionMutation) SetTaskID(s string) {
	m.task_id = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *SubmissionMutation) TaskID() (r string, exists bool) {
	v := m.task_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the Submission entity.
// If the Submission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ClearTaskID clears the value of the "task_id" field.
func (m *SubmissionMutation) ClearTaskID() {
	m.task_id = nil
	m.clearedFields[submission.FieldTaskID] = struct{}{}
}

// TaskIDCleared returns if the "task_id" field was cleared in this mutation.
func (m *SubmissionMutation) TaskIDCleared() bool {
	_, ok := m.clearedFields[submission.FieldTaskID]
	return ok
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *SubmissionMutation) ResetTaskID() {
	m.task_id = nil
	delete(m.clearedFields, submission.FieldTaskID)
}

// SetCreatedAt sets the "created_at" field.
func (m *SubmissionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SubmissionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Submission entity.
// If the Submission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SubmissionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *SubmissionMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *SubmissionMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Submission entity.
// If the Submission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *SubmissionMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[submission.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *SubmissionMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[submission.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *SubmissionMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, submission.FieldCompletedAt)
}

// ClearSession clears the "session" edge to the PromptSession entity.
func (m *SubmissionMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[submission.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the PromptSession entity was cleared.
func (m *SubmissionMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *SubmissionMutation) SessionIDs() (ids []int) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *SubmissionMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// AddRunIDs adds the "runs" edge to the SubmissionRun entity by ids.
func (m *SubmissionMutation) AddRunIDs(ids ...int) {
	if m.runs == nil {
		m.runs = make(map[int]struct{})
	}
	for i := range ids {
		m.runs[ids[i]] = struct{}{}
	}
}

// ClearRuns clears the "runs" edge to the SubmissionRun entity.
func (m *SubmissionMutation) ClearRuns() {
	m.clearedruns = true
}

// RunsCleared reports if the "runs" edge to the SubmissionRun entity was cleared.
func (m *SubmissionMutation) RunsCleared() bool {
	return m.clearedruns
}

// RemoveRunIDs removes the "runs" edge to the SubmissionRun entity by IDs.
func (m *SubmissionMutation) RemoveRunIDs(ids ...int) {
	if m.removedruns == nil {
		m.removedruns = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.runs, ids[i])
		m.removedruns[ids[i]] = struct{}{}
	}
}

// RemovedRuns returns the removed IDs of the "runs" edge to the SubmissionRun entity.
func (m *SubmissionMutation) RemovedRunsIDs() (ids []int) {
	for id := range m.removedruns {
		ids = append(ids, id)
	}
	return
}

// RunsIDs returns the "runs" edge IDs in the mutation.
func (m *SubmissionMutation) RunsIDs() (ids []int) {
	for id := range m.runs {
		ids = append(ids, id)
	}
	return
}

// ResetRuns resets all changes to the "runs" edge.
func (m *SubmissionMutation) ResetRuns() {
	m.runs = nil
	m.clearedruns = false
	m.removedruns = nil
}

// SetScoreID sets the "score" edge to the Score entity by id.
func (m *SubmissionMutation) SetScoreID(id int) {
	m.score = &id
}

// ClearScore clears the "score" edge to the Score entity.
func (m *SubmissionMutation) ClearScore() {
	m.clearedscore = true
}

// ScoreCleared reports if the "score" edge to the Score entity was cleared.
func (m *SubmissionMutation) ScoreCleared() bool {
	return m.clearedscore
}

// ScoreID returns the "score" edge ID in the mutation.
func (m *SubmissionMutation) ScoreID() (id int, exists bool) {
	if m.score != nil {
		return *m.score, true
	}
	return
}

// ScoreIDs returns the "score" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ScoreID instead. It exists only for internal usage by the builders.
func (m *SubmissionMutation) ScoreIDs() (ids []int) {
	if id := m.score; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetScore resets all changes to the "score" edge.
func (m *SubmissionMutation) ResetScore() {
	m.score = nil
	m.clearedscore = false
}

// Where appends a list predicates to the SubmissionMutation builder.
func (m *SubmissionMutation) Where(ps ...predicate.Submission) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SubmissionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SubmissionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Submission, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SubmissionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SubmissionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Submission).
func (m *SubmissionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SubmissionMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.session != nil {
		fields = append(fields, submission.FieldSessionID)
	}
	if m.exam_id != nil {
		fields = append(fields, submission.FieldExamID)
	}
	if m.participant_id != nil {
		fields = append(fields, submission.FieldParticipantID)
	}
	if m.spec_id != nil {
		fields = append(fields, submission.FieldSpecID)
	}
	if m.code != nil {
		fields = append(fields, submission.FieldCode)
	}
	if m.language != nil {
		fields = append(fields, submission.FieldLanguage)
	}
	if m.status != nil {
		fields = append(fields, submission.FieldStatus)
	}
	if m.task_id != nil {
		fields = append(fields, submission.FieldTaskID)
	}
	if m.created_at != nil {
		fields = append(fields, submission.FieldCreatedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, submission.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SubmissionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case submission.FieldSessionID:
		return m.SessionID()
	case submission.FieldExamID:
		return m.ExamID()
	case submission.FieldParticipantID:
		return m.ParticipantID()
	case submission.FieldSpecID:
		return m.SpecID()
	case submission.FieldCode:
		return m.Code()
	case submission.FieldLanguage:
		return m.Language()
	case submission.FieldStatus:
		return m.Status()
	case submission.FieldTaskID:
		return m.TaskID()
	case submission.FieldCreatedAt:
		return m.CreatedAt()
	case submission.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SubmissionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case submission.FieldSessionID:
		return m.OldSessionID(ctx)
	case submission.FieldExamID:
		return m.OldExamID(ctx)
	case submission.FieldParticipantID:
		return m.OldParticipantID(ctx)
	case submission.FieldSpecID:
		return m.OldSpecID(ctx)
	case submission.FieldCode:
		return m.OldCode(ctx)
	case submission.FieldLanguage:
		return m.OldLanguage(ctx)
	case submission.FieldStatus:
		return m.OldStatus(ctx)
	case submission.FieldTaskID:
		return m.OldTaskID(ctx)
	case submission.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case submission.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Submission field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SubmissionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case submission.FieldSessionID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case submission.FieldExamID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExamID(v)
		return nil
	case submission.FieldParticipantID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParticipantID(v)
		return nil
	case submission.FieldSpecID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSpecID(v)
		return nil
	case submission.FieldCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCode(v)
		return nil
	case submission.FieldLanguage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLanguage(v)
		return nil
	case submission.FieldStatus:
		v, ok := value.(submission.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case submission.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case submission.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case submission.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Submission field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SubmissionMutation) AddedFields() []string {
	var fields []string
	if m.addexam_id != nil {
		fields = append(fields, submission.FieldExamID)
	}
	if m.addparticipant_id != nil {
		fields = append(fields, submission.FieldParticipantID)
	}
	if m.addspec_id != nil {
		fields = append(fields, submission.FieldSpecID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SubmissionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case submission.FieldExamID:
		return m.AddedExamID()
	case submission.FieldParticipantID:
		return m.AddedParticipantID()
	case submission.FieldSpecID:
		return m.AddedSpecID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SubmissionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case submission.FieldExamID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExamID(v)
		return nil
	case submission.FieldParticipantID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddParticipantID(v)
		return nil
	case submission.FieldSpecID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSpecID(v)
		return nil
	}
	return fmt.Errorf("unknown Submission numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SubmissionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(submission.FieldTaskID) {
		fields = append(fields, submission.FieldTaskID)
	}
	if m.FieldCleared(submission.FieldCompletedAt) {
		fields = append(fields, submission.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SubmissionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SubmissionMutation) ClearField(name string) error {
	switch name {
	case submission.FieldTaskID:
		m.ClearTaskID()
		return nil
	case submission.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Submission nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SubmissionMutation) ResetField(name string) error {
	switch name {
	case submission.FieldSessionID:
		m.ResetSessionID()
		return nil
	case submission.FieldExamID:
		m.ResetExamID()
		return nil
	case submission.FieldParticipantID:
		m.ResetParticipantID()
		return nil
	case submission.FieldSpecID:
		m.ResetSpecID()
		return nil
	case submission.FieldCode:
		m.ResetCode()
		return nil
	case submission.FieldLanguage:
		m.ResetLanguage()
		return nil
	case submission.FieldStatus:
		m.ResetStatus()
		return nil
	case submission.FieldTaskID:
		m.ResetTaskID()
		return nil
	case submission.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case submission.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Submission field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SubmissionMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.session != nil {
		edges = append(edges, submission.EdgeSession)
	}
	if m.runs != nil {
		edges = append(edges, submission.EdgeRuns)
	}
	if m.score != nil {
		edges = append(edges, submission.EdgeScore)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SubmissionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case submission.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	case submission.EdgeRuns:
		ids := make([]ent.Value, 0, len(m.runs))
		for id := range m.runs {
			ids = append(ids, id)
		}
		return ids
	case submission.EdgeScore:
		if id := m.score; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SubmissionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedruns != nil {
		edges = append(edges, submission.EdgeRuns)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SubmissionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case submission.EdgeRuns:
		ids := make([]ent.Value, 0, len(m.removedruns))
		for id := range m.removedruns {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SubmissionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedsession {
		edges = append(edges, submission.EdgeSession)
	}
	if m.clearedruns {
		edges = append(edges, submission.EdgeRuns)
	}
	if m.clearedscore {
		edges = append(edges, submission.EdgeScore)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SubmissionMutation) EdgeCleared(name string) bool {
	switch name {
	case submission.EdgeSession:
		return m.clearedsession
	case submission.EdgeRuns:
		return m.clearedruns
	case submission.EdgeScore:
		return m.clearedscore
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SubmissionMutation) ClearEdge(name string) error {
	switch name {
	case submission.EdgeSession:
		m.ClearSession()
		return nil
	case submission.EdgeScore:
		m.ClearScore()
		return nil
	}
	return fmt.Errorf("unknown Submission unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SubmissionMutation) ResetEdge(name string) error {
	switch name {
	case submission.EdgeSession:
		m.ResetSession()
		return nil
	case submission.EdgeRuns:
		m.ResetRuns()
		return nil
	case submission.EdgeScore:
		m.ResetScore()
		return nil
	}
	return fmt.Errorf("unknown Submission edge %s", name)
}

// SubmissionRunMutation represents an operation that mutates the SubmissionRun nodes in the graph.
type SubmissionRunMutation struct {
	config
	op                Op
	typ               string
	id                *int
	case_index        *int
	addcase_index     *int
	verdict           *submissionrun.Verdict
	passed            *bool
	output            *string
	stderr            *string
	execution_time    *float64
	addexecution_time *float64
	memory_kb         *int
	addmemory_kb      *int
	exit_code         *int
	addexit_code      *int
	created_at        *time.Time
	clearedFields     map[string]struct{}
	submission        *int
	clearedsubmission bool
	done              bool
	oldValue          func(context.Context) (*SubmissionRun, error)
	predicates        []predicate.SubmissionRun
}

var _ ent.Mutation = (*SubmissionRunMutation)(nil)

// submissionrunOption allows management of the mutation configuration using functional options.
type submissionrunOption func(*SubmissionRunMutation)

// newSubmissionRunMutation creates new mutation for the SubmissionRun entity.
func newSubmissionRunMutation(c config, op Op, opts ...submissionrunOption) *SubmissionRunMutation {
	m := &SubmissionRunMutation{
		config:        c,
		op:            op,
		typ:           TypeSubmissionRun,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSubmissionRunID sets the ID field of the mutation.
func withSubmissionRunID(id int) submissionrunOption {
	return func(m *SubmissionRunMutation) {
		var (
			err   error
			once  sync.Once
			value *SubmissionRun
		)
		m.oldValue = func(ctx context.Context) (*SubmissionRun, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SubmissionRun.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSubmissionRun sets the old SubmissionRun of the mutation.
func withSubmissionRun(node *SubmissionRun) submissionrunOption {
	return func(m *SubmissionRunMutation) {
		m.oldValue = func(context.Context) (*SubmissionRun, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SubmissionRunMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SubmissionRunMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SubmissionRunMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SubmissionRunMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SubmissionRun.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSubmissionID sets the "submission_id" field.
func (m *SubmissionRunMutation) SetSubmissionID(i int) {
	m.submission = &i
}

// SubmissionID returns the value of the "submission_id" field in the mutation.
func (m *SubmissionRunMutation) SubmissionID() (r int, exists bool) {
	v := m.submission
	if v == nil {
		return
	}
	return *v, true
}

// OldSubmissionID returns the old "submission_id" field's value of the SubmissionRun entity.
// If the SubmissionRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionRunMutation) OldSubmissionID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubmissionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubmissionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubmissionID: %w", err)
	}
	return oldValue.SubmissionID, nil
}

// ResetSubmissionID resets all changes to the "submission_id" field.
func (m *SubmissionRunMutation) ResetSubmissionID() {
	m.submission = nil
}

// SetCaseIndex sets the "case_index" field.
func (m *SubmissionRunMutation) SetCaseIndex(i int) {
	m.case_index = &i
	m.addcase_index = nil
}

// CaseIndex returns the value of the "case_index" field in the mutation.
func (m *SubmissionRunMutation) CaseIndex() (r int, exists bool) {
	v := m.case_index
	if v == nil {
		return
	}
	return *v, true
}

// OldCaseIndex returns the old "case_index" field's value of the SubmissionRun entity.
// If the SubmissionRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionRunMutation) OldCaseIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCaseIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCaseIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCaseIndex: %w", err)
	}
	return oldValue.CaseIndex, nil
}

// AddCaseIndex adds i to the "case_index" field.
func (m *SubmissionRunMutation) AddCaseIndex(i int) {
	if m.addcase_index != nil {
		*m.addcase_index += i
	} else {
		m.addcase_index = &i
	}
}

// AddedCaseIndex returns the value that was added to the "case_index" field in this mutation.
func (m *SubmissionRunMutation) AddedCaseIndex() (r int, exists bool) {
	v := m.addcase_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetCaseIndex resets all changes to the "case_index" field.
func (m *SubmissionRunMutation) ResetCaseIndex() {
	m.case_index = nil
	m.addcase_index = nil
}

// SetVerdict sets the "verdict" field.
func (m *SubmissionRunMutation) SetVerdict(s submissionrun.Verdict) {
	m.verdict = &s
}

// Verdict returns the value of the "verdict" field in the mutation.
func (m *SubmissionRunMutation) Verdict() (r submissionrun.Verdict, exists bool) {
	v := m.verdict
	if v == nil {
		return
	}
	return *v, true
}

// OldVerdict returns the old "verdict" field's value of the SubmissionRun entity.
// If the SubmissionRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionRunMutation) OldVerdict(ctx context.Context) (v submissionrun.Verdict, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVerdict is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVerdict requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVerdict: %w", err)
	}
	return oldValue.Verdict, nil
}

// ResetVerdict resets all changes to the "verdict" field.
func (m *SubmissionRunMutation) ResetVerdict() {
	m.verdict = nil
}

// SetPassed sets the "passed" field.
func (m *SubmissionRunMutation) SetPassed(b bool) {
	m.passed = &b
}

// Passed returns the value of the "passed" field in the mutation.
func (m *SubmissionRunMutation) Passed() (r bool, exists bool) {
	v := m.passed
	if v == nil {
		return
	}
	return *v, true
}

// OldPassed returns the old "passed" field's value of the SubmissionRun entity.
// If the SubmissionRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionRunMutation) OldPassed(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPassed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPassed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPassed: %w", err)
	}
	return oldValue.Passed, nil
}

// ResetPassed resets all changes to the "passed" field.
func (m *SubmissionRunMutation) ResetPassed() {
	m.passed = nil
}

// SetOutput sets the "output" field.
func (m *SubmissionRunMutation) SetOutput(s string) {
	m.output = &s
}

// Output returns the value of the "output" field in the mutation.
func (m *SubmissionRunMutation) Output() (r string, exists bool) {
	v := m.output
	if v == nil {
		return
	}
	return *v, true
}

// OldOutput returns the old "output" field's value of the SubmissionRun entity.
// If the SubmissionRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionRunMutation) OldOutput(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutput: %w", err)
	}
	return oldValue.Output, nil
}

// ClearOutput clears the value of the "output" field.
func (m *SubmissionRunMutation) ClearOutput() {
	m.output = nil
	m.clearedFields[submissionrun.FieldOutput] = struct{}{}
}

// OutputCleared returns if the "output" field was cleared in this mutation.
func (m *SubmissionRunMutation) OutputCleared() bool {
	_, ok := m.clearedFields[submissionrun.FieldOutput]
	return ok
}

// ResetOutput resets all changes to the "output" field.
func (m *SubmissionRunMutation) ResetOutput() {
	m.output = nil
	delete(m.clearedFields, submissionrun.FieldOutput)
}

// SetStderr sets the "stderr" field.
func (m *SubmissionRunMutation) SetStderr(s string) {
	m.stderr = &s
}

// Stderr returns the value of the "stderr" field in the mutation.
func (m *SubmissionRunMutation) Stderr() (r string, exists bool) {
	v := m.stderr
	if v == nil {
		return
	}
	return *v, true
}

// OldStderr returns the old "stderr" field's value of the SubmissionRun entity.
// If the SubmissionRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionRunMutation) OldStderr(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStderr is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStderr requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStderr: %w", err)
	}
	return oldValue.Stderr, nil
}

// ClearStderr clears the value of the "stderr" field.
func (m *SubmissionRunMutation) ClearStderr() {
	m.stderr = nil
	m.clearedFields[submissionrun.FieldStderr] = struct{}{}
}

// StderrCleared returns if the "stderr" field was cleared in this mutation.
func (m *SubmissionRunMutation) StderrCleared() bool {
	_, ok := m.clearedFields[submissionrun.FieldStderr]
	return ok
}

// ResetStderr resets all changes to the "stderr" field.
func (m *SubmissionRunMutation) ResetStderr() {
	m.stderr = nil
	delete(m.clearedFields, submissionrun.FieldStderr)
}

// SetExecutionTime sets the "execution_time" field.
func (m *SubmissionRunMutation) SetExecutionTime(f float64) {
	m.execution_time = &f
	m.addexecution_time = nil
}

// ExecutionTime returns the value of the "execution_time" field in the mutation.
func (m *SubmissionRunMutation) ExecutionTime() (r float64, exists bool) {
	v := m.execution_time
	if v == nil {
		return
	}
	return *v, true
}

// OldExecutionTime returns the old "execution_time" field's value of the SubmissionRun entity.
// If the SubmissionRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionRunMutation) OldExecutionTime(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExecutionTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExecutionTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExecutionTime: %w", err)
	}
	return oldValue.ExecutionTime, nil
}

// AddExecutionTime adds f to the "execution_time" field.
func (m *SubmissionRunMutation) AddExecutionTime(f float64) {
	if m.addexecution_time != nil {
		*m.addexecution_time += f
	} else {
		m.addexecution_time = &f
	}
}

// AddedExecutionTime returns the value that was added to the "execution_time" field in this mutation.
func (m *SubmissionRunMutation) AddedExecutionTime() (r float64, exists bool) {
	v := m.addexecution_time
	if v == nil {
		return
	}
	return *v, true
}

// ResetExecutionTime resets all changes to the "execution_time" field.
func (m *SubmissionRunMutation) ResetExecutionTime() {
	m.execution_time = nil
	m.addexecution_time = nil
}

// SetMemoryKB sets the "memory_kb" field.
func (m *SubmissionRunMutation) SetMemoryKB(i int) {
	m.memory_kb = &i
	m.addmemory_kb = nil
}

// MemoryKB returns the value of the "memory_kb" field in the mutation.
func (m *SubmissionRunMutation) MemoryKB() (r int, exists bool) {
	v := m.memory_kb
	if v == nil {
		return
	}
	return *v, true
}

// OldMemoryKB returns the old "memory_kb" field's value of the SubmissionRun entity.
// If the SubmissionRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionRunMutation) OldMemoryKB(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMemoryKB is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMemoryKB requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMemoryKB: %w", err)
	}
	return oldValue.MemoryKB, nil
}

// AddMemoryKB adds i to the "memory_kb" field.
func (m *SubmissionRunMutation) AddMemoryKB(i int) {
	if m.addmemory_kb != nil {
		*m.addmemory_kb += i
	} else {
		m.addmemory_kb = &i
	}
}

// AddedMemoryKB returns the value that was added to the "memory_kb" field in this mutation.
func (m *SubmissionRunMutation) AddedMemoryKB() (r int, exists bool) {
	v := m.addmemory_kb
	if v == nil {
		return
	}
	return *v, true
}

// ResetMemoryKB resets all changes to the "memory_kb" field.
func (m *SubmissionRunMutation) ResetMemoryKB() {
	m.memory_kb = nil
	m.addmemory_kb = nil
}

// SetExitCode sets the "exit_code" field.
func (m *SubmissionRunMutation) SetExitCode(i int) {
	m.exit_code = &i
	m.addexit_code = nil
}

// ExitCode returns the value of the "exit_code" field in the mutation.
func (m *SubmissionRunMutation) ExitCode() (r int, exists bool) {
	v := m.exit_code
	if v == nil {
		return
	}
	return *v, true
}

// OldExitCode returns the old "exit_code" field's value of the SubmissionRun entity.
// If the SubmissionRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionRunMutation) OldExitCode(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExitCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExitCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExitCode: %w", err)
	}
	return oldValue.ExitCode, nil
}

// AddExitCode adds i to the "exit_code" field.
func (m *SubmissionRunMutation) AddExitCode(i int) {
	if m.addexit_code != nil {
		*m.addexit_code += i
	} else {
		m.addexit_code = &i
	}
}

// AddedExitCode returns the value that was added to the "exit_code" field in this mutation.
func (m *SubmissionRunMutation) AddedExitCode() (r int, exists bool) {
	v := m.addexit_code
	if v == nil {
		return
	}
	return *v, true
}

// ResetExitCode resets all changes to the "exit_code" field.
func (m *SubmissionRunMutation) ResetExitCode() {
	m.exit_code = nil
	m.addexit_code = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *SubmissionRunMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SubmissionRunMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SubmissionRun entity.
// If the SubmissionRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionRunMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SubmissionRunMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearSubmission clears the "submission" edge to the Submission entity.
func (m *SubmissionRunMutation) ClearSubmission() {
	m.clearedsubmission = true
	m.clearedFields[submissionrun.FieldSubmissionID] = struct{}{}
}

// SubmissionCleared reports if the "submission" edge to the Submission entity was cleared.
func (m *SubmissionRunMutation) SubmissionCleared() bool {
	return m.clearedsubmission
}

// SubmissionIDs returns the "submission" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SubmissionID instead. It exists only for internal usage by the builders.
func (m *SubmissionRunMutation) SubmissionIDs() (ids []int) {
	if id := m.submission; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSubmission resets all changes to the "submission" edge.
func (m *SubmissionRunMutation) ResetSubmission() {
	m.submission = nil
	m.clearedsubmission = false
}

// Where appends a list predicates to the SubmissionRunMutation builder.
func (m *SubmissionRunMutation) Where(ps ...predicate.SubmissionRun) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SubmissionRunMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SubmissionRunMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SubmissionRun, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SubmissionRunMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SubmissionRunMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SubmissionRun).
func (m *SubmissionRunMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SubmissionRunMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.submission != nil {
		fields = append(fields, submissionrun.FieldSubmissionID)
	}
	if m.case_index != nil {
		fields = append(fields, submissionrun.FieldCaseIndex)
	}
	if m.verdict != nil {
		fields = append(fields, submissionrun.FieldVerdict)
	}
	if m.passed != nil {
		fields = append(fields, submissionrun.FieldPassed)
	}
	if m.output != nil {
		fields = append(fields, submissionrun.FieldOutput)
	}
	if m.stderr != nil {
		fields = append(fields, submissionrun.FieldStderr)
	}
	if m.execution_time != nil {
		fields = append(fields, submissionrun.FieldExecutionTime)
	}
	if m.memory_kb != nil {
		fields = append(fields, submissionrun.FieldMemoryKB)
	}
	if m.exit_code != nil {
		fields = append(fields, submissionrun.FieldExitCode)
	}
	if m.created_at != nil {
		fields = append(fields, submissionrun.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SubmissionRunMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case submissionrun.FieldSubmissionID:
		return m.SubmissionID()
	case submissionrun.FieldCaseIndex:
		return m.CaseIndex()
	case submissionrun.FieldVerdict:
		return m.Verdict()
	case submissionrun.FieldPassed:
		return m.Passed()
	case submissionrun.FieldOutput:
		return m.Output()
	case submissionrun.FieldStderr:
		return m.Stderr()
	case submissionrun.FieldExecutionTime:
		return m.ExecutionTime()
	case submissionrun.FieldMemoryKB:
		return m.MemoryKB()
	case submissionrun.FieldExitCode:
		return m.ExitCode()
	case submissionrun.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SubmissionRunMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case submissionrun.FieldSubmissionID:
		return m.OldSubmissionID(ctx)
	case submissionrun.FieldCaseIndex:
		return m.OldCaseIndex(ctx)
	case submissionrun.FieldVerdict:
		return m.OldVerdict(ctx)
	case submissionrun.FieldPassed:
		return m.OldPassed(ctx)
	case submissionrun.FieldOutput:
		return m.OldOutput(ctx)
	case submissionrun.FieldStderr:
		return m.OldStderr(ctx)
	case submissionrun.FieldExecutionTime:
		return m.OldExecutionTime(ctx)
	case submissionrun.FieldMemoryKB:
		return m.OldMemoryKB(ctx)
	case submissionrun.FieldExitCode:
		return m.OldExitCode(ctx)
	case submissionrun.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SubmissionRun field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SubmissionRunMutation) SetField(name string, value ent.Value) error {
	switch name {
	case submissionrun.FieldSubmissionID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubmissionID(v)
		return nil
	case submissionrun.FieldCaseIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCaseIndex(v)
		return nil
	case submissionrun.FieldVerdict:
		v, ok := value.(submissionrun.Verdict)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVerdict(v)
		return nil
	case submissionrun.FieldPassed:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPassed(v)
		return nil
	case submissionrun.FieldOutput:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutput(v)
		return nil
	case submissionrun.FieldStderr:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStderr(v)
		return nil
	case submissionrun.FieldExecutionTime:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExecutionTime(v)
		return nil
	case submissionrun.FieldMemoryKB:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMemoryKB(v)
		return nil
	case submissionrun.FieldExitCode:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExitCode(v)
		return nil
	case submissionrun.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SubmissionRun field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SubmissionRunMutation) AddedFields() []string {
	var fields []string
	if m.addcase_index != nil {
		fields = append(fields, submissionrun.FieldCaseIndex)
	}
	if m.addexecution_time != nil {
		fields = append(fields, submissionrun.FieldExecutionTime)
	}
	if m.addmemory_kb != nil {
		fields = append(fields, submissionrun.FieldMemoryKB)
	}
	if m.addexit_code != nil {
		fields = append(fields, submissionrun.FieldExitCode)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SubmissionRunMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case submissionrun.FieldCaseIndex:
		return m.AddedCaseIndex()
	case submissionrun.FieldExecutionTime:
		return m.AddedExecutionTime()
	case submissionrun.FieldMemoryKB:
		return m.AddedMemoryKB()
	case submissionrun.FieldExitCode:
		return m.AddedExitCode()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SubmissionRunMutation) AddField(name string, value ent.Value) error {
	switch name {
	case submissionrun.FieldCaseIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCaseIndex(v)
		return nil
	case submissionrun.FieldExecutionTime:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExecutionTime(v)
		return nil
	case submissionrun.FieldMemoryKB:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMemoryKB(v)
		return nil
	case submissionrun.FieldExitCode:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExitCode(v)
		return nil
	}
	return fmt.Errorf("unknown SubmissionRun numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SubmissionRunMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(submissionrun.FieldOutput) {
		fields = append(fields, submissionrun.FieldOutput)
	}
	if m.FieldCleared(submissionrun.FieldStderr) {
		fields = append(fields, submissionrun.FieldStderr)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SubmissionRunMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SubmissionRunMutation) ClearField(name string) error {
	switch name {
	case submissionrun.FieldOutput:
		m.ClearOutput()
		return nil
	case submissionrun.FieldStderr:
		m.ClearStderr()
		return nil
	}
	return fmt.Errorf("unknown SubmissionRun nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SubmissionRunMutation) ResetField(name string) error {
	switch name {
	case submissionrun.FieldSubmissionID:
		m.ResetSubmissionID()
		return nil
	case submissionrun.FieldCaseIndex:
		m.ResetCaseIndex()
		return nil
	case submissionrun.FieldVerdict:
		m.ResetVerdict()
		return nil
	case submissionrun.FieldPassed:
		m.ResetPassed()
		return nil
	case submissionrun.FieldOutput:
		m.ResetOutput()
		return nil
	case submissionrun.FieldStderr:
		m.ResetStderr()
		return nil
	case submissionrun.FieldExecutionTime:
		m.ResetExecutionTime()
		return nil
	case submissionrun.FieldMemoryKB:
		m.ResetMemoryKB()
		return nil
	case submissionrun.FieldExitCode:
		m.ResetExitCode()
		return nil
	case submissionrun.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown SubmissionRun field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SubmissionRunMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.submission != nil {
		edges = append(edges, submissionrun.EdgeSubmission)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SubmissionRunMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case submissionrun.EdgeSubmission:
		if id := m.submission; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SubmissionRunMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SubmissionRunMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SubmissionRunMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsubmission {
		edges = append(edges, submissionrun.EdgeSubmission)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SubmissionRunMutation) EdgeCleared(name string) bool {
	switch name {
	case submissionrun.EdgeSubmission:
		return m.clearedsubmission
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SubmissionRunMutation) ClearEdge(name string) error {
	switch name {
	case submissionrun.EdgeSubmission:
		m.ClearSubmission()
		return nil
	}
	return fmt.Errorf("unknown SubmissionRun unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SubmissionRunMutation) ResetEdge(name string) error {
	switch name {
	case submissionrun.EdgeSubmission:
		m.ResetSubmission()
		return nil
	}
	return fmt.Errorf("unknown SubmissionRun edge %s", name)
}
