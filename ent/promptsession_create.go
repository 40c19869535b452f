// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/examkit/proctor/ent/promptevaluation"
	"github.com/examkit/proctor/ent/promptmessage"
	"github.com/examkit/proctor/ent/promptsession"
	"github.com/examkit/proctor/ent/submission"
)

// PromptSessionCreate is the builder for creating a PromptSession entity.
type PromptSessionCreate struct {
	config
	mutation *PromptSessionMutation
	hooks    []Hook
}

// SetExamID sets the "exam_id" field.
func (_c *PromptSessionCreate) SetExamID(v int) *PromptSessionCreate {
	_c.mutation.SetExamID(v)
	return _c
}

// SetParticipantID sets the "participant_id" field.
func (_c *PromptSessionCreate) SetParticipantID(v int) *PromptSessionCreate {
	_c.mutation.SetParticipantID(v)
	return _c
}

// SetSpecID sets the "spec_id" field.
func (_c *PromptSessionCreate) SetSpecID(v int) *PromptSessionCreate {
	_c.mutation.SetSpecID(v)
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *PromptSessionCreate) SetStartedAt(v time.Time) *PromptSessionCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *PromptSessionCreate) SetNillableStartedAt(v *time.Time) *PromptSessionCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetEndedAt sets the "ended_at" field.
func (_c *PromptSessionCreate) SetEndedAt(v time.Time) *PromptSessionCreate {
	_c.mutation.SetEndedAt(v)
	return _c
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_c *PromptSessionCreate) SetNillableEndedAt(v *time.Time) *PromptSessionCreate {
	if v != nil {
		_c.SetEndedAt(*v)
	}
	return _c
}

// SetTotalTokens sets the "total_tokens" field.
func (_c *PromptSessionCreate) SetTotalTokens(v int) *PromptSessionCreate {
	_c.mutation.SetTotalTokens(v)
	return _c
}

// SetNillableTotalTokens sets the "total_tokens" field if the given value is not nil.
func (_c *PromptSessionCreate) SetNillableTotalTokens(v *int) *PromptSessionCreate {
	if v != nil {
		_c.SetTotalTokens(*v)
	}
	return _c
}

// AddMessageIDs adds the "messages" edge to the PromptMessage entity by IDs.
func (_c *PromptSessionCreate) AddMessageIDs(ids ...int) *PromptSessionCreate {
	_c.mutation.AddMessageIDs(ids...)
	return _c
}

// AddMessages adds the "messages" edges to the PromptMessage entity.
func (_c *PromptSessionCreate) AddMessages(v ...*PromptMessage) *PromptSessionCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddMessageIDs(ids...)
}

// AddEvaluationIDs adds the "evaluations" edge to the PromptEvaluation entity by IDs.
func (_c *PromptSessionCreate) AddEvaluationIDs(ids ...int) *PromptSessionCreate {
	_c.mutation.AddEvaluationIDs(ids...)
	return _c
}

// AddEvaluations adds the "evaluations" edges to the PromptEvaluation entity.
func (_c *PromptSessionCreate) AddEvaluations(v ...*PromptEvaluation) *PromptSessionCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEvaluationIDs(ids...)
}

// AddSubmissionIDs adds the "submissions" edge to the Submission entity by IDs.
func (_c *PromptSessionCreate) AddSubmissionIDs(ids ...int) *PromptSessionCreate {
	_c.mutation.AddSubmissionIDs(ids...)
	return _c
}

// AddSubmissions adds the "submissions" edges to the Submission entity.
func (_c *PromptSessionCreate) AddSubmissions(v ...*Submission) *PromptSessionCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSubmissionIDs(ids...)
}

// Mutation returns the PromptSessionMutation object of the builder.
func (_c *PromptSessionCreate) Mutation() *PromptSessionMutation {
	return _c.mutation
}

// Save creates the PromptSession in the database.
func (_c *PromptSessionCreate) Save(ctx context.Context) (*PromptSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PromptSessionCreate) SaveX(ctx context.Context) *PromptSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PromptSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PromptSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PromptSessionCreate) defaults() {
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := promptsession.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
	if _, ok := _c.mutation.TotalTokens(); !ok {
		v := promptsession.DefaultTotalTokens
		_c.mutation.SetTotalTokens(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PromptSessionCreate) check() error {
	if _, ok := _c.mutation.ExamID(); !ok {
		return &ValidationError{Name: "exam_id", err: errors.New(`ent: missing required field "PromptSession.exam_id"`)}
	}
	if v, ok := _c.mutation.ExamID(); ok {
		if err := promptsession.ExamIDValidator(v); err != nil {
			return &ValidationError{Name: "exam_id", err: fmt.Errorf(`ent: validator failed for field "PromptSession.exam_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ParticipantID(); !ok {
		return &ValidationError{Name: "participant_id", err: errors.New(`ent: missing required field "PromptSession.participant_id"`)}
	}
	if v, ok := _c.mutation.ParticipantID(); ok {
		if err := promptsession.ParticipantIDValidator(v); err != nil {
			return &ValidationError{Name: "participant_id", err: fmt.Errorf(`ent: validator failed for field "PromptSession.participant_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SpecID(); !ok {
		return &ValidationError{Name: "spec_id", err: errors.New(`ent: missing required field "PromptSession.spec_id"`)}
	}
	if v, ok := _c.mutation.SpecID(); ok {
		if err := promptsession.SpecIDValidator(v); err != nil {
			return &ValidationError{Name: "spec_id", err: fmt.Errorf(`ent: validator failed for field "PromptSession.spec_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "PromptSession.started_at"`)}
	}
	if _, ok := _c.mutation.TotalTokens(); !ok {
		return &ValidationError{Name: "total_tokens", err: errors.New(`ent: missing required field "PromptSession.total_tokens"`)}
	}
	if v, ok := _c.mutation.TotalTokens(); ok {
		if err := promptsession.TotalTokensValidator(v); err != nil {
			return &ValidationError{Name: "total_tokens", err: fmt.Errorf(`ent: validator failed for field "PromptSession.total_tokens": %w`, err)}
		}
	}
	return nil
}

func (_c *PromptSessionCreate) sqlSave(ctx context.Context) (*PromptSession, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PromptSessionCreate) createSpec() (*PromptSession, *sqlgraph.CreateSpec) {
	var (
		_node = &PromptSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(promptsession.Table, sqlgraph.NewFieldSpec(promptsession.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.ExamID(); ok {
		_spec.SetField(promptsession.FieldExamID, field.TypeInt, value)
		_node.ExamID = value
	}
	if value, ok := _c.mutation.ParticipantID(); ok {
		_spec.SetField(promptsession.FieldParticipantID, field.TypeInt, value)
		_node.ParticipantID = value
	}
	if value, ok := _c.mutation.SpecID(); ok {
		_spec.SetField(promptsession.FieldSpecID, field.TypeInt, value)
		_node.SpecID = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(promptsession.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.EndedAt(); ok {
		_spec.SetField(promptsession.FieldEndedAt, field.TypeTime, value)
		_node.EndedAt = &value
	}
	if value, ok := _c.mutation.TotalTokens(); ok {
		_spec.SetField(promptsession.FieldTotalTokens, field.TypeInt, value)
		_node.TotalTokens = value
	}
	if nodes := _c.mutation.MessagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   promptsession.MessagesTable,
			Columns: []string{promptsession.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(promptmessage.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EvaluationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   promptsession.EvaluationsTable,
			Columns: []string{promptsession.EvaluationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(promptevaluation.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SubmissionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   promptsession.SubmissionsTable,
			Columns: []string{promptsession.SubmissionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(submission.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// PromptSessionCreateBulk is the builder for creating many PromptSession entities in bulk.
type PromptSessionCreateBulk struct {
	config
	err      error
	builders []*PromptSessionCreate
}

// Save creates the PromptSession entities in the database.
func (_c *PromptSessionCreateBulk) Save(ctx context.Context) ([]*PromptSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PromptSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PromptSessionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *PromptSessionCreateBulk) SaveX(ctx context.Context) []*PromptSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PromptSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PromptSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
