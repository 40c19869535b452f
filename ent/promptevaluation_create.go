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
	"github.com/examkit/proctor/ent/promptsession"
)

// PromptEvaluationCreate is the builder for creating a PromptEvaluation entity.
type PromptEvaluationCreate struct {
	config
	mutation *PromptEvaluationMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *PromptEvaluationCreate) SetSessionID(v int) *PromptEvaluationCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetTurn sets the "turn" field.
func (_c *PromptEvaluationCreate) SetTurn(v int) *PromptEvaluationCreate {
	_c.mutation.SetTurn(v)
	return _c
}

// SetNillableTurn sets the "turn" field if the given value is not nil.
func (_c *PromptEvaluationCreate) SetNillableTurn(v *int) *PromptEvaluationCreate {
	if v != nil {
		_c.SetTurn(*v)
	}
	return _c
}

// SetEvaluationType sets the "evaluation_type" field.
func (_c *PromptEvaluationCreate) SetEvaluationType(v promptevaluation.EvaluationType) *PromptEvaluationCreate {
	_c.mutation.SetEvaluationType(v)
	return _c
}

// SetNodeName sets the "node_name" field.
func (_c *PromptEvaluationCreate) SetNodeName(v string) *PromptEvaluationCreate {
	_c.mutation.SetNodeName(v)
	return _c
}

// SetNillableNodeName sets the "node_name" field if the given value is not nil.
func (_c *PromptEvaluationCreate) SetNillableNodeName(v *string) *PromptEvaluationCreate {
	if v != nil {
		_c.SetNodeName(*v)
	}
	return _c
}

// SetScore sets the "score" field.
func (_c *PromptEvaluationCreate) SetScore(v float64) *PromptEvaluationCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetAnalysis sets the "analysis" field.
func (_c *PromptEvaluationCreate) SetAnalysis(v string) *PromptEvaluationCreate {
	_c.mutation.SetAnalysis(v)
	return _c
}

// SetNillableAnalysis sets the "analysis" field if the given value is not nil.
func (_c *PromptEvaluationCreate) SetNillableAnalysis(v *string) *PromptEvaluationCreate {
	if v != nil {
		_c.SetAnalysis(*v)
	}
	return _c
}

// SetDetails sets the "details" field.
func (_c *PromptEvaluationCreate) SetDetails(v map[string]interface{}) *PromptEvaluationCreate {
	_c.mutation.SetDetails(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PromptEvaluationCreate) SetCreatedAt(v time.Time) *PromptEvaluationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PromptEvaluationCreate) SetNillableCreatedAt(v *time.Time) *PromptEvaluationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetSession sets the "session" edge to the PromptSession entity.
func (_c *PromptEvaluationCreate) SetSession(v *PromptSession) *PromptEvaluationCreate {
	return _c.SetSessionID(v.ID)
}

// Mutation returns the PromptEvaluationMutation object of the builder.
func (_c *PromptEvaluationCreate) Mutation() *PromptEvaluationMutation {
	return _c.mutation
}

// Save creates the PromptEvaluation in the database.
func (_c *PromptEvaluationCreate) Save(ctx context.Context) (*PromptEvaluation, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PromptEvaluationCreate) SaveX(ctx context.Context) *PromptEvaluation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PromptEvaluationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PromptEvaluationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PromptEvaluationCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := promptevaluation.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PromptEvaluationCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "PromptEvaluation.session_id"`)}
	}
	if _, ok := _c.mutation.EvaluationType(); !ok {
		return &ValidationError{Name: "evaluation_type", err: errors.New(`ent: missing required field "PromptEvaluation.evaluation_type"`)}
	}
	if v, ok := _c.mutation.EvaluationType(); ok {
		if err := promptevaluation.EvaluationTypeValidator(v); err != nil {
			return &ValidationError{Name: "evaluation_type", err: fmt.Errorf(`ent: validator failed for field "PromptEvaluation.evaluation_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "PromptEvaluation.score"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PromptEvaluation.created_at"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "PromptEvaluation.session"`)}
	}
	return nil
}

func (_c *PromptEvaluationCreate) sqlSave(ctx context.Context) (*PromptEvaluation, error) {
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

func (_c *PromptEvaluationCreate) createSpec() (*PromptEvaluation, *sqlgraph.CreateSpec) {
	var (
		_node = &PromptEvaluation{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(promptevaluation.Table, sqlgraph.NewFieldSpec(promptevaluation.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Turn(); ok {
		_spec.SetField(promptevaluation.FieldTurn, field.TypeInt, value)
		_node.Turn = &value
	}
	if value, ok := _c.mutation.EvaluationType(); ok {
		_spec.SetField(promptevaluation.FieldEvaluationType, field.TypeEnum, value)
		_node.EvaluationType = value
	}
	if value, ok := _c.mutation.NodeName(); ok {
		_spec.SetField(promptevaluation.FieldNodeName, field.TypeString, value)
		_node.NodeName = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(promptevaluation.FieldScore, field.TypeFloat64, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.Analysis(); ok {
		_spec.SetField(promptevaluation.FieldAnalysis, field.TypeString, value)
		_node.Analysis = value
	}
	if value, ok := _c.mutation.Details(); ok {
		_spec.SetField(promptevaluation.FieldDetails, field.TypeJSON, value)
		_node.Details = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(promptevaluation.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   promptevaluation.SessionTable,
			Columns: []string{promptevaluation.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(promptsession.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SessionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// PromptEvaluationCreateBulk is the builder for creating many PromptEvaluation entities in bulk.
type PromptEvaluationCreateBulk struct {
	config
	err      error
	builders []*PromptEvaluationCreate
}

// Save creates the PromptEvaluation entities in the database.
func (_c *PromptEvaluationCreateBulk) Save(ctx context.Context) ([]*PromptEvaluation, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PromptEvaluation, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PromptEvaluationMutation)
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
func (_c *PromptEvaluationCreateBulk) SaveX(ctx context.Context) []*PromptEvaluation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PromptEvaluationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PromptEvaluationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
