// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/examkit/proctor/ent/problemspec"
)

// ProblemSpecCreate is the builder for creating a ProblemSpec entity.
type ProblemSpecCreate struct {
	config
	mutation *ProblemSpecMutation
	hooks    []Hook
}

// SetSpecID sets the "spec_id" field.
func (_c *ProblemSpecCreate) SetSpecID(v int) *ProblemSpecCreate {
	_c.mutation.SetSpecID(v)
	return _c
}

// SetContext sets the "context" field.
func (_c *ProblemSpecCreate) SetContext(v json.RawMessage) *ProblemSpecCreate {
	_c.mutation.SetContext(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ProblemSpecCreate) SetCreatedAt(v time.Time) *ProblemSpecCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ProblemSpecCreate) SetNillableCreatedAt(v *time.Time) *ProblemSpecCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ProblemSpecCreate) SetUpdatedAt(v time.Time) *ProblemSpecCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ProblemSpecCreate) SetNillableUpdatedAt(v *time.Time) *ProblemSpecCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the ProblemSpecMutation object of the builder.
func (_c *ProblemSpecCreate) Mutation() *ProblemSpecMutation {
	return _c.mutation
}

// Save creates the ProblemSpec in the database.
func (_c *ProblemSpecCreate) Save(ctx context.Context) (*ProblemSpec, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProblemSpecCreate) SaveX(ctx context.Context) *ProblemSpec {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProblemSpecCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProblemSpecCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProblemSpecCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := problemspec.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := problemspec.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProblemSpecCreate) check() error {
	if _, ok := _c.mutation.SpecID(); !ok {
		return &ValidationError{Name: "spec_id", err: errors.New(`ent: missing required field "ProblemSpec.spec_id"`)}
	}
	if v, ok := _c.mutation.SpecID(); ok {
		if err := problemspec.SpecIDValidator(v); err != nil {
			return &ValidationError{Name: "spec_id", err: fmt.Errorf(`ent: validator failed for field "ProblemSpec.spec_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Context(); !ok {
		return &ValidationError{Name: "context", err: errors.New(`ent: missing required field "ProblemSpec.context"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ProblemSpec.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ProblemSpec.updated_at"`)}
	}
	return nil
}

func (_c *ProblemSpecCreate) sqlSave(ctx context.Context) (*ProblemSpec, error) {
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

func (_c *ProblemSpecCreate) createSpec() (*ProblemSpec, *sqlgraph.CreateSpec) {
	var (
		_node = &ProblemSpec{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(problemspec.Table, sqlgraph.NewFieldSpec(problemspec.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SpecID(); ok {
		_spec.SetField(problemspec.FieldSpecID, field.TypeInt, value)
		_node.SpecID = value
	}
	if value, ok := _c.mutation.Context(); ok {
		_spec.SetField(problemspec.FieldContext, field.TypeJSON, value)
		_node.Context = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(problemspec.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(problemspec.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// ProblemSpecCreateBulk is the builder for creating many ProblemSpec entities in bulk.
type ProblemSpecCreateBulk struct {
	config
	err      error
	builders []*ProblemSpecCreate
}

// Save creates the ProblemSpec entities in the database.
func (_c *ProblemSpecCreateBulk) Save(ctx context.Context) ([]*ProblemSpec, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ProblemSpec, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProblemSpecMutation)
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
func (_c *ProblemSpecCreateBulk) SaveX(ctx context.Context) []*ProblemSpec {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProblemSpecCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProblemSpecCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
