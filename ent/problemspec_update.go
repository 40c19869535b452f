// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/examkit/proctor/ent/predicate"
	"github.com/examkit/proctor/ent/problemspec"
)

// ProblemSpecUpdate is the builder for updating ProblemSpec entities.
type ProblemSpecUpdate struct {
	config
	hooks    []Hook
	mutation *ProblemSpecMutation
}

// Where appends a list predicates to the ProblemSpecUpdate builder.
func (_u *ProblemSpecUpdate) Where(ps ...predicate.ProblemSpec) *ProblemSpecUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetContext sets the "context" field.
func (_u *ProblemSpecUpdate) SetContext(v json.RawMessage) *ProblemSpecUpdate {
	_u.mutation.SetContext(v)
	return _u
}

// AppendContext appends value to the "context" field.
func (_u *ProblemSpecUpdate) AppendContext(v json.RawMessage) *ProblemSpecUpdate {
	_u.mutation.AppendContext(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProblemSpecUpdate) SetUpdatedAt(v time.Time) *ProblemSpecUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ProblemSpecMutation object of the builder.
func (_u *ProblemSpecUpdate) Mutation() *ProblemSpecMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProblemSpecUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProblemSpecUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProblemSpecUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProblemSpecUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProblemSpecUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := problemspec.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *ProblemSpecUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(problemspec.Table, problemspec.Columns, sqlgraph.NewFieldSpec(problemspec.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Context(); ok {
		_spec.SetField(problemspec.FieldContext, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedContext(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, problemspec.FieldContext, value)
		})
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(problemspec.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{problemspec.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProblemSpecUpdateOne is the builder for updating a single ProblemSpec entity.
type ProblemSpecUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProblemSpecMutation
}

// SetContext sets the "context" field.
func (_u *ProblemSpecUpdateOne) SetContext(v json.RawMessage) *ProblemSpecUpdateOne {
	_u.mutation.SetContext(v)
	return _u
}

// AppendContext appends value to the "context" field.
func (_u *ProblemSpecUpdateOne) AppendContext(v json.RawMessage) *ProblemSpecUpdateOne {
	_u.mutation.AppendContext(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProblemSpecUpdateOne) SetUpdatedAt(v time.Time) *ProblemSpecUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ProblemSpecMutation object of the builder.
func (_u *ProblemSpecUpdateOne) Mutation() *ProblemSpecMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProblemSpecUpdate builder.
func (_u *ProblemSpecUpdateOne) Where(ps ...predicate.ProblemSpec) *ProblemSpecUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProblemSpecUpdateOne) Select(field string, fields ...string) *ProblemSpecUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ProblemSpec entity.
func (_u *ProblemSpecUpdateOne) Save(ctx context.Context) (*ProblemSpec, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProblemSpecUpdateOne) SaveX(ctx context.Context) *ProblemSpec {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProblemSpecUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProblemSpecUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProblemSpecUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := problemspec.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *ProblemSpecUpdateOne) sqlSave(ctx context.Context) (_node *ProblemSpec, err error) {
	_spec := sqlgraph.NewUpdateSpec(problemspec.Table, problemspec.Columns, sqlgraph.NewFieldSpec(problemspec.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProblemSpec.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, problemspec.FieldID)
		for _, f := range fields {
			if !problemspec.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != problemspec.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Context(); ok {
		_spec.SetField(problemspec.FieldContext, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedContext(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, problemspec.FieldContext, value)
		})
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(problemspec.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &ProblemSpec{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{problemspec.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
