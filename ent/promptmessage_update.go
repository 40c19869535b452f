// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/examkit/proctor/ent/predicate"
	"github.com/examkit/proctor/ent/promptmessage"
)

// PromptMessageUpdate is the builder for updating PromptMessage entities.
type PromptMessageUpdate struct {
	config
	hooks    []Hook
	mutation *PromptMessageMutation
}

// Where appends a list predicates to the PromptMessageUpdate builder.
func (_u *PromptMessageUpdate) Where(ps ...predicate.PromptMessage) *PromptMessageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetContent sets the "content" field.
func (_u *PromptMessageUpdate) SetContent(v string) *PromptMessageUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *PromptMessageUpdate) SetNillableContent(v *string) *PromptMessageUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetTokenCount sets the "token_count" field.
func (_u *PromptMessageUpdate) SetTokenCount(v int) *PromptMessageUpdate {
	_u.mutation.ResetTokenCount()
	_u.mutation.SetTokenCount(v)
	return _u
}

// SetNillableTokenCount sets the "token_count" field if the given value is not nil.
func (_u *PromptMessageUpdate) SetNillableTokenCount(v *int) *PromptMessageUpdate {
	if v != nil {
		_u.SetTokenCount(*v)
	}
	return _u
}

// AddTokenCount adds value to the "token_count" field.
func (_u *PromptMessageUpdate) AddTokenCount(v int) *PromptMessageUpdate {
	_u.mutation.AddTokenCount(v)
	return _u
}

// SetMeta sets the "meta" field.
func (_u *PromptMessageUpdate) SetMeta(v map[string]interface{}) *PromptMessageUpdate {
	_u.mutation.SetMeta(v)
	return _u
}

// ClearMeta clears the value of the "meta" field.
func (_u *PromptMessageUpdate) ClearMeta() *PromptMessageUpdate {
	_u.mutation.ClearMeta()
	return _u
}

// Mutation returns the PromptMessageMutation object of the builder.
func (_u *PromptMessageUpdate) Mutation() *PromptMessageMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PromptMessageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PromptMessageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PromptMessageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PromptMessageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PromptMessageUpdate) check() error {
	if v, ok := _u.mutation.TokenCount(); ok {
		if err := promptmessage.TokenCountValidator(v); err != nil {
			return &ValidationError{Name: "token_count", err: fmt.Errorf(`ent: validator failed for field "PromptMessage.token_count": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PromptMessage.session"`)
	}
	return nil
}

func (_u *PromptMessageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(promptmessage.Table, promptmessage.Columns, sqlgraph.NewFieldSpec(promptmessage.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(promptmessage.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.TokenCount(); ok {
		_spec.SetField(promptmessage.FieldTokenCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokenCount(); ok {
		_spec.AddField(promptmessage.FieldTokenCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Meta(); ok {
		_spec.SetField(promptmessage.FieldMeta, field.TypeJSON, value)
	}
	if _u.mutation.MetaCleared() {
		_spec.ClearField(promptmessage.FieldMeta, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{promptmessage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PromptMessageUpdateOne is the builder for updating a single PromptMessage entity.
type PromptMessageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PromptMessageMutation
}

// SetContent sets the "content" field.
func (_u *PromptMessageUpdateOne) SetContent(v string) *PromptMessageUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *PromptMessageUpdateOne) SetNillableContent(v *string) *PromptMessageUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetTokenCount sets the "token_count" field.
func (_u *PromptMessageUpdateOne) SetTokenCount(v int) *PromptMessageUpdateOne {
	_u.mutation.ResetTokenCount()
	_u.mutation.SetTokenCount(v)
	return _u
}

// SetNillableTokenCount sets the "token_count" field if the given value is not nil.
func (_u *PromptMessageUpdateOne) SetNillableTokenCount(v *int) *PromptMessageUpdateOne {
	if v != nil {
		_u.SetTokenCount(*v)
	}
	return _u
}

// AddTokenCount adds value to the "token_count" field.
func (_u *PromptMessageUpdateOne) AddTokenCount(v int) *PromptMessageUpdateOne {
	_u.mutation.AddTokenCount(v)
	return _u
}

// SetMeta sets the "meta" field.
func (_u *PromptMessageUpdateOne) SetMeta(v map[string]interface{}) *PromptMessageUpdateOne {
	_u.mutation.SetMeta(v)
	return _u
}

// ClearMeta clears the value of the "meta" field.
func (_u *PromptMessageUpdateOne) ClearMeta() *PromptMessageUpdateOne {
	_u.mutation.ClearMeta()
	return _u
}

// Mutation returns the PromptMessageMutation object of the builder.
func (_u *PromptMessageUpdateOne) Mutation() *PromptMessageMutation {
	return _u.mutation
}

// Where appends a list predicates to the PromptMessageUpdate builder.
func (_u *PromptMessageUpdateOne) Where(ps ...predicate.PromptMessage) *PromptMessageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PromptMessageUpdateOne) Select(field string, fields ...string) *PromptMessageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PromptMessage entity.
func (_u *PromptMessageUpdateOne) Save(ctx context.Context) (*PromptMessage, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PromptMessageUpdateOne) SaveX(ctx context.Context) *PromptMessage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PromptMessageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PromptMessageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PromptMessageUpdateOne) check() error {
	if v, ok := _u.mutation.TokenCount(); ok {
		if err := promptmessage.TokenCountValidator(v); err != nil {
			return &ValidationError{Name: "token_count", err: fmt.Errorf(`ent: validator failed for field "PromptMessage.token_count": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PromptMessage.session"`)
	}
	return nil
}

func (_u *PromptMessageUpdateOne) sqlSave(ctx context.Context) (_node *PromptMessage, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(promptmessage.Table, promptmessage.Columns, sqlgraph.NewFieldSpec(promptmessage.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PromptMessage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, promptmessage.FieldID)
		for _, f := range fields {
			if !promptmessage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != promptmessage.FieldID {
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
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(promptmessage.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.TokenCount(); ok {
		_spec.SetField(promptmessage.FieldTokenCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokenCount(); ok {
		_spec.AddField(promptmessage.FieldTokenCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Meta(); ok {
		_spec.SetField(promptmessage.FieldMeta, field.TypeJSON, value)
	}
	if _u.mutation.MetaCleared() {
		_spec.ClearField(promptmessage.FieldMeta, field.TypeJSON)
	}
	_node = &PromptMessage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{promptmessage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
