// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/examkit/proctor/ent/promptmessage"
	"github.com/examkit/proctor/ent/promptsession"
)

// PromptMessageCreate is the builder for creating a PromptMessage entity.
type PromptMessageCreate struct {
	config
	mutation *PromptMessageMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *PromptMessageCreate) SetSessionID(v int) *PromptMessageCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetTurn sets the "turn" field.
func (_c *PromptMessageCreate) SetTurn(v int) *PromptMessageCreate {
	_c.mutation.SetTurn(v)
	return _c
}

// SetRole sets the "role" field.
func (_c *PromptMessageCreate) SetRole(v promptmessage.Role) *PromptMessageCreate {
	_c.mutation.SetRole(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *PromptMessageCreate) SetContent(v string) *PromptMessageCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetTokenCount sets the "token_count" field.
func (_c *PromptMessageCreate) SetTokenCount(v int) *PromptMessageCreate {
	_c.mutation.SetTokenCount(v)
	return _c
}

// SetNillableTokenCount sets the "token_count" field if the given value is not nil.
func (_c *PromptMessageCreate) SetNillableTokenCount(v *int) *PromptMessageCreate {
	if v != nil {
		_c.SetTokenCount(*v)
	}
	return _c
}

// SetMeta sets the "meta" field.
func (_c *PromptMessageCreate) SetMeta(v map[string]interface{}) *PromptMessageCreate {
	_c.mutation.SetMeta(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PromptMessageCreate) SetCreatedAt(v time.Time) *PromptMessageCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PromptMessageCreate) SetNillableCreatedAt(v *time.Time) *PromptMessageCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetSession sets the "session" edge to the PromptSession entity.
func (_c *PromptMessageCreate) SetSession(v *PromptSession) *PromptMessageCreate {
	return _c.SetSessionID(v.ID)
}

// Mutation returns the PromptMessageMutation object of the builder.
func (_c *PromptMessageCreate) Mutation() *PromptMessageMutation {
	return _c.mutation
}

// Save creates the PromptMessage in the database.
func (_c *PromptMessageCreate) Save(ctx context.Context) (*PromptMessage, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PromptMessageCreate) SaveX(ctx context.Context) *PromptMessage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PromptMessageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PromptMessageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PromptMessageCreate) defaults() {
	if _, ok := _c.mutation.TokenCount(); !ok {
		v := promptmessage.DefaultTokenCount
		_c.mutation.SetTokenCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := promptmessage.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PromptMessageCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "PromptMessage.session_id"`)}
	}
	if _, ok := _c.mutation.Turn(); !ok {
		return &ValidationError{Name: "turn", err: errors.New(`ent: missing required field "PromptMessage.turn"`)}
	}
	if v, ok := _c.mutation.Turn(); ok {
		if err := promptmessage.TurnValidator(v); err != nil {
			return &ValidationError{Name: "turn", err: fmt.Errorf(`ent: validator failed for field "PromptMessage.turn": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Role(); !ok {
		return &ValidationError{Name: "role", err: errors.New(`ent: missing required field "PromptMessage.role"`)}
	}
	if v, ok := _c.mutation.Role(); ok {
		if err := promptmessage.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "PromptMessage.role": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "PromptMessage.content"`)}
	}
	if _, ok := _c.mutation.TokenCount(); !ok {
		return &ValidationError{Name: "token_count", err: errors.New(`ent: missing required field "PromptMessage.token_count"`)}
	}
	if v, ok := _c.mutation.TokenCount(); ok {
		if err := promptmessage.TokenCountValidator(v); err != nil {
			return &ValidationError{Name: "token_count", err: fmt.Errorf(`ent: validator failed for field "PromptMessage.token_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PromptMessage.created_at"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "PromptMessage.session"`)}
	}
	return nil
}

func (_c *PromptMessageCreate) sqlSave(ctx context.Context) (*PromptMessage, error) {
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

func (_c *PromptMessageCreate) createSpec() (*PromptMessage, *sqlgraph.CreateSpec) {
	var (
		_node = &PromptMessage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(promptmessage.Table, sqlgraph.NewFieldSpec(promptmessage.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Turn(); ok {
		_spec.SetField(promptmessage.FieldTurn, field.TypeInt, value)
		_node.Turn = value
	}
	if value, ok := _c.mutation.Role(); ok {
		_spec.SetField(promptmessage.FieldRole, field.TypeEnum, value)
		_node.Role = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(promptmessage.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.TokenCount(); ok {
		_spec.SetField(promptmessage.FieldTokenCount, field.TypeInt, value)
		_node.TokenCount = value
	}
	if value, ok := _c.mutation.Meta(); ok {
		_spec.SetField(promptmessage.FieldMeta, field.TypeJSON, value)
		_node.Meta = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(promptmessage.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   promptmessage.SessionTable,
			Columns: []string{promptmessage.SessionColumn},
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

// PromptMessageCreateBulk is the builder for creating many PromptMessage entities in bulk.
type PromptMessageCreateBulk struct {
	config
	err      error
	builders []*PromptMessageCreate
}

// Save creates the PromptMessage entities in the database.
func (_c *PromptMessageCreateBulk) Save(ctx context.Context) ([]*PromptMessage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PromptMessage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PromptMessageMutation)
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
func (_c *PromptMessageCreateBulk) SaveX(ctx context.Context) []*PromptMessage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PromptMessageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PromptMessageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
