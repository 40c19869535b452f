// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/examkit/proctor/ent/predicate"
	"github.com/examkit/proctor/ent/promptevaluation"
)

// PromptEvaluationDelete is the builder for deleting a PromptEvaluation entity.
type PromptEvaluationDelete struct {
	config
	hooks    []Hook
	mutation *PromptEvaluationMutation
}

// Where appends a list predicates to the PromptEvaluationDelete builder.
func (_d *PromptEvaluationDelete) Where(ps ...predicate.PromptEvaluation) *PromptEvaluationDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *PromptEvaluationDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *PromptEvaluationDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *PromptEvaluationDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(promptevaluation.Table, sqlgraph.NewFieldSpec(promptevaluation.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// PromptEvaluationDeleteOne is the builder for deleting a single PromptEvaluation entity.
type PromptEvaluationDeleteOne struct {
	_d *PromptEvaluationDelete
}

// Where appends a list predicates to the PromptEvaluationDelete builder.
func (_d *PromptEvaluationDeleteOne) Where(ps ...predicate.PromptEvaluation) *PromptEvaluationDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *PromptEvaluationDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{promptevaluation.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *PromptEvaluationDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
