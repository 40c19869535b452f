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
	"github.com/examkit/proctor/ent/submissionrun"
)

// SubmissionRunUpdate is the builder for updating SubmissionRun entities.
type SubmissionRunUpdate struct {
	config
	hooks    []Hook
	mutation *SubmissionRunMutation
}

// Where appends a list predicates to the SubmissionRunUpdate builder.
func (_u *SubmissionRunUpdate) Where(ps ...predicate.SubmissionRun) *SubmissionRunUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetVerdict sets the "verdict" field.
func (_u *SubmissionRunUpdate) SetVerdict(v submissionrun.Verdict) *SubmissionRunUpdate {
	_u.mutation.SetVerdict(v)
	return _u
}

// SetNillableVerdict sets the "verdict" field if the given value is not nil.
func (_u *SubmissionRunUpdate) SetNillableVerdict(v *submissionrun.Verdict) *SubmissionRunUpdate {
	if v != nil {
		_u.SetVerdict(*v)
	}
	return _u
}

// SetPassed sets the "passed" field.
func (_u *SubmissionRunUpdate) SetPassed(v bool) *SubmissionRunUpdate {
	_u.mutation.SetPassed(v)
	return _u
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_u *SubmissionRunUpdate) SetNillablePassed(v *bool) *SubmissionRunUpdate {
	if v != nil {
		_u.SetPassed(*v)
	}
	return _u
}

// SetOutput sets the "output" field.
func (_u *SubmissionRunUpdate) SetOutput(v string) *SubmissionRunUpdate {
	_u.mutation.SetOutput(v)
	return _u
}

// SetNillableOutput sets the "output" field if the given value is not nil.
func (_u *SubmissionRunUpdate) SetNillableOutput(v *string) *SubmissionRunUpdate {
	if v != nil {
		_u.SetOutput(*v)
	}
	return _u
}

// ClearOutput clears the value of the "output" field.
func (_u *SubmissionRunUpdate) ClearOutput() *SubmissionRunUpdate {
	_u.mutation.ClearOutput()
	return _u
}

// SetStderr sets the "stderr" field.
func (_u *SubmissionRunUpdate) SetStderr(v string) *SubmissionRunUpdate {
	_u.mutation.SetStderr(v)
	return _u
}

// SetNillableStderr sets the "stderr" field if the given value is not nil.
func (_u *SubmissionRunUpdate) SetNillableStderr(v *string) *SubmissionRunUpdate {
	if v != nil {
		_u.SetStderr(*v)
	}
	return _u
}

// ClearStderr clears the value of the "stderr" field.
func (_u *SubmissionRunUpdate) ClearStderr() *SubmissionRunUpdate {
	_u.mutation.ClearStderr()
	return _u
}

// SetExecutionTime sets the "execution_time" field.
func (_u *SubmissionRunUpdate) SetExecutionTime(v float64) *SubmissionRunUpdate {
	_u.mutation.ResetExecutionTime()
	_u.mutation.SetExecutionTime(v)
	return _u
}

// SetNillableExecutionTime sets the "execution_time" field if the given value is not nil.
func (_u *SubmissionRunUpdate) SetNillableExecutionTime(v *float64) *SubmissionRunUpdate {
	if v != nil {
		_u.SetExecutionTime(*v)
	}
	return _u
}

// AddExecutionTime adds value to the "execution_time" field.
func (_u *SubmissionRunUpdate) AddExecutionTime(v float64) *SubmissionRunUpdate {
	_u.mutation.AddExecutionTime(v)
	return _u
}

// SetMemoryKB sets the "memory_kb" field.
func (_u *SubmissionRunUpdate) SetMemoryKB(v int) *SubmissionRunUpdate {
	_u.mutation.ResetMemoryKB()
	_u.mutation.SetMemoryKB(v)
	return _u
}

// SetNillableMemoryKB sets the "memory_kb" field if the given value is not nil.
func (_u *SubmissionRunUpdate) SetNillableMemoryKB(v *int) *SubmissionRunUpdate {
	if v != nil {
		_u.SetMemoryKB(*v)
	}
	return _u
}

// AddMemoryKB adds value to the "memory_kb" field.
func (_u *SubmissionRunUpdate) AddMemoryKB(v int) *SubmissionRunUpdate {
	_u.mutation.AddMemoryKB(v)
	return _u
}

// SetExitCode sets the "exit_code" field.
func (_u *SubmissionRunUpdate) SetExitCode(v int) *SubmissionRunUpdate {
	_u.mutation.ResetExitCode()
	_u.mutation.SetExitCode(v)
	return _u
}

// SetNillableExitCode sets the "exit_code" field if the given value is not nil.
func (_u *SubmissionRunUpdate) SetNillableExitCode(v *int) *SubmissionRunUpdate {
	if v != nil {
		_u.SetExitCode(*v)
	}
	return _u
}

// AddExitCode adds value to the "exit_code" field.
func (_u *SubmissionRunUpdate) AddExitCode(v int) *SubmissionRunUpdate {
	_u.mutation.AddExitCode(v)
	return _u
}

// Mutation returns the SubmissionRunMutation object of the builder.
func (_u *SubmissionRunUpdate) Mutation() *SubmissionRunMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SubmissionRunUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubmissionRunUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SubmissionRunUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubmissionRunUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubmissionRunUpdate) check() error {
	if v, ok := _u.mutation.Verdict(); ok {
		if err := submissionrun.VerdictValidator(v); err != nil {
			return &ValidationError{Name: "verdict", err: fmt.Errorf(`ent: validator failed for field "SubmissionRun.verdict": %w`, err)}
		}
	}
	if _u.mutation.SubmissionCleared() && len(_u.mutation.SubmissionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SubmissionRun.submission"`)
	}
	return nil
}

func (_u *SubmissionRunUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(submissionrun.Table, submissionrun.Columns, sqlgraph.NewFieldSpec(submissionrun.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Verdict(); ok {
		_spec.SetField(submissionrun.FieldVerdict, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Passed(); ok {
		_spec.SetField(submissionrun.FieldPassed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Output(); ok {
		_spec.SetField(submissionrun.FieldOutput, field.TypeString, value)
	}
	if _u.mutation.OutputCleared() {
		_spec.ClearField(submissionrun.FieldOutput, field.TypeString)
	}
	if value, ok := _u.mutation.Stderr(); ok {
		_spec.SetField(submissionrun.FieldStderr, field.TypeString, value)
	}
	if _u.mutation.StderrCleared() {
		_spec.ClearField(submissionrun.FieldStderr, field.TypeString)
	}
	if value, ok := _u.mutation.ExecutionTime(); ok {
		_spec.SetField(submissionrun.FieldExecutionTime, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedExecutionTime(); ok {
		_spec.AddField(submissionrun.FieldExecutionTime, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MemoryKB(); ok {
		_spec.SetField(submissionrun.FieldMemoryKB, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMemoryKB(); ok {
		_spec.AddField(submissionrun.FieldMemoryKB, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExitCode(); ok {
		_spec.SetField(submissionrun.FieldExitCode, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExitCode(); ok {
		_spec.AddField(submissionrun.FieldExitCode, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{submissionrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SubmissionRunUpdateOne is the builder for updating a single SubmissionRun entity.
type SubmissionRunUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SubmissionRunMutation
}

// SetVerdict sets the "verdict" field.
func (_u *SubmissionRunUpdateOne) SetVerdict(v submissionrun.Verdict) *SubmissionRunUpdateOne {
	_u.mutation.SetVerdict(v)
	return _u
}

// SetNillableVerdict sets the "verdict" field if the given value is not nil.
func (_u *SubmissionRunUpdateOne) SetNillableVerdict(v *submissionrun.Verdict) *SubmissionRunUpdateOne {
	if v != nil {
		_u.SetVerdict(*v)
	}
	return _u
}

// SetPassed sets the "passed" field.
func (_u *SubmissionRunUpdateOne) SetPassed(v bool) *SubmissionRunUpdateOne {
	_u.mutation.SetPassed(v)
	return _u
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_u *SubmissionRunUpdateOne) SetNillablePassed(v *bool) *SubmissionRunUpdateOne {
	if v != nil {
		_u.SetPassed(*v)
	}
	return _u
}

// SetOutput sets the "output" field.
func (_u *SubmissionRunUpdateOne) SetOutput(v string) *SubmissionRunUpdateOne {
	_u.mutation.SetOutput(v)
	return _u
}

// SetNillableOutput sets the "output" field if the given value is not nil.
func (_u *SubmissionRunUpdateOne) SetNillableOutput(v *string) *SubmissionRunUpdateOne {
	if v != nil {
		_u.SetOutput(*v)
	}
	return _u
}

// ClearOutput clears the value of the "output" field.
func (_u *SubmissionRunUpdateOne) ClearOutput() *SubmissionRunUpdateOne {
	_u.mutation.ClearOutput()
	return _u
}

// SetStderr sets the "stderr" field.
func (_u *SubmissionRunUpdateOne) SetStderr(v string) *SubmissionRunUpdateOne {
	_u.mutation.SetStderr(v)
	return _u
}

// SetNillableStderr sets the "stderr" field if the given value is not nil.
func (_u *SubmissionRunUpdateOne) SetNillableStderr(v *string) *SubmissionRunUpdateOne {
	if v != nil {
		_u.SetStderr(*v)
	}
	return _u
}

// ClearStderr clears the value of the "stderr" field.
func (_u *SubmissionRunUpdateOne) ClearStderr() *SubmissionRunUpdateOne {
	_u.mutation.ClearStderr()
	return _u
}

// SetExecutionTime sets the "execution_time" field.
func (_u *SubmissionRunUpdateOne) SetExecutionTime(v float64) *SubmissionRunUpdateOne {
	_u.mutation.ResetExecutionTime()
	_u.mutation.SetExecutionTime(v)
	return _u
}

// SetNillableExecutionTime sets the "execution_time" field if the given value is not nil.
func (_u *SubmissionRunUpdateOne) SetNillableExecutionTime(v *float64) *SubmissionRunUpdateOne {
	if v != nil {
		_u.SetExecutionTime(*v)
	}
	return _u
}

// AddExecutionTime adds value to the "execution_time" field.
func (_u *SubmissionRunUpdateOne) AddExecutionTime(v float64) *SubmissionRunUpdateOne {
	_u.mutation.AddExecutionTime(v)
	return _u
}

// SetMemoryKB sets the "memory_kb" field.
func (_u *SubmissionRunUpdateOne) SetMemoryKB(v int) *SubmissionRunUpdateOne {
	_u.mutation.ResetMemoryKB()
	_u.mutation.SetMemoryKB(v)
	return _u
}

// SetNillableMemoryKB sets the "memory_kb" field if the given value is not nil.
func (_u *SubmissionRunUpdateOne) SetNillableMemoryKB(v *int) *SubmissionRunUpdateOne {
	if v != nil {
		_u.SetMemoryKB(*v)
	}
	return _u
}

// AddMemoryKB adds value to the "memory_kb" field.
func (_u *SubmissionRunUpdateOne) AddMemoryKB(v int) *SubmissionRunUpdateOne {
	_u.mutation.AddMemoryKB(v)
	return _u
}

// SetExitCode sets the "exit_code" field.
func (_u *SubmissionRunUpdateOne) SetExitCode(v int) *SubmissionRunUpdateOne {
	_u.mutation.ResetExitCode()
	_u.mutation.SetExitCode(v)
	return _u
}

// SetNillableExitCode sets the "exit_code" field if the given value is not nil.
func (_u *SubmissionRunUpdateOne) SetNillableExitCode(v *int) *SubmissionRunUpdateOne {
	if v != nil {
		_u.SetExitCode(*v)
	}
	return _u
}

// AddExitCode adds value to the "exit_code" field.
func (_u *SubmissionRunUpdateOne) AddExitCode(v int) *SubmissionRunUpdateOne {
	_u.mutation.AddExitCode(v)
	return _u
}

// Mutation returns the SubmissionRunMutation object of the builder.
func (_u *SubmissionRunUpdateOne) Mutation() *SubmissionRunMutation {
	return _u.mutation
}

// Where appends a list predicates to the SubmissionRunUpdate builder.
func (_u *SubmissionRunUpdateOne) Where(ps ...predicate.SubmissionRun) *SubmissionRunUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SubmissionRunUpdateOne) Select(field string, fields ...string) *SubmissionRunUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SubmissionRun entity.
func (_u *SubmissionRunUpdateOne) Save(ctx context.Context) (*SubmissionRun, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubmissionRunUpdateOne) SaveX(ctx context.Context) *SubmissionRun {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SubmissionRunUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubmissionRunUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubmissionRunUpdateOne) check() error {
	if v, ok := _u.mutation.Verdict(); ok {
		if err := submissionrun.VerdictValidator(v); err != nil {
			return &ValidationError{Name: "verdict", err: fmt.Errorf(`ent: validator failed for field "SubmissionRun.verdict": %w`, err)}
		}
	}
	if _u.mutation.SubmissionCleared() && len(_u.mutation.SubmissionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SubmissionRun.submission"`)
	}
	return nil
}

func (_u *SubmissionRunUpdateOne) sqlSave(ctx context.Context) (_node *SubmissionRun, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(submissionrun.Table, submissionrun.Columns, sqlgraph.NewFieldSpec(submissionrun.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SubmissionRun.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, submissionrun.FieldID)
		for _, f := range fields {
			if !submissionrun.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != submissionrun.FieldID {
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
	if value, ok := _u.mutation.Verdict(); ok {
		_spec.SetField(submissionrun.FieldVerdict, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Passed(); ok {
		_spec.SetField(submissionrun.FieldPassed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Output(); ok {
		_spec.SetField(submissionrun.FieldOutput, field.TypeString, value)
	}
	if _u.mutation.OutputCleared() {
		_spec.ClearField(submissionrun.FieldOutput, field.TypeString)
	}
	if value, ok := _u.mutation.Stderr(); ok {
		_spec.SetField(submissionrun.FieldStderr, field.TypeString, value)
	}
	if _u.mutation.StderrCleared() {
		_spec.ClearField(submissionrun.FieldStderr, field.TypeString)
	}
	if value, ok := _u.mutation.ExecutionTime(); ok {
		_spec.SetField(submissionrun.FieldExecutionTime, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedExecutionTime(); ok {
		_spec.AddField(submissionrun.FieldExecutionTime, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MemoryKB(); ok {
		_spec.SetField(submissionrun.FieldMemoryKB, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMemoryKB(); ok {
		_spec.AddField(submissionrun.FieldMemoryKB, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExitCode(); ok {
		_spec.SetField(submissionrun.FieldExitCode, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExitCode(); ok {
		_spec.AddField(submissionrun.FieldExitCode, field.TypeInt, value)
	}
	_node = &SubmissionRun{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{submissionrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
