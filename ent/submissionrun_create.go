// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/examkit/proctor/ent/submission"
	"github.com/examkit/proctor/ent/submissionrun"
)

// SubmissionRunCreate is the builder for creating a SubmissionRun entity.
type SubmissionRunCreate struct {
	config
	mutation *SubmissionRunMutation
	hooks    []Hook
}

// SetSubmissionID sets the "submission_id" field.
func (_c *SubmissionRunCreate) SetSubmissionID(v int) *SubmissionRunCreate {
	_c.mutation.SetSubmissionID(v)
	return _c
}

// SetCaseIndex sets the "case_index" field.
func (_c *SubmissionRunCreate) SetCaseIndex(v int) *SubmissionRunCreate {
	_c.mutation.SetCaseIndex(v)
	return _c
}

// SetVerdict sets the "verdict" field.
func (_c *SubmissionRunCreate) SetVerdict(v submissionrun.Verdict) *SubmissionRunCreate {
	_c.mutation.SetVerdict(v)
	return _c
}

// SetPassed sets the "passed" field.
func (_c *SubmissionRunCreate) SetPassed(v bool) *SubmissionRunCreate {
	_c.mutation.SetPassed(v)
	return _c
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_c *SubmissionRunCreate) SetNillablePassed(v *bool) *SubmissionRunCreate {
	if v != nil {
		_c.SetPassed(*v)
	}
	return _c
}

// SetOutput sets the "output" field.
func (_c *SubmissionRunCreate) SetOutput(v string) *SubmissionRunCreate {
	_c.mutation.SetOutput(v)
	return _c
}

// SetNillableOutput sets the "output" field if the given value is not nil.
func (_c *SubmissionRunCreate) SetNillableOutput(v *string) *SubmissionRunCreate {
	if v != nil {
		_c.SetOutput(*v)
	}
	return _c
}

// SetStderr sets the "stderr" field.
func (_c *SubmissionRunCreate) SetStderr(v string) *SubmissionRunCreate {
	_c.mutation.SetStderr(v)
	return _c
}

// SetNillableStderr sets the "stderr" field if the given value is not nil.
func (_c *SubmissionRunCreate) SetNillableStderr(v *string) *SubmissionRunCreate {
	if v != nil {
		_c.SetStderr(*v)
	}
	return _c
}

// SetExecutionTime sets the "execution_time" field.
func (_c *SubmissionRunCreate) SetExecutionTime(v float64) *SubmissionRunCreate {
	_c.mutation.SetExecutionTime(v)
	return _c
}

// SetNillableExecutionTime sets the "execution_time" field if the given value is not nil.
func (_c *SubmissionRunCreate) SetNillableExecutionTime(v *float64) *SubmissionRunCreate {
	if v != nil {
		_c.SetExecutionTime(*v)
	}
	return _c
}

// SetMemoryKB sets the "memory_kb" field.
func (_c *SubmissionRunCreate) SetMemoryKB(v int) *SubmissionRunCreate {
	_c.mutation.SetMemoryKB(v)
	return _c
}

// SetNillableMemoryKB sets the "memory_kb" field if the given value is not nil.
func (_c *SubmissionRunCreate) SetNillableMemoryKB(v *int) *SubmissionRunCreate {
	if v != nil {
		_c.SetMemoryKB(*v)
	}
	return _c
}

// SetExitCode sets the "exit_code" field.
func (_c *SubmissionRunCreate) SetExitCode(v int) *SubmissionRunCreate {
	_c.mutation.SetExitCode(v)
	return _c
}

// SetNillableExitCode sets the "exit_code" field if the given value is not nil.
func (_c *SubmissionRunCreate) SetNillableExitCode(v *int) *SubmissionRunCreate {
	if v != nil {
		_c.SetExitCode(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SubmissionRunCreate) SetCreatedAt(v time.Time) *SubmissionRunCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SubmissionRunCreate) SetNillableCreatedAt(v *time.Time) *SubmissionRunCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetSubmission sets the "submission" edge to the Submission entity.
func (_c *SubmissionRunCreate) SetSubmission(v *Submission) *SubmissionRunCreate {
	return _c.SetSubmissionID(v.ID)
}

// Mutation returns the SubmissionRunMutation object of the builder.
func (_c *SubmissionRunCreate) Mutation() *SubmissionRunMutation {
	return _c.mutation
}

// Save creates the SubmissionRun in the database.
func (_c *SubmissionRunCreate) Save(ctx context.Context) (*SubmissionRun, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SubmissionRunCreate) SaveX(ctx context.Context) *SubmissionRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SubmissionRunCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SubmissionRunCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SubmissionRunCreate) defaults() {
	if _, ok := _c.mutation.Passed(); !ok {
		v := submissionrun.DefaultPassed
		_c.mutation.SetPassed(v)
	}
	if _, ok := _c.mutation.ExecutionTime(); !ok {
		v := submissionrun.DefaultExecutionTime
		_c.mutation.SetExecutionTime(v)
	}
	if _, ok := _c.mutation.MemoryKB(); !ok {
		v := submissionrun.DefaultMemoryKB
		_c.mutation.SetMemoryKB(v)
	}
	if _, ok := _c.mutation.ExitCode(); !ok {
		v := submissionrun.DefaultExitCode
		_c.mutation.SetExitCode(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := submissionrun.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SubmissionRunCreate) check() error {
	if _, ok := _c.mutation.SubmissionID(); !ok {
		return &ValidationError{Name: "submission_id", err: errors.New(`ent: missing required field "SubmissionRun.submission_id"`)}
	}
	if _, ok := _c.mutation.CaseIndex(); !ok {
		return &ValidationError{Name: "case_index", err: errors.New(`ent: missing required field "SubmissionRun.case_index"`)}
	}
	if v, ok := _c.mutation.CaseIndex(); ok {
		if err := submissionrun.CaseIndexValidator(v); err != nil {
			return &ValidationError{Name: "case_index", err: fmt.Errorf(`ent: validator failed for field "SubmissionRun.case_index": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Verdict(); !ok {
		return &ValidationError{Name: "verdict", err: errors.New(`ent: missing required field "SubmissionRun.verdict"`)}
	}
	if v, ok := _c.mutation.Verdict(); ok {
		if err := submissionrun.VerdictValidator(v); err != nil {
			return &ValidationError{Name: "verdict", err: fmt.Errorf(`ent: validator failed for field "SubmissionRun.verdict": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Passed(); !ok {
		return &ValidationError{Name: "passed", err: errors.New(`ent: missing required field "SubmissionRun.passed"`)}
	}
	if _, ok := _c.mutation.ExecutionTime(); !ok {
		return &ValidationError{Name: "execution_time", err: errors.New(`ent: missing required field "SubmissionRun.execution_time"`)}
	}
	if _, ok := _c.mutation.MemoryKB(); !ok {
		return &ValidationError{Name: "memory_kb", err: errors.New(`ent: missing required field "SubmissionRun.memory_kb"`)}
	}
	if _, ok := _c.mutation.ExitCode(); !ok {
		return &ValidationError{Name: "exit_code", err: errors.New(`ent: missing required field "SubmissionRun.exit_code"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SubmissionRun.created_at"`)}
	}
	if len(_c.mutation.SubmissionIDs()) == 0 {
		return &ValidationError{Name: "submission", err: errors.New(`ent: missing required edge "SubmissionRun.submission"`)}
	}
	return nil
}

func (_c *SubmissionRunCreate) sqlSave(ctx context.Context) (*SubmissionRun, error) {
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

func (_c *SubmissionRunCreate) createSpec() (*SubmissionRun, *sqlgraph.CreateSpec) {
	var (
		_node = &SubmissionRun{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(submissionrun.Table, sqlgraph.NewFieldSpec(submissionrun.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.CaseIndex(); ok {
		_spec.SetField(submissionrun.FieldCaseIndex, field.TypeInt, value)
		_node.CaseIndex = value
	}
	if value, ok := _c.mutation.Verdict(); ok {
		_spec.SetField(submissionrun.FieldVerdict, field.TypeEnum, value)
		_node.Verdict = value
	}
	if value, ok := _c.mutation.Passed(); ok {
		_spec.SetField(submissionrun.FieldPassed, field.TypeBool, value)
		_node.Passed = value
	}
	if value, ok := _c.mutation.Output(); ok {
		_spec.SetField(submissionrun.FieldOutput, field.TypeString, value)
		_node.Output = value
	}
	if value, ok := _c.mutation.Stderr(); ok {
		_spec.SetField(submissionrun.FieldStderr, field.TypeString, value)
		_node.Stderr = value
	}
	if value, ok := _c.mutation.ExecutionTime(); ok {
		_spec.SetField(submissionrun.FieldExecutionTime, field.TypeFloat64, value)
		_node.ExecutionTime = value
	}
	if value, ok := _c.mutation.MemoryKB(); ok {
		_spec.SetField(submissionrun.FieldMemoryKB, field.TypeInt, value)
		_node.MemoryKB = value
	}
	if value, ok := _c.mutation.ExitCode(); ok {
		_spec.SetField(submissionrun.FieldExitCode, field.TypeInt, value)
		_node.ExitCode = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(submissionrun.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.SubmissionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   submissionrun.SubmissionTable,
			Columns: []string{submissionrun.SubmissionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(submission.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SubmissionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SubmissionRunCreateBulk is the builder for creating many SubmissionRun entities in bulk.
type SubmissionRunCreateBulk struct {
	config
	err      error
	builders []*SubmissionRunCreate
}

// Save creates the SubmissionRun entities in the database.
func (_c *SubmissionRunCreateBulk) Save(ctx context.Context) ([]*SubmissionRun, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SubmissionRun, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SubmissionRunMutation)
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
func (_c *SubmissionRunCreateBulk) SaveX(ctx context.Context) []*SubmissionRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SubmissionRunCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SubmissionRunCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
