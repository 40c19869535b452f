// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/examkit/proctor/ent/score"
	"github.com/examkit/proctor/ent/submission"
)

// ScoreCreate is the builder for creating a Score entity.
type ScoreCreate struct {
	config
	mutation *ScoreMutation
	hooks    []Hook
}

// SetSubmissionID sets the "submission_id" field.
func (_c *ScoreCreate) SetSubmissionID(v int) *ScoreCreate {
	_c.mutation.SetSubmissionID(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *ScoreCreate) SetSessionID(v int) *ScoreCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetPromptScore sets the "prompt_score" field.
func (_c *ScoreCreate) SetPromptScore(v float64) *ScoreCreate {
	_c.mutation.SetPromptScore(v)
	return _c
}

// SetNillablePromptScore sets the "prompt_score" field if the given value is not nil.
func (_c *ScoreCreate) SetNillablePromptScore(v *float64) *ScoreCreate {
	if v != nil {
		_c.SetPromptScore(*v)
	}
	return _c
}

// SetPerformanceScore sets the "performance_score" field.
func (_c *ScoreCreate) SetPerformanceScore(v float64) *ScoreCreate {
	_c.mutation.SetPerformanceScore(v)
	return _c
}

// SetCorrectnessScore sets the "correctness_score" field.
func (_c *ScoreCreate) SetCorrectnessScore(v float64) *ScoreCreate {
	_c.mutation.SetCorrectnessScore(v)
	return _c
}

// SetTotalScore sets the "total_score" field.
func (_c *ScoreCreate) SetTotalScore(v float64) *ScoreCreate {
	_c.mutation.SetTotalScore(v)
	return _c
}

// SetGrade sets the "grade" field.
func (_c *ScoreCreate) SetGrade(v string) *ScoreCreate {
	_c.mutation.SetGrade(v)
	return _c
}

// SetRubric sets the "rubric" field.
func (_c *ScoreCreate) SetRubric(v map[string]interface{}) *ScoreCreate {
	_c.mutation.SetRubric(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ScoreCreate) SetCreatedAt(v time.Time) *ScoreCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ScoreCreate) SetNillableCreatedAt(v *time.Time) *ScoreCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetSubmission sets the "submission" edge to the Submission entity.
func (_c *ScoreCreate) SetSubmission(v *Submission) *ScoreCreate {
	return _c.SetSubmissionID(v.ID)
}

// Mutation returns the ScoreMutation object of the builder.
func (_c *ScoreCreate) Mutation() *ScoreMutation {
	return _c.mutation
}

// Save creates the Score in the database.
func (_c *ScoreCreate) Save(ctx context.Context) (*Score, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ScoreCreate) SaveX(ctx context.Context) *Score {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScoreCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScoreCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ScoreCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := score.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ScoreCreate) check() error {
	if _, ok := _c.mutation.SubmissionID(); !ok {
		return &ValidationError{Name: "submission_id", err: errors.New(`ent: missing required field "Score.submission_id"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "Score.session_id"`)}
	}
	if _, ok := _c.mutation.PerformanceScore(); !ok {
		return &ValidationError{Name: "performance_score", err: errors.New(`ent: missing required field "Score.performance_score"`)}
	}
	if _, ok := _c.mutation.CorrectnessScore(); !ok {
		return &ValidationError{Name: "correctness_score", err: errors.New(`ent: missing required field "Score.correctness_score"`)}
	}
	if _, ok := _c.mutation.TotalScore(); !ok {
		return &ValidationError{Name: "total_score", err: errors.New(`ent: missing required field "Score.total_score"`)}
	}
	if _, ok := _c.mutation.Grade(); !ok {
		return &ValidationError{Name: "grade", err: errors.New(`ent: missing required field "Score.grade"`)}
	}
	if v, ok := _c.mutation.Grade(); ok {
		if err := score.GradeValidator(v); err != nil {
			return &ValidationError{Name: "grade", err: fmt.Errorf(`ent: validator failed for field "Score.grade": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Score.created_at"`)}
	}
	if len(_c.mutation.SubmissionIDs()) == 0 {
		return &ValidationError{Name: "submission", err: errors.New(`ent: missing required edge "Score.submission"`)}
	}
	return nil
}

func (_c *ScoreCreate) sqlSave(ctx context.Context) (*Score, error) {
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

func (_c *ScoreCreate) createSpec() (*Score, *sqlgraph.CreateSpec) {
	var (
		_node = &Score{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(score.Table, sqlgraph.NewFieldSpec(score.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(score.FieldSessionID, field.TypeInt, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.PromptScore(); ok {
		_spec.SetField(score.FieldPromptScore, field.TypeFloat64, value)
		_node.PromptScore = &value
	}
	if value, ok := _c.mutation.PerformanceScore(); ok {
		_spec.SetField(score.FieldPerformanceScore, field.TypeFloat64, value)
		_node.PerformanceScore = value
	}
	if value, ok := _c.mutation.CorrectnessScore(); ok {
		_spec.SetField(score.FieldCorrectnessScore, field.TypeFloat64, value)
		_node.CorrectnessScore = value
	}
	if value, ok := _c.mutation.TotalScore(); ok {
		_spec.SetField(score.FieldTotalScore, field.TypeFloat64, value)
		_node.TotalScore = value
	}
	if value, ok := _c.mutation.Grade(); ok {
		_spec.SetField(score.FieldGrade, field.TypeString, value)
		_node.Grade = value
	}
	if value, ok := _c.mutation.Rubric(); ok {
		_spec.SetField(score.FieldRubric, field.TypeJSON, value)
		_node.Rubric = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(score.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.SubmissionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   score.SubmissionTable,
			Columns: []string{score.SubmissionColumn},
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

// ScoreCreateBulk is the builder for creating many Score entities in bulk.
type ScoreCreateBulk struct {
	config
	err      error
	builders []*ScoreCreate
}

// Save creates the Score entities in the database.
func (_c *ScoreCreateBulk) Save(ctx context.Context) ([]*Score, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Score, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ScoreMutation)
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
func (_c *ScoreCreateBulk) SaveX(ctx context.Context) []*Score {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScoreCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScoreCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
