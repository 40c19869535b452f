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
	"github.com/examkit/proctor/ent/score"
)

// ScoreUpdate is the builder for updating Score entities.
type ScoreUpdate struct {
	config
	hooks    []Hook
	mutation *ScoreMutation
}

// Where appends a list predicates to the ScoreUpdate builder.
func (_u *ScoreUpdate) Where(ps ...predicate.Score) *ScoreUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPromptScore sets the "prompt_score" field.
func (_u *ScoreUpdate) SetPromptScore(v float64) *ScoreUpdate {
	_u.mutation.ResetPromptScore()
	_u.mutation.SetPromptScore(v)
	return _u
}

// SetNillablePromptScore sets the "prompt_score" field if the given value is not nil.
func (_u *ScoreUpdate) SetNillablePromptScore(v *float64) *ScoreUpdate {
	if v != nil {
		_u.SetPromptScore(*v)
	}
	return _u
}

// AddPromptScore adds value to the "prompt_score" field.
func (_u *ScoreUpdate) AddPromptScore(v float64) *ScoreUpdate {
	_u.mutation.AddPromptScore(v)
	return _u
}

// ClearPromptScore clears the value of the "prompt_score" field.
func (_u *ScoreUpdate) ClearPromptScore() *ScoreUpdate {
	_u.mutation.ClearPromptScore()
	return _u
}

// SetPerformanceScore sets the "performance_score" field.
func (_u *ScoreUpdate) SetPerformanceScore(v float64) *ScoreUpdate {
	_u.mutation.ResetPerformanceScore()
	_u.mutation.SetPerformanceScore(v)
	return _u
}

// SetNillablePerformanceScore sets the "performance_score" field if the given value is not nil.
func (_u *ScoreUpdate) SetNillablePerformanceScore(v *float64) *ScoreUpdate {
	if v != nil {
		_u.SetPerformanceScore(*v)
	}
	return _u
}

// AddPerformanceScore adds value to the "performance_score" field.
func (_u *ScoreUpdate) AddPerformanceScore(v float64) *ScoreUpdate {
	_u.mutation.AddPerformanceScore(v)
	return _u
}

// SetCorrectnessScore sets the "correctness_score" field.
func (_u *ScoreUpdate) SetCorrectnessScore(v float64) *ScoreUpdate {
	_u.mutation.ResetCorrectnessScore()
	_u.mutation.SetCorrectnessScore(v)
	return _u
}

// SetNillableCorrectnessScore sets the "correctness_score" field if the given value is not nil.
func (_u *ScoreUpdate) SetNillableCorrectnessScore(v *float64) *ScoreUpdate {
	if v != nil {
		_u.SetCorrectnessScore(*v)
	}
	return _u
}

// AddCorrectnessScore adds value to the "correctness_score" field.
func (_u *ScoreUpdate) AddCorrectnessScore(v float64) *ScoreUpdate {
	_u.mutation.AddCorrectnessScore(v)
	return _u
}

// SetTotalScore sets the "total_score" field.
func (_u *ScoreUpdate) SetTotalScore(v float64) *ScoreUpdate {
	_u.mutation.ResetTotalScore()
	_u.mutation.SetTotalScore(v)
	return _u
}

// SetNillableTotalScore sets the "total_score" field if the given value is not nil.
func (_u *ScoreUpdate) SetNillableTotalScore(v *float64) *ScoreUpdate {
	if v != nil {
		_u.SetTotalScore(*v)
	}
	return _u
}

// AddTotalScore adds value to the "total_score" field.
func (_u *ScoreUpdate) AddTotalScore(v float64) *ScoreUpdate {
	_u.mutation.AddTotalScore(v)
	return _u
}

// SetGrade sets the "grade" field.
func (_u *ScoreUpdate) SetGrade(v string) *ScoreUpdate {
	_u.mutation.SetGrade(v)
	return _u
}

// SetNillableGrade sets the "grade" field if the given value is not nil.
func (_u *ScoreUpdate) SetNillableGrade(v *string) *ScoreUpdate {
	if v != nil {
		_u.SetGrade(*v)
	}
	return _u
}

// SetRubric sets the "rubric" field.
func (_u *ScoreUpdate) SetRubric(v map[string]interface{}) *ScoreUpdate {
	_u.mutation.SetRubric(v)
	return _u
}

// ClearRubric clears the value of the "rubric" field.
func (_u *ScoreUpdate) ClearRubric() *ScoreUpdate {
	_u.mutation.ClearRubric()
	return _u
}

// Mutation returns the ScoreMutation object of the builder.
func (_u *ScoreUpdate) Mutation() *ScoreMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ScoreUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScoreUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ScoreUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScoreUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScoreUpdate) check() error {
	if v, ok := _u.mutation.Grade(); ok {
		if err := score.GradeValidator(v); err != nil {
			return &ValidationError{Name: "grade", err: fmt.Errorf(`ent: validator failed for field "Score.grade": %w`, err)}
		}
	}
	if _u.mutation.SubmissionCleared() && len(_u.mutation.SubmissionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Score.submission"`)
	}
	return nil
}

func (_u *ScoreUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(score.Table, score.Columns, sqlgraph.NewFieldSpec(score.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PromptScore(); ok {
		_spec.SetField(score.FieldPromptScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPromptScore(); ok {
		_spec.AddField(score.FieldPromptScore, field.TypeFloat64, value)
	}
	if _u.mutation.PromptScoreCleared() {
		_spec.ClearField(score.FieldPromptScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.PerformanceScore(); ok {
		_spec.SetField(score.FieldPerformanceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPerformanceScore(); ok {
		_spec.AddField(score.FieldPerformanceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CorrectnessScore(); ok {
		_spec.SetField(score.FieldCorrectnessScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCorrectnessScore(); ok {
		_spec.AddField(score.FieldCorrectnessScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TotalScore(); ok {
		_spec.SetField(score.FieldTotalScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalScore(); ok {
		_spec.AddField(score.FieldTotalScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Grade(); ok {
		_spec.SetField(score.FieldGrade, field.TypeString, value)
	}
	if value, ok := _u.mutation.Rubric(); ok {
		_spec.SetField(score.FieldRubric, field.TypeJSON, value)
	}
	if _u.mutation.RubricCleared() {
		_spec.ClearField(score.FieldRubric, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{score.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ScoreUpdateOne is the builder for updating a single Score entity.
type ScoreUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ScoreMutation
}

// SetPromptScore sets the "prompt_score" field.
func (_u *ScoreUpdateOne) SetPromptScore(v float64) *ScoreUpdateOne {
	_u.mutation.ResetPromptScore()
	_u.mutation.SetPromptScore(v)
	return _u
}

// SetNillablePromptScore sets the "prompt_score" field if the given value is not nil.
func (_u *ScoreUpdateOne) SetNillablePromptScore(v *float64) *ScoreUpdateOne {
	if v != nil {
		_u.SetPromptScore(*v)
	}
	return _u
}

// AddPromptScore adds value to the "prompt_score" field.
func (_u *ScoreUpdateOne) AddPromptScore(v float64) *ScoreUpdateOne {
	_u.mutation.AddPromptScore(v)
	return _u
}

// ClearPromptScore clears the value of the "prompt_score" field.
func (_u *ScoreUpdateOne) ClearPromptScore() *ScoreUpdateOne {
	_u.mutation.ClearPromptScore()
	return _u
}

// SetPerformanceScore sets the "performance_score" field.
func (_u *ScoreUpdateOne) SetPerformanceScore(v float64) *ScoreUpdateOne {
	_u.mutation.ResetPerformanceScore()
	_u.mutation.SetPerformanceScore(v)
	return _u
}

// SetNillablePerformanceScore sets the "performance_score" field if the given value is not nil.
func (_u *ScoreUpdateOne) SetNillablePerformanceScore(v *float64) *ScoreUpdateOne {
	if v != nil {
		_u.SetPerformanceScore(*v)
	}
	return _u
}

// AddPerformanceScore adds value to the "performance_score" field.
func (_u *ScoreUpdateOne) AddPerformanceScore(v float64) *ScoreUpdateOne {
	_u.mutation.AddPerformanceScore(v)
	return _u
}

// SetCorrectnessScore sets the "correctness_score" field.
func (_u *ScoreUpdateOne) SetCorrectnessScore(v float64) *ScoreUpdateOne {
	_u.mutation.ResetCorrectnessScore()
	_u.mutation.SetCorrectnessScore(v)
	return _u
}

// SetNillableCorrectnessScore sets the "correctness_score" field if the given value is not nil.
func (_u *ScoreUpdateOne) SetNillableCorrectnessScore(v *float64) *ScoreUpdateOne {
	if v != nil {
		_u.SetCorrectnessScore(*v)
	}
	return _u
}

// AddCorrectnessScore adds value to the "correctness_score" field.
func (_u *ScoreUpdateOne) AddCorrectnessScore(v float64) *ScoreUpdateOne {
	_u.mutation.AddCorrectnessScore(v)
	return _u
}

// SetTotalScore sets the "total_score" field.
func (_u *ScoreUpdateOne) SetTotalScore(v float64) *ScoreUpdateOne {
	_u.mutation.ResetTotalScore()
	_u.mutation.SetTotalScore(v)
	return _u
}

// SetNillableTotalScore sets the "total_score" field if the given value is not nil.
func (_u *ScoreUpdateOne) SetNillableTotalScore(v *float64) *ScoreUpdateOne {
	if v != nil {
		_u.SetTotalScore(*v)
	}
	return _u
}

// AddTotalScore adds value to the "total_score" field.
func (_u *ScoreUpdateOne) AddTotalScore(v float64) *ScoreUpdateOne {
	_u.mutation.AddTotalScore(v)
	return _u
}

// SetGrade sets the "grade" field.
func (_u *ScoreUpdateOne) SetGrade(v string) *ScoreUpdateOne {
	_u.mutation.SetGrade(v)
	return _u
}

// SetNillableGrade sets the "grade" field if the given value is not nil.
func (_u *ScoreUpdateOne) SetNillableGrade(v *string) *ScoreUpdateOne {
	if v != nil {
		_u.SetGrade(*v)
	}
	return _u
}

// SetRubric sets the "rubric" field.
func (_u *ScoreUpdateOne) SetRubric(v map[string]interface{}) *ScoreUpdateOne {
	_u.mutation.SetRubric(v)
	return _u
}

// ClearRubric clears the value of the "rubric" field.
func (_u *ScoreUpdateOne) ClearRubric() *ScoreUpdateOne {
	_u.mutation.ClearRubric()
	return _u
}

// Mutation returns the ScoreMutation object of the builder.
func (_u *ScoreUpdateOne) Mutation() *ScoreMutation {
	return _u.mutation
}

// Where appends a list predicates to the ScoreUpdate builder.
func (_u *ScoreUpdateOne) Where(ps ...predicate.Score) *ScoreUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ScoreUpdateOne) Select(field string, fields ...string) *ScoreUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Score entity.
func (_u *ScoreUpdateOne) Save(ctx context.Context) (*Score, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScoreUpdateOne) SaveX(ctx context.Context) *Score {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ScoreUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScoreUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScoreUpdateOne) check() error {
	if v, ok := _u.mutation.Grade(); ok {
		if err := score.GradeValidator(v); err != nil {
			return &ValidationError{Name: "grade", err: fmt.Errorf(`ent: validator failed for field "Score.grade": %w`, err)}
		}
	}
	if _u.mutation.SubmissionCleared() && len(_u.mutation.SubmissionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Score.submission"`)
	}
	return nil
}

func (_u *ScoreUpdateOne) sqlSave(ctx context.Context) (_node *Score, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(score.Table, score.Columns, sqlgraph.NewFieldSpec(score.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Score.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, score.FieldID)
		for _, f := range fields {
			if !score.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != score.FieldID {
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
	if value, ok := _u.mutation.PromptScore(); ok {
		_spec.SetField(score.FieldPromptScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPromptScore(); ok {
		_spec.AddField(score.FieldPromptScore, field.TypeFloat64, value)
	}
	if _u.mutation.PromptScoreCleared() {
		_spec.ClearField(score.FieldPromptScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.PerformanceScore(); ok {
		_spec.SetField(score.FieldPerformanceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPerformanceScore(); ok {
		_spec.AddField(score.FieldPerformanceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CorrectnessScore(); ok {
		_spec.SetField(score.FieldCorrectnessScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCorrectnessScore(); ok {
		_spec.AddField(score.FieldCorrectnessScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TotalScore(); ok {
		_spec.SetField(score.FieldTotalScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalScore(); ok {
		_spec.AddField(score.FieldTotalScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Grade(); ok {
		_spec.SetField(score.FieldGrade, field.TypeString, value)
	}
	if value, ok := _u.mutation.Rubric(); ok {
		_spec.SetField(score.FieldRubric, field.TypeJSON, value)
	}
	if _u.mutation.RubricCleared() {
		_spec.ClearField(score.FieldRubric, field.TypeJSON)
	}
	_node = &Score{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{score.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
