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
	"github.com/examkit/proctor/ent/promptevaluation"
)

// PromptEvaluationUpdate is the builder for updating PromptEvaluation entities.
type PromptEvaluationUpdate struct {
	config
	hooks    []Hook
	mutation *PromptEvaluationMutation
}

// Where appends a list predicates to the PromptEvaluationUpdate builder.
func (_u *PromptEvaluationUpdate) Where(ps ...predicate.PromptEvaluation) *PromptEvaluationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetNodeName sets the "node_name" field.
func (_u *PromptEvaluationUpdate) SetNodeName(v string) *PromptEvaluationUpdate {
	_u.mutation.SetNodeName(v)
	return _u
}

// SetNillableNodeName sets the "node_name" field if the given value is not nil.
func (_u *PromptEvaluationUpdate) SetNillableNodeName(v *string) *PromptEvaluationUpdate {
	if v != nil {
		_u.SetNodeName(*v)
	}
	return _u
}

// ClearNodeName clears the value of the "node_name" field.
func (_u *PromptEvaluationUpdate) ClearNodeName() *PromptEvaluationUpdate {
	_u.mutation.ClearNodeName()
	return _u
}

// SetScore sets the "score" field.
func (_u *PromptEvaluationUpdate) SetScore(v float64) *PromptEvaluationUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *PromptEvaluationUpdate) SetNillableScore(v *float64) *PromptEvaluationUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *PromptEvaluationUpdate) AddScore(v float64) *PromptEvaluationUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetAnalysis sets the "analysis" field.
func (_u *PromptEvaluationUpdate) SetAnalysis(v string) *PromptEvaluationUpdate {
	_u.mutation.SetAnalysis(v)
	return _u
}

// SetNillableAnalysis sets the "analysis" field if the given value is not nil.
func (_u *PromptEvaluationUpdate) SetNillableAnalysis(v *string) *PromptEvaluationUpdate {
	if v != nil {
		_u.SetAnalysis(*v)
	}
	return _u
}

// ClearAnalysis clears the value of the "analysis" field.
func (_u *PromptEvaluationUpdate) ClearAnalysis() *PromptEvaluationUpdate {
	_u.mutation.ClearAnalysis()
	return _u
}

// SetDetails sets the "details" field.
func (_u *PromptEvaluationUpdate) SetDetails(v map[string]interface{}) *PromptEvaluationUpdate {
	_u.mutation.SetDetails(v)
	return _u
}

// ClearDetails clears the value of the "details" field.
func (_u *PromptEvaluationUpdate) ClearDetails() *PromptEvaluationUpdate {
	_u.mutation.ClearDetails()
	return _u
}

// Mutation returns the PromptEvaluationMutation object of the builder.
func (_u *PromptEvaluationUpdate) Mutation() *PromptEvaluationMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PromptEvaluationUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PromptEvaluationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PromptEvaluationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PromptEvaluationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PromptEvaluationUpdate) check() error {
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PromptEvaluation.session"`)
	}
	return nil
}

func (_u *PromptEvaluationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(promptevaluation.Table, promptevaluation.Columns, sqlgraph.NewFieldSpec(promptevaluation.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.TurnCleared() {
		_spec.ClearField(promptevaluation.FieldTurn, field.TypeInt)
	}
	if value, ok := _u.mutation.NodeName(); ok {
		_spec.SetField(promptevaluation.FieldNodeName, field.TypeString, value)
	}
	if _u.mutation.NodeNameCleared() {
		_spec.ClearField(promptevaluation.FieldNodeName, field.TypeString)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(promptevaluation.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(promptevaluation.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Analysis(); ok {
		_spec.SetField(promptevaluation.FieldAnalysis, field.TypeString, value)
	}
	if _u.mutation.AnalysisCleared() {
		_spec.ClearField(promptevaluation.FieldAnalysis, field.TypeString)
	}
	if value, ok := _u.mutation.Details(); ok {
		_spec.SetField(promptevaluation.FieldDetails, field.TypeJSON, value)
	}
	if _u.mutation.DetailsCleared() {
		_spec.ClearField(promptevaluation.FieldDetails, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{promptevaluation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PromptEvaluationUpdateOne is the builder for updating a single PromptEvaluation entity.
type PromptEvaluationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PromptEvaluationMutation
}

// SetNodeName sets the "node_name" field.
func (_u *PromptEvaluationUpdateOne) SetNodeName(v string) *PromptEvaluationUpdateOne {
	_u.mutation.SetNodeName(v)
	return _u
}

// SetNillableNodeName sets the "node_name" field if the given value is not nil.
func (_u *PromptEvaluationUpdateOne) SetNillableNodeName(v *string) *PromptEvaluationUpdateOne {
	if v != nil {
		_u.SetNodeName(*v)
	}
	return _u
}

// ClearNodeName clears the value of the "node_name" field.
func (_u *PromptEvaluationUpdateOne) ClearNodeName() *PromptEvaluationUpdateOne {
	_u.mutation.ClearNodeName()
	return _u
}

// SetScore sets the "score" field.
func (_u *PromptEvaluationUpdateOne) SetScore(v float64) *PromptEvaluationUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *PromptEvaluationUpdateOne) SetNillableScore(v *float64) *PromptEvaluationUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *PromptEvaluationUpdateOne) AddScore(v float64) *PromptEvaluationUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetAnalysis sets the "analysis" field.
func (_u *PromptEvaluationUpdateOne) SetAnalysis(v string) *PromptEvaluationUpdateOne {
	_u.mutation.SetAnalysis(v)
	return _u
}

// SetNillableAnalysis sets the "analysis" field if the given value is not nil.
func (_u *PromptEvaluationUpdateOne) SetNillableAnalysis(v *string) *PromptEvaluationUpdateOne {
	if v != nil {
		_u.SetAnalysis(*v)
	}
	return _u
}

// ClearAnalysis clears the value of the "analysis" field.
func (_u *PromptEvaluationUpdateOne) ClearAnalysis() *PromptEvaluationUpdateOne {
	_u.mutation.ClearAnalysis()
	return _u
}

// SetDetails sets the "details" field.
func (_u *PromptEvaluationUpdateOne) SetDetails(v map[string]interface{}) *PromptEvaluationUpdateOne {
	_u.mutation.SetDetails(v)
	return _u
}

// ClearDetails clears the value of the "details" field.
func (_u *PromptEvaluationUpdateOne) ClearDetails() *PromptEvaluationUpdateOne {
	_u.mutation.ClearDetails()
	return _u
}

// Mutation returns the PromptEvaluationMutation object of the builder.
func (_u *PromptEvaluationUpdateOne) Mutation() *PromptEvaluationMutation {
	return _u.mutation
}

// Where appends a list predicates to the PromptEvaluationUpdate builder.
func (_u *PromptEvaluationUpdateOne) Where(ps ...predicate.PromptEvaluation) *PromptEvaluationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PromptEvaluationUpdateOne) Select(field string, fields ...string) *PromptEvaluationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PromptEvaluation entity.
func (_u *PromptEvaluationUpdateOne) Save(ctx context.Context) (*PromptEvaluation, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PromptEvaluationUpdateOne) SaveX(ctx context.Context) *PromptEvaluation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PromptEvaluationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PromptEvaluationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PromptEvaluationUpdateOne) check() error {
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PromptEvaluation.session"`)
	}
	return nil
}

func (_u *PromptEvaluationUpdateOne) sqlSave(ctx context.Context) (_node *PromptEvaluation, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(promptevaluation.Table, promptevaluation.Columns, sqlgraph.NewFieldSpec(promptevaluation.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PromptEvaluation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, promptevaluation.FieldID)
		for _, f := range fields {
			if !promptevaluation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != promptevaluation.FieldID {
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
	if _u.mutation.TurnCleared() {
		_spec.ClearField(promptevaluation.FieldTurn, field.TypeInt)
	}
	if value, ok := _u.mutation.NodeName(); ok {
		_spec.SetField(promptevaluation.FieldNodeName, field.TypeString, value)
	}
	if _u.mutation.NodeNameCleared() {
		_spec.ClearField(promptevaluation.FieldNodeName, field.TypeString)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(promptevaluation.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(promptevaluation.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Analysis(); ok {
		_spec.SetField(promptevaluation.FieldAnalysis, field.TypeString, value)
	}
	if _u.mutation.AnalysisCleared() {
		_spec.ClearField(promptevaluation.FieldAnalysis, field.TypeString)
	}
	if value, ok := _u.mutation.Details(); ok {
		_spec.SetField(promptevaluation.FieldDetails, field.TypeJSON, value)
	}
	if _u.mutation.DetailsCleared() {
		_spec.ClearField(promptevaluation.FieldDetails, field.TypeJSON)
	}
	_node = &PromptEvaluation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{promptevaluation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
