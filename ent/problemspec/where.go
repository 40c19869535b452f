// Code generated by ent, DO NOT EDIT.

package problemspec

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/examkit/proctor/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ProblemSpec {
	return predicate.ProblemSpec(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ProblemSpec {
	return predicate.ProblemSpec(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ProblemSpec {
	return predicate.ProblemSpec(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ProblemSpec {
	return predicate.ProblemSpec(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ProblemSpec {
	return predicate.ProblemSpec(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ProblemSpec {
	return predicate.ProblemSpec(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ProblemSpec {
	return predicate.ProblemSpec(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ProblemSpec {
	return predicate.ProblemSpec(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ProblemSpec {
	return predicate.ProblemSpec(sql.FieldLTE(FieldID, id))
}

// SpecID applies equality check predicate on the "spec_id" field. It's identical to SpecIDEQ.
func SpecID(v int) predicate.ProblemSpec {
	return predicate.ProblemSpec(sql.FieldEQ(FieldSpecID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ProblemSpec {
	return predicate.ProblemSpec(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ProblemSpec {
	return predicate.ProblemSpec(sql.FieldEQ(FieldUpdatedAt, v))
}

// SpecIDEQ applies the EQ predicate on the "spec_id" field.
func SpecIDEQ(v int) predicate.ProblemSpec {
	return predicate.ProblemSpec(sql.FieldEQ(FieldSpecID, v))
}

// SpecIDNEQ applies the NEQ predicate on the "spec_id" field.
func SpecIDNEQ(v int) predicate.ProblemSpec {
	return predicate.ProblemSpec(sql.FieldNEQ(FieldSpecID, v))
}

// SpecIDIn applies the In predicate on the "spec_id" field.
func SpecIDIn(vs ...int) predicate.ProblemSpec {
	return predicate.ProblemSpec(sql.FieldIn(FieldSpecID, vs...))
}

// SpecIDNotIn applies the NotIn predicate on the "spec_id" field.
func SpecIDNotIn(vs ...int) predicate.ProblemSpec {
	return predicate.ProblemSpec(sql.FieldNotIn(FieldSpecID, vs...))
}

// SpecIDGT applies the GT predicate on the "spec_id" field.
func SpecIDGT(v int) predicate.ProblemSpec {
	return predicate.ProblemSpec(sql.FieldGT(FieldSpecID, v))
}

// SpecIDGTE applies the GTE predicate on the "spec_id" field.
func SpecIDGTE(v int) predicate.ProblemSpec {
	return predicate.ProblemSpec(sql.FieldGTE(FieldSpecID, v))
}

// SpecIDLT applies the LT predicate on the "spec_id" field.
func SpecIDLT(v int) predicate.ProblemSpec {
	return predicate.ProblemSpec(sql.FieldLT(FieldSpecID, v))
}

// SpecIDLTE applies the LTE predicate on the "spec_id" field.
func SpecIDLTE(v int) predicate.ProblemSpec {
	return predicate.ProblemSpec(sql.FieldLTE(FieldSpecID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ProblemSpec {
	return predicate.ProblemSpec(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ProblemSpec {
	return predicate.ProblemSpec(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ProblemSpec {
	return predicate.ProblemSpec(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ProblemSpec {
	return predicate.ProblemSpec(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ProblemSpec {
	return predicate.ProblemSpec(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ProblemSpec {
	return predicate.ProblemSpec(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ProblemSpec {
	return predicate.ProblemSpec(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ProblemSpec {
	return predicate.ProblemSpec(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ProblemSpec {
	return predicate.ProblemSpec(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ProblemSpec {
	return predicate.ProblemSpec(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ProblemSpec {
	return predicate.ProblemSpec(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ProblemSpec {
	return predicate.ProblemSpec(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ProblemSpec {
	return predicate.ProblemSpec(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ProblemSpec {
	return predicate.ProblemSpec(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ProblemSpec {
	return predicate.ProblemSpec(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ProblemSpec {
	return predicate.ProblemSpec(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ProblemSpec) predicate.ProblemSpec {
	return predicate.ProblemSpec(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ProblemSpec) predicate.ProblemSpec {
	return predicate.ProblemSpec(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ProblemSpec) predicate.ProblemSpec {
	return predicate.ProblemSpec(sql.NotPredicates(p))
}
