// Code generated by ent, DO NOT EDIT.

package submissionrun

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/examkit/proctor/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.SubmissionRun {
	return predicate.SubmissionRun(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.SubmissionRun {
	return predicate.SubmissionRun(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.SubmissionRun {
	return predicate.SubmissionRun(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.SubmissionRun {
	return predicate.SubmissionRun(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.SubmissionRun {
	return predicate.SubmissionRun(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.SubmissionRun {
	return predicate.SubmissionRun(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.SubmissionRun {
	return predicate.SubmissionRun(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.SubmissionRun {
	return predicate.SubmissionRun(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.SubmissionRun {
	return predicate.SubmissionRun(sql.FieldLTE(FieldID, id))
}

// SubmissionID applies equality check predicate on the "submission_id" field. It's identical to SubmissionIDEQ.
func SubmissionID(v int) predicate.SubmissionRun {
	return predicate.SubmissionRun(sql.FieldEQ(FieldSubmissionID, v))
}

// CaseIndex applies equality check predicate on the "case_index" field. It's identical to CaseIndexEQ.
func CaseIndex(v int) predicate.SubmissionRun {
	return predicate.SubmissionRun(sql.FieldEQ(FieldCaseIndex, v))
}

// Passed applies equality check predicate on the "passed" field. It's identical to PassedEQ.
func Passed(v bool) predicate.SubmissionRun {
	return predicate.SubmissionRun(sql.FieldEQ(FieldPassed, v))
}

// Output applies equality check predicate on the "output" field. It's identical to OutputEQ.
func Output(v string) predicate.SubmissionRun {
	return predicate.SubmissionRun(sql.FieldEQ(FieldOutput, v))
}

// Stderr applies equality check predicate on the "stderr" field. It's identical to StderrEQ.
func Stderr(v string) predicate.SubmissionRun {
	return predicate.SubmissionRun(sql.FieldEQ(FieldStderr, v))
}

// ExecutionTime applies equality check predicate on the "execution_time" field. It's identical to ExecutionTimeEQ.
func ExecutionTime(v float64) predicate.SubmissionRun {
	return predicate.SubmissionRun(sql.FieldEQ(FieldExecutionTime, v))
}

// MemoryKB applies equality check predicate on the "memory_kb" field. It's identical to MemoryKBEQ.
func MemoryKB(v int) predicate.SubmissionRun {
	return predicate.SubmissionRun(sql.FieldEQ(FieldMemoryKB, v))
}

// ExitCode applies equality check predicate on the "exit_code" field. It's identical to ExitCodeEQ.
func ExitCode(v int) predicate.SubmissionRun {
	return predicate.SubmissionRun(sql.FieldEQ(FieldExitCode, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.SubmissionRun {
	return predicate.SubmissionRun(sql.FieldEQ(FieldCreatedAt, v))
}

// SubmissionIDEQ applies the EQ predicate on the "submission_id" field.
func SubmissionIDEQ(v int) predicate.SubmissionRun {
	return predicate.SubmissionRun(sql.FieldEQ(FieldSubmissionID, v))
}

// SubmissionIDNEQ applies the NEQ predicate on the "submission_id" field.
func SubmissionIDNEQ(v int) predicate.SubmissionRun {
	return predicate.SubmissionRun(sql.FieldNEQ(FieldSubmissionID, v))
}

// SubmissionIDIn applies the In predicate on the "submission_id" field.
func SubmissionIDIn(vs ...int) predicate.SubmissionRun {
	return predicate.SubmissionRun(sql.FieldIn(FieldSubmissionID, vs...))
}

// SubmissionIDNotIn applies the NotIn predicate on the "submission_id" field.
func SubmissionIDNotIn(vs ...int) predicate.SubmissionRun {
	return predicate.SubmissionRun(sql.FieldNotIn(FieldSubmissionID, vs...))
}

// CaseIndexEQ applies the EQ predicate on the "case_index" field.
func CaseIndexEQ(v int) predicate.SubmissionRun {
	return predicate.SubmissionRun(sql.FieldEQ(FieldCaseIndex, v))
}

// CaseIndexNEQ applies the NEQ predicate on the "case_index" field.
func CaseIndexNEQ(v int) predicate.SubmissionRun {
	return predicate.SubmissionRun(sql.FieldNEQ(FieldCaseIndex, v))
}

// CaseIndexIn applies the In predicate on the "case_index" field.
func CaseIndexIn(vs ...int) predicate.SubmissionRun {
	return predicate.SubmissionRun(sql.FieldIn(FieldCaseIndex, vs...))
}

// CaseIndexNotIn applies the NotIn predicate on the "case_index" field.
func CaseIndexNotIn(vs ...int) predicate.SubmissionRun {
	return predicate.SubmissionRun(sql.FieldNotIn(FieldCaseIndex, vs...))
}

// CaseIndexGT applies the GT predicate on the "case_index" field.
func CaseIndexGT(v int) predicate.SubmissionRun {
	return predicate.SubmissionRun(sql.FieldGT(FieldCaseIndex, v))
}

// CaseIndexGTE applies the GTE predicate on the "case_index" field.
func CaseIndexGTE(v int) predicate.SubmissionRun {
	return predicate.SubmissionRun(sql.FieldGTE(FieldCaseIndex, v))
}

// CaseIndexLT applies the LT predicate on the "case_index" field.
func CaseIndexLT(v int) predicate.SubmissionRun {
	return predicate.SubmissionRun(sql.FieldLT(FieldCaseIndex, v))
}

// CaseIndexLTE applies the LTE predicate on the "case_index" field.
func CaseIndexLTE(v int) predicate.SubmissionRun {
	return predicate.SubmissionRun(sql.FieldLTE(FieldCaseIndex, v))
}

// VerdictEQ applies the EQ predicate on the "verdict" field.
func VerdictEQ(v Verdict) predicate.SubmissionRun {
	return predicate.SubmissionRun(sql.FieldEQ(FieldVerdict, v))
}

// VerdictNEQ applies the NEQ predicate on the "verdict" field.
func VerdictNEQ(v Verdict) predicate.SubmissionRun {
	return predicate.SubmissionRun(sql.FieldNEQ(FieldVerdict, v))
}

// VerdictIn applies the In predicate on the "verdict" field.
func VerdictIn(vs ...Verdict) predicate.SubmissionRun {
	return predicate.SubmissionRun(sql.FieldIn(FieldVerdict, vs...))
}

// VerdictNotIn applies the NotIn predicate on the "verdict" field.
func VerdictNotIn(vs ...Verdict) predicate.SubmissionRun {
	return predicate.SubmissionRun(sql.FieldNotIn(FieldVerdict, vs...))
}

// PassedEQ applies the EQ predicate on the "passed" field.
func PassedEQ(v bool) predicate.SubmissionRun {
	return predicate.SubmissionRun(sql.FieldEQ(FieldPassed, v))
}

// PassedNEQ applies the NEQ predicate on the "passed" field.
func PassedNEQ(v bool) predicate.SubmissionRun {
	return predicate.SubmissionRun(sql.FieldNEQ(FieldPassed, v))
}

// OutputEQ applies the EQ predicate on the "output" field.
func OutputEQ(v string) predicate.SubmissionRun {
	return predicate.SubmissionRun(sql.FieldEQ(FieldOutput, v))
}

// OutputNEQ applies the NEQ predicate on the "output" field.
func OutputNEQ(v string) predicate.SubmissionRun {
	return predicate.SubmissionRun(sql.FieldNEQ(FieldOutput, v))
}

// OutputIn applies the In predicate on the "output" field.
func OutputIn(vs ...string) predicate.SubmissionRun {
	return predicate.SubmissionRun(sql.FieldIn(FieldOutput, vs...))
}

// OutputNotIn applies the NotIn predicate on the "output" field.
func OutputNotIn(vs ...string) predicate.SubmissionRun {
	return predicate.SubmissionRun(sql.FieldNotIn(FieldOutput, vs...))
}

// OutputGT applies the GT predicate on the "output" field.
func OutputGT(v string) predicate.SubmissionRun {
	return predicate.SubmissionRun(sql.FieldGT(FieldOutput, v))
}

// OutputGTE applies the GTE predicate on the "output" field.
func OutputGTE(v string) predicate.SubmissionRun {
	return predicate.SubmissionRun(sql.FieldGTE(FieldOutput, v))
}

// OutputLT applies the LT predicate on the "output" field.
func OutputLT(v string) predicate.SubmissionRun {
	return predicate.SubmissionRun(sql.FieldLT(FieldOutput, v))
}

// OutputLTE applies the LTE predicate on the "output" field.
func OutputLTE(v string) predicate.SubmissionRun {
	return predicate.SubmissionRun(sql.FieldLTE(FieldOutput, v))
}

// OutputContains applies the Contains predicate on the "output" field.
func OutputContains(v string) predicate.SubmissionRun {
	return predicate.SubmissionRun(sql.FieldContains(FieldOutput, v))
}

// OutputHasPrefix applies the HasPrefix predicate on the "output" field.
func OutputHasPrefix(v string) predicate.SubmissionRun {
	return predicate.SubmissionRun(sql.FieldHasPrefix(FieldOutput, v))
}

// OutputHasSuffix applies the HasSuffix predicate on the "output" field.
func OutputHasSuffix(v string) predicate.SubmissionRun {
	return predicate.SubmissionRun(sql.FieldHasSuffix(FieldOutput, v))
}

// OutputIsNil applies the IsNil predicate on the "output" field.
func OutputIsNil() predicate.SubmissionRun {
	return predicate.SubmissionRun(sql.FieldIsNull(FieldOutput))
}

// OutputNotNil applies the NotNil predicate on the "output" field.
func OutputNotNil() predicate.SubmissionRun {
	return predicate.SubmissionRun(sql.FieldNotNull(FieldOutput))
}

// OutputEqualFold applies the EqualFold predicate on the "output" field.
func OutputEqualFold(v string) predicate.SubmissionRun {
	return predicate.SubmissionRun(sql.FieldEqualFold(FieldOutput, v))
}

// OutputContainsFold applies the ContainsFold predicate on the "output" field.
func OutputContainsFold(v string) predicate.SubmissionRun {
	return predicate.SubmissionRun(sql.FieldContainsFold(FieldOutput, v))
}

// StderrEQ applies the EQ predicate on the "stderr" field.
func StderrEQ(v string) predicate.SubmissionRun {
	return predicate.SubmissionRun(sql.FieldEQ(FieldStderr, v))
}

// StderrNEQ applies the NEQ predicate on the "stderr" field.
func StderrNEQ(v string) predicate.SubmissionRun {
	return predicate.SubmissionRun(sql.FieldNEQ(FieldStderr, v))
}

// StderrIn applies the In predicate on the "stderr" field.
func StderrIn(vs ...string) predicate.SubmissionRun {
	return predicate.SubmissionRun(sql.FieldIn(FieldStderr, vs...))
}

// StderrNotIn applies the NotIn predicate on the "stderr" field.
func StderrNotIn(vs ...string) predicate.SubmissionRun {
	return predicate.SubmissionRun(sql.FieldNotIn(FieldStderr, vs...))
}

// StderrGT applies the GT predicate on the "stderr" field.
func StderrGT(v string) predicate.SubmissionRun {
	return predicate.SubmissionRun(sql.FieldGT(FieldStderr, v))
}

// StderrGTE applies the GTE predicate on the "stderr" field.
func StderrGTE(v string) predicate.SubmissionRun {
	return predicate.SubmissionRun(sql.FieldGTE(FieldStderr, v))
}

// StderrLT applies the LT predicate on the "stderr" field.
func StderrLT(v string) predicate.SubmissionRun {
	return predicate.SubmissionRun(sql.FieldLT(FieldStderr, v))
}

// StderrLTE applies the LTE predicate on the "stderr" field.
func StderrLTE(v string) predicate.SubmissionRun {
	return predicate.SubmissionRun(sql.FieldLTE(FieldStderr, v))
}

// StderrContains applies the Contains predicate on the "stderr" field.
func StderrContains(v string) predicate.SubmissionRun {
	return predicate.SubmissionRun(sql.FieldContains(FieldStderr, v))
}

// StderrHasPrefix applies the HasPrefix predicate on the "stderr" field.
func StderrHasPrefix(v string) predicate.SubmissionRun {
	return predicate.SubmissionRun(sql.FieldHasPrefix(FieldStderr, v))
}

// StderrHasSuffix applies the HasSuffix predicate on the "stderr" field.
func StderrHasSuffix(v string) predicate.SubmissionRun {
	return predicate.SubmissionRun(sql.FieldHasSuffix(FieldStderr, v))
}

// StderrIsNil applies the IsNil predicate on the "stderr" field.
func StderrIsNil() predicate.SubmissionRun {
	return predicate.SubmissionRun(sql.FieldIsNull(FieldStderr))
}

// StderrNotNil applies the NotNil predicate on the "stderr" field.
func StderrNotNil() predicate.SubmissionRun {
	return predicate.SubmissionRun(sql.FieldNotNull(FieldStderr))
}

// StderrEqualFold applies the EqualFold predicate on the "stderr" field.
func StderrEqualFold(v string) predicate.SubmissionRun {
	return predicate.SubmissionRun(sql.FieldEqualFold(FieldStderr, v))
}

// StderrContainsFold applies the ContainsFold predicate on the "stderr" field.
func StderrContainsFold(v string) predicate.SubmissionRun {
	return predicate.SubmissionRun(sql.FieldContainsFold(FieldStderr, v))
}

// ExecutionTimeEQ applies the EQ predicate on the "execution_time" field.
func ExecutionTimeEQ(v float64) predicate.SubmissionRun {
	return predicate.SubmissionRun(sql.FieldEQ(FieldExecutionTime, v))
}

// ExecutionTimeNEQ applies the NEQ predicate on the "execution_time" field.
func ExecutionTimeNEQ(v float64) predicate.SubmissionRun {
	return predicate.SubmissionRun(sql.FieldNEQ(FieldExecutionTime, v))
}

// ExecutionTimeIn applies the In predicate on the "execution_time" field.
func ExecutionTimeIn(vs ...float64) predicate.SubmissionRun {
	return predicate.SubmissionRun(sql.FieldIn(FieldExecutionTime, vs...))
}

// ExecutionTimeNotIn applies the NotIn predicate on the "execution_time" field.
func ExecutionTimeNotIn(vs ...float64) predicate.SubmissionRun {
	return predicate.SubmissionRun(sql.FieldNotIn(FieldExecutionTime, vs...))
}

// ExecutionTimeGT applies the GT predicate on the "execution_time" field.
func ExecutionTimeGT(v float64) predicate.SubmissionRun {
	return predicate.SubmissionRun(sql.FieldGT(FieldExecutionTime, v))
}

// ExecutionTimeGTE applies the GTE predicate on the "execution_time" field.
func ExecutionTimeGTE(v float64) predicate.SubmissionRun {
	return predicate.SubmissionRun(sql.FieldGTE(FieldExecutionTime, v))
}

// ExecutionTimeLT applies the LT predicate on the "execution_time" field.
func ExecutionTimeLT(v float64) predicate.SubmissionRun {
	return predicate.SubmissionRun(sql.FieldLT(FieldExecutionTime, v))
}

// ExecutionTimeLTE applies the LTE predicate on the "execution_time" field.
func ExecutionTimeLTE(v float64) predicate.SubmissionRun {
	return predicate.SubmissionRun(sql.FieldLTE(FieldExecutionTime, v))
}

// MemoryKBEQ applies the EQ predicate on the "memory_kb" field.
func MemoryKBEQ(v int) predicate.SubmissionRun {
	return predicate.SubmissionRun(sql.FieldEQ(FieldMemoryKB, v))
}

// MemoryKBNEQ applies the NEQ predicate on the "memory_kb" field.
func MemoryKBNEQ(v int) predicate.SubmissionRun {
	return predicate.SubmissionRun(sql.FieldNEQ(FieldMemoryKB, v))
}

// MemoryKBIn applies the In predicate on the "memory_kb" field.
func MemoryKBIn(vs ...int) predicate.SubmissionRun {
	return predicate.SubmissionRun(sql.FieldIn(FieldMemoryKB, vs...))
}

// MemoryKBNotIn applies the NotIn predicate on the "memory_kb" field.
func MemoryKBNotIn(vs ...int) predicate.SubmissionRun {
	return predicate.SubmissionRun(sql.FieldNotIn(FieldMemoryKB, vs...))
}

// MemoryKBGT applies the GT predicate on the "memory_kb" field.
func MemoryKBGT(v int) predicate.SubmissionRun {
	return predicate.SubmissionRun(sql.FieldGT(FieldMemoryKB, v))
}

// MemoryKBGTE applies the GTE predicate on the "memory_kb" field.
func MemoryKBGTE(v int) predicate.SubmissionRun {
	return predicate.SubmissionRun(sql.FieldGTE(FieldMemoryKB, v))
}

// MemoryKBLT applies the LT predicate on the "memory_kb" field.
func MemoryKBLT(v int) predicate.SubmissionRun {
	return predicate.SubmissionRun(sql.FieldLT(FieldMemoryKB, v))
}

// MemoryKBLTE applies the LTE predicate on the "memory_kb" field.
func MemoryKBLTE(v int) predicate.SubmissionRun {
	return predicate.SubmissionRun(sql.FieldLTE(FieldMemoryKB, v))
}

// ExitCodeEQ applies the EQ predicate on the "exit_code" field.
func ExitCodeEQ(v int) predicate.SubmissionRun {
	return predicate.SubmissionRun(sql.FieldEQ(FieldExitCode, v))
}

// ExitCodeNEQ applies the NEQ predicate on the "exit_code" field.
func ExitCodeNEQ(v int) predicate.SubmissionRun {
	return predicate.SubmissionRun(sql.FieldNEQ(FieldExitCode, v))
}

// ExitCodeIn applies the In predicate on the "exit_code" field.
func ExitCodeIn(vs ...int) predicate.SubmissionRun {
	return predicate.SubmissionRun(sql.FieldIn(FieldExitCode, vs...))
}

// ExitCodeNotIn applies the NotIn predicate on the "exit_code" field.
func ExitCodeNotIn(vs ...int) predicate.SubmissionRun {
	return predicate.SubmissionRun(sql.FieldNotIn(FieldExitCode, vs...))
}

// ExitCodeGT applies the GT predicate on the "exit_code" field.
func ExitCodeGT(v int) predicate.SubmissionRun {
	return predicate.SubmissionRun(sql.FieldGT(FieldExitCode, v))
}

// ExitCodeGTE applies the GTE predicate on the "exit_code" field.
func ExitCodeGTE(v int) predicate.SubmissionRun {
	return predicate.SubmissionRun(sql.FieldGTE(FieldExitCode, v))
}

// ExitCodeLT applies the LT predicate on the "exit_code" field.
func ExitCodeLT(v int) predicate.SubmissionRun {
	return predicate.SubmissionRun(sql.FieldLT(FieldExitCode, v))
}

// ExitCodeLTE applies the LTE predicate on the "exit_code" field.
func ExitCodeLTE(v int) predicate.SubmissionRun {
	return predicate.SubmissionRun(sql.FieldLTE(FieldExitCode, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.SubmissionRun {
	return predicate.SubmissionRun(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.SubmissionRun {
	return predicate.SubmissionRun(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.SubmissionRun {
	return predicate.SubmissionRun(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.SubmissionRun {
	return predicate.SubmissionRun(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.SubmissionRun {
	return predicate.SubmissionRun(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.SubmissionRun {
	return predicate.SubmissionRun(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.SubmissionRun {
	return predicate.SubmissionRun(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.SubmissionRun {
	return predicate.SubmissionRun(sql.FieldLTE(FieldCreatedAt, v))
}

// HasSubmission applies the HasEdge predicate on the "submission" edge.
func HasSubmission() predicate.SubmissionRun {
	return predicate.SubmissionRun(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SubmissionTable, SubmissionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSubmissionWith applies the HasEdge predicate on the "submission" edge with a given conditions (other predicates).
func HasSubmissionWith(preds ...predicate.Submission) predicate.SubmissionRun {
	return predicate.SubmissionRun(func(s *sql.Selector) {
		step := newSubmissionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SubmissionRun) predicate.SubmissionRun {
	return predicate.SubmissionRun(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SubmissionRun) predicate.SubmissionRun {
	return predicate.SubmissionRun(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SubmissionRun) predicate.SubmissionRun {
	return predicate.SubmissionRun(sql.NotPredicates(p))
}
