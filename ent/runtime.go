// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/examkit/proctor/ent/problemspec"
	"github.com/examkit/proctor/ent/promptevaluation"
	"github.com/examkit/proctor/ent/promptmessage"
	"github.com/examkit/proctor/ent/promptsession"
	"github.com/examkit/proctor/ent/schema"
	"github.com/examkit/proctor/ent/score"
	"github.com/examkit/proctor/ent/submission"
	"github.com/examkit/proctor/ent/submissionrun"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	problemspecFields := schema.ProblemSpec{}.Fields()
	_ = problemspecFields
	// problemspecDescSpecID is the schema descriptor for spec_id field.
	problemspecDescSpecID := problemspecFields[0].Descriptor()
	// problemspec.SpecIDValidator is a validator for the "spec_id" field. It is called by the builders before save.
	problemspec.SpecIDValidator = problemspecDescSpecID.Validators[0].(func(int) error)
	// problemspecDescCreatedAt is the schema descriptor for created_at field.
	problemspecDescCreatedAt := problemspecFields[2].Descriptor()
	// problemspec.DefaultCreatedAt holds the default value on creation for the created_at field.
	problemspec.DefaultCreatedAt = problemspecDescCreatedAt.Default.(func() time.Time)
	// problemspecDescUpdatedAt is the schema descriptor for updated_at field.
	problemspecDescUpdatedAt := problemspecFields[3].Descriptor()
	// problemspec.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	problemspec.DefaultUpdatedAt = problemspecDescUpdatedAt.Default.(func() time.Time)
	// problemspec.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	problemspec.UpdateDefaultUpdatedAt = problemspecDescUpdatedAt.UpdateDefault.(func() time.Time)
	promptevaluationFields := schema.PromptEvaluation{}.Fields()
	_ = promptevaluationFields
	// promptevaluationDescCreatedAt is the schema descriptor for created_at field.
	promptevaluationDescCreatedAt := promptevaluationFields[7].Descriptor()
	// promptevaluation.DefaultCreatedAt holds the default value on creation for the created_at field.
	promptevaluation.DefaultCreatedAt = promptevaluationDescCreatedAt.Default.(func() time.Time)
	promptmessageFields := schema.PromptMessage{}.Fields()
	_ = promptmessageFields
	// promptmessageDescTurn is the schema descriptor for turn field.
	promptmessageDescTurn := promptmessageFields[1].Descriptor()
	// promptmessage.TurnValidator is a validator for the "turn" field. It is called by the builders before save.
	promptmessage.TurnValidator = promptmessageDescTurn.Validators[0].(func(int) error)
	// promptmessageDescTokenCount is the schema descriptor for token_count field.
	promptmessageDescTokenCount := promptmessageFields[4].Descriptor()
	// promptmessage.DefaultTokenCount holds the default value on creation for the token_count field.
	promptmessage.DefaultTokenCount = promptmessageDescTokenCount.Default.(int)
	// promptmessage.TokenCountValidator is a validator for the "token_count" field. It is called by the builders before save.
	promptmessage.TokenCountValidator = promptmessageDescTokenCount.Validators[0].(func(int) error)
	// promptmessageDescCreatedAt is the schema descriptor for created_at field.
	promptmessageDescCreatedAt := promptmessageFields[6].Descriptor()
	// promptmessage.DefaultCreatedAt holds the default value on creation for the created_at field.
	promptmessage.DefaultCreatedAt = promptmessageDescCreatedAt.Default.(func() time.Time)
	promptsessionFields := schema.PromptSession{}.Fields()
	_ = promptsessionFields
	// promptsessionDescExamID is the schema descriptor for exam_id field.
	promptsessionDescExamID := promptsessionFields[0].Descriptor()
	// promptsession.ExamIDValidator is a validator for the "exam_id" field. It is called by the builders before save.
	promptsession.ExamIDValidator = promptsessionDescExamID.Validators[0].(func(int) error)
	// promptsessionDescParticipantID is the schema descriptor for participant_id field.
	promptsessionDescParticipantID := promptsessionFields[1].Descriptor()
	// promptsession.ParticipantIDValidator is a validator for the "participant_id" field. It is called by the builders before save.
	promptsession.ParticipantIDValidator = promptsessionDescParticipantID.Validators[0].(func(int) error)
	// promptsessionDescSpecID is the schema descriptor for spec_id field.
	promptsessionDescSpecID := promptsessionFields[2].Descriptor()
	// promptsession.SpecIDValidator is a validator for the "spec_id" field. It is called by the builders before save.
	promptsession.SpecIDValidator = promptsessionDescSpecID.Validators[0].(func(int) error)
	// promptsessionDescStartedAt is the schema descriptor for started_at field.
	promptsessionDescStartedAt := promptsessionFields[3].Descriptor()
	// promptsession.DefaultStartedAt holds the default value on creation for the started_at field.
	promptsession.DefaultStartedAt = promptsessionDescStartedAt.Default.(func() time.Time)
	// promptsessionDescTotalTokens is the schema descriptor for total_tokens field.
	promptsessionDescTotalTokens := promptsessionFields[5].Descriptor()
	// promptsession.DefaultTotalTokens holds the default value on creation for the total_tokens field.
	promptsession.DefaultTotalTokens = promptsessionDescTotalTokens.Default.(int)
	// promptsession.TotalTokensValidator is a validator for the "total_tokens" field. It is called by the builders before save.
	promptsession.TotalTokensValidator = promptsessionDescTotalTokens.Validators[0].(func(int) error)
	scoreFields := schema.Score{}.Fields()
	_ = scoreFields
	// scoreDescGrade is the schema descriptor for grade field.
	scoreDescGrade := scoreFields[6].Descriptor()
	// score.GradeValidator is a validator for the "grade" field. It is called by the builders before save.
	score.GradeValidator = scoreDescGrade.Validators[0].(func(string) error)
	// scoreDescCreatedAt is the schema descriptor for created_at field.
	scoreDescCreatedAt := scoreFields[8].Descriptor()
	// score.DefaultCreatedAt holds the default value on creation for the created_at field.
	score.DefaultCreatedAt = scoreDescCreatedAt.Default.(func() time.Time)
	submissionFields := schema.Submission{}.Fields()
	_ = submissionFields
	// submissionDescExamID is the schema descriptor for exam_id field.
	submissionDescExamID := submissionFields[1].Descriptor()
	// submission.ExamIDValidator is a validator for the "exam_id" field. It is called by the builders before save.
	submission.ExamIDValidator = submissionDescExamID.Validators[0].(func(int) error)
	// submissionDescParticipantID is the schema descriptor for participant_id field.
	submissionDescParticipantID := submissionFields[2].Descriptor()
	// submission.ParticipantIDValidator is a validator for the "participant_id" field. It is called by the builders before save.
	submission.ParticipantIDValidator = submissionDescParticipantID.Validators[0].(func(int) error)
	// submissionDescSpecID is the schema descriptor for spec_id field.
	submissionDescSpecID := submissionFields[3].Descriptor()
	// submission.SpecIDValidator is a validator for the "spec_id" field. It is called by the builders before save.
	submission.SpecIDValidator = submissionDescSpecID.Validators[0].(func(int) error)
	// submissionDescLanguage is the schema descriptor for language field.
	submissionDescLanguage := submissionFields[5].Descriptor()
	// submission.DefaultLanguage holds the default value on creation for the language field.
	submission.DefaultLanguage = submissionDescLanguage.Default.(string)
	// submissionDescCreatedAt is the schema descriptor for created_at field.
	submissionDescCreatedAt := submissionFields[8].Descriptor()
	// submission.DefaultCreatedAt holds the default value on creation for the created_at field.
	submission.DefaultCreatedAt = submissionDescCreatedAt.Default.(func() time.Time)
	submissionrunFields := schema.SubmissionRun{}.Fields()
	_ = submissionrunFields
	// submissionrunDescCaseIndex is the schema descriptor for case_index field.
	submissionrunDescCaseIndex := submissionrunFields[1].Descriptor()
	// submissionrun.CaseIndexValidator is a validator for the "case_index" field. It is called by the builders before save.
	submissionrun.CaseIndexValidator = submissionrunDescCaseIndex.Validators[0].(func(int) error)
	// submissionrunDescPassed is the schema descriptor for passed field.
	submissionrunDescPassed := submissionrunFields[3].Descriptor()
	// submissionrun.DefaultPassed holds the default value on creation for the passed field.
	submissionrun.DefaultPassed = submissionrunDescPassed.Default.(bool)
	// submissionrunDescExecutionTime is the schema descriptor for execution_time field.
	submissionrunDescExecutionTime := submissionrunFields[6].Descriptor()
	// submissionrun.DefaultExecutionTime holds the default value on creation for the execution_time field.
	submissionrun.DefaultExecutionTime = submissionrunDescExecutionTime.Default.(float64)
	// submissionrunDescMemoryKB is the schema descriptor for memory_kb field.
	submissionrunDescMemoryKB := submissionrunFields[7].Descriptor()
	// submissionrun.DefaultMemoryKB holds the default value on creation for the memory_kb field.
	submissionrun.DefaultMemoryKB = submissionrunDescMemoryKB.Default.(int)
	// submissionrunDescExitCode is the schema descriptor for exit_code field.
	submissionrunDescExitCode := submissionrunFields[8].Descriptor()
	// submissionrun.DefaultExitCode holds the default value on creation for the exit_code field.
	submissionrun.DefaultExitCode = submissionrunDescExitCode.Default.(int)
	// submissionrunDescCreatedAt is the schema descriptor for created_at field.
	submissionrunDescCreatedAt := submissionrunFields[9].Descriptor()
	// submissionrun.DefaultCreatedAt holds the default value on creation for the created_at field.
	submissionrun.DefaultCreatedAt = submissionrunDescCreatedAt.Default.(func() time.Time)
}
