package services

import (
	"context"
	"fmt"
	"time"

	"github.com/examkit/proctor/ent"
	"github.com/examkit/proctor/ent/score"
	"github.com/examkit/proctor/ent/submission"
	"github.com/examkit/proctor/ent/submissionrun"
	"github.com/examkit/proctor/pkg/models"
)

// Submission lifecycle states.
const (
	SubmissionPending    = "pending"
	SubmissionEvaluating = "evaluating"
	SubmissionCompleted  = "completed"
	SubmissionFailed     = "failed"
)

// SubmissionService persists code submissions, their per-test sandbox runs,
// and the final score record.
type SubmissionService struct {
	client *ent.Client
}

// NewSubmissionService creates a new SubmissionService
func NewSubmissionService(client *ent.Client) *SubmissionService {
	return &SubmissionService{client: client}
}

// CreateSubmission snapshots submitted code in the pending state.
func (s *SubmissionService) CreateSubmission(ctx context.Context, req models.CreateSubmissionRequest) (*ent.Submission, error) {
	if req.SessionID <= 0 {
		return nil, NewValidationError("session_id", "required")
	}
	if req.Code == "" {
		return nil, NewValidationError("code", "required")
	}
	language := req.Language
	if language == "" {
		language = models.LangPython
	}
	if !models.SupportedLanguage(language) {
		return nil, NewValidationError("language", fmt.Sprintf("unsupported language %q", language))
	}

	sub, err := s.client.Submission.Create().
		SetSessionID(req.SessionID).
		SetExamID(req.ExamID).
		SetParticipantID(req.ParticipantID).
		SetSpecID(req.SpecID).
		SetCode(req.Code).
		SetLanguage(language).
		SetStatus(submission.Status(SubmissionPending)).
		SetCreatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create submission: %w", err)
	}
	return sub, nil
}

// GetSubmission retrieves a submission by ID
func (s *SubmissionService) GetSubmission(ctx context.Context, id int) (*ent.Submission, error) {
	sub, err := s.client.Submission.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: submission %d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to get submission: %w", err)
	}
	return sub, nil
}

// SetTaskID records the execution-queue task backing this submission and
// moves it to evaluating.
func (s *SubmissionService) SetTaskID(ctx context.Context, id int, taskID string) error {
	err := s.client.Submission.UpdateOneID(id).
		SetTaskID(taskID).
		SetStatus(submission.Status(SubmissionEvaluating)).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("%w: submission %d", ErrNotFound, id)
		}
		return fmt.Errorf("failed to set submission task: %w", err)
	}
	return nil
}

// Complete marks a submission finished (completed or failed) and stamps
// completed_at.
func (s *SubmissionService) Complete(ctx context.Context, id int, status string) error {
	if status != SubmissionCompleted && status != SubmissionFailed {
		return NewValidationError("status", fmt.Sprintf("invalid terminal status %q", status))
	}
	err := s.client.Submission.UpdateOneID(id).
		SetStatus(submission.Status(status)).
		SetCompletedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("%w: submission %d", ErrNotFound, id)
		}
		return fmt.Errorf("failed to complete submission: %w", err)
	}
	return nil
}

// SaveRuns persists the per-test-case outcomes. A submission that already
// has runs keeps them; the unique (submission, case) index rejects any
// partial overlap from a duplicated grading pass.
func (s *SubmissionService) SaveRuns(ctx context.Context, submissionID int, runs []models.RunRecord) error {
	if len(runs) == 0 {
		return nil
	}

	now := time.Now()
	builders := make([]*ent.SubmissionRunCreate, 0, len(runs))
	for _, r := range runs {
		builders = append(builders, s.client.SubmissionRun.Create().
			SetSubmissionID(submissionID).
			SetCaseIndex(r.CaseIndex).
			SetVerdict(submissionrun.Verdict(r.Verdict)).
			SetPassed(r.Passed).
			SetOutput(r.Output).
			SetStderr(r.Stderr).
			SetExecutionTime(r.ExecutionTime).
			SetMemoryKB(r.MemoryKB).
			SetExitCode(r.ExitCode).
			SetCreatedAt(now))
	}

	if err := s.client.SubmissionRun.CreateBulk(builders...).Exec(ctx); err != nil {
		if ent.IsConstraintError(err) {
			// Already recorded by an earlier pass.
			return nil
		}
		return fmt.Errorf("failed to save submission runs: %w", err)
	}
	return nil
}

// SaveScore persists the final grading record. One score per submission: a
// second save returns the first row unchanged.
func (s *SubmissionService) SaveScore(ctx context.Context, req models.SaveScoreRequest) (*ent.Score, error) {
	if req.SubmissionID <= 0 {
		return nil, NewValidationError("submission_id", "required")
	}

	existing, err := s.client.Score.Query().
		Where(score.SubmissionIDEQ(req.SubmissionID)).
		Only(ctx)
	if err == nil {
		return existing, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to check existing score: %w", err)
	}

	create := s.client.Score.Create().
		SetSubmissionID(req.SubmissionID).
		SetSessionID(req.SessionID).
		SetPerformanceScore(req.PerformanceScore).
		SetCorrectnessScore(req.CorrectnessScore).
		SetTotalScore(req.TotalScore).
		SetGrade(req.Grade).
		SetCreatedAt(time.Now())
	if req.PromptScore != nil {
		create.SetPromptScore(*req.PromptScore)
	}
	if req.Rubric != nil {
		create.SetRubric(req.Rubric)
	}

	saved, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return s.client.Score.Query().
				Where(score.SubmissionIDEQ(req.SubmissionID)).
				Only(ctx)
		}
		return nil, fmt.Errorf("failed to save score: %w", err)
	}
	return saved, nil
}

// GetSessionScore retrieves the latest score record of a session.
func (s *SubmissionService) GetSessionScore(ctx context.Context, sessionID int) (*ent.Score, error) {
	sc, err := s.client.Score.Query().
		Where(score.SessionIDEQ(sessionID)).
		Order(ent.Desc(score.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: score for session %d", ErrNotFound, sessionID)
		}
		return nil, fmt.Errorf("failed to get session score: %w", err)
	}
	return sc, nil
}

// GetSubmissionRuns retrieves the per-test outcomes of a submission in case
// order.
func (s *SubmissionService) GetSubmissionRuns(ctx context.Context, submissionID int) ([]*ent.SubmissionRun, error) {
	runs, err := s.client.SubmissionRun.Query().
		Where(submissionrun.SubmissionIDEQ(submissionID)).
		Order(ent.Asc(submissionrun.FieldCaseIndex)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get submission runs: %w", err)
	}
	return runs, nil
}
