package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/examkit/proctor/ent"
	"github.com/examkit/proctor/ent/submission"
	"github.com/examkit/proctor/pkg/models"
	testdb "github.com/examkit/proctor/test/database"
)

func TestSubmissionService_CreateSubmission(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSubmissionService(client.Client)
	ctx := context.Background()
	sess := startSession(t, client.Client)

	t.Run("snapshots code as pending", func(t *testing.T) {
		sub, err := service.CreateSubmission(ctx, models.CreateSubmissionRequest{
			SessionID:     sess.ID,
			ExamID:        sess.ExamID,
			ParticipantID: sess.ParticipantID,
			SpecID:        sess.SpecID,
			Code:          "n = int(input())\nprint(n * 2)\n",
			Language:      models.LangPython,
		})
		require.NoError(t, err)
		assert.Equal(t, sess.ID, sub.SessionID)
		assert.Equal(t, submission.Status(SubmissionPending), sub.Status)
		assert.Equal(t, models.LangPython, sub.Language)
		assert.Empty(t, sub.TaskID)
		assert.Nil(t, sub.CompletedAt)
		assert.False(t, sub.CreatedAt.IsZero())
	})

	t.Run("defaults language to python", func(t *testing.T) {
		sub, err := service.CreateSubmission(ctx, models.CreateSubmissionRequest{
			SessionID: sess.ID, ExamID: sess.ExamID, ParticipantID: sess.ParticipantID,
			SpecID: sess.SpecID, Code: "print(1)",
		})
		require.NoError(t, err)
		assert.Equal(t, models.LangPython, sub.Language)
	})

	t.Run("rejects unsupported language", func(t *testing.T) {
		_, err := service.CreateSubmission(ctx, models.CreateSubmissionRequest{
			SessionID: sess.ID, ExamID: sess.ExamID, ParticipantID: sess.ParticipantID,
			SpecID: sess.SpecID, Code: "print(1)", Language: "cobol",
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
		assert.Contains(t, err.Error(), "language")
	})

	t.Run("validates required fields", func(t *testing.T) {
		_, err := service.CreateSubmission(ctx, models.CreateSubmissionRequest{Code: "print(1)"})
		assert.True(t, IsValidationError(err))

		_, err = service.CreateSubmission(ctx, models.CreateSubmissionRequest{SessionID: sess.ID})
		assert.True(t, IsValidationError(err))
	})
}

func TestSubmissionService_Lifecycle(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSubmissionService(client.Client)
	ctx := context.Background()
	sess := startSession(t, client.Client)
	sub := createSubmission(t, service, sess)

	t.Run("task id moves the submission to evaluating", func(t *testing.T) {
		require.NoError(t, service.SetTaskID(ctx, sub.ID, "9be4f2da-6c1e-4b5f-8a37-d2f0c3a41e09"))

		got, err := service.GetSubmission(ctx, sub.ID)
		require.NoError(t, err)
		assert.Equal(t, submission.Status(SubmissionEvaluating), got.Status)
		assert.Equal(t, "9be4f2da-6c1e-4b5f-8a37-d2f0c3a41e09", got.TaskID)
		assert.Nil(t, got.CompletedAt)
	})

	t.Run("complete stamps the finish time", func(t *testing.T) {
		require.NoError(t, service.Complete(ctx, sub.ID, SubmissionCompleted))

		got, err := service.GetSubmission(ctx, sub.ID)
		require.NoError(t, err)
		assert.Equal(t, submission.Status(SubmissionCompleted), got.Status)
		require.NotNil(t, got.CompletedAt)
	})

	t.Run("only terminal statuses are accepted", func(t *testing.T) {
		err := service.Complete(ctx, sub.ID, SubmissionPending)
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("missing submission returns not found", func(t *testing.T) {
		_, err := service.GetSubmission(ctx, 99999)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.ErrorIs(t, service.SetTaskID(ctx, 99999, "t"), ErrNotFound)
		assert.ErrorIs(t, service.Complete(ctx, 99999, SubmissionFailed), ErrNotFound)
	})
}

func TestSubmissionService_SaveRuns(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSubmissionService(client.Client)
	ctx := context.Background()
	sess := startSession(t, client.Client)
	sub := createSubmission(t, service, sess)

	// Case order as the sandbox reported them, not index order.
	runs := []models.RunRecord{
		{CaseIndex: 1, Verdict: "success", Passed: true, Output: "8", ExecutionTime: 0.12, MemoryKB: 31250},
		{CaseIndex: 0, Verdict: "success", Passed: true, Output: "4", ExecutionTime: 0.11, MemoryKB: 30844},
		{CaseIndex: 2, Verdict: "timeout", Passed: false, ExecutionTime: 2.0, MemoryKB: 32768, ExitCode: 137},
	}
	require.NoError(t, service.SaveRuns(ctx, sub.ID, runs))

	t.Run("runs come back in case order", func(t *testing.T) {
		got, err := service.GetSubmissionRuns(ctx, sub.ID)
		require.NoError(t, err)
		require.Len(t, got, 3)
		for i, run := range got {
			assert.Equal(t, i, run.CaseIndex)
		}
		assert.True(t, got[0].Passed)
		assert.Equal(t, "4", got[0].Output)
		assert.Equal(t, "timeout", string(got[2].Verdict))
		assert.False(t, got[2].Passed)
		assert.InDelta(t, 2.0, got[2].ExecutionTime, 0.001)
		assert.Equal(t, 32768, got[2].MemoryKB)
		assert.Equal(t, 137, got[2].ExitCode)
	})

	t.Run("duplicated grading pass is a no-op", func(t *testing.T) {
		require.NoError(t, service.SaveRuns(ctx, sub.ID, runs))

		got, err := service.GetSubmissionRuns(ctx, sub.ID)
		require.NoError(t, err)
		assert.Len(t, got, 3)
	})

	t.Run("no runs to save", func(t *testing.T) {
		require.NoError(t, service.SaveRuns(ctx, sub.ID, nil))
	})
}

func TestSubmissionService_SaveScore(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSubmissionService(client.Client)
	ctx := context.Background()
	sess := startSession(t, client.Client)
	sub := createSubmission(t, service, sess)

	t.Run("persists the grading record", func(t *testing.T) {
		prompt := 79.25
		saved, err := service.SaveScore(ctx, models.SaveScoreRequest{
			SubmissionID:     sub.ID,
			SessionID:        sess.ID,
			PromptScore:      &prompt,
			PerformanceScore: 78,
			CorrectnessScore: 100,
			TotalScore:       89.31,
			Grade:            "B",
			Rubric:           map[string]interface{}{"turn_scores": []interface{}{76.0, 82.0}},
		})
		require.NoError(t, err)
		require.NotNil(t, saved.PromptScore)
		assert.InDelta(t, 79.25, *saved.PromptScore, 0.01)
		assert.InDelta(t, 78, saved.PerformanceScore, 0.01)
		assert.InDelta(t, 100, saved.CorrectnessScore, 0.01)
		assert.InDelta(t, 89.31, saved.TotalScore, 0.01)
		assert.Equal(t, "B", saved.Grade)
		assert.Contains(t, saved.Rubric, "turn_scores")
	})

	t.Run("second save keeps the first record", func(t *testing.T) {
		again, err := service.SaveScore(ctx, models.SaveScoreRequest{
			SubmissionID: sub.ID, SessionID: sess.ID,
			PerformanceScore: 1, CorrectnessScore: 1, TotalScore: 1, Grade: "F",
		})
		require.NoError(t, err)
		assert.Equal(t, "B", again.Grade)
		assert.InDelta(t, 89.31, again.TotalScore, 0.01)
	})

	t.Run("prompt score stays null when prompt grading failed", func(t *testing.T) {
		other := createSubmission(t, service, sess)
		saved, err := service.SaveScore(ctx, models.SaveScoreRequest{
			SubmissionID: other.ID, SessionID: sess.ID,
			PerformanceScore: 60, CorrectnessScore: 50, TotalScore: 53.33, Grade: "F",
		})
		require.NoError(t, err)
		assert.Nil(t, saved.PromptScore)
	})

	t.Run("validates submission id", func(t *testing.T) {
		_, err := service.SaveScore(ctx, models.SaveScoreRequest{SessionID: sess.ID, Grade: "A"})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
		assert.Contains(t, err.Error(), "submission_id")
	})
}

func TestSubmissionService_GetSessionScore(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSubmissionService(client.Client)
	ctx := context.Background()
	sess := startSession(t, client.Client)

	t.Run("no score yet", func(t *testing.T) {
		_, err := service.GetSessionScore(ctx, sess.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("latest record wins", func(t *testing.T) {
		first := createSubmission(t, service, sess)
		// Score left behind by an earlier grading pass.
		_, err := client.Score.Create().
			SetSubmissionID(first.ID).
			SetSessionID(sess.ID).
			SetPerformanceScore(40).
			SetCorrectnessScore(40).
			SetTotalScore(40).
			SetGrade("F").
			SetCreatedAt(time.Now().Add(-time.Hour)).
			Save(ctx)
		require.NoError(t, err)

		second := createSubmission(t, service, sess)
		latest, err := service.SaveScore(ctx, models.SaveScoreRequest{
			SubmissionID: second.ID, SessionID: sess.ID,
			PerformanceScore: 78, CorrectnessScore: 100, TotalScore: 89.31, Grade: "B",
		})
		require.NoError(t, err)

		got, err := service.GetSessionScore(ctx, sess.ID)
		require.NoError(t, err)
		assert.Equal(t, latest.ID, got.ID)
		assert.Equal(t, "B", got.Grade)
	})
}

// createSubmission is the shared submission fixture for the grading tests.
func createSubmission(t *testing.T, service *SubmissionService, sess *ent.PromptSession) *ent.Submission {
	t.Helper()
	sub, err := service.CreateSubmission(context.Background(), models.CreateSubmissionRequest{
		SessionID:     sess.ID,
		ExamID:        sess.ExamID,
		ParticipantID: sess.ParticipantID,
		SpecID:        sess.SpecID,
		Code:          "n = int(input())\nprint(n * 2)\n",
	})
	require.NoError(t, err)
	return sub
}
