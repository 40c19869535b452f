package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/examkit/proctor/pkg/config"
	"github.com/examkit/proctor/pkg/database"
	"github.com/examkit/proctor/pkg/models"
	"github.com/examkit/proctor/pkg/services"
	testdb "github.com/examkit/proctor/test/database"
)

func setupCleanup(t *testing.T) (*database.Client, *services.SessionService, *services.EvaluationService, *Service) {
	t.Helper()
	client := testdb.NewTestClient(t)
	sessions := services.NewSessionService(client.Client)
	evaluations := services.NewEvaluationService(client.Client)

	cfg := &config.RetentionConfig{
		SessionIdleTimeout:      1 * time.Hour,
		EvaluationRetentionDays: 30,
		Schedule:                "0 */1 * * *",
	}
	return client, sessions, evaluations, NewService(cfg, sessions, evaluations)
}

// backdateSession rewrites started_at directly; the field is immutable
// through the entity API.
func backdateSession(t *testing.T, client *database.Client, id int, to time.Time) {
	t.Helper()
	_, err := client.DB().ExecContext(context.Background(),
		"UPDATE prompt_sessions SET started_at = $1 WHERE id = $2", to, id)
	require.NoError(t, err)
}

func backdateEvaluations(t *testing.T, client *database.Client, sessionID int, to time.Time) {
	t.Helper()
	_, err := client.DB().ExecContext(context.Background(),
		"UPDATE prompt_evaluations SET created_at = $1 WHERE session_id = $2", to, sessionID)
	require.NoError(t, err)
}

func TestService_ClosesIdleSessions(t *testing.T) {
	client, sessions, _, svc := setupCleanup(t)
	ctx := context.Background()

	idle, err := sessions.StartSession(ctx, models.StartSessionRequest{
		ExamID: 1, ParticipantID: 1, SpecID: 10,
	})
	require.NoError(t, err)
	backdateSession(t, client, idle.ID, time.Now().Add(-2*time.Hour))

	fresh, err := sessions.StartSession(ctx, models.StartSessionRequest{
		ExamID: 1, ParticipantID: 2, SpecID: 10,
	})
	require.NoError(t, err)

	svc.RunOnce(ctx)

	closed, err := sessions.GetSession(ctx, idle.ID)
	require.NoError(t, err)
	assert.NotNil(t, closed.EndedAt)

	open, err := sessions.GetSession(ctx, fresh.ID)
	require.NoError(t, err)
	assert.Nil(t, open.EndedAt)
}

func TestService_KeepsIdleSessionWithRecentMessages(t *testing.T) {
	client, sessions, _, svc := setupCleanup(t)
	messages := services.NewMessageService(client.Client)
	ctx := context.Background()

	sess, err := sessions.StartSession(ctx, models.StartSessionRequest{
		ExamID: 2, ParticipantID: 1, SpecID: 10,
	})
	require.NoError(t, err)
	backdateSession(t, client, sess.ID, time.Now().Add(-2*time.Hour))

	// A brand-new message means the participant is still active.
	_, err = messages.SaveMessage(ctx, models.SaveMessageRequest{
		SessionID: sess.ID, Role: models.RoleUser, Content: "still here",
	})
	require.NoError(t, err)

	svc.RunOnce(ctx)

	got, err := sessions.GetSession(ctx, sess.ID)
	require.NoError(t, err)
	assert.Nil(t, got.EndedAt)
}

func TestService_PurgesOldEvaluationsOfClosedSessions(t *testing.T) {
	client, sessions, evaluations, svc := setupCleanup(t)
	ctx := context.Background()

	closed, err := sessions.StartSession(ctx, models.StartSessionRequest{
		ExamID: 3, ParticipantID: 1, SpecID: 10,
	})
	require.NoError(t, err)

	turn := 2
	_, err = evaluations.SaveEvaluation(ctx, models.SaveEvaluationRequest{
		SessionID: closed.ID, Turn: &turn, Type: models.EvalTypeTurn, Score: 71.5,
	})
	require.NoError(t, err)
	require.NoError(t, sessions.EndSession(ctx, closed.ID))
	backdateEvaluations(t, client, closed.ID, time.Now().AddDate(0, 0, -60))

	// Same-age evaluation on a session that is still open must survive.
	open, err := sessions.StartSession(ctx, models.StartSessionRequest{
		ExamID: 3, ParticipantID: 2, SpecID: 10,
	})
	require.NoError(t, err)
	_, err = evaluations.SaveEvaluation(ctx, models.SaveEvaluationRequest{
		SessionID: open.ID, Turn: &turn, Type: models.EvalTypeTurn, Score: 64.0,
	})
	require.NoError(t, err)
	backdateEvaluations(t, client, open.ID, time.Now().AddDate(0, 0, -60))

	svc.RunOnce(ctx)

	purged, err := evaluations.GetSessionEvaluations(ctx, closed.ID)
	require.NoError(t, err)
	assert.Empty(t, purged)

	kept, err := evaluations.GetSessionEvaluations(ctx, open.ID)
	require.NoError(t, err)
	assert.Len(t, kept, 1)
}

func TestService_RunOnceIsIdempotent(t *testing.T) {
	client, sessions, _, svc := setupCleanup(t)
	ctx := context.Background()

	sess, err := sessions.StartSession(ctx, models.StartSessionRequest{
		ExamID: 4, ParticipantID: 1, SpecID: 10,
	})
	require.NoError(t, err)
	backdateSession(t, client, sess.ID, time.Now().Add(-2*time.Hour))

	svc.RunOnce(ctx)
	first, err := sessions.GetSession(ctx, sess.ID)
	require.NoError(t, err)
	require.NotNil(t, first.EndedAt)

	svc.RunOnce(ctx)
	second, err := sessions.GetSession(ctx, sess.ID)
	require.NoError(t, err)
	require.NotNil(t, second.EndedAt)
	assert.True(t, first.EndedAt.Equal(*second.EndedAt), "ended_at must not move on re-run")
}

func TestService_RejectsBadSchedule(t *testing.T) {
	svc := NewService(&config.RetentionConfig{
		SessionIdleTimeout:      time.Hour,
		EvaluationRetentionDays: 30,
		Schedule:                "not a cron expression",
	}, nil, nil)

	err := svc.Start(context.Background())
	require.Error(t, err)
}
