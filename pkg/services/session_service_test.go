package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/examkit/proctor/ent"
	"github.com/examkit/proctor/pkg/models"
	testdb "github.com/examkit/proctor/test/database"
)

func TestSessionService_StartSession(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSessionService(client.Client)
	ctx := context.Background()

	t.Run("creates open session", func(t *testing.T) {
		sess, err := service.StartSession(ctx, models.StartSessionRequest{
			ExamID: 100, ParticipantID: 200, SpecID: 7,
		})
		require.NoError(t, err)
		assert.Equal(t, 100, sess.ExamID)
		assert.Equal(t, 200, sess.ParticipantID)
		assert.Equal(t, 7, sess.SpecID)
		assert.Nil(t, sess.EndedAt)
		assert.Equal(t, 0, sess.TotalTokens)
		assert.False(t, sess.StartedAt.IsZero())
	})

	t.Run("returns existing open session", func(t *testing.T) {
		first, err := service.StartSession(ctx, models.StartSessionRequest{
			ExamID: 101, ParticipantID: 201, SpecID: 7,
		})
		require.NoError(t, err)

		second, err := service.StartSession(ctx, models.StartSessionRequest{
			ExamID: 101, ParticipantID: 201, SpecID: 7,
		})
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
	})

	t.Run("new session after previous one ended", func(t *testing.T) {
		first, err := service.StartSession(ctx, models.StartSessionRequest{
			ExamID: 102, ParticipantID: 202, SpecID: 7,
		})
		require.NoError(t, err)
		require.NoError(t, service.EndSession(ctx, first.ID))

		second, err := service.StartSession(ctx, models.StartSessionRequest{
			ExamID: 102, ParticipantID: 202, SpecID: 7,
		})
		require.NoError(t, err)
		assert.NotEqual(t, first.ID, second.ID)
		assert.Nil(t, second.EndedAt)
	})

	t.Run("validates required fields", func(t *testing.T) {
		tests := []struct {
			name    string
			req     models.StartSessionRequest
			wantErr string
		}{
			{
				name:    "missing exam_id",
				req:     models.StartSessionRequest{ParticipantID: 1, SpecID: 1},
				wantErr: "exam_id",
			},
			{
				name:    "missing participant_id",
				req:     models.StartSessionRequest{ExamID: 1, SpecID: 1},
				wantErr: "participant_id",
			},
			{
				name:    "missing spec_id",
				req:     models.StartSessionRequest{ExamID: 1, ParticipantID: 1},
				wantErr: "spec_id",
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := service.StartSession(ctx, tt.req)
				require.Error(t, err)
				assert.True(t, IsValidationError(err))
				assert.Contains(t, err.Error(), tt.wantErr)
			})
		}
	})
}

func TestSessionService_StartSessionConcurrentPools(t *testing.T) {
	shared := testdb.NewSharedTestDB(t)
	ctx := context.Background()

	// One service per connection pool, as if each ran in its own API pod.
	const pods = 4
	svcs := make([]*SessionService, pods)
	for i := range svcs {
		svcs[i] = NewSessionService(shared.NewClient(t).Client)
	}

	results := make([]*ent.PromptSession, pods)
	var g errgroup.Group
	for i, svc := range svcs {
		g.Go(func() error {
			sess, err := svc.StartSession(ctx, models.StartSessionRequest{
				ExamID: 50, ParticipantID: 60, SpecID: 7,
			})
			if err != nil {
				return err
			}
			results[i] = sess
			return nil
		})
	}
	require.NoError(t, g.Wait())

	// Exactly one open session survives the race and every pod sees it.
	for _, sess := range results[1:] {
		assert.Equal(t, results[0].ID, sess.ID)
	}

	count, err := shared.NewClient(t).PromptSession.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestSessionService_EndSession(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSessionService(client.Client)
	ctx := context.Background()

	t.Run("closes open session", func(t *testing.T) {
		sess, err := service.StartSession(ctx, models.StartSessionRequest{
			ExamID: 1, ParticipantID: 1, SpecID: 1,
		})
		require.NoError(t, err)

		require.NoError(t, service.EndSession(ctx, sess.ID))

		got, err := service.GetSession(ctx, sess.ID)
		require.NoError(t, err)
		require.NotNil(t, got.EndedAt)
	})

	t.Run("ending twice is a no-op", func(t *testing.T) {
		sess, err := service.StartSession(ctx, models.StartSessionRequest{
			ExamID: 2, ParticipantID: 2, SpecID: 1,
		})
		require.NoError(t, err)

		require.NoError(t, service.EndSession(ctx, sess.ID))
		first, err := service.GetSession(ctx, sess.ID)
		require.NoError(t, err)

		require.NoError(t, service.EndSession(ctx, sess.ID))
		second, err := service.GetSession(ctx, sess.ID)
		require.NoError(t, err)
		assert.Equal(t, first.EndedAt.UnixNano(), second.EndedAt.UnixNano())
	})

	t.Run("missing session returns not found", func(t *testing.T) {
		err := service.EndSession(ctx, 99999)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestSessionService_GetSession(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSessionService(client.Client)
	ctx := context.Background()

	_, err := service.GetSession(ctx, 12345)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSessionService_AddTokens(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSessionService(client.Client)
	ctx := context.Background()

	sess, err := service.StartSession(ctx, models.StartSessionRequest{
		ExamID: 1, ParticipantID: 1, SpecID: 1,
	})
	require.NoError(t, err)

	require.NoError(t, service.AddTokens(ctx, sess.ID, 120))
	require.NoError(t, service.AddTokens(ctx, sess.ID, 80))
	require.NoError(t, service.AddTokens(ctx, sess.ID, 0)) // ignored

	got, err := service.GetSession(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, 200, got.TotalTokens)

	assert.ErrorIs(t, service.AddTokens(ctx, 99999, 10), ErrNotFound)
}

func TestSessionService_GetTokenStats(t *testing.T) {
	client := testdb.NewTestClient(t)
	sessions := NewSessionService(client.Client)
	messages := NewMessageService(client.Client)
	ctx := context.Background()

	sess, err := sessions.StartSession(ctx, models.StartSessionRequest{
		ExamID: 1, ParticipantID: 1, SpecID: 1,
	})
	require.NoError(t, err)

	for _, tc := range []struct {
		role   models.Role
		tokens int
	}{
		{models.RoleUser, 15},
		{models.RoleAssistant, 45},
	} {
		_, err := messages.SaveMessage(ctx, models.SaveMessageRequest{
			SessionID: sess.ID, Role: tc.role, Content: "hello", TokenCount: tc.tokens,
		})
		require.NoError(t, err)
	}
	require.NoError(t, sessions.AddTokens(ctx, sess.ID, 100))

	stats, err := sessions.GetTokenStats(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, sess.ID, stats.SessionID)
	assert.Equal(t, 100, stats.TotalTokens)
	assert.Equal(t, 60, stats.MessageTokens)
	assert.Equal(t, 2, stats.MessageCount)
}

func TestSessionService_CloseIdleSessions(t *testing.T) {
	client := testdb.NewTestClient(t)
	sessions := NewSessionService(client.Client)
	messages := NewMessageService(client.Client)
	ctx := context.Background()

	// Idle: started before the cutoff, no messages since.
	idle, err := client.PromptSession.Create().
		SetExamID(1).SetParticipantID(1).SetSpecID(1).
		SetStartedAt(time.Now().Add(-3 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	// Active: old start but a recent message.
	active, err := client.PromptSession.Create().
		SetExamID(1).SetParticipantID(2).SetSpecID(1).
		SetStartedAt(time.Now().Add(-3 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)
	_, err = messages.SaveMessage(ctx, models.SaveMessageRequest{
		SessionID: active.ID, Role: models.RoleUser, Content: "still here",
	})
	require.NoError(t, err)

	// Fresh: started after the cutoff.
	fresh, err := sessions.StartSession(ctx, models.StartSessionRequest{
		ExamID: 1, ParticipantID: 3, SpecID: 1,
	})
	require.NoError(t, err)

	closed, err := sessions.CloseIdleSessions(ctx, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, closed)

	assertOpen := func(id int, wantOpen bool) {
		t.Helper()
		got, err := sessions.GetSession(ctx, id)
		require.NoError(t, err)
		if wantOpen {
			assert.Nil(t, got.EndedAt)
		} else {
			assert.NotNil(t, got.EndedAt)
		}
	}
	assertOpen(idle.ID, false)
	assertOpen(active.ID, true)
	assertOpen(fresh.ID, true)
}

func TestSessionService_DeleteSessionCascades(t *testing.T) {
	client := testdb.NewTestClient(t)
	sessions := NewSessionService(client.Client)
	messages := NewMessageService(client.Client)
	ctx := context.Background()

	sess, err := sessions.StartSession(ctx, models.StartSessionRequest{
		ExamID: 1, ParticipantID: 1, SpecID: 1,
	})
	require.NoError(t, err)
	_, err = messages.SaveMessage(ctx, models.SaveMessageRequest{
		SessionID: sess.ID, Role: models.RoleUser, Content: "hi",
	})
	require.NoError(t, err)

	require.NoError(t, sessions.DeleteSession(ctx, sess.ID))

	_, err = sessions.GetSession(ctx, sess.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	left, err := messages.GetSessionMessages(ctx, sess.ID)
	require.NoError(t, err)
	assert.Empty(t, left)

	assert.ErrorIs(t, sessions.DeleteSession(ctx, sess.ID), ErrNotFound)
}

// startSession is the shared fixture helper for the service tests.
func startSession(t *testing.T, client *ent.Client) *ent.PromptSession {
	t.Helper()
	sess, err := NewSessionService(client).StartSession(context.Background(), models.StartSessionRequest{
		ExamID: 10, ParticipantID: 20, SpecID: 1,
	})
	require.NoError(t, err)
	return sess
}
