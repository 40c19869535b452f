package services

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/examkit/proctor/ent/promptmessage"
	"github.com/examkit/proctor/pkg/models"
	testdb "github.com/examkit/proctor/test/database"
)

func TestMessageService_SaveMessage(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewMessageService(client.Client)
	ctx := context.Background()
	sess := startSession(t, client.Client)

	t.Run("assigns turns atomically", func(t *testing.T) {
		first, err := service.SaveMessage(ctx, models.SaveMessageRequest{
			SessionID: sess.ID, Role: models.RoleUser, Content: "첫 질문", TokenCount: 5,
		})
		require.NoError(t, err)
		assert.Equal(t, 1, first.Turn)
		assert.Equal(t, promptmessage.RoleUser, first.Role)
		assert.False(t, first.CreatedAt.IsZero())

		second, err := service.SaveMessage(ctx, models.SaveMessageRequest{
			SessionID: sess.ID, Role: models.RoleUser, Content: "둘째 질문",
		})
		require.NoError(t, err)
		assert.Equal(t, 2, second.Turn)
	})

	t.Run("explicit turn is idempotent per role", func(t *testing.T) {
		reply := models.SaveMessageRequest{
			SessionID: sess.ID, Turn: 1, Role: models.RoleAssistant,
			Content: "힌트입니다", TokenCount: 12,
			Meta: map[string]interface{}{"intent_status": "PASSED_HINT"},
		}
		first, err := service.SaveMessage(ctx, reply)
		require.NoError(t, err)
		assert.Equal(t, 1, first.Turn)
		assert.Equal(t, promptmessage.RoleAi, first.Role)

		// Replay returns the stored row instead of inserting a duplicate.
		reply.Content = "different content"
		second, err := service.SaveMessage(ctx, reply)
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, "힌트입니다", second.Content)
	})

	t.Run("user and assistant share a turn", func(t *testing.T) {
		msgs, err := service.GetSessionMessages(ctx, sess.ID)
		require.NoError(t, err)
		require.Len(t, msgs, 3)
		assert.Equal(t, 1, msgs[0].Turn)
		assert.Equal(t, promptmessage.RoleUser, msgs[0].Role)
		assert.Equal(t, 1, msgs[1].Turn)
		assert.Equal(t, promptmessage.RoleAi, msgs[1].Role)
		assert.Equal(t, 2, msgs[2].Turn)
	})

	t.Run("validates required fields", func(t *testing.T) {
		_, err := service.SaveMessage(ctx, models.SaveMessageRequest{Role: models.RoleUser, Content: "x"})
		assert.True(t, IsValidationError(err))

		_, err = service.SaveMessage(ctx, models.SaveMessageRequest{SessionID: sess.ID, Role: models.RoleUser})
		assert.True(t, IsValidationError(err))
	})
}

func TestMessageService_ConcurrentTurnAssignment(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewMessageService(client.Client)
	ctx := context.Background()
	sess := startSession(t, client.Client)

	const writers = 8
	turns := make([]int, writers)
	errs := make([]error, writers)
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			msg, err := service.SaveMessage(ctx, models.SaveMessageRequest{
				SessionID: sess.ID, Role: models.RoleUser, Content: "동시 저장",
			})
			if err != nil {
				errs[i] = err
				return
			}
			turns[i] = msg.Turn
		}()
	}
	wg.Wait()
	for i, err := range errs {
		require.NoError(t, err, "writer %d", i)
	}

	// Every writer got a distinct turn with no gaps.
	seen := map[int]bool{}
	for _, turn := range turns {
		assert.False(t, seen[turn], "turn %d assigned twice", turn)
		seen[turn] = true
	}
	for turn := 1; turn <= writers; turn++ {
		assert.True(t, seen[turn], "turn %d missing", turn)
	}
}

func TestMessageService_GetLastMessages(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewMessageService(client.Client)
	ctx := context.Background()
	sess := startSession(t, client.Client)

	for i := 1; i <= 5; i++ {
		_, err := service.SaveMessage(ctx, models.SaveMessageRequest{
			SessionID: sess.ID, Role: models.RoleUser, Content: "질문",
		})
		require.NoError(t, err)
	}

	last, err := service.GetLastMessages(ctx, sess.ID, 3)
	require.NoError(t, err)
	require.Len(t, last, 3)
	// Chronological order within the window.
	assert.Equal(t, 3, last[0].Turn)
	assert.Equal(t, 4, last[1].Turn)
	assert.Equal(t, 5, last[2].Turn)
}

func TestMessageService_NextTurn(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewMessageService(client.Client)
	ctx := context.Background()
	sess := startSession(t, client.Client)

	next, err := service.NextTurn(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, next)

	_, err = service.SaveMessage(ctx, models.SaveMessageRequest{
		SessionID: sess.ID, Role: models.RoleUser, Content: "질문",
	})
	require.NoError(t, err)

	next, err = service.NextTurn(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, next)
}

func TestEnvelopes(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewMessageService(client.Client)
	ctx := context.Background()
	sess := startSession(t, client.Client)

	_, err := service.SaveMessage(ctx, models.SaveMessageRequest{
		SessionID: sess.ID, Role: models.RoleUser, Content: "질문",
	})
	require.NoError(t, err)
	_, err = service.SaveMessage(ctx, models.SaveMessageRequest{
		SessionID: sess.ID, Turn: 1, Role: models.RoleAssistant, Content: "답변",
	})
	require.NoError(t, err)

	msgs, err := service.GetSessionMessages(ctx, sess.ID)
	require.NoError(t, err)

	envs := Envelopes(msgs)
	require.Len(t, envs, 2)
	assert.Equal(t, models.RoleUser, envs[0].Role)
	assert.Equal(t, "질문", envs[0].Content)
	assert.Equal(t, 1, envs[0].Turn)
	assert.Equal(t, models.RoleAssistant, envs[1].Role)
	assert.False(t, envs[1].Timestamp.IsZero())
}
