package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/examkit/proctor/ent"
	"github.com/examkit/proctor/ent/promptmessage"
	"github.com/examkit/proctor/pkg/models"
)

// MessageService manages durable chat messages. The durable store is the
// source of truth; cache updates always come after a successful save here.
type MessageService struct {
	client *ent.Client
}

// NewMessageService creates a new MessageService
func NewMessageService(client *ent.Client) *MessageService {
	return &MessageService{client: client}
}

// SaveMessage persists one message. With req.Turn == 0 the turn number is
// assigned inside the INSERT itself (COALESCE(MAX(turn),0)+1 per session), so
// concurrent saves never produce duplicate or NULL turns. With a positive
// req.Turn the save is idempotent: an existing (session, turn, role) row is
// returned unchanged.
func (s *MessageService) SaveMessage(ctx context.Context, req models.SaveMessageRequest) (*ent.PromptMessage, error) {
	if req.SessionID <= 0 {
		return nil, NewValidationError("session_id", "required")
	}
	if req.Content == "" {
		return nil, NewValidationError("content", "required")
	}
	role := dbRole(req.Role)

	if req.Turn > 0 {
		existing, err := s.client.PromptMessage.Query().
			Where(
				promptmessage.SessionIDEQ(req.SessionID),
				promptmessage.TurnEQ(req.Turn),
				promptmessage.RoleEQ(role),
			).
			Only(ctx)
		if err == nil {
			return existing, nil
		}
		if !ent.IsNotFound(err) {
			return nil, fmt.Errorf("failed to check existing message: %w", err)
		}

		msg, err := s.client.PromptMessage.Create().
			SetSessionID(req.SessionID).
			SetTurn(req.Turn).
			SetRole(role).
			SetContent(req.Content).
			SetTokenCount(req.TokenCount).
			SetMeta(req.Meta).
			SetCreatedAt(time.Now()).
			Save(ctx)
		if err != nil {
			if ent.IsConstraintError(err) {
				// Lost a duplicate-save race; the row exists now.
				return s.client.PromptMessage.Query().
					Where(
						promptmessage.SessionIDEQ(req.SessionID),
						promptmessage.TurnEQ(req.Turn),
						promptmessage.RoleEQ(role),
					).
					Only(ctx)
			}
			return nil, fmt.Errorf("failed to save message: %w", err)
		}
		return msg, nil
	}

	return s.saveWithNextTurn(ctx, req, role)
}

// saveWithNextTurn assigns MAX(turn)+1 and inserts in one statement. Raw SQL
// because Ent cannot express a subquery in an INSERT value.
func (s *MessageService) saveWithNextTurn(ctx context.Context, req models.SaveMessageRequest, role promptmessage.Role) (*ent.PromptMessage, error) {
	var metaArg any
	if req.Meta != nil {
		data, err := json.Marshal(req.Meta)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal message meta: %w", err)
		}
		metaArg = string(data)
	}

	rows, err := s.client.QueryContext(ctx, `
		INSERT INTO prompt_messages (session_id, turn, role, content, token_count, meta, created_at)
		VALUES (
			$1,
			(SELECT COALESCE(MAX(turn), 0) + 1 FROM prompt_messages WHERE session_id = $1),
			$2, $3, $4, CAST($5 AS jsonb), NOW()
		)
		RETURNING id, turn, created_at`,
		req.SessionID, string(role), req.Content, req.TokenCount, metaArg)
	if err != nil {
		return nil, fmt.Errorf("failed to save message: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("failed to save message: %w", err)
		}
		return nil, fmt.Errorf("message insert returned no row")
	}

	msg := &ent.PromptMessage{
		SessionID:  req.SessionID,
		Role:       role,
		Content:    req.Content,
		TokenCount: req.TokenCount,
		Meta:       req.Meta,
	}
	if err := rows.Scan(&msg.ID, &msg.Turn, &msg.CreatedAt); err != nil {
		return nil, fmt.Errorf("failed to scan saved message: %w", err)
	}
	return msg, nil
}

// GetSessionMessages retrieves all messages of a session in turn order.
func (s *MessageService) GetSessionMessages(ctx context.Context, sessionID int) ([]*ent.PromptMessage, error) {
	messages, err := s.client.PromptMessage.Query().
		Where(promptmessage.SessionIDEQ(sessionID)).
		Order(ent.Asc(promptmessage.FieldTurn), ent.Asc(promptmessage.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get session messages: %w", err)
	}
	return messages, nil
}

// GetLastMessages retrieves the most recent n messages of a session in
// chronological order.
func (s *MessageService) GetLastMessages(ctx context.Context, sessionID, n int) ([]*ent.PromptMessage, error) {
	messages, err := s.client.PromptMessage.Query().
		Where(promptmessage.SessionIDEQ(sessionID)).
		Order(ent.Desc(promptmessage.FieldTurn), ent.Desc(promptmessage.FieldID)).
		Limit(n).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get last messages: %w", err)
	}
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}

// NextTurn returns the turn number the next saved message would receive.
func (s *MessageService) NextTurn(ctx context.Context, sessionID int) (int, error) {
	var agg []struct {
		Max *int `json:"max"`
	}
	err := s.client.PromptMessage.Query().
		Where(promptmessage.SessionIDEQ(sessionID)).
		Aggregate(ent.Max(promptmessage.FieldTurn)).
		Scan(ctx, &agg)
	if err != nil {
		return 0, fmt.Errorf("failed to get max turn: %w", err)
	}
	if len(agg) == 0 || agg[0].Max == nil {
		return 1, nil
	}
	return *agg[0].Max + 1, nil
}

// Envelopes converts stored messages into the state envelope form used by
// the graph and the history endpoint.
func Envelopes(messages []*ent.PromptMessage) []models.Envelope {
	envelopes := make([]models.Envelope, 0, len(messages))
	for _, m := range messages {
		envelopes = append(envelopes, models.Envelope{
			Role:      envelopeRole(m.Role),
			Content:   m.Content,
			Turn:      m.Turn,
			Timestamp: m.CreatedAt,
		})
	}
	return envelopes
}

// dbRole maps the state-level role onto the stored enum. The store only
// distinguishes participant and tutor rows.
func dbRole(r models.Role) promptmessage.Role {
	switch r {
	case models.RoleAssistant:
		return promptmessage.RoleAi
	default:
		return promptmessage.RoleUser
	}
}

// envelopeRole maps a stored role back to the state-level role.
func envelopeRole(r promptmessage.Role) models.Role {
	if r == promptmessage.RoleAi {
		return models.RoleAssistant
	}
	return models.RoleUser
}
