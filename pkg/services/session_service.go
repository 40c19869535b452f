package services

import (
	"context"
	"fmt"
	"time"

	"github.com/examkit/proctor/ent"
	"github.com/examkit/proctor/ent/promptmessage"
	"github.com/examkit/proctor/ent/promptsession"
	"github.com/examkit/proctor/pkg/models"
)

// SessionService manages prompt session lifecycle. A session is the full chat
// history of one participant on one problem; it stays open (ended_at NULL)
// until the code is submitted or the cleanup job closes it.
type SessionService struct {
	client *ent.Client
}

// NewSessionService creates a new SessionService
func NewSessionService(client *ent.Client) *SessionService {
	return &SessionService{client: client}
}

// StartSession returns the participant's open session, creating one when none
// exists. The partial unique index on (exam_id, participant_id) WHERE
// ended_at IS NULL makes concurrent creates safe: the loser of the race
// re-reads the winner's row.
func (s *SessionService) StartSession(ctx context.Context, req models.StartSessionRequest) (*ent.PromptSession, error) {
	if req.ExamID <= 0 {
		return nil, NewValidationError("exam_id", "required")
	}
	if req.ParticipantID <= 0 {
		return nil, NewValidationError("participant_id", "required")
	}
	if req.SpecID <= 0 {
		return nil, NewValidationError("spec_id", "required")
	}

	existing, err := s.GetOpenSession(ctx, req.ExamID, req.ParticipantID)
	if err == nil {
		return existing, nil
	}
	if !ent.IsNotFound(err) {
		return nil, err
	}

	session, err := s.client.PromptSession.Create().
		SetExamID(req.ExamID).
		SetParticipantID(req.ParticipantID).
		SetSpecID(req.SpecID).
		SetStartedAt(time.Now()).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Lost the create race; the open session now exists.
			return s.GetOpenSession(ctx, req.ExamID, req.ParticipantID)
		}
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return session, nil
}

// GetSession retrieves a session by ID
func (s *SessionService) GetSession(ctx context.Context, id int) (*ent.PromptSession, error) {
	session, err := s.client.PromptSession.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: session %d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return session, nil
}

// GetOpenSession retrieves the participant's open session, if any.
func (s *SessionService) GetOpenSession(ctx context.Context, examID, participantID int) (*ent.PromptSession, error) {
	session, err := s.client.PromptSession.Query().
		Where(
			promptsession.ExamIDEQ(examID),
			promptsession.ParticipantIDEQ(participantID),
			promptsession.EndedAtIsNil(),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get open session: %w", err)
	}
	return session, nil
}

// EndSession closes a session by setting ended_at. Ending an already closed
// session is a no-op, so submit and cleanup can both call it.
func (s *SessionService) EndSession(ctx context.Context, id int) error {
	n, err := s.client.PromptSession.Update().
		Where(
			promptsession.IDEQ(id),
			promptsession.EndedAtIsNil(),
		).
		SetEndedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}
	if n == 0 {
		// Nothing updated: the session is already closed or missing.
		if _, err := s.GetSession(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

// AddTokens accumulates LLM token usage on the session record.
func (s *SessionService) AddTokens(ctx context.Context, id int, tokens int) error {
	if tokens <= 0 {
		return nil
	}
	err := s.client.PromptSession.UpdateOneID(id).
		AddTotalTokens(tokens).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("%w: session %d", ErrNotFound, id)
		}
		return fmt.Errorf("failed to add session tokens: %w", err)
	}
	return nil
}

// DeleteSession removes a session and, via cascades, its messages,
// evaluations, submissions, runs and scores.
func (s *SessionService) DeleteSession(ctx context.Context, id int) error {
	err := s.client.PromptSession.DeleteOneID(id).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("%w: session %d", ErrNotFound, id)
		}
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// TokenStats summarizes a session's LLM spend.
type TokenStats struct {
	SessionID     int `json:"session_id"`
	TotalTokens   int `json:"total_tokens"`
	MessageTokens int `json:"message_tokens"`
	MessageCount  int `json:"message_count"`
}

// GetTokenStats reports the session's accumulated token counters alongside
// the per-message sum, which can lag the session total when evaluation calls
// consumed tokens outside any message.
func (s *SessionService) GetTokenStats(ctx context.Context, id int) (*TokenStats, error) {
	session, err := s.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}

	var agg []struct {
		Sum   int `json:"sum"`
		Count int `json:"count"`
	}
	err = s.client.PromptMessage.Query().
		Where(promptmessage.SessionIDEQ(id)).
		Aggregate(
			ent.Sum(promptmessage.FieldTokenCount),
			ent.Count(),
		).
		Scan(ctx, &agg)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate message tokens: %w", err)
	}

	stats := &TokenStats{
		SessionID:   id,
		TotalTokens: session.TotalTokens,
	}
	if len(agg) > 0 {
		stats.MessageTokens = agg[0].Sum
		stats.MessageCount = agg[0].Count
	}
	return stats, nil
}

// CloseIdleSessions closes open sessions with no activity since the cutoff:
// no message newer than cutoff and a start older than it. Returns how many
// sessions were closed. Safe to run from several replicas; the update is a
// single conditional statement.
func (s *SessionService) CloseIdleSessions(ctx context.Context, cutoff time.Time) (int, error) {
	n, err := s.client.PromptSession.Update().
		Where(
			promptsession.EndedAtIsNil(),
			promptsession.StartedAtLT(cutoff),
			promptsession.Not(
				promptsession.HasMessagesWith(promptmessage.CreatedAtGT(cutoff)),
			),
		).
		SetEndedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to close idle sessions: %w", err)
	}
	return n, nil
}
