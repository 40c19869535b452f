package services

import (
	"context"
	"fmt"
	"time"

	"github.com/examkit/proctor/ent"
	"github.com/examkit/proctor/ent/promptevaluation"
	"github.com/examkit/proctor/ent/promptsession"
	"github.com/examkit/proctor/pkg/models"
)

// EvaluationService persists judged scores: per-turn rubric rows and the
// holistic (whole-session) rows written at submission time.
type EvaluationService struct {
	client *ent.Client
}

// NewEvaluationService creates a new EvaluationService
func NewEvaluationService(client *ent.Client) *EvaluationService {
	return &EvaluationService{client: client}
}

// SaveEvaluation persists one score row. Saves are idempotent per
// (session, turn, evaluation_type): a row that already exists is returned
// unchanged, so a re-submitted evaluation never doubles up.
func (s *EvaluationService) SaveEvaluation(ctx context.Context, req models.SaveEvaluationRequest) (*ent.PromptEvaluation, error) {
	if req.SessionID <= 0 {
		return nil, NewValidationError("session_id", "required")
	}
	if req.Type == "" {
		return nil, NewValidationError("evaluation_type", "required")
	}

	existing, err := s.find(ctx, req.SessionID, req.Turn, req.Type)
	if err == nil {
		return existing, nil
	}
	if !ent.IsNotFound(err) {
		return nil, err
	}

	create := s.client.PromptEvaluation.Create().
		SetSessionID(req.SessionID).
		SetEvaluationType(promptevaluation.EvaluationType(req.Type)).
		SetNodeName(req.NodeName).
		SetScore(req.Score).
		SetAnalysis(req.Analysis).
		SetCreatedAt(time.Now())
	if req.Turn != nil {
		create.SetTurn(*req.Turn)
	}
	if req.Details != nil {
		create.SetDetails(req.Details)
	}

	eval, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return s.find(ctx, req.SessionID, req.Turn, req.Type)
		}
		return nil, fmt.Errorf("failed to save evaluation: %w", err)
	}
	return eval, nil
}

func (s *EvaluationService) find(ctx context.Context, sessionID int, turn *int, evalType models.EvaluationType) (*ent.PromptEvaluation, error) {
	query := s.client.PromptEvaluation.Query().
		Where(
			promptevaluation.SessionIDEQ(sessionID),
			promptevaluation.EvaluationTypeEQ(promptevaluation.EvaluationType(evalType)),
		)
	if turn != nil {
		query.Where(promptevaluation.TurnEQ(*turn))
	} else {
		query.Where(promptevaluation.TurnIsNil())
	}
	eval, err := query.First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find evaluation: %w", err)
	}
	return eval, nil
}

// GetSessionEvaluations retrieves every evaluation row of a session,
// per-turn rows first in turn order, then holistic rows.
func (s *EvaluationService) GetSessionEvaluations(ctx context.Context, sessionID int) ([]*ent.PromptEvaluation, error) {
	evals, err := s.client.PromptEvaluation.Query().
		Where(promptevaluation.SessionIDEQ(sessionID)).
		Order(ent.Asc(promptevaluation.FieldTurn), ent.Asc(promptevaluation.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get session evaluations: %w", err)
	}
	return evals, nil
}

// GetTurnEvaluations retrieves only the per-turn rows of a session in turn
// order.
func (s *EvaluationService) GetTurnEvaluations(ctx context.Context, sessionID int) ([]*ent.PromptEvaluation, error) {
	evals, err := s.client.PromptEvaluation.Query().
		Where(
			promptevaluation.SessionIDEQ(sessionID),
			promptevaluation.EvaluationTypeEQ(promptevaluation.EvaluationType(models.EvalTypeTurn)),
		).
		Order(ent.Asc(promptevaluation.FieldTurn)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get turn evaluations: %w", err)
	}
	return evals, nil
}

// PurgeBefore deletes evaluation rows of closed sessions created before the
// cutoff. Open sessions keep their rows regardless of age. Returns how many
// rows were removed.
func (s *EvaluationService) PurgeBefore(ctx context.Context, cutoff time.Time) (int, error) {
	n, err := s.client.PromptEvaluation.Delete().
		Where(
			promptevaluation.CreatedAtLT(cutoff),
			promptevaluation.HasSessionWith(promptsession.EndedAtNotNil()),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to purge evaluations: %w", err)
	}
	return n, nil
}
