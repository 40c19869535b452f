package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/examkit/proctor/ent"
	"github.com/examkit/proctor/ent/problemspec"
	"github.com/examkit/proctor/pkg/problems"
)

// ProblemStore reads the durable problem bank. It implements problems.Store:
// unknown spec ids return (nil, nil) so the registry falls through to the
// static map.
type ProblemStore struct {
	client *ent.Client
}

// NewProblemStore creates a ProblemStore backed by the given ent client.
func NewProblemStore(client *ent.Client) *ProblemStore {
	return &ProblemStore{client: client}
}

// ProblemContext loads the context document for specID.
func (s *ProblemStore) ProblemContext(ctx context.Context, specID int) (*problems.Context, error) {
	row, err := s.client.ProblemSpec.Query().
		Where(problemspec.SpecIDEQ(specID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load problem spec %d: %w", specID, err)
	}

	var pc problems.Context
	if err := json.Unmarshal(row.Context, &pc); err != nil {
		return nil, fmt.Errorf("problem spec %d has a malformed context document: %w", specID, err)
	}
	if pc.SpecID == 0 {
		pc.SpecID = specID
	}
	return &pc, nil
}

// SaveProblemContext writes the context document for pc.SpecID, replacing an
// existing one. The exam tooling uses it to push problems into the bank.
func (s *ProblemStore) SaveProblemContext(ctx context.Context, pc *problems.Context) error {
	if pc == nil || pc.SpecID <= 0 {
		return NewValidationError("spec_id", "required")
	}
	doc, err := json.Marshal(pc)
	if err != nil {
		return fmt.Errorf("failed to encode problem context: %w", err)
	}

	n, err := s.client.ProblemSpec.Update().
		Where(problemspec.SpecIDEQ(pc.SpecID)).
		SetContext(doc).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to update problem spec %d: %w", pc.SpecID, err)
	}
	if n > 0 {
		return nil
	}

	_, err = s.client.ProblemSpec.Create().
		SetSpecID(pc.SpecID).
		SetContext(doc).
		Save(ctx)
	if err != nil {
		// Lost the insert race to a concurrent writer; their document wins.
		if ent.IsConstraintError(err) {
			return nil
		}
		return fmt.Errorf("failed to create problem spec %d: %w", pc.SpecID, err)
	}
	return nil
}
