package graph

import "github.com/examkit/proctor/pkg/models"

// Delta is a node's partial state update. Scalar fields use pointers so that
// "unset" and "set to zero value" stay distinguishable; accumulating fields
// carry their own merge rule:
//
//   - Messages append to the state's message list
//   - TurnScores / TurnEvaluations union into the state maps
//   - ChatTokens / EvalTokens add componentwise
//
// Everything else overwrites when set.
type Delta struct {
	SessionID     *string
	ExamID        *int
	ParticipantID *int
	SpecID        *int

	Messages    []models.Envelope
	CurrentTurn *int

	HumanMessage *string
	AIMessage    *string

	IntentStatus      *models.IntentStatus
	IsGuardrailFailed *bool
	GuardrailMessage  *string
	GuideStrategy     *models.GuideStrategy
	Keywords          []string

	WriterStatus *models.WriterStatus
	WriterError  *string

	IsSubmitted  *bool
	CodeContent  *string
	CodeLanguage *string
	JudgeTaskID  *string

	TurnScores      map[string]models.TurnScore
	TurnEvaluations map[string]models.TurnEvaluation

	HolisticFlowScore    *float64
	HolisticFlowAnalysis *string
	AggregateTurnScore   *float64
	CodePerformanceScore *float64
	CodeCorrectnessScore *float64
	FinalScores          *models.FinalScores

	MemorySummary *string

	ErrorMessage *string
	RetryCount   *int

	ChatTokens *models.TokenUsage
	EvalTokens *models.TokenUsage
}

// Apply merges d into s following the per-field rules above.
func (s *State) Apply(d *Delta) {
	if d == nil {
		return
	}

	setString(&s.SessionID, d.SessionID)
	setInt(&s.ExamID, d.ExamID)
	setInt(&s.ParticipantID, d.ParticipantID)
	setInt(&s.SpecID, d.SpecID)

	if len(d.Messages) > 0 {
		s.Messages = append(s.Messages, d.Messages...)
	}
	setInt(&s.CurrentTurn, d.CurrentTurn)

	setString(&s.HumanMessage, d.HumanMessage)
	setString(&s.AIMessage, d.AIMessage)

	if d.IntentStatus != nil {
		s.IntentStatus = *d.IntentStatus
	}
	if d.IsGuardrailFailed != nil {
		s.IsGuardrailFailed = *d.IsGuardrailFailed
	}
	setString(&s.GuardrailMessage, d.GuardrailMessage)
	if d.GuideStrategy != nil {
		s.GuideStrategy = *d.GuideStrategy
	}
	if d.Keywords != nil {
		s.Keywords = d.Keywords
	}

	if d.WriterStatus != nil {
		s.WriterStatus = *d.WriterStatus
	}
	setString(&s.WriterError, d.WriterError)

	if d.IsSubmitted != nil {
		s.IsSubmitted = *d.IsSubmitted
	}
	setString(&s.CodeContent, d.CodeContent)
	setString(&s.CodeLanguage, d.CodeLanguage)
	setString(&s.JudgeTaskID, d.JudgeTaskID)

	if len(d.TurnScores) > 0 {
		if s.TurnScores == nil {
			s.TurnScores = map[string]models.TurnScore{}
		}
		for k, v := range d.TurnScores {
			s.TurnScores[k] = v
		}
	}
	if len(d.TurnEvaluations) > 0 {
		if s.TurnEvaluations == nil {
			s.TurnEvaluations = map[string]models.TurnEvaluation{}
		}
		for k, v := range d.TurnEvaluations {
			s.TurnEvaluations[k] = v
		}
	}

	if d.HolisticFlowScore != nil {
		s.HolisticFlowScore = clonePtr(d.HolisticFlowScore)
	}
	setString(&s.HolisticFlowAnalysis, d.HolisticFlowAnalysis)
	if d.AggregateTurnScore != nil {
		s.AggregateTurnScore = clonePtr(d.AggregateTurnScore)
	}
	if d.CodePerformanceScore != nil {
		s.CodePerformanceScore = clonePtr(d.CodePerformanceScore)
	}
	if d.CodeCorrectnessScore != nil {
		s.CodeCorrectnessScore = clonePtr(d.CodeCorrectnessScore)
	}
	if d.FinalScores != nil {
		fs := *d.FinalScores
		s.FinalScores = &fs
	}

	setString(&s.MemorySummary, d.MemorySummary)

	setString(&s.ErrorMessage, d.ErrorMessage)
	setInt(&s.RetryCount, d.RetryCount)

	if d.ChatTokens != nil {
		s.ChatTokens.Add(*d.ChatTokens)
	}
	if d.EvalTokens != nil {
		s.EvalTokens.Add(*d.EvalTokens)
	}
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}

// Convenience constructors used by nodes.

// StringPtr returns a pointer to v.
func StringPtr(v string) *string { return &v }

// IntPtr returns a pointer to v.
func IntPtr(v int) *int { return &v }

// BoolPtr returns a pointer to v.
func BoolPtr(v bool) *bool { return &v }

// Float64Ptr returns a pointer to v.
func Float64Ptr(v float64) *float64 { return &v }

// IntentPtr returns a pointer to v.
func IntentPtr(v models.IntentStatus) *models.IntentStatus { return &v }

// StrategyPtr returns a pointer to v.
func StrategyPtr(v models.GuideStrategy) *models.GuideStrategy { return &v }

// WriterStatusPtr returns a pointer to v.
func WriterStatusPtr(v models.WriterStatus) *models.WriterStatus { return &v }
