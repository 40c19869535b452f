// Package models holds the shared domain types of the evaluation engine:
// message envelopes, enums carried through session state, per-turn evaluation
// records, and final score structures.
package models

// Role identifies the author of a message envelope.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

// IntentStatus is the routing verdict of the intent analyzer. The uppercase
// values are wire-visible: they are stored with messages and returned to
// clients.
type IntentStatus string

const (
	IntentPending         IntentStatus = "PENDING"
	IntentPassedHint      IntentStatus = "PASSED_HINT"
	IntentPassedSubmit    IntentStatus = "PASSED_SUBMIT"
	IntentFailedGuardrail IntentStatus = "FAILED_GUARDRAIL"
	IntentFailedRateLimit IntentStatus = "FAILED_RATE_LIMIT"
)

// GuardStatus is the Layer 2 classifier's safety verdict.
type GuardStatus string

const (
	GuardSafe    GuardStatus = "SAFE"
	GuardBlocked GuardStatus = "BLOCKED"
)

// BlockReason explains a BLOCKED verdict. Empty means not blocked.
type BlockReason string

const (
	BlockNone         BlockReason = ""
	BlockDirectAnswer BlockReason = "DIRECT_ANSWER"
	BlockJailbreak    BlockReason = "JAILBREAK"
	BlockOffTopic     BlockReason = "OFF_TOPIC"
)

// RequestType distinguishes conversational turns from submission attempts.
type RequestType string

const (
	RequestChat       RequestType = "CHAT"
	RequestSubmission RequestType = "SUBMISSION"
)

// GuideStrategy tells the writer how much help the reply may contain.
type GuideStrategy string

const (
	StrategySyntaxGuide     GuideStrategy = "SYNTAX_GUIDE"
	StrategyLogicHint       GuideStrategy = "LOGIC_HINT"
	StrategyRoadmap         GuideStrategy = "ROADMAP"
	StrategyGeneration      GuideStrategy = "GENERATION"
	StrategyFullCodeAllowed GuideStrategy = "FULL_CODE_ALLOWED"
)

// ValidGuideStrategy reports whether s is one of the known strategies.
func ValidGuideStrategy(s GuideStrategy) bool {
	switch s {
	case StrategySyntaxGuide, StrategyLogicHint, StrategyRoadmap, StrategyGeneration, StrategyFullCodeAllowed:
		return true
	}
	return false
}

// WriterStatus is the outcome of a writer node run. The writer never returns
// an error; failures are encoded here and routed on.
type WriterStatus string

const (
	WriterPending         WriterStatus = ""
	WriterSuccess         WriterStatus = "SUCCESS"
	WriterFailedRateLimit WriterStatus = "FAILED_RATE_LIMIT"
	WriterFailedThreshold WriterStatus = "FAILED_THRESHOLD"
	WriterFailedTechnical WriterStatus = "FAILED_TECHNICAL"
)

// CodeIntent classifies what a prompt asked the assistant to do. Used by the
// per-turn evaluator to pick the rubric set.
type CodeIntent string

const (
	IntentGeneration   CodeIntent = "GENERATION"
	IntentOptimization CodeIntent = "OPTIMIZATION"
	IntentDebugging    CodeIntent = "DEBUGGING"
	IntentTestCase     CodeIntent = "TEST_CASE"
	IntentRuleSetting  CodeIntent = "RULE_SETTING"
	IntentSystemPrompt CodeIntent = "SYSTEM_PROMPT"
	IntentHintOrQuery  CodeIntent = "HINT_OR_QUERY"
	IntentFollowUp     CodeIntent = "FOLLOW_UP"
)

// intentPriority orders intents for tie-breaking when a prompt matches
// several: code-producing intents dominate, conversational ones come last.
var intentPriority = map[CodeIntent]int{
	IntentGeneration:   8,
	IntentOptimization: 7,
	IntentDebugging:    6,
	IntentTestCase:     5,
	IntentRuleSetting:  4,
	IntentSystemPrompt: 3,
	IntentHintOrQuery:  2,
	IntentFollowUp:     1,
}

// IntentPriority returns the tie-break rank of an intent; higher wins.
// Unknown intents rank lowest.
func IntentPriority(i CodeIntent) int {
	return intentPriority[i]
}

// AllCodeIntents lists the known intents in priority order, highest first.
func AllCodeIntents() []CodeIntent {
	return []CodeIntent{
		IntentGeneration,
		IntentOptimization,
		IntentDebugging,
		IntentTestCase,
		IntentRuleSetting,
		IntentSystemPrompt,
		IntentHintOrQuery,
		IntentFollowUp,
	}
}

// EvaluationType tags rows in the durable evaluation store.
type EvaluationType string

const (
	EvalTypeTurn                EvaluationType = "TURN_EVAL"
	EvalTypeHolistic            EvaluationType = "HOLISTIC_FLOW"
	EvalTypeHolisticPerformance EvaluationType = "HOLISTIC_PERFORMANCE"
)

// Language codes accepted for code submissions.
const (
	LangPython     = "python"
	LangJava       = "java"
	LangCPP        = "cpp"
	LangC          = "c"
	LangJavaScript = "javascript"
	LangGo         = "go"
	LangRust       = "rust"
)

// SupportedLanguage reports whether lang can be compiled and run by the
// execution backend.
func SupportedLanguage(lang string) bool {
	switch lang {
	case LangPython, LangJava, LangCPP, LangC, LangJavaScript, LangGo, LangRust:
		return true
	}
	return false
}
