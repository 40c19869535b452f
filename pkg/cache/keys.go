package cache

import "fmt"

// Key builders. The layout is shared with the exam platform's other services,
// so the patterns are fixed.

// QueueKey is the pending-submission list consumed by execution workers.
const QueueKey = "judge_queue:pending"

// StateKey addresses a session's full graph state snapshot.
func StateKey(sessionID string) string {
	return "langgraph:state:" + sessionID
}

// CheckpointKey addresses one node-boundary checkpoint.
func CheckpointKey(sessionID, checkpointID string) string {
	return fmt.Sprintf("langgraph:checkpoint:%s:%s", sessionID, checkpointID)
}

// CheckpointLatestKey holds the id of the newest checkpoint for a session.
func CheckpointLatestKey(sessionID string) string {
	return fmt.Sprintf("langgraph:checkpoint:%s:latest", sessionID)
}

// TurnLogKey addresses the evaluation artifact of one turn.
func TurnLogKey(sessionID string, turn int) string {
	return fmt.Sprintf("turn_logs:%s:%d", sessionID, turn)
}

// TurnDataKey addresses the raw exchange record of one turn. The exam
// platform writes these; this service only reserves the slot in the layout.
func TurnDataKey(sessionID string, turn int) string {
	return fmt.Sprintf("turn:data:%s:%d", sessionID, turn)
}

// TurnMappingKey addresses the turn → message-index mapping.
func TurnMappingKey(sessionID string) string {
	return "turn_mapping:" + sessionID
}

// MemorySummaryKey addresses the compacted conversation summary.
func MemorySummaryKey(sessionID string) string {
	return "memory:summary:" + sessionID
}

// ScoresKey addresses the final score record.
func ScoresKey(sessionID string) string {
	return "eval:scores:" + sessionID
}

// JudgeStatusKey addresses a queued execution's lifecycle status.
func JudgeStatusKey(submissionID string) string {
	return "judge_status:" + submissionID
}

// JudgeResultKey addresses a finished execution's result record.
func JudgeResultKey(submissionID string) string {
	return "judge_result:" + submissionID
}

// ActiveSessionKey maps (exam, participant) to the open session id.
func ActiveSessionKey(examID, participantID int) string {
	return fmt.Sprintf("session:active:%d:%d", examID, participantID)
}
