package llm

import "strings"

// FailureClass buckets provider errors for routing: rate-limit failures are
// retried and eventually waited out, threshold failures trigger history
// compaction, everything else is a technical failure.
type FailureClass string

const (
	FailureRateLimit FailureClass = "rate_limit"
	FailureThreshold FailureClass = "threshold"
	FailureOther     FailureClass = "other"
)

// Classify buckets err by message content. Provider SDKs surface quota and
// context-window problems with differing types but stable vocabulary, so the
// match is on the lowercased message.
func Classify(err error) FailureClass {
	if err == nil {
		return FailureOther
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "rate"), strings.Contains(msg, "quota"):
		return FailureRateLimit
	case strings.Contains(msg, "context"), strings.Contains(msg, "token"):
		return FailureThreshold
	}
	return FailureOther
}

// Retryable reports whether a retry has a chance of succeeding: rate and
// quota pressure clears, timeouts may be transient. Context-window overflow
// never fixes itself by retrying.
func Retryable(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "rate") ||
		strings.Contains(msg, "quota") ||
		strings.Contains(msg, "timeout")
}
