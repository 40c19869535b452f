// Package masking scrubs credential material from text before it leaves the
// process. Chat messages and submitted code are forwarded verbatim to
// third-party model providers, and participants paste live tokens into both.
package masking

import (
	"log/slog"

	"github.com/examkit/proctor/pkg/config"
)

// Service applies structural maskers and regex patterns to outbound text.
// Created once at application startup. Thread-safe and stateless aside from
// compiled patterns.
type Service struct {
	patterns map[string]*CompiledPattern
	order    []string // stable application order over patterns
	maskers  []Masker // structural maskers, applied before the regex sweep
}

// NewService creates a masking service with compiled patterns and registered
// structural maskers. All patterns are compiled eagerly at creation time;
// invalid patterns are logged and skipped.
func NewService(cfg *config.MaskingConfig) *Service {
	s := &Service{
		patterns: make(map[string]*CompiledPattern),
	}

	s.compileBuiltinPatterns()
	if cfg != nil {
		s.compileExtraPatterns(cfg.ExtraPatterns)
	}
	s.sortPatterns()

	s.registerMasker(&EnvBlockMasker{})

	slog.Info("Masking service initialized",
		"compiled_patterns", len(s.patterns),
		"structural_maskers", len(s.maskers))

	return s
}

// Mask scrubs credentials from text. Structural maskers run first, while the
// original layout is still intact, then the regex patterns sweep whatever
// remains. On any masker failure the text passes through unchanged
// (fail-open: a lost mask must not block the exam).
func (s *Service) Mask(text string) string {
	if text == "" {
		return text
	}

	masked := text
	for _, m := range s.maskers {
		if m.AppliesTo(masked) {
			masked = m.Mask(masked)
		}
	}
	for _, name := range s.order {
		p := s.patterns[name]
		masked = p.Regex.ReplaceAllString(masked, p.Replacement)
	}

	return masked
}

// registerMasker appends a structural masker to the application order.
func (s *Service) registerMasker(m Masker) {
	s.maskers = append(s.maskers, m)
}
