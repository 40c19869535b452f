package masking

import (
	"fmt"
	"log/slog"
	"regexp"
	"slices"

	"github.com/examkit/proctor/pkg/config"
)

// CompiledPattern pairs a ready-to-run regex with the replacement it stamps
// over matches.
type CompiledPattern struct {
	Name        string
	Regex       *regexp.Regexp
	Replacement string
	Description string
}

// compileBuiltinPatterns loads the built-in pattern table from config. A
// pattern that fails to compile is logged and dropped rather than taking the
// service down.
func (s *Service) compileBuiltinPatterns() {
	for name, pattern := range config.GetBuiltinConfig().MaskingPatterns {
		s.addPattern(name, pattern)
	}
}

// compileExtraPatterns compiles deployment-specific patterns from YAML.
// Extra patterns are keyed "extra:{index}" to avoid collisions with
// built-in names.
func (s *Service) compileExtraPatterns(extra []config.MaskingPattern) {
	for i, pattern := range extra {
		s.addPattern(fmt.Sprintf("extra:%d", i), pattern)
	}
}

func (s *Service) addPattern(name string, pattern config.MaskingPattern) {
	compiled, err := regexp.Compile(pattern.Pattern)
	if err != nil {
		slog.Error("Failed to compile masking pattern, skipping",
			"pattern", name, "error", err)
		return
	}
	s.patterns[name] = &CompiledPattern{
		Name:        name,
		Regex:       compiled,
		Replacement: pattern.Replacement,
		Description: pattern.Description,
	}
	s.order = append(s.order, name)
}

// sortPatterns pins the application order. The built-in table is a map, and
// masked output must not depend on map iteration order.
func (s *Service) sortPatterns() {
	slices.Sort(s.order)
}
