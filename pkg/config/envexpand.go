package config

import (
	"os"
	"regexp"
)

var (
	envWithDefault = regexp.MustCompile(`\$\{([A-Z_][A-Z0-9_]*):-(.*?)\}`)
	envBraced      = regexp.MustCompile(`\$\{([A-Z_][A-Z0-9_]*)\}`)
)

// ExpandEnv expands environment variables in YAML content.
// Supports ${VAR} and ${VAR:-default}. Bare $VAR is left untouched so
// prompt-template placeholders ($problem_title, $keywords, ...) survive
// a round trip through the config directory.
//
// Examples:
//   - ${GOOGLE_API_KEY}          → value of GOOGLE_API_KEY (empty if unset)
//   - ${DB_HOST:-localhost}      → value of DB_HOST, or "localhost" if unset
//   - $answer_summary            → preserved literally
//
// Missing variables expand to empty string; validation catches required
// fields that end up empty.
func ExpandEnv(data []byte) []byte {
	out := envWithDefault.ReplaceAllFunc(data, func(match []byte) []byte {
		parts := envWithDefault.FindSubmatch(match)
		if len(parts) != 3 {
			return match
		}
		if val := os.Getenv(string(parts[1])); val != "" {
			return []byte(val)
		}
		return parts[2]
	})

	out = envBraced.ReplaceAllFunc(out, func(match []byte) []byte {
		parts := envBraced.FindSubmatch(match)
		if len(parts) != 2 {
			return match
		}
		return []byte(os.Getenv(string(parts[1])))
	})

	return out
}
