package masking

import (
	"regexp"
	"strings"
)

// MaskedEnvValue is the replacement string for masked environment values.
const MaskedEnvValue = "__MASKED_ENV_VALUE__"

// Pre-compiled patterns for fast AppliesTo checks and line parsing.
var (
	sensitiveEnvLinePattern = regexp.MustCompile(
		`(?m)^\s*(?:export\s+)?[A-Z0-9_]*(?:KEY|TOKEN|SECRET|PASSWORD|PASSWD|PWD|CREDENTIAL)[A-Z0-9_]*\s*=`)
	envAssignPattern = regexp.MustCompile(
		`^(\s*(?:export\s+)?)([A-Z_][A-Z0-9_]*)(\s*=\s*)(.*)$`)
)

// sensitiveKeyFragments mark an env key as credential-bearing. Keys are
// matched case-sensitively: .env blocks use upper-case keys by convention,
// and lower-case identifiers in pasted code must stay untouched.
var sensitiveKeyFragments = []string{
	"KEY", "TOKEN", "SECRET", "PASSWORD", "PASSWD", "PWD", "CREDENTIAL",
}

// EnvBlockMasker masks the values of credential-looking keys in pasted .env
// or shell-export blocks while leaving ordinary assignments readable.
type EnvBlockMasker struct{}

// Name returns the unique identifier for this masker.
func (m *EnvBlockMasker) Name() string { return "env_block" }

// AppliesTo performs a lightweight check for KEY=value lines whose key looks
// credential-bearing.
func (m *EnvBlockMasker) AppliesTo(text string) bool {
	if !strings.Contains(text, "=") {
		return false
	}
	return sensitiveEnvLinePattern.MatchString(text)
}

// Mask replaces the values of sensitive assignments line by line. Lines that
// do not parse as env assignments pass through untouched.
func (m *EnvBlockMasker) Mask(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		groups := envAssignPattern.FindStringSubmatch(line)
		if groups == nil {
			continue
		}
		if !isSensitiveEnvKey(groups[2]) {
			continue
		}
		if strings.TrimSpace(groups[4]) == "" {
			continue // nothing to hide on KEY= with no value
		}
		lines[i] = groups[1] + groups[2] + groups[3] + MaskedEnvValue
	}
	return strings.Join(lines, "\n")
}

// isSensitiveEnvKey reports whether an upper-case env key carries one of the
// credential fragments.
func isSensitiveEnvKey(key string) bool {
	for _, fragment := range sensitiveKeyFragments {
		if strings.Contains(key, fragment) {
			return true
		}
	}
	return false
}
