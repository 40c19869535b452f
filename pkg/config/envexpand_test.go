package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandEnv(t *testing.T) {
	t.Setenv("PROCTOR_TEST_HOST", "db.internal")
	t.Setenv("PROCTOR_TEST_EMPTY", "")

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "braced variable",
			input:    "host: ${PROCTOR_TEST_HOST}",
			expected: "host: db.internal",
		},
		{
			name:     "default used when unset",
			input:    "host: ${PROCTOR_TEST_MISSING:-localhost}",
			expected: "host: localhost",
		},
		{
			name:     "default used when empty",
			input:    "host: ${PROCTOR_TEST_EMPTY:-fallback}",
			expected: "host: fallback",
		},
		{
			name:     "set variable beats default",
			input:    "host: ${PROCTOR_TEST_HOST:-other}",
			expected: "host: db.internal",
		},
		{
			name:     "missing variable expands empty",
			input:    "key: ${PROCTOR_TEST_MISSING}",
			expected: "key: ",
		},
		{
			name:     "bare dollar preserved",
			input:    "template: $answer_summary and $keywords",
			expected: "template: $answer_summary and $keywords",
		},
		{
			name:     "lowercase braces preserved",
			input:    "pattern: ${not_an_env_var}",
			expected: "pattern: ${not_an_env_var}",
		},
		{
			name:     "multiple variables on one line",
			input:    "${PROCTOR_TEST_HOST}:${PROCTOR_TEST_PORT:-5432}",
			expected: "db.internal:5432",
		},
		{
			name:     "no variables passes through",
			input:    "plain: yaml\nlist: [1, 2, 3]",
			expected: "plain: yaml\nlist: [1, 2, 3]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ExpandEnv([]byte(tt.input))
			assert.Equal(t, tt.expected, string(result))
		})
	}
}
