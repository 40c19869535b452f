package masking

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvBlockMaskerAppliesTo(t *testing.T) {
	m := &EnvBlockMasker{}

	tests := []struct {
		name string
		text string
		want bool
	}{
		{name: "env password line", text: "DB_PASSWORD=hunter2", want: true},
		{name: "export prefix", text: "export OPENAI_API_KEY=sk-abc", want: true},
		{name: "spaced assignment", text: "  AWS_SECRET_ACCESS_KEY = abc", want: true},
		{name: "no equals sign", text: "점화식 힌트를 주세요", want: false},
		{name: "lowercase code assignment", text: "pwd = os.getcwd()", want: false},
		{name: "non-sensitive env key", text: "TIMEOUT=30", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, m.AppliesTo(tt.text))
		})
	}
}

func TestEnvBlockMaskerMask(t *testing.T) {
	m := &EnvBlockMasker{}

	input := strings.Join([]string{
		"# exam environment",
		"DB_HOST=localhost",
		"DB_PASSWORD=hunter2",
		"export GITHUB_TOKEN=ghp_abc",
		"SECRET_KEY = 'django-insecure-abc'",
		"EMPTY_TOKEN=",
	}, "\n")

	want := strings.Join([]string{
		"# exam environment",
		"DB_HOST=localhost",
		"DB_PASSWORD=__MASKED_ENV_VALUE__",
		"export GITHUB_TOKEN=__MASKED_ENV_VALUE__",
		"SECRET_KEY = __MASKED_ENV_VALUE__",
		"EMPTY_TOKEN=",
	}, "\n")

	assert.Equal(t, want, m.Mask(input))
}

// Submitted code shares the text path with .env pastes; lower-case
// identifiers never count as env keys.
func TestEnvBlockMaskerLeavesCodeAlone(t *testing.T) {
	m := &EnvBlockMasker{}

	code := "def main():\n    pwd = input()\n    n = int(pwd)\n    return n"

	assert.False(t, m.AppliesTo(code))
	assert.Equal(t, code, m.Mask(code))
}

func TestEnvBlockMaskerName(t *testing.T) {
	assert.Equal(t, "env_block", (&EnvBlockMasker{}).Name())
}
