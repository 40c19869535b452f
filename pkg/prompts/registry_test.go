package prompts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubstitute(t *testing.T) {
	vars := map[string]string{"name": "TSP", "level": "LOGIC_HINT"}

	tests := []struct {
		name     string
		template string
		want     string
	}{
		{"plain dollar form", "Problem: $name", "Problem: TSP"},
		{"braced form", "Problem: ${name}", "Problem: TSP"},
		{"mixed", "$name at ${level}", "TSP at LOGIC_HINT"},
		{"missing kept verbatim", "Hello $missing and ${also_missing}", "Hello $missing and ${also_missing}"},
		{"escaped dollar", "costs $$5", "costs $5"},
		{"adjacent text", "${name}s", "TSPs"},
		{"dollar before non-ident", "a $ b $1", "a $ b $1"},
		{"unterminated brace kept", "x ${name", "x ${name"},
		{"no variables", "static text", "static text"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Substitute(tt.template, vars))
		})
	}
}

func TestGetBuiltinPrompt(t *testing.T) {
	r := NewRegistry()

	p, err := r.Get("intent_analyzer")
	require.NoError(t, err)
	assert.Equal(t, "intent_analyzer", p.Name)
	assert.NotEmpty(t, p.Template)
	assert.Contains(t, p.Variables, "problem_title")
}

func TestGetUnknownPrompt(t *testing.T) {
	r := NewRegistry()

	_, err := r.Get("does_not_exist")
	assert.ErrorIs(t, err, ErrPromptNotFound)
}

func TestGetSection(t *testing.T) {
	r := NewRegistry()

	p, err := r.Get("eval_criteria#generation")
	require.NoError(t, err)
	assert.Equal(t, "eval_criteria_generation", p.Name)
	assert.Contains(t, p.Template, "generation prompt")

	_, err = r.Get("eval_criteria#no_such_section")
	assert.ErrorIs(t, err, ErrPromptNotFound)
}

func TestRenderSubstitutesVariables(t *testing.T) {
	r := NewRegistry()

	out, err := r.Render("writer_refusal", map[string]string{
		"problem_title": "외판원 순회",
		"block_reason":  "DIRECT_ANSWER",
	})
	require.NoError(t, err)
	assert.Contains(t, out, "외판원 순회")
	assert.Contains(t, out, "DIRECT_ANSWER")
	assert.NotContains(t, out, "${problem_title}")
}

func TestRenderPreservesMissingVariables(t *testing.T) {
	r := NewRegistry()

	out, err := r.Render("writer_normal", map[string]string{
		"problem_title": "TSP",
	})
	require.NoError(t, err)
	assert.Contains(t, out, "TSP")
	// Unprovided variables stay visible instead of rendering blank.
	assert.Contains(t, out, "${guide_strategy}")
}

func TestMetadataDefaults(t *testing.T) {
	r := NewRegistry()

	meta, err := r.Metadata("writer_submission")
	require.NoError(t, err)
	assert.Equal(t, "writer_submission", meta.Name)
	assert.Equal(t, "1.0", meta.Version)
	assert.NotEmpty(t, meta.Description)
}

func TestOverlayDirectoryWins(t *testing.T) {
	dir := t.TempDir()
	override := `version: "9.9"
name: greeting
description: test override
template: "custom greeting for $problem_title"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "greeting.yaml"), []byte(override), 0o644))

	r := NewRegistryWithOverlay(dir)
	out, err := r.Render("greeting", map[string]string{"problem_title": "TSP"})
	require.NoError(t, err)
	assert.Equal(t, "custom greeting for TSP", out)

	meta, err := r.Metadata("greeting")
	require.NoError(t, err)
	assert.Equal(t, "9.9", meta.Version)

	// Names without an override still resolve to the builtin.
	p, err := r.Get("writer_normal")
	require.NoError(t, err)
	assert.NotEmpty(t, p.Template)
}

func TestCacheAndClear(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "greeting.yaml")
	require.NoError(t, os.WriteFile(path, []byte("template: \"v1\"\n"), 0o644))

	r := NewRegistryWithOverlay(dir)

	out, err := r.Render("greeting", nil)
	require.NoError(t, err)
	assert.Equal(t, "v1", out)

	// Cached: a file change is invisible until the cache is cleared.
	require.NoError(t, os.WriteFile(path, []byte("template: \"v2\"\n"), 0o644))
	out, err = r.Render("greeting", nil)
	require.NoError(t, err)
	assert.Equal(t, "v1", out)

	r.ClearCache()
	out, err = r.Render("greeting", nil)
	require.NoError(t, err)
	assert.Equal(t, "v2", out)
}

func TestAllBuiltinTemplatesParse(t *testing.T) {
	r := NewRegistry()
	names := []string{
		"intent_analyzer",
		"writer_normal",
		"writer_refusal",
		"writer_submission",
		"writer_full_code",
		"greeting",
		"summarize_memory",
		"eval_turn",
		"answer_summary",
		"holistic_flow",
		"code_eval_fallback",
	}
	for _, name := range names {
		p, err := r.Get(name)
		require.NoError(t, err, name)
		assert.NotEmpty(t, p.Template, name)
	}

	sections := []string{
		"generation", "optimization", "debugging", "test_case",
		"rule_setting", "system_prompt", "hint_or_query", "follow_up",
	}
	for _, section := range sections {
		p, err := r.Get("eval_criteria#" + section)
		require.NoError(t, err, section)
		assert.NotEmpty(t, p.Template, section)
	}
}
