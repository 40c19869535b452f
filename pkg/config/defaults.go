package config

// Defaults contains system-wide default configurations
// These values are used when specific components don't specify their own values
type Defaults struct {
	// LLM provider used for the chat/writer path
	LLMProvider string `yaml:"llm_provider,omitempty"`

	// LLM provider used for evaluation paths; falls back to LLMProvider
	EvalLLMProvider string `yaml:"eval_llm_provider,omitempty"`

	// Default submission language when a request omits it
	Language string `yaml:"language,omitempty"`

	// HistoryWindow is the number of recent messages handed to the writer
	HistoryWindow int `yaml:"history_window,omitempty"`

	// MemoryThresholdTokens triggers history summarization when the
	// estimated prompt size exceeds it
	MemoryThresholdTokens int `yaml:"memory_threshold_tokens,omitempty"`
}

// EvalProvider resolves the evaluation provider name.
func (d *Defaults) EvalProvider() string {
	if d.EvalLLMProvider != "" {
		return d.EvalLLMProvider
	}
	return d.LLMProvider
}
