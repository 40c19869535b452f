package masking

// Masker is the interface for structural maskers that need more context than
// a single regex carries, e.g. masking the values in a pasted .env block
// while leaving the keys readable.
type Masker interface {
	// Name identifies the masker in logs and masked-region annotations.
	Name() string

	// AppliesTo cheaply decides whether Mask should run at all. A string
	// containment check, not a parse.
	AppliesTo(text string) bool

	// Mask rewrites the text with secrets replaced. On any processing
	// failure it returns the input unchanged rather than dropping text.
	Mask(text string) string
}
