// Package prompts manages the versioned prompt templates the engine sends to
// its models. Built-in templates are embedded; a config directory can
// override any of them by name.
package prompts

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed templates
var builtinFS embed.FS

// ErrPromptNotFound is returned when no template exists under a name.
var ErrPromptNotFound = errors.New("prompt not found")

// Prompt is one loaded template document.
type Prompt struct {
	Version     string   `yaml:"version"`
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Variables   []string `yaml:"variables"`
	Template    string   `yaml:"template"`
}

// Meta describes a prompt without its template body.
type Meta struct {
	Version     string   `json:"version"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Variables   []string `json:"variables"`
}

// Registry loads and caches prompt documents.
type Registry struct {
	overlayDir string

	mu    sync.RWMutex
	cache map[string]*Prompt
}

// NewRegistry returns a registry serving the embedded templates.
func NewRegistry() *Registry {
	return &Registry{cache: map[string]*Prompt{}}
}

// NewRegistryWithOverlay returns a registry that prefers templates from
// dir (e.g. <configDir>/prompts) over the embedded ones.
func NewRegistryWithOverlay(dir string) *Registry {
	return &Registry{overlayDir: dir, cache: map[string]*Prompt{}}
}

// Get loads the prompt document for name. Name may contain a subdirectory
// ("eval_criteria/generation"); a "#section" suffix selects a section of a
// multi-document file ("writer#refusal").
func (r *Registry) Get(name string) (*Prompt, error) {
	r.mu.RLock()
	if p, ok := r.cache[name]; ok {
		r.mu.RUnlock()
		return p, nil
	}
	r.mu.RUnlock()

	base, section := name, ""
	if idx := strings.Index(name, "#"); idx >= 0 {
		base, section = name[:idx], name[idx+1:]
	}

	data, err := r.read(base)
	if err != nil {
		return nil, err
	}

	p, err := parsePrompt(data, base, section)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.cache[name] = p
	r.mu.Unlock()
	return p, nil
}

// Render loads name and substitutes vars into its template. Unknown
// variables in the template are preserved verbatim so a missing value is
// visible in the output instead of silently blank.
func (r *Registry) Render(name string, vars map[string]string) (string, error) {
	p, err := r.Get(name)
	if err != nil {
		return "", err
	}
	if p.Template == "" {
		return "", fmt.Errorf("prompt %q has no template field", name)
	}
	return Substitute(p.Template, vars), nil
}

// Metadata returns the descriptive fields of a prompt.
func (r *Registry) Metadata(name string) (Meta, error) {
	p, err := r.Get(name)
	if err != nil {
		return Meta{}, err
	}
	version := p.Version
	if version == "" {
		version = "1.0"
	}
	promptName := p.Name
	if promptName == "" {
		promptName = name
	}
	return Meta{
		Version:     version,
		Name:        promptName,
		Description: p.Description,
		Variables:   p.Variables,
	}, nil
}

// ClearCache drops all cached documents; the next Get re-reads sources.
func (r *Registry) ClearCache() {
	r.mu.Lock()
	r.cache = map[string]*Prompt{}
	r.mu.Unlock()
}

func (r *Registry) read(base string) ([]byte, error) {
	if r.overlayDir != "" {
		path := filepath.Join(r.overlayDir, filepath.FromSlash(base)+".yaml")
		if data, err := os.ReadFile(path); err == nil {
			return data, nil
		}
	}
	data, err := builtinFS.ReadFile("templates/" + base + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrPromptNotFound, base)
	}
	return data, nil
}

func parsePrompt(data []byte, base, section string) (*Prompt, error) {
	if section == "" {
		var p Prompt
		if err := yaml.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("failed to parse prompt %s: %w", base, err)
		}
		return &p, nil
	}

	var sections map[string]Prompt
	if err := yaml.Unmarshal(data, &sections); err != nil {
		return nil, fmt.Errorf("failed to parse prompt %s: %w", base, err)
	}
	p, ok := sections[section]
	if !ok {
		return nil, fmt.Errorf("%w: %s#%s", ErrPromptNotFound, base, section)
	}
	return &p, nil
}
