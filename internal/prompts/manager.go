package prompts

import (
	"embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// embeds all .yaml files in the templates folder at compile time
//
//go:embed templates/*.yaml
var templateFS embed.FS

// PromptProvider is what handlers and services depend on; satisfied by
// Manager and by test fakes.
type PromptProvider interface {
	BuildPrompt(name, variant string, data map[string]string) (string, error)
}

type Manager struct {
	prompts map[string]map[string]string // name -> variant -> complete prompt
}

// loaded prompt template
type PromptTemplate struct {
	BasePrompt string            `yaml:"base_prompt"`
	Variants   map[string]string `yaml:"variants"`
}

// creates a new prompt manager and loads templates
func NewManager() (*Manager, error) {
	m := &Manager{
		prompts: make(map[string]map[string]string),
	}

	if err := m.loadPrompts(); err != nil {
		return nil, fmt.Errorf("failed to load prompt templates: %w", err)
	}

	return m, nil
}

// builds a prompt for the given template name, variant and data
func (m *Manager) BuildPrompt(name, variant string, data map[string]string) (string, error) {
	variants, exists := m.prompts[name]
	if !exists {
		return "", fmt.Errorf("template not found: %s", name)
	}

	prompt, exists := variants[variant]
	if !exists {
		return "", fmt.Errorf("variant '%s' not found for template '%s'", variant, name)
	}

	// Simple string replacement instead of template execution
	for key, value := range data {
		prompt = strings.ReplaceAll(prompt, "{{."+key+"}}", value)
	}

	return prompt, nil
}

// loadPrompts loads all YAML prompt files from the embedded filesystem
func (m *Manager) loadPrompts() error {
	entries, err := templateFS.ReadDir("templates")
	if err != nil {
		return fmt.Errorf("failed to read templates directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}

		data, err := templateFS.ReadFile("templates/" + entry.Name())
		if err != nil {
			return fmt.Errorf("failed to read template file %s: %w", entry.Name(), err)
		}

		var tmpl PromptTemplate
		if err := yaml.Unmarshal(data, &tmpl); err != nil {
			return fmt.Errorf("failed to parse template file %s: %w", entry.Name(), err)
		}

		name := strings.TrimSuffix(entry.Name(), ".yaml")
		m.prompts[name] = make(map[string]string)

		for variant, variantPrompt := range tmpl.Variants {
			var fullPrompt strings.Builder
			if tmpl.BasePrompt != "" {
				fullPrompt.WriteString(tmpl.BasePrompt)
				fullPrompt.WriteString("\n\n")
			}
			fullPrompt.WriteString(variantPrompt)

			m.prompts[name][variant] = fullPrompt.String()
		}
	}

	return nil
}
