package data

import (
	"embed"
	"fmt"
)

//go:embed assets/*.yaml
var assetsFS embed.FS

const (
	defaultTemplatesFile = "assets/dice.yaml"
	defaultLevelFile     = "assets/level.yaml"
)

// DefaultTemplates returns the built-in die templates
func DefaultTemplates() (*TemplateManager, error) {
	raw, err := assetsFS.ReadFile(defaultTemplatesFile)
	if err != nil {
		return nil, fmt.Errorf("read embedded templates: %w", err)
	}
	m := NewTemplateManager()
	if err := m.LoadTemplates(raw); err != nil {
		return nil, fmt.Errorf("embedded templates: %w", err)
	}
	return m, nil
}

// DefaultLevel returns the built-in level
func DefaultLevel() (*Level, error) {
	raw, err := assetsFS.ReadFile(defaultLevelFile)
	if err != nil {
		return nil, fmt.Errorf("read embedded level: %w", err)
	}
	level, err := ParseLevel(raw)
	if err != nil {
		return nil, fmt.Errorf("embedded level: %w", err)
	}
	return level, nil
}
