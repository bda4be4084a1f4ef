package data

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"dicewalk/components"
)

var (
	// ErrUnknownTemplate is returned when a die template id is not loaded
	ErrUnknownTemplate = errors.New("unknown die template")
	// ErrInvalidTemplate is returned when a template fails validation
	ErrInvalidTemplate = errors.New("invalid die template")
)

// AllFacesKey binds attacks to every face of a die
const AllFacesKey = "*"

// HexColor is a "#rrggbb" colour in YAML
type HexColor struct {
	color.RGBA
}

// UnmarshalYAML parses "#rrggbb" or "#rrggbbaa"
func (c *HexColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}
	parsed, err := ParseHexColor(value.Value)
	if err != nil {
		return err
	}
	c.RGBA = parsed
	return nil
}

// MarshalYAML writes the colour back as "#rrggbb"
func (c HexColor) MarshalYAML() (any, error) {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B), nil
}

// ParseHexColor converts a hex string to a color.RGBA
func ParseHexColor(hex string) (color.RGBA, error) {
	s := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(s) != 6 && len(s) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid color format: %q", hex)
	}

	var rgba [4]uint8
	rgba[3] = 0xff
	for i := 0; i < len(s)/2; i++ {
		v, err := strconv.ParseUint(s[i*2:i*2+2], 16, 8)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("invalid color format: %q: %w", hex, err)
		}
		rgba[i] = uint8(v)
	}
	return color.RGBA{R: rgba[0], G: rgba[1], B: rgba[2], A: rgba[3]}, nil
}

// FaceTemplate is one physical side of a die
type FaceTemplate struct {
	ID    string   `yaml:"id"`
	Color HexColor `yaml:"color"`
}

// AttackTemplate is one damage pattern
type AttackTemplate struct {
	Target   string `yaml:"target"`
	Strength int    `yaml:"strength"`
}

// PatrolTemplate is a starting patrol heading
type PatrolTemplate struct {
	DI int `yaml:"di"`
	DJ int `yaml:"dj"`
}

// UnitStep reports whether the heading is one of the four axis-aligned
// single-tile steps
func (p PatrolTemplate) UnitStep() bool {
	return abs(p.DI)+abs(p.DJ) == 1
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// DieTemplate describes a kind of die
type DieTemplate struct {
	ID    string  `yaml:"id"`
	Name  string  `yaml:"name"`
	HP    int     `yaml:"hp"`
	Scale float64 `yaml:"scale"`
	// AI dice patrol on their own
	AI     bool            `yaml:"ai"`
	Patrol *PatrolTemplate `yaml:"patrol,omitempty"`
	// Keyed by face position: top, bottom, north, south, east, west
	Faces map[string]FaceTemplate `yaml:"faces"`
	// Keyed by face id; "*" applies to every face
	Attacks map[string][]AttackTemplate `yaml:"attacks"`
}

// Validate checks that the template describes a complete die
func (t *DieTemplate) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidTemplate)
	}
	if t.HP <= 0 {
		return fmt.Errorf("%w: %s: hp must be positive", ErrInvalidTemplate, t.ID)
	}
	if t.Scale < 0 || t.Scale > 1 {
		return fmt.Errorf("%w: %s: scale must be within [0, 1]", ErrInvalidTemplate, t.ID)
	}

	ids := make(map[string]bool, len(t.Faces))
	for name, face := range t.Faces {
		if _, ok := components.ParseFace(name); !ok {
			return fmt.Errorf("%w: %s: unknown face %q", ErrInvalidTemplate, t.ID, name)
		}
		if face.ID == "" {
			return fmt.Errorf("%w: %s: face %s has no id", ErrInvalidTemplate, t.ID, name)
		}
		if ids[face.ID] {
			return fmt.Errorf("%w: %s: face id %q used twice", ErrInvalidTemplate, t.ID, face.ID)
		}
		ids[face.ID] = true
	}
	if len(ids) != len(components.AllFaces) {
		return fmt.Errorf("%w: %s: a die needs exactly %d faces, got %d", ErrInvalidTemplate, t.ID, len(components.AllFaces), len(ids))
	}

	for key, attacks := range t.Attacks {
		if key != AllFacesKey && !ids[key] {
			return fmt.Errorf("%w: %s: attacks bound to unknown face id %q", ErrInvalidTemplate, t.ID, key)
		}
		for _, a := range attacks {
			switch a.Target {
			case components.TargetForwardSingle, components.TargetLeftSingle, components.TargetRightSingle:
			default:
				return fmt.Errorf("%w: %s: unknown attack target %q", ErrInvalidTemplate, t.ID, a.Target)
			}
			if a.Strength < 0 {
				return fmt.Errorf("%w: %s: negative attack strength", ErrInvalidTemplate, t.ID)
			}
		}
	}

	if t.Patrol != nil && !t.Patrol.UnitStep() {
		return fmt.Errorf("%w: %s: patrol must be a single step along one axis", ErrInvalidTemplate, t.ID)
	}
	return nil
}

// Sides returns the die faces in position order. Call Validate first.
func (t *DieTemplate) Sides() components.Sides {
	var sides components.Sides
	for name, face := range t.Faces {
		f, ok := components.ParseFace(name)
		if !ok {
			continue
		}
		sides[f] = components.DieSide{FaceID: face.ID, Color: face.Color.RGBA}
	}
	return sides
}

// AttackSet expands the attack table into a component. Attacks listed under
// "*" come before the face-specific ones.
func (t *DieTemplate) AttackSet() *components.AttackSetComponent {
	set := components.NewAttackSetComponent()
	for _, side := range t.Sides() {
		for _, a := range t.Attacks[AllFacesKey] {
			set.Bind(side.FaceID, components.AttackEffect{TargetType: a.Target, Strength: a.Strength})
		}
		for _, a := range t.Attacks[side.FaceID] {
			set.Bind(side.FaceID, components.AttackEffect{TargetType: a.Target, Strength: a.Strength})
		}
	}
	return set
}

// TemplateManager manages all die templates
type TemplateManager struct {
	Templates map[string]*DieTemplate
}

// NewTemplateManager creates a new template manager
func NewTemplateManager() *TemplateManager {
	return &TemplateManager{
		Templates: make(map[string]*DieTemplate),
	}
}

type templateFile struct {
	Templates []DieTemplate `yaml:"templates"`
}

// LoadTemplates parses a YAML document with a "templates" list. Templates
// replace earlier ones with the same id.
func (m *TemplateManager) LoadTemplates(raw []byte) error {
	var file templateFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return fmt.Errorf("decode templates: %w", err)
	}
	return m.Add(file.Templates...)
}

// Add validates and registers templates
func (m *TemplateManager) Add(templates ...DieTemplate) error {
	for i := range templates {
		template := templates[i]
		if err := template.Validate(); err != nil {
			return err
		}
		m.Templates[template.ID] = &template
	}
	return nil
}

// LoadTemplateFromFile loads templates from one YAML file
func (m *TemplateManager) LoadTemplateFromFile(filePath string) error {
	raw, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("read templates: %w", err)
	}
	if err := m.LoadTemplates(raw); err != nil {
		return fmt.Errorf("%s: %w", filePath, err)
	}
	return nil
}

// LoadTemplatesFromDirectory loads every YAML file of a directory
func (m *TemplateManager) LoadTemplatesFromDirectory(dirPath string) error {
	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return fmt.Errorf("failed to read template directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !isYAMLFile(entry.Name()) {
			continue
		}
		if err := m.LoadTemplateFromFile(filepath.Join(dirPath, entry.Name())); err != nil {
			return err
		}
	}
	return nil
}

// GetTemplate returns a template by ID
func (m *TemplateManager) GetTemplate(id string) (*DieTemplate, bool) {
	template, ok := m.Templates[id]
	return template, ok
}

// Template returns a template by ID or ErrUnknownTemplate
func (m *TemplateManager) Template(id string) (*DieTemplate, error) {
	template, ok := m.Templates[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTemplate, id)
	}
	return template, nil
}

// IDs returns the loaded template ids in sorted order
func (m *TemplateManager) IDs() []string {
	ids := make([]string, 0, len(m.Templates))
	for id := range m.Templates {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func isYAMLFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
