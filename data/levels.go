package data

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidLevel is returned when a level fails validation
var ErrInvalidLevel = errors.New("invalid level")

// MinLevelSize is the smallest playable grid
const MinLevelSize = 2

// Point is a grid tile in a level file
type Point struct {
	I int `yaml:"i"`
	J int `yaml:"j"`
}

// Placement puts a die from a template on a tile
type Placement struct {
	Template string `yaml:"template"`
	Name     string `yaml:"name,omitempty"`
	I        int    `yaml:"i"`
	J        int    `yaml:"j"`
	// Overrides the template's patrol heading
	Patrol *PatrolTemplate `yaml:"patrol,omitempty"`
}

// Tile returns the placement tile
func (p Placement) Tile() Point {
	return Point{I: p.I, J: p.J}
}

// Level describes one board
type Level struct {
	Name string `yaml:"name"`
	Size int    `yaml:"size"`
	// Seed and Obstacles control the random interior barriers
	Seed      int64       `yaml:"seed"`
	Obstacles int         `yaml:"obstacles"`
	Player    Placement   `yaml:"player"`
	Enemies   []Placement `yaml:"enemies"`
	Barriers  []Point     `yaml:"barriers"`
	// Templates defined next to the level override loaded ones
	Templates []DieTemplate `yaml:"templates,omitempty"`
}

// ParseLevel decodes and validates a level. Unknown keys are errors.
func ParseLevel(raw []byte) (*Level, error) {
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)

	var level Level
	if err := dec.Decode(&level); err != nil {
		return nil, fmt.Errorf("decode level: %w", err)
	}
	if err := level.Validate(); err != nil {
		return nil, err
	}
	return &level, nil
}

// LoadLevel reads a level file
func LoadLevel(path string) (*Level, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	level, err := ParseLevel(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return level, nil
}

// InBounds reports whether a tile is on the board
func (l *Level) InBounds(p Point) bool {
	return p.I >= 0 && p.J >= 0 && p.I < l.Size && p.J < l.Size
}

// Validate checks sizes, bounds and overlaps
func (l *Level) Validate() error {
	if l.Size < MinLevelSize {
		return fmt.Errorf("%w: size %d is below %d", ErrInvalidLevel, l.Size, MinLevelSize)
	}
	if l.Player.Template == "" {
		return fmt.Errorf("%w: player has no template", ErrInvalidLevel)
	}
	if l.Obstacles < 0 {
		return fmt.Errorf("%w: negative obstacle count", ErrInvalidLevel)
	}

	taken := make(map[Point]string)
	claim := func(p Point, what string) error {
		if !l.InBounds(p) {
			return fmt.Errorf("%w: %s at (%d,%d) is off the %dx%d board", ErrInvalidLevel, what, p.I, p.J, l.Size, l.Size)
		}
		if other, ok := taken[p]; ok {
			return fmt.Errorf("%w: %s at (%d,%d) overlaps %s", ErrInvalidLevel, what, p.I, p.J, other)
		}
		taken[p] = what
		return nil
	}

	if err := claim(l.Player.Tile(), "player"); err != nil {
		return err
	}
	for idx, enemy := range l.Enemies {
		if enemy.Template == "" {
			return fmt.Errorf("%w: enemy %d has no template", ErrInvalidLevel, idx)
		}
		if enemy.Patrol != nil && !enemy.Patrol.UnitStep() {
			return fmt.Errorf("%w: enemy %d patrol must be a single step along one axis", ErrInvalidLevel, idx)
		}
		if err := claim(enemy.Tile(), fmt.Sprintf("enemy %d", idx)); err != nil {
			return err
		}
	}
	for idx, b := range l.Barriers {
		if err := claim(b, fmt.Sprintf("barrier %d", idx)); err != nil {
			return err
		}
	}

	free := l.Size*l.Size - len(taken)
	if l.Obstacles > free {
		return fmt.Errorf("%w: %d obstacles do not fit on %d free tiles", ErrInvalidLevel, l.Obstacles, free)
	}
	for i := range l.Templates {
		if err := l.Templates[i].Validate(); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidLevel, err)
		}
	}
	return nil
}

// Occupied returns every tile the level places something on
func (l *Level) Occupied() map[Point]bool {
	out := map[Point]bool{l.Player.Tile(): true}
	for _, e := range l.Enemies {
		out[e.Tile()] = true
	}
	for _, b := range l.Barriers {
		out[b] = true
	}
	return out
}
