// Package scene defines the generation parameters for a line set and turns
// them into a populated store. A scene file describes how to generate
// polylines, not edited geometry; loading the same file always produces the
// same lines.
package scene

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Scene holds the generation parameters for a set of random polylines
type Scene struct {
	Name    string  `toml:"name"`
	Lines   int     `toml:"lines"`
	Seed    int64   `toml:"seed"`
	Points  Points  `toml:"points"`
	Bounds  Bounds  `toml:"bounds"`
	Palette Palette `toml:"palette"`
}

// Points bounds the number of points generated per line
type Points struct {
	Min int `toml:"min"`
	Max int `toml:"max"`
}

// Bounds is the cubic region lines are generated in, centered on the origin
type Bounds struct {
	Size float64 `toml:"size"`
}

// Palette controls the HSV palette base colors are drawn from
type Palette struct {
	Saturation float64 `toml:"saturation"`
	Value      float64 `toml:"value"`
}

// Default returns a scene with sensible parameters for the editor
func Default() *Scene {
	return &Scene{
		Name:    "random",
		Lines:   2000,
		Seed:    1,
		Points:  Points{Min: 2, Max: 12},
		Bounds:  Bounds{Size: 100},
		Palette: Palette{Saturation: 0.65, Value: 0.95},
	}
}

// Load reads a scene definition from a TOML file. Missing fields fall back
// to the defaults, so a scene file only needs to name what it changes.
func Load(filename string) (*Scene, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file: %w", err)
	}

	s := Default()
	if err := toml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("failed to parse scene file: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scene %q: %w", filename, err)
	}
	return s, nil
}

// Save writes the scene definition as TOML
func (s *Scene) Save(filename string) error {
	data, err := toml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode scene: %w", err)
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write scene file: %w", err)
	}
	return nil
}

// Validate checks that the parameters can produce alive lines
func (s *Scene) Validate() error {
	if s.Lines <= 0 {
		return fmt.Errorf("lines must be positive, got %d", s.Lines)
	}
	if s.Points.Min < 2 {
		return fmt.Errorf("points.min must be at least 2, got %d", s.Points.Min)
	}
	if s.Points.Max < s.Points.Min {
		return fmt.Errorf("points.max (%d) must not be below points.min (%d)", s.Points.Max, s.Points.Min)
	}
	if s.Bounds.Size <= 0 {
		return fmt.Errorf("bounds.size must be positive, got %v", s.Bounds.Size)
	}
	return nil
}
