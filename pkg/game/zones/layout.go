package zones

import (
	_ "embed"
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"riftrewind/pkg/engine/geom"
)

//go:embed layout.yaml
var defaultLayout []byte

var zoneIDPattern = regexp.MustCompile(`^[a-z_]{2,50}$`)

// Placement positions one zone on the map in fractions of the map size.
type Placement struct {
	ID    string  `yaml:"id"`
	Label string  `yaml:"label"`
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	W     float64 `yaml:"w"`
	H     float64 `yaml:"h"`
}

// Layout is the ordered list of zone placements.
type Layout struct {
	Zones []Placement `yaml:"zones"`
}

// DefaultLayout returns the built-in layout.
func DefaultLayout() *Layout {
	l, err := ParseLayout(defaultLayout)
	if err != nil {
		panic(fmt.Sprintf("built-in zone layout: %v", err))
	}
	return l
}

// LoadLayout reads a layout file, or returns the built-in layout if path is
// empty.
func LoadLayout(path string) (*Layout, error) {
	if path == "" {
		return DefaultLayout(), nil
	}
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read zone layout: %w", err)
	}
	return ParseLayout(buf)
}

// ParseLayout decodes and validates a YAML layout.
func ParseLayout(buf []byte) (*Layout, error) {
	var l Layout
	if err := yaml.Unmarshal(buf, &l); err != nil {
		return nil, fmt.Errorf("parse zone layout: %w", err)
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return &l, nil
}

// Validate checks ids are unique and well formed and every rectangle lies
// inside the map.
func (l *Layout) Validate() error {
	if len(l.Zones) == 0 {
		return fmt.Errorf("zone layout is empty")
	}
	seen := make(map[string]bool, len(l.Zones))
	for i, z := range l.Zones {
		if !zoneIDPattern.MatchString(z.ID) {
			return fmt.Errorf("zone %d: invalid id %q", i, z.ID)
		}
		if seen[z.ID] {
			return fmt.Errorf("zone %q listed twice", z.ID)
		}
		seen[z.ID] = true
		if z.W <= 0 || z.H <= 0 {
			return fmt.Errorf("zone %q: size must be positive", z.ID)
		}
		if z.X < 0 || z.Y < 0 || z.X+z.W > 1 || z.Y+z.H > 1 {
			return fmt.Errorf("zone %q: rectangle must lie within the map", z.ID)
		}
	}
	return nil
}

// Resolve converts a placement to pixels for a map of the given size.
func (p Placement) Resolve(size geom.Size) geom.Rect {
	return geom.Rect{
		X: p.X * size.Width,
		Y: p.Y * size.Height,
		W: p.W * size.Width,
		H: p.H * size.Height,
	}
}
