// Package scenario loads rover configurations from YAML and wires them
// into a built rover.
//
// Configuration precedence (highest to lowest):
//  1. Environment variables with the ROVERSIM_ prefix
//     (ROVERSIM_LANDING_X -> landing.x)
//  2. The YAML scenario file
package scenario

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"roversim/internal/rover"
	"roversim/internal/terrain"
)

const envPrefix = "ROVERSIM_"

// Scenario describes a rover configuration: command bindings, sensors and
// an optional landing site.
type Scenario struct {
	Commands map[string]string `koanf:"commands"`
	Sensors  []SensorConfig    `koanf:"sensors"`
	Landing  *Landing          `koanf:"landing"`

	// Terrain is set by Build when a terrain sensor was configured.
	Terrain *terrain.Terrain `koanf:"-"`

	baseDir string
}

// SensorConfig selects one sensor by type. Fields beyond Type apply only to
// the matching type.
type SensorConfig struct {
	Type  string  `koanf:"type"`  // bounds, obstacles or terrain
	Min   []int   `koanf:"min"`   // bounds: [minX, minY]
	Max   []int   `koanf:"max"`   // bounds: [maxX, maxY]
	Cells [][]int `koanf:"cells"` // obstacles: blocked cells
	File  string  `koanf:"file"`  // terrain: map file, relative to the scenario
}

type Landing struct {
	X         int    `koanf:"x"`
	Y         int    `koanf:"y"`
	Direction string `koanf:"direction"`
}

// Load reads a scenario file and applies environment overrides.
func Load(path string) (*Scenario, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}

	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	// ROVERSIM_LANDING_X -> landing.x
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "_", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("load env overrides: %w", err)
	}

	var sc Scenario
	if err := k.Unmarshal("", &sc); err != nil {
		return nil, fmt.Errorf("unmarshal scenario %s: %w", path, err)
	}
	sc.baseDir = filepath.Dir(path)
	return &sc, nil
}

// Build wires the scenario into a rover. The rover is landed when the
// scenario carries a landing block, unlanded otherwise.
func (s *Scenario) Build() (*rover.Rover, error) {
	b := rover.NewBuilder()

	for token, binding := range s.Commands {
		key, err := commandKey(token)
		if err != nil {
			return nil, err
		}
		op, err := parseOperation(binding)
		if err != nil {
			return nil, fmt.Errorf("command %q: %w", token, err)
		}
		b.ProgramCommand(key, op)
	}

	for i, cfg := range s.Sensors {
		sensor, err := s.buildSensor(cfg)
		if err != nil {
			return nil, fmt.Errorf("sensor %d: %w", i, err)
		}
		b.AddSensor(sensor)
	}

	r := b.Build()
	if s.Landing != nil {
		dir, err := rover.ParseDirection(s.Landing.Direction)
		if err != nil {
			return nil, fmt.Errorf("landing: %w", err)
		}
		r.Land(s.Landing.X, s.Landing.Y, dir)
	}
	return r, nil
}

func commandKey(token string) (rune, error) {
	if utf8.RuneCountInString(token) != 1 {
		return 0, fmt.Errorf("command token %q is not a single character", token)
	}
	key, _ := utf8.DecodeRuneInString(token)
	return key, nil
}

// parseOperation resolves an operation name, or a comma-separated list of
// names compiled into a composite.
func parseOperation(binding string) (rover.Operation, error) {
	names := strings.Split(binding, ",")
	if len(names) == 1 {
		return namedOperation(strings.TrimSpace(names[0]))
	}
	ops := make([]rover.Operation, 0, len(names))
	for _, name := range names {
		op, err := namedOperation(strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}
	return rover.Compose(ops...), nil
}

func namedOperation(name string) (rover.Operation, error) {
	switch name {
	case "forward":
		return rover.MoveForward(), nil
	case "backward":
		return rover.MoveBackward(), nil
	case "left":
		return rover.RotateLeft(), nil
	case "right":
		return rover.RotateRight(), nil
	}
	return nil, fmt.Errorf("unknown operation %q", name)
}

func (s *Scenario) buildSensor(cfg SensorConfig) (rover.Sensor, error) {
	switch cfg.Type {
	case "bounds":
		if len(cfg.Min) != 2 || len(cfg.Max) != 2 {
			return nil, fmt.Errorf("bounds sensor needs min and max pairs")
		}
		return terrain.Bounds(cfg.Min[0], cfg.Min[1], cfg.Max[0], cfg.Max[1]), nil
	case "obstacles":
		cells := make([][2]int, 0, len(cfg.Cells))
		for _, c := range cfg.Cells {
			if len(c) != 2 {
				return nil, fmt.Errorf("obstacle cell %v is not a pair", c)
			}
			cells = append(cells, [2]int{c[0], c[1]})
		}
		return terrain.Obstacles(cells...), nil
	case "terrain":
		if cfg.File == "" {
			return nil, fmt.Errorf("terrain sensor needs a file")
		}
		t, err := terrain.Load(filepath.Join(s.baseDir, cfg.File))
		if err != nil {
			return nil, err
		}
		s.Terrain = t
		return terrain.Hazards(t), nil
	}
	return nil, fmt.Errorf("unknown sensor type %q", cfg.Type)
}
