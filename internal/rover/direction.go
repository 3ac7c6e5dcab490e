package rover

import (
	"fmt"
	"strings"
)

// Direction is a unit vector on the grid. The four canonical headings are
// North, East, South and West; a 90 degree rotation keeps a direction
// inside that set.
type Direction struct {
	Dx, Dy int
}

var (
	North = Direction{0, 1}
	East  = Direction{1, 0}
	South = Direction{0, -1}
	West  = Direction{-1, 0}
)

// Left returns the heading after a counter-clockwise quarter turn.
func (d Direction) Left() Direction {
	return Direction{-d.Dy, d.Dx}
}

// Right returns the heading after a clockwise quarter turn.
func (d Direction) Right() Direction {
	return Direction{d.Dy, -d.Dx}
}

// Name returns NORTH, EAST, SOUTH or WEST, or "unknown" for any vector
// outside the canonical set.
func (d Direction) Name() string {
	switch d {
	case North:
		return "NORTH"
	case East:
		return "EAST"
	case South:
		return "SOUTH"
	case West:
		return "WEST"
	}
	return "unknown"
}

// ParseDirection maps a heading name (any case) to its canonical vector.
func ParseDirection(name string) (Direction, error) {
	switch strings.ToUpper(name) {
	case "NORTH":
		return North, nil
	case "EAST":
		return East, nil
	case "SOUTH":
		return South, nil
	case "WEST":
		return West, nil
	}
	return Direction{}, fmt.Errorf("unknown direction %q", name)
}
