package terrain

import "roversim/internal/rover"

// Hazards adapts a terrain's blocked cells into a rover sensor. Cells off
// the grid are not its concern; pair it with Bounds to fence the rover in.
func Hazards(t *Terrain) rover.Sensor {
	return hazardSensor{t: t}
}

type hazardSensor struct {
	t *Terrain
}

func (h hazardSensor) IsSafe(x, y int) bool {
	if !h.t.InBounds(x, y) {
		return true
	}
	return h.t.cells[y][x] == 0
}

// Bounds returns a sensor that vetoes any cell outside the given inclusive
// rectangle.
func Bounds(minX, minY, maxX, maxY int) rover.Sensor {
	return boundsSensor{minX: minX, minY: minY, maxX: maxX, maxY: maxY}
}

type boundsSensor struct {
	minX, minY, maxX, maxY int
}

func (b boundsSensor) IsSafe(x, y int) bool {
	return x >= b.minX && x <= b.maxX && y >= b.minY && y <= b.maxY
}

// Obstacles returns a sensor that vetoes the listed cells, for unbounded
// grids without a terrain file.
func Obstacles(cells ...[2]int) rover.Sensor {
	s := make(obstacleSensor, len(cells))
	for _, c := range cells {
		s[c] = struct{}{}
	}
	return s
}

type obstacleSensor map[[2]int]struct{}

func (o obstacleSensor) IsSafe(x, y int) bool {
	_, blocked := o[[2]int{x, y}]
	return !blocked
}
