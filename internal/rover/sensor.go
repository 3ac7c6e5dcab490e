package rover

// Sensor reports whether a target cell is safe to enter. Implementations
// must be free of side effects: the rover stops querying after the first
// unsafe report, so later sensors may never be asked.
type Sensor interface {
	IsSafe(x, y int) bool
}

// dangerExists reports whether any sensor vetoes the cell.
func dangerExists(sensors []Sensor, x, y int) bool {
	for _, s := range sensors {
		if !s.IsSafe(x, y) {
			return true
		}
	}
	return false
}
