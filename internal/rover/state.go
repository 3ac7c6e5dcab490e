package rover

// State is a snapshot of rover position, heading and stop flag. States are
// values: an operation never mutates the one it was given, it returns a
// fresh one and the rover replaces its current snapshot wholesale.
type State struct {
	X, Y    int
	Dir     Direction
	Stopped bool
}
