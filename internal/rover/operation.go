package rover

// Operation is a single unit of rover behaviour. Apply consumes the current
// state and the rover's sensors and produces the next state.
type Operation interface {
	Apply(s State, sensors []Sensor) State
}

// MoveForward returns an operation that advances one cell along the current
// heading, or stops in place when a sensor vetoes the target cell.
func MoveForward() Operation {
	return moveOp{sign: 1}
}

// MoveBackward returns an operation that backs up one cell against the
// current heading, with the same sensor veto behaviour as MoveForward.
func MoveBackward() Operation {
	return moveOp{sign: -1}
}

// RotateLeft returns an operation that turns the heading 90 degrees
// counter-clockwise. Rotation never consults sensors.
func RotateLeft() Operation {
	return rotateOp{clockwise: false}
}

// RotateRight returns an operation that turns the heading 90 degrees
// clockwise.
func RotateRight() Operation {
	return rotateOp{clockwise: true}
}

// Compose returns an operation that runs ops in order, aborting before any
// child once the state reports Stopped, including a flag raised before the
// composite itself started. Composites nest to any depth.
func Compose(ops ...Operation) Operation {
	return composeOp{ops: ops}
}

type moveOp struct {
	sign int // +1 forward, -1 backward
}

func (m moveOp) Apply(s State, sensors []Sensor) State {
	nx := s.X + m.sign*s.Dir.Dx
	ny := s.Y + m.sign*s.Dir.Dy
	if dangerExists(sensors, nx, ny) {
		return State{X: s.X, Y: s.Y, Dir: s.Dir, Stopped: true}
	}
	return State{X: nx, Y: ny, Dir: s.Dir}
}

type rotateOp struct {
	clockwise bool
}

func (r rotateOp) Apply(s State, _ []Sensor) State {
	d := s.Dir.Left()
	if r.clockwise {
		d = s.Dir.Right()
	}
	return State{X: s.X, Y: s.Y, Dir: d}
}

type composeOp struct {
	ops []Operation
}

func (c composeOp) Apply(s State, sensors []Sensor) State {
	for _, op := range c.ops {
		if s.Stopped {
			break
		}
		s = op.Apply(s, sensors)
	}
	return s
}
