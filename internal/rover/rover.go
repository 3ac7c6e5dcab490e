// Package rover simulates a single agent on an unbounded integer grid. A
// rover executes strings of single-character commands bound to operations
// (move, rotate, composite), each of which may be vetoed by the sensors it
// was built with.
package rover

import (
	"errors"
	"fmt"
)

// ErrNotLanded is returned by Execute when the rover has never landed.
var ErrNotLanded = errors.New("rover not landed")

// Rover owns the current state, the sensor list and the command table. Both
// lists are fixed at construction; only the state changes over the rover's
// lifetime, and it changes by replacement.
type Rover struct {
	state    State
	landed   bool
	sensors  []Sensor
	commands map[rune]Operation
}

// Land puts the rover at the given cell with a fresh, unstopped state. The
// landed flag is sticky; re-landing just resets position, heading and the
// stop flag.
func (r *Rover) Land(x, y int, dir Direction) {
	r.landed = true
	r.state = State{X: x, Y: y, Dir: dir}
}

// Execute dispatches each command character in order. It fails with
// ErrNotLanded before touching any token if Land was never called. The stop
// flag from a previous batch is cleared on entry. An unbound character sets
// the stop flag and abandons the rest of the batch; that is an in-band
// signal, not an error.
//
// The dispatch loop itself does not re-check the stop flag between tokens.
// A vetoed move followed by another top-level move still attempts the
// second move; only Compose short-circuits on a raised flag.
func (r *Rover) Execute(commands string) error {
	if !r.landed {
		return ErrNotLanded
	}
	r.state.Stopped = false

	for _, key := range commands {
		op, ok := r.commands[key]
		if !ok {
			r.state.Stopped = true
			break
		}
		r.state = op.Apply(r.state, r.sensors)
	}
	return nil
}

// State returns the current snapshot.
func (r *Rover) State() State {
	return r.state
}

// String renders "(x, y) NAME", with a " stopped" suffix when the last
// action halted. A heading outside the canonical four renders as the bare
// literal "unknown" with no position.
func (r *Rover) String() string {
	name := r.state.Dir.Name()
	if name == "unknown" {
		return name
	}
	out := fmt.Sprintf("(%d, %d) %s", r.state.X, r.state.Y, name)
	if r.state.Stopped {
		out += " stopped"
	}
	return out
}
