package rover

import (
	"errors"
	"testing"
)

func standardBuilder() *Builder {
	return NewBuilder().
		ProgramCommand('f', MoveForward()).
		ProgramCommand('b', MoveBackward()).
		ProgramCommand('l', RotateLeft()).
		ProgramCommand('r', RotateRight())
}

func TestExecuteBeforeLand(t *testing.T) {
	r := standardBuilder().Build()
	if err := r.Execute("f"); !errors.Is(err, ErrNotLanded) {
		t.Fatalf("Execute before Land returned %v, want ErrNotLanded", err)
	}
}

func TestLandResetsState(t *testing.T) {
	r := standardBuilder().Build()
	r.Land(3, -2, West)
	s := r.State()
	if s.X != 3 || s.Y != -2 || s.Dir != West || s.Stopped {
		t.Fatalf("state after landing: %+v", s)
	}
}

func TestLandedIsSticky(t *testing.T) {
	r := standardBuilder().Build()
	r.Land(0, 0, North)
	if err := r.Execute("x"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// The rover is stopped now, but ErrNotLanded must never recur.
	if err := r.Execute("f"); err != nil {
		t.Fatalf("Execute after landing returned %v", err)
	}
}

func TestRelandDiscardsPriorState(t *testing.T) {
	r := standardBuilder().Build()
	r.Land(0, 0, North)
	if err := r.Execute("x"); err != nil {
		t.Fatal(err)
	}
	r.Land(5, 5, East)
	s := r.State()
	if s.X != 5 || s.Y != 5 || s.Dir != East || s.Stopped {
		t.Fatalf("state after re-landing: %+v", s)
	}
}

func TestExecuteExample(t *testing.T) {
	r := standardBuilder().Build()
	r.Land(0, 0, North)
	if err := r.Execute("ffrff"); err != nil {
		t.Fatal(err)
	}
	s := r.State()
	if s.X != 2 || s.Y != 2 || s.Dir != East || s.Stopped {
		t.Fatalf("final state %+v, want (2, 2) EAST", s)
	}
}

func TestExecuteVetoedMove(t *testing.T) {
	r := standardBuilder().AddSensor(blockCell{x: 0, y: 2}).Build()
	r.Land(0, 0, North)
	if err := r.Execute("ff"); err != nil {
		t.Fatal(err)
	}
	s := r.State()
	if s.X != 0 || s.Y != 1 || s.Dir != North {
		t.Fatalf("final position (%d, %d) %s, want (0, 1) NORTH", s.X, s.Y, s.Dir.Name())
	}
	if !s.Stopped {
		t.Fatal("stop flag not raised on vetoed move")
	}
}

func TestUnknownCommandHaltsBatch(t *testing.T) {
	r := standardBuilder().Build()
	r.Land(0, 0, North)
	if err := r.Execute("fxf"); err != nil {
		t.Fatal(err)
	}
	s := r.State()
	if s.Y != 1 {
		t.Fatalf("moved %d cells, want exactly 1: the second f must never run", s.Y)
	}
	if !s.Stopped {
		t.Fatal("unknown command did not raise the stop flag")
	}
}

func TestExecuteClearsStopFlag(t *testing.T) {
	r := standardBuilder().Build()
	r.Land(0, 0, North)
	if err := r.Execute("x"); err != nil {
		t.Fatal(err)
	}
	if !r.State().Stopped {
		t.Fatal("setup: expected stopped state")
	}
	if err := r.Execute("f"); err != nil {
		t.Fatal(err)
	}
	s := r.State()
	if s.Stopped || s.Y != 1 {
		t.Fatalf("fresh batch after a stop gave %+v", s)
	}
}

// The dispatch loop does not re-check the stop flag between top-level
// tokens. After a vetoed move, a bare move later in the same batch still
// executes; only Compose short-circuits.
func TestDispatchDoesNotShortCircuit(t *testing.T) {
	r := standardBuilder().AddSensor(blockCell{x: 0, y: 1}).Build()
	r.Land(0, 0, North)
	if err := r.Execute("frf"); err != nil {
		t.Fatal(err)
	}
	s := r.State()
	// f vetoed at (0,1), r turns to EAST, second f walks to (1,0).
	if s.X != 1 || s.Y != 0 || s.Dir != East {
		t.Fatalf("final state %+v, want (1, 0) EAST", s)
	}
	if s.Stopped {
		t.Fatal("safe trailing move should have cleared the stop flag")
	}
}

func TestComposedCommand(t *testing.T) {
	// One token bound to a composite: move, turn, move.
	b := standardBuilder()
	b.ProgramCommand('s', Compose(MoveForward(), RotateRight(), MoveForward()))
	r := b.Build()
	r.Land(0, 0, North)
	if err := r.Execute("s"); err != nil {
		t.Fatal(err)
	}
	s := r.State()
	if s.X != 1 || s.Y != 1 || s.Dir != East {
		t.Fatalf("final state %+v, want (1, 1) EAST", s)
	}
}

func TestAllUnsafeSensor(t *testing.T) {
	r := standardBuilder().AddSensor(blockAll{}).Build()
	r.Land(4, 4, South)
	if err := r.Execute("f"); err != nil {
		t.Fatal(err)
	}
	s := r.State()
	if s.X != 4 || s.Y != 4 || !s.Stopped {
		t.Fatalf("move past an all-unsafe sensor gave %+v", s)
	}
}

func TestLastBindingWins(t *testing.T) {
	b := NewBuilder()
	b.ProgramCommand('f', RotateRight())
	b.ProgramCommand('f', MoveForward())
	r := b.Build()
	r.Land(0, 0, North)
	if err := r.Execute("f"); err != nil {
		t.Fatal(err)
	}
	s := r.State()
	if s.Y != 1 || s.Dir != North {
		t.Fatalf("rebinding ignored, state %+v", s)
	}
}

func TestBuilderDoesNotAliasBuiltRover(t *testing.T) {
	b := standardBuilder()
	r := b.Build()
	b.ProgramCommand('f', RotateRight())
	b.AddSensor(blockAll{})
	r.Land(0, 0, North)
	if err := r.Execute("f"); err != nil {
		t.Fatal(err)
	}
	s := r.State()
	if s.Y != 1 || s.Stopped {
		t.Fatalf("builder mutation leaked into built rover: %+v", s)
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		name  string
		state State
		want  string
	}{
		{"plain", State{X: 2, Y: 3, Dir: East}, "(2, 3) EAST"},
		{"stopped", State{X: 0, Y: -1, Dir: South, Stopped: true}, "(0, -1) SOUTH stopped"},
		{"unknown heading", State{X: 9, Y: 9, Dir: Direction{3, 3}, Stopped: true}, "unknown"},
	}
	for _, tt := range tests {
		r := &Rover{state: tt.state, landed: true}
		if got := r.String(); got != tt.want {
			t.Errorf("%s: String() = %q, want %q", tt.name, got, tt.want)
		}
	}
}
