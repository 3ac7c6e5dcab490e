// Package script parses and runs mission scripts: small programs that land
// a rover and feed it command batches.
package script

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
	"go.uber.org/zap"

	"roversim/internal/rover"
)

// A mission script is a sequence of statements:
//
//	land 0 0 NORTH
//	run "ffrff"
//	repeat 3 { run "f" }
type Program struct {
	Statements []*Statement `parser:"@@*"`
}

type Statement struct {
	Land   *Land   `parser:"@@"`
	Run    *Run    `parser:"| @@"`
	Repeat *Repeat `parser:"| @@"`
}

type Land struct {
	X   int    `parser:"'land' @('-'? Int)"`
	Y   int    `parser:"@('-'? Int)"`
	Dir string `parser:"@Ident"`
}

type Run struct {
	Commands string `parser:"'run' @String"`
}

type Repeat struct {
	Count int      `parser:"'repeat' @Int"`
	Body  *Program `parser:"'{' @@ '}'"`
}

var parser = participle.MustBuild[Program](participle.Unquote("String"))

func Parse(src string) (*Program, error) {
	return parser.ParseString("mission", src)
}

// Exec runs the script against the rover, logging each statement outcome.
func (p *Program) Exec(r *rover.Rover, log *zap.Logger) error {
	for _, stmt := range p.Statements {
		if err := stmt.exec(r, log); err != nil {
			return err
		}
	}
	return nil
}

func (s *Statement) exec(r *rover.Rover, log *zap.Logger) error {
	switch {
	case s.Land != nil:
		dir, err := rover.ParseDirection(s.Land.Dir)
		if err != nil {
			return fmt.Errorf("land: %w", err)
		}
		r.Land(s.Land.X, s.Land.Y, dir)
		log.Info("landed",
			zap.Int("x", s.Land.X),
			zap.Int("y", s.Land.Y),
			zap.String("heading", dir.Name()))
	case s.Run != nil:
		if err := r.Execute(s.Run.Commands); err != nil {
			return fmt.Errorf("run %q: %w", s.Run.Commands, err)
		}
		st := r.State()
		log.Info("batch executed",
			zap.String("commands", s.Run.Commands),
			zap.Int("x", st.X),
			zap.Int("y", st.Y),
			zap.String("heading", st.Dir.Name()),
			zap.Bool("stopped", st.Stopped))
	case s.Repeat != nil:
		for i := 0; i < s.Repeat.Count; i++ {
			if err := s.Repeat.Body.Exec(r, log); err != nil {
				return err
			}
		}
	}
	return nil
}
