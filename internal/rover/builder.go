package rover

// Builder accumulates command bindings and sensors, then constructs a
// rover. The last binding for a token wins. Build copies the accumulated
// collections, so mutating the builder afterwards never reaches a rover it
// already produced.
type Builder struct {
	commands map[rune]Operation
	sensors  []Sensor
}

func NewBuilder() *Builder {
	return &Builder{commands: make(map[rune]Operation)}
}

// ProgramCommand binds a command character to an operation.
func (b *Builder) ProgramCommand(key rune, op Operation) *Builder {
	b.commands[key] = op
	return b
}

// AddSensor appends a safety check consulted before every position change.
func (b *Builder) AddSensor(s Sensor) *Builder {
	b.sensors = append(b.sensors, s)
	return b
}

// Build constructs a rover bound to the accumulated configuration. The
// rover is not landed; Execute fails until Land is called.
func (b *Builder) Build() *Rover {
	commands := make(map[rune]Operation, len(b.commands))
	for key, op := range b.commands {
		commands[key] = op
	}
	return &Rover{
		commands: commands,
		sensors:  append([]Sensor(nil), b.sensors...),
	}
}
