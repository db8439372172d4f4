package svograde

// Command is one of the four primitive adjustment commands an input
// collaborator can issue against a Store. The mapping from raw key or
// slider events to commands belongs to the collaborator; the store never
// sees raw events.
type Command int

const (
	// CmdIncrement moves the active setting one step up.
	CmdIncrement Command = iota
	// CmdDecrement moves the active setting one step down.
	CmdDecrement
	// CmdReset restores every setting to its default.
	CmdReset
	// CmdCycleActive advances the active setting to the next name.
	CmdCycleActive
)

// Apply executes one command against the store and returns the setting it
// targeted, which is the active setting for every command.
func Apply(s *Store, cmd Command) (Setting, error) {
	switch cmd {
	case CmdIncrement:
		_, err := s.Adjust(s.Active(), +1)
		return s.Active(), err
	case CmdDecrement:
		_, err := s.Adjust(s.Active(), -1)
		return s.Active(), err
	case CmdReset:
		s.Reset()
		return s.Active(), nil
	case CmdCycleActive:
		return s.CycleActive(), nil
	default:
		return s.Active(), nil
	}
}

// KeyCommand maps the original interactive key bindings to commands:
// '+' increment, '-' decrement, 's' cycle, 'r' reset. The second return is
// false for keys with no grading meaning.
func KeyCommand(r rune) (Command, bool) {
	switch r {
	case '+':
		return CmdIncrement, true
	case '-':
		return CmdDecrement, true
	case 's':
		return CmdCycleActive, true
	case 'r':
		return CmdReset, true
	default:
		return 0, false
	}
}
