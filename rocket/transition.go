package rocket

type sequence int

const (
	sequenceNone sequence = iota
	sequenceSuccess
	sequenceDeath
)

type transition struct {
	next     State
	sequence sequence
}

// transitions is keyed by current state, then by the category of the other
// collider. States missing from the table ignore collisions.
var transitions = map[State]map[Category]transition{
	Alive: {
		Friendly: {next: Alive, sequence: sequenceNone},
		Finish:   {next: Transcending, sequence: sequenceSuccess},
		Hostile:  {next: Dying, sequence: sequenceDeath},
	},
}

func lookupTransition(s State, c Category) (transition, bool) {
	byCategory, ok := transitions[s]
	if !ok {
		return transition{}, false
	}
	if t, ok := byCategory[c]; ok {
		return t, true
	}
	// Categories the table does not name are treated as hostile.
	t, ok := byCategory[Hostile]
	return t, ok
}
