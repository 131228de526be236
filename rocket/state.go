package rocket

// State is the lifecycle state of a rocket. A rocket starts Alive and leaves
// that state at most once; Dying and Transcending are terminal until the scene
// is reloaded and a new controller is built.
type State int

const (
	Alive State = iota
	Dying
	Transcending
)

func (s State) String() string {
	switch s {
	case Alive:
		return "alive"
	case Dying:
		return "dying"
	case Transcending:
		return "transcending"
	default:
		return "unknown"
	}
}

// DebugFlags holds developer toggles. They only change while Config.DebugKeys
// is set.
type DebugFlags struct {
	CollisionsDisabled bool
}
