package component

// Input stores per-frame input state for an entity. Held fields are level
// triggered; Pressed fields are true only on the frame the key went down.
type Input struct {
	Thrust      bool
	RotateLeft  bool
	RotateRight bool

	SkipLevelPressed        bool
	ToggleCollisionsPressed bool
}

var InputComponent = NewComponent[Input]()
