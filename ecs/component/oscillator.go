package component

// Oscillator moves a kinematic body back and forth along MoveX/MoveY from its
// start position, completing one cycle every Period seconds.
type Oscillator struct {
	StartX float64
	StartY float64
	MoveX  float64
	MoveY  float64
	Period float64
	// Epoch is the clock time the oscillation started.
	Epoch float64
}

var OscillatorComponent = NewComponent[Oscillator]()
