package rocket

import (
	"errors"
	"fmt"
)

// ErrMissingRef is returned by New when a required engine handle is nil.
var ErrMissingRef = errors.New("rocket: missing engine reference")

// Clips names the audio cues played by the controller.
type Clips struct {
	Thrust  Clip
	Death   Clip
	Success Clip
}

// Particles holds the three effect emitters attached to the rocket.
type Particles struct {
	Engine  ParticleEmitter
	Success ParticleEmitter
	Death   ParticleEmitter
}

// Config is fixed for the lifetime of a controller.
type Config struct {
	// RotationRate is in degrees per second.
	RotationRate float64
	// ThrustMagnitude is scaled by the frame duration before it is applied.
	ThrustMagnitude float64
	// LevelLoadDelay is the pause, in seconds, between a success or death and
	// the scene change.
	LevelLoadDelay float64

	Clips     Clips
	Particles Particles

	// DebugKeys enables the skip-level and toggle-collisions inputs.
	DebugKeys bool
}

// Refs are non-owning handles to host objects, bound once in New.
type Refs struct {
	Body      RigidBody
	Transform Transform
	Audio     AudioSource
	Input     Input
	Clock     Clock
	Scenes    SceneManager
	Timer     Timer
}

func (r Refs) validate() error {
	missing := func(name string) error {
		return fmt.Errorf("%w: %s", ErrMissingRef, name)
	}
	switch {
	case r.Body == nil:
		return missing("body")
	case r.Transform == nil:
		return missing("transform")
	case r.Audio == nil:
		return missing("audio")
	case r.Input == nil:
		return missing("input")
	case r.Clock == nil:
		return missing("clock")
	case r.Scenes == nil:
		return missing("scenes")
	case r.Timer == nil:
		return missing("timer")
	}
	return nil
}

func (p Particles) validate() error {
	switch {
	case p.Engine == nil:
		return fmt.Errorf("%w: engine particles", ErrMissingRef)
	case p.Success == nil:
		return fmt.Errorf("%w: success particles", ErrMissingRef)
	case p.Death == nil:
		return fmt.Errorf("%w: death particles", ErrMissingRef)
	}
	return nil
}
