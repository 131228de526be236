// Package rocket implements the gameplay controller for a single rocket:
// thrust and rotation input, the alive/dying/transcending lifecycle, and the
// delayed scene change that follows a crash or a landing.
//
// The controller never talks to an engine directly. Every collaborator is
// injected through Refs so the controller can run against fakes in tests and
// against the ECS host in the game.
package rocket

import (
	"fmt"

	"github.com/rs/zerolog"
)

type Option func(*Controller)

// WithLogger sets the logger used for lifecycle and debug messages.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Controller) {
		c.log = l
	}
}

// WithDebugFlags seeds the debug flags, e.g. to keep collisions disabled
// across a level change.
func WithDebugFlags(f DebugFlags) Option {
	return func(c *Controller) {
		c.debug = f
	}
}

type Controller struct {
	cfg   Config
	refs  Refs
	state State
	debug DebugFlags
	log   zerolog.Logger
}

func New(cfg Config, refs Refs, opts ...Option) (*Controller, error) {
	if err := refs.validate(); err != nil {
		return nil, err
	}
	if err := cfg.Particles.validate(); err != nil {
		return nil, err
	}

	c := &Controller{
		cfg:   cfg,
		refs:  refs,
		state: Alive,
		log:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *Controller) State() State {
	return c.state
}

func (c *Controller) CollisionsDisabled() bool {
	return c.debug.CollisionsDisabled
}

func (c *Controller) DebugFlags() DebugFlags {
	return c.debug
}

func (c *Controller) Config() Config {
	return c.cfg
}

// Update runs once per simulation tick.
func (c *Controller) Update() {
	if c.state == Alive {
		c.respondToThrustInput()
		c.respondToRotateInput()
	}
	if c.cfg.DebugKeys {
		c.respondToDebugKeys()
	}
}

// OnCollision is called by the host when the rocket body touches another
// collider of the given category.
func (c *Controller) OnCollision(other Category) {
	if c.debug.CollisionsDisabled {
		return
	}

	t, ok := lookupTransition(c.state, other)
	if !ok {
		return
	}

	switch t.sequence {
	case sequenceNone:
		c.log.Debug().Stringer("category", other).Msg("rocket: contact ignored")
	case sequenceSuccess:
		c.startSuccessSequence(t.next)
	case sequenceDeath:
		c.startDeathSequence(t.next)
	}
}

func (c *Controller) respondToThrustInput() {
	if c.refs.Input.Held(ActionThrust) {
		c.applyThrust()
		return
	}
	c.refs.Audio.Stop()
	c.cfg.Particles.Engine.Stop()
}

func (c *Controller) applyThrust() {
	force := Up.Mult(c.cfg.ThrustMagnitude * c.refs.Clock.DeltaTime())
	c.refs.Body.AddRelativeForce(force)
	if !c.refs.Audio.IsPlaying() {
		c.refs.Audio.PlayOneShot(c.cfg.Clips.Thrust)
	}
	c.cfg.Particles.Engine.Play()
}

func (c *Controller) respondToRotateInput() {
	step := c.cfg.RotationRate * c.refs.Clock.DeltaTime()
	switch {
	case c.refs.Input.Held(ActionRotateLeft):
		c.rotateManually(step)
	case c.refs.Input.Held(ActionRotateRight):
		c.rotateManually(-step)
	}
}

// rotateManually takes rotation away from the physics engine for the duration
// of the turn and hands it back afterwards.
func (c *Controller) rotateManually(degrees float64) {
	c.refs.Body.SetFreezeRotation(true)
	c.refs.Transform.Rotate(degrees)
	c.refs.Body.SetFreezeRotation(false)
}

func (c *Controller) respondToDebugKeys() {
	if c.refs.Input.PressedThisFrame(ActionSkipLevel) {
		c.log.Info().Msg("rocket: debug skip level")
		c.loadNextLevel()
	}
	if c.refs.Input.PressedThisFrame(ActionToggleCollisions) {
		c.debug.CollisionsDisabled = !c.debug.CollisionsDisabled
		c.log.Info().Bool("collisions_disabled", c.debug.CollisionsDisabled).Msg("rocket: debug toggle collisions")
	}
}

func (c *Controller) startSuccessSequence(next State) {
	c.state = next
	c.log.Info().Stringer("state", c.state).Float64("delay", c.cfg.LevelLoadDelay).Msg("rocket: level complete")
	c.refs.Audio.Stop()
	c.cfg.Particles.Success.Play()
	c.refs.Audio.PlayOneShot(c.cfg.Clips.Success)
	c.refs.Timer.CallAfter(c.cfg.LevelLoadDelay, c.loadNextLevel)
}

func (c *Controller) startDeathSequence(next State) {
	c.state = next
	c.log.Info().Stringer("state", c.state).Float64("delay", c.cfg.LevelLoadDelay).Msg("rocket: crashed")
	c.refs.Audio.Stop()
	c.refs.Audio.PlayOneShot(c.cfg.Clips.Death)
	c.cfg.Particles.Death.Play()
	c.refs.Timer.CallAfter(c.cfg.LevelLoadDelay, c.loadFirstLevel)
}

func (c *Controller) loadNextLevel() {
	count := c.refs.Scenes.SceneCount()
	if count <= 0 {
		c.log.Error().Msg("rocket: no scenes to advance to")
		return
	}
	next := (c.refs.Scenes.ActiveSceneIndex() + 1) % count
	c.refs.Scenes.LoadScene(next)
}

func (c *Controller) loadFirstLevel() {
	c.refs.Scenes.LoadScene(0)
}

func (c *Controller) String() string {
	return fmt.Sprintf("rocket(%s)", c.state)
}
