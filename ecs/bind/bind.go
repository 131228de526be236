// Package bind exposes ECS components through the interfaces the rocket
// controller consumes. Adapters hold pointers into the world's component
// stores and never own the underlying engine objects.
package bind

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/rocketboost/ecs/component"
	"github.com/milk9111/rocketboost/rocket"
)

// Body adapts a Chipmunk body to rocket.RigidBody and rocket.Transform. The
// cp.Body is resolved lazily because the physics system creates it after the
// entity is built.
type Body struct {
	pb          *component.PhysicsBody
	frozen      bool
	savedMoment float64
}

func NewBody(pb *component.PhysicsBody) *Body {
	return &Body{pb: pb}
}

func (b *Body) body() *cp.Body {
	if b == nil || b.pb == nil {
		return nil
	}
	return b.pb.Body
}

// AddRelativeForce applies force in body-local coordinates at the centre of
// gravity. Chipmunk clears accumulated forces after every step.
func (b *Body) AddRelativeForce(force cp.Vector) {
	if body := b.body(); body != nil {
		body.ApplyForceAtLocalPoint(force, cp.Vector{})
	}
}

// SetFreezeRotation stops the solver from rotating the body by giving it an
// infinite moment of inertia. Unfreezing restores the previous moment.
func (b *Body) SetFreezeRotation(frozen bool) {
	if b.frozen == frozen {
		return
	}
	b.frozen = frozen
	body := b.body()
	if body == nil {
		return
	}
	if frozen {
		b.savedMoment = body.Moment()
		body.SetMoment(math.Inf(1))
		body.SetAngularVelocity(0)
		return
	}
	body.SetMoment(b.savedMoment)
}

func (b *Body) FreezeRotation() bool {
	return b.frozen
}

// Rotate turns the body counter-clockwise on screen. Screen Y points down, so
// that is a negative change of the Chipmunk angle.
func (b *Body) Rotate(degrees float64) {
	if body := b.body(); body != nil {
		body.SetAngle(body.Angle() - degrees*math.Pi/180)
	}
}

// Audio adapts component.Audio to rocket.AudioSource. Calls only raise
// requests; the audio system applies them at the end of the frame.
type Audio struct {
	a *component.Audio
}

func NewAudio(a *component.Audio) *Audio {
	return &Audio{a: a}
}

func (s *Audio) PlayOneShot(clip rocket.Clip) {
	i := s.a.Index(string(clip))
	if i < 0 {
		return
	}
	s.a.Play[i] = true
	s.a.Stop[i] = false
}

func (s *Audio) Stop() {
	if s.a == nil {
		return
	}
	for i := range s.a.Names {
		s.a.Play[i] = false
		s.a.Stop[i] = true
	}
}

// IsPlaying is true while any clip is audible or waiting to start. A clip
// with a pending stop request is treated as silent.
func (s *Audio) IsPlaying() bool {
	if s.a == nil {
		return false
	}
	for i := range s.a.Names {
		if s.a.Play[i] {
			return true
		}
		if p := s.a.Players[i]; p != nil && !s.a.Stop[i] && p.IsPlaying() {
			return true
		}
	}
	return false
}

// Emitter adapts one named slot of component.Emitters to
// rocket.ParticleEmitter. A missing name yields an emitter that does nothing.
type Emitter struct {
	e *component.Emitters
	i int
}

func NewEmitter(e *component.Emitters, name string) *Emitter {
	return &Emitter{e: e, i: e.Index(name)}
}

func (em *Emitter) Play() {
	if em.i < 0 {
		return
	}
	if !em.e.Playing[em.i] {
		em.e.Frames[em.i] = 0
	}
	em.e.Playing[em.i] = true
}

func (em *Emitter) Stop() {
	if em.i < 0 {
		return
	}
	em.e.Playing[em.i] = false
}

// Input adapts component.Input to rocket.Input.
type Input struct {
	in *component.Input
}

func NewInput(in *component.Input) *Input {
	return &Input{in: in}
}

func (i *Input) Held(a rocket.Action) bool {
	switch a {
	case rocket.ActionThrust:
		return i.in.Thrust
	case rocket.ActionRotateLeft:
		return i.in.RotateLeft
	case rocket.ActionRotateRight:
		return i.in.RotateRight
	default:
		return false
	}
}

func (i *Input) PressedThisFrame(a rocket.Action) bool {
	switch a {
	case rocket.ActionSkipLevel:
		return i.in.SkipLevelPressed
	case rocket.ActionToggleCollisions:
		return i.in.ToggleCollisionsPressed
	default:
		return false
	}
}
