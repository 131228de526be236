package bind

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/rocketboost/ecs/component"
	"github.com/milk9111/rocketboost/rocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ rocket.RigidBody       = (*Body)(nil)
	_ rocket.Transform       = (*Body)(nil)
	_ rocket.AudioSource     = (*Audio)(nil)
	_ rocket.ParticleEmitter = (*Emitter)(nil)
	_ rocket.Input           = (*Input)(nil)
)

func newBody() *component.PhysicsBody {
	body := cp.NewBody(1, cp.MomentForBox(1, 10, 20))
	return &component.PhysicsBody{Body: body, Width: 10, Height: 20, Mass: 1}
}

func TestBodyFreezeRestoresMoment(t *testing.T) {
	pb := newBody()
	pb.Body.SetAngularVelocity(3)
	moment := pb.Body.Moment()
	b := NewBody(pb)

	b.SetFreezeRotation(true)
	assert.True(t, b.FreezeRotation())
	assert.True(t, math.IsInf(pb.Body.Moment(), 1))
	assert.Zero(t, pb.Body.AngularVelocity())

	b.SetFreezeRotation(true)
	b.SetFreezeRotation(false)
	assert.False(t, b.FreezeRotation())
	assert.InDelta(t, moment, pb.Body.Moment(), 1e-9)
}

func TestBodyRotateIsCounterClockwiseOnScreen(t *testing.T) {
	pb := newBody()
	b := NewBody(pb)

	b.Rotate(90)
	assert.InDelta(t, -math.Pi/2, pb.Body.Angle(), 1e-9)
	b.Rotate(-45)
	assert.InDelta(t, -math.Pi/4, pb.Body.Angle(), 1e-9)
}

func TestBodyForceIsRelative(t *testing.T) {
	pb := newBody()
	pb.Body.SetAngle(math.Pi / 2)
	b := NewBody(pb)

	b.AddRelativeForce(rocket.Up.Mult(10))
	f := pb.Body.Force()
	// body-local up (0,-1) rotated by +90deg points along +X
	assert.InDelta(t, 10, f.X, 1e-9)
	assert.InDelta(t, 0, f.Y, 1e-9)
}

func TestBodyWithoutCPBodyIsInert(t *testing.T) {
	b := NewBody(&component.PhysicsBody{})
	assert.NotPanics(t, func() {
		b.AddRelativeForce(cp.Vector{X: 1})
		b.SetFreezeRotation(true)
		b.Rotate(10)
		b.SetFreezeRotation(false)
	})
	assert.False(t, b.FreezeRotation())
}

type fakePlayer struct {
	playing bool
}

func (p *fakePlayer) Play()               { p.playing = true }
func (p *fakePlayer) Pause()              { p.playing = false }
func (p *fakePlayer) Rewind() error       { return nil }
func (p *fakePlayer) IsPlaying() bool     { return p.playing }
func (p *fakePlayer) SetVolume(_ float64) {}
func (p *fakePlayer) Close() error        { return nil }

func newAudio() (*component.Audio, []*fakePlayer) {
	players := []*fakePlayer{{}, {}}
	return &component.Audio{
		Names:   []string{"thrust", "death"},
		Players: []component.ClipPlayer{players[0], players[1]},
		Volume:  []float64{1, 1},
		Play:    make([]bool, 2),
		Stop:    make([]bool, 2),
	}, players
}

func TestAudioRequests(t *testing.T) {
	a, players := newAudio()
	s := NewAudio(a)

	assert.False(t, s.IsPlaying())
	s.PlayOneShot("thrust")
	assert.Equal(t, []bool{true, false}, a.Play)
	assert.True(t, s.IsPlaying(), "pending play counts as playing")

	s.Stop()
	assert.Equal(t, []bool{false, false}, a.Play)
	assert.Equal(t, []bool{true, true}, a.Stop)
	assert.False(t, s.IsPlaying())

	s.PlayOneShot("death")
	assert.Equal(t, []bool{true, false}, a.Stop, "a new request cancels the pending stop")

	a.Play[1] = false
	players[1].playing = true
	assert.True(t, s.IsPlaying())

	players[1].playing = false
	players[0].playing = true
	assert.False(t, s.IsPlaying(), "a player with a pending stop is silent")

	s.PlayOneShot("missing")
	assert.Equal(t, []bool{false, false}, a.Play)
}

func TestEmitter(t *testing.T) {
	e := &component.Emitters{
		Names:    []string{"engine"},
		Loop:     []bool{true},
		Duration: []int{0},
		Playing:  []bool{false},
		Frames:   []int{12},
	}
	em := NewEmitter(e, "engine")

	em.Play()
	assert.True(t, e.Playing[0])
	assert.Zero(t, e.Frames[0])

	e.Frames[0] = 5
	em.Play()
	assert.Equal(t, 5, e.Frames[0], "replaying keeps the running effect")

	em.Stop()
	assert.False(t, e.Playing[0])

	missing := NewEmitter(e, "smoke")
	require.NotPanics(t, func() {
		missing.Play()
		missing.Stop()
	})
}

func TestInput(t *testing.T) {
	in := &component.Input{Thrust: true, RotateRight: true, ToggleCollisionsPressed: true}
	i := NewInput(in)

	assert.True(t, i.Held(rocket.ActionThrust))
	assert.False(t, i.Held(rocket.ActionRotateLeft))
	assert.True(t, i.Held(rocket.ActionRotateRight))
	assert.False(t, i.Held(rocket.ActionSkipLevel), "edge actions are not held")
	assert.True(t, i.PressedThisFrame(rocket.ActionToggleCollisions))
	assert.False(t, i.PressedThisFrame(rocket.ActionSkipLevel))
	assert.False(t, i.PressedThisFrame(rocket.ActionThrust))
}
