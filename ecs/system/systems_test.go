package system

import (
	"image/color"
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/rocketboost/ecs"
	"github.com/milk9111/rocketboost/ecs/bind"
	"github.com/milk9111/rocketboost/ecs/component"
	"github.com/milk9111/rocketboost/rocket"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePlayer struct {
	calls   []string
	playing bool
	volume  float64
}

func (p *fakePlayer) Play()               { p.calls = append(p.calls, "play"); p.playing = true }
func (p *fakePlayer) Pause()              { p.calls = append(p.calls, "pause"); p.playing = false }
func (p *fakePlayer) Rewind() error       { p.calls = append(p.calls, "rewind"); return nil }
func (p *fakePlayer) IsPlaying() bool     { return p.playing }
func (p *fakePlayer) SetVolume(v float64) { p.volume = v }
func (p *fakePlayer) Close() error        { return nil }

func TestAudioSystemStopsBeforePlays(t *testing.T) {
	thrust := &fakePlayer{playing: true}
	death := &fakePlayer{}
	a := &component.Audio{
		Names:   []string{"thrust", "death"},
		Players: []component.ClipPlayer{thrust, death},
		Volume:  []float64{1, 0.5},
		Play:    make([]bool, 2),
		Stop:    make([]bool, 2),
	}
	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)
	require.NoError(t, ecs.Add(w, e, component.AudioComponent.Kind(), a))

	src := bind.NewAudio(a)
	src.Stop()
	src.PlayOneShot("death")

	NewAudioSystem(0.8, zerolog.Nop()).Update(w)

	assert.Equal(t, []string{"pause"}, thrust.calls)
	assert.Equal(t, []string{"rewind", "play"}, death.calls)
	assert.InDelta(t, 0.4, death.volume, 1e-9)
	assert.Equal(t, []bool{false, false}, a.Play)
	assert.Equal(t, []bool{false, false}, a.Stop)
}

func TestEmitterSystem(t *testing.T) {
	em := &component.Emitters{
		Names:    []string{"engine", "explosion"},
		Color:    make([]color.RGBA, 2),
		Loop:     []bool{true, false},
		Duration: []int{0, 3},
		Playing:  []bool{true, true},
		Frames:   make([]int, 2),
	}
	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)
	require.NoError(t, ecs.Add(w, e, component.EmittersComponent.Kind(), em))

	s := NewEmitterSystem()
	for i := 0; i < 3; i++ {
		s.Update(w)
	}

	assert.Equal(t, []bool{true, false}, em.Playing)
	assert.Equal(t, []int{3, 3}, em.Frames)

	s.Update(w)
	assert.Equal(t, []int{4, 3}, em.Frames, "stopped effects do not age")
}

type stubScenes struct{ loads []int }

func (s *stubScenes) LoadScene(i int)       { s.loads = append(s.loads, i) }
func (s *stubScenes) ActiveSceneIndex() int { return 0 }
func (s *stubScenes) SceneCount() int       { return 2 }

type stubEmitter struct{}

func (stubEmitter) Play() {}
func (stubEmitter) Stop() {}

func TestRocketCollisionSystemDispatches(t *testing.T) {
	clock := ecs.NewClock(60)
	timeline := ecs.NewTimeline(clock)
	scenes := &stubScenes{}
	pb := &component.PhysicsBody{Body: cp.NewBody(1, 1)}
	in := &component.Input{}
	a := &component.Audio{}

	ctrl, err := rocket.New(rocket.Config{
		LevelLoadDelay: 1,
		Particles:      rocket.Particles{Engine: stubEmitter{}, Success: stubEmitter{}, Death: stubEmitter{}},
	}, rocket.Refs{
		Body:      bind.NewBody(pb),
		Transform: bind.NewBody(pb),
		Audio:     bind.NewAudio(a),
		Input:     bind.NewInput(in),
		Clock:     clock,
		Scenes:    scenes,
		Timer:     timeline,
	})
	require.NoError(t, err)

	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)
	require.NoError(t, ecs.Add(w, e, component.RocketComponent.Kind(), &component.Rocket{Controller: ctrl}))

	w.Events().Push(ecs.Event{Type: ecs.EventCollision, Data: ecs.CollisionEvent{Entity: e, Category: rocket.Friendly}})
	w.Events().Push(ecs.Event{Type: ecs.EventCollision, Data: ecs.CollisionEvent{Entity: e, Category: rocket.Finish}})
	NewRocketCollisionSystem(zerolog.Nop()).Update(w)

	assert.Equal(t, rocket.Transcending, ctrl.State())
	assert.Zero(t, w.Events().Len())
	assert.Equal(t, 1, timeline.Pending())

	for i := 0; i < 61; i++ {
		clock.Tick()
		timeline.Advance()
	}
	assert.Equal(t, []int{1}, scenes.loads)
}

func TestRocketSystemRunsControllers(t *testing.T) {
	clock := ecs.NewClock(60)
	pb := &component.PhysicsBody{Body: cp.NewBody(1, 1)}
	in := &component.Input{RotateLeft: true}

	body := bind.NewBody(pb)

	ctrl, err := rocket.New(rocket.Config{
		RotationRate: 90,
		Particles:    rocket.Particles{Engine: stubEmitter{}, Success: stubEmitter{}, Death: stubEmitter{}},
	}, rocket.Refs{
		Body:      body,
		Transform: body,
		Audio:     bind.NewAudio(&component.Audio{}),
		Input:     bind.NewInput(in),
		Clock:     clock,
		Scenes:    &stubScenes{},
		Timer:     ecs.NewTimeline(clock),
	})
	require.NoError(t, err)

	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)
	require.NoError(t, ecs.Add(w, e, component.RocketComponent.Kind(), &component.Rocket{Controller: ctrl}))

	NewRocketSystem().Update(w)

	assert.InDelta(t, -1.5*math.Pi/180, pb.Body.Angle(), 1e-9)
	assert.False(t, body.FreezeRotation())
}
