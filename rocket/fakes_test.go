package rocket

import (
	"fmt"

	"github.com/jakecoffman/cp"
)

// callLog records engine calls in order across every fake.
type callLog struct {
	calls []string
}

func (l *callLog) add(format string, args ...any) {
	l.calls = append(l.calls, fmt.Sprintf(format, args...))
}

func (l *callLog) count(call string) int {
	n := 0
	for _, c := range l.calls {
		if c == call {
			n++
		}
	}
	return n
}

type fakeBody struct {
	log      *callLog
	forces   []cp.Vector
	frozen   bool
	freezeOn int
}

func (b *fakeBody) AddRelativeForce(force cp.Vector) {
	b.forces = append(b.forces, force)
	b.log.add("body.force")
}

func (b *fakeBody) SetFreezeRotation(frozen bool) {
	b.frozen = frozen
	if frozen {
		b.freezeOn++
	}
	b.log.add("body.freeze=%t", frozen)
}

func (b *fakeBody) FreezeRotation() bool { return b.frozen }

type fakeTransform struct {
	log     *callLog
	body    *fakeBody
	angle   float64
	frozenA []bool
}

func (t *fakeTransform) Rotate(degrees float64) {
	t.angle += degrees
	t.frozenA = append(t.frozenA, t.body.frozen)
	t.log.add("transform.rotate")
}

type fakeAudio struct {
	log     *callLog
	playing bool
	shots   []Clip
}

func (a *fakeAudio) PlayOneShot(clip Clip) {
	a.shots = append(a.shots, clip)
	a.playing = true
	a.log.add("audio.oneshot(%s)", clip)
}

func (a *fakeAudio) Stop() {
	a.playing = false
	a.log.add("audio.stop")
}

func (a *fakeAudio) IsPlaying() bool { return a.playing }

type fakeEmitter struct {
	log     *callLog
	name    string
	playing bool
}

func (e *fakeEmitter) Play() {
	e.playing = true
	e.log.add("%s.play", e.name)
}

func (e *fakeEmitter) Stop() {
	e.playing = false
	e.log.add("%s.stop", e.name)
}

type fakeClock struct {
	dt  float64
	now float64
}

func (c *fakeClock) DeltaTime() float64 { return c.dt }
func (c *fakeClock) Time() float64      { return c.now }

type fakeInput struct {
	held    map[Action]bool
	pressed map[Action]bool
}

func newFakeInput() *fakeInput {
	return &fakeInput{held: map[Action]bool{}, pressed: map[Action]bool{}}
}

func (i *fakeInput) Held(a Action) bool             { return i.held[a] }
func (i *fakeInput) PressedThisFrame(a Action) bool { return i.pressed[a] }

type fakeScenes struct {
	active int
	count  int
	loads  []int
}

func (s *fakeScenes) LoadScene(index int) {
	s.loads = append(s.loads, index)
	s.active = index
}

func (s *fakeScenes) ActiveSceneIndex() int { return s.active }
func (s *fakeScenes) SceneCount() int       { return s.count }

type scheduledCall struct {
	delay float64
	fn    func()
}

type fakeTimer struct {
	log   *callLog
	calls []scheduledCall
}

func (t *fakeTimer) CallAfter(delay float64, fn func()) {
	t.calls = append(t.calls, scheduledCall{delay: delay, fn: fn})
	t.log.add("timer.after(%g)", delay)
}

func (t *fakeTimer) fireAll() {
	calls := t.calls
	t.calls = nil
	for _, c := range calls {
		c.fn()
	}
}

type rig struct {
	log       *callLog
	body      *fakeBody
	transform *fakeTransform
	audio     *fakeAudio
	engine    *fakeEmitter
	success   *fakeEmitter
	death     *fakeEmitter
	clock     *fakeClock
	input     *fakeInput
	scenes    *fakeScenes
	timer     *fakeTimer
}

func newRig() *rig {
	log := &callLog{}
	body := &fakeBody{log: log}
	return &rig{
		log:       log,
		body:      body,
		transform: &fakeTransform{log: log, body: body},
		audio:     &fakeAudio{log: log},
		engine:    &fakeEmitter{log: log, name: "engine"},
		success:   &fakeEmitter{log: log, name: "success"},
		death:     &fakeEmitter{log: log, name: "death"},
		clock:     &fakeClock{dt: 0.02},
		input:     newFakeInput(),
		scenes:    &fakeScenes{count: 3},
		timer:     &fakeTimer{log: log},
	}
}

func (r *rig) config(debug bool) Config {
	return Config{
		RotationRate:    100,
		ThrustMagnitude: 20,
		LevelLoadDelay:  2,
		Clips:           Clips{Thrust: "thrust", Death: "death", Success: "success"},
		Particles:       Particles{Engine: r.engine, Success: r.success, Death: r.death},
		DebugKeys:       debug,
	}
}

func (r *rig) refs() Refs {
	return Refs{
		Body:      r.body,
		Transform: r.transform,
		Audio:     r.audio,
		Input:     r.input,
		Clock:     r.clock,
		Scenes:    r.scenes,
		Timer:     r.timer,
	}
}
