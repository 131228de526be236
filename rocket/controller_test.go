package rocket

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newController(t *testing.T, r *rig, debug bool) *Controller {
	t.Helper()
	c, err := New(r.config(debug), r.refs())
	require.NoError(t, err)
	return c
}

func TestNewRejectsMissingRefs(t *testing.T) {
	cases := []struct {
		name  string
		strip func(*Refs)
	}{
		{"body", func(r *Refs) { r.Body = nil }},
		{"transform", func(r *Refs) { r.Transform = nil }},
		{"audio", func(r *Refs) { r.Audio = nil }},
		{"input", func(r *Refs) { r.Input = nil }},
		{"clock", func(r *Refs) { r.Clock = nil }},
		{"scenes", func(r *Refs) { r.Scenes = nil }},
		{"timer", func(r *Refs) { r.Timer = nil }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newRig()
			refs := r.refs()
			tc.strip(&refs)
			_, err := New(r.config(false), refs)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMissingRef))
			assert.Contains(t, err.Error(), tc.name)
		})
	}

	t.Run("particles", func(t *testing.T) {
		r := newRig()
		cfg := r.config(false)
		cfg.Particles.Death = nil
		_, err := New(cfg, r.refs())
		assert.ErrorIs(t, err, ErrMissingRef)
	})
}

func TestThrustScenario(t *testing.T) {
	r := newRig()
	c := newController(t, r, false)
	r.input.held[ActionThrust] = true

	c.Update()

	require.Len(t, r.body.forces, 1)
	f := r.body.forces[0]
	assert.InDelta(t, 0.0, f.X, 1e-9)
	assert.InDelta(t, -0.4, f.Y, 1e-9)
	assert.InDelta(t, 0.4, f.Length(), 1e-9)
	assert.True(t, r.engine.playing)
	assert.Equal(t, []Clip{"thrust"}, r.audio.shots)
}

func TestThrustAudioDoesNotLayer(t *testing.T) {
	r := newRig()
	c := newController(t, r, false)
	r.input.held[ActionThrust] = true

	c.Update()
	c.Update()

	assert.Len(t, r.body.forces, 2)
	assert.Equal(t, 1, r.log.count("audio.oneshot(thrust)"))

	r.input.held[ActionThrust] = false
	c.Update()
	assert.False(t, r.audio.playing)
	assert.False(t, r.engine.playing)

	r.input.held[ActionThrust] = true
	c.Update()
	assert.Equal(t, 2, r.log.count("audio.oneshot(thrust)"))
}

func TestRotation(t *testing.T) {
	cases := []struct {
		name  string
		held  []Action
		angle float64
	}{
		{"left", []Action{ActionRotateLeft}, 2},
		{"right", []Action{ActionRotateRight}, -2},
		{"none", nil, 0},
		{"both_prefers_left", []Action{ActionRotateLeft, ActionRotateRight}, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newRig()
			c := newController(t, r, false)
			for _, a := range tc.held {
				r.input.held[a] = true
			}

			c.Update()

			assert.InDelta(t, tc.angle, r.transform.angle, 1e-9)
			assert.False(t, r.body.FreezeRotation(), "freeze must be released")
			for _, frozen := range r.transform.frozenA {
				assert.True(t, frozen, "rotation must happen while frozen")
			}
			if tc.angle == 0 {
				assert.Zero(t, r.body.freezeOn)
			} else {
				assert.Equal(t, 1, r.body.freezeOn)
			}
		})
	}
}

func TestThrustRespondsBeforeRotation(t *testing.T) {
	r := newRig()
	c := newController(t, r, false)
	r.input.held[ActionThrust] = true
	r.input.held[ActionRotateLeft] = true

	c.Update()

	require.GreaterOrEqual(t, len(r.log.calls), 4)
	assert.Equal(t, "body.force", r.log.calls[0])
	assert.Equal(t, []string{"body.freeze=true", "transform.rotate", "body.freeze=false"}, r.log.calls[len(r.log.calls)-3:])
}

func TestCollisionFromAlive(t *testing.T) {
	cases := []struct {
		name      string
		category  Category
		state     State
		loadsTo   int
		scheduled bool
	}{
		{"friendly", Friendly, Alive, -1, false},
		{"finish", Finish, Transcending, 2, true},
		{"hostile", Hostile, Dying, 0, true},
		{"unknown_is_hostile", Category(42), Dying, 0, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newRig()
			r.scenes.active = 1
			c := newController(t, r, false)

			c.OnCollision(tc.category)
			assert.Equal(t, tc.state, c.State())

			if !tc.scheduled {
				assert.Empty(t, r.timer.calls)
				assert.Empty(t, r.audio.shots)
				return
			}
			require.Len(t, r.timer.calls, 1)
			assert.Equal(t, 2.0, r.timer.calls[0].delay)
			assert.Empty(t, r.scenes.loads, "scene change must wait for the timer")

			r.timer.fireAll()
			assert.Equal(t, []int{tc.loadsTo}, r.scenes.loads)
		})
	}
}

func TestSuccessSequenceOrder(t *testing.T) {
	r := newRig()
	c := newController(t, r, false)

	c.OnCollision(Finish)

	assert.Equal(t, []string{"audio.stop", "success.play", "audio.oneshot(success)", "timer.after(2)"}, r.log.calls)
}

func TestDeathSequenceOrder(t *testing.T) {
	r := newRig()
	c := newController(t, r, false)

	c.OnCollision(Hostile)

	assert.Equal(t, []string{"audio.stop", "audio.oneshot(death)", "death.play", "timer.after(2)"}, r.log.calls)
}

func TestCollisionIgnoredOnceNotAlive(t *testing.T) {
	for _, first := range []Category{Finish, Hostile} {
		t.Run(first.String(), func(t *testing.T) {
			r := newRig()
			c := newController(t, r, false)
			c.OnCollision(first)
			state := c.State()
			calls := len(r.log.calls)

			for _, again := range []Category{Friendly, Finish, Hostile} {
				c.OnCollision(again)
			}

			assert.Equal(t, state, c.State())
			assert.Len(t, r.log.calls, calls)
			assert.Len(t, r.timer.calls, 1)
		})
	}
}

func TestUpdateIgnoresInputOnceNotAlive(t *testing.T) {
	r := newRig()
	c := newController(t, r, false)
	c.OnCollision(Hostile)
	r.input.held[ActionThrust] = true
	r.input.held[ActionRotateLeft] = true
	calls := len(r.log.calls)

	c.Update()

	assert.Len(t, r.log.calls, calls)
	assert.Empty(t, r.body.forces)
}

func TestLevelAdvanceWraps(t *testing.T) {
	cases := []struct {
		count, active, want int
	}{
		{count: 3, active: 0, want: 1},
		{count: 3, active: 2, want: 0},
		{count: 1, active: 0, want: 0},
		{count: 5, active: 4, want: 0},
	}
	for _, tc := range cases {
		r := newRig()
		r.scenes.count = tc.count
		r.scenes.active = tc.active
		c := newController(t, r, false)

		c.OnCollision(Finish)
		r.timer.fireAll()

		assert.Equal(t, []int{tc.want}, r.scenes.loads, "count=%d active=%d", tc.count, tc.active)
	}
}

func TestLevelAdvanceWithNoScenes(t *testing.T) {
	r := newRig()
	r.scenes.count = 0
	c := newController(t, r, true)
	r.input.pressed[ActionSkipLevel] = true

	c.Update()

	assert.Empty(t, r.scenes.loads)
}

func TestDebugKeys(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		r := newRig()
		c := newController(t, r, false)
		r.input.pressed[ActionSkipLevel] = true
		r.input.pressed[ActionToggleCollisions] = true

		c.Update()

		assert.Empty(t, r.scenes.loads)
		assert.False(t, c.CollisionsDisabled())
	})

	t.Run("skip_level", func(t *testing.T) {
		r := newRig()
		r.scenes.active = 2
		c := newController(t, r, true)
		r.input.pressed[ActionSkipLevel] = true

		c.Update()

		assert.Equal(t, []int{0}, r.scenes.loads)
		assert.Empty(t, r.timer.calls, "skip is immediate")
	})

	t.Run("toggle_once_per_press", func(t *testing.T) {
		r := newRig()
		c := newController(t, r, true)

		r.input.pressed[ActionToggleCollisions] = true
		c.Update()
		assert.True(t, c.CollisionsDisabled())

		r.input.pressed[ActionToggleCollisions] = false
		c.Update()
		assert.True(t, c.CollisionsDisabled())

		r.input.pressed[ActionToggleCollisions] = true
		c.Update()
		assert.False(t, c.CollisionsDisabled())
	})

	t.Run("disabled_collisions_are_ignored", func(t *testing.T) {
		r := newRig()
		c := newController(t, r, true)
		r.input.pressed[ActionToggleCollisions] = true
		c.Update()

		c.OnCollision(Hostile)
		c.OnCollision(Finish)

		assert.Equal(t, Alive, c.State())
		assert.Empty(t, r.timer.calls)
	})

	t.Run("debug_keys_after_thrust", func(t *testing.T) {
		r := newRig()
		c := newController(t, r, true)
		r.input.held[ActionThrust] = true
		r.input.pressed[ActionSkipLevel] = true

		c.Update()

		assert.Equal(t, []int{1}, r.scenes.loads)
		assert.Equal(t, "body.force", r.log.calls[0])
	})

	t.Run("seeded_flags", func(t *testing.T) {
		r := newRig()
		c, err := New(r.config(true), r.refs(), WithDebugFlags(DebugFlags{CollisionsDisabled: true}))
		require.NoError(t, err)
		assert.True(t, c.CollisionsDisabled())
	})
}

func TestParseCategory(t *testing.T) {
	cases := map[string]Category{
		"Friendly": Friendly,
		"friendly": Friendly,
		" Finish ": Finish,
		"":         Hostile,
		"Fuel":     Hostile,
		"obstacle": Hostile,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseCategory(in), "tag %q", in)
	}
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "alive", Alive.String())
	assert.Equal(t, "dying", Dying.String())
	assert.Equal(t, "transcending", Transcending.String())
	assert.Equal(t, "unknown", State(9).String())
}
