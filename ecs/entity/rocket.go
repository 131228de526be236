package entity

import (
	"fmt"

	"github.com/milk9111/rocketboost/ecs"
	"github.com/milk9111/rocketboost/ecs/bind"
	"github.com/milk9111/rocketboost/ecs/component"
	"github.com/milk9111/rocketboost/prefabs"
	"github.com/milk9111/rocketboost/rocket"
	"github.com/rs/zerolog"
)

// Runtime carries the host services a rocket controller is bound to.
type Runtime struct {
	Clock      rocket.Clock
	Timer      rocket.Timer
	Scenes     rocket.SceneManager
	Players    PlayerLoader
	Debug      bool
	DebugFlags rocket.DebugFlags
	Logger     zerolog.Logger
}

// BuildRocket creates the player rocket at (x, y) from spec.
func BuildRocket(w *ecs.World, spec prefabs.RocketSpec, x, y float64, rt Runtime) (ecs.Entity, error) {
	if err := spec.Validate(); err != nil {
		return 0, fmt.Errorf("build rocket: %w", err)
	}

	audioComp, err := buildAudioComponent(spec.Audio, rt.Players)
	if err != nil {
		return 0, fmt.Errorf("build rocket: %w", err)
	}
	emitters := buildEmittersComponent(spec.Emitters)
	body := &component.PhysicsBody{
		Kind:       component.BodyDynamic,
		Width:      spec.Body.Width,
		Height:     spec.Body.Height,
		Mass:       spec.Body.Mass,
		Friction:   spec.Body.Friction,
		Elasticity: spec.Body.Elasticity,
	}
	input := &component.Input{}

	bodyRef := bind.NewBody(body)
	ctrl, err := rocket.New(rocket.Config{
		RotationRate:    spec.RotationRate,
		ThrustMagnitude: spec.Thrust,
		LevelLoadDelay:  spec.LevelLoadDelay,
		Clips: rocket.Clips{
			Thrust:  rocket.Clip(spec.Clips.Thrust),
			Death:   rocket.Clip(spec.Clips.Death),
			Success: rocket.Clip(spec.Clips.Success),
		},
		Particles: rocket.Particles{
			Engine:  bind.NewEmitter(emitters, spec.Particles.Engine),
			Success: bind.NewEmitter(emitters, spec.Particles.Success),
			Death:   bind.NewEmitter(emitters, spec.Particles.Death),
		},
		DebugKeys: rt.Debug,
	}, rocket.Refs{
		Body:      bodyRef,
		Transform: bodyRef,
		Audio:     bind.NewAudio(audioComp),
		Input:     bind.NewInput(input),
		Clock:     rt.Clock,
		Scenes:    rt.Scenes,
		Timer:     rt.Timer,
	},
		rocket.WithLogger(rt.Logger.With().Str("entity", spec.Name).Logger()),
		rocket.WithDebugFlags(rt.DebugFlags),
	)
	if err != nil {
		closePlayers(audioComp.Players)
		return 0, fmt.Errorf("build rocket: %w", err)
	}

	e := ecs.CreateEntity(w)
	for _, add := range []func() error{
		func() error {
			return ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y})
		},
		func() error { return ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), body) },
		func() error { return ecs.Add(w, e, component.InputComponent.Kind(), input) },
		func() error { return ecs.Add(w, e, component.AudioComponent.Kind(), audioComp) },
		func() error { return ecs.Add(w, e, component.EmittersComponent.Kind(), emitters) },
		func() error {
			return ecs.Add(w, e, component.BoxComponent.Kind(), &component.Box{Width: spec.Body.Width, Height: spec.Body.Height, Color: spec.Color.RGBA})
		},
		func() error {
			return ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: spec.RenderLayer.Index})
		},
		func() error {
			return ecs.Add(w, e, component.RocketComponent.Kind(), &component.Rocket{Controller: ctrl})
		},
	} {
		if err := add(); err != nil {
			closePlayers(audioComp.Players)
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("build rocket: %w", err)
		}
	}
	return e, nil
}
