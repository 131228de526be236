package system

import (
	"github.com/milk9111/rocketboost/ecs"
	"github.com/milk9111/rocketboost/ecs/component"
	"github.com/rs/zerolog"
)

// RocketSystem runs every rocket controller once per tick.
type RocketSystem struct{}

func NewRocketSystem() *RocketSystem {
	return &RocketSystem{}
}

func (r *RocketSystem) Update(w *ecs.World) {
	ecs.ForEach(w, component.RocketComponent.Kind(), func(_ ecs.Entity, rc *component.Rocket) {
		if rc.Controller != nil {
			rc.Controller.Update()
		}
	})
}

// RocketCollisionSystem delivers the collision events raised by the physics
// step to the rocket controllers.
type RocketCollisionSystem struct {
	log zerolog.Logger
}

func NewRocketCollisionSystem(log zerolog.Logger) *RocketCollisionSystem {
	return &RocketCollisionSystem{log: log}
}

func (r *RocketCollisionSystem) Update(w *ecs.World) {
	for _, evt := range w.Events().Drain(ecs.EventCollision) {
		hit, ok := evt.Data.(ecs.CollisionEvent)
		if !ok {
			r.log.Warn().Msgf("rocket collision: unexpected payload %T", evt.Data)
			continue
		}
		rc, ok := ecs.Get(w, hit.Entity, component.RocketComponent.Kind())
		if !ok || rc.Controller == nil {
			continue
		}
		rc.Controller.OnCollision(hit.Category)
	}
}
