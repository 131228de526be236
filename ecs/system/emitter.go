package system

import (
	"github.com/milk9111/rocketboost/ecs"
	"github.com/milk9111/rocketboost/ecs/component"
)

// EmitterSystem ages playing effects and stops one-shot effects once their
// duration has elapsed.
type EmitterSystem struct{}

func NewEmitterSystem() *EmitterSystem {
	return &EmitterSystem{}
}

func (s *EmitterSystem) Update(w *ecs.World) {
	ecs.ForEach(w, component.EmittersComponent.Kind(), func(_ ecs.Entity, em *component.Emitters) {
		for i := range em.Names {
			if !em.Playing[i] {
				continue
			}
			em.Frames[i]++
			if !em.Loop[i] && em.Duration[i] > 0 && em.Frames[i] >= em.Duration[i] {
				em.Playing[i] = false
			}
		}
	})
}
