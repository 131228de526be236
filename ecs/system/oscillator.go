package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/rocketboost/ecs"
	"github.com/milk9111/rocketboost/ecs/component"
)

// Oscillation returns the position at time t of a point moving from start to
// start+movement and back once per period. A period at or below the smallest
// float disables movement.
func Oscillation(start, movement cp.Vector, period, t float64) cp.Vector {
	if period <= math.SmallestNonzeroFloat64 {
		return start
	}
	cycles := t / period
	factor := math.Sin(cycles*2*math.Pi)/2 + 0.5
	return start.Add(movement.Mult(factor))
}

// OscillatorSystem drives kinematic bodies along their oscillation. It sets
// the body velocity rather than its position so the solver sees the motion.
type OscillatorSystem struct {
	clock *ecs.Clock
}

func NewOscillatorSystem(clock *ecs.Clock) *OscillatorSystem {
	return &OscillatorSystem{clock: clock}
}

func (o *OscillatorSystem) Update(w *ecs.World) {
	if o == nil || o.clock == nil {
		return
	}
	dt := o.clock.DeltaTime()
	if dt <= 0 {
		return
	}
	next := o.clock.Time() + dt

	ecs.ForEach2(w, component.OscillatorComponent.Kind(), component.PhysicsBodyComponent.Kind(), func(_ ecs.Entity, osc *component.Oscillator, bodyComp *component.PhysicsBody) {
		if bodyComp.Body == nil || bodyComp.Kind != component.BodyKinematic {
			return
		}
		target := Oscillation(
			cp.Vector{X: osc.StartX, Y: osc.StartY},
			cp.Vector{X: osc.MoveX, Y: osc.MoveY},
			osc.Period,
			next-osc.Epoch,
		)
		bodyComp.Body.SetVelocityVector(target.Sub(bodyComp.Body.Position()).Mult(1 / dt))
	})
}
