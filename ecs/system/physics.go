package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/rocketboost/ecs"
	"github.com/milk9111/rocketboost/ecs/component"
	"github.com/milk9111/rocketboost/rocket"
	"github.com/rs/zerolog"
)

const (
	collisionTypeRocket cp.CollisionType = iota + 1
	collisionTypeSolid
)

// Gravity is in pixels per second squared; screen Y points down.
const Gravity = 240.0

type PhysicsSystem struct {
	space *cp.Space
	clock *ecs.Clock
	log   zerolog.Logger

	entities     map[ecs.Entity]*bodyInfo
	shapes       map[*cp.Shape]ecs.Entity
	rocketShapes map[*cp.Shape]ecs.Entity
	contacts     []contact
}

type bodyInfo struct {
	body   *cp.Body
	shape  *cp.Shape
	static bool
}

// contact is a rocket shape touching another shape, recorded during the step
// and turned into a collision event once the space is unlocked.
type contact struct {
	rocket *cp.Shape
	other  *cp.Shape
}

func NewPhysicsSystem(clock *ecs.Clock, log zerolog.Logger) *PhysicsSystem {
	ps := &PhysicsSystem{clock: clock, log: log}
	ps.Reset()
	return ps
}

// Reset discards the space and every body in it. The game calls it when a
// level is unloaded.
func (ps *PhysicsSystem) Reset() {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{X: 0, Y: Gravity})

	ps.space = space
	ps.entities = make(map[ecs.Entity]*bodyInfo)
	ps.shapes = make(map[*cp.Shape]ecs.Entity)
	ps.rocketShapes = make(map[*cp.Shape]ecs.Entity)
	ps.contacts = nil

	handler := space.NewCollisionHandler(collisionTypeRocket, collisionTypeSolid)
	handler.UserData = ps
	handler.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		sys, ok := userData.(*PhysicsSystem)
		if !ok || sys == nil {
			return true
		}
		shapeA, shapeB := arb.Shapes()
		if _, isRocket := sys.rocketShapes[shapeA]; !isRocket {
			shapeA, shapeB = shapeB, shapeA
		}
		sys.contacts = append(sys.contacts, contact{rocket: shapeA, other: shapeB})
		return true
	}
}

func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}

	ps.syncEntities(w)

	dt := 1.0 / 60.0
	if ps.clock != nil {
		dt = ps.clock.DeltaTime()
	}
	ps.space.Step(dt)

	ps.syncTransforms(w)
	ps.flushContacts(w)
}

func (ps *PhysicsSystem) syncEntities(w *ecs.World) {
	ps.cleanupEntities(w)

	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, bodyComp *component.PhysicsBody, transform *component.Transform) {
		if _, ok := ps.entities[e]; ok {
			return
		}

		isRocket := ecs.Has(w, e, component.RocketComponent.Kind())
		info := ps.createBodyInfo(transform, bodyComp, isRocket)
		ps.entities[e] = info
		ps.shapes[info.shape] = e
		if isRocket {
			ps.rocketShapes[info.shape] = e
		}
		bodyComp.Body = info.body
		bodyComp.Shape = info.shape
	})
}

func (ps *PhysicsSystem) createBodyInfo(transform *component.Transform, bodyComp *component.PhysicsBody, isRocket bool) *bodyInfo {
	width, height := bodyComp.Width, bodyComp.Height
	if width <= 0 || height <= 0 {
		width, height = 32, 32
	}

	info := &bodyInfo{}
	var shape *cp.Shape

	switch bodyComp.Kind {
	case component.BodyStatic:
		bb := cp.BB{
			L: transform.X - width/2,
			B: transform.Y - height/2,
			R: transform.X + width/2,
			T: transform.Y + height/2,
		}
		shape = cp.NewBox2(ps.space.StaticBody, bb, 0)
		info.body = ps.space.StaticBody
		info.static = true
	case component.BodyKinematic:
		body := cp.NewKinematicBody()
		body.SetPosition(cp.Vector{X: transform.X, Y: transform.Y})
		body.SetAngle(transform.Rotation)
		ps.space.AddBody(body)
		shape = cp.NewBox(body, width, height, 0)
		info.body = body
	default:
		mass := bodyComp.Mass
		if mass <= 0 {
			mass = 1
		}
		body := cp.NewBody(mass, cp.MomentForBox(mass, width, height))
		body.SetPosition(cp.Vector{X: transform.X, Y: transform.Y})
		body.SetAngle(transform.Rotation)
		ps.space.AddBody(body)
		shape = cp.NewBox(body, width, height, 0)
		info.body = body
	}

	shape.SetFriction(bodyComp.Friction)
	shape.SetElasticity(bodyComp.Elasticity)
	shape.SetCollisionType(collisionTypeSolid)
	if isRocket {
		shape.SetCollisionType(collisionTypeRocket)
	}
	ps.space.AddShape(shape)
	info.shape = shape
	return info
}

func (ps *PhysicsSystem) syncTransforms(w *ecs.World) {
	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, bodyComp *component.PhysicsBody, transform *component.Transform) {
		if bodyComp.Body == nil || bodyComp.Kind == component.BodyStatic {
			return
		}
		pos := bodyComp.Body.Position()
		transform.X = pos.X
		transform.Y = pos.Y
		transform.Rotation = bodyComp.Body.Angle()
	})
}

// flushContacts turns the contacts recorded during the step into collision
// events. Shapes without a collision tag are hostile.
func (ps *PhysicsSystem) flushContacts(w *ecs.World) {
	contacts := ps.contacts
	ps.contacts = nil

	for _, c := range contacts {
		rocketEntity, ok := ps.rocketShapes[c.rocket]
		if !ok {
			continue
		}
		other := ps.shapes[c.other]
		category := rocket.Hostile
		if tag, ok := ecs.Get(w, other, component.CollisionTagComponent.Kind()); ok {
			category = tag.Category
		}
		ps.log.Debug().Stringer("entity", rocketEntity).Stringer("other", other).Stringer("category", category).Msg("physics: rocket contact")
		w.Events().Push(ecs.Event{
			Type: ecs.EventCollision,
			Data: ecs.CollisionEvent{Entity: rocketEntity, Other: other, Category: category},
		})
	}
}

func (ps *PhysicsSystem) cleanupEntities(w *ecs.World) {
	for e, info := range ps.entities {
		if ecs.IsAlive(w, e) && ecs.Has(w, e, component.PhysicsBodyComponent.Kind()) {
			continue
		}
		if info.shape != nil {
			ps.space.RemoveShape(info.shape)
			delete(ps.shapes, info.shape)
			delete(ps.rocketShapes, info.shape)
		}
		if info.body != nil && !info.static {
			ps.space.RemoveBody(info.body)
		}
		delete(ps.entities, e)
	}
}
