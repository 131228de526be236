package component

import "github.com/jakecoffman/cp"

type BodyKind int

const (
	BodyDynamic BodyKind = iota
	BodyStatic
	BodyKinematic
)

// PhysicsBody stores Chipmunk2D runtime data and collider configuration. Body
// and Shape are filled in by the physics system the first time it sees the
// entity.
type PhysicsBody struct {
	Body       *cp.Body
	Shape      *cp.Shape
	Kind       BodyKind
	Width      float64
	Height     float64
	Mass       float64
	Friction   float64
	Elasticity float64
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()
