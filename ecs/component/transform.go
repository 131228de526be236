package component

// Transform is the entity pose in screen space. X and Y are the body centre;
// Rotation is in radians, mirrored from the physics body after each step.
type Transform struct {
	X        float64
	Y        float64
	Rotation float64
}

var TransformComponent = NewComponent[Transform]()
