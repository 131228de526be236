package component

import "github.com/milk9111/rocketboost/rocket"

// Rocket binds an entity to its gameplay controller.
type Rocket struct {
	Controller *rocket.Controller
}

var RocketComponent = NewComponent[Rocket]()
