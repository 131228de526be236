package component

import "github.com/milk9111/rocketboost/rocket"

// CollisionTag classifies a collider for rocket collision handling. Entities
// without a tag are hostile.
type CollisionTag struct {
	Category rocket.Category
}

var CollisionTagComponent = NewComponent[CollisionTag]()
