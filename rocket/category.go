package rocket

import "strings"

// Category classifies the object a rocket collided with.
type Category int

const (
	// Hostile is the default for anything that is not explicitly tagged.
	Hostile Category = iota
	Friendly
	Finish
)

func (c Category) String() string {
	switch c {
	case Friendly:
		return "friendly"
	case Finish:
		return "finish"
	default:
		return "hostile"
	}
}

// ParseCategory maps a level or prefab tag onto a Category. Unknown and empty
// tags are Hostile.
func ParseCategory(tag string) Category {
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case "friendly":
		return Friendly
	case "finish":
		return Finish
	default:
		return Hostile
	}
}
