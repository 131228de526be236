package component

import "image/color"

// Emitters holds the named particle effects attached to an entity. An effect
// is only a playing flag plus the frames since it started; the render system
// draws it, nothing simulates individual particles.
type Emitters struct {
	Names []string
	Color []color.RGBA
	// Loop effects run until stopped. Others stop after Duration frames.
	Loop     []bool
	Duration []int
	Playing  []bool
	Frames   []int
}

var EmittersComponent = NewComponent[Emitters]()

// Index returns the slot for an emitter name, or -1.
func (e *Emitters) Index(name string) int {
	if e == nil {
		return -1
	}
	for i, n := range e.Names {
		if n == name {
			return i
		}
	}
	return -1
}
