package component

import "image/color"

// Box is a solid rectangle drawn at the entity transform.
type Box struct {
	Width  float64
	Height float64
	Color  color.RGBA
}

var BoxComponent = NewComponent[Box]()

type RenderLayer struct {
	Index int
}

var RenderLayerComponent = NewComponent[RenderLayer]()
