package system

import (
	"image/color"
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/rocketboost/ecs"
	"github.com/milk9111/rocketboost/ecs/component"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

const hudLineHeight = 16

type RenderSystem struct {
	face       ebtext.Face
	Background color.Color
}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{
		face:       ebtext.NewGoXFace(basicfont.Face7x13),
		Background: colornames.Midnightblue,
	}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || screen == nil {
		return
	}
	screen.Fill(r.Background)

	entities := ecs.Query(w, component.TransformComponent.Kind(), component.BoxComponent.Kind())
	sort.SliceStable(entities, func(i, j int) bool {
		li := 0
		if layer, ok := ecs.Get(w, entities[i], component.RenderLayerComponent.Kind()); ok {
			li = layer.Index
		}
		lj := 0
		if layer, ok := ecs.Get(w, entities[j], component.RenderLayerComponent.Kind()); ok {
			lj = layer.Index
		}
		if li != lj {
			return li < lj
		}
		return uint64(entities[i]) < uint64(entities[j])
	})

	for _, e := range entities {
		t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}
		box, ok := ecs.Get(w, e, component.BoxComponent.Kind())
		if !ok {
			continue
		}

		if em, ok := ecs.Get(w, e, component.EmittersComponent.Kind()); ok {
			drawEmitters(screen, t, box, em)
		}
		drawBox(screen, t, box)
	}
}

// DrawHUD writes lines top-left, one per row.
func (r *RenderSystem) DrawHUD(screen *ebiten.Image, lines ...string) {
	for i, line := range lines {
		op := &ebtext.DrawOptions{}
		op.GeoM.Translate(12, float64(8+i*hudLineHeight))
		op.ColorScale.ScaleWithColor(colornames.White)
		ebtext.Draw(screen, line, r.face, op)
	}
}

func drawBox(screen *ebiten.Image, t *component.Transform, box *component.Box) {
	if t.Rotation == 0 {
		vector.FillRect(screen, float32(t.X-box.Width/2), float32(t.Y-box.Height/2), float32(box.Width), float32(box.Height), box.Color, false)
		return
	}
	// A rotated box is a thick line along its local vertical axis.
	top, bottom := boxAxis(t, box.Height/2)
	vector.StrokeLine(screen, float32(top.X), float32(top.Y), float32(bottom.X), float32(bottom.Y), float32(box.Width), box.Color, true)
}

// boxAxis returns the points at distance half above and below the centre,
// along the box's rotated vertical axis.
func boxAxis(t *component.Transform, half float64) (top, bottom cp.Vector) {
	centre := cp.Vector{X: t.X, Y: t.Y}
	rot := cp.ForAngle(t.Rotation)
	return centre.Add(rot.Rotate(cp.Vector{Y: -half})), centre.Add(rot.Rotate(cp.Vector{Y: half}))
}

// drawEmitters draws looping effects as a flame under the box and one-shot
// effects as a ring expanding from its centre.
func drawEmitters(screen *ebiten.Image, t *component.Transform, box *component.Box, em *component.Emitters) {
	for i := range em.Names {
		if !em.Playing[i] {
			continue
		}
		c := em.Color[i]

		if em.Loop[i] {
			flicker := 0.75 + 0.25*math.Sin(float64(em.Frames[i])*0.9)
			_, tail := boxAxis(t, box.Height/2)
			_, tip := boxAxis(t, box.Height/2+box.Height*0.6*flicker)
			vector.StrokeLine(screen, float32(tail.X), float32(tail.Y), float32(tip.X), float32(tip.Y), float32(box.Width*0.6), c, true)
			continue
		}

		progress := 1.0
		if em.Duration[i] > 0 {
			progress = float64(em.Frames[i]) / float64(em.Duration[i])
		}
		radius := float32(box.Height * (0.5 + 1.5*progress))
		c.A = uint8(float64(c.A) * (1 - progress))
		vector.StrokeCircle(screen, float32(t.X), float32(t.Y), radius, 3, c, true)
		vector.DrawFilledCircle(screen, float32(t.X), float32(t.Y), radius*0.4, c, true)
	}
}
