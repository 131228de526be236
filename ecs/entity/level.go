package entity

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/rocketboost/ecs"
	"github.com/milk9111/rocketboost/ecs/component"
	"github.com/milk9111/rocketboost/ecs/system"
	"github.com/milk9111/rocketboost/levels"
	"github.com/milk9111/rocketboost/prefabs"
	"github.com/milk9111/rocketboost/rocket"
)

var (
	hostileColor  = color.RGBA{R: 0x8f, G: 0x5b, B: 0x5b, A: 0xff}
	friendlyColor = color.RGBA{R: 0x5e, G: 0x81, B: 0xac, A: 0xff}
	finishColor   = color.RGBA{R: 0xa3, G: 0xbe, B: 0x8c, A: 0xff}
)

// LoadLevel builds every block of lvl and the rocket at its spawn point. It
// returns the rocket entity.
func LoadLevel(w *ecs.World, lvl *levels.Level, spec prefabs.RocketSpec, rt Runtime) (ecs.Entity, error) {
	if lvl == nil {
		return 0, fmt.Errorf("load level: nil level")
	}

	for i, b := range lvl.Blocks {
		if _, err := BuildBlock(w, b, rt.Clock); err != nil {
			return 0, fmt.Errorf("load level %q: block %d: %w", lvl.Name, i, err)
		}
	}

	e, err := BuildRocket(w, spec, lvl.Spawn.X, lvl.Spawn.Y, rt)
	if err != nil {
		return 0, fmt.Errorf("load level %q: %w", lvl.Name, err)
	}
	return e, nil
}

// BuildBlock creates a solid from a level block. Blocks with an oscillation
// become kinematic bodies; all others are static.
func BuildBlock(w *ecs.World, b levels.Block, clock rocket.Clock) (ecs.Entity, error) {
	category := rocket.ParseCategory(b.Tag)
	fill, err := blockColor(b.Color, category)
	if err != nil {
		return 0, err
	}

	cx, cy := b.X+b.W/2, b.Y+b.H/2
	pos := cp.Vector{X: cx, Y: cy}
	kind := component.BodyStatic
	if b.Oscillate != nil {
		kind = component.BodyKinematic
		pos = system.Oscillation(pos, cp.Vector{X: b.Oscillate.MoveX, Y: b.Oscillate.MoveY}, b.Oscillate.Period, 0)
	}

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: pos.X, Y: pos.Y}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Kind:     kind,
		Width:    b.W,
		Height:   b.H,
		Friction: 0.8,
	}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.CollisionTagComponent.Kind(), &component.CollisionTag{Category: category}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.BoxComponent.Kind(), &component.Box{Width: b.W, Height: b.H, Color: fill}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: 1}); err != nil {
		return 0, err
	}

	if b.Oscillate != nil {
		epoch := 0.0
		if clock != nil {
			epoch = clock.Time()
		}
		if err := ecs.Add(w, e, component.OscillatorComponent.Kind(), &component.Oscillator{
			StartX: cx,
			StartY: cy,
			MoveX:  b.Oscillate.MoveX,
			MoveY:  b.Oscillate.MoveY,
			Period: b.Oscillate.Period,
			Epoch:  epoch,
		}); err != nil {
			return 0, err
		}
	}
	return e, nil
}

func blockColor(hex string, category rocket.Category) (color.RGBA, error) {
	if hex == "" {
		switch category {
		case rocket.Friendly:
			return friendlyColor, nil
		case rocket.Finish:
			return finishColor, nil
		default:
			return hostileColor, nil
		}
	}
	s := strings.TrimPrefix(hex, "#")
	if len(s) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid color %q", hex)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", hex, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
