package entity

import (
	"fmt"
	"image/color"

	"github.com/milk9111/rocketboost/ecs/component"
	"github.com/milk9111/rocketboost/prefabs"
)

// PlayerLoader creates a player for a synthesized cue.
type PlayerLoader func(cue string) (component.ClipPlayer, error)

func buildAudioComponent(audioSpecs []prefabs.AudioSpec, load PlayerLoader) (*component.Audio, error) {
	n := len(audioSpecs)
	names := make([]string, 0, n)
	players := make([]component.ClipPlayer, 0, n)
	volume := make([]float64, 0, n)

	for i, clip := range audioSpecs {
		var player component.ClipPlayer
		if load != nil {
			p, err := load(clip.Cue)
			if err != nil {
				closePlayers(players)
				return nil, fmt.Errorf("audio clip %d (%q): %w", i, clip.Name, err)
			}
			player = p
		}
		names = append(names, clip.Name)
		players = append(players, player)
		volume = append(volume, clip.Volume)
	}

	return &component.Audio{
		Names:   names,
		Players: players,
		Volume:  volume,
		Play:    make([]bool, n),
		Stop:    make([]bool, n),
	}, nil
}

func closePlayers(players []component.ClipPlayer) {
	for _, p := range players {
		if p != nil {
			_ = p.Close()
		}
	}
}

func buildEmittersComponent(specs []prefabs.EmitterSpec) *component.Emitters {
	n := len(specs)
	em := &component.Emitters{
		Names:    make([]string, 0, n),
		Color:    make([]color.RGBA, 0, n),
		Loop:     make([]bool, 0, n),
		Duration: make([]int, 0, n),
		Playing:  make([]bool, n),
		Frames:   make([]int, n),
	}
	for _, s := range specs {
		em.Names = append(em.Names, s.Name)
		em.Color = append(em.Color, s.Color.RGBA)
		em.Loop = append(em.Loop, s.Loop)
		em.Duration = append(em.Duration, s.Duration)
	}
	return em
}
