package system

import (
	"github.com/milk9111/rocketboost/ecs"
	"github.com/milk9111/rocketboost/ecs/component"
	"github.com/rs/zerolog"
)

// AudioSystem applies the play and stop requests raised during the frame.
// Stops run first so a sequence that stops everything and then starts a clip
// ends with that clip playing.
type AudioSystem struct {
	// Master scales every clip volume.
	Master float64
	log    zerolog.Logger
}

func NewAudioSystem(master float64, log zerolog.Logger) *AudioSystem {
	return &AudioSystem{Master: master, log: log}
}

func (a *AudioSystem) Update(w *ecs.World) {
	ecs.ForEach(w, component.AudioComponent.Kind(), func(_ ecs.Entity, audioComp *component.Audio) {
		count := min(len(audioComp.Players), len(audioComp.Play), len(audioComp.Stop))

		for i := 0; i < count; i++ {
			if !audioComp.Stop[i] {
				continue
			}

			player := audioComp.Players[i]
			if player != nil && player.IsPlaying() {
				player.Pause()
			}

			audioComp.Stop[i] = false
		}

		for i := 0; i < count; i++ {
			if !audioComp.Play[i] {
				continue
			}
			audioComp.Play[i] = false

			player := audioComp.Players[i]
			if player == nil {
				continue
			}
			volume := a.Master
			if i < len(audioComp.Volume) {
				volume *= audioComp.Volume[i]
			}
			player.SetVolume(volume)
			if err := player.Rewind(); err != nil {
				a.log.Warn().Err(err).Str("clip", audioComp.Names[i]).Msg("audio: rewind")
				continue
			}
			player.Play()
		}
	})
}
