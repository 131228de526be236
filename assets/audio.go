// Package assets turns synthesized cues into ebiten audio players.
package assets

import (
	"fmt"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/rocketboost/assets/synth"
)

var (
	contextOnce  sync.Once
	audioContext *audio.Context

	pcmMu    sync.Mutex
	pcmCache = make(map[string][]byte)
)

// AudioContext returns the process-wide audio context. Ebiten allows only one.
func AudioContext() *audio.Context {
	contextOnce.Do(func() {
		audioContext = audio.NewContext(int(synth.SampleRate))
	})
	return audioContext
}

// LoadAudioPlayer creates a new player for the named cue. Rendered PCM is
// cached, so reloading a level only allocates the player.
func LoadAudioPlayer(name string) (*audio.Player, error) {
	pcm, err := cuePCM(name)
	if err != nil {
		return nil, err
	}
	return AudioContext().NewPlayerFromBytes(pcm), nil
}

func cuePCM(name string) ([]byte, error) {
	pcmMu.Lock()
	defer pcmMu.Unlock()

	if pcm, ok := pcmCache[name]; ok {
		return pcm, nil
	}
	samples, err := synth.Render(name)
	if err != nil {
		return nil, fmt.Errorf("assets: load cue %q: %w", name, err)
	}
	pcm := synth.EncodePCM16(samples)
	pcmCache[name] = pcm
	return pcm, nil
}
