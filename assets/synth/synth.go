// Package synth generates the game's sound cues procedurally so no audio files
// have to ship with the binary.
package synth

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sort"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

const SampleRate beep.SampleRate = 44100

// maxCueLength bounds rendering in case a streamer never drains.
const maxCueLength = 5 * time.Second

var ErrUnknownCue = errors.New("synth: unknown cue")

type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a raw waveform, optionally sliding from freq to
// endFreq over its duration.
type oscillator struct {
	freq     float64
	endFreq  float64
	phase    float64
	position int
	duration int
	wave     Wave
	rng      *rand.Rand
}

func newOscillator(wave Wave, freq, endFreq float64, d time.Duration) beep.Streamer {
	return &oscillator{
		freq:     freq,
		endFreq:  endFreq,
		duration: SampleRate.N(d),
		wave:     wave,
		rng:      rand.New(rand.NewSource(int64(freq*1000) + int64(wave))),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		case WaveSaw:
			val = 2 * (o.phase - 0.5)
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		t := float64(o.position) / float64(o.duration)
		freq := o.freq + (o.endFreq-o.freq)*t
		o.phase += freq / float64(SampleRate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func newEnvelope(s beep.Streamer, d, attack, release time.Duration) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   SampleRate.N(attack),
		release:  SampleRate.N(release),
		total:    SampleRate.N(d),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}
		vol := 1.0
		if e.position < e.attack && e.attack > 0 {
			vol = float64(e.position) / float64(e.attack)
		}
		if releaseStart := e.total - e.release; e.position >= releaseStart && e.release > 0 {
			vol = math.Min(vol, float64(e.total-e.position)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

func gain(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

func tone(wave Wave, freq, endFreq float64, d, attack, release time.Duration) beep.Streamer {
	return newEnvelope(newOscillator(wave, freq, endFreq, d), d, attack, release)
}

// thrustCue is a low rumble: filtered-sounding noise over a saw drone.
func thrustCue() beep.Streamer {
	d := 600 * time.Millisecond
	return beep.Mix(
		gain(tone(WaveNoise, 0, 0, d, 40*time.Millisecond, 120*time.Millisecond), 0.45),
		gain(tone(WaveSaw, 55, 60, d, 40*time.Millisecond, 120*time.Millisecond), 0.35),
	)
}

// deathCue is a falling square wave with a noise burst.
func deathCue() beep.Streamer {
	return beep.Mix(
		gain(tone(WaveSquare, 440, 60, 900*time.Millisecond, 5*time.Millisecond, 400*time.Millisecond), 0.3),
		gain(tone(WaveNoise, 0, 0, 700*time.Millisecond, 0, 500*time.Millisecond), 0.5),
	)
}

// successCue is a rising major arpeggio.
func successCue() beep.Streamer {
	note := func(freq float64) beep.Streamer {
		return gain(tone(WaveSine, freq, freq, 180*time.Millisecond, 10*time.Millisecond, 80*time.Millisecond), 0.6)
	}
	return beep.Seq(note(523.25), note(659.25), note(783.99), note(1046.5))
}

var cues = map[string]func() beep.Streamer{
	"thrust":  thrustCue,
	"death":   deathCue,
	"success": successCue,
}

// Names returns the known cue names in sorted order.
func Names() []string {
	names := make([]string, 0, len(cues))
	for name := range cues {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render drains a cue into stereo float samples.
func Render(name string) ([][2]float64, error) {
	gen, ok := cues[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCue, name)
	}
	s := gen()

	limit := SampleRate.N(maxCueLength)
	out := make([][2]float64, 0, SampleRate.N(time.Second))
	buf := make([][2]float64, 512)
	for len(out) < limit {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			break
		}
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("synth: render %q: %w", name, err)
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// EncodePCM16 converts samples to signed 16-bit little-endian stereo, the
// layout ebiten's audio players expect. Samples are clamped to [-1, 1].
func EncodePCM16(samples [][2]float64) []byte {
	out := make([]byte, len(samples)*4)
	for i, s := range samples {
		for ch := 0; ch < 2; ch++ {
			v := int16(math.Round(math.Max(-1, math.Min(1, s[ch])) * math.MaxInt16))
			out[i*4+ch*2] = byte(v)
			out[i*4+ch*2+1] = byte(uint16(v) >> 8)
		}
	}
	return out
}
