package component

// ClipPlayer is the subset of *audio.Player the audio system drives.
type ClipPlayer interface {
	Play()
	Pause()
	Rewind() error
	IsPlaying() bool
	SetVolume(volume float64)
	Close() error
}

// Audio holds one player per named clip. Play and Stop are requests consumed
// by the audio system at the end of the frame.
type Audio struct {
	Names   []string
	Players []ClipPlayer
	Volume  []float64
	Play    []bool
	Stop    []bool
}

var AudioComponent = NewComponent[Audio]()

// Index returns the slot for a clip name, or -1.
func (a *Audio) Index(name string) int {
	if a == nil {
		return -1
	}
	for i, n := range a.Names {
		if n == name {
			return i
		}
	}
	return -1
}
