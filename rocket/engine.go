package rocket

import "github.com/jakecoffman/cp"

// Up is the body-local up axis. Screen coordinates grow downward, so up is -Y.
var Up = cp.Vector{X: 0, Y: -1}

// Action is a logical input the controller polls each frame.
type Action int

const (
	ActionThrust Action = iota
	ActionRotateLeft
	ActionRotateRight
	ActionSkipLevel
	ActionToggleCollisions
)

// Clip identifies an audio clip known to the host's audio source.
type Clip string

// RigidBody is the host physics body driven by the controller.
type RigidBody interface {
	AddRelativeForce(force cp.Vector)
	SetFreezeRotation(frozen bool)
	FreezeRotation() bool
}

// Transform rotates the entity about its roll axis. Positive degrees turn
// counter-clockwise as seen on screen.
type Transform interface {
	Rotate(degrees float64)
}

type AudioSource interface {
	PlayOneShot(clip Clip)
	Stop()
	IsPlaying() bool
}

type ParticleEmitter interface {
	Play()
	Stop()
}

// Clock reports frame timing in seconds.
type Clock interface {
	DeltaTime() float64
	Time() float64
}

// Input reports the state of logical actions for the current frame.
type Input interface {
	Held(a Action) bool
	PressedThisFrame(a Action) bool
}

type SceneManager interface {
	LoadScene(index int)
	ActiveSceneIndex() int
	SceneCount() int
}

// Timer schedules a one-shot callback on the host's main timeline.
type Timer interface {
	CallAfter(delaySeconds float64, fn func())
}
