package component

// LevelChangeRequest is a one-shot request asking the outer game loop to load
// the level at Index. Systems and the scene manager only emit it; the game
// loop owns world teardown and rebuild.
type LevelChangeRequest struct {
	Index int
}

var LevelChangeRequestComponent = NewComponent[LevelChangeRequest]()
