package ecs

// Clock is the fixed-step frame clock shared by systems and the rocket
// controller. Times are in seconds.
type Clock struct {
	dt      float64
	elapsed float64
	frames  uint64
}

// NewClock returns a clock stepping 1/tps seconds per tick.
func NewClock(tps int) *Clock {
	if tps <= 0 {
		tps = 60
	}
	return &Clock{dt: 1 / float64(tps)}
}

// Tick advances the clock by one frame.
func (c *Clock) Tick() {
	c.elapsed += c.dt
	c.frames++
}

func (c *Clock) DeltaTime() float64 {
	return c.dt
}

// Time returns seconds elapsed since the clock was created.
func (c *Clock) Time() float64 {
	return c.elapsed
}

func (c *Clock) Frames() uint64 {
	return c.frames
}
