package service

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// VirtualClock maps wall-clock elapsed time onto simulated time. It is a pure
// function of the underlying clock: nothing pauses it, and each instance
// defines its own epoch at construction.
type VirtualClock struct {
	clock clockwork.Clock
	start time.Time
	scale float64
}

func NewVirtualClock(clock clockwork.Clock, scale float64) *VirtualClock {
	return &VirtualClock{
		clock: clock,
		start: clock.Now(),
		scale: scale,
	}
}

func (c *VirtualClock) Start() time.Time {
	return c.start
}

func (c *VirtualClock) Scale() float64 {
	return c.scale
}

func (c *VirtualClock) ElapsedReal() time.Duration {
	return c.clock.Since(c.start)
}

func (c *VirtualClock) ElapsedSimulated() time.Duration {
	return time.Duration(float64(c.ElapsedReal()) * c.scale)
}

func (c *VirtualClock) CurrentSimulatedTime() time.Time {
	return c.start.Add(c.ElapsedSimulated())
}

// IsComplete reports whether the simulated duration has fully elapsed
func (c *VirtualClock) IsComplete(duration time.Duration) bool {
	return c.ElapsedSimulated() >= duration
}

// ToReal converts a simulated span into the real time it takes at this scale
func (c *VirtualClock) ToReal(simulated time.Duration) time.Duration {
	return time.Duration(float64(simulated) / c.scale)
}
