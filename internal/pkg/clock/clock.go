// Package clock supplies the time source the stores order records by
package clock

import (
	"sync"
	"time"
)

// Clock provides time functionality
type Clock interface {
	Now() time.Time
}

type system struct{}

func (system) Now() time.Time {
	return time.Now()
}

// New returns the system clock
func New() Clock {
	return system{}
}

// Stepping starts at a fixed instant and moves forward by Step on every
// reading, so records written back to back get distinct, ordered times.
type Stepping struct {
	mu   sync.Mutex
	at   time.Time
	step time.Duration
}

// NewStepping returns a Stepping clock. A non-positive step means one second.
func NewStepping(start time.Time, step time.Duration) *Stepping {
	if step <= 0 {
		step = time.Second
	}
	return &Stepping{at: start, step: step}
}

// Now advances the clock and returns the new instant
func (c *Stepping) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.at = c.at.Add(c.step)
	return c.at
}
