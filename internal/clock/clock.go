// Package clock tracks performance time. All readings are wall-clock
// durations supplied by the host, never frame counts.
package clock

import (
	"time"
)

// DefaultCountdown is the pre-roll before audio starts and judging begins
const DefaultCountdown = 5 * time.Second

type State uint8

const (
	Idle State = iota
	Countdown
	Running
)

func (s State) String() string {
	switch s {
	case Countdown:
		return "countdown"
	case Running:
		return "running"
	}
	return "idle"
}

// Clock is the performance clock: Countdown(remaining) -> Running(startedAt)
type Clock struct {
	countdown time.Duration

	state          State
	countdownStart time.Duration
	startedAt      time.Duration
}

func New(countdown time.Duration) *Clock {
	if countdown < 0 {
		countdown = 0
	}
	return &Clock{countdown: countdown}
}

// Start latches the beginning of the countdown. Later calls are ignored.
func (c *Clock) Start(now time.Duration) {
	if c.state != Idle {
		return
	}
	c.state = Countdown
	c.countdownStart = now
}

// Tick advances the clock and reports true exactly once, on the frame the
// countdown runs out.
func (c *Clock) Tick(now time.Duration) bool {
	c.Start(now)
	if c.state != Countdown {
		return false
	}
	if c.Remaining(now) > 0 {
		return false
	}
	c.state = Running
	c.startedAt = now
	return true
}

// Remaining is the countdown time left, zero once running
func (c *Clock) Remaining(now time.Duration) time.Duration {
	switch c.state {
	case Idle:
		return c.countdown
	case Countdown:
		return c.countdown - (now - c.countdownStart)
	}
	return 0
}

// Display is the whole seconds left to show during the countdown
func (c *Clock) Display(now time.Duration) int {
	r := c.Remaining(now)
	if r <= 0 {
		return 0
	}
	return int((r + time.Second - 1) / time.Second)
}

// Elapsed is performance time. It is negative during the countdown so notes
// can already fall towards the hit line.
func (c *Clock) Elapsed(now time.Duration) time.Duration {
	if c.state == Running {
		return now - c.startedAt
	}
	return -c.Remaining(now)
}

func (c *Clock) State() State {
	return c.state
}

func (c *Clock) Running() bool {
	return c.state == Running
}
