package game

import (
	"time"
)

// Lane is the input column a note belongs to
type Lane uint8

// NLanes is the number of lanes a song may use
const NLanes = 4

func (l Lane) Valid() bool {
	return l < NLanes
}

// Verdict records how a note left the active set
type Verdict uint8

const (
	Pending Verdict = iota
	Hit
	Missed
)

func (v Verdict) String() string {
	switch v {
	case Hit:
		return "hit"
	case Missed:
		return "missed"
	}
	return "pending"
}

type Note struct {
	Lane     Lane          // The chart column
	Denom    int           // The beat length, as a denominator, 4 = 1/4 beat
	Time     time.Duration // The time the note should be hit
	Duration time.Duration // Sustain length, only drawn

	// This is state
	Active  bool
	Verdict Verdict
	HitTime time.Duration // When the note was hit
	Offset  time.Duration // Signed hit error, positive is late
}

// End is when the sustain tail leaves the hit line
func (n *Note) End() time.Duration {
	return n.Time + n.Duration
}
