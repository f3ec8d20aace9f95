package engine

import (
	"errors"
	"fmt"
	"strings"

	"git.lost.host/meutraa/encore/internal/score"
)

var ErrUnknownMode = errors.New("unknown mode")

type Mode uint8

const (
	Concert Mode = iota
	Combat
)

func (m Mode) String() string {
	if m == Combat {
		return "combat"
	}
	return "concert"
}

func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "concert":
		return Concert, nil
	case "combat":
		return Combat, nil
	}
	return Concert, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

type Phase uint8

const (
	PhaseCountdown Phase = iota
	PhaseActive
	PhaseFinished
)

func (p Phase) String() string {
	switch p {
	case PhaseActive:
		return "active"
	case PhaseFinished:
		return "finished"
	}
	return "countdown"
}

type Outcome uint8

const (
	None Outcome = iota
	Victory
	Defeat
	Aborted
	// Completed ends a concert that ran out of notes without losing the crowd
	Completed
)

func (o Outcome) String() string {
	switch o {
	case Victory:
		return "victory"
	case Defeat:
		return "defeat"
	case Aborted:
		return "aborted"
	case Completed:
		return "completed"
	}
	return "none"
}

// Reason says which threshold finished the session
type Reason uint8

const (
	ReasonNone Reason = iota
	ReasonHypeDepleted
	ReasonPlayerDown
	ReasonTargetDown
	ReasonTargetSurvived
	ReasonSongComplete
	ReasonQuit
)

func (r Reason) String() string {
	switch r {
	case ReasonHypeDepleted:
		return "crowd lost"
	case ReasonPlayerDown:
		return "player down"
	case ReasonTargetDown:
		return "target down"
	case ReasonTargetSurvived:
		return "target survived"
	case ReasonSongComplete:
		return "song complete"
	case ReasonQuit:
		return "quit"
	}
	return ""
}

// State is the mutable aggregate of one play-through. Only the session
// mutates it; rule sets receive it to apply their formulas.
type State struct {
	Phase   Phase
	Outcome Outcome
	Reason  Reason

	Score int
	Hype  int

	PlayerHealth    int
	TargetHealth    int
	TargetMaxHealth int

	Combo score.Combo

	TotalNotes   int
	Remaining    int // notes still active
	TotalHits    int
	TotalMisses  int // notes judged missed by passing the line
	EmptyPresses int // presses that matched no note
	Counts       [score.NTiers]int

	Feedback      string
	FeedbackTicks int

	Cash int

	offsetSum, offsetSquares float64
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func floor0(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
