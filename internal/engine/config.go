package engine

import (
	"time"

	"git.lost.host/meutraa/encore/internal/clock"
	"git.lost.host/meutraa/encore/internal/score"
)

// Config tunes the timing of a session; the formulas live in the rule set
type Config struct {
	Countdown     time.Duration
	MissWindow    time.Duration // Widest distance a press can be judged at
	PassThreshold time.Duration // How far past due a note is missed
	InputOffset   time.Duration // Latency subtracted from every press
	FeedbackTicks int           // Frames a feedback label stays up
}

func DefaultConfig() Config {
	return Config{
		Countdown:     clock.DefaultCountdown,
		MissWindow:    score.MissWindow,
		PassThreshold: 200 * time.Millisecond,
		FeedbackTicks: 30,
	}
}
