package engine

import (
	"git.lost.host/meutraa/encore/internal/score"
)

// Rules is the per-mode strategy the engine is parameterized with. Every
// method runs after the shared bookkeeping (note retired, combo updated).
type Rules interface {
	Mode() Mode

	// Setup seeds the resource values before the first tick
	Setup(st *State)

	ApplyHit(st *State, j *score.Judgement, d int64)
	ApplyEmptyPress(st *State)
	ApplyPassMiss(st *State)

	// Resolve reports whether a threshold has been crossed. Thresholds are
	// checked in order: player defeat, target defeat, note exhaustion.
	Resolve(st *State) (Outcome, Reason, bool)

	// Reward is evaluated once, when the session finishes without aborting
	Reward(st *State) int
}
