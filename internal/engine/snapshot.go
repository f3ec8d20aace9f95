package engine

import (
	"math"
	"time"

	"git.lost.host/meutraa/encore/internal/score"
)

// Snapshot is a read-only copy of the session for rendering
type Snapshot struct {
	Mode    Mode
	Phase   Phase
	Outcome Outcome
	Reason  Reason

	Countdown int // whole seconds left before the song starts
	Elapsed   time.Duration

	Score           int
	Hype            int
	PlayerHealth    int
	TargetHealth    int
	TargetMaxHealth int

	Combo      int
	MaxCombo   int
	Multiplier float64

	Feedback string

	TotalNotes   int
	TotalHits    int
	TotalMisses  int
	EmptyPresses int
	Counts       [score.NTiers]int

	Mean, Stdev float64 // signed hit error in ms, positive is late

	CashEarned int
}

func (s *Session) Snapshot() Snapshot {
	st := &s.state
	snap := Snapshot{
		Mode:            s.rules.Mode(),
		Phase:           st.Phase,
		Outcome:         st.Outcome,
		Reason:          st.Reason,
		Countdown:       s.clock.Display(s.now),
		Elapsed:         s.clock.Elapsed(s.now),
		Score:           st.Score,
		Hype:            st.Hype,
		PlayerHealth:    st.PlayerHealth,
		TargetHealth:    st.TargetHealth,
		TargetMaxHealth: st.TargetMaxHealth,
		Combo:           st.Combo.Count,
		MaxCombo:        st.Combo.Max,
		Feedback:        st.Feedback,
		TotalNotes:      st.TotalNotes,
		TotalHits:       st.TotalHits,
		TotalMisses:     st.TotalMisses,
		EmptyPresses:    st.EmptyPresses,
		Counts:          st.Counts,
		CashEarned:      st.Cash,
	}
	if snap.Mode == Combat {
		snap.Multiplier = score.CombatMultiplier(st.Combo.Count)
	} else {
		snap.Multiplier = score.ConcertMultiplier(st.Combo.Count)
	}

	if n := float64(st.TotalHits); n > 0 {
		snap.Mean = st.offsetSum / n
		if n > 1 {
			variance := (st.offsetSquares - n*snap.Mean*snap.Mean) / (n - 1)
			if variance > 0 {
				snap.Stdev = math.Sqrt(variance)
			}
		}
	}
	return snap
}
