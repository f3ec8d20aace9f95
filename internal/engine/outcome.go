package engine

import (
	"github.com/sirupsen/logrus"
)

// resolve finishes the session if the rule set reports a crossed threshold
func (s *Session) resolve() bool {
	if s.state.Phase == PhaseFinished {
		return true
	}
	outcome, reason, done := s.rules.Resolve(&s.state)
	if !done {
		return false
	}
	s.finish(outcome, reason)
	return true
}

func (s *Session) finish(outcome Outcome, reason Reason) {
	st := &s.state
	st.Phase = PhaseFinished
	st.Outcome = outcome
	st.Reason = reason
	s.events |= EventFinished

	s.warn(s.audio.OnSessionEnd(), "unable to stop audio")

	if outcome != Aborted {
		st.Cash = s.rules.Reward(st)
		s.warn(s.wallet.AddCurrency(st.Cash), "unable to pay reward")
	}

	s.log.WithFields(logrus.Fields{
		"outcome": outcome,
		"reason":  reason,
		"score":   st.Score,
		"hits":    st.TotalHits,
		"misses":  st.TotalMisses,
		"combo":   st.Combo.Max,
		"cash":    st.Cash,
	}).Info("session finished")
}
