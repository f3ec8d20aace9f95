package engine

import (
	"time"

	"git.lost.host/meutraa/encore/internal/game"
	"git.lost.host/meutraa/encore/internal/score"
	"github.com/sirupsen/logrus"
)

// detectMisses retires every active note that is further past due than the
// pass threshold. It stops as soon as a miss finishes the session.
func (s *Session) detectMisses(elapsed time.Duration) bool {
	for i := range s.notes {
		note := &s.notes[i]
		if !note.Active {
			continue
		}
		if elapsed-note.Time <= s.cfg.PassThreshold {
			continue
		}
		if !s.retire(note, game.Missed) {
			continue
		}

		st := &s.state
		st.TotalMisses++
		st.Counts[score.Miss]++
		st.Combo.Break()
		s.rules.ApplyPassMiss(st)
		s.feedback(score.Miss.String())
		s.events |= EventNoteMissed

		s.log.WithFields(logrus.Fields{
			"lane": note.Lane,
			"time": note.Time,
		}).Debug("note passed")

		if s.resolve() {
			return true
		}
	}
	return false
}
