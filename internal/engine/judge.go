package engine

import (
	"time"

	"git.lost.host/meutraa/encore/internal/game"
	"git.lost.host/meutraa/encore/internal/score"
	"github.com/sirupsen/logrus"
)

func absDuration(x time.Duration) time.Duration {
	if x < 0 {
		return -x
	}
	return x
}

// candidate is the closest active note on lane inside the miss window.
// Equidistant notes resolve to the earlier one, then chart order.
func (s *Session) candidate(lane game.Lane, t time.Duration) *game.Note {
	window := s.cfg.MissWindow.Milliseconds()

	var closest *game.Note
	best := time.Duration(0)
	for i := range s.notes {
		note := &s.notes[i]
		if !note.Active || note.Lane != lane {
			continue
		}
		d := absDuration(score.Distance(note.Time, t))
		if score.Millis(d) >= window {
			continue
		}
		if nil == closest || d < best || (d == best && note.Time < closest.Time) {
			closest = note
			best = d
		}
	}
	return closest
}

// retire moves a note out of the active set. A note may only ever be
// retired once; anything else is an engine bug.
func (s *Session) retire(note *game.Note, verdict game.Verdict) bool {
	if !note.Active || note.Verdict != game.Pending {
		if assertions {
			panic("note judged twice: " + note.Verdict.String() + " then " + verdict.String())
		}
		s.log.WithFields(logrus.Fields{
			"lane":    note.Lane,
			"time":    note.Time,
			"verdict": note.Verdict,
		}).Error("note judged twice")
		return false
	}
	note.Active = false
	note.Verdict = verdict
	s.state.Remaining--
	return true
}

func (s *Session) hit(note *game.Note, t time.Duration) {
	if !s.retire(note, game.Hit) {
		return
	}
	distance := score.Distance(note.Time, t)
	d := score.Millis(distance)
	idx, judgement := score.Judge(d)
	if nil == judgement {
		// The miss window is wider than the table; judge it as the slowest tier
		idx = len(score.Judgements) - 1
		judgement = &score.Judgements[idx]
	}

	note.HitTime = t
	note.Offset = distance

	st := &s.state
	st.TotalHits++
	st.Combo.Hit()
	st.Counts[idx]++
	ms := float64(distance) / float64(time.Millisecond)
	st.offsetSum += ms
	st.offsetSquares += ms * ms

	s.rules.ApplyHit(st, judgement, d)
	s.feedback(score.Label(judgement, distance))
	s.events |= EventNoteHit

	s.log.WithFields(logrus.Fields{
		"lane":  note.Lane,
		"tier":  judgement.Name,
		"ms":    distance.Milliseconds(),
		"combo": st.Combo.Count,
	}).Debug("hit")
}

func (s *Session) emptyPress(lane game.Lane, t time.Duration) {
	st := &s.state
	st.EmptyPresses++
	st.Combo.Break()
	s.rules.ApplyEmptyPress(st)
	s.feedback(score.Miss.String())
	s.events |= EventEmptyPress

	s.log.WithFields(logrus.Fields{
		"lane": lane,
		"at":   t,
	}).Debug("empty press")
}

func (s *Session) feedback(label string) {
	s.state.Feedback = label
	s.state.FeedbackTicks = s.cfg.FeedbackTicks
}
