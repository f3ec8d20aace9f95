// Package engine is the rhythm judgment and scoring engine. The host calls
// Tick once per frame and HandleInput for every lane press; both take the
// host's wall-clock reading.
package engine

import (
	"errors"
	"io"
	"time"

	"git.lost.host/meutraa/encore/internal/clock"
	"git.lost.host/meutraa/encore/internal/game"
	"github.com/sirupsen/logrus"
)

type Session struct {
	cfg   Config
	rules Rules
	clock *clock.Clock

	audio  AudioController
	wallet Wallet
	log    logrus.FieldLogger

	notes  []game.Note
	inputs []game.Input
	state  State

	now      time.Duration
	events   Event
	warnings []error
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// NewSession reads the song once and seeds the rule set. A nil audio
// controller or wallet is replaced by one that does nothing.
func NewSession(
	cfg Config,
	rules Rules,
	song SongProvider,
	audio AudioController,
	wallet Wallet,
	log logrus.FieldLogger,
) (*Session, error) {
	if nil == rules {
		return nil, errors.New("session needs a rule set")
	}
	if nil == song {
		return nil, errors.New("session needs a song")
	}
	if nil == audio {
		audio = silentAudio{}
	}
	if nil == wallet {
		wallet = nopWallet{}
	}
	if nil == log {
		log = discardLogger()
	}
	if cfg.MissWindow <= 0 {
		cfg.MissWindow = DefaultConfig().MissWindow
	}

	s := &Session{
		cfg:    cfg,
		rules:  rules,
		clock:  clock.New(cfg.Countdown),
		audio:  audio,
		wallet: wallet,
		log:    log.WithField("mode", rules.Mode()),
		notes:  song.Templates(),
	}
	for i := range s.notes {
		s.notes[i].Active = true
		s.notes[i].Verdict = game.Pending
	}
	s.state.Phase = PhaseCountdown
	s.state.TotalNotes = len(s.notes)
	s.state.Remaining = len(s.notes)
	rules.Setup(&s.state)

	s.log.WithField("notes", len(s.notes)).Info("session created")

	// An empty song, or a fighter that starts dead, finishes right away
	s.resolve()
	return s, nil
}

// Tick advances the clock, retires notes that scrolled past the line and
// checks the outcome. Call it once per frame.
func (s *Session) Tick(now time.Duration) {
	if s.state.Phase == PhaseFinished {
		return
	}
	s.now = now

	if s.clock.Tick(now) {
		s.state.Phase = PhaseActive
		s.events |= EventCountdownElapsed
		s.log.Info("countdown elapsed")
		s.warn(s.audio.OnCountdownElapsed(), "unable to start audio")
	}

	if s.state.FeedbackTicks > 0 {
		s.state.FeedbackTicks--
		if s.state.FeedbackTicks == 0 {
			s.state.Feedback = ""
		}
	}

	if s.detectMisses(s.clock.Elapsed(now)) {
		return
	}
	s.resolve()
}

// HandleInput judges a press on lane. Presses on unknown lanes, during the
// countdown or after the finish are ignored.
func (s *Session) HandleInput(lane game.Lane, now time.Duration) {
	if !lane.Valid() {
		s.log.WithField("lane", lane).Debug("ignoring press on unknown lane")
		return
	}
	if s.state.Phase != PhaseActive {
		return
	}
	s.now = now

	t := s.clock.Elapsed(now) - s.cfg.InputOffset
	s.inputs = append(s.inputs, game.Input{Lane: lane, HitTime: t})

	if note := s.candidate(lane, t); nil != note {
		s.hit(note, t)
	} else {
		s.emptyPress(lane, t)
	}
	s.resolve()
}

// Abort ends the session on the host's request. No reward is paid.
func (s *Session) Abort(now time.Duration) {
	if s.state.Phase == PhaseFinished {
		return
	}
	s.now = now
	s.finish(Aborted, ReasonQuit)
}

func (s *Session) IsFinished() bool {
	return s.state.Phase == PhaseFinished
}

func (s *Session) Outcome() Outcome {
	return s.state.Outcome
}

func (s *Session) Mode() Mode {
	return s.rules.Mode()
}

// Events returns the flags raised since the last call and clears them
func (s *Session) Events() Event {
	e := s.events
	s.events = 0
	return e
}

// Warnings are collaborator failures the host should report
func (s *Session) Warnings() []error {
	return append([]error(nil), s.warnings...)
}

// Notes is a copy of the runtime chart, for drawing
func (s *Session) Notes() []game.Note {
	return append([]game.Note(nil), s.notes...)
}

// Inputs is every judged press in order, for the session ledger
func (s *Session) Inputs() []game.Input {
	return append([]game.Input(nil), s.inputs...)
}

// Elapsed is the performance time at the last observed frame
func (s *Session) Elapsed() time.Duration {
	return s.clock.Elapsed(s.now)
}

func (s *Session) warn(err error, msg string) {
	if nil == err {
		return
	}
	s.log.WithError(err).Warn(msg)
	s.warnings = append(s.warnings, err)
}
