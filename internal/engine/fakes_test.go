package engine

import (
	"errors"
	"time"

	"git.lost.host/meutraa/encore/internal/game"
)

type fixedSong []game.Note

func (s fixedSong) Templates() []game.Note {
	return append([]game.Note(nil), s...)
}

// lane0 places one note per second on lane 0, starting at 1s
func lane0(n int) fixedSong {
	song := make(fixedSong, n)
	for i := range song {
		song[i] = game.Note{Lane: 0, Time: time.Duration(i+1) * time.Second}
	}
	return song
}

var errFake = errors.New("device gone")

type recordingAudio struct {
	started, stopped int
	err              error
}

func (a *recordingAudio) OnCountdownElapsed() error {
	a.started++
	return a.err
}

func (a *recordingAudio) OnSessionEnd() error {
	a.stopped++
	return a.err
}

type recordingWallet struct {
	payments []int
	fail     bool
}

func (w *recordingWallet) AddCurrency(amount int) error {
	w.payments = append(w.payments, amount)
	if w.fail {
		return errors.New("wallet offline")
	}
	return nil
}

type fighters struct {
	player, target, max int
	drunk, level        int
}

func (f *fighters) PlayerHealth() int      { return f.player }
func (f *fighters) TargetHealth() int      { return f.target }
func (f *fighters) TargetMaxHealth() int   { return f.max }
func (f *fighters) PlayerDrunkenness() int { return f.drunk }
func (f *fighters) PlayerLevel() int       { return f.level }
func (f *fighters) SetPlayerHealth(v int)  { f.player = v }
func (f *fighters) SetTargetHealth(v int)  { f.target = v }

const countdown = time.Second

// at converts performance time into the host reading used by the tests
func at(performance time.Duration) time.Duration {
	return countdown + performance
}

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Countdown = countdown
	return cfg
}

// started builds a session and runs it through the countdown
func started(rules Rules, song SongProvider, audio AudioController, wallet Wallet) *Session {
	s, err := NewSession(testConfig(), rules, song, audio, wallet, nil)
	if nil != err {
		panic(err)
	}
	s.Tick(0)
	s.Tick(at(0))
	return s
}
