package engine

import (
	"git.lost.host/meutraa/encore/internal/game"
)

// SongProvider hands out the chart once, at session construction
type SongProvider interface {
	Templates() []game.Note
}

// AudioController starts playback when the countdown runs out and stops it
// when the session ends. The engine never asks it anything.
type AudioController interface {
	OnCountdownElapsed() error
	OnSessionEnd() error
}

// StatsProvider owns the fighters in combat mode
type StatsProvider interface {
	PlayerHealth() int
	TargetHealth() int
	TargetMaxHealth() int
	PlayerDrunkenness() int
	PlayerLevel() int

	SetPlayerHealth(int)
	SetTargetHealth(int)
}

// Wallet receives the reward exactly once per session
type Wallet interface {
	AddCurrency(amount int) error
}

type silentAudio struct{}

func (silentAudio) OnCountdownElapsed() error { return nil }
func (silentAudio) OnSessionEnd() error       { return nil }

type nopWallet struct{}

func (nopWallet) AddCurrency(int) error { return nil }
