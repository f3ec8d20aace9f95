package engine

import (
	"testing"
	"time"
)

func TestPassMissKillsPlayer(t *testing.T) {
	stats := &fighters{player: 10, target: 98, max: 100}
	wallet := &recordingWallet{}
	s := started(NewCombatRules(stats), lane0(3), nil, wallet)

	// Two notes pass in the same frame; the first one is fatal
	s.Tick(at(2*time.Second + 300*time.Millisecond))

	snap := s.Snapshot()
	if stats.player != 0 || snap.PlayerHealth != 0 {
		t.Fatalf("expected player health clamped to 0, got %v", stats.player)
	}
	if s.Outcome() != Defeat || snap.Reason != ReasonPlayerDown {
		t.Fatalf("expected defeat, got %v %v", s.Outcome(), snap.Reason)
	}
	if snap.TotalMisses != 1 {
		t.Errorf("judging should stop at the fatal miss, got %v misses", snap.TotalMisses)
	}
	if stats.target != 100 {
		t.Errorf("boss heal should be capped at max, got %v", stats.target)
	}
	if len(wallet.payments) != 1 || wallet.payments[0] != 0 {
		t.Errorf("defeat pays nothing, got %v", wallet.payments)
	}
}

func TestPassMissHealsBoss(t *testing.T) {
	stats := &fighters{player: 100, target: 50, max: 100}
	s := started(NewCombatRules(stats), lane0(3), nil, nil)
	s.Tick(at(1300 * time.Millisecond))
	if stats.player != 90 || stats.target != 55 {
		t.Errorf("expected 90/55, got %v/%v", stats.player, stats.target)
	}
}

func TestCombatEmptyPress(t *testing.T) {
	stats := &fighters{player: 100, target: 50, max: 100}
	s := started(NewCombatRules(stats), lane0(3), nil, nil)
	s.HandleInput(2, at(time.Second))
	if stats.player != 97 || stats.target != 50 {
		t.Errorf("expected 97/50, got %v/%v", stats.player, stats.target)
	}
}

func TestCombatDamageApplied(t *testing.T) {
	tests := []struct {
		name   string
		drunk  int
		offset time.Duration
		target int
	}{
		{"perfect sober", 0, 0, 93},
		{"good sober", 0, 120 * time.Millisecond, 96},
		{"perfect tipsy", 20, 0, 95},
		{"perfect wasted", 50, 0, 97},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			stats := &fighters{player: 100, target: 100, max: 100, drunk: test.drunk}
			s := started(NewCombatRules(stats), lane0(3), nil, nil)
			s.HandleInput(0, at(time.Second+test.offset))
			if stats.target != test.target {
				t.Errorf("expected target at %v, got %v", test.target, stats.target)
			}
		})
	}
}

func TestCombatVictory(t *testing.T) {
	tests := []struct {
		name   string
		miss   bool
		level  int
		reward int
	}{
		{"flawless", false, 0, 300},
		{"with a miss", true, 0, 250},
		{"veteran", false, 1, 600},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			stats := &fighters{player: 100, target: 14, max: 100, level: test.level}
			wallet := &recordingWallet{}
			s := started(NewCombatRules(stats), lane0(5), nil, wallet)

			first := 1
			if test.miss {
				s.Tick(at(1300 * time.Millisecond))
				first = 2
			}
			for i := first; i <= 5 && !s.IsFinished(); i++ {
				s.HandleInput(0, at(time.Duration(i)*time.Second))
			}
			if s.Outcome() != Victory {
				t.Fatalf("expected victory, got %v with boss at %v", s.Outcome(), stats.target)
			}
			if len(wallet.payments) != 1 || wallet.payments[0] != test.reward {
				t.Errorf("expected %v, got %v", test.reward, wallet.payments)
			}
		})
	}
}

func TestBossSurvives(t *testing.T) {
	stats := &fighters{player: 100, target: 100, max: 100}
	s := started(NewCombatRules(stats), lane0(2), nil, nil)
	s.HandleInput(0, at(time.Second))
	s.HandleInput(0, at(2*time.Second))
	if s.Outcome() != Defeat || s.Snapshot().Reason != ReasonTargetSurvived {
		t.Errorf("expected defeat with the boss standing, got %v %v", s.Outcome(), s.Snapshot().Reason)
	}
	if s.Snapshot().CashEarned != 0 {
		t.Error("defeat pays nothing")
	}
}

func TestPlayerDefeatCheckedFirst(t *testing.T) {
	stats := &fighters{player: 0, target: 0, max: 100}
	s, err := NewSession(testConfig(), NewCombatRules(stats), lane0(2), nil, nil, nil)
	if nil != err {
		t.Fatal(err)
	}
	if s.Outcome() != Defeat || s.Snapshot().Reason != ReasonPlayerDown {
		t.Errorf("player defeat must win over target defeat, got %v %v", s.Outcome(), s.Snapshot().Reason)
	}
}

func TestCombatHealthClamped(t *testing.T) {
	stats := &fighters{player: 100, target: 150, max: 100}
	s := started(NewCombatRules(stats), lane0(1), nil, nil)
	if snap := s.Snapshot(); snap.TargetHealth != 100 || stats.target != 100 {
		t.Errorf("target health should start clamped to max, got %v", snap.TargetHealth)
	}
	if s.Mode() != Combat {
		t.Errorf("expected combat mode, got %v", s.Mode())
	}
}
