package engine

import (
	"git.lost.host/meutraa/encore/internal/score"
)

const (
	combatPassDamage = 10
	combatPassHeal   = 5
	combatMissDamage = 3
)

// CombatRules trades damage with a boss. Health lives in the StatsProvider;
// the session keeps a clamped copy and writes it back after every change.
type CombatRules struct {
	stats StatsProvider
}

func NewCombatRules(stats StatsProvider) *CombatRules {
	return &CombatRules{stats: stats}
}

func (r *CombatRules) Mode() Mode {
	return Combat
}

func (r *CombatRules) Setup(st *State) {
	st.TargetMaxHealth = floor0(r.stats.TargetMaxHealth())
	st.PlayerHealth = floor0(r.stats.PlayerHealth())
	st.TargetHealth = clamp(r.stats.TargetHealth(), 0, st.TargetMaxHealth)
	r.sync(st)
}

func (r *CombatRules) sync(st *State) {
	r.stats.SetPlayerHealth(st.PlayerHealth)
	r.stats.SetTargetHealth(st.TargetHealth)
}

func (r *CombatRules) ApplyHit(st *State, j *score.Judgement, d int64) {
	damage := score.CombatDamage(j.Damage, st.Combo.Count, r.stats.PlayerDrunkenness())
	st.TargetHealth = clamp(st.TargetHealth-damage, 0, st.TargetMaxHealth)
	r.sync(st)
}

func (r *CombatRules) ApplyEmptyPress(st *State) {
	st.PlayerHealth = floor0(st.PlayerHealth - combatMissDamage)
	r.sync(st)
}

// ApplyPassMiss hurts the player and lets the boss recover
func (r *CombatRules) ApplyPassMiss(st *State) {
	st.PlayerHealth = floor0(st.PlayerHealth - combatPassDamage)
	st.TargetHealth = clamp(st.TargetHealth+combatPassHeal, 0, st.TargetMaxHealth)
	r.sync(st)
}

func (r *CombatRules) Resolve(st *State) (Outcome, Reason, bool) {
	if st.PlayerHealth <= 0 {
		return Defeat, ReasonPlayerDown, true
	}
	if st.TargetHealth <= 0 {
		return Victory, ReasonTargetDown, true
	}
	if st.Remaining == 0 {
		return Defeat, ReasonTargetSurvived, true
	}
	return None, ReasonNone, false
}

func (r *CombatRules) Reward(st *State) int {
	return score.CombatReward(score.Summary{
		Victory:     st.Outcome == Victory,
		PlayerLevel: r.stats.PlayerLevel(),
		TotalMisses: st.TotalMisses,
		TotalNotes:  st.TotalNotes,
	})
}
