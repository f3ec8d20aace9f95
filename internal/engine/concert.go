package engine

import (
	"git.lost.host/meutraa/encore/internal/score"
)

const (
	DefaultHype = 50
	MaxHype     = 100

	concertPassScore = 50
	concertPassHype  = 8
	concertMissScore = 20
	concertMissHype  = 5
)

// ConcertRules scores points and keeps the crowd hyped
type ConcertRules struct {
	InitialHype int
}

func NewConcertRules() *ConcertRules {
	return &ConcertRules{InitialHype: DefaultHype}
}

func (r *ConcertRules) Mode() Mode {
	return Concert
}

func (r *ConcertRules) Setup(st *State) {
	st.Hype = clamp(r.InitialHype, 0, MaxHype)
}

func (r *ConcertRules) ApplyHit(st *State, j *score.Judgement, d int64) {
	st.Score += int(score.ConcertPoints(j.Points(d), st.Combo.Count))
	st.Hype = clamp(st.Hype+j.Hype, 0, MaxHype)
}

func (r *ConcertRules) ApplyEmptyPress(st *State) {
	st.Score = floor0(st.Score - concertMissScore)
	st.Hype = clamp(st.Hype-concertMissHype, 0, MaxHype)
}

func (r *ConcertRules) ApplyPassMiss(st *State) {
	st.Score = floor0(st.Score - concertPassScore)
	st.Hype = clamp(st.Hype-concertPassHype, 0, MaxHype)
}

func (r *ConcertRules) Resolve(st *State) (Outcome, Reason, bool) {
	if st.Hype <= 0 {
		return Defeat, ReasonHypeDepleted, true
	}
	if st.Remaining == 0 {
		return Completed, ReasonSongComplete, true
	}
	return None, ReasonNone, false
}

// Reward still pays out after the crowd is lost
func (r *ConcertRules) Reward(st *State) int {
	return score.ConcertReward(score.Summary{
		Score: st.Score,
		Hype:  st.Hype,
	})
}
