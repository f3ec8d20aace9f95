package score

// Summary is the final state of a session the reward is computed from
type Summary struct {
	Score       int
	Hype        int
	Victory     bool
	PlayerLevel int
	TotalMisses int
	TotalNotes  int
}

const (
	concertCashPer   = 250
	concertCashCap   = 100
	concertHypeBonus = 20
	concertHypeBar   = 90
	combatCashBase   = 250
)

// ConcertReward pays for the score, capped, plus a bonus for a roaring crowd
func ConcertReward(s Summary) int {
	score := s.Score
	if score < 0 {
		score = 0
	}
	cash := score / concertCashPer
	if cash > concertCashCap {
		cash = concertCashCap
	}
	if s.Hype > concertHypeBar {
		cash += concertHypeBonus
	}
	return cash
}

// CombatReward pays only for a victory, scaled by level, with a fifth on top
// for a flawless run
func CombatReward(s Summary) int {
	if !s.Victory {
		return 0
	}
	if s.PlayerLevel < 0 {
		return 0
	}
	base := combatCashBase * (s.PlayerLevel + 1)
	if s.TotalMisses == 0 && s.TotalNotes > 0 {
		return base + base/5
	}
	return base
}
