package score

// Combo counts consecutive hits
type Combo struct {
	Count int
	Max   int
}

// Hit extends the streak and returns the new count
func (c *Combo) Hit() int {
	c.Count++
	if c.Count > c.Max {
		c.Max = c.Count
	}
	return c.Count
}

// Break resets the streak on any miss
func (c *Combo) Break() {
	c.Count = 0
}

// Concert: mult = 1 + floor(combo/10) * 0.5, kept as (2+step)/2
const concertStep = 10

// Combat: mult = 1 + floor(combo/5) * 0.2, kept as (5+step)/5
const combatStep = 5

func ConcertMultiplier(combo int) float64 {
	return 1 + float64(combo/concertStep)*0.5
}

func CombatMultiplier(combo int) float64 {
	return 1 + float64(combo/combatStep)*0.2
}

// ConcertPoints applies the combo multiplier to a base value in tenths
func ConcertPoints(tenths int64, combo int) int64 {
	step := int64(combo / concertStep)
	return tenths * (2 + step) / 20
}

// CombatDamage turns a tier's base damage into the damage dealt to the
// target. The order is fixed: combo multiplier, drunkenness penalty with a
// floor of 1, the heavy drinker bonus, and finally halving.
func CombatDamage(base, combo, drunkenness int) int {
	if drunkenness < 0 {
		drunkenness = 0
	}
	raw := base * (combatStep + combo/combatStep) / combatStep

	penalty := drunkenness * 20 / 100
	raw -= penalty
	if raw < 1 {
		raw = 1
	}
	if drunkenness >= 50 {
		raw = raw * 6 / 5
	}
	return raw / 2
}
