package score

import (
	"time"
)

type Tier uint8

const (
	Perfect Tier = iota
	Excellent
	Good
	OK
	Late
	Miss
)

// NTiers counts every tier including Miss
const NTiers = int(Miss) + 1

func (t Tier) String() string {
	switch t {
	case Perfect:
		return "PERFECT"
	case Excellent:
		return "EXCELLENT"
	case Good:
		return "GOOD"
	case OK:
		return "OK"
	case Late:
		return "LATE"
	}
	return "MISS"
}

// Judgement is one timing tier and what it is worth in each mode
type Judgement struct {
	Tier   Tier
	Name   string
	Ms     int64 // Widest distance, inclusive
	Hype   int
	Damage int

	// points in tenths, so that fractional slopes stay exact
	points func(d int64) int64
}

// Points is the concert base value for a hit d milliseconds off, in tenths
func (j *Judgement) Points(d int64) int64 {
	return j.points(d)
}

func max64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}

// MissWindow is the widest distance at which a note can be judged at all
const MissWindow = 250 * time.Millisecond

var Judgements = []Judgement{
	{Tier: Perfect, Name: "PERFECT", Ms: 50, Hype: 5, Damage: 15,
		points: func(d int64) int64 { return 3000 }},
	{Tier: Excellent, Name: "EXCELLENT", Ms: 100, Hype: 3, Damage: 12,
		points: func(d int64) int64 { return max64(1500, 3000-15*d) }},
	{Tier: Good, Name: "GOOD", Ms: 150, Hype: 2, Damage: 8,
		points: func(d int64) int64 { return max64(800, 2000-10*d) }},
	{Tier: OK, Name: "OK", Ms: 200, Hype: 1, Damage: 5,
		points: func(d int64) int64 { return max64(300, 1200-5*d) }},
	{Tier: Late, Name: "LATE", Ms: 250, Hype: 0, Damage: 2,
		points: func(d int64) int64 { return max64(50, 400-d) }},
}

// Judge finds the first tier, smallest first, that covers d milliseconds
func Judge(d int64) (int, *Judgement) {
	for i := range Judgements {
		if d <= Judgements[i].Ms {
			return i, &Judgements[i]
		}
	}
	// This should never happen, since a check against the miss window is made
	return -1, nil
}

// Label is the feedback text for a hit; the slowest tier reads LATE or
// EARLY depending on which side of the note the press landed.
func Label(j *Judgement, distance time.Duration) string {
	if j == nil {
		return "MISS"
	}
	if j.Tier != Late {
		return j.Name
	}
	if distance > 0 {
		return "LATE"
	}
	return "EARLY"
}
