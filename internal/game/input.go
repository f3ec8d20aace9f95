package game

import "time"

// Input is a single lane press, timed against the performance clock
type Input struct {
	Lane    Lane
	HitTime time.Duration
}
