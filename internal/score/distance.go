package score

import (
	"time"
)

func abs(x time.Duration) time.Duration {
	if x < 0 {
		return -x
	}
	return x
}

// Distance is the signed error of a hit against a note, positive when late
func Distance(noteTime, hitTime time.Duration) time.Duration {
	return hitTime - noteTime
}

// Millis truncates a distance to whole milliseconds; every window and
// formula works on integer milliseconds
func Millis(d time.Duration) int64 {
	return abs(d).Milliseconds()
}
