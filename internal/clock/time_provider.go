package clock

import "time"

// TimeProvider hands the host loop monotonic wall-clock readings
type TimeProvider interface {
	Now() time.Duration
}

// WallProvider measures from the moment it was created
type WallProvider struct {
	epoch time.Time
}

func NewWallProvider() *WallProvider {
	return &WallProvider{epoch: time.Now()}
}

func (p *WallProvider) Now() time.Duration {
	return time.Since(p.epoch)
}
