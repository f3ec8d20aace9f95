package engine

// Event flags accumulate between calls to Session.Events
type Event uint8

const (
	EventCountdownElapsed Event = 1 << iota
	EventNoteHit
	EventNoteMissed
	EventEmptyPress
	EventFinished
)

func (e Event) Has(flag Event) bool {
	return e&flag != 0
}
