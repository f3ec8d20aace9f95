// Package input turns key presses into lane events
package input

import (
	"github.com/eiannone/keyboard"
	"github.com/pkg/errors"

	"git.lost.host/meutraa/encore/internal/game"
)

// LaneMapper resolves a rune to a lane
type LaneMapper func(r rune) (game.Lane, bool)

type Event struct {
	Lane   game.Lane
	IsLane bool
	Quit   bool
	Err    error
}

// Translate maps a raw key event. Esc and Ctrl-C quit; runes that are not
// lane keys produce an empty event.
func Translate(ev keyboard.KeyEvent, lanes LaneMapper) Event {
	if nil != ev.Err {
		return Event{Err: ev.Err}
	}
	if ev.Key == keyboard.KeyEsc || ev.Key == keyboard.KeyCtrlC {
		return Event{Quit: true}
	}
	if ev.Rune == 0 {
		return Event{}
	}
	lane, ok := lanes(ev.Rune)
	return Event{Lane: lane, IsLane: ok}
}

type Keyboard struct {
	keys  <-chan keyboard.KeyEvent
	lanes LaneMapper
}

func Open(lanes LaneMapper) (*Keyboard, error) {
	keys, err := keyboard.GetKeys(128)
	if nil != err {
		return nil, errors.Wrap(err, "unable to open keyboard")
	}
	return &Keyboard{keys: keys, lanes: lanes}, nil
}

// Poll drains the key presses that occured so far without blocking
func (k *Keyboard) Poll() []Event {
	return drain(k.keys, k.lanes)
}

func drain(keys <-chan keyboard.KeyEvent, lanes LaneMapper) []Event {
	events := []Event{}
	for n := len(keys); n > 0; n-- {
		events = append(events, Translate(<-keys, lanes))
	}
	return events
}

// Wait blocks for the next key, used on the result screen
func (k *Keyboard) Wait() {
	<-k.keys
}

func (k *Keyboard) Close() error {
	return keyboard.Close()
}
