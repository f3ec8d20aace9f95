package store

import (
	"time"

	"git.lost.host/meutraa/encore/internal/game"
)

// InputsCompact holds every press on one lane
type InputsCompact struct {
	Lane  game.Lane
	Times []time.Duration
}

func compactInputs(inputs []game.Input) []InputsCompact {
	colCount := 0
	for _, i := range inputs {
		if int(i.Lane)+1 > colCount {
			colCount = int(i.Lane) + 1
		}
	}
	ins := make([]InputsCompact, colCount)
	for c := range ins {
		ins[c].Lane = game.Lane(c)
	}
	for _, i := range inputs {
		ins[i.Lane].Times = append(ins[i.Lane].Times, i.HitTime)
	}
	return ins
}

func uncompactInputs(inputs []InputsCompact) []game.Input {
	ins := []game.Input{}
	for _, i := range inputs {
		for _, t := range i.Times {
			ins = append(ins, game.Input{Lane: i.Lane, HitTime: t})
		}
	}
	return ins
}
