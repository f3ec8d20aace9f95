package render

import (
	"time"

	"git.lost.host/meutraa/encore/internal/engine"
	"git.lost.host/meutraa/encore/internal/game"
)

type Renderer interface {
	Init() error
	Deinit() error
	Size() (rows, cols int)
	AddDecoration(col, row int, content string, frames int)
	RenderLoop(framePeriod time.Duration, render func(now time.Duration) bool)
	Fill(row, column int, message string)
	Clear()
	Draw(layout Layout, snap engine.Snapshot, notes []game.Note, balance int)
}
