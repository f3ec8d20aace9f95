package theme

import (
	"fmt"
	"strings"

	"git.lost.host/meutraa/encore/internal/game"
)

type Color struct {
	R, G, B uint8
}

type DefaultTheme struct {
}

func paint(c Color, s string) string {
	return fmt.Sprintf("\033[38;2;%v;%v;%vm%v\033[0m", c.R, c.G, c.B, s)
}

func (t *DefaultTheme) RenderNote(lane game.Lane, denom int) string {
	return paint(getNoteColor(denom), syms[lane%game.NLanes])
}

func (t *DefaultTheme) RenderHold(lane game.Lane) string {
	return paint(laneColors[lane%game.NLanes], holdSym)
}

func (t *DefaultTheme) RenderHitField(lane game.Lane) string {
	return paint(laneColors[lane%game.NLanes], barSyms[lane%game.NLanes])
}

func (t *DefaultTheme) RenderFeedback(label string) string {
	col, ok := feedbackColors[label]
	if !ok {
		col = noteColors[-1]
	}
	return "\033[1m" + paint(col, label)
}

// RenderBar draws a gauge width cells wide
func (t *DefaultTheme) RenderBar(value, max, width int) string {
	if max <= 0 || width <= 0 {
		return ""
	}
	if value < 0 {
		value = 0
	} else if value > max {
		value = max
	}
	filled := value * width / max
	col := Color{0, 236, 128}
	if value*4 < max {
		col = Color{236, 30, 0}
	} else if value*2 < max {
		col = Color{236, 195, 0}
	}
	return paint(col, strings.Repeat("█", filled)) + strings.Repeat("░", width-filled)
}

const (
	holdSym = "┃"
)

var (
	syms       = [...]string{"◀", "▼", "▲", "▶"}
	barSyms    = [...]string{"◁", "▽", "△", "▷"}
	laneColors = [...]Color{
		{236, 30, 0},
		{0, 118, 236},
		{0, 236, 128},
		{236, 195, 0},
	}
	noteColors = map[int]Color{
		1:  {236, 30, 0},    // 1/4 red
		2:  {0, 118, 236},   // 1/8 blue
		3:  {106, 0, 236},   // 1/12 purple
		4:  {236, 195, 0},   // 1/16 yellow
		6:  {236, 0, 106},   // 1/24 pink
		8:  {236, 128, 0},   // 1/32 orange
		12: {173, 236, 236}, // 1/48 light blue
		16: {0, 236, 128},   // 1/64 green
		48: {110, 147, 89},  // 1/192 olive
		-1: {255, 255, 255}, // other white
	}
	feedbackColors = map[string]Color{
		"PERFECT":   {173, 236, 236},
		"EXCELLENT": {0, 236, 128},
		"GOOD":      {236, 195, 0},
		"OK":        {236, 128, 0},
		"LATE":      {236, 0, 106},
		"EARLY":     {236, 0, 106},
		"MISS":      {236, 30, 0},
	}
)

func getNoteColor(d int) Color {
	col, ok := noteColors[d]
	if !ok {
		return noteColors[-1]
	}
	return col
}
