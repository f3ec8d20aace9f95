package render

import (
	"math"
	"time"

	"git.lost.host/meutraa/encore/internal/game"
)

// Layout places lanes and converts time to rows. The engine owns timing;
// this is only where things are drawn.
type Layout struct {
	Rows, Cols    int
	HitRow        int
	Columns       [game.NLanes]int
	SideCol       int
	RowsPerSecond float64
}

func NewLayout(rows, cols int, barRow, spacing uint, rowsPerSecond float64) Layout {
	mc := cols >> 1
	sp := int(spacing)
	l := Layout{
		Rows:          rows,
		Cols:          cols,
		HitRow:        rows - int(barRow),
		RowsPerSecond: rowsPerSecond,
		Columns: [game.NLanes]int{
			mc - sp*3,
			mc - sp,
			mc + sp,
			mc + sp*3,
		},
	}
	l.SideCol = l.Columns[0] - 36
	if l.SideCol < 2 {
		l.SideCol = 2
	}
	return l
}

// Row is where a note due at t sits when the performance is at elapsed.
// Notes above the line are still to come.
func (l Layout) Row(t, elapsed time.Duration) int {
	ahead := (t - elapsed).Seconds()
	return l.HitRow - int(math.Round(ahead*l.RowsPerSecond))
}

// Visible reports whether row is on screen
func (l Layout) Visible(row int) bool {
	return row > 0 && row <= l.Rows
}
