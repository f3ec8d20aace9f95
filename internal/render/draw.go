package render

import (
	"fmt"

	"git.lost.host/meutraa/encore/internal/engine"
	"git.lost.host/meutraa/encore/internal/game"
	"git.lost.host/meutraa/encore/internal/score"
)

// Draw renders the lanes, the notes still in play and the side panel.
// A negative balance is not shown.
func (r *DefaultRenderer) Draw(l Layout, snap engine.Snapshot, notes []game.Note, balance int) {
	th := r.Theme

	for i := 0; i < game.NLanes; i++ {
		r.Fill(l.HitRow, l.Columns[i], th.RenderHitField(game.Lane(i)))
	}

	for _, note := range notes {
		if !note.Active {
			continue
		}
		col := l.Columns[note.Lane]
		head := l.Row(note.Time, snap.Elapsed)
		if note.Duration > 0 {
			for row := l.Row(note.End(), snap.Elapsed); row < head; row++ {
				if l.Visible(row) {
					r.Fill(row, col, th.RenderHold(note.Lane))
				}
			}
		}
		if l.Visible(head) {
			r.Fill(head, col, th.RenderNote(note.Lane, note.Denom))
		}
	}

	if snap.Feedback != "" {
		r.Fill(l.HitRow+2, l.Columns[1], th.RenderFeedback(snap.Feedback))
	}
	if snap.Phase == engine.PhaseCountdown && snap.Countdown > 0 {
		r.Fill(l.Rows/2, l.Cols/2, fmt.Sprintf("\033[1m%d\033[0m", snap.Countdown))
	}

	for i, line := range panel(snap, balance, th.RenderBar) {
		r.Fill(4+i, l.SideCol, line)
	}
}

// panel is the side text, one entry per row
func panel(snap engine.Snapshot, balance int, bar func(value, max, width int) string) []string {
	lines := []string{}
	if snap.Mode == engine.Combat {
		lines = append(lines,
			fmt.Sprintf("     Player:  %6v", snap.PlayerHealth),
			fmt.Sprintf("       Boss:  %6v %v", snap.TargetHealth, bar(snap.TargetHealth, snap.TargetMaxHealth, 20)),
		)
	} else {
		lines = append(lines,
			fmt.Sprintf("      Score:  %6v", snap.Score),
			fmt.Sprintf("       Hype:  %6v %v", snap.Hype, bar(snap.Hype, engine.MaxHype, 20)),
		)
	}
	lines = append(lines,
		fmt.Sprintf("      Combo:  %6v  x%.1f", snap.Combo, snap.Multiplier),
		fmt.Sprintf("  Max Combo:  %6v", snap.MaxCombo),
		"",
		fmt.Sprintf("       Mean:  %6.2f ms", snap.Mean),
		fmt.Sprintf("      Stdev:  %6.2f ms", snap.Stdev),
		fmt.Sprintf("      Notes:  %6v", snap.TotalNotes),
		"",
	)
	for i, j := range score.Judgements {
		lines = append(lines, fmt.Sprintf("%10s:  %6v", j.Name, snap.Counts[i]))
	}
	lines = append(lines,
		fmt.Sprintf("%10s:  %6v", score.Miss, snap.Counts[score.Miss]),
		fmt.Sprintf("%10s:  %6v", "EMPTY", snap.EmptyPresses),
	)
	if snap.Phase == engine.PhaseFinished {
		lines = append(lines,
			"",
			fmt.Sprintf("    Outcome:  %v %v", snap.Outcome, snap.Reason),
			fmt.Sprintf("       Cash:  %6v", snap.CashEarned),
		)
		if balance >= 0 {
			lines = append(lines, fmt.Sprintf("     Wallet:  %6v", balance))
		}
	}
	return lines
}
