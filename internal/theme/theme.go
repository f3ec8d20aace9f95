package theme

import "git.lost.host/meutraa/encore/internal/game"

type Theme interface {
	RenderNote(lane game.Lane, denom int) string
	RenderHold(lane game.Lane) string
	RenderHitField(lane game.Lane) string
	RenderFeedback(label string) string
	RenderBar(value, max, width int) string
}
