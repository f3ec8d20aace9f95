package config

import (
	"fmt"

	"git.lost.host/meutraa/encore/internal/game"
)

func errKeys(n int) error {
	return fmt.Errorf("expected %v lane keys, got %v", game.NLanes, n)
}
