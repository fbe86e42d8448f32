package game

import "github.com/mitchelldurbincs/ayo/internal/game/core"

// PlayerStats accumulates per-player figures over a game.
type PlayerStats struct {
	Moves          int
	SeedsSown      int
	Captures       int // moves that captured at least one seed
	BiggestCapture int
	PitsCleared    int
}

// updatePlayerStats folds one applied move into the mover's statistics.
func (e *Engine) updatePlayerStats(result *core.MoveResult) {
	p := &e.gs.Players[result.PlayerID]
	p.Stats.Moves++
	p.Stats.SeedsSown += result.Sown
	if result.Captured > 0 {
		p.Stats.Captures++
		p.Stats.PitsCleared += len(result.CapturedPits)
		if result.Captured > p.Stats.BiggestCapture {
			p.Stats.BiggestCapture = result.Captured
		}
	}
}

// checkConservation logs when seeds on the board plus scores no longer match
// the total the game started with.
func (e *Engine) checkConservation() bool {
	total := e.gs.SeedTotal()
	if total != e.seedTotal {
		e.logger.Error().
			Int("turn", e.gs.Turn).
			Int("expected", e.seedTotal).
			Int("actual", total).
			Str("board", e.gs.Board.String()).
			Msg("Seed count changed during play")
		return false
	}
	return true
}
