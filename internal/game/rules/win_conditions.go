package rules

import (
	"github.com/mitchelldurbincs/ayo/internal/game/core"
	"github.com/rs/zerolog"
)

// NoWinner is returned by DetermineWinner for a draw.
const NoWinner = -1

// WinConditionChecker handles game over detection and winner determination
type WinConditionChecker struct {
	logger zerolog.Logger
}

// NewWinConditionChecker creates a new win condition checker
func NewWinConditionChecker(logger zerolog.Logger) *WinConditionChecker {
	return &WinConditionChecker{
		logger: logger.With().Str("component", "WinConditionChecker").Logger(),
	}
}

// CheckGameOver reports whether the player about to move has no seeds on
// their side. The opponent's side is never consulted.
func (wc *WinConditionChecker) CheckGameOver(board *core.Board, mover core.Side) bool {
	gameOver := mover.IsEmpty(board)
	wc.logger.Debug().
		Str("mover_side", mover.String()).
		Int("mover_seeds", mover.Seeds(board)).
		Bool("is_game_over", gameOver).
		Msg("Game over check complete")
	return gameOver
}

// DetermineWinner returns the index of the player with the strictly highest
// score, or NoWinner on a tie. Seeds left on the board are not counted.
func (wc *WinConditionChecker) DetermineWinner(players []Player) int {
	winner := NoWinner
	best := -1
	tied := false
	for i, p := range players {
		switch score := p.GetScore(); {
		case score > best:
			best, winner, tied = score, i, false
		case score == best:
			tied = true
		}
	}
	if tied {
		wc.logger.Info().Int("score", best).Msg("Game drawn")
		return NoWinner
	}
	wc.logger.Info().Int("winner_player_id", winner).Int("score", best).Msg("Winner determined")
	return winner
}

// Player interface to avoid circular imports
type Player interface {
	GetID() int
	GetScore() int
}
