package states

import (
	"time"

	"github.com/rs/zerolog"
)

// NoWinner marks a drawn or unfinished game
const NoWinner = -1

// GameContext provides game-specific information to states for making decisions
type GameContext struct {
	// GameID uniquely identifies this game instance
	GameID string

	// Logger for state-specific logging
	Logger zerolog.Logger

	// PlayerCount is the number of seated players; a game needs exactly two
	PlayerCount int

	// StartTime is when PhaseInProgress was entered
	StartTime time.Time

	// EndTime is when a terminal phase was entered
	EndTime time.Time

	// Winner is the player ID of the winner, NoWinner on a draw
	Winner int

	// Scores holds the final store counts once the game is over
	Scores [2]int

	// Error holds the cause of a transition to PhaseError
	Error error
}

// NewGameContext creates a new game context
func NewGameContext(gameID string, logger zerolog.Logger) *GameContext {
	return &GameContext{
		GameID: gameID,
		Logger: logger.With().Str("game_id", gameID).Logger(),
		Winner: NoWinner,
	}
}

// IsReady returns true if both seats are filled
func (gc *GameContext) IsReady() bool {
	return gc.PlayerCount == 2
}

// GetElapsedTime returns the play time so far, or the total once the game has ended
func (gc *GameContext) GetElapsedTime() time.Duration {
	if gc.StartTime.IsZero() {
		return 0
	}
	if !gc.EndTime.IsZero() {
		return gc.EndTime.Sub(gc.StartTime)
	}
	return time.Since(gc.StartTime)
}
