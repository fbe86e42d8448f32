package states

import (
	"errors"
	"fmt"
	"time"
)

// SetupState is the phase before the first seed is sown
type SetupState struct{}

func NewSetupState() State {
	return &SetupState{}
}

func (s *SetupState) Phase() GamePhase {
	return PhaseSetup
}

func (s *SetupState) Enter(ctx *GameContext) error {
	ctx.Logger.Debug().Msg("Entering Setup state")
	return nil
}

func (s *SetupState) Exit(ctx *GameContext) error {
	ctx.Logger.Debug().
		Int("player_count", ctx.PlayerCount).
		Msg("Setup complete")
	return nil
}

func (s *SetupState) Validate(ctx *GameContext) error {
	return nil
}

// InProgressState represents active play
type InProgressState struct{}

func NewInProgressState() State {
	return &InProgressState{}
}

func (s *InProgressState) Phase() GamePhase {
	return PhaseInProgress
}

func (s *InProgressState) Enter(ctx *GameContext) error {
	ctx.StartTime = time.Now()
	ctx.Logger.Info().
		Time("start_time", ctx.StartTime).
		Msg("Game started")
	return nil
}

func (s *InProgressState) Exit(ctx *GameContext) error {
	ctx.Logger.Debug().
		Dur("elapsed", ctx.GetElapsedTime()).
		Msg("Leaving in-progress state")
	return nil
}

func (s *InProgressState) Validate(ctx *GameContext) error {
	if !ctx.IsReady() {
		return fmt.Errorf("need exactly 2 players to start, have %d", ctx.PlayerCount)
	}
	return nil
}

// GameOverState is entered once the player to move has no seeds
type GameOverState struct{}

func NewGameOverState() State {
	return &GameOverState{}
}

func (s *GameOverState) Phase() GamePhase {
	return PhaseGameOver
}

func (s *GameOverState) Enter(ctx *GameContext) error {
	ctx.EndTime = time.Now()
	ctx.Logger.Info().
		Int("winner", ctx.Winner).
		Int("score_a", ctx.Scores[0]).
		Int("score_b", ctx.Scores[1]).
		Dur("duration", ctx.GetElapsedTime()).
		Msg("Game over")
	return nil
}

func (s *GameOverState) Exit(ctx *GameContext) error {
	return errors.New("cannot leave game over state")
}

func (s *GameOverState) Validate(ctx *GameContext) error {
	if ctx.Winner < NoWinner || ctx.Winner > 1 {
		return fmt.Errorf("invalid winner %d", ctx.Winner)
	}
	return nil
}

// ErrorState is entered when a game is abandoned before it finished
type ErrorState struct{}

func NewErrorState() State {
	return &ErrorState{}
}

func (s *ErrorState) Phase() GamePhase {
	return PhaseError
}

func (s *ErrorState) Enter(ctx *GameContext) error {
	ctx.EndTime = time.Now()
	ctx.Logger.Error().
		Err(ctx.Error).
		Msg("Game aborted")
	return nil
}

func (s *ErrorState) Exit(ctx *GameContext) error {
	return errors.New("cannot leave error state")
}

func (s *ErrorState) Validate(ctx *GameContext) error {
	if ctx.Error == nil {
		return errors.New("error state requires a cause")
	}
	return nil
}
