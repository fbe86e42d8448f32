package processor

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/ayo/internal/game/core"
	"github.com/mitchelldurbincs/ayo/internal/game/events"
)

// ActionProcessor applies one player action per turn to the board, credits
// captures and publishes the outcome.
type ActionProcessor struct {
	logger    zerolog.Logger
	gameID    string
	publisher events.Publisher
}

// NewActionProcessor creates a new action processor. publisher may be nil.
func NewActionProcessor(logger zerolog.Logger, gameID string, publisher events.Publisher) *ActionProcessor {
	return &ActionProcessor{
		logger:    logger.With().Str("component", "ActionProcessor").Logger(),
		gameID:    gameID,
		publisher: publisher,
	}
}

// ProcessAction validates and applies action on behalf of player. On error the
// board is left untouched and the returned error carries the action context.
func (ap *ActionProcessor) ProcessAction(ctx context.Context, board *core.Board, player PlayerInfo, action core.Action, turn int) (*core.MoveResult, error) {
	select {
	case <-ctx.Done():
		ap.logger.Warn().Err(ctx.Err()).Msg("Action processing interrupted by context cancellation")
		return nil, ctx.Err()
	default:
	}

	if action == nil || action.GetPlayerID() != player.GetID() {
		return nil, core.WrapActionError(action, core.ErrInvalidPlayer)
	}

	switch act := action.(type) {
	case *core.SowAction:
		ap.logger.Debug().
			Int("player_id", act.PlayerID).
			Int("pit", act.Pit).
			Int("turn", turn).
			Msg("Applying sow action")

		result, err := core.ApplySowAction(board, act, player.GetSide())
		if err != nil {
			wrappedErr := core.WrapActionError(act, err)
			ap.logger.Debug().Err(wrappedErr).Msg("Rejected sow action")
			ap.publish(events.NewMoveRejectedEvent(ap.gameID, act.PlayerID, act.Pit, err.Error(), turn))
			return nil, wrappedErr
		}

		ap.publish(events.NewMoveExecutedEvent(ap.gameID, act.PlayerID, act.Pit,
			result.Source, result.Landing, result.Sown, board.String(), turn))

		if result.Captured > 0 {
			score := player.AddScore(result.Captured)
			ap.logger.Debug().
				Int("player_id", act.PlayerID).
				Ints("pits", result.CapturedPits).
				Int("captured", result.Captured).
				Int("score", score).
				Msg("Move resulted in capture")
			ap.publish(events.NewSeedsCapturedEvent(ap.gameID, act.PlayerID,
				result.CapturedPits, result.Captured, score, turn))
		}
		return result, nil
	default:
		ap.logger.Warn().
			Int("player_id", action.GetPlayerID()).
			Str("action_type", core.GetActionType(action)).
			Msg("Unhandled action type in ProcessAction")
		return nil, core.WrapActionError(action, core.ErrInvalidPit)
	}
}

func (ap *ActionProcessor) publish(e events.Event) {
	if ap.publisher != nil {
		ap.publisher.Publish(e)
	}
}

// PlayerInfo interface - matches the Player struct from game package
// This avoids circular imports
type PlayerInfo interface {
	GetID() int
	GetSide() core.Side
	AddScore(n int) int
}
