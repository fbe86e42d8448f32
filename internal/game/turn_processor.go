package game

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/ayo/internal/game/core"
	"github.com/mitchelldurbincs/ayo/internal/game/events"
)

// TurnProcessor handles the orchestration of a single turn
type TurnProcessor struct {
	engine *Engine
	logger zerolog.Logger
}

// NewTurnProcessor creates a new turn processor
func NewTurnProcessor(engine *Engine) *TurnProcessor {
	return &TurnProcessor{
		engine: engine,
		logger: engine.logger,
	}
}

// ProcessTurn executes one turn. selector overrides the current player's
// own selector when non-nil.
func (tp *TurnProcessor) ProcessTurn(ctx context.Context, selector MoveSelector) (*core.MoveResult, error) {
	if err := tp.checkContext(ctx, "before starting"); err != nil {
		return nil, err
	}

	if err := tp.validateGameState(); err != nil {
		return nil, err
	}

	e := tp.engine
	turn := e.gs.Turn + 1
	turnLogger := tp.logger.With().Int("turn", turn).Logger()

	if e.checkGameOver(turnLogger) {
		return nil, nil
	}

	mover := e.gs.CurrentPlayer()
	turnLogger.Debug().Int("player_id", mover.ID).Msg("Starting turn")
	turnStartTime := time.Now()
	tp.publishTurnStarted(turn, mover.ID)

	if selector == nil {
		selector = e.selectors[mover.ID]
	}

	pit, err := selector.SelectPit(ctx, tp.buildView(turn))
	if err != nil {
		wrapped := core.WrapGameStateError(turn, "select move", core.WrapPlayerError(mover.ID, "select pit", err))
		turnLogger.Warn().Err(wrapped).Msg("No move selected, aborting game")
		e.abort(wrapped)
		return nil, wrapped
	}

	// Once a pit is chosen the turn runs to completion.
	result, err := e.actionProcessor.ProcessAction(context.WithoutCancel(ctx), e.gs.Board,
		&e.gs.Players[mover.ID], &core.SowAction{PlayerID: mover.ID, Pit: pit}, turn)
	if err != nil {
		return nil, core.WrapGameStateError(turn, "apply move", err)
	}

	tp.processEndOfTurnPhase(result, turnLogger)
	tp.publishTurnEnded(turn, mover.ID, turnStartTime)

	e.checkGameOver(turnLogger)
	return result, nil
}

// checkContext checks if the context is cancelled
func (tp *TurnProcessor) checkContext(ctx context.Context, phase string) error {
	select {
	case <-ctx.Done():
		tp.logger.Warn().
			Err(ctx.Err()).
			Int("turn", tp.engine.gs.Turn).
			Str("phase", phase).
			Msg("Game step cancelled or timed out")
		return ctx.Err()
	default:
		return nil
	}
}

// validateGameState ensures the game can receive moves
func (tp *TurnProcessor) validateGameState() error {
	currentPhase := tp.engine.stateMachine.CurrentPhase()
	if currentPhase.CanReceiveActions() {
		return nil
	}
	tp.logger.Warn().
		Str("current_phase", currentPhase.String()).
		Int("turn", tp.engine.gs.Turn).
		Msg("Attempted to step game in phase that cannot receive moves")
	if currentPhase.IsTerminal() {
		return core.WrapGameStateError(tp.engine.gs.Turn, currentPhase.String(), core.ErrGameOver)
	}
	return fmt.Errorf("game is in %s phase and cannot receive moves", currentPhase)
}

func (tp *TurnProcessor) buildView(turn int) TurnView {
	gs := tp.engine.gs
	return TurnView{
		Turn:     turn,
		Board:    gs.Board.DeepCopy(),
		Player:   gs.CurrentPlayer(),
		Opponent: gs.Opponent(),
		Legal:    tp.engine.LegalMoves(),
	}
}

// processEndOfTurnPhase records the move and hands the turn over
func (tp *TurnProcessor) processEndOfTurnPhase(result *core.MoveResult, turnLogger zerolog.Logger) {
	e := tp.engine
	e.gs.Turn++
	e.updatePlayerStats(result)
	e.gs.Current = 1 - e.gs.Current
	e.checkConservation()

	turnLogger.Debug().
		Int("pit", result.Pit).
		Int("landing", result.Landing).
		Int("captured", result.Captured).
		Str("board", e.gs.Board.String()).
		Msg("Turn finished")
}

func (tp *TurnProcessor) publishTurnStarted(turn, playerID int) {
	tp.engine.eventBus.Publish(events.NewTurnStartedEvent(tp.engine.gameID, turn, playerID))
}

func (tp *TurnProcessor) publishTurnEnded(turn, playerID int, startTime time.Time) {
	tp.engine.eventBus.Publish(events.NewTurnEndedEvent(
		tp.engine.gameID,
		turn,
		playerID,
		time.Since(startTime),
	))
}
