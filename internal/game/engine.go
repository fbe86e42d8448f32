package game

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/ayo/internal/game/core"
	"github.com/mitchelldurbincs/ayo/internal/game/events"
	"github.com/mitchelldurbincs/ayo/internal/game/processor"
	"github.com/mitchelldurbincs/ayo/internal/game/rules"
	"github.com/mitchelldurbincs/ayo/internal/game/states"
)

// PlayerConfig seats one player.
type PlayerConfig struct {
	Name string
	IsAI bool
	// Selector plays this seat instead of the Human or AI selector
	Selector MoveSelector
}

// GameConfig holds configuration for creating a new game
type GameConfig struct {
	// GameID defaults to a random UUID
	GameID  string
	Logger  zerolog.Logger
	PlayerA PlayerConfig
	PlayerB PlayerConfig

	// Board and Scores set a starting position. A nil Board deals the
	// standard 4 seeds per pit.
	Board  *core.Board
	Scores [2]int

	// Human answers for every player without IsAI. It is required when any
	// seat is human.
	Human MoveSelector
	// AI overrides the greedy searcher for computer players.
	AI MoveSelector
	// AISeed seeds the searcher's fallback RNG; 0 seeds from the clock.
	AISeed uint64

	// EventBus is created when nil
	EventBus *events.EventBus
}

// Result is the outcome of a finished game
type Result struct {
	Scores    [2]int
	Winner    int // player index, or rules.NoWinner on a draw
	Turns     int
	SeedsLeft int // seeds still on the board; they are not awarded
	Duration  time.Duration
	Stats     [2]PlayerStats
}

// IsDraw reports whether both players finished level
func (r Result) IsDraw() bool { return r.Winner == rules.NoWinner }

// Engine drives one game: it owns the board and both players, asks the
// current player's MoveSelector for a pit, applies the move and alternates
// turns until the player to move has nothing to sow. An Engine is not safe
// for concurrent use.
type Engine struct {
	gs        *GameState
	logger    zerolog.Logger
	gameID    string
	seedTotal int
	result    *Result

	selectors       [2]MoveSelector
	actionProcessor *processor.ActionProcessor
	winCondition    *rules.WinConditionChecker
	legalMoves      *rules.LegalMoveCalculator
	eventBus        *events.EventBus
	stateMachine    *states.StateMachine
	turnProcessor   *TurnProcessor
}

// NewEngine creates a new game engine and deals the opening position
func NewEngine(ctx context.Context, cfg GameConfig) (*Engine, error) {
	return NewEngineInitializer(cfg).Initialize(ctx)
}

// Step plays one turn: the current player's selector is asked for a pit and
// the move is applied. It returns a nil result without error when the
// player to move has an empty side, which ends the game instead.
func (e *Engine) Step(ctx context.Context) (*core.MoveResult, error) {
	return e.turnProcessor.ProcessTurn(ctx, nil)
}

// ApplyMove plays pit (side-relative, 0-based) for the current player,
// bypassing the selector. An invalid pit leaves the game unchanged.
func (e *Engine) ApplyMove(ctx context.Context, pit int) (*core.MoveResult, error) {
	return e.turnProcessor.ProcessTurn(ctx, MoveSelectorFunc(func(context.Context, TurnView) (int, error) {
		return pit, nil
	}))
}

// Run steps until the game is over and returns the result
func (e *Engine) Run(ctx context.Context) (Result, error) {
	for !e.IsGameOver() {
		if _, err := e.Step(ctx); err != nil {
			return Result{}, err
		}
	}
	return *e.result, nil
}

// checkGameOver ends the game when the player to move has no seeds
func (e *Engine) checkGameOver(logger zerolog.Logger) bool {
	if e.stateMachine.CurrentPhase() != states.PhaseInProgress {
		return e.IsGameOver()
	}
	mover := e.gs.CurrentPlayer()
	if !e.winCondition.CheckGameOver(e.gs.Board, mover.Side) {
		return false
	}
	logger.Info().
		Int("player_id", mover.ID).
		Int("turn", e.gs.Turn).
		Msg("Player to move has no seeds, ending game")
	e.endGame(mover)
	return true
}

func (e *Engine) endGame(mover Player) {
	winner := e.winCondition.DetermineWinner([]rules.Player{&e.gs.Players[0], &e.gs.Players[1]})
	scores := [2]int{e.gs.Players[0].Score, e.gs.Players[1].Score}

	gc := e.stateMachine.GetContext()
	gc.Winner = winner
	gc.Scores = scores
	if err := e.stateMachine.TransitionTo(states.PhaseGameOver, mover.Name+" has no seeds to sow"); err != nil {
		e.logger.Error().Err(err).Msg("Failed to transition to GameOver state")
	}

	e.result = &Result{
		Scores:    scores,
		Winner:    winner,
		Turns:     e.gs.Turn,
		SeedsLeft: e.gs.Board.SeedsOnBoard(),
		Duration:  gc.GetElapsedTime(),
		Stats:     [2]PlayerStats{e.gs.Players[0].Stats, e.gs.Players[1].Stats},
	}

	e.eventBus.Publish(events.NewGameEndedEvent(
		e.gameID,
		winner,
		scores,
		e.result.SeedsLeft,
		e.result.Duration,
		e.gs.Turn,
	))
}

// abort moves the game to PhaseError; no further turns are played
func (e *Engine) abort(err error) {
	gc := e.stateMachine.GetContext()
	gc.Error = err
	if tErr := e.stateMachine.TransitionTo(states.PhaseError, err.Error()); tErr != nil {
		e.logger.Error().Err(tErr).Msg("Failed to transition to Error state")
	}
}

// Public accessors

func (e *Engine) GameID() string               { return e.gameID }
func (e *Engine) Phase() states.GamePhase      { return e.stateMachine.CurrentPhase() }
func (e *Engine) History() []states.Transition { return e.stateMachine.GetHistory() }
func (e *Engine) EventBus() *events.EventBus   { return e.eventBus }
func (e *Engine) IsGameOver() bool             { return e.Phase() == states.PhaseGameOver }
func (e *Engine) CurrentPlayer() Player        { return e.gs.CurrentPlayer() }
func (e *Engine) GameState() GameState         { return e.gs.Clone() }
func (e *Engine) LegalMoves() []int {
	return e.legalMoves.LegalPits(e.gs.Board, e.gs.CurrentPlayer().Side)
}

// Result returns the outcome once the game is over
func (e *Engine) Result() (Result, bool) {
	if e.result == nil {
		return Result{}, false
	}
	return *e.result, true
}
