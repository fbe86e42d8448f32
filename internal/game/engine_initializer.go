package game

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/ayo/internal/game/ai"
	"github.com/mitchelldurbincs/ayo/internal/game/core"
	"github.com/mitchelldurbincs/ayo/internal/game/events"
	"github.com/mitchelldurbincs/ayo/internal/game/processor"
	"github.com/mitchelldurbincs/ayo/internal/game/rules"
	"github.com/mitchelldurbincs/ayo/internal/game/states"
)

// EngineInitializer handles the initialization of a game engine
type EngineInitializer struct {
	config GameConfig
	logger zerolog.Logger
}

// NewEngineInitializer creates a new engine initializer
func NewEngineInitializer(cfg GameConfig) *EngineInitializer {
	return &EngineInitializer{
		config: cfg,
		logger: cfg.Logger.With().Str("component", "GameEngine").Logger(),
	}
}

// Initialize creates and initializes a new game engine
func (ei *EngineInitializer) Initialize(ctx context.Context) (*Engine, error) {
	select {
	case <-ctx.Done():
		ei.logger.Error().Err(ctx.Err()).Msg("Engine creation cancelled before start")
		return nil, ctx.Err()
	default:
	}

	ei.setupDefaults()

	if err := ei.validate(); err != nil {
		return nil, err
	}

	board := core.NewBoard()
	if ei.config.Board != nil {
		board = ei.config.Board.DeepCopy()
	}

	gs := ei.initializeGameState(board)
	engine := ei.createEngine(gs)

	if err := ei.initializeStateMachine(engine); err != nil {
		return nil, fmt.Errorf("state machine initialization failed: %w", err)
	}

	engine.eventBus.Publish(events.NewGameStartedEvent(
		engine.gameID,
		[2]string{gs.Players[0].Name, gs.Players[1].Name},
		[2]bool{gs.Players[0].IsAI, gs.Players[1].IsAI},
		board.String(),
	))

	ei.logger.Info().
		Str("game_id", engine.gameID).
		Str("board", board.String()).
		Bool("player_a_ai", gs.Players[0].IsAI).
		Bool("player_b_ai", gs.Players[1].IsAI).
		Msg("Engine created successfully")

	ei.performInitialSetup(engine)

	return engine, nil
}

// setupDefaults fills in missing configuration
func (ei *EngineInitializer) setupDefaults() {
	if ei.config.GameID == "" {
		ei.config.GameID = uuid.NewString()
	}
	if ei.config.PlayerA.Name == "" {
		ei.config.PlayerA.Name = "Player A"
	}
	if ei.config.PlayerB.Name == "" {
		ei.config.PlayerB.Name = "Player B"
	}
	ei.logger = ei.logger.With().Str("game_id", ei.config.GameID).Logger()
}

func (ei *EngineInitializer) validate() error {
	for _, p := range []PlayerConfig{ei.config.PlayerA, ei.config.PlayerB} {
		if !p.IsAI && p.Selector == nil && ei.config.Human == nil {
			return fmt.Errorf("%s is human but no human move selector was provided", p.Name)
		}
	}
	for id, score := range ei.config.Scores {
		if score < 0 {
			return core.WrapPlayerError(id, "starting score", fmt.Errorf("negative score %d", score))
		}
	}
	return nil
}

// initializeGameState seats both players with Player A to move
func (ei *EngineInitializer) initializeGameState(board *core.Board) *GameState {
	seat := func(id int, pc PlayerConfig, side core.Side) Player {
		return Player{
			ID:    id,
			Name:  pc.Name,
			IsAI:  pc.IsAI,
			Score: ei.config.Scores[id],
			Side:  side,
		}
	}
	return &GameState{
		Board: board,
		Players: [2]Player{
			seat(0, ei.config.PlayerA, core.SideA),
			seat(1, ei.config.PlayerB, core.SideB),
		},
		Current: 0,
	}
}

// createEngine creates the engine with all its components
func (ei *EngineInitializer) createEngine(gs *GameState) *Engine {
	eventBus := ei.config.EventBus
	if eventBus == nil {
		eventBus = events.NewEventBus(ei.logger)
	}

	gameContext := states.NewGameContext(ei.config.GameID, ei.logger)
	gameContext.PlayerCount = len(gs.Players)

	engine := &Engine{
		gs:              gs,
		logger:          ei.logger,
		gameID:          ei.config.GameID,
		seedTotal:       gs.SeedTotal(),
		actionProcessor: processor.NewActionProcessor(ei.logger, ei.config.GameID, eventBus),
		winCondition:    rules.NewWinConditionChecker(ei.logger),
		legalMoves:      rules.NewLegalMoveCalculator(),
		eventBus:        eventBus,
		stateMachine:    states.NewStateMachine(gameContext, eventBus),
	}

	aiSelector := ei.config.AI
	if aiSelector == nil {
		var opts []ai.Option
		if ei.config.AISeed != 0 {
			opts = append(opts, ai.WithSeed(ei.config.AISeed))
		}
		aiSelector = NewAISelector(ai.NewGreedySearcher(ei.logger, opts...), ei.logger)
	}
	for i, pc := range []PlayerConfig{ei.config.PlayerA, ei.config.PlayerB} {
		switch {
		case pc.Selector != nil:
			engine.selectors[i] = pc.Selector
		case pc.IsAI:
			engine.selectors[i] = aiSelector
		default:
			engine.selectors[i] = ei.config.Human
		}
	}

	engine.turnProcessor = NewTurnProcessor(engine)
	return engine
}

// initializeStateMachine moves the game from Setup to InProgress
func (ei *EngineInitializer) initializeStateMachine(engine *Engine) error {
	if err := engine.stateMachine.TransitionTo(states.PhaseInProgress, "Players seated"); err != nil {
		ei.logger.Error().Err(err).Msg("Failed to transition to InProgress state")
		return err
	}
	return nil
}

// performInitialSetup ends the game at once when Player A starts with an
// empty side
func (ei *EngineInitializer) performInitialSetup(engine *Engine) {
	engine.checkGameOver(ei.logger.With().Str("phase", "init").Logger())
}
