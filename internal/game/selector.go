package game

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/ayo/internal/game/ai"
	"github.com/mitchelldurbincs/ayo/internal/game/core"
)

// TurnView is what a MoveSelector sees when it is asked for a pit. Board is
// a private copy; Legal lists the side-relative pits that may be sown.
type TurnView struct {
	Turn     int
	Board    *core.Board
	Player   Player
	Opponent Player
	Legal    []int
}

// MoveSelector chooses the side-relative pit to sow for the player in view.
// Human input and the computer opponent are both selectors.
type MoveSelector interface {
	SelectPit(ctx context.Context, view TurnView) (int, error)
}

// MoveSelectorFunc adapts a function to MoveSelector.
type MoveSelectorFunc func(ctx context.Context, view TurnView) (int, error)

func (f MoveSelectorFunc) SelectPit(ctx context.Context, view TurnView) (int, error) {
	return f(ctx, view)
}

// AISelector plays the greedy one-ply search.
type AISelector struct {
	searcher *ai.GreedySearcher
	logger   zerolog.Logger
	last     ai.SearchResult
}

// NewAISelector wraps searcher as a MoveSelector.
func NewAISelector(searcher *ai.GreedySearcher, logger zerolog.Logger) *AISelector {
	return &AISelector{
		searcher: searcher,
		logger:   logger.With().Str("component", "AISelector").Logger(),
	}
}

func (s *AISelector) SelectPit(ctx context.Context, view TurnView) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	result, err := s.searcher.FindBestMove(view.Board, view.Player.Side)
	if err != nil {
		return 0, core.WrapPlayerError(view.Player.ID, "search", err)
	}
	s.last = result
	s.logger.Debug().
		Int("player_id", view.Player.ID).
		Int("turn", view.Turn).
		Int("pit", result.Pit).
		Int("expected_capture", result.Captured).
		Bool("fallback", result.Fallback).
		Msg("AI selected pit")
	return result.Pit, nil
}

// LastSearch returns the result behind the most recent selection.
func (s *AISelector) LastSearch() ai.SearchResult { return s.last }
