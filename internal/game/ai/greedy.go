// Package ai implements the computer opponent: a one-ply greedy search that
// plays each legal pit on a throwaway copy of the board and keeps the pit
// that captures the most seeds.
package ai

import (
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/exp/rand"

	"github.com/mitchelldurbincs/ayo/internal/game/core"
	"github.com/mitchelldurbincs/ayo/internal/game/rules"
)

// Evaluation is the simulated outcome of sowing one pit.
type Evaluation struct {
	Pit      int
	Captured int
}

// SearchResult is the pit chosen by FindBestMove and how it was reached.
type SearchResult struct {
	Pit         int
	Captured    int
	Evaluations []Evaluation
	Fallback    bool // true when the pit was picked at random
}

// Option configures a GreedySearcher.
type Option func(g *GreedySearcher)

// WithSeed fixes the seed of the fallback RNG.
func WithSeed(seed uint64) Option {
	return func(g *GreedySearcher) {
		g.rng = rand.New(rand.NewSource(seed))
	}
}

// GreedySearcher scores every legal pit by the seeds it would capture and
// plays the best one. Scanning is in increasing pit order and only a strictly
// greater capture replaces the running best, so ties go to the lowest pit.
type GreedySearcher struct {
	logger zerolog.Logger
	rng    *rand.Rand
	legal  *rules.LegalMoveCalculator
}

// NewGreedySearcher creates a searcher. Without WithSeed the fallback RNG is
// seeded from the clock.
func NewGreedySearcher(logger zerolog.Logger, options ...Option) *GreedySearcher {
	g := &GreedySearcher{
		logger: logger.With().Str("component", "GreedySearcher").Logger(),
		legal:  rules.NewLegalMoveCalculator(),
	}
	for _, option := range options {
		option(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return g
}

// Evaluate returns the number of seeds sowing pit would capture. The move is
// played on a deep copy; board is never modified.
func (g *GreedySearcher) Evaluate(board *core.Board, side core.Side, pit int) (int, error) {
	sandbox := board.DeepCopy()
	result, err := core.ApplySowAction(sandbox, &core.SowAction{Pit: pit}, side)
	if err != nil {
		return 0, err
	}
	return result.Captured, nil
}

// FindBestMove picks the pit for the owner of side.
func (g *GreedySearcher) FindBestMove(board *core.Board, side core.Side) (SearchResult, error) {
	res := SearchResult{Pit: -1, Captured: -1}

	for pit := 0; pit < core.PitsPerSide; pit++ {
		if !g.legal.IsLegal(board, side, pit) {
			continue
		}
		captured, err := g.Evaluate(board, side, pit)
		if err != nil {
			return SearchResult{}, err
		}
		res.Evaluations = append(res.Evaluations, Evaluation{Pit: pit, Captured: captured})
		if captured > res.Captured {
			res.Captured = captured
			res.Pit = pit
		}
	}

	if res.Pit == -1 {
		pit, err := g.randomLegalPit(board, side)
		if err != nil {
			return SearchResult{}, err
		}
		res.Pit, res.Captured, res.Fallback = pit, 0, true
		g.logger.Warn().Int("pit", pit).Msg("No move scored, falling back to a random legal pit")
	}

	g.logger.Debug().
		Str("board", board.String()).
		Str("side", side.String()).
		Int("pit", res.Pit).
		Int("captured", res.Captured).
		Interface("evaluations", res.Evaluations).
		Msg("Search complete")

	return res, nil
}

func (g *GreedySearcher) randomLegalPit(board *core.Board, side core.Side) (int, error) {
	pits := g.legal.LegalPits(board, side)
	if len(pits) == 0 {
		return -1, core.ErrNoLegalMoves
	}
	return pits[g.rng.Intn(len(pits))], nil
}
