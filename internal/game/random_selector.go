package game

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/exp/rand"

	"github.com/mitchelldurbincs/ayo/internal/game/core"
)

// RandomSelector picks uniformly among the legal pits. It is a baseline
// opponent for demos and tests.
type RandomSelector struct {
	rng    *rand.Rand
	logger zerolog.Logger
}

// NewRandomSelector creates a RandomSelector seeded with seed.
func NewRandomSelector(seed uint64, logger zerolog.Logger) *RandomSelector {
	return &RandomSelector{
		rng:    rand.New(rand.NewSource(seed)),
		logger: logger.With().Str("component", "RandomSelector").Logger(),
	}
}

func (r *RandomSelector) SelectPit(ctx context.Context, view TurnView) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if len(view.Legal) == 0 {
		return 0, core.WrapPlayerError(view.Player.ID, "random move", core.ErrNoLegalMoves)
	}
	pit := view.Legal[r.rng.Intn(len(view.Legal))]
	r.logger.Debug().
		Int("player_id", view.Player.ID).
		Int("pit", pit).
		Msg("Generated random move")
	return pit, nil
}
