package rules

import "github.com/mitchelldurbincs/ayo/internal/game/core"

// LegalMoveCalculator computes legal moves for players
type LegalMoveCalculator struct{}

// NewLegalMoveCalculator creates a new legal move calculator
func NewLegalMoveCalculator() *LegalMoveCalculator {
	return &LegalMoveCalculator{}
}

// GetLegalActionMask returns one entry per side-relative pit; true means the
// pit holds seeds and may be sown.
func (lmc *LegalMoveCalculator) GetLegalActionMask(board *core.Board, side core.Side) [core.PitsPerSide]bool {
	var mask [core.PitsPerSide]bool
	for pit := 0; pit < core.PitsPerSide; pit++ {
		mask[pit] = board.Count(side.Abs(pit)) > 0
	}
	return mask
}

// LegalPits returns the side-relative pits that may be sown, in increasing
// order.
func (lmc *LegalMoveCalculator) LegalPits(board *core.Board, side core.Side) []int {
	pits := make([]int, 0, core.PitsPerSide)
	for pit, ok := range lmc.GetLegalActionMask(board, side) {
		if ok {
			pits = append(pits, pit)
		}
	}
	return pits
}

// IsLegal reports whether pit may be sown by the owner of side.
func (lmc *LegalMoveCalculator) IsLegal(board *core.Board, side core.Side, pit int) bool {
	action := core.SowAction{Pit: pit}
	return action.Validate(board, side) == nil
}
