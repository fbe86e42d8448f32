package core

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidPit    = errors.New("pit index out of range")
	ErrEmptyPit      = errors.New("pit is empty")
	ErrGameOver      = errors.New("game is over")
	ErrNoLegalMoves  = errors.New("no legal moves")
	ErrInvalidBoard  = errors.New("invalid board")
	ErrInvalidPlayer = errors.New("invalid player ID")
)

// WrapActionError adds the acting player and pit to err.
func WrapActionError(action Action, err error) error {
	if err == nil {
		return nil
	}
	switch a := action.(type) {
	case *SowAction:
		return fmt.Errorf("player %d: sow pit %d: %w", a.PlayerID, a.Pit, err)
	default:
		return fmt.Errorf("player action: %w", err)
	}
}

// WrapGameStateError adds the turn number and phase to err.
func WrapGameStateError(turn int, phase string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("game turn %d [%s]: %w", turn, phase, err)
}

// WrapPlayerError adds the player and the operation being attempted to err.
func WrapPlayerError(playerID int, operation string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("player %d %s: %w", playerID, operation, err)
}
