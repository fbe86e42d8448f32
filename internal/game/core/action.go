package core

// ActionType represents the type of action
type ActionType int

const (
	ActionSow ActionType = iota
)

func (t ActionType) String() string {
	switch t {
	case ActionSow:
		return "sow"
	default:
		return "unknown"
	}
}

// Action represents a player action
type Action interface {
	GetPlayerID() int
	GetType() ActionType
	Validate(b *Board, side Side) error
}

// SowAction picks up every seed in one of the player's pits and sows them.
// Pit is side-relative and 0-based.
type SowAction struct {
	PlayerID int
	Pit      int
}

func (s *SowAction) GetPlayerID() int    { return s.PlayerID }
func (s *SowAction) GetType() ActionType { return ActionSow }

// Validate checks that Pit is on the player's side and holds seeds. Pit is
// side-relative, so a pit on the opponent's side can only be named by an
// out-of-range index and fails with ErrInvalidPit. There is no other
// legality rule.
func (s *SowAction) Validate(b *Board, side Side) error {
	if !side.IsValidPit(s.Pit) {
		return ErrInvalidPit
	}
	if b.Count(side.Abs(s.Pit)) == 0 {
		return ErrEmptyPit
	}
	return nil
}
