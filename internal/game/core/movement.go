package core

// MoveResult describes the outcome of one sowing and the capture that
// followed it.
type MoveResult struct {
	PlayerID     int
	Pit          int // side-relative
	Source       int // absolute
	Landing      int // absolute index of the pit that received the last seed
	Sown         int
	Captured     int
	CapturedPits []int // absolute, in the order they were emptied
}

// Sow empties the source pit and drops its seeds one at a time into the
// following pits, wrapping around the board. The source pit is not skipped
// on a lap. It returns the landing index and the number of seeds sown.
func Sow(b *Board, source int) (landing int, sown int) {
	hand := b.PitAt(source).TakeAll()
	sown = len(hand)
	index := source
	for len(hand) > 0 {
		index = NextIndex(index)
		b.PitAt(index).Add(hand[0])
		hand = hand[1:]
	}
	return index, sown
}

// Capture removes seeds rooted at landing when it lies in the opponent's
// side and holds one or two seeds, then walks backward through the
// opponent's pits for as long as each holds one or two. It returns the
// total captured and the emptied pits.
func Capture(b *Board, landing int, opponent Side) (int, []int) {
	if !opponent.Contains(landing) {
		return 0, nil
	}
	if !capturable(b.Count(landing)) {
		return 0, nil
	}

	captured := 0
	var pits []int
	for index := landing; opponent.Contains(index) && capturable(b.Count(index)); index-- {
		captured += b.Count(index)
		b.PitAt(index).Clear()
		pits = append(pits, index)
	}
	return captured, pits
}

func capturable(count int) bool {
	return count == 1 || count == 2
}

// ApplySowAction validates action against side, sows from the chosen pit and
// runs capture once at the landing pit. The caller credits the captured seeds
// to the acting player.
func ApplySowAction(b *Board, action *SowAction, side Side) (*MoveResult, error) {
	if err := action.Validate(b, side); err != nil {
		return nil, err
	}

	source := side.Abs(action.Pit)
	landing, sown := Sow(b, source)
	captured, pits := Capture(b, landing, side.Opposite())

	return &MoveResult{
		PlayerID:     action.PlayerID,
		Pit:          action.Pit,
		Source:       source,
		Landing:      landing,
		Sown:         sown,
		Captured:     captured,
		CapturedPits: pits,
	}, nil
}
