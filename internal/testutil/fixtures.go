package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/ayo/internal/game/core"
)

// MustParseBoard parses board notation such as "<4,4,4,4,4,4,4,4,4,4,4,4>"
// and fails the test on error.
func MustParseBoard(t testing.TB, notation string) *core.Board {
	t.Helper()
	board, err := core.ParseBoard(notation)
	require.NoError(t, err, "parse board %q", notation)
	return board
}

// BoardWithSides builds a board from Player A's and Player B's pits, each
// listed from the side's first pit.
func BoardWithSides(t testing.TB, a, b [core.PitsPerSide]int) *core.Board {
	t.Helper()
	var counts [core.NumPits]int
	copy(counts[:core.PitsPerSide], a[:])
	copy(counts[core.PitsPerSide:], b[:])
	board, err := core.NewBoardFromCounts(counts)
	require.NoError(t, err)
	return board
}

// PitScript replays a fixed list of pits, one per call.
type PitScript struct {
	pits []int
	next int
}

// NewPitScript creates a PitScript over pits.
func NewPitScript(pits ...int) *PitScript {
	return &PitScript{pits: pits}
}

// Next returns the next pit and false once the script is exhausted.
func (s *PitScript) Next() (int, bool) {
	if s.next >= len(s.pits) {
		return 0, false
	}
	pit := s.pits[s.next]
	s.next++
	return pit, true
}

// Remaining reports how many pits have not been played yet.
func (s *PitScript) Remaining() int { return len(s.pits) - s.next }
