package core

import "fmt"

// Side is the contiguous, inclusive range of pit indexes one player owns.
type Side struct {
	Start int
	End   int
}

var (
	SideA = Side{Start: 0, End: PitsPerSide - 1}
	SideB = Side{Start: PitsPerSide, End: NumPits - 1}
)

// Contains reports whether the absolute board index lies on this side.
func (s Side) Contains(index int) bool {
	return index >= s.Start && index <= s.End
}

func (s Side) Len() int { return s.End - s.Start + 1 }

// Abs converts a side-relative pit (0-based) to an absolute board index.
func (s Side) Abs(pit int) int {
	return s.Start + pit
}

// IsValidPit reports whether pit is a side-relative index on this side.
func (s Side) IsValidPit(pit int) bool {
	return pit >= 0 && pit < s.Len()
}

// IsEmpty reports whether every pit on this side is empty.
func (s Side) IsEmpty(b *Board) bool {
	for i := s.Start; i <= s.End; i++ {
		if b.Count(i) > 0 {
			return false
		}
	}
	return true
}

// Seeds returns the number of seeds on this side.
func (s Side) Seeds(b *Board) int {
	total := 0
	for i := s.Start; i <= s.End; i++ {
		total += b.Count(i)
	}
	return total
}

// Opposite returns the other half of the board.
func (s Side) Opposite() Side {
	if s == SideA {
		return SideB
	}
	return SideA
}

func (s Side) String() string {
	return fmt.Sprintf("[%d,%d]", s.Start, s.End)
}
