package core

import (
	"bytes"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	NumPits      = 12
	PitsPerSide  = NumPits / 2
	InitialSeeds = 4
	TotalSeeds   = NumPits * InitialSeeds
)

// boardNotation matches the compact "<c0,c1,...,c11>" form produced by String.
var boardNotation = regexp.MustCompile(`^\s*<\s*(\d+(\s*,\s*\d+)*)\s*>\s*$`)

// Board is the ring of twelve pits. Index 0..5 is the first side, 6..11 the
// second; sowing runs in increasing index order and wraps from 11 to 0.
type Board struct {
	pits [NumPits]*Pit
}

// NewBoard creates a board with InitialSeeds in every pit.
func NewBoard() *Board {
	b := &Board{}
	for i := range b.pits {
		b.pits[i] = NewPit(InitialSeeds)
	}
	return b
}

// NewBoardFromCounts creates a board with the given per-pit counts.
func NewBoardFromCounts(counts [NumPits]int) (*Board, error) {
	b := &Board{}
	for i, c := range counts {
		if c < 0 {
			return nil, fmt.Errorf("pit %d has negative count %d: %w", i, c, ErrInvalidBoard)
		}
		b.pits[i] = NewPit(c)
	}
	return b, nil
}

// ParseBoard reads the notation produced by Board.String.
func ParseBoard(notation string) (*Board, error) {
	match := boardNotation.FindStringSubmatch(notation)
	if match == nil {
		return nil, fmt.Errorf("malformed board %q: %w", notation, ErrInvalidBoard)
	}

	parts := strings.Split(match[1], ",")
	if len(parts) != NumPits {
		return nil, fmt.Errorf("board has %d pits, want %d: %w", len(parts), NumPits, ErrInvalidBoard)
	}

	var counts [NumPits]int
	for i, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("pit %d: %w", i, err)
		}
		counts[i] = n
	}
	return NewBoardFromCounts(counts)
}

// PitAt returns the pit at index. Indexes outside [0, NumPits) panic.
func (b *Board) PitAt(index int) *Pit {
	return b.pits[index]
}

// Count is shorthand for PitAt(index).Count().
func (b *Board) Count(index int) int {
	return b.pits[index].Count()
}

// Counts returns a snapshot of every pit's seed count.
func (b *Board) Counts() [NumPits]int {
	var counts [NumPits]int
	for i, p := range b.pits {
		counts[i] = p.Count()
	}
	return counts
}

// SeedsOnBoard returns the number of seeds in all pits.
func (b *Board) SeedsOnBoard() int {
	total := 0
	for _, p := range b.pits {
		total += p.Count()
	}
	return total
}

// DeepCopy returns a board with the same counts that shares no pits or
// seeds with b.
func (b *Board) DeepCopy() *Board {
	c := &Board{}
	for i, p := range b.pits {
		c.pits[i] = NewPit(p.Count())
	}
	return c
}

// String renders the board as "<c0,c1,...,c11>".
func (b *Board) String() string {
	var buf bytes.Buffer
	buf.WriteByte('<')
	for i, p := range b.pits {
		if i > 0 {
			buf.WriteByte(',')
		}
		fmt.Fprintf(&buf, "%d", p.Count())
	}
	buf.WriteByte('>')
	return buf.String()
}

// NextIndex returns the index sowing moves to after index.
func NextIndex(index int) int {
	return (index + 1) % NumPits
}
