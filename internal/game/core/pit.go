package core

import "fmt"

// Pit holds the seeds at one board position.
type Pit struct {
	seeds []Seed
}

// NewPit creates a pit holding n seeds.
func NewPit(n int) *Pit {
	p := &Pit{seeds: make([]Seed, 0, max(n, InitialSeeds))}
	for i := 0; i < n; i++ {
		p.seeds = append(p.seeds, Seed{})
	}
	return p
}

func (p *Pit) Count() int    { return len(p.seeds) }
func (p *Pit) IsEmpty() bool { return len(p.seeds) == 0 }

// Add places one seed in the pit.
func (p *Pit) Add(s Seed) {
	p.seeds = append(p.seeds, s)
}

// TakeAll empties the pit and returns what it held, in order.
func (p *Pit) TakeAll() []Seed {
	taken := make([]Seed, len(p.seeds))
	copy(taken, p.seeds)
	p.seeds = p.seeds[:0]
	return taken
}

// Clear discards every seed in the pit.
func (p *Pit) Clear() {
	p.seeds = p.seeds[:0]
}

func (p *Pit) String() string {
	return fmt.Sprintf("Pit{seeds=%d}", len(p.seeds))
}
