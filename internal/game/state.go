package game

import (
	"github.com/mitchelldurbincs/ayo/internal/game/core"
)

// Player is one seat at the board. Side is fixed for the whole game and
// IsAI selects which MoveSelector the engine consults on the player's turn.
type Player struct {
	ID    int
	Name  string
	IsAI  bool
	Score int
	Side  core.Side
	Stats PlayerStats
}

func (p *Player) GetID() int         { return p.ID }
func (p *Player) GetScore() int      { return p.Score }
func (p *Player) GetSide() core.Side { return p.Side }

// AddScore credits captured seeds and returns the new score. Negative
// amounts are ignored so a score never decreases.
func (p *Player) AddScore(n int) int {
	if n > 0 {
		p.Score += n
	}
	return p.Score
}

// GameState is a snapshot of a game. Turn counts completed moves.
type GameState struct {
	Turn    int
	Board   *core.Board
	Players [2]Player
	Current int
}

// CurrentPlayer returns the player to move.
func (gs GameState) CurrentPlayer() Player { return gs.Players[gs.Current] }

// Opponent returns the player waiting for their turn.
func (gs GameState) Opponent() Player { return gs.Players[1-gs.Current] }

// SeedTotal is the number of seeds on the board plus both scores. Sowing and
// capture never change it.
func (gs GameState) SeedTotal() int {
	return gs.Board.SeedsOnBoard() + gs.Players[0].Score + gs.Players[1].Score
}

// Clone returns a copy that shares nothing with gs.
func (gs *GameState) Clone() GameState {
	clone := *gs
	clone.Board = gs.Board.DeepCopy()
	return clone
}
