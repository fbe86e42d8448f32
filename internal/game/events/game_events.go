package events

import (
	"time"
)

// Event type constants
const (
	TypeGameStarted     = "game.started"
	TypeGameEnded       = "game.ended"
	TypeTurnStarted     = "turn.started"
	TypeTurnEnded       = "turn.ended"
	TypeMoveRejected    = "move.rejected"
	TypeMoveExecuted    = "move.executed"
	TypeSeedsCaptured   = "seeds.captured"
	TypeStateTransition = "state.transition"
)

func newBase(eventType, gameID string) BaseEvent {
	return BaseEvent{
		EventType: eventType,
		Time:      time.Now(),
		Game:      gameID,
	}
}

// GameStartedEvent is published when a new game begins
type GameStartedEvent struct {
	BaseEvent
	PlayerNames [2]string
	AIPlayers   [2]bool
	Board       string
}

// NewGameStartedEvent creates a new GameStartedEvent
func NewGameStartedEvent(gameID string, names [2]string, ai [2]bool, board string) *GameStartedEvent {
	return &GameStartedEvent{
		BaseEvent:   newBase(TypeGameStarted, gameID),
		PlayerNames: names,
		AIPlayers:   ai,
		Board:       board,
	}
}

// GameEndedEvent is published when a game ends. Winner is -1 on a draw.
type GameEndedEvent struct {
	BaseEvent
	Metadata  EventMetadata
	Winner    int
	Scores    [2]int
	SeedsLeft int
	Duration  time.Duration
	FinalTurn int
}

// NewGameEndedEvent creates a new GameEndedEvent
func NewGameEndedEvent(gameID string, winner int, scores [2]int, seedsLeft int, duration time.Duration, finalTurn int) *GameEndedEvent {
	return &GameEndedEvent{
		BaseEvent: newBase(TypeGameEnded, gameID),
		Metadata:  EventMetadata{Turn: finalTurn},
		Winner:    winner,
		Scores:    scores,
		SeedsLeft: seedsLeft,
		Duration:  duration,
		FinalTurn: finalTurn,
	}
}

// TurnStartedEvent is published at the beginning of each turn
type TurnStartedEvent struct {
	BaseEvent
	Metadata   EventMetadata
	TurnNumber int
}

// NewTurnStartedEvent creates a new TurnStartedEvent
func NewTurnStartedEvent(gameID string, turn, playerID int) *TurnStartedEvent {
	return &TurnStartedEvent{
		BaseEvent:  newBase(TypeTurnStarted, gameID),
		Metadata:   EventMetadata{PlayerID: playerID, Turn: turn},
		TurnNumber: turn,
	}
}

// TurnEndedEvent is published once a move has been applied and the turn
// has passed to the other player
type TurnEndedEvent struct {
	BaseEvent
	Metadata      EventMetadata
	TurnNumber    int
	ProcessedTime time.Duration
}

// NewTurnEndedEvent creates a new TurnEndedEvent
func NewTurnEndedEvent(gameID string, turn, playerID int, processedTime time.Duration) *TurnEndedEvent {
	return &TurnEndedEvent{
		BaseEvent:     newBase(TypeTurnEnded, gameID),
		Metadata:      EventMetadata{PlayerID: playerID, Turn: turn},
		TurnNumber:    turn,
		ProcessedTime: processedTime,
	}
}

// MoveRejectedEvent is published when a submitted pit fails validation
type MoveRejectedEvent struct {
	BaseEvent
	Metadata EventMetadata
	Pit      int
	Reason   string
}

// NewMoveRejectedEvent creates a new MoveRejectedEvent
func NewMoveRejectedEvent(gameID string, playerID, pit int, reason string, turn int) *MoveRejectedEvent {
	return &MoveRejectedEvent{
		BaseEvent: newBase(TypeMoveRejected, gameID),
		Metadata:  EventMetadata{PlayerID: playerID, Turn: turn},
		Pit:       pit,
		Reason:    reason,
	}
}

// MoveExecutedEvent is published after seeds from a pit have been sown
type MoveExecutedEvent struct {
	BaseEvent
	Metadata EventMetadata
	PlayerID int
	Pit      int
	Source   int
	Landing  int
	Sown     int
	Board    string
}

// NewMoveExecutedEvent creates a new MoveExecutedEvent
func NewMoveExecutedEvent(gameID string, playerID, pit, source, landing, sown int, board string, turn int) *MoveExecutedEvent {
	return &MoveExecutedEvent{
		BaseEvent: newBase(TypeMoveExecuted, gameID),
		Metadata:  EventMetadata{PlayerID: playerID, Turn: turn},
		PlayerID:  playerID,
		Pit:       pit,
		Source:    source,
		Landing:   landing,
		Sown:      sown,
		Board:     board,
	}
}

// SeedsCapturedEvent is published when a move captures at least one seed
type SeedsCapturedEvent struct {
	BaseEvent
	Metadata EventMetadata
	PlayerID int
	Pits     []int
	Captured int
	NewScore int
}

// NewSeedsCapturedEvent creates a new SeedsCapturedEvent
func NewSeedsCapturedEvent(gameID string, playerID int, pits []int, captured, newScore, turn int) *SeedsCapturedEvent {
	return &SeedsCapturedEvent{
		BaseEvent: newBase(TypeSeedsCaptured, gameID),
		Metadata:  EventMetadata{PlayerID: playerID, Turn: turn},
		PlayerID:  playerID,
		Pits:      pits,
		Captured:  captured,
		NewScore:  newScore,
	}
}

// StateTransitionEvent is published when the game state machine transitions between phases
type StateTransitionEvent struct {
	BaseEvent
	FromPhase string
	ToPhase   string
	Reason    string
}

// NewStateTransitionEvent creates a new StateTransitionEvent
func NewStateTransitionEvent(gameID, fromPhase, toPhase, reason string) *StateTransitionEvent {
	return &StateTransitionEvent{
		BaseEvent: newBase(TypeStateTransition, gameID),
		FromPhase: fromPhase,
		ToPhase:   toPhase,
		Reason:    reason,
	}
}
