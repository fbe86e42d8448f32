package states

import "fmt"

// GamePhase represents the current phase of a game
type GamePhase int

const (
	// PhaseSetup - Board dealt, players seated, nothing sown yet
	PhaseSetup GamePhase = iota

	// PhaseInProgress - Players alternate sowing
	PhaseInProgress

	// PhaseGameOver - The mover's side was empty; scores are final
	PhaseGameOver

	// PhaseError - The game was aborted (input closed, context cancelled)
	PhaseError
)

// String returns the string representation of a GamePhase
func (p GamePhase) String() string {
	switch p {
	case PhaseSetup:
		return "Setup"
	case PhaseInProgress:
		return "InProgress"
	case PhaseGameOver:
		return "GameOver"
	case PhaseError:
		return "Error"
	default:
		return fmt.Sprintf("Unknown(%d)", p)
	}
}

// IsTerminal returns true if the phase represents a terminal state
func (p GamePhase) IsTerminal() bool {
	return p == PhaseGameOver || p == PhaseError
}

// CanReceiveActions returns true if moves may be applied in this phase
func (p GamePhase) CanReceiveActions() bool {
	return p == PhaseInProgress
}

// AllowedTransitions returns the valid phases this phase can transition to
func (p GamePhase) AllowedTransitions() []GamePhase {
	switch p {
	case PhaseSetup:
		return []GamePhase{PhaseInProgress, PhaseError}
	case PhaseInProgress:
		return []GamePhase{PhaseGameOver, PhaseError}
	default:
		return []GamePhase{}
	}
}

// CanTransitionTo checks if a transition from this phase to the target phase is allowed
func (p GamePhase) CanTransitionTo(target GamePhase) bool {
	for _, phase := range p.AllowedTransitions() {
		if phase == target {
			return true
		}
	}
	return false
}

// ParsePhase converts a string to a GamePhase
func ParsePhase(s string) (GamePhase, error) {
	for _, p := range []GamePhase{PhaseSetup, PhaseInProgress, PhaseGameOver, PhaseError} {
		if p.String() == s {
			return p, nil
		}
	}
	return PhaseSetup, fmt.Errorf("unknown game phase %q", s)
}
