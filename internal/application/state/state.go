// Package state defines the top-level game modes.
package state

// GameState represents the current state of the game
type GameState int

const (
	StateMenu GameState = iota
	StateManual
	StatePlaying
	StatePaused
	StateWin
	StateGameOver
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StateMenu:
		return "Menu"
	case StateManual:
		return "Manual"
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateWin:
		return "Win"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Simulating reports whether fixed steps advance the world in this state
func (s GameState) Simulating() bool {
	return s == StatePlaying
}

// Finished reports whether the run has ended
func (s GameState) Finished() bool {
	return s == StateWin || s == StateGameOver
}
