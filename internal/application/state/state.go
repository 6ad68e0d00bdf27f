// Package state holds the lifecycle of an arena fight.
package state

// GameState is where an arena fight stands
type GameState int

const (
	StatePlaying GameState = iota
	StatePaused
	StateGameOver
	StateStageClear
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateGameOver:
		return "GameOver"
	case StateStageClear:
		return "StageClear"
	default:
		return "Unknown"
	}
}

// Finished reports whether the fight reached an end condition
func (s GameState) Finished() bool {
	return s == StateGameOver || s == StateStageClear
}
