// Package game provides the main game loop and state management.
package game

// State represents the current game state.
type State int

const (
	// StateExplore draws only what the observer has seen.
	StateExplore State = iota
	// StateOverview reveals the whole map, dimmed where it has not been seen.
	StateOverview
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateExplore:
		return "explore"
	case StateOverview:
		return "overview"
	default:
		return "unknown"
	}
}
