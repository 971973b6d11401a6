// Package engine implements the rules of the Lost Scroll of Eldoria
// adventure as pure state transitions over a single session's state.
package engine

// Initial values restored by Reset.
const (
	StartingPlayerHP   = 100
	StartingGuardianHP = 50
	MaxPlayerHP        = 100
)

// State holds all mutable data for one adventure session.
// Exactly one instance is active per session; it is mutated in place by
// the engine's operations and discarded when the session ends.
type State struct {
	PlayerHP   int    // no floor; can go negative, the driver checks for death
	PlayerName string // set once at session start
	HasKey     bool
	HasPotion  bool
	GameOver   bool // monotonic; only Reset clears it
	GuardianHP int
}

// NewState creates a session state with the starting values.
func NewState() *State {
	s := &State{}
	s.Reset()
	return s
}

// Reset restores every field to its starting value.
func (s *State) Reset() {
	s.PlayerHP = StartingPlayerHP
	s.PlayerName = ""
	s.HasKey = false
	s.HasPotion = true // the adventurer starts with one healing potion
	s.GameOver = false
	s.GuardianHP = StartingGuardianHP
}

// SetName records the player's name. The name is immutable once set;
// later calls are ignored and report false.
func (s *State) SetName(name string) bool {
	if s.PlayerName != "" {
		return false
	}
	s.PlayerName = name
	return true
}
