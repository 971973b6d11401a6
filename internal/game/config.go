package game

import "time"

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. A seed of 0 means a
	// time-derived seed; any other value replays that session's draws.
	Seed int64

	// Pause is the dramatic-pause duration between story beats.
	// Zero disables pacing entirely; pacing never affects outcomes.
	Pause time.Duration
}
