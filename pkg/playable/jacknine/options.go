package jacknine

import "time"

// Options configures a game of jack-nine
type Options struct {
	// RoundsPerGame is the number of full eight-trick deals in a game
	RoundsPerGame int

	// TrickDelay is how long a finished trick stays face up before it's resolved
	TrickDelay time.Duration

	// RoundDelay is the pause between a finished round and the next deal
	RoundDelay time.Duration

	// Seed seeds the deck shuffle. 0 uses the clock.
	Seed int64

	// StartSeat is the seat that opens trump selection. -1 picks at random.
	StartSeat int
}

// DefaultOptions returns the standard options for a game
func DefaultOptions() Options {
	return Options{
		RoundsPerGame: 1,
		TrickDelay:    time.Second * 2,
		RoundDelay:    time.Second * 3,
		Seed:          0,
		StartSeat:     -1,
	}
}
