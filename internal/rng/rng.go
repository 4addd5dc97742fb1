// Package rng supplies the randomness the game engine needs outside of its
// seeded deck shuffles, such as picking which seat opens trump selection.
package rng

// Generator provides a simple random number
type Generator interface {
	// Intn will return a random number up to but not including n
	Intn(n int) int
}
