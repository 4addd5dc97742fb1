package rng

import (
	"crypto/rand"
	"math/big"
)

var _ Generator = Crypto{}

// Crypto is a Generator over crypto/rand
// Use it where a seeded source would let a client predict the outcome, such
// as the opening trump-selection seat.
type Crypto struct{}

// Intn returns a uniform random number in [0, n)
func (c Crypto) Intn(n int) int {
	b, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic(err)
	}

	return int(b.Int64())
}
