package token

import (
	"crypto/rand"
	"math/big"
)

// alphabet omits 0, 1, I, L, and O so codes survive being read aloud
const alphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

// Generate returns a crypto-secure random room code of length n
func Generate(n int) (string, error) {
	max := big.NewInt(int64(len(alphabet)))

	b := make([]byte, n)
	for i := range b {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}

		b[i] = alphabet[idx.Int64()]
	}

	return string(b), nil
}
