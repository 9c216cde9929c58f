package secret

import (
	"crypto/rand"
	"math/big"
	"strings"
)

const (
	// AlphabetNumeric is used for one-time passcodes typed by end users.
	AlphabetNumeric = "0123456789"

	// AlphabetAlphanumeric covers digits plus upper and lower case letters.
	AlphabetAlphanumeric = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

	// AlphabetKey extends AlphabetAlphanumeric with URL-safe symbols. At the
	// standard 52-character key length it yields well over 256 bits of entropy.
	AlphabetKey = AlphabetAlphanumeric + "-._~+/"
)

// Generator produces fixed-length random strings over a configured alphabet.
type Generator interface {
	// Generate returns a random string of length n, or an error when the
	// random source fails.
	Generate(n int) (string, error)
}

// Random is a Generator backed by crypto/rand.
//
// Each character is selected uniformly at random from the alphabet via
// rejection-free modular sampling (crypto/rand.Int), so no position is biased.
type Random struct {
	alphabet string
}

// NewRandom returns a Random generator over the given alphabet. An empty
// alphabet falls back to AlphabetAlphanumeric.
func NewRandom(alphabet string) *Random {
	if alphabet == "" {
		alphabet = AlphabetAlphanumeric
	}
	return &Random{alphabet: alphabet}
}

// Generate returns a random string of length n.
func (g *Random) Generate(n int) (string, error) {
	var sb strings.Builder
	sb.Grow(n)

	max := big.NewInt(int64(len(g.alphabet)))
	for i := 0; i < n; i++ {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		sb.WriteByte(g.alphabet[idx.Int64()])
	}

	return sb.String(), nil
}
