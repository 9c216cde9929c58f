package hash

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// SHA256 implements Hash using a plain SHA-256 digest, hex encoded.
//
// It is meant for high-entropy machine-generated secrets (one-time passcodes)
// where the stored form must be exactly sha256(plaintext). It is not a
// password hasher; there is no salt or work factor.
type SHA256 struct{}

// NewSHA256 returns a SHA256 hasher.
func NewSHA256() *SHA256 {
	return &SHA256{}
}

// Hash returns the hex-encoded SHA-256 digest of plaintext.
func (*SHA256) Hash(plaintext string) ([]byte, error) {
	sum := sha256.Sum256([]byte(plaintext))

	out := make([]byte, hex.EncodedLen(len(sum)))
	hex.Encode(out, sum[:])

	return out, nil
}

// Verify recomputes the digest of plaintext and compares it against the
// stored digest in constant time.
func (h *SHA256) Verify(digest, plaintext string) bool {
	if digest == "" {
		return false
	}

	computed, err := h.Hash(plaintext)
	if err != nil {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(digest), computed) == 1
}
