package hash

// Hash is the contract for one-way digests of secrets.
type Hash interface {
	// Hash takes a plaintext string and returns its digest representation.
	Hash(plaintext string) ([]byte, error)

	// Verify reports whether plaintext matches the stored digest.
	Verify(digest, plaintext string) bool
}
