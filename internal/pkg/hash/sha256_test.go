package hash

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"
)

func TestSHA256HashMatchesStdlib(t *testing.T) {
	h := NewSHA256()

	got, err := h.Hash("123456")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}

	sum := sha256.Sum256([]byte("123456"))
	want := hex.EncodeToString(sum[:])
	if string(got) != want {
		t.Fatalf("Hash returned %q, want %q", got, want)
	}
}

func TestSHA256Verify(t *testing.T) {
	h := NewSHA256()

	digest, err := h.Hash("482913")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}

	if !h.Verify(string(digest), "482913") {
		t.Fatal("Verify rejected the matching plaintext")
	}
	if h.Verify(string(digest), "482914") {
		t.Fatal("Verify accepted a non-matching plaintext")
	}
	if h.Verify("", "482913") {
		t.Fatal("Verify accepted an empty digest")
	}
}
