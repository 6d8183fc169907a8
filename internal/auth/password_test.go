package auth

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHasher_HashAndCompare(t *testing.T) {
	t.Parallel()

	h := NewHasher(bcrypt.MinCost)

	hash, err := h.Hash("correct horse battery staple")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if !strings.HasPrefix(hash, "$2") {
		t.Errorf("hash %q does not look like bcrypt", hash)
	}

	if !h.Compare(hash, "correct horse battery staple") {
		t.Error("expected match for correct password")
	}
	if h.Compare(hash, "wrong password") {
		t.Error("expected mismatch for wrong password")
	}
	if h.Compare("not-a-hash", "anything") {
		t.Error("expected mismatch for invalid hash")
	}
}

func TestHasher_DistinctSalts(t *testing.T) {
	t.Parallel()

	h := NewHasher(bcrypt.MinCost)

	a, err := h.Hash("same password")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	b, err := h.Hash("same password")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if a == b {
		t.Error("two hashes of the same password must differ")
	}
}
