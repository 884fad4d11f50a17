package service

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndVerify(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	hash, err := h.Hash("securepass1")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if hash == "securepass1" {
		t.Fatal("hash must not equal the plaintext")
	}

	if !h.Verify("securepass1", hash) {
		t.Error("Verify must accept the original password")
	}
	if h.Verify("wrongpassword", hash) {
		t.Error("Verify must reject a wrong password")
	}
	if h.Verify("securepass1", "not-a-hash") {
		t.Error("Verify must reject a malformed hash")
	}
}

// The same password hashes to different strings each time because of the
// embedded salt.
func TestBcryptHasher_Salted(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	a, _ := h.Hash("securepass1")
	b, _ := h.Hash("securepass1")
	if a == b {
		t.Fatal("expected distinct hashes for repeated input")
	}
}
