package auth

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("pass1")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "pass1" {
		t.Fatalf("plaintext must never be stored")
	}
	if !CheckPassword("pass1", hash) {
		t.Fatalf("correct password rejected")
	}
	if CheckPassword("pass2", hash) {
		t.Fatalf("wrong password accepted")
	}
}

func TestHashIsSalted(t *testing.T) {
	h1, err := HashPassword("pass1")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	h2, err := HashPassword("pass1")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if h1 == h2 {
		t.Fatalf("two hashes of the same password should differ")
	}
}

func TestNewSessionToken(t *testing.T) {
	a, b := NewSessionToken(), NewSessionToken()
	if a == "" || a == b {
		t.Fatalf("tokens must be non-empty and unique, got %q and %q", a, b)
	}
}
