package auth

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("rahasia-sekali")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	if hash == "rahasia-sekali" {
		t.Fatal("hash must not equal the plaintext password")
	}

	if !CheckPassword(hash, "rahasia-sekali") {
		t.Fatal("expected correct password to verify")
	}
	if CheckPassword(hash, "salah") {
		t.Fatal("expected wrong password to fail verification")
	}
}

func TestHashPasswordProducesDistinctHashes(t *testing.T) {
	first, err := HashPassword("password123")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	second, err := HashPassword("password123")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	if first == second {
		t.Fatal("bcrypt hashes should be salted and differ between calls")
	}
}
