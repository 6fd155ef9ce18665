package auth_test

import (
	"strings"
	"testing"

	"github.com/ErlanBelekov/recipes-api/internal/auth"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_VerifiesAndSalts(t *testing.T) {
	h1, err := auth.HashPassword("123456")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	h2, err := auth.HashPassword("123456")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}

	if h1 == h2 {
		t.Error("two hashes of the same password are equal, want distinct salts")
	}
	if strings.Contains(h1, "123456") {
		t.Error("hash contains the plaintext")
	}
	cost, err := bcrypt.Cost([]byte(h1))
	if err != nil {
		t.Fatalf("cost: %v", err)
	}
	if cost != auth.PasswordCost {
		t.Errorf("cost = %d, want %d", cost, auth.PasswordCost)
	}
	if !auth.VerifyPassword("123456", h1) || !auth.VerifyPassword("123456", h2) {
		t.Error("VerifyPassword = false for the correct password")
	}
}

func TestVerifyPassword_Mismatch(t *testing.T) {
	h, err := auth.HashPassword("correct horse")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if auth.VerifyPassword("wrong horse", h) {
		t.Error("VerifyPassword = true for the wrong password")
	}
	if auth.VerifyPassword("correct horse", "not-a-bcrypt-hash") {
		t.Error("VerifyPassword = true for a malformed hash")
	}
}

func TestHashPassword_LongInput(t *testing.T) {
	long := strings.Repeat("a", 100)
	h, err := auth.HashPassword(long)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if !auth.VerifyPassword(long, h) {
		t.Error("VerifyPassword = false for a long password")
	}
}
