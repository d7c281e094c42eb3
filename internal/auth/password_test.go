package auth

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_VerifyRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "s3cret" || !strings.HasPrefix(hash, "$2") {
		t.Fatalf("unexpected digest shape: %q", hash)
	}
	if !VerifyPassword(hash, "s3cret") {
		t.Fatalf("correct password rejected")
	}
	if VerifyPassword(hash, "wrong") {
		t.Fatalf("wrong password accepted")
	}
}

func TestHashPassword_DefaultCostFallback(t *testing.T) {
	hash, err := HashPassword("pw", 0)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		t.Fatalf("Cost: %v", err)
	}
	if cost != bcrypt.DefaultCost {
		t.Fatalf("cost = %d; want default %d", cost, bcrypt.DefaultCost)
	}
}

func TestVerifyPassword_BadDigest(t *testing.T) {
	if VerifyPassword("not-a-digest", "pw") {
		t.Fatalf("malformed digest accepted")
	}
}
