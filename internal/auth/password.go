// Package auth provides the credential-hashing primitive and the session
// token codec. It owns no storage: blocklist checks and user lookups live in
// the repo and services layers.
package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword returns the bcrypt digest of plain using the given cost.
// A cost <= 0 falls back to bcrypt.DefaultCost.
func HashPassword(plain string, cost int) (string, error) {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	b, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// VerifyPassword reports whether plain matches the stored bcrypt digest.
func VerifyPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
