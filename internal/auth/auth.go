// Package auth holds the credential primitives used by the API layer: a
// password hasher/verifier for account logins and a separate static-secret
// gate for technician deletion. Both are interfaces so each can evolve
// independently of the other.
package auth

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher hashes and verifies account passwords. The plaintext is
// never stored anywhere.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(hash, password string) bool
}

// BcryptHasher implements PasswordHasher with bcrypt.
type BcryptHasher struct {
	Cost int
}

func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{Cost: bcrypt.DefaultCost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	cost := h.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	b, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (h *BcryptHasher) Verify(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// AdminGate approves the secondary delete gate, which is independent of any
// user account.
type AdminGate interface {
	Approve(password string) bool
}

// StaticAdminGate compares against a single shared secret supplied by
// configuration.
type StaticAdminGate struct {
	secret string
}

func NewStaticAdminGate(secret string) *StaticAdminGate {
	return &StaticAdminGate{secret: secret}
}

func (g *StaticAdminGate) Approve(password string) bool {
	if g.secret == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(g.secret), []byte(password)) == 1
}
