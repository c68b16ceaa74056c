package password

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// unusablePrefix marks a stored password that can never match any input.
// bcrypt hashes always start with "$2", so the prefix cannot collide with a real hash.
const unusablePrefix = "!"

// Hasher hashes and verifies member passwords.
type Hasher interface {
	Hash(plain string) (string, error)
	Check(plain, hashed string) bool
	Unusable() (string, error)
}

type BcryptHasher struct {
	cost int
}

func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash generates a salted bcrypt hash.
func (h *BcryptHasher) Hash(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hashed), nil
}

// Check reports whether plain matches hashed. Unusable passwords never match.
func (h *BcryptHasher) Check(plain, hashed string) bool {
	if IsUnusable(hashed) {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}

// Unusable returns a random marker that disables password login for the account.
func (h *BcryptHasher) Unusable() (string, error) {
	buf := make([]byte, 20)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate unusable password: %w", err)
	}
	return unusablePrefix + hex.EncodeToString(buf), nil
}

func IsUnusable(hashed string) bool {
	return hashed == "" || strings.HasPrefix(hashed, unusablePrefix)
}

var _ Hasher = (*BcryptHasher)(nil)
