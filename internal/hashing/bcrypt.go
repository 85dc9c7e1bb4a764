package hashing

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

var ErrNotBcryptHash = errors.New("not a bcrypt hash")

// Bcrypt checks the admin password against ADMIN_PASSWORD_HASH.
type Bcrypt struct {
	cost int
}

// NewBcrypt uses bcrypt.DefaultCost for any cost below bcrypt.MinCost.
func NewBcrypt(cost int) *Bcrypt {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}
	return &Bcrypt{cost: cost}
}

func (b *Bcrypt) Hash(password string) (string, error) {
	if password == "" {
		return "", errors.New("empty password")
	}
	h, err := bcrypt.GenerateFromPassword([]byte(password), b.cost)
	if err != nil {
		return "", fmt.Errorf("bcrypt hash: %w", err)
	}
	return string(h), nil
}

func (b *Bcrypt) Compare(hash, password string) bool {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return false
	}
	return true
}

// CheckHash returns ErrNotBcryptHash for values bcrypt cannot parse.
func CheckHash(hash string) error {
	if _, err := bcrypt.Cost([]byte(hash)); err != nil {
		return fmt.Errorf("%w: %v", ErrNotBcryptHash, err)
	}
	return nil
}
