package service

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type PasswordHasher interface {
	Compare(hash, password string) bool
}

type TokenProvider interface {
	SignAdmin(ctx context.Context, ttl time.Duration) (token string, exp time.Time, err error)
	ValidateAdmin(ctx context.Context, token string) error
}

type AdminAuth struct {
	passwordHash string
	hasher       PasswordHasher
	tokens       TokenProvider
	ttl          time.Duration
	log          *zap.Logger
}

func NewAdminAuth(passwordHash string, hasher PasswordHasher, tokens TokenProvider, ttl time.Duration, log *zap.Logger) *AdminAuth {
	return &AdminAuth{
		passwordHash: passwordHash,
		hasher:       hasher,
		tokens:       tokens,
		ttl:          ttl,
		log:          log,
	}
}

func (a *AdminAuth) Login(ctx context.Context, password string) (string, time.Time, error) {
	if password == "" || !a.hasher.Compare(a.passwordHash, password) {
		a.log.Warn("admin login rejected")
		return "", time.Time{}, ErrInvalidPassword
	}
	return a.tokens.SignAdmin(ctx, a.ttl)
}

func (a *AdminAuth) Authorize(ctx context.Context, token string) error {
	if token == "" {
		return ErrUnauthorized
	}
	if err := a.tokens.ValidateAdmin(ctx, token); err != nil {
		return ErrUnauthorized
	}
	return nil
}
