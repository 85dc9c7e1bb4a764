package service_test

import (
	"context"
	"testing"
	"time"

	"storefront/internal/hashing"
	"storefront/internal/service"
	"storefront/internal/token"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestAdminAuth_LoginAndAuthorize(t *testing.T) {
	h := hashing.NewBcrypt(4)
	hash, err := h.Hash("s3cret")
	require.NoError(t, err)

	auth := service.NewAdminAuth(hash, h, token.NewHSProvider("key", "storefront", "admin"), time.Hour, zap.NewNop())
	ctx := context.Background()

	_, _, err = auth.Login(ctx, "wrong")
	assert.ErrorIs(t, err, service.ErrInvalidPassword)

	_, _, err = auth.Login(ctx, "")
	assert.ErrorIs(t, err, service.ErrInvalidPassword)

	tok, exp, err := auth.Login(ctx, "s3cret")
	require.NoError(t, err)
	assert.True(t, exp.After(time.Now()))

	assert.NoError(t, auth.Authorize(ctx, tok))
	assert.ErrorIs(t, auth.Authorize(ctx, "garbage"), service.ErrUnauthorized)
	assert.ErrorIs(t, auth.Authorize(ctx, ""), service.ErrUnauthorized)
}
