package token

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHSProvider_SignAndValidate(t *testing.T) {
	p := NewHSProvider("secret", "storefront", "admin")
	ctx := context.Background()

	tok, exp, err := p.SignAdmin(ctx, time.Hour)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)
	assert.NoError(t, p.ValidateAdmin(ctx, tok))

	other := NewHSProvider("another-secret", "storefront", "admin")
	assert.Error(t, other.ValidateAdmin(ctx, tok))

	wrongAud := NewHSProvider("secret", "storefront", "customers")
	assert.Error(t, wrongAud.ValidateAdmin(ctx, tok))
}

func TestHSProvider_Expired(t *testing.T) {
	p := NewHSProvider("secret", "storefront", "admin")
	past := time.Now().Add(-2 * time.Hour)
	p.now = func() time.Time { return past }

	tok, _, err := p.SignAdmin(context.Background(), time.Hour)
	require.NoError(t, err)

	p.now = time.Now
	assert.Error(t, p.ValidateAdmin(context.Background(), tok))
}
