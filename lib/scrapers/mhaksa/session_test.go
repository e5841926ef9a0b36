package mhaksa

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTokenValid(t *testing.T) {
	require.False(t, tokenValid("ABCDEF0123456789"))
	require.False(t, tokenValid(""))
	require.True(t, tokenValid("ABCDEF0123456789.chusa_servlet_HAKSA01"))
}

func TestAcquireSessionRequiresCredentials(t *testing.T) {
	_, err := AcquireSession(context.Background(), LoginOptions{
		EntryUrl: "https://example.invalid/index.html",
	})
	require.ErrorIs(t, err, ErrMissingCredentials)
}
