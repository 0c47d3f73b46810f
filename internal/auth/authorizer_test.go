package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lionetto/portfolio-server/internal/model"
)

func TestStaticAuthorizer(t *testing.T) {
	ctx := context.Background()
	gate := NewStatic("federica2024")

	require.NoError(t, gate.Authorize(ctx, "federica2024"))

	for _, bad := range []string{"", "wrong", "federica2024 ", "FEDERICA2024"} {
		err := gate.Authorize(ctx, bad)
		require.Error(t, err, "credential %q", bad)
		assert.ErrorIs(t, err, model.ErrUnauthorized)
	}
}

func TestStaticAuthorizerEmptySecretStillMatchesExactly(t *testing.T) {
	gate := NewStatic("")
	require.NoError(t, gate.Authorize(context.Background(), ""))
	assert.ErrorIs(t, gate.Authorize(context.Background(), "x"), model.ErrUnauthorized)
}
