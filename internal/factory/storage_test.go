package factory

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lionetto/portfolio-server/internal/config"
)

func TestNewStoreSelectsDriver(t *testing.T) {
	ctx := context.Background()
	log := zerolog.Nop()

	t.Run("file", func(t *testing.T) {
		cfg := config.NewForTesting()
		cfg.StoreDriver = "file"
		cfg.DataDir = t.TempDir()
		st, err := NewStore(ctx, cfg, log)
		require.NoError(t, err)
		require.NotNil(t, st)
	})

	t.Run("sqlite", func(t *testing.T) {
		cfg := config.NewForTesting()
		cfg.StoreDriver = "sqlite"
		cfg.SQLitePath = filepath.Join(t.TempDir(), "p.db")
		st, err := NewStore(ctx, cfg, log)
		require.NoError(t, err)
		require.NotNil(t, st)
	})

	t.Run("unknown", func(t *testing.T) {
		cfg := config.NewForTesting()
		cfg.StoreDriver = "redis"
		_, err := NewStore(ctx, cfg, log)
		require.Error(t, err)
	})
}

func TestEnsureSeededIsIdempotent(t *testing.T) {
	ctx := context.Background()
	log := zerolog.Nop()
	cfg := config.NewForTesting()
	cfg.DataDir = t.TempDir()

	st, err := NewStore(ctx, cfg, log)
	require.NoError(t, err)

	require.NoError(t, EnsureSeeded(ctx, st, log))
	doc, err := st.Contents().Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Federica Lionetto", doc.Hero.Name)

	items, err := st.Gallery().List(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 4)

	// An admin edit must survive a later seeding pass.
	doc.Hero.Name = "Edited"
	require.NoError(t, st.Contents().Replace(ctx, doc))
	require.NoError(t, EnsureSeeded(ctx, st, log))

	got, err := st.Contents().Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Edited", got.Hero.Name)
}
