package blob

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiskStoreSaveAndRemove(t *testing.T) {
	dir := t.TempDir()
	s, err := NewDiskStore(dir)
	require.NoError(t, err)
	ctx := context.Background()

	path, n, err := s.Save(ctx, strings.NewReader("fake-png-bytes"), "photo.png")
	require.NoError(t, err)
	assert.EqualValues(t, 14, n)
	assert.True(t, strings.HasPrefix(path, PublicPrefix))
	assert.True(t, strings.HasSuffix(path, ".png"))

	onDisk := filepath.Join(dir, strings.TrimPrefix(path, PublicPrefix))
	raw, err := os.ReadFile(onDisk)
	require.NoError(t, err)
	assert.Equal(t, "fake-png-bytes", string(raw))

	require.NoError(t, s.Remove(ctx, path))
	_, err = os.Stat(onDisk)
	assert.True(t, os.IsNotExist(err))
}

func TestDiskStoreGeneratesUniqueNames(t *testing.T) {
	s, err := NewDiskStore(t.TempDir())
	require.NoError(t, err)

	a, _, err := s.Save(context.Background(), strings.NewReader("a"), ".jpg")
	require.NoError(t, err)
	b, _, err := s.Save(context.Background(), strings.NewReader("b"), ".jpg")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestDiskStoreRemoveRejectsForeignPaths(t *testing.T) {
	s, err := NewDiskStore(t.TempDir())
	require.NoError(t, err)

	assert.Error(t, s.Remove(context.Background(), "https://example.com/image.png"))
	assert.Error(t, s.Remove(context.Background(), "/etc/passwd"))
}

func TestDiskStoreRemoveMissingBlobErrors(t *testing.T) {
	s, err := NewDiskStore(t.TempDir())
	require.NoError(t, err)
	assert.Error(t, s.Remove(context.Background(), PublicPrefix+"gone.png"))
}
