package file

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lionetto/portfolio-server/internal/model"
	"github.com/lionetto/portfolio-server/internal/store"
	"github.com/lionetto/portfolio-server/internal/store/storetest"
)

func TestFileStoreCompliance(t *testing.T) {
	storetest.Run(t, func(t *testing.T) store.Store {
		s, err := New(t.TempDir())
		require.NoError(t, err)
		return s
	})
}

func TestNewCreatesDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	_, err := New(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestNewRejectsEmptyDir(t *testing.T) {
	_, err := New("")
	require.Error(t, err)
}

func TestWriteLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir)
	require.NoError(t, err)

	require.NoError(t, s.Contents().Replace(context.Background(), model.DefaultSiteContent()))
	require.NoError(t, s.Gallery().Replace(context.Background(), model.DefaultPortfolio()))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.False(t, strings.HasPrefix(e.Name(), ".portfolio-tmp-"), "leftover temp file %s", e.Name())
	}
}

func TestStoredFilesAreWireFormatJSON(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir)
	require.NoError(t, err)
	require.NoError(t, s.Contents().Replace(context.Background(), model.DefaultSiteContent()))

	raw, err := os.ReadFile(filepath.Join(dir, "site_content.json"))
	require.NoError(t, err)

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Contains(t, doc, "hero")
	assert.Contains(t, doc, "experiences")
}

func TestCorruptFileSurfacesError(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "portfolio.json"), []byte("{not json"), 0o644))

	_, err = s.Gallery().List(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, model.ErrNotFound)
}
