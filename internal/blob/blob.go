// Package blob stores uploaded images as discrete files addressed by a
// generated name and referenced by /uploads/ paths from the site documents.
package blob

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// PublicPrefix is the URL prefix under which stored blobs are served.
const PublicPrefix = "/uploads/"

// Store persists uploaded binaries.
type Store interface {
	// Save stores the payload under a fresh generated name with the given
	// extension and returns its public path and the number of bytes written.
	Save(ctx context.Context, r io.Reader, ext string) (string, int64, error)
	// Remove deletes a previously stored blob by its public path. Paths
	// outside PublicPrefix are rejected.
	Remove(ctx context.Context, publicPath string) error
}

type diskStore struct {
	dir string
}

// NewDiskStore creates (if needed) the uploads directory and returns a
// disk-backed blob store over it.
func NewDiskStore(dir string) (Store, error) {
	if dir == "" {
		return nil, fmt.Errorf("blob store: uploads dir is empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("blob store: create uploads dir: %w", err)
	}
	return &diskStore{dir: dir}, nil
}

func (s *diskStore) Save(_ context.Context, r io.Reader, ext string) (string, int64, error) {
	if r == nil {
		return "", 0, fmt.Errorf("blob store: nil payload")
	}
	// Keep only a sane extension; uploads arrive with attacker-chosen names.
	ext = filepath.Ext(filepath.Base(ext))
	name := uuid.New().String() + ext

	f, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", 0, fmt.Errorf("blob store: create %s: %w", name, err)
	}
	n, err := io.Copy(f, r)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(filepath.Join(s.dir, name))
		return "", 0, fmt.Errorf("blob store: write %s: %w", name, err)
	}
	return PublicPrefix + name, n, nil
}

func (s *diskStore) Remove(_ context.Context, publicPath string) error {
	if !strings.HasPrefix(publicPath, PublicPrefix) {
		return fmt.Errorf("blob store: %s is not a stored blob path", publicPath)
	}
	name := filepath.Base(strings.TrimPrefix(publicPath, PublicPrefix))
	if err := os.Remove(filepath.Join(s.dir, name)); err != nil {
		return fmt.Errorf("blob store: remove %s: %w", name, err)
	}
	return nil
}
