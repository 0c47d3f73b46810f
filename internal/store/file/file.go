// Package file implements the document store on flat JSON files, matching the
// original data/ directory layout (site_content.json, portfolio.json).
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/lionetto/portfolio-server/internal/model"
	"github.com/lionetto/portfolio-server/internal/store"
)

const (
	contentFile   = "site_content.json"
	portfolioFile = "portfolio.json"
)

type fileStore struct {
	dir string
	// Serializes document read-modify-write cycles within this process.
	// Cross-process writers are still last-writer-wins.
	mu sync.Mutex
}

// New creates (if needed) the data directory and returns a store over it.
func New(dir string) (store.Store, error) {
	if dir == "" {
		return nil, fmt.Errorf("file store: data dir is empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("file store: create data dir: %w", err)
	}
	return &fileStore{dir: dir}, nil
}

func (s *fileStore) Contents() store.Contents { return &contents{s} }
func (s *fileStore) Gallery() store.Gallery   { return &gallery{s} }

func (s *fileStore) read(name string, out interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	raw, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return model.ErrNotFound
		}
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}

func (s *fileStore) write(name string, doc interface{}) error {
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return writeFileAtomic(filepath.Join(s.dir, name), raw, 0o644)
}

// writeFileAtomic writes data to a temp file in the target directory and
// renames it into place so readers never observe a partial document.
func writeFileAtomic(filename string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(filename)
	tmp, err := os.CreateTemp(dir, ".portfolio-tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmp.Name(), perm); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), filename); err != nil {
		return fmt.Errorf("rename temp file to %s: %w", filename, err)
	}
	return nil
}

type contents struct{ s *fileStore }

func (c *contents) Get(ctx context.Context) (*model.SiteContent, error) {
	var doc model.SiteContent
	if err := c.s.read(contentFile, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (c *contents) Replace(ctx context.Context, doc *model.SiteContent) error {
	return c.s.write(contentFile, doc)
}

type gallery struct{ s *fileStore }

func (g *gallery) List(ctx context.Context) ([]model.PortfolioItem, error) {
	var items []model.PortfolioItem
	if err := g.s.read(portfolioFile, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []model.PortfolioItem{}
	}
	return items, nil
}

func (g *gallery) Replace(ctx context.Context, items []model.PortfolioItem) error {
	if items == nil {
		items = []model.PortfolioItem{}
	}
	return g.s.write(portfolioFile, items)
}
