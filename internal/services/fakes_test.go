package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/lionetto/portfolio-server/internal/model"
	"github.com/lionetto/portfolio-server/internal/store"
)

// --- Fakes ---

type memStore struct {
	doc     *model.SiteContent
	items   []model.PortfolioItem
	seeded  bool
	failAll bool
}

func newMemStore() *memStore {
	return &memStore{
		doc:    model.DefaultSiteContent(),
		items:  model.DefaultPortfolio(),
		seeded: true,
	}
}

func (f *memStore) Contents() store.Contents { return &memContents{f} }
func (f *memStore) Gallery() store.Gallery   { return &memGallery{f} }

type memContents struct{ p *memStore }

func (c *memContents) Get(context.Context) (*model.SiteContent, error) {
	if c.p.failAll {
		return nil, errors.New("store unavailable")
	}
	if !c.p.seeded || c.p.doc == nil {
		return nil, model.ErrNotFound
	}
	return c.p.doc.Clone(), nil
}

func (c *memContents) Replace(_ context.Context, doc *model.SiteContent) error {
	if c.p.failAll {
		return errors.New("store unavailable")
	}
	c.p.doc = doc.Clone()
	c.p.seeded = true
	return nil
}

type memGallery struct{ p *memStore }

func (g *memGallery) List(context.Context) ([]model.PortfolioItem, error) {
	if g.p.failAll {
		return nil, errors.New("store unavailable")
	}
	if !g.p.seeded {
		return nil, model.ErrNotFound
	}
	return append([]model.PortfolioItem(nil), g.p.items...), nil
}

func (g *memGallery) Replace(_ context.Context, items []model.PortfolioItem) error {
	if g.p.failAll {
		return errors.New("store unavailable")
	}
	g.p.items = append([]model.PortfolioItem(nil), items...)
	g.p.seeded = true
	return nil
}

type fakeBlobs struct {
	saved      []string
	removed    []string
	failRemove bool
	n          int
}

func (f *fakeBlobs) Save(_ context.Context, r io.Reader, ext string) (string, int64, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return "", 0, err
	}
	f.n++
	path := fmt.Sprintf("/uploads/fake-%d%s", f.n, extOf(ext))
	f.saved = append(f.saved, path)
	return path, int64(len(raw)), nil
}

func (f *fakeBlobs) Remove(_ context.Context, publicPath string) error {
	if f.failRemove {
		return errors.New("disk error")
	}
	f.removed = append(f.removed, publicPath)
	return nil
}

func extOf(name string) string {
	if i := strings.LastIndex(name, "."); i >= 0 {
		return name[i:]
	}
	return ""
}
