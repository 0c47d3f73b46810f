package storetest

import (
	"context"
	"errors"
	"testing"

	"github.com/lionetto/portfolio-server/internal/model"
	"github.com/lionetto/portfolio-server/internal/store"
)

// Run exercises a compliance suite against a store.Store implementation.
// makeStore must return a clean, isolated store per invocation.
func Run(t *testing.T, makeStore func(t *testing.T) store.Store) {
	t.Helper()

	ctx := context.Background()

	t.Run("ContentNotFoundBeforeFirstWrite", func(t *testing.T) {
		s := makeStore(t)
		if _, err := s.Contents().Get(ctx); !errors.Is(err, model.ErrNotFound) {
			t.Fatalf("Get on empty store: want ErrNotFound, got %v", err)
		}
	})

	t.Run("ContentReplaceRoundTrip", func(t *testing.T) {
		s := makeStore(t)
		doc := model.DefaultSiteContent()
		doc.Hero.Name = "Round Trip"
		if err := s.Contents().Replace(ctx, doc); err != nil {
			t.Fatalf("Replace: %v", err)
		}
		got, err := s.Contents().Get(ctx)
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		assertContentEqual(t, doc, got)
	})

	t.Run("ContentReplaceOverwritesWholesale", func(t *testing.T) {
		s := makeStore(t)
		first := model.DefaultSiteContent()
		if err := s.Contents().Replace(ctx, first); err != nil {
			t.Fatalf("Replace: %v", err)
		}
		second := model.DefaultSiteContent()
		second.Hero.Name = "Second Write"
		second.Experiences = nil
		if err := s.Contents().Replace(ctx, second); err != nil {
			t.Fatalf("Replace: %v", err)
		}
		got, err := s.Contents().Get(ctx)
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if got.Hero.Name != "Second Write" {
			t.Fatalf("Hero.Name = %q, want %q", got.Hero.Name, "Second Write")
		}
		if len(got.Experiences) != 0 {
			t.Fatalf("Experiences survived overwrite: %d entries", len(got.Experiences))
		}
	})

	t.Run("GalleryNotFoundBeforeFirstWrite", func(t *testing.T) {
		s := makeStore(t)
		if _, err := s.Gallery().List(ctx); !errors.Is(err, model.ErrNotFound) {
			t.Fatalf("List on empty store: want ErrNotFound, got %v", err)
		}
	})

	t.Run("GalleryPreservesOrder", func(t *testing.T) {
		s := makeStore(t)
		items := model.DefaultPortfolio()
		if err := s.Gallery().Replace(ctx, items); err != nil {
			t.Fatalf("Replace: %v", err)
		}
		got, err := s.Gallery().List(ctx)
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if len(got) != len(items) {
			t.Fatalf("List: n=%d, want %d", len(got), len(items))
		}
		for i := range items {
			if got[i] != items[i] {
				t.Fatalf("item %d = %+v, want %+v", i, got[i], items[i])
			}
		}
	})

	t.Run("GalleryEmptyListIsNotAnError", func(t *testing.T) {
		s := makeStore(t)
		if err := s.Gallery().Replace(ctx, []model.PortfolioItem{}); err != nil {
			t.Fatalf("Replace: %v", err)
		}
		got, err := s.Gallery().List(ctx)
		if err != nil {
			t.Fatalf("List after empty write: %v", err)
		}
		if len(got) != 0 {
			t.Fatalf("List: n=%d, want 0", len(got))
		}
	})

	t.Run("GalleryReplaceDropsRemovedItems", func(t *testing.T) {
		s := makeStore(t)
		items := model.DefaultPortfolio()
		if err := s.Gallery().Replace(ctx, items); err != nil {
			t.Fatalf("Replace: %v", err)
		}
		survivors := append([]model.PortfolioItem(nil), items[0], items[2], items[3])
		if err := s.Gallery().Replace(ctx, survivors); err != nil {
			t.Fatalf("Replace: %v", err)
		}
		got, err := s.Gallery().List(ctx)
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if len(got) != 3 {
			t.Fatalf("List: n=%d, want 3", len(got))
		}
		for i := range survivors {
			if got[i].ID != survivors[i].ID {
				t.Fatalf("survivor order broken at %d: got %s want %s", i, got[i].ID, survivors[i].ID)
			}
		}
	})
}

func assertContentEqual(t *testing.T, want, got *model.SiteContent) {
	t.Helper()
	if got.Hero != want.Hero || got.About != want.About || got.Theme != want.Theme || got.Manifesto != want.Manifesto {
		t.Fatalf("scalar sections differ:\n got %+v\nwant %+v", got, want)
	}
	if len(got.Experiences) != len(want.Experiences) ||
		len(got.Education) != len(want.Education) ||
		len(got.Languages) != len(want.Languages) ||
		len(got.Skills) != len(want.Skills) {
		t.Fatalf("list lengths differ: got %+v", got)
	}
	for i := range want.Experiences {
		if got.Experiences[i] != want.Experiences[i] {
			t.Fatalf("experience %d differs", i)
		}
	}
	for i := range want.Skills {
		if got.Skills[i] != want.Skills[i] {
			t.Fatalf("skill %d differs", i)
		}
	}
}
