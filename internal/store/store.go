package store

import (
	"context"

	"github.com/lionetto/portfolio-server/internal/model"
)

// Store exposes persistence for the two site documents. Implementations live
// under internal/store/<driver>/ (file, sqlite, postgres).
type Store interface {
	Contents() Contents
	Gallery() Gallery
}

// Contents persists the single site-content document. Every write replaces
// the whole document; there is no field-level patching.
type Contents interface {
	// Get returns the current document or model.ErrNotFound when no document
	// has ever been written.
	Get(ctx context.Context) (*model.SiteContent, error)
	// Replace overwrites the stored document wholesale.
	Replace(ctx context.Context, doc *model.SiteContent) error
}

// Gallery persists the portfolio list as one document, preserving order.
type Gallery interface {
	// List returns all items in stored order, or model.ErrNotFound when the
	// list has never been written. An empty stored list is not an error.
	List(ctx context.Context) ([]model.PortfolioItem, error)
	// Replace overwrites the stored list wholesale.
	Replace(ctx context.Context, items []model.PortfolioItem) error
}
