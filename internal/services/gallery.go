package services

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lionetto/portfolio-server/internal/auth"
	"github.com/lionetto/portfolio-server/internal/blob"
	"github.com/lionetto/portfolio-server/internal/events"
	"github.com/lionetto/portfolio-server/internal/model"
	"github.com/lionetto/portfolio-server/internal/store"
)

const (
	defaultItemTitle = "New Project"
	defaultItemLink  = "#"
)

// GalleryService owns the portfolio list and its uploaded images.
type GalleryService struct {
	store store.Store
	gate  auth.Authorizer
	blobs blob.Store
	bus   *events.Bus
	log   zerolog.Logger
}

func NewGalleryService(s store.Store, gate auth.Authorizer, blobs blob.Store, bus *events.Bus, log zerolog.Logger) *GalleryService {
	return &GalleryService{store: s, gate: gate, blobs: blobs, bus: bus, log: log}
}

// List returns all items in stored order.
func (s *GalleryService) List(ctx context.Context) ([]model.PortfolioItem, error) {
	return s.store.Gallery().List(ctx)
}

// CreateItemRequest carries one gallery creation. Image is the uploaded
// payload and Filename its client-supplied name, used only for the extension.
type CreateItemRequest struct {
	Image      io.Reader
	Filename   string
	Title      string
	Link       string
	Credential string
}

// Create stores the uploaded image, appends a new record with a fresh unique
// id and broadcasts a gallery refresh.
func (s *GalleryService) Create(ctx context.Context, req CreateItemRequest) (*model.PortfolioItem, error) {
	if err := s.gate.Authorize(ctx, req.Credential); err != nil {
		return nil, err
	}
	if req.Image == nil {
		return nil, fmt.Errorf("%w: image is required", model.ErrValidation)
	}

	imageURL, n, err := s.blobs.Save(ctx, req.Image, req.Filename)
	if err != nil {
		return nil, fmt.Errorf("store gallery image: %w", err)
	}
	if n == 0 {
		if rmErr := s.blobs.Remove(ctx, imageURL); rmErr != nil {
			s.log.Warn().Err(rmErr).Str("path", imageURL).Msg("failed to remove empty upload")
		}
		return nil, fmt.Errorf("%w: image is required", model.ErrValidation)
	}

	items, err := s.store.Gallery().List(ctx)
	if err != nil {
		return nil, err
	}

	item := model.PortfolioItem{
		ID:    uuid.New().String(),
		Image: imageURL,
		Link:  req.Link,
		Title: req.Title,
	}
	if item.Link == "" {
		item.Link = defaultItemLink
	}
	if item.Title == "" {
		item.Title = defaultItemTitle
	}

	if err := s.store.Gallery().Replace(ctx, append(items, item)); err != nil {
		return nil, err
	}

	s.bus.Publish(events.Event{Kind: events.KindGalleryUpdated})
	s.log.Info().Str("id", item.ID).Str("title", item.Title).Msg("portfolio item created")
	return &item, nil
}

// Delete removes the item with the given id and, best effort, its locally
// stored image. The record removal is the authoritative state change; a
// failed blob removal is logged and does not fail the delete.
func (s *GalleryService) Delete(ctx context.Context, id, credential string) error {
	if err := s.gate.Authorize(ctx, credential); err != nil {
		return err
	}

	items, err := s.store.Gallery().List(ctx)
	if err != nil {
		return err
	}

	idx := -1
	for i, it := range items {
		if it.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return fmt.Errorf("%w: portfolio item %s", model.ErrNotFound, id)
	}

	if img := items[idx].Image; strings.HasPrefix(img, blob.PublicPrefix) {
		if err := s.blobs.Remove(ctx, img); err != nil {
			s.log.Warn().Err(err).Str("id", id).Str("path", img).Msg("failed to remove gallery image")
		}
	}

	survivors := append(items[:idx:idx], items[idx+1:]...)
	if err := s.store.Gallery().Replace(ctx, survivors); err != nil {
		return err
	}

	s.bus.Publish(events.Event{Kind: events.KindGalleryUpdated})
	s.log.Info().Str("id", id).Msg("portfolio item deleted")
	return nil
}
