package services

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/lionetto/portfolio-server/internal/auth"
	"github.com/lionetto/portfolio-server/internal/blob"
	"github.com/lionetto/portfolio-server/internal/events"
	"github.com/lionetto/portfolio-server/internal/model"
	"github.com/lionetto/portfolio-server/internal/store"
)

// ContentService owns reads and writes of the site-content document.
type ContentService struct {
	store store.Store
	gate  auth.Authorizer
	blobs blob.Store
	bus   *events.Bus
	log   zerolog.Logger
}

func NewContentService(s store.Store, gate auth.Authorizer, blobs blob.Store, bus *events.Bus, log zerolog.Logger) *ContentService {
	return &ContentService{store: s, gate: gate, blobs: blobs, bus: bus, log: log}
}

// Get returns the current document, or model.ErrNotFound if the store was
// never seeded.
func (s *ContentService) Get(ctx context.Context) (*model.SiteContent, error) {
	return s.store.Contents().Get(ctx)
}

// Replace validates the credential, overwrites the stored document wholesale
// and broadcasts a content refresh. The stored document is untouched when the
// credential is rejected.
func (s *ContentService) Replace(ctx context.Context, doc *model.SiteContent, credential string) error {
	if err := s.gate.Authorize(ctx, credential); err != nil {
		return err
	}
	if doc == nil {
		return fmt.Errorf("%w: content is required", model.ErrValidation)
	}
	if err := s.store.Contents().Replace(ctx, doc); err != nil {
		return err
	}
	s.bus.Publish(events.Event{Kind: events.KindContentUpdated})
	s.log.Info().Msg("site content replaced")
	return nil
}

// UploadProfileImage stores a new profile picture and returns its public URL.
// The caller saves the URL into theme.profileImage with a regular Replace.
func (s *ContentService) UploadProfileImage(ctx context.Context, image io.Reader, filename, credential string) (string, error) {
	if err := s.gate.Authorize(ctx, credential); err != nil {
		return "", err
	}
	if image == nil {
		return "", fmt.Errorf("%w: image is required", model.ErrValidation)
	}
	url, n, err := s.blobs.Save(ctx, image, filename)
	if err != nil {
		return "", fmt.Errorf("store profile image: %w", err)
	}
	if n == 0 {
		if rmErr := s.blobs.Remove(ctx, url); rmErr != nil {
			s.log.Warn().Err(rmErr).Str("path", url).Msg("failed to remove empty upload")
		}
		return "", fmt.Errorf("%w: image is required", model.ErrValidation)
	}
	s.log.Info().Str("path", url).Int64("bytes", n).Msg("profile image uploaded")
	return url, nil
}
