package factory

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/lionetto/portfolio-server/internal/config"
	"github.com/lionetto/portfolio-server/internal/model"
	storepkg "github.com/lionetto/portfolio-server/internal/store"
	storefile "github.com/lionetto/portfolio-server/internal/store/file"
	storepg "github.com/lionetto/portfolio-server/internal/store/postgres"
	storesqlite "github.com/lionetto/portfolio-server/internal/store/sqlite"
)

// NewStore constructs the document store selected by cfg.StoreDriver.
func NewStore(ctx context.Context, cfg *config.Config, log zerolog.Logger) (storepkg.Store, error) {
	switch cfg.StoreDriver {
	case "file":
		st, err := storefile.New(cfg.DataDir)
		if err != nil {
			return nil, err
		}
		log.Info().Str("driver", "file").Str("data_dir", cfg.DataDir).Msg("document store ready")
		return st, nil
	case "sqlite":
		db, err := storesqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		log.Info().Str("driver", "sqlite").Str("path", cfg.SQLitePath).Msg("document store ready")
		return storesqlite.NewWithDB(db), nil
	case "postgres":
		db, err := storepg.Open(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, err
		}
		log.Info().Str("driver", "postgres").Msg("document store ready")
		return storepg.NewWithDB(db), nil
	default:
		return nil, fmt.Errorf("unknown PORTFOLIO_STORE_DRIVER: %s", cfg.StoreDriver)
	}
}

// EnsureSeeded writes the default documents for anything the store has never
// seen, so the first GET after first boot already serves real content.
func EnsureSeeded(ctx context.Context, st storepkg.Store, log zerolog.Logger) error {
	if _, err := st.Contents().Get(ctx); err != nil {
		if !errors.Is(err, model.ErrNotFound) {
			return fmt.Errorf("seed check for site content: %w", err)
		}
		if err := st.Contents().Replace(ctx, model.DefaultSiteContent()); err != nil {
			return fmt.Errorf("seed site content: %w", err)
		}
		log.Info().Msg("seeded default site content")
	}

	if _, err := st.Gallery().List(ctx); err != nil {
		if !errors.Is(err, model.ErrNotFound) {
			return fmt.Errorf("seed check for portfolio: %w", err)
		}
		if err := st.Gallery().Replace(ctx, model.DefaultPortfolio()); err != nil {
			return fmt.Errorf("seed portfolio: %w", err)
		}
		log.Info().Msg("seeded default portfolio")
	}
	return nil
}
