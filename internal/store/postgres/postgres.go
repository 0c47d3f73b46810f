// Package postgres implements the document store on PostgreSQL via the pgx
// stdlib driver, for deployments where the data directory is not durable.
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/lionetto/portfolio-server/internal/model"
	"github.com/lionetto/portfolio-server/internal/store"
)

const (
	keySiteContent = "site_content"
	keyPortfolio   = "portfolio"
)

// Open opens a PostgreSQL connection, verifies connectivity, and ensures the
// documents table exists.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("postgres DSN is empty")
	}
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	if _, err := db.ExecContext(ctx, `
        CREATE TABLE IF NOT EXISTS documents (
            key        TEXT PRIMARY KEY,
            data       JSONB NOT NULL,
            updated_at TIMESTAMPTZ NOT NULL
        )`); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// NewWithDB constructs a Postgres-backed store over an existing connection.
func NewWithDB(db *sql.DB) store.Store { return &pgStore{db: db} }

type pgStore struct{ db *sql.DB }

func (s *pgStore) Contents() store.Contents { return &contents{db: s.db} }
func (s *pgStore) Gallery() store.Gallery   { return &gallery{db: s.db} }

// HealthPing reports database reachability.
func (s *pgStore) HealthPing(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func getDocument(ctx context.Context, db *sql.DB, key string, out interface{}) error {
	var raw []byte
	row := db.QueryRowContext(ctx, `SELECT data FROM documents WHERE key = $1`, key)
	if err := row.Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.ErrNotFound
		}
		return fmt.Errorf("read document %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode document %s: %w", key, err)
	}
	return nil
}

func putDocument(ctx context.Context, db *sql.DB, key string, doc interface{}) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode document %s: %w", key, err)
	}
	_, err = db.ExecContext(ctx, `
        INSERT INTO documents (key, data, updated_at) VALUES ($1, $2, $3)
        ON CONFLICT (key) DO UPDATE SET data = EXCLUDED.data, updated_at = EXCLUDED.updated_at`,
		key, raw, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("write document %s: %w", key, err)
	}
	return nil
}

type contents struct{ db *sql.DB }

func (c *contents) Get(ctx context.Context) (*model.SiteContent, error) {
	var doc model.SiteContent
	if err := getDocument(ctx, c.db, keySiteContent, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (c *contents) Replace(ctx context.Context, doc *model.SiteContent) error {
	return putDocument(ctx, c.db, keySiteContent, doc)
}

type gallery struct{ db *sql.DB }

func (g *gallery) List(ctx context.Context) ([]model.PortfolioItem, error) {
	items := []model.PortfolioItem{}
	if err := getDocument(ctx, g.db, keyPortfolio, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (g *gallery) Replace(ctx context.Context, items []model.PortfolioItem) error {
	if items == nil {
		items = []model.PortfolioItem{}
	}
	return putDocument(ctx, g.db, keyPortfolio, items)
}
