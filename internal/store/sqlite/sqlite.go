// Package sqlite implements the document store on an embedded SQLite
// database. Both site documents live in a single key-value documents table.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/lionetto/portfolio-server/internal/model"
	"github.com/lionetto/portfolio-server/internal/store"
)

const (
	keySiteContent = "site_content"
	keyPortfolio   = "portfolio"
)

// Open opens (or creates) a SQLite database at the given path with WAL mode
// enabled, creating the parent directory and schema as needed.
func Open(path string) (*sql.DB, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := ensureSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func ensureSchema(db *sql.DB) error {
	_, err := db.Exec(`
        CREATE TABLE IF NOT EXISTS documents (
            key        TEXT PRIMARY KEY,
            data       TEXT NOT NULL,
            updated_at TIMESTAMP NOT NULL
        )`)
	return err
}

// NewWithDB wraps an existing connection opened via Open.
func NewWithDB(db *sql.DB) store.Store { return &sqliteStore{db: db} }

type sqliteStore struct{ db *sql.DB }

func (s *sqliteStore) Contents() store.Contents { return &contents{db: s.db} }
func (s *sqliteStore) Gallery() store.Gallery   { return &gallery{db: s.db} }

func getDocument(ctx context.Context, db *sql.DB, key string, out interface{}) error {
	var raw string
	row := db.QueryRowContext(ctx, `SELECT data FROM documents WHERE key = ?`, key)
	if err := row.Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.ErrNotFound
		}
		return fmt.Errorf("read document %s: %w", key, err)
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
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
        INSERT INTO documents (key, data, updated_at) VALUES (?, ?, ?)
        ON CONFLICT(key) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		key, string(raw), time.Now().UTC())
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
