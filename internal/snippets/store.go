// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package snippets persists keyword hits scanned out of the PDF reports,
// so curated evidence can be reviewed later without re-reading the PDFs.
package snippets

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/azedda/sitekit/internal/pdftext"
)

const (
	indexDir = "index"
	dbFile   = "snippets.db"
)

const defaultMaxResults = 20

// Store manages the snippet index SQLite database.
type Store struct {
	db         *sql.DB
	maxResults int
}

// Open opens or creates the snippet database at dataDir/index/snippets.db,
// creating the schema if needed. maxResults <= 0 falls back to the default.
func Open(dataDir string, maxResults int) (*Store, error) {
	dir := filepath.Join(dataDir, indexDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating index directory: %w", err)
	}

	dbPath := filepath.Join(dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}

	s := &Store{db: db, maxResults: maxResults}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS hits (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			pdf TEXT NOT NULL,
			keyword TEXT NOT NULL,
			line INTEGER NOT NULL,
			context TEXT NOT NULL,
			recorded_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_hits_keyword ON hits(keyword)`,
		`CREATE INDEX IF NOT EXISTS idx_hits_pdf ON hits(pdf)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// ReplaceScan stores the hits of one scan of pdfName, replacing any rows
// from a previous scan of the same file. One row is written per
// (line, keyword) pair.
func (s *Store) ReplaceScan(ctx context.Context, pdfName string, hits []pdftext.Hit) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM hits WHERE pdf = ?`, pdfName); err != nil {
		return fmt.Errorf("clearing previous scan of %s: %w", pdfName, err)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	for _, hit := range hits {
		for _, kw := range hit.Keywords {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO hits (pdf, keyword, line, context, recorded_at) VALUES (?, ?, ?, ?, ?)`,
				pdfName, kw, hit.Line, hit.Context, now,
			); err != nil {
				return fmt.Errorf("inserting hit for %s: %w", pdfName, err)
			}
		}
	}

	return tx.Commit()
}

// StoredHit is one row of the snippet index.
type StoredHit struct {
	PDF        string
	Keyword    string
	Line       int
	Context    string
	RecordedAt time.Time
}

// Hits returns stored hits for keyword, or all hits when keyword is
// empty, ordered by file then line and capped at the store's max-results.
func (s *Store) Hits(ctx context.Context, keyword string) ([]StoredHit, error) {
	query := `SELECT pdf, keyword, line, context, recorded_at FROM hits`
	args := []any{}
	if keyword != "" {
		query += ` WHERE keyword = ? COLLATE NOCASE`
		args = append(args, keyword)
	}
	query += ` ORDER BY pdf, line LIMIT ?`
	args = append(args, s.maxResults)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying hits: %w", err)
	}
	defer rows.Close()

	var hits []StoredHit
	for rows.Next() {
		var h StoredHit
		var recorded string
		if err := rows.Scan(&h.PDF, &h.Keyword, &h.Line, &h.Context, &recorded); err != nil {
			return nil, fmt.Errorf("scanning hit row: %w", err)
		}
		if t, err := time.Parse(time.RFC3339, recorded); err == nil {
			h.RecordedAt = t
		}
		hits = append(hits, h)
	}
	return hits, rows.Err()
}
