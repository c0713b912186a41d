// Package search is a read-only full-text index over the whole catalog:
// pattern topics, setup steps, best practices and reference pages.
//
// The index lives in an in-memory SQLite database with an FTS5 table. It
// is built once at startup and never written afterwards.
package search

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/expo-kit/rn-expo-mcp/internal/config"
)

// openDB is a package-level var to allow test injection.
var openDB = sql.Open

// Kind classifies an indexed document.
type Kind string

const (
	KindPattern   Kind = "pattern"
	KindSetup     Kind = "setup"
	KindPractice  Kind = "practice"
	KindReference Kind = "reference"
)

// Document is one searchable unit. Family, Key and Router locate it:
// a pattern is (Family, Key), a setup step is (Key=step number, Router),
// a practice is Key=category, a reference page is Key=page name.
type Document struct {
	Kind   Kind
	Family string
	Key    string
	Router string
	Title  string
	Body   string
}

// Result is a ranked match with a highlighted excerpt.
type Result struct {
	Kind    Kind
	Family  string
	Key     string
	Router  string
	Title   string
	Snippet string
	Rank    float64
}

// Index is safe for concurrent use.
type Index struct {
	db *sql.DB
}

// New builds an index over docs.
func New(ctx context.Context, docs []Document) (*Index, error) {
	db, err := openDB("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("search: open database: %w", err)
	}

	// Every connection to ":memory:" is a separate database.
	db.SetMaxOpenConns(1)

	ix := &Index{db: db}
	if err := ix.migrate(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("search: migration: %w", err)
	}
	if err := ix.insert(ctx, docs); err != nil {
		_ = db.Close()
		return nil, err
	}
	return ix, nil
}

// Close releases the database.
func (ix *Index) Close() error {
	return ix.db.Close()
}

// ─── Schema ────────────────────────────────────────────────────────────

func (ix *Index) migrate(ctx context.Context) error {
	_, err := ix.db.ExecContext(ctx, `
		CREATE VIRTUAL TABLE IF NOT EXISTS docs_fts USING fts5(
			title,
			body,
			kind    UNINDEXED,
			family  UNINDEXED,
			doc_key UNINDEXED,
			router  UNINDEXED,
			tokenize = 'porter unicode61'
		);
	`)
	return err
}

func (ix *Index) insert(ctx context.Context, docs []Document) error {
	tx, err := ix.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("search: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO docs_fts (title, body, kind, family, doc_key, router) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("search: prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, d := range docs {
		if _, err := stmt.ExecContext(ctx, d.Title, d.Body, string(d.Kind), d.Family, d.Key, d.Router); err != nil {
			return fmt.Errorf("search: index %s %s/%s: %w", d.Kind, d.Family, d.Key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("search: commit: %w", err)
	}
	return nil
}

// ─── Queries ───────────────────────────────────────────────────────────

// Search returns up to limit documents matching every word of query,
// best match first. An empty query returns no results. limit is clamped
// to the configured search bounds.
func (ix *Index) Search(ctx context.Context, query string, limit int) ([]Result, error) {
	ftsQuery := sanitizeFTS(query)
	if ftsQuery == "" {
		return nil, nil
	}
	limit = clampLimit(limit)

	rows, err := ix.db.QueryContext(ctx, `
		SELECT kind, family, doc_key, router, title,
		       snippet(docs_fts, 1, '**', '**', '…', 16),
		       rank
		FROM docs_fts
		WHERE docs_fts MATCH ?
		ORDER BY rank
		LIMIT ?
	`, ftsQuery, limit)
	if err != nil {
		return nil, fmt.Errorf("search: query %q: %w", query, err)
	}
	defer func() { _ = rows.Close() }()

	var results []Result
	for rows.Next() {
		var r Result
		var kind string
		if err := rows.Scan(&kind, &r.Family, &r.Key, &r.Router, &r.Title, &r.Snippet, &r.Rank); err != nil {
			return nil, fmt.Errorf("search: scan: %w", err)
		}
		r.Kind = Kind(kind)
		r.Snippet = strings.Join(strings.Fields(r.Snippet), " ")
		results = append(results, r)
	}
	return results, rows.Err()
}

// Count returns the number of indexed documents.
func (ix *Index) Count(ctx context.Context) (int, error) {
	var n int
	if err := ix.db.QueryRowContext(ctx, `SELECT count(*) FROM docs_fts`).Scan(&n); err != nil {
		return 0, fmt.Errorf("search: count: %w", err)
	}
	return n, nil
}

// sanitizeFTS quotes every word so user input is matched literally
// instead of being parsed as FTS5 query syntax.
func sanitizeFTS(query string) string {
	var words []string
	for _, w := range strings.Fields(query) {
		w = strings.Trim(w, `"`)
		if w == "" {
			continue
		}
		words = append(words, `"`+strings.ReplaceAll(w, `"`, `""`)+`"`)
	}
	return strings.Join(words, " ")
}

func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return config.DefaultSearchLimit
	case limit > config.MaxSearchLimit:
		return config.MaxSearchLimit
	default:
		return limit
	}
}
