// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package termstore exports dictionary entries into a local SQLite term
// table so fetched records can be browsed offline by term prefix.
package termstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/dictionary-uniprot/pkg/types"
)

const defaultLookupLimit = 20

// Store manages the term store SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the term store at path and creates the schema if
// it does not exist.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating store directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
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
		`CREATE TABLE IF NOT EXISTS entries (
			id TEXT PRIMARY KEY,
			dict_id TEXT NOT NULL,
			descr TEXT,
			z TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS terms (
			entry_id TEXT NOT NULL REFERENCES entries(id) ON DELETE CASCADE,
			pos INTEGER NOT NULL,
			str TEXT NOT NULL,
			str_lower TEXT NOT NULL,
			PRIMARY KEY (entry_id, pos)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_terms_str_lower ON terms(str_lower)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Put upserts entries and replaces their terms. Match-only fields (str,
// type) are not stored.
func (s *Store) Put(ctx context.Context, entries []types.Entry) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	termStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO terms (entry_id, pos, str, str_lower) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer termStmt.Close()

	for _, e := range entries {
		zJSON := ""
		if e.Z != nil {
			b, err := json.Marshal(e.Z)
			if err != nil {
				return fmt.Errorf("encoding z of %s: %w", e.ID, err)
			}
			zJSON = string(b)
		}

		_, err := tx.ExecContext(ctx,
			`INSERT INTO entries (id, dict_id, descr, z) VALUES (?, ?, ?, ?)
			 ON CONFLICT(id) DO UPDATE SET
				dict_id=excluded.dict_id, descr=excluded.descr, z=excluded.z`,
			e.ID, e.DictID, e.Descr, zJSON,
		)
		if err != nil {
			return fmt.Errorf("upserting entry %s: %w", e.ID, err)
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM terms WHERE entry_id = ?`, e.ID); err != nil {
			return fmt.Errorf("deleting old terms of %s: %w", e.ID, err)
		}
		for pos, term := range e.Terms {
			if _, err := termStmt.ExecContext(ctx, e.ID, pos, term.Str, strings.ToLower(term.Str)); err != nil {
				return fmt.Errorf("inserting term of %s: %w", e.ID, err)
			}
		}
	}

	return tx.Commit()
}

// Count returns the number of stored entries.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM entries`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting entries: %w", err)
	}
	return n, nil
}

// Lookup returns the entries having a term that starts with prefix,
// ignoring case, ordered by id. A limit of zero or less uses the default.
func (s *Store) Lookup(ctx context.Context, prefix string, limit int) ([]types.Entry, error) {
	if limit <= 0 {
		limit = defaultLookupLimit
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT e.id, e.dict_id, e.descr, e.z
		 FROM entries e
		 WHERE e.id IN (SELECT entry_id FROM terms WHERE str_lower LIKE ? ESCAPE '\')
		 ORDER BY e.id
		 LIMIT ?`,
		escapeLike(strings.ToLower(prefix))+"%", limit,
	)
	if err != nil {
		return nil, fmt.Errorf("querying entries: %w", err)
	}
	defer rows.Close()

	var entries []types.Entry
	for rows.Next() {
		var (
			e     types.Entry
			descr sql.NullString
			z     sql.NullString
		)
		if err := rows.Scan(&e.ID, &e.DictID, &descr, &z); err != nil {
			return nil, fmt.Errorf("scanning entry: %w", err)
		}
		e.Descr = descr.String
		if z.String != "" {
			e.Z = &types.Z{}
			if err := json.Unmarshal([]byte(z.String), e.Z); err != nil {
				return nil, fmt.Errorf("decoding z of %s: %w", e.ID, err)
			}
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating entries: %w", err)
	}

	for i := range entries {
		terms, err := s.terms(ctx, entries[i].ID)
		if err != nil {
			return nil, err
		}
		entries[i].Terms = terms
	}
	return entries, nil
}

func (s *Store) terms(ctx context.Context, entryID string) ([]types.Term, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT str FROM terms WHERE entry_id = ? ORDER BY pos`, entryID)
	if err != nil {
		return nil, fmt.Errorf("querying terms of %s: %w", entryID, err)
	}
	defer rows.Close()

	var terms []types.Term
	for rows.Next() {
		var t types.Term
		if err := rows.Scan(&t.Str); err != nil {
			return nil, fmt.Errorf("scanning term: %w", err)
		}
		terms = append(terms, t)
	}
	return terms, rows.Err()
}

// escapeLike escapes the LIKE wildcards in s.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
