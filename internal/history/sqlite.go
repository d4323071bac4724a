package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// sqlitePragmas are applied on open. WAL plus a busy timeout keeps reads
// usable while an external ingester appends versions to the same file.
var sqlitePragmas = []string{
	"PRAGMA foreign_keys = ON",
	"PRAGMA journal_mode = WAL",
	"PRAGMA busy_timeout = 10000",
	"PRAGMA synchronous = NORMAL",
}

// Schema creates the catalog tables. Exposed so tests and ingest tooling can
// build a database from scratch.
const Schema = `
CREATE TABLE IF NOT EXISTS sources (
	id      TEXT PRIMARY KEY,
	summary TEXT NOT NULL DEFAULT ''
);
CREATE TABLE IF NOT EXISTS versions (
	source_id  TEXT NOT NULL REFERENCES sources(id),
	hash       TEXT NOT NULL,
	created_at TEXT NOT NULL,
	PRIMARY KEY (source_id, hash)
);
CREATE INDEX IF NOT EXISTS versions_by_source ON versions(source_id, created_at DESC);
`

// OpenSQLite opens the catalog database read path with production pragmas.
// The caller owns the returned handle.
func OpenSQLite(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("history: open %s: %w", path, err)
	}
	for _, p := range sqlitePragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("history: %s: %w", p, err)
		}
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("history: ping %s: %w", path, err)
	}
	return db, nil
}

// LoadSQLite materializes a validated catalog from the database. Versions are
// read newest-first so the ordering contract is checked against what the
// ingester actually wrote, not silently re-sorted. The join is LEFT so a
// source row without any version rows still surfaces and fails validation
// instead of vanishing from the listing.
func LoadSQLite(ctx context.Context, db *sql.DB) (*Catalog, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT s.id, s.summary, v.hash, v.created_at
		FROM sources s
		LEFT JOIN versions v ON v.source_id = s.id
		ORDER BY s.id, v.created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("history: query catalog: %w", err)
	}
	defer rows.Close()

	var sources []Source
	var cur *Source
	for rows.Next() {
		var id, summary string
		var hash, created sql.NullString
		if err := rows.Scan(&id, &summary, &hash, &created); err != nil {
			return nil, fmt.Errorf("history: scan catalog row: %w", err)
		}
		if cur == nil || cur.ID != id {
			sources = append(sources, Source{ID: id, Summary: summary})
			cur = &sources[len(sources)-1]
		}
		if !hash.Valid {
			continue
		}
		ts, err := time.Parse(time.RFC3339, created.String)
		if err != nil {
			return nil, fmt.Errorf("history: source %s version %s: bad created_at %q: %w", id, hash.String, created.String, err)
		}
		cur.Versions = append(cur.Versions, Version{Hash: hash.String, CreatedAt: ts.UTC()})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("history: iterate catalog: %w", err)
	}
	return NewCatalog(sources)
}
