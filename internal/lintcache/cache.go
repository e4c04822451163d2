// Package lintcache persists per-file check results keyed by content hash,
// so repeat runs skip pages that have not changed.
package lintcache

import (
	"database/sql"
	"encoding/json"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	bberrors "github.com/hwnotes/blogbuilder/internal/errors"
)

// Cache is a SQLite-backed check result store.
// Use ":memory:" for an in-memory database, or a file path for persistence.
type Cache struct {
	db *sql.DB
	mu sync.Mutex
}

// Open opens (creating if needed) the cache database at dbPath.
func Open(dbPath string) (*Cache, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, bberrors.CacheError("open", err)
	}

	c := &Cache{db: db}
	if err := c.initialize(); err != nil {
		_ = db.Close()
		return nil, bberrors.CacheError("initialize schema", err)
	}
	return c, nil
}

func (c *Cache) initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS results (
		path TEXT PRIMARY KEY,
		hash TEXT NOT NULL,
		issues BLOB NOT NULL,
		checked_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_results_hash ON results(hash);
	`
	_, err := c.db.Exec(schema)
	return err
}

// Get returns the stored issues for path if the stored hash matches.
// The second return is false on miss (absent or content changed).
func (c *Cache) Get(path, hash string, out any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var storedHash string
	var blob []byte
	err := c.db.QueryRow("SELECT hash, issues FROM results WHERE path = ?", path).
		Scan(&storedHash, &blob)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, bberrors.CacheError("get", err)
	}
	if storedHash != hash {
		return false, nil
	}
	if err := json.Unmarshal(blob, out); err != nil {
		// Treat undecodable rows as misses; the row gets rewritten on Put.
		return false, nil
	}
	return true, nil
}

// Put stores the issues for path under the given content hash.
func (c *Cache) Put(path, hash string, issues any) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	blob, err := json.Marshal(issues)
	if err != nil {
		return bberrors.CacheError("marshal", err)
	}
	_, err = c.db.Exec(
		"INSERT INTO results (path, hash, issues, checked_at) VALUES (?, ?, ?, ?) "+
			"ON CONFLICT(path) DO UPDATE SET hash = excluded.hash, issues = excluded.issues, checked_at = excluded.checked_at",
		path, hash, blob, time.Now().Unix(),
	)
	if err != nil {
		return bberrors.CacheError("put", err)
	}
	return nil
}

// Prune removes entries for paths not in the keep set, so deleted files do
// not accumulate.
func (c *Cache) Prune(keep map[string]bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	rows, err := c.db.Query("SELECT path FROM results")
	if err != nil {
		return bberrors.CacheError("prune scan", err)
	}
	var stale []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			_ = rows.Close()
			return bberrors.CacheError("prune scan", err)
		}
		if !keep[p] {
			stale = append(stale, p)
		}
	}
	if err := rows.Err(); err != nil {
		_ = rows.Close()
		return bberrors.CacheError("prune scan", err)
	}
	_ = rows.Close()

	for _, p := range stale {
		if _, err := c.db.Exec("DELETE FROM results WHERE path = ?", p); err != nil {
			return bberrors.CacheError("prune delete", err)
		}
	}
	return nil
}

// Close closes the underlying database.
func (c *Cache) Close() error {
	return c.db.Close()
}
