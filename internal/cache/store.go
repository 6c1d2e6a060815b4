// Package cache persists fetched data together with its capture time.
package cache

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// Cache keys, one per data domain.
const (
	KeyWeather  = "weather"
	KeyCurrency = "currency"
	KeyProverb  = "proverb"
	KeyNews     = "news"
)

// Store is a synchronous string key-value store. Staleness is not its
// concern: it never expires entries on its own.
type Store interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}

// DB is a SQLite-backed Store.
type DB struct {
	path    string
	readDB  *sql.DB
	writeDB *sql.DB
}

func Open(dbPath string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("creating cache dir: %w", err)
	}

	writeDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening write db: %w", err)
	}
	writeDB.SetMaxOpenConns(1)

	readDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		writeDB.Close()
		return nil, fmt.Errorf("opening read db: %w", err)
	}

	d := &DB{path: dbPath, readDB: readDB, writeDB: writeDB}
	if err := d.init(); err != nil {
		d.Close()
		return nil, err
	}
	return d, nil
}

func (d *DB) init() error {
	_, err := d.writeDB.Exec(`
		CREATE TABLE IF NOT EXISTS entries (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`)
	if err != nil {
		return fmt.Errorf("initializing schema: %w", err)
	}
	return nil
}

func (d *DB) Close() error {
	var errs []error
	if d.readDB != nil {
		errs = append(errs, d.readDB.Close())
	}
	if d.writeDB != nil {
		errs = append(errs, d.writeDB.Close())
	}
	for _, e := range errs {
		if e != nil {
			return e
		}
	}
	return nil
}

func (d *DB) Get(key string) (string, bool, error) {
	var value string
	err := d.readDB.QueryRow("SELECT value FROM entries WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading %s: %w", key, err)
	}
	return value, true, nil
}

func (d *DB) Set(key, value string) error {
	_, err := d.writeDB.Exec(`
		INSERT INTO entries (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("writing %s: %w", key, err)
	}
	return nil
}

// Clear drops every cached entry and reports how many were removed.
func (d *DB) Clear() (int64, error) {
	res, err := d.writeDB.Exec("DELETE FROM entries")
	if err != nil {
		return 0, fmt.Errorf("clearing cache: %w", err)
	}
	return res.RowsAffected()
}

// Stats returns the entry count and on-disk size of the cache.
func (d *DB) Stats() (count int, size int64, err error) {
	if err := d.readDB.QueryRow("SELECT COUNT(*) FROM entries").Scan(&count); err != nil {
		return 0, 0, fmt.Errorf("counting entries: %w", err)
	}
	info, err := os.Stat(d.path)
	if err != nil {
		return 0, 0, fmt.Errorf("stat %s: %w", d.path, err)
	}
	return count, info.Size(), nil
}
