// Package sqlite persists daily candles and the broker credential record.
// A single writer connection with WAL keeps concurrent screening reads cheap
// while upserts stay serialized.
package sqlite

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/mattn/go-sqlite3"
)

// Store wraps the screener's SQLite database.
type Store struct {
	db *sql.DB
}

// DB returns the underlying sql.DB for health checks.
func (s *Store) DB() *sql.DB { return s.db }

// Open opens (creating if needed) the database at dbPath with WAL mode and
// the screener schema.
func Open(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_synchronous=NORMAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("sqlite open: %w", err)
	}

	// Single writer; readers share the WAL snapshot.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite schema: %w", err)
	}

	log.Printf("[sqlite] opened database at %s", dbPath)
	return &Store{db: db}, nil
}

func createSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS daily_prices (
			symbol TEXT NOT NULL,
			date   TEXT NOT NULL,
			open   REAL NOT NULL,
			high   REAL NOT NULL,
			low    REAL NOT NULL,
			close  REAL NOT NULL,
			volume INTEGER NOT NULL,
			PRIMARY KEY (symbol, date)
		);

		CREATE TABLE IF NOT EXISTS api_tokens (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			access_token  TEXT NOT NULL,
			refresh_token TEXT,
			expires_at    INTEGER,
			created_at    INTEGER NOT NULL
		);
	`)
	return err
}

// Close releases the database handle.
func (s *Store) Close() error { return s.db.Close() }
