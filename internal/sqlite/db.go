// Package sqlite provides a registry store with an indexed group
// lookup, for deployments whose registries have outgrown the file
// store's linear scan.
package sqlite

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB wraps a SQLite database connection
type DB struct {
	*sql.DB
}

// New creates a new SQLite database connection
func New(dataSourceName string) (*DB, error) {
	db, err := sql.Open("sqlite", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite serializes writers anyway; a single connection avoids
	// SQLITE_BUSY churn between pooled connections.
	db.SetMaxOpenConns(1)

	return &DB{db}, nil
}

// RunMigrations creates the registry schema.
func (db *DB) RunMigrations() error {
	migration := `
CREATE TABLE IF NOT EXISTS public_leaderboards (
    token TEXT PRIMARY KEY,
    source_group_id TEXT NOT NULL UNIQUE,
    session TEXT NOT NULL,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_source_group ON public_leaderboards(source_group_id);
`

	_, err := db.Exec(migration)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
