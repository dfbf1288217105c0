// Package storage owns the SQLite connection backing the task store.
package storage

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schema string

const driverName = "sqlite"

// DB wraps the database connection.
type DB struct {
	*sql.DB
	path string
}

// Open creates the file and its directory when missing, pins the pool to
// a single connection and bootstraps the schema.
func Open(ctx context.Context, path string) (*DB, error) {
	if err := ensureDir(path); err != nil {
		return nil, err
	}

	db, err := sql.Open(driverName, dsn(path))
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err = db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	if _, err = db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return &DB{DB: db, path: path}, nil
}

// Path returns the file the handle was opened on.
func (db *DB) Path() string {
	return db.path
}

// uriPathEscaper escapes the characters SQLite treats specially in the
// path part of a file: URI.
var uriPathEscaper = strings.NewReplacer("%", "%25", "?", "%3f", "#", "%23")

// dsn keeps timestamps in a sortable text layout.
func dsn(path string) string {
	return "file:" + uriPathEscaper.Replace(path) + "?_pragma=foreign_keys(1)&_time_format=sqlite"
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create db dir %q: %w", dir, err)
	}
	return nil
}
