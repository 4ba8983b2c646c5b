// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package kvstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/danielhkuo/lunch-vote/db"
)

// SQL dialects understood by SQLBackend
const (
	DialectSQLite   = "sqlite"
	DialectPostgres = "postgres"
)

// SQLBackend stores each key as one row of the kv_entry table.
type SQLBackend struct {
	db      *sql.DB
	dialect string
}

// NewSQLBackend creates the kv_entry table if needed and returns a backend
// over it. dialect selects placeholder syntax.
func NewSQLBackend(conn *sql.DB, dialect string) (*SQLBackend, error) {
	if dialect != DialectSQLite && dialect != DialectPostgres {
		return nil, fmt.Errorf("unsupported sql dialect %q", dialect)
	}
	if err := db.CreateSchema(conn); err != nil {
		return nil, err
	}
	return &SQLBackend{db: conn, dialect: dialect}, nil
}

// ph returns the n-th (1-based) bind placeholder for the dialect
func (b *SQLBackend) ph(n int) string {
	if b.dialect == DialectPostgres {
		return fmt.Sprintf("$%d", n)
	}
	return "?"
}

func (b *SQLBackend) Get(ctx context.Context, key string) ([]byte, error) {
	var value string
	err := b.db.QueryRowContext(ctx,
		`SELECT value FROM kv_entry WHERE key = `+b.ph(1), key,
	).Scan(&value)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read key %s: %w", key, err)
	}
	return []byte(value), nil
}

func (b *SQLBackend) Set(ctx context.Context, key string, value []byte) error {
	query := fmt.Sprintf(`
		INSERT INTO kv_entry (key, value, updated_at)
		VALUES (%s, %s, %s)
		ON CONFLICT (key) DO UPDATE
		SET value = excluded.value, updated_at = excluded.updated_at
	`, b.ph(1), b.ph(2), b.ph(3))

	_, err := b.db.ExecContext(ctx, query, key, string(value), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to write key %s: %w", key, err)
	}
	return nil
}

func (b *SQLBackend) Remove(ctx context.Context, key string) error {
	_, err := b.db.ExecContext(ctx, `DELETE FROM kv_entry WHERE key = `+b.ph(1), key)
	if err != nil {
		return fmt.Errorf("failed to remove key %s: %w", key, err)
	}
	return nil
}

func (b *SQLBackend) Close() error {
	return b.db.Close()
}
