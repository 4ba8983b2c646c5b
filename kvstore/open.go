// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package kvstore

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/lunch-vote/cliparse"
)

// Open builds the backend selected by cfg.DatabaseType and verifies it
// is reachable.
func Open(ctx context.Context, cfg cliparse.Config) (Backend, error) {
	switch cfg.DatabaseType {
	case cliparse.DatabaseMemory:
		return NewMemoryBackend(), nil

	case cliparse.DatabaseSQLite, cliparse.DatabasePostgres:
		conn, err := sql.Open(cfg.DatabaseType, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("database connection failed: %w", err)
		}
		if cfg.DatabaseType == cliparse.DatabaseSQLite {
			// one writer; also keeps ":memory:" databases on a single connection
			conn.SetMaxOpenConns(1)
		}
		if err := conn.PingContext(ctx); err != nil {
			conn.Close()
			return nil, fmt.Errorf("database ping failed: %w", err)
		}
		backend, err := NewSQLBackend(conn, cfg.DatabaseType)
		if err != nil {
			conn.Close()
			return nil, err
		}
		return backend, nil

	case cliparse.DatabaseRedis:
		backend, err := NewRedisBackend(cfg.DatabaseURL, DefaultRedisPrefix)
		if err != nil {
			return nil, err
		}
		if err := backend.Ping(ctx); err != nil {
			backend.Close()
			return nil, fmt.Errorf("redis ping failed: %w", err)
		}
		return backend, nil
	}

	return nil, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
}
