// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"
)

func TestCreateSchema_Idempotent(t *testing.T) {
	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open sqlite: %v", err)
	}
	defer conn.Close()
	conn.SetMaxOpenConns(1)

	for i := 0; i < 2; i++ {
		if err := CreateSchema(conn); err != nil {
			t.Fatalf("CreateSchema() run %d error = %v", i+1, err)
		}
	}

	if _, err := conn.Exec(`INSERT INTO kv_entry (key, value) VALUES ('k', 'v')`); err != nil {
		t.Fatalf("Failed to insert into kv_entry: %v", err)
	}

	var value string
	if err := conn.QueryRow(`SELECT value FROM kv_entry WHERE key = 'k'`).Scan(&value); err != nil {
		t.Fatalf("Failed to read kv_entry: %v", err)
	}
	if value != "v" {
		t.Errorf("value = %q, want %q", value, "v")
	}
}
