// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation.

# Schema Creation

CreateSchema initializes the key-value table used by kvstore.SQLBackend:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS.

# Tables

	kv_entry(key TEXT PRIMARY KEY, value TEXT, updated_at TIMESTAMP)

Each row holds one whole JSON document (the user roster, the restaurant
list, the vote list, or the current session user). Writes replace the
document; there are no partial updates.
*/
package db
