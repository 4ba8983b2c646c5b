// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package kvstore persists the application's collections as JSON values
under string keys.

# Backends

A Backend stores opaque byte values:

  - MemoryBackend: process-local map, used by tests and -t memory
  - SQLBackend: one kv_entry table on SQLite (modernc.org/sqlite) or
    PostgreSQL (lib/pq)
  - RedisBackend: plain string keys under a prefix

Open picks one from the configuration:

	backend, err := kvstore.Open(ctx, cfg)

# Store

Store is the typed layer the domain packages use:

	store := kvstore.NewStore(backend)
	err := store.Initialize(ctx) // seeds absent keys only

	users, err := store.Users(ctx)

Readers never fail on missing or malformed data; they log a warning and
return the collection's default (the seed roster for users, empty for
the rest). Writers replace the whole collection.

# Keys

	restaurant-voting-users
	restaurant-voting-restaurants
	restaurant-voting-votes
	restaurant-voting-current-user:<session token>

UpdateVotes and AppendRestaurant serialize read-modify-write cycles
within one process. Several processes sharing a backend can still lose
concurrent updates.
*/
package kvstore
