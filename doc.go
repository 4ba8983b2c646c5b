// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Lunch Vote API server.

Lunch Vote lets a small team suggest restaurants and pick one lunch spot
per week. Every team member holds at most one vote per week; voting
again for the same place retracts it, voting for another place moves it.

# Starting the Server

With no configuration the server stores its data in a local SQLite file:

	go run .

Or with flags:

	go run . -p 3318 -t postgres -d "postgres://..."

# Configuration

Settings come from flags, then environment variables, then a .env file
in the working directory:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite, postgres, redis or memory (default: sqlite)
  - DATABASE_URL (-d): file path, postgres:// or redis:// URL
  - TIMEZONE (-tz): team time zone (default: local)
  - VOTING_DEADLINE_DAY, VOTING_DEADLINE_HOUR: weekly close (default: Friday 15)
  - RATE_LIMIT, RATE_BURST: per-client request budget (0 disables)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - kvstore: key/value persistence over memory, SQLite, Postgres or Redis
  - week: week identifiers and the voting deadline
  - voting: vote toggling, tallies and standings
  - directory: roster lookup and the session user
  - catalog: restaurant submission, validation and filtering
  - handlers, router: HTTP surface using Go 1.22+ routing
  - middleware: CORS, logging, rate limiting, JSON helpers
  - metrics: Prometheus collectors
  - models: domain and request/response types
  - db: SQL schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
