// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# CLI Flags

	-p             Server port
	-d             Database URL
	-t             Database type
	-tz            Team time zone
	-deadline-day  Weekday voting closes
	-deadline-hour Hour voting closes
	-rate          Requests per second per client
	-burst         Rate limit burst

# Environment Variables

Flags fall back to environment variables:

	PORT                 → -p
	DATABASE_URL         → -d
	DATABASE_TYPE        → -t
	TIMEZONE             → -tz
	VOTING_DEADLINE_DAY  → -deadline-day
	VOTING_DEADLINE_HOUR → -deadline-hour
	RATE_LIMIT           → -rate
	RATE_BURST           → -burst

Variables from a .env file in the working directory are loaded first and
never override variables already set. CLI flags take precedence over
environment variables.

# Validation

ParseFlags returns an error for an unknown database type, a missing
DATABASE_URL for postgres or redis, an unknown time zone or weekday, or
a deadline hour outside 0-23.
*/
package cliparse
