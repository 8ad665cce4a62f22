// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connections and schema creation.

# Connecting

Open selects the driver from the configured database type:

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)

Supported types are "postgres" (github.com/lib/pq) and "sqlite"
(modernc.org/sqlite, CGO-free). The returned *sql.DB is owned by the caller;
main closes it after the HTTP server drains.

# Schema Creation

CreateSchema initializes all required tables for the given database type:

	if err := db.CreateSchema(conn, cfg.DatabaseType); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.
The DDL differs per driver only in auto-increment keys and timestamp defaults;
column names and constraints are identical, and all queries elsewhere in the
codebase use $N placeholders, which both drivers accept.

# Tables

  - subscriber: newsletter opt-in lifecycle (unique email, unique nullable token)
  - contact_message: immutable contact form submissions
  - event_log: immutable client analytics events

The unique constraint on subscriber.email is the sole concurrency-correctness
mechanism for simultaneous subscribes; the unique constraint on
subscriber.token guarantees a token resolves to at most one subscriber.

# Indexes

  - subscriber.token (confirm lookup)
  - event_log.session_id
*/
package db
