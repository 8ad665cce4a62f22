// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3000)
  - DatabaseURL: Database connection string (required)
  - DatabaseType: "sqlite" or "postgres" (default: sqlite)
  - CORSOrigin: Allowed cross-origin host (default: *)
  - PublicDir: Static SPA bundle directory (empty disables static serving)

# CLI Flags

	-p            Server port
	-d            Database URL
	-t            Database type
	-cors-origin  Allowed CORS origin
	-public       Static SPA directory

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_URL  → -d
	DATABASE_TYPE → -t
	CORS_ORIGIN   → -cors-origin
	PUBLIC_DIR    → -public

CLI flags take precedence over environment variables. main loads a .env file
(if present) via godotenv before calling ParseFlags, so a local .env feeds
the same environment fallbacks.

# Validation

ParseFlags returns an error if DATABASE_URL is missing or PORT is not a
number. Everything else has a default.
*/
package cliparse
