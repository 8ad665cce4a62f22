// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the landing API server.

The server backs a marketing landing page: newsletter subscription with
token-based email confirmation, a contact form with campaign attribution,
and lightweight client analytics events, plus static serving of the SPA
bundle itself.

# Starting the Server

The server requires environment variables, a .env file, or CLI flags:

	DATABASE_URL=landing.db go run main.go

Or with flags:

	go run main.go -p 3000 -d "postgres://..." -t postgres

# Configuration

Required settings:

  - DATABASE_URL (-d): Database connection string

Optional settings:

  - PORT (-p): Server port (default: 3000)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - CORS_ORIGIN (-cors-origin): Allowed cross-origin host (default: *)
  - PUBLIC_DIR (-public): Static SPA bundle directory (default: API-only)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (subscribe, confirm, contact, events)
  - lifecycle: Subscriber state machine (PENDING → CONFIRMED)
  - validate: Per-endpoint required-field checks
  - router: Route definitions using Go 1.22+ routing, SPA fallback
  - middleware: CORS, logging, JSON helpers, client IP extraction
  - models: Request/response/domain types
  - auth: Confirmation token generation
  - db: Driver selection and schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
