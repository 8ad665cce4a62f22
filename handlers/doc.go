// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the landing API.

# Handler Types

Each handler is a struct with database and config dependencies:

  - SubscriptionHandler: newsletter opt-in (subscribe, confirm)
  - ContactHandler: contact form submissions
  - EventsHandler: client analytics events

Handlers are created via constructor functions that accept *sql.DB and Config:

	subHandler := handlers.NewSubscriptionHandler(db, cfg)

# Uniform Contract

Every handler follows the same shape: parse JSON body, validate required
fields (400 with the validation message on failure), perform exactly one
persistence operation (500 with a generic "Server error" on failure - the
real error is only logged), and respond 200 with {"ok":true} plus any
endpoint-specific fields. No retries, no partial failure states.

# Subscription Flow

	POST /api/subscribe {"email":...} → {"ok":true,"id":N}, subscriber PENDING with token
	GET  /api/confirm?token=...       → {"ok":true}, subscriber CONFIRMED, token consumed

Confirm of an unknown or already-consumed token returns 404 {"error":"Not found"}.
The state machine itself lives in the lifecycle package.

# Metadata Capture

Contact and event submissions record optional attribution: X-UTM-Source,
X-UTM-Medium, X-UTM-Campaign, Referer, User-Agent headers and a best-effort
client IP. Absent values persist as NULL.
*/
package handlers
