// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - SubscribeRequest: email
  - ContactRequest: name, email, company, message
  - EventRequest: session_id, event_name, path

# Response Types

Types for JSON responses:

  - OKResponse: ok
  - SubscribeResponse: ok, id
  - ErrorResponse: error

Every error body on the wire is ErrorResponse, a single error string.

# Domain Types

Internal data structures mirroring the persisted records:

  - Subscriber: newsletter opt-in lifecycle state
  - ContactMessage: immutable contact form submission with attribution
  - EventLog: immutable client analytics event

Optional columns are pointer fields; nil persists as NULL. The confirmation
token and raw client IPs are never serialized to JSON.

# Constants

Subscriber status values:

	StatusPending   = "PENDING"
	StatusConfirmed = "CONFIRMED"

A subscriber is created PENDING with a token and becomes CONFIRMED (token
cleared) exactly once per token. Re-subscribing resets the record to PENDING
with a fresh token.
*/
package models
