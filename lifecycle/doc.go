// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package lifecycle implements the subscriber state machine.

# States

A subscriber is always in one of two states:

	PENDING   - created or reset by subscribe; holds a confirmation token
	CONFIRMED - token consumed; confirmed_at stamped, token NULL

There is no expiry on pending tokens.

# Transitions

Subscribe upserts by unique email and returns the subscriber id:

	id, err := manager.Subscribe("a@x.com")

A new record starts PENDING with a fresh token. Re-subscribing an existing
email - even a CONFIRMED one - regenerates the token and forces the status
back to PENDING, invalidating any previously issued token. Exactly one row
exists per email at all times.

Confirm consumes a token:

	err := manager.Confirm(token)

On match the subscriber becomes CONFIRMED, confirmed_at is set, and the token
is cleared. A miss (unknown or already-consumed token) returns
ErrTokenNotFound, which handlers map to 404.

Both transitions are single SQL statements; atomicity comes from the store's
unique constraints, not from in-process locking.
*/
package lifecycle
