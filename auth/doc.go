// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides confirmation token generation.

# Confirm Tokens

Confirm tokens are random 24-byte (192-bit) secrets:

	token, err := auth.GenerateConfirmToken()

Tokens are URL-safe base64 encoded without padding. A token is issued on
every subscribe request, stored on the pending subscriber, delivered out of
band (the confirmation email link), and consumed by GET /api/confirm. The
token column's unique constraint guards against the astronomically unlikely
collision.
*/
package auth
