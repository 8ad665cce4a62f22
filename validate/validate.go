// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package validate

import (
	"errors"

	"github.com/danielhkuo/landing/models"
)

// Error messages double as the client-facing 400 response bodies, so they
// are capitalized sentences rather than conventional Go error strings.
var (
	ErrInvalidEmail         = errors.New("Invalid email")
	ErrMissingToken         = errors.New("Missing token")
	ErrMissingContactFields = errors.New("Missing required fields")
	ErrMissingEventFields   = errors.New("Missing fields")
)

// Subscribe checks a subscribe request. Any non-empty email is accepted;
// there is intentionally no format check beyond that.
func Subscribe(req models.SubscribeRequest) error {
	if req.Email == "" {
		return ErrInvalidEmail
	}
	return nil
}

// ConfirmToken checks the token query parameter of a confirm request.
func ConfirmToken(token string) error {
	if token == "" {
		return ErrMissingToken
	}
	return nil
}

// Contact checks a contact form submission. Company is optional.
func Contact(req models.ContactRequest) error {
	if req.Name == "" || req.Email == "" || req.Message == "" {
		return ErrMissingContactFields
	}
	return nil
}

// Event checks an analytics event submission. Path is optional.
func Event(req models.EventRequest) error {
	if req.SessionID == "" || req.EventName == "" {
		return ErrMissingEventFields
	}
	return nil
}
