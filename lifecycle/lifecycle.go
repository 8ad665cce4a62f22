// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package lifecycle

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/danielhkuo/landing/auth"
	"github.com/danielhkuo/landing/models"
)

// ErrTokenNotFound indicates the confirm token matches no pending subscriber.
// Tokens are single-use: a consumed token yields this error too.
var ErrTokenNotFound = errors.New("token not found")

// Manager owns the subscriber state machine: PENDING -> CONFIRMED, keyed by
// a single-use confirmation token.
type Manager struct {
	db *sql.DB
}

func NewManager(db *sql.DB) *Manager {
	return &Manager{db: db}
}

// Subscribe creates or resets the subscriber for the given email and returns
// its id. A fresh token is issued every time: if the email already exists the
// token is overwritten and the status forced back to PENDING, even if it was
// CONFIRMED. The old token becomes unusable.
//
// The upsert is a single statement keyed on the unique email column, so
// concurrent subscribes for the same email cannot produce duplicate rows.
func (m *Manager) Subscribe(email string) (int64, error) {
	token, err := auth.GenerateConfirmToken()
	if err != nil {
		return 0, err
	}

	now := time.Now()

	var id int64
	err = m.db.QueryRow(`
		INSERT INTO subscriber (email, token, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $4)
		ON CONFLICT (email) DO UPDATE
		SET token = excluded.token, status = excluded.status, updated_at = excluded.updated_at
		RETURNING id
	`, email, token, models.StatusPending, now).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("failed to upsert subscriber: %w", err)
	}

	return id, nil
}

// Confirm consumes a token: the matching subscriber becomes CONFIRMED, the
// confirmation time is stamped, and the token is cleared so it cannot be
// replayed. Returns ErrTokenNotFound if no subscriber holds the token.
func (m *Manager) Confirm(token string) error {
	res, err := m.db.Exec(`
		UPDATE subscriber
		SET status = $1, confirmed_at = $2, token = NULL, updated_at = $2
		WHERE token = $3
	`, models.StatusConfirmed, time.Now(), token)

	if err != nil {
		return fmt.Errorf("failed to confirm subscriber: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if rows == 0 {
		return ErrTokenNotFound
	}

	return nil
}
