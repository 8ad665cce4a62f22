// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielhkuo/landing/auth"
	"github.com/danielhkuo/landing/cliparse"
	"github.com/danielhkuo/landing/db"
	"github.com/danielhkuo/landing/models"
)

// SetupTestDB creates a fresh in-memory SQLite database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// A single connection keeps every query on the same in-memory database
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn, "sqlite"); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3000,
		DatabaseURL:  ":memory:",
		DatabaseType: "sqlite",
		CORSOrigin:   "*",
	}
}

// CreateTestSubscriber inserts a subscriber directly and returns its id and
// token. For StatusConfirmed the token is NULL and confirmed_at is stamped,
// mirroring what a real confirm does.
func CreateTestSubscriber(t *testing.T, conn *sql.DB, email, status string) (id int64, token string) {
	t.Helper()

	token, err := auth.GenerateConfirmToken()
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}

	now := time.Now()

	var storedToken *string
	var confirmedAt *time.Time
	if status == models.StatusConfirmed {
		confirmedAt = &now
		token = ""
	} else {
		storedToken = &token
	}

	err = conn.QueryRow(`
		INSERT INTO subscriber (email, token, status, confirmed_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)
		RETURNING id
	`, email, storedToken, status, confirmedAt, now).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test subscriber: %v", err)
	}

	return id, token
}

// GetSubscriber reads a subscriber row back for assertions
func GetSubscriber(t *testing.T, conn *sql.DB, email string) models.Subscriber {
	t.Helper()

	var sub models.Subscriber
	err := conn.QueryRow(`
		SELECT id, email, status, token, confirmed_at, created_at, updated_at
		FROM subscriber
		WHERE email = $1
	`, email).Scan(&sub.ID, &sub.Email, &sub.Status, &sub.Token, &sub.ConfirmedAt, &sub.CreatedAt, &sub.UpdatedAt)
	if err != nil {
		t.Fatalf("Failed to read subscriber %s: %v", email, err)
	}

	return sub
}

// CountRows returns the number of rows in a table
func CountRows(t *testing.T, conn *sql.DB, table string) int {
	t.Helper()

	var n int
	if err := conn.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
		t.Fatalf("Failed to count rows in %s: %v", table, err)
	}
	return n
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}

// AssertError checks the uniform {"error": message} body
func AssertError(t *testing.T, w *httptest.ResponseRecorder, message string) {
	t.Helper()
	var resp models.ErrorResponse
	AssertJSON(t, w, &resp)
	if resp.Error != message {
		t.Errorf("Expected error %q, got %q", message, resp.Error)
	}
}
