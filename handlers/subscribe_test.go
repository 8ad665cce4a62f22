// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/landing/models"
	"github.com/danielhkuo/landing/testutil"
)

func TestSubscribe(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	handler := NewSubscriptionHandler(db, testutil.GetTestConfig())

	req := testutil.MakeRequest("POST", "/api/subscribe", models.SubscribeRequest{Email: "a@x.com"}, nil)
	w := httptest.NewRecorder()
	handler.Subscribe(w, req)

	testutil.AssertStatus(t, w, 200)

	var resp models.SubscribeResponse
	testutil.AssertJSON(t, w, &resp)
	if !resp.OK {
		t.Error("Expected ok:true")
	}
	if resp.ID != 1 {
		t.Errorf("Expected first subscriber id 1, got %d", resp.ID)
	}

	sub := testutil.GetSubscriber(t, db, "a@x.com")
	if sub.Status != models.StatusPending {
		t.Errorf("Expected status PENDING, got %s", sub.Status)
	}
	if sub.Token == nil {
		t.Error("Expected a confirmation token to be issued")
	}
}

func TestSubscribe_BadRequest(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	handler := NewSubscriptionHandler(db, testutil.GetTestConfig())

	tests := []struct {
		name string
		body string
	}{
		{"empty body", ""},
		{"empty object", `{}`},
		{"empty email", `{"email":""}`},
		{"non-string email", `{"email":123}`},
		{"invalid JSON", `{not json}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/api/subscribe", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			handler.Subscribe(w, req)

			testutil.AssertStatus(t, w, 400)
			testutil.AssertError(t, w, "Invalid email")
		})
	}

	// No row was written for any rejected request
	if n := testutil.CountRows(t, db, "subscriber"); n != 0 {
		t.Errorf("Expected no subscriber rows after rejected requests, got %d", n)
	}
}

func TestConfirm(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	handler := NewSubscriptionHandler(db, testutil.GetTestConfig())

	_, token := testutil.CreateTestSubscriber(t, db, "a@x.com", models.StatusPending)

	req := httptest.NewRequest("GET", "/api/confirm?token="+token, nil)
	w := httptest.NewRecorder()
	handler.Confirm(w, req)

	testutil.AssertStatus(t, w, 200)

	var resp models.OKResponse
	testutil.AssertJSON(t, w, &resp)
	if !resp.OK {
		t.Error("Expected ok:true")
	}

	sub := testutil.GetSubscriber(t, db, "a@x.com")
	if sub.Status != models.StatusConfirmed {
		t.Errorf("Expected status CONFIRMED, got %s", sub.Status)
	}
	if sub.Token != nil {
		t.Error("Expected token to be cleared")
	}
	if sub.ConfirmedAt == nil {
		t.Error("Expected confirmed_at to be stamped")
	}
}

func TestConfirm_MissingToken(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	handler := NewSubscriptionHandler(db, testutil.GetTestConfig())

	req := httptest.NewRequest("GET", "/api/confirm", nil)
	w := httptest.NewRecorder()
	handler.Confirm(w, req)

	testutil.AssertStatus(t, w, 400)
	testutil.AssertError(t, w, "Missing token")
}

func TestConfirm_UnknownToken(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	handler := NewSubscriptionHandler(db, testutil.GetTestConfig())

	req := httptest.NewRequest("GET", "/api/confirm?token=no-such-token", nil)
	w := httptest.NewRecorder()
	handler.Confirm(w, req)

	// A lookup miss is 404, never 500
	testutil.AssertStatus(t, w, 404)
	testutil.AssertError(t, w, "Not found")
}

func TestConfirm_ConsumedToken(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	handler := NewSubscriptionHandler(db, testutil.GetTestConfig())

	_, token := testutil.CreateTestSubscriber(t, db, "a@x.com", models.StatusPending)

	req := httptest.NewRequest("GET", "/api/confirm?token="+token, nil)
	w := httptest.NewRecorder()
	handler.Confirm(w, req)
	testutil.AssertStatus(t, w, 200)

	// Same token again: consumed, so not found
	req = httptest.NewRequest("GET", "/api/confirm?token="+token, nil)
	w = httptest.NewRecorder()
	handler.Confirm(w, req)
	testutil.AssertStatus(t, w, 404)
	testutil.AssertError(t, w, "Not found")
}
