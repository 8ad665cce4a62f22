// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/landing/models"
	"github.com/danielhkuo/landing/testutil"
)

func TestLogEvent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	handler := NewEventsHandler(db, testutil.GetTestConfig())

	req := testutil.MakeRequest("POST", "/api/events", models.EventRequest{
		SessionID: "sess-1",
		EventName: "page_view",
		Path:      "/pricing",
	}, map[string]string{
		"User-Agent":      "test-agent",
		"X-Forwarded-For": "203.0.113.7",
	})
	w := httptest.NewRecorder()
	handler.Log(w, req)

	testutil.AssertStatus(t, w, 200)

	var ev models.EventLog
	err := db.QueryRow(`SELECT session_id, event_name, path, user_agent, ip FROM event_log`).
		Scan(&ev.SessionID, &ev.EventName, &ev.Path, &ev.UserAgent, &ev.IP)
	if err != nil {
		t.Fatalf("Failed to read event: %v", err)
	}

	if ev.SessionID != "sess-1" || ev.EventName != "page_view" {
		t.Errorf("Unexpected event row: %+v", ev)
	}
	if ev.Path == nil || *ev.Path != "/pricing" {
		t.Error("Expected path to be persisted")
	}
	if ev.UserAgent == nil || *ev.UserAgent != "test-agent" {
		t.Error("Expected user agent to be persisted")
	}
	if ev.IP == nil || *ev.IP != "203.0.113.7" {
		t.Error("Expected forwarded ip to be persisted")
	}
}

func TestLogEvent_PathOptional(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	handler := NewEventsHandler(db, testutil.GetTestConfig())

	req := testutil.MakeRequest("POST", "/api/events", models.EventRequest{
		SessionID: "sess-1",
		EventName: "cta_click",
	}, nil)
	w := httptest.NewRecorder()
	handler.Log(w, req)

	testutil.AssertStatus(t, w, 200)

	var path *string
	if err := db.QueryRow(`SELECT path FROM event_log`).Scan(&path); err != nil {
		t.Fatalf("Failed to read event: %v", err)
	}
	if path != nil {
		t.Errorf("Expected NULL path, got %q", *path)
	}
}

func TestLogEvent_MissingFields(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	handler := NewEventsHandler(db, testutil.GetTestConfig())

	tests := []struct {
		name string
		body models.EventRequest
	}{
		{"missing session_id", models.EventRequest{EventName: "page_view"}},
		{"missing event_name", models.EventRequest{SessionID: "sess-1"}},
		{"empty request", models.EventRequest{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/api/events", tt.body, nil)
			w := httptest.NewRecorder()
			handler.Log(w, req)

			testutil.AssertStatus(t, w, 400)
			testutil.AssertError(t, w, "Missing fields")
		})
	}

	if n := testutil.CountRows(t, db, "event_log"); n != 0 {
		t.Errorf("Expected no event rows after rejected requests, got %d", n)
	}
}
