// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/landing/models"
	"github.com/danielhkuo/landing/testutil"
)

// TestSubscriptionWorkflow tests the complete opt-in journey:
// 1. Subscribe a new email
// 2. Confirm with the issued token
// 3. Replay the token (must 404)
// 4. Re-subscribe the confirmed email
// 5. Confirm again with the fresh token
func TestSubscriptionWorkflow(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	handler := NewSubscriptionHandler(db, cfg)

	// Step 1: Subscribe
	req := testutil.MakeRequest("POST", "/api/subscribe", models.SubscribeRequest{Email: "a@x.com"}, nil)
	w := httptest.NewRecorder()
	handler.Subscribe(w, req)

	if w.Code != 200 {
		t.Fatalf("Step 1 - Subscribe failed: %d - %s", w.Code, w.Body.String())
	}

	var subResp models.SubscribeResponse
	testutil.AssertJSON(t, w, &subResp)
	if !subResp.OK || subResp.ID != 1 {
		t.Fatalf("Step 1 - Expected {ok:true,id:1}, got %+v", subResp)
	}
	token := *testutil.GetSubscriber(t, db, "a@x.com").Token
	t.Logf("Step 1 - Subscriber %d pending", subResp.ID)

	// Step 2: Confirm with the issued token
	req = httptest.NewRequest("GET", "/api/confirm?token="+token, nil)
	w = httptest.NewRecorder()
	handler.Confirm(w, req)

	if w.Code != 200 {
		t.Fatalf("Step 2 - Confirm failed: %d - %s", w.Code, w.Body.String())
	}
	if got := testutil.GetSubscriber(t, db, "a@x.com").Status; got != models.StatusConfirmed {
		t.Fatalf("Step 2 - Expected CONFIRMED, got %s", got)
	}

	// Step 3: Replaying the same token is a miss
	req = httptest.NewRequest("GET", "/api/confirm?token="+token, nil)
	w = httptest.NewRecorder()
	handler.Confirm(w, req)
	testutil.AssertStatus(t, w, 404)
	testutil.AssertError(t, w, "Not found")

	// Step 4: Re-subscribe the confirmed email
	req = testutil.MakeRequest("POST", "/api/subscribe", models.SubscribeRequest{Email: "a@x.com"}, nil)
	w = httptest.NewRecorder()
	handler.Subscribe(w, req)

	if w.Code != 200 {
		t.Fatalf("Step 4 - Re-subscribe failed: %d - %s", w.Code, w.Body.String())
	}
	sub := testutil.GetSubscriber(t, db, "a@x.com")
	if sub.ID != 1 {
		t.Fatalf("Step 4 - Expected the same row, got id %d", sub.ID)
	}
	if sub.Status != models.StatusPending || sub.Token == nil {
		t.Fatalf("Step 4 - Expected PENDING with fresh token, got %+v", sub)
	}

	// Step 5: Confirm again with the fresh token
	req = httptest.NewRequest("GET", "/api/confirm?token="+*sub.Token, nil)
	w = httptest.NewRecorder()
	handler.Confirm(w, req)
	testutil.AssertStatus(t, w, 200)

	if got := testutil.GetSubscriber(t, db, "a@x.com").Status; got != models.StatusConfirmed {
		t.Fatalf("Step 5 - Expected CONFIRMED, got %s", got)
	}
}
