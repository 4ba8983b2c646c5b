// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielhkuo/lunch-vote/models"
	"github.com/jonboulle/clockwork"
)

func TestRateLimiter_Allow(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC))
	rl := NewRateLimiter(1, 3, clock.Now)

	for i := 0; i < 3; i++ {
		if !rl.Allow("10.0.0.1") {
			t.Fatalf("Expected request %d within burst to be allowed", i+1)
		}
	}
	if rl.Allow("10.0.0.1") {
		t.Error("Expected request beyond burst to be rejected")
	}

	// Other clients have their own bucket
	if !rl.Allow("10.0.0.2") {
		t.Error("Expected a different client to be allowed")
	}

	clock.Advance(time.Second)
	if !rl.Allow("10.0.0.1") {
		t.Error("Expected a token to be refilled after one second")
	}
}

func TestRateLimiter_ExpiresIdleClients(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC))
	rl := NewRateLimiter(1, 1, clock.Now)

	rl.Allow("10.0.0.1")
	clock.Advance(limiterExpiry + time.Second)
	rl.Allow("10.0.0.2")

	rl.mu.Lock()
	defer rl.mu.Unlock()
	if _, ok := rl.clients["10.0.0.1"]; ok {
		t.Error("Expected idle client to be dropped")
	}
	if len(rl.clients) != 1 {
		t.Errorf("Expected 1 tracked client, got %d", len(rl.clients))
	}
}

func TestRateLimit(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC))
	rl := NewRateLimiter(1, 1, clock.Now)

	calls := 0
	handler := RateLimit(rl, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusOK)
	}))

	send := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest("GET", "/restaurants", nil)
		req.RemoteAddr = "192.168.1.50:54321"
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		return w
	}

	if w := send(); w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	w := send()
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("Expected status 429, got %d", w.Code)
	}
	var resp models.ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode error response: %v", err)
	}
	if resp.Message != "rate limit exceeded" {
		t.Errorf("Expected message 'rate limit exceeded', got '%s'", resp.Message)
	}
	if calls != 1 {
		t.Errorf("Expected next handler to be called once, got %d", calls)
	}
}
