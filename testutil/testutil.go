// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package testutil provides fixtures and HTTP assertions shared by tests.
package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/danielhkuo/lunch-vote/cliparse"
	"github.com/danielhkuo/lunch-vote/kvstore"
	"github.com/danielhkuo/lunch-vote/models"
)

// Wednesday 2025-10-15 10:00 UTC, inside week 2025-W41 and before the
// Friday deadline.
var ReferenceTime = time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC)

// NewTestStore returns an initialized store over an in-memory backend.
func NewTestStore(t *testing.T) *kvstore.Store {
	t.Helper()

	store := kvstore.NewStore(kvstore.NewMemoryBackend())
	if err := store.Initialize(context.Background()); err != nil {
		t.Fatalf("Failed to initialize store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

// NewSQLiteBackend opens a private in-memory SQLite database with the
// kv_entry schema.
func NewSQLiteBackend(t *testing.T) *kvstore.SQLBackend {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open sqlite: %v", err)
	}
	// every connection to ":memory:" is a separate database
	conn.SetMaxOpenConns(1)

	backend, err := kvstore.NewSQLBackend(conn, kvstore.DialectSQLite)
	if err != nil {
		conn.Close()
		t.Fatalf("Failed to create sql backend: %v", err)
	}
	t.Cleanup(func() { backend.Close() })
	return backend
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:            3318,
		DatabaseType:    cliparse.DatabaseMemory,
		Location:        time.UTC,
		DeadlineWeekday: time.Friday,
		DeadlineHour:    15,
	}
}

// AddTestRestaurant stores a restaurant with the given id and name.
func AddTestRestaurant(t *testing.T, store *kvstore.Store, id, name, cuisine string) models.Restaurant {
	t.Helper()

	r := models.Restaurant{
		ID:          id,
		Name:        name,
		Cuisine:     cuisine,
		PriceRange:  2,
		Description: name + " serves " + cuisine + " food",
		SubmittedBy: "1",
		SubmittedAt: ReferenceTime,
	}
	if err := store.AppendRestaurant(context.Background(), r); err != nil {
		t.Fatalf("Failed to create test restaurant: %v", err)
	}
	return r
}

// AddTestVotes appends votes directly, bypassing the voting engine.
func AddTestVotes(t *testing.T, store *kvstore.Store, votes ...models.Vote) {
	t.Helper()

	err := store.UpdateVotes(context.Background(), func(existing []models.Vote) []models.Vote {
		return append(existing, votes...)
	})
	if err != nil {
		t.Fatalf("Failed to create test votes: %v", err)
	}
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
