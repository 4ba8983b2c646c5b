// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jonboulle/clockwork"

	"github.com/danielhkuo/lunch-vote/catalog"
	"github.com/danielhkuo/lunch-vote/directory"
	"github.com/danielhkuo/lunch-vote/kvstore"
	"github.com/danielhkuo/lunch-vote/metrics"
	"github.com/danielhkuo/lunch-vote/testutil"
	"github.com/danielhkuo/lunch-vote/voting"
	"github.com/danielhkuo/lunch-vote/week"
)

type testEnv struct {
	store       *kvstore.Store
	metrics     *metrics.Metrics
	users       *UserHandler
	restaurants *RestaurantHandler
	voting      *VotingHandler

	// session is attached to requests built with request
	session *http.Cookie
}

// setupHandlers wires every handler over a fresh store with the clock
// frozen at testutil.ReferenceTime.
func setupHandlers(t *testing.T) *testEnv {
	t.Helper()
	cfg := testutil.GetTestConfig()
	return setupHandlersWithSchedule(t, week.Deadline{Weekday: cfg.DeadlineWeekday, Hour: cfg.DeadlineHour})
}

func setupHandlersWithSchedule(t *testing.T, schedule voting.Schedule) *testEnv {
	t.Helper()

	store := testutil.NewTestStore(t)
	cfg := testutil.GetTestConfig()
	clock := clockwork.NewFakeClockAt(testutil.ReferenceTime)
	m := metrics.New()

	dir := directory.NewService(store)
	engine := voting.NewEngine(store, schedule)
	cat := catalog.New(store)

	return &testEnv{
		store:       store,
		metrics:     m,
		users:       NewUserHandler(dir, m),
		restaurants: NewRestaurantHandler(cat, dir, engine, m, clock, cfg),
		voting:      NewVotingHandler(engine, dir, m, clock, cfg),
	}
}

// loginAs opens a session for the roster user with id and makes it the
// session of later requests.
func (e *testEnv) loginAs(t *testing.T, id string) *http.Cookie {
	t.Helper()

	users, err := e.store.Users(context.Background())
	if err != nil {
		t.Fatalf("Failed to load users: %v", err)
	}
	for _, u := range users {
		if u.ID == id {
			token := "session-" + id
			if err := e.store.SetCurrentUser(context.Background(), token, &u); err != nil {
				t.Fatalf("Failed to set session: %v", err)
			}
			e.session = &http.Cookie{Name: SessionCookie, Value: token}
			return e.session
		}
	}
	t.Fatalf("No user with id %s", id)
	return nil
}

// request builds a test request carrying the current session, if any.
func (e *testEnv) request(method, path string, body interface{}) *http.Request {
	req := testutil.MakeRequest(method, path, body, nil)
	if e.session != nil {
		req.AddCookie(e.session)
	}
	return req
}

// sessionFrom returns the session cookie set on a response.
func sessionFrom(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == SessionCookie {
			return c
		}
	}
	t.Fatalf("Expected %s cookie in response", SessionCookie)
	return nil
}
