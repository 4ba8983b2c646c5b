// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/jonboulle/clockwork"

	"github.com/danielhkuo/lunch-vote/catalog"
	"github.com/danielhkuo/lunch-vote/cliparse"
	"github.com/danielhkuo/lunch-vote/directory"
	"github.com/danielhkuo/lunch-vote/handlers"
	"github.com/danielhkuo/lunch-vote/kvstore"
	"github.com/danielhkuo/lunch-vote/metrics"
	"github.com/danielhkuo/lunch-vote/middleware"
	"github.com/danielhkuo/lunch-vote/voting"
	"github.com/danielhkuo/lunch-vote/week"
)

func NewRouter(store *kvstore.Store, m *metrics.Metrics, clock clockwork.Clock, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Domain services
	dir := directory.NewService(store)
	cat := catalog.New(store)
	engine := voting.NewEngine(store, week.Deadline{Weekday: cfg.DeadlineWeekday, Hour: cfg.DeadlineHour})

	// Initialize handlers
	userHandler := handlers.NewUserHandler(dir, m)
	restaurantHandler := handlers.NewRestaurantHandler(cat, dir, engine, m, clock, cfg)
	votingHandler := handlers.NewVotingHandler(engine, dir, m, clock, cfg)

	route := func(pattern string, h http.HandlerFunc) {
		mux.HandleFunc(pattern, middleware.WithLogging(m.Instrument(pattern, h)))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	mux.Handle("GET /metrics", m.Handler())

	// Session and directory
	route("POST /session", userHandler.Login)
	route("GET /session", userHandler.GetSession)
	route("DELETE /session", userHandler.Logout)
	route("GET /users/{id}/name", userHandler.GetDisplayName)

	// Restaurant catalog
	route("GET /restaurants", restaurantHandler.ListRestaurants)
	route("POST /restaurants", restaurantHandler.SubmitRestaurant)

	// Voting
	route("GET /weeks/current", votingHandler.GetCurrentWeek)
	route("GET /votes/standings", votingHandler.GetStandings)
	route("POST /votes/toggle", votingHandler.ToggleVote)

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("lunch-vote API v1"))
	})

	return mux
}
