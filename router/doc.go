// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Lunch Vote API.

# Route Registration

NewRouter builds the domain services over a store and returns a
configured http.ServeMux with all endpoints:

	mux := router.NewRouter(store, metrics.New(), clockwork.NewRealClock(), cfg)

# Endpoints

Health and monitoring:

	GET /health
	GET /metrics - Prometheus exposition

Session and directory:

	POST   /session           - Log in by email
	GET    /session           - Current user
	DELETE /session           - Log out
	GET    /users/{id}/name   - Display name

Restaurants:

	GET  /restaurants - List, filter with ?q=&cuisine=&price=
	POST /restaurants - Suggest a restaurant

Voting:

	GET  /weeks/current    - Week id, range and deadline
	GET  /votes/standings  - Ranked restaurants for this week
	POST /votes/toggle     - Cast, move or retract a vote

Every API route is wrapped with request logging and a per-route
duration histogram.
*/
package router
