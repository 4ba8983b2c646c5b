// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Lunch Vote API.

# Handler Types

Each handler is a struct over the domain services it needs:

  - UserHandler: session login/logout and display names
  - RestaurantHandler: catalog listing and submissions
  - VotingHandler: vote toggling, weekly standings, current week

Handlers that depend on the time take a clockwork.Clock and the
Config; the clock is read in the configured time zone so week and
deadline math happen on the team's calendar.

	votingHandler := handlers.NewVotingHandler(engine, dir, m, clockwork.NewRealClock(), cfg)

# Session

Login issues an opaque token in the lunch_session cookie; each client
has its own session, stored alongside the data under that token:

	POST   /session  → Login (401 "Email not recognized")
	GET    /session  → GetSession (401 without a valid cookie)
	DELETE /session  → Logout

Submitting restaurants and voting require a session.

# Voting

	POST /votes/toggle     → ToggleVote (cast, replace or retract)
	GET  /votes/standings  → GetStandings
	GET  /weeks/current    → GetCurrentWeek

ToggleVote answers 409 once voting has closed, 404 for an unknown
restaurant or session user.

# Restaurants

	GET  /restaurants?q=&cuisine=&price=  → ListRestaurants
	POST /restaurants                     → SubmitRestaurant (422 with field errors)
*/
package handlers
