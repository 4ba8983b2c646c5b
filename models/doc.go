// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Domain Types

Persisted as JSON arrays in the key/value store:

  - User: roster entry (id, name, email)
  - Restaurant: suggestion with cuisine, price range 1-4 and submitter
  - Vote: one user's pick for one week
  - WeekID: week identifier, "YYYY-Www"

Restaurant.Votes is display-only; it is recomputed from the week's votes
and never trusted from storage.

# Request Types

  - LoginRequest: email
  - RestaurantForm: name, cuisine, priceRange, description
  - ToggleVoteRequest: restaurantId

# Response Types

  - ToggleVoteResponse: action, week, vote
  - DisplayNameResponse: user_id, name
  - RestaurantListResponse: restaurants, total, cuisines
  - WeekResponse: week, label, start, end, deadline, can_vote
  - Standings: ranked restaurants plus participation and deadline
  - ErrorResponse: error, message
  - ValidationErrorResponse: error, fields
*/
package models
