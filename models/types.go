package models

import "time"

// Price range bounds ($ .. $$$$)
const (
	MinPriceRange = 1
	MaxPriceRange = 4
)

// WeekID identifies a voting week, e.g. "2025-W42"
type WeekID string

// Domain types

type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type Restaurant struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Cuisine     string    `json:"cuisine"`
	PriceRange  int       `json:"priceRange"`
	Description string    `json:"description"`
	Votes       int       `json:"votes"` // display only, recomputed from the week's votes
	SubmittedBy string    `json:"submittedBy"`
	SubmittedAt time.Time `json:"submittedAt"`
}

type Vote struct {
	UserID       string    `json:"userId"`
	RestaurantID string    `json:"restaurantId"`
	Week         WeekID    `json:"week"`
	VotedAt      time.Time `json:"votedAt"`
}

// RestaurantForm is the user-supplied part of a restaurant suggestion.
type RestaurantForm struct {
	Name        string `json:"name"`
	Cuisine     string `json:"cuisine"`
	PriceRange  int    `json:"priceRange"`
	Description string `json:"description"`
}

// Request types

type LoginRequest struct {
	Email string `json:"email"`
}

type ToggleVoteRequest struct {
	RestaurantID string `json:"restaurantId"`
}

// Response types

type ToggleVoteResponse struct {
	Action string `json:"action"`
	Week   WeekID `json:"week"`
	Vote   *Vote  `json:"vote,omitempty"`
}

type DisplayNameResponse struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
}

type RestaurantListResponse struct {
	Restaurants []Restaurant `json:"restaurants"`
	Total       int          `json:"total"`
	Cuisines    []string     `json:"cuisines"`
}

type WeekResponse struct {
	Week     WeekID    `json:"week"`
	Label    string    `json:"label"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Deadline time.Time `json:"deadline"`
	CanVote  bool      `json:"can_vote"`
}

// RankedRestaurant is a restaurant as shown on the weekly standings.
type RankedRestaurant struct {
	Restaurant
	Rank          int     `json:"rank"` // 1-indexed
	SubmitterName string  `json:"submitter_name"`
	VoteShare     float64 `json:"vote_share"` // percent of this week's votes
	IsUserVote    bool    `json:"is_user_vote"`
}

// Standings is the weekly dashboard state for one user.
type Standings struct {
	Week              WeekID             `json:"week"`
	Label             string             `json:"label"`
	Start             time.Time          `json:"start"`
	End               time.Time          `json:"end"`
	Restaurants       []RankedRestaurant `json:"restaurants"`
	UserVote          *Vote              `json:"user_vote,omitempty"`
	TotalVotes        int                `json:"total_votes"`
	TotalUsers        int                `json:"total_users"`
	ParticipationRate float64            `json:"participation_rate"` // percent
	Deadline          time.Time          `json:"deadline"`
	CanVote           bool               `json:"can_vote"`
	HoursRemaining    int                `json:"hours_remaining"`
	ClosesIn          string             `json:"closes_in"`
}

// Error responses

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}
