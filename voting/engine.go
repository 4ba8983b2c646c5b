// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/danielhkuo/lunch-vote/kvstore"
	"github.com/danielhkuo/lunch-vote/models"
	"github.com/danielhkuo/lunch-vote/week"
)

var (
	ErrRestaurantNotFound = errors.New("restaurant not found")
	ErrUserNotFound       = errors.New("user not found")
)

// Action is the outcome of a vote toggle.
type Action string

const (
	ActionCast    Action = "cast"    // no previous vote this week
	ActionReplace Action = "replace" // previous vote moved to another restaurant
	ActionRetract Action = "retract" // previous vote for the same restaurant removed
)

// Schedule decides when weekly voting closes. week.Deadline is the
// production schedule.
type Schedule interface {
	Next(now time.Time) time.Time
	CanVote(now time.Time) bool
}

var _ Schedule = week.Deadline{}

// Engine applies votes. It is the only writer of the vote list.
type Engine struct {
	store    *kvstore.Store
	deadline Schedule
}

func NewEngine(store *kvstore.Store, deadline Schedule) *Engine {
	return &Engine{store: store, deadline: deadline}
}

// CanVote reports whether voting is open at now. Callers check it before
// ToggleVote.
func (e *Engine) CanVote(now time.Time) bool {
	return e.deadline.CanVote(now)
}

// Deadline returns the next time voting closes after now.
func (e *Engine) Deadline(now time.Time) time.Time {
	return e.deadline.Next(now)
}

// ToggleVote records userID's vote for restaurantID in wk, or retracts it
// when it already targets restaurantID. Both user and restaurant must
// exist. The vote list is rewritten in a single read-modify-write.
func (e *Engine) ToggleVote(ctx context.Context, userID, restaurantID string, wk models.WeekID, now time.Time) (Action, error) {
	users, err := e.store.Users(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to load users: %w", err)
	}
	if !slices.ContainsFunc(users, func(u models.User) bool { return u.ID == userID }) {
		return "", fmt.Errorf("%w: %s", ErrUserNotFound, userID)
	}

	restaurants, err := e.store.Restaurants(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to load restaurants: %w", err)
	}
	if !slices.ContainsFunc(restaurants, func(r models.Restaurant) bool { return r.ID == restaurantID }) {
		return "", fmt.Errorf("%w: %s", ErrRestaurantNotFound, restaurantID)
	}

	var action Action
	err = e.store.UpdateVotes(ctx, func(votes []models.Vote) []models.Vote {
		current, hasVote := CurrentVote(votes, userID, wk)
		kept := slices.DeleteFunc(votes, func(v models.Vote) bool {
			return v.UserID == userID && v.Week == wk
		})

		switch {
		case hasVote && current.RestaurantID == restaurantID:
			action = ActionRetract
			return kept
		case hasVote:
			action = ActionReplace
		default:
			action = ActionCast
		}

		return append(kept, models.Vote{
			UserID:       userID,
			RestaurantID: restaurantID,
			Week:         wk,
			VotedAt:      now,
		})
	})
	if err != nil {
		return "", fmt.Errorf("failed to save votes: %w", err)
	}

	slog.Info("vote toggled", "user_id", userID, "restaurant_id", restaurantID, "week", wk, "action", action)
	return action, nil
}

// UserVote returns userID's vote for wk, if any.
func (e *Engine) UserVote(ctx context.Context, userID string, wk models.WeekID) (models.Vote, bool, error) {
	votes, err := e.store.Votes(ctx)
	if err != nil {
		return models.Vote{}, false, fmt.Errorf("failed to load votes: %w", err)
	}
	vote, ok := CurrentVote(votes, userID, wk)
	return vote, ok, nil
}

// WeekTally counts the stored votes for wk per restaurant id.
func (e *Engine) WeekTally(ctx context.Context, wk models.WeekID) (map[string]int, error) {
	votes, err := e.store.Votes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load votes: %w", err)
	}
	return Tally(votes, wk), nil
}
