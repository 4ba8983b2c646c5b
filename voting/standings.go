// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"context"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/lunch-vote/directory"
	"github.com/danielhkuo/lunch-vote/models"
	"github.com/danielhkuo/lunch-vote/week"
)

// Standings builds the weekly dashboard for userID as of now.
// userID may be empty for an anonymous view.
func (e *Engine) Standings(ctx context.Context, userID string, now time.Time) (models.Standings, error) {
	wk := week.CurrentWeek(now)

	restaurants, err := e.store.Restaurants(ctx)
	if err != nil {
		return models.Standings{}, fmt.Errorf("failed to load restaurants: %w", err)
	}
	votes, err := e.store.Votes(ctx)
	if err != nil {
		return models.Standings{}, fmt.Errorf("failed to load votes: %w", err)
	}
	users, err := e.store.Users(ctx)
	if err != nil {
		return models.Standings{}, fmt.Errorf("failed to load users: %w", err)
	}

	tally := Tally(votes, wk)
	totalVotes := 0
	for _, n := range tally {
		totalVotes += n
	}

	var userVote *models.Vote
	if v, ok := CurrentVote(votes, userID, wk); ok && userID != "" {
		userVote = &v
	}

	ranked := Rank(restaurants, tally)
	rows := make([]models.RankedRestaurant, len(ranked))
	for i, r := range ranked {
		share := 0.0
		if totalVotes > 0 {
			share = float64(r.Votes) / float64(totalVotes) * 100
		}
		rows[i] = models.RankedRestaurant{
			Restaurant:    r,
			Rank:          i + 1,
			SubmitterName: directory.NameOf(users, r.SubmittedBy),
			VoteShare:     share,
			IsUserVote:    userVote != nil && userVote.RestaurantID == r.ID,
		}
	}

	participation := 0.0
	if len(users) > 0 {
		participation = float64(totalVotes) / float64(len(users)) * 100
	}

	deadline := e.deadline.Next(now)
	start, end, err := week.DateRange(wk, now.Location())
	if err != nil {
		return models.Standings{}, err
	}

	return models.Standings{
		Week:              wk,
		Label:             week.Display(wk),
		Start:             start,
		End:               end,
		Restaurants:       rows,
		UserVote:          userVote,
		TotalVotes:        totalVotes,
		TotalUsers:        len(users),
		ParticipationRate: participation,
		Deadline:          deadline,
		CanVote:           now.Before(deadline),
		HoursRemaining:    week.HoursUntil(now, deadline),
		ClosesIn:          humanize.RelTime(now, deadline, "from now", "ago"),
	}, nil
}
