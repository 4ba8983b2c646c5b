// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/lunch-vote/models"
	"github.com/danielhkuo/lunch-vote/testutil"
	"github.com/danielhkuo/lunch-vote/week"
)

func TestStandings(t *testing.T) {
	engine, store := setupEngine(t)
	ctx := context.Background()
	now := testutil.ReferenceTime

	testutil.AddTestVotes(t, store,
		models.Vote{UserID: "1", RestaurantID: "B", Week: w41, VotedAt: now},
		models.Vote{UserID: "2", RestaurantID: "B", Week: w41, VotedAt: now},
		models.Vote{UserID: "3", RestaurantID: "C", Week: w41, VotedAt: now},
		models.Vote{UserID: "4", RestaurantID: "A", Week: "2025-W40", VotedAt: now},
	)

	s, err := engine.Standings(ctx, "1", now)
	require.NoError(t, err)

	assert.Equal(t, w41, s.Week)
	assert.Equal(t, "Week 41, 2025", s.Label)
	assert.Equal(t, 3, s.TotalVotes)
	assert.Equal(t, 6, s.TotalUsers)
	assert.InDelta(t, 50.0, s.ParticipationRate, 0.001)
	assert.True(t, s.CanVote)
	assert.Equal(t, 53, s.HoursRemaining) // Wed 10:00 -> Fri 15:00
	assert.Equal(t, "2 days from now", s.ClosesIn)

	require.Len(t, s.Restaurants, 3)
	assert.Equal(t, "B", s.Restaurants[0].ID)
	assert.Equal(t, 1, s.Restaurants[0].Rank)
	assert.Equal(t, 2, s.Restaurants[0].Votes)
	assert.InDelta(t, 66.667, s.Restaurants[0].VoteShare, 0.01)
	assert.True(t, s.Restaurants[0].IsUserVote)
	assert.Equal(t, "C", s.Restaurants[1].ID)
	assert.Equal(t, "A", s.Restaurants[2].ID)
	assert.Equal(t, 0, s.Restaurants[2].Votes, "last week's vote must not count")
	assert.Equal(t, "Alice Johnson", s.Restaurants[2].SubmitterName)

	require.NotNil(t, s.UserVote)
	assert.Equal(t, "B", s.UserVote.RestaurantID)
}

func TestStandings_Empty(t *testing.T) {
	engine := NewEngine(testutil.NewTestStore(t), week.DefaultDeadline)
	s, err := engine.Standings(context.Background(), "", testutil.ReferenceTime)
	require.NoError(t, err)

	assert.Empty(t, s.Restaurants)
	assert.Nil(t, s.UserVote)
	assert.Zero(t, s.TotalVotes)
	assert.Zero(t, s.ParticipationRate)
}
