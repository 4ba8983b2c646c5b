// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/danielhkuo/lunch-vote/models"
)

func TestTally(t *testing.T) {
	votes := []models.Vote{
		{UserID: "u1", RestaurantID: "A", Week: "W1"},
		{UserID: "u2", RestaurantID: "A", Week: "W1"},
		{UserID: "u3", RestaurantID: "B", Week: "W1"},
		{UserID: "u1", RestaurantID: "B", Week: "W2"},
	}

	assert.Equal(t, map[string]int{"A": 2, "B": 1}, Tally(votes, "W1"))

	w2 := Tally(votes, "W2")
	assert.Equal(t, map[string]int{"B": 1}, w2)
	assert.Zero(t, w2["A"])

	assert.Empty(t, Tally(votes, "W3"))
	assert.Empty(t, Tally(nil, "W1"))
}

func TestRank(t *testing.T) {
	restaurants := []models.Restaurant{
		{ID: "X", Votes: 7}, // stale display count is ignored
		{ID: "Y"},
		{ID: "Z"},
	}

	ranked := Rank(restaurants, map[string]int{"Z": 3})

	var ids []string
	var counts []int
	for _, r := range ranked {
		ids = append(ids, r.ID)
		counts = append(counts, r.Votes)
	}
	assert.Equal(t, []string{"Z", "X", "Y"}, ids)
	assert.Equal(t, []int{3, 0, 0}, counts)
	assert.Equal(t, 7, restaurants[0].Votes, "input must not be modified")
}

func TestRank_StableForTies(t *testing.T) {
	restaurants := []models.Restaurant{{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "d"}, {ID: "e"}}
	tally := map[string]int{"b": 2, "d": 2, "e": 1}

	var ids []string
	for _, r := range Rank(restaurants, tally) {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []string{"b", "d", "e", "a", "c"}, ids)
}

func TestCurrentVote(t *testing.T) {
	votes := []models.Vote{
		{UserID: "u1", RestaurantID: "A", Week: "W1"},
		{UserID: "u1", RestaurantID: "B", Week: "W2"},
	}

	v, ok := CurrentVote(votes, "u1", "W2")
	assert.True(t, ok)
	assert.Equal(t, "B", v.RestaurantID)

	_, ok = CurrentVote(votes, "u2", "W1")
	assert.False(t, ok)
}
