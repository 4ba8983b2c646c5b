// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"cmp"
	"slices"

	"github.com/danielhkuo/lunch-vote/models"
)

// Tally counts wk's votes per restaurant id.
func Tally(votes []models.Vote, wk models.WeekID) map[string]int {
	counts := make(map[string]int)
	for _, v := range votes {
		if v.Week == wk {
			counts[v.RestaurantID]++
		}
	}
	return counts
}

// Rank returns copies of restaurants with Votes taken from tally (0 when
// absent), ordered by descending votes. Ties keep their input order.
func Rank(restaurants []models.Restaurant, tally map[string]int) []models.Restaurant {
	ranked := make([]models.Restaurant, len(restaurants))
	for i, r := range restaurants {
		r.Votes = tally[r.ID]
		ranked[i] = r
	}
	slices.SortStableFunc(ranked, func(a, b models.Restaurant) int {
		return cmp.Compare(b.Votes, a.Votes)
	})
	return ranked
}

// CurrentVote finds userID's vote for wk.
func CurrentVote(votes []models.Vote, userID string, wk models.WeekID) (models.Vote, bool) {
	for _, v := range votes {
		if v.UserID == userID && v.Week == wk {
			return v, true
		}
	}
	return models.Vote{}, false
}
