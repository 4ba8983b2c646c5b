// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package catalog accepts, validates and filters restaurant suggestions.
package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/lunch-vote/kvstore"
	"github.com/danielhkuo/lunch-vote/models"
)

// CuisineOptions are the cuisines offered when suggesting a restaurant.
var CuisineOptions = []string{
	"Italian", "Chinese", "Japanese", "Mexican", "Indian", "Thai", "Mediterranean",
	"American", "French", "Korean", "Vietnamese", "Greek", "Other",
}

// Catalog manages restaurant suggestions.
type Catalog struct {
	store *kvstore.Store
	newID func() string
}

func New(store *kvstore.Store) *Catalog {
	return &Catalog{store: store, newID: uuid.NewString}
}

// Submit validates form and appends the new restaurant to the store.
// A *ValidationError lists every failing field; nothing is written then.
func (c *Catalog) Submit(ctx context.Context, form models.RestaurantForm, submittedBy string, now time.Time) (models.Restaurant, error) {
	if err := Validate(form); err != nil {
		return models.Restaurant{}, err
	}

	restaurant := models.Restaurant{
		ID:          c.newID(),
		Name:        strings.TrimSpace(form.Name),
		Cuisine:     form.Cuisine,
		PriceRange:  form.PriceRange,
		Description: strings.TrimSpace(form.Description),
		Votes:       0,
		SubmittedBy: submittedBy,
		SubmittedAt: now,
	}

	if err := c.store.AppendRestaurant(ctx, restaurant); err != nil {
		return models.Restaurant{}, fmt.Errorf("failed to save restaurant: %w", err)
	}

	slog.Info("restaurant submitted", "restaurant_id", restaurant.ID, "submitted_by", submittedBy)
	return restaurant, nil
}

func (c *Catalog) List(ctx context.Context) ([]models.Restaurant, error) {
	return c.store.Restaurants(ctx)
}

// Get returns the restaurant with id; ok is false when there is none.
func (c *Catalog) Get(ctx context.Context, id string) (restaurant models.Restaurant, ok bool, err error) {
	restaurants, err := c.store.Restaurants(ctx)
	if err != nil {
		return models.Restaurant{}, false, err
	}
	i := slices.IndexFunc(restaurants, func(r models.Restaurant) bool { return r.ID == id })
	if i < 0 {
		return models.Restaurant{}, false, nil
	}
	return restaurants[i], true, nil
}

// Criteria narrows a restaurant list. Zero values match everything.
type Criteria struct {
	Search     string // substring of name, cuisine or description, any case
	Cuisine    string // exact cuisine
	PriceRange int    // exact price range, 0 for any
}

// Filter keeps restaurants passing every non-empty criterion, in order.
func Filter(restaurants []models.Restaurant, c Criteria) []models.Restaurant {
	search := strings.ToLower(c.Search)

	out := make([]models.Restaurant, 0, len(restaurants))
	for _, r := range restaurants {
		matchesSearch := strings.Contains(strings.ToLower(r.Name), search) ||
			strings.Contains(strings.ToLower(r.Cuisine), search) ||
			strings.Contains(strings.ToLower(r.Description), search)
		matchesCuisine := c.Cuisine == "" || r.Cuisine == c.Cuisine
		matchesPrice := c.PriceRange == 0 || r.PriceRange == c.PriceRange

		if matchesSearch && matchesCuisine && matchesPrice {
			out = append(out, r)
		}
	}
	return out
}

// Cuisines returns the distinct cuisines in use, sorted.
func Cuisines(restaurants []models.Restaurant) []string {
	cuisines := make([]string, 0, len(restaurants))
	for _, r := range restaurants {
		cuisines = append(cuisines, r.Cuisine)
	}
	slices.Sort(cuisines)
	return slices.Compact(cuisines)
}

// PriceSymbol renders a price range as dollar signs.
func PriceSymbol(priceRange int) string {
	if priceRange < 0 {
		return ""
	}
	return strings.Repeat("$", priceRange)
}
