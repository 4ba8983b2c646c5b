// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/jonboulle/clockwork"

	"github.com/danielhkuo/lunch-vote/catalog"
	"github.com/danielhkuo/lunch-vote/cliparse"
	"github.com/danielhkuo/lunch-vote/directory"
	"github.com/danielhkuo/lunch-vote/metrics"
	"github.com/danielhkuo/lunch-vote/middleware"
	"github.com/danielhkuo/lunch-vote/models"
	"github.com/danielhkuo/lunch-vote/voting"
	"github.com/danielhkuo/lunch-vote/week"
)

type RestaurantHandler struct {
	catalog *catalog.Catalog
	dir     *directory.Service
	engine  *voting.Engine
	metrics *metrics.Metrics
	clock   clockwork.Clock
	cfg     cliparse.Config
}

func NewRestaurantHandler(c *catalog.Catalog, dir *directory.Service, engine *voting.Engine, m *metrics.Metrics, clock clockwork.Clock, cfg cliparse.Config) *RestaurantHandler {
	return &RestaurantHandler{catalog: c, dir: dir, engine: engine, metrics: m, clock: clock, cfg: cfg}
}

// ListRestaurants handles GET /restaurants?q=&cuisine=&price=
// Vote counts reflect the current week.
func (h *RestaurantHandler) ListRestaurants(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	criteria := catalog.Criteria{
		Search:  query.Get("q"),
		Cuisine: query.Get("cuisine"),
	}
	if p := query.Get("price"); p != "" {
		price, err := strconv.Atoi(p)
		if err != nil || price < models.MinPriceRange || price > models.MaxPriceRange {
			middleware.ErrorResponse(w, http.StatusBadRequest, "price must be between 1 and 4")
			return
		}
		criteria.PriceRange = price
	}

	all, err := h.catalog.List(r.Context())
	if err != nil {
		slog.Error("failed to list restaurants", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to load restaurants")
		return
	}

	tally, err := h.engine.WeekTally(r.Context(), week.CurrentWeek(localNow(h.clock, h.cfg)))
	if err != nil {
		slog.Error("failed to tally votes", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to load votes")
		return
	}
	for i := range all {
		all[i].Votes = tally[all[i].ID]
	}

	middleware.JSONResponse(w, http.StatusOK, models.RestaurantListResponse{
		Restaurants: catalog.Filter(all, criteria),
		Total:       len(all),
		Cuisines:    catalog.Cuisines(all),
	})
}

// SubmitRestaurant handles POST /restaurants
// Requires a logged-in user, who is recorded as the submitter.
func (h *RestaurantHandler) SubmitRestaurant(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r, h.dir)
	if !ok {
		return
	}

	var form models.RestaurantForm
	if err := middleware.ParseJSONBody(r, &form); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	restaurant, err := h.catalog.Submit(r.Context(), form, user.ID, localNow(h.clock, h.cfg))
	var verr *catalog.ValidationError
	if errors.As(err, &verr) {
		h.metrics.RestaurantsSubmitted.WithLabelValues("invalid").Inc()
		middleware.ValidationResponse(w, verr.Fields)
		return
	}
	if err != nil {
		h.metrics.RestaurantsSubmitted.WithLabelValues("error").Inc()
		slog.Error("failed to submit restaurant", "error", err, "user_id", user.ID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save restaurant")
		return
	}

	h.metrics.RestaurantsSubmitted.WithLabelValues("accepted").Inc()
	middleware.JSONResponse(w, http.StatusCreated, restaurant)
}
