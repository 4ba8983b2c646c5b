// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/jonboulle/clockwork"

	"github.com/danielhkuo/lunch-vote/cliparse"
	"github.com/danielhkuo/lunch-vote/directory"
	"github.com/danielhkuo/lunch-vote/metrics"
	"github.com/danielhkuo/lunch-vote/middleware"
	"github.com/danielhkuo/lunch-vote/models"
	"github.com/danielhkuo/lunch-vote/voting"
	"github.com/danielhkuo/lunch-vote/week"
)

type VotingHandler struct {
	engine  *voting.Engine
	dir     *directory.Service
	metrics *metrics.Metrics
	clock   clockwork.Clock
	cfg     cliparse.Config
}

func NewVotingHandler(engine *voting.Engine, dir *directory.Service, m *metrics.Metrics, clock clockwork.Clock, cfg cliparse.Config) *VotingHandler {
	return &VotingHandler{engine: engine, dir: dir, metrics: m, clock: clock, cfg: cfg}
}

// ToggleVote handles POST /votes/toggle
// Casts, moves or retracts the session user's vote for the current week.
func (h *VotingHandler) ToggleVote(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r, h.dir)
	if !ok {
		return
	}

	var req models.ToggleVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.RestaurantID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "restaurantId is required")
		return
	}

	now := localNow(h.clock, h.cfg)
	if !h.engine.CanVote(now) {
		middleware.ErrorResponse(w, http.StatusConflict, "Voting is closed for this week")
		return
	}

	wk := week.CurrentWeek(now)
	action, err := h.engine.ToggleVote(r.Context(), user.ID, req.RestaurantID, wk, now)
	switch {
	case errors.Is(err, voting.ErrRestaurantNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Restaurant not found")
		return
	case errors.Is(err, voting.ErrUserNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "User not found")
		return
	case err != nil:
		slog.Error("failed to toggle vote", "error", err, "user_id", user.ID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save vote")
		return
	}

	h.metrics.VotesToggled.WithLabelValues(string(action)).Inc()

	resp := models.ToggleVoteResponse{Action: string(action), Week: wk}
	if action != voting.ActionRetract {
		resp.Vote = &models.Vote{
			UserID:       user.ID,
			RestaurantID: req.RestaurantID,
			Week:         wk,
			VotedAt:      now,
		}
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}

// GetStandings handles GET /votes/standings
// Anonymous callers get the standings without a personal vote.
func (h *VotingHandler) GetStandings(w http.ResponseWriter, r *http.Request) {
	user, _, err := requestUser(r, h.dir)
	if err != nil {
		slog.Error("failed to load session", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to load session")
		return
	}

	standings, err := h.engine.Standings(r.Context(), user.ID, localNow(h.clock, h.cfg))
	if err != nil {
		slog.Error("failed to build standings", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to load standings")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, standings)
}

// GetCurrentWeek handles GET /weeks/current
func (h *VotingHandler) GetCurrentWeek(w http.ResponseWriter, r *http.Request) {
	now := localNow(h.clock, h.cfg)
	wk := week.CurrentWeek(now)

	start, end, err := week.DateRange(wk, now.Location())
	if err != nil {
		slog.Error("failed to compute week range", "error", err, "week", wk)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to compute week")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.WeekResponse{
		Week:     wk,
		Label:    week.Display(wk),
		Start:    start,
		End:      end,
		Deadline: h.engine.Deadline(now),
		CanVote:  h.engine.CanVote(now),
	})
}
