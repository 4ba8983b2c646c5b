// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/danielhkuo/lunch-vote/directory"
	"github.com/danielhkuo/lunch-vote/metrics"
	"github.com/danielhkuo/lunch-vote/middleware"
	"github.com/danielhkuo/lunch-vote/models"
)

type UserHandler struct {
	dir     *directory.Service
	metrics *metrics.Metrics
}

func NewUserHandler(dir *directory.Service, m *metrics.Metrics) *UserHandler {
	return &UserHandler{dir: dir, metrics: m}
}

// Login handles POST /session
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if strings.TrimSpace(req.Email) == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "email is required")
		return
	}

	user, token, err := h.dir.Login(r.Context(), req.Email)
	if errors.Is(err, directory.ErrUnknownEmail) {
		h.metrics.Logins.WithLabelValues("unknown").Inc()
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Email not recognized")
		return
	}
	if err != nil {
		h.metrics.Logins.WithLabelValues("error").Inc()
		slog.Error("failed to log in", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to log in")
		return
	}

	h.metrics.Logins.WithLabelValues("success").Inc()
	slog.Info("user logged in", "user_id", user.ID)

	setSessionCookie(w, token)
	middleware.JSONResponse(w, http.StatusOK, user)
}

// GetSession handles GET /session
func (h *UserHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r, h.dir)
	if !ok {
		return
	}
	middleware.JSONResponse(w, http.StatusOK, user)
}

// Logout handles DELETE /session
func (h *UserHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.dir.Logout(r.Context(), sessionToken(r)); err != nil {
		slog.Error("failed to log out", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to log out")
		return
	}
	clearSessionCookie(w)
	w.WriteHeader(http.StatusNoContent)
}

// GetDisplayName handles GET /users/{id}/name
func (h *UserHandler) GetDisplayName(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("id")
	if userID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "user id is required")
		return
	}

	name, err := h.dir.DisplayName(r.Context(), userID)
	if err != nil {
		slog.Error("failed to resolve display name", "error", err, "user_id", userID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to load users")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.DisplayNameResponse{
		UserID: userID,
		Name:   name,
	})
}
