// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/danielhkuo/lunch-vote/cliparse"
	"github.com/danielhkuo/lunch-vote/directory"
	"github.com/danielhkuo/lunch-vote/middleware"
	"github.com/danielhkuo/lunch-vote/models"
)

// localNow is the clock's current time in the team's time zone.
func localNow(clock clockwork.Clock, cfg cliparse.Config) time.Time {
	now := clock.Now()
	if cfg.Location != nil {
		now = now.In(cfg.Location)
	}
	return now
}

// SessionCookie carries the token issued by POST /session.
const SessionCookie = "lunch_session"

func sessionToken(r *http.Request) string {
	c, err := r.Cookie(SessionCookie)
	if err != nil {
		return ""
	}
	return c.Value
}

func setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// requestUser resolves the user behind the request's session cookie.
func requestUser(r *http.Request, dir *directory.Service) (models.User, bool, error) {
	return dir.CurrentUser(r.Context(), sessionToken(r))
}

// requireUser writes 401 and returns false when the request carries no
// valid session.
func requireUser(w http.ResponseWriter, r *http.Request, dir *directory.Service) (models.User, bool) {
	user, ok, err := requestUser(r, dir)
	if err != nil {
		slog.Error("failed to load session", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to load session")
		return models.User{}, false
	}
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Not logged in")
		return models.User{}, false
	}
	return user, true
}
