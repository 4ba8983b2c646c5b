// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package directory resolves users from the fixed roster and keeps the
// logged-in session user.
package directory

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/danielhkuo/lunch-vote/kvstore"
	"github.com/danielhkuo/lunch-vote/models"
)

// UnknownName is shown for user ids not in the roster.
const UnknownName = "Unknown"

var ErrUnknownEmail = errors.New("email not recognized")

// Service resolves identities against the roster and holds the session.
type Service struct {
	store    *kvstore.Store
	newToken func() string
}

func NewService(store *kvstore.Store) *Service {
	return &Service{store: store, newToken: uuid.NewString}
}

// Authenticate finds the roster user whose email matches, ignoring case
// and surrounding whitespace. There is no password.
func (s *Service) Authenticate(ctx context.Context, email string) (models.User, error) {
	users, err := s.store.Users(ctx)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to load users: %w", err)
	}

	email = strings.TrimSpace(email)
	for _, u := range users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return models.User{}, ErrUnknownEmail
}

// DisplayName returns the user's name, or UnknownName.
func (s *Service) DisplayName(ctx context.Context, userID string) (string, error) {
	users, err := s.store.Users(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to load users: %w", err)
	}
	return NameOf(users, userID), nil
}

// NameOf looks userID up in an already loaded roster.
func NameOf(users []models.User, userID string) string {
	for _, u := range users {
		if u.ID == userID {
			return u.Name
		}
	}
	return UnknownName
}

// Login authenticates email and opens a session for the user. The
// returned token identifies the session in later calls.
func (s *Service) Login(ctx context.Context, email string) (user models.User, token string, err error) {
	user, err = s.Authenticate(ctx, email)
	if err != nil {
		return models.User{}, "", err
	}
	token = s.newToken()
	if err := s.store.SetCurrentUser(ctx, token, &user); err != nil {
		return models.User{}, "", fmt.Errorf("failed to store session: %w", err)
	}
	return user, token, nil
}

func (s *Service) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.store.SetCurrentUser(ctx, token, nil)
}

// CurrentUser returns the user logged in under token; ok is false when
// the token is empty or unknown.
func (s *Service) CurrentUser(ctx context.Context, token string) (user models.User, ok bool, err error) {
	if token == "" {
		return models.User{}, false, nil
	}
	u, err := s.store.CurrentUser(ctx, token)
	if err != nil {
		return models.User{}, false, fmt.Errorf("failed to load session: %w", err)
	}
	if u == nil {
		return models.User{}, false, nil
	}
	return *u, true, nil
}
