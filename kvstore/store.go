// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package kvstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/danielhkuo/lunch-vote/models"
)

// Storage keys
const (
	KeyUsers       = "restaurant-voting-users"
	KeyRestaurants = "restaurant-voting-restaurants"
	KeyVotes       = "restaurant-voting-votes"
	KeyCurrentUser = "restaurant-voting-current-user" // prefix, one key per session token
)

// DefaultUsers is the team roster seeded on first use.
var DefaultUsers = []models.User{
	{ID: "1", Name: "Alice Johnson", Email: "alice@company.com"},
	{ID: "2", Name: "Bob Smith", Email: "bob@company.com"},
	{ID: "3", Name: "Carol Davis", Email: "carol@company.com"},
	{ID: "4", Name: "David Wilson", Email: "david@company.com"},
	{ID: "5", Name: "Emma Brown", Email: "emma@company.com"},
	{ID: "6", Name: "Frank Miller", Email: "frank@company.com"},
}

// Store reads and writes the four collections as whole JSON documents.
// Every read goes to the backend; nothing is cached.
type Store struct {
	backend Backend

	// serializes read-modify-write within this process only
	mu sync.Mutex
}

func NewStore(backend Backend) *Store {
	return &Store{backend: backend}
}

// Close closes the underlying backend.
func (s *Store) Close() error {
	return s.backend.Close()
}

// Initialize seeds the roster, restaurant list and vote list when their
// keys are absent. Existing values are never overwritten.
func (s *Store) Initialize(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	seeds := []struct {
		key   string
		value any
	}{
		{KeyUsers, DefaultUsers},
		{KeyRestaurants, []models.Restaurant{}},
		{KeyVotes, []models.Vote{}},
	}

	for _, seed := range seeds {
		_, err := s.backend.Get(ctx, seed.key)
		if err == nil {
			continue
		}
		if !errors.Is(err, ErrNotFound) {
			return fmt.Errorf("failed to check %s: %w", seed.key, err)
		}
		if err := s.put(ctx, seed.key, seed.value); err != nil {
			return err
		}
		slog.Info("seeded store key", "key", seed.key)
	}

	return nil
}

func (s *Store) Users(ctx context.Context) ([]models.User, error) {
	return load(ctx, s.backend, KeyUsers, slices.Clone(DefaultUsers))
}

func (s *Store) Restaurants(ctx context.Context) ([]models.Restaurant, error) {
	return load(ctx, s.backend, KeyRestaurants, []models.Restaurant{})
}

func (s *Store) Votes(ctx context.Context) ([]models.Vote, error) {
	return load(ctx, s.backend, KeyVotes, []models.Vote{})
}

// SessionKey is the storage key holding the user logged in under token.
func SessionKey(token string) string {
	return KeyCurrentUser + ":" + token
}

// CurrentUser returns the user logged in under token, or nil when there
// is none.
func (s *Store) CurrentUser(ctx context.Context, token string) (*models.User, error) {
	return load[*models.User](ctx, s.backend, SessionKey(token), nil)
}

// SetCurrentUser stores the session user for token; nil removes it.
func (s *Store) SetCurrentUser(ctx context.Context, token string, user *models.User) error {
	if user == nil {
		if err := s.backend.Remove(ctx, SessionKey(token)); err != nil {
			return fmt.Errorf("failed to clear current user: %w", err)
		}
		return nil
	}
	return s.put(ctx, SessionKey(token), user)
}

func (s *Store) SaveRestaurants(ctx context.Context, restaurants []models.Restaurant) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.put(ctx, KeyRestaurants, restaurants)
}

// AppendRestaurant adds a restaurant to the end of the stored list.
func (s *Store) AppendRestaurant(ctx context.Context, restaurant models.Restaurant) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	restaurants, err := s.Restaurants(ctx)
	if err != nil {
		return err
	}
	return s.put(ctx, KeyRestaurants, append(restaurants, restaurant))
}

func (s *Store) SaveVotes(ctx context.Context, votes []models.Vote) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.put(ctx, KeyVotes, votes)
}

// UpdateVotes reads the vote list, applies fn and writes the result back.
func (s *Store) UpdateVotes(ctx context.Context, fn func([]models.Vote) []models.Vote) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	votes, err := s.Votes(ctx)
	if err != nil {
		return err
	}
	return s.put(ctx, KeyVotes, fn(votes))
}

func (s *Store) put(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	return s.backend.Set(ctx, key, data)
}

// load decodes the document at key. Absent and malformed values both
// yield def.
func load[T any](ctx context.Context, b Backend, key string, def T) (T, error) {
	data, err := b.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return def, nil
	}
	if err != nil {
		return def, err
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		slog.Warn("ignoring malformed stored value", "key", key, "error", err)
		return def, nil
	}
	return v, nil
}
