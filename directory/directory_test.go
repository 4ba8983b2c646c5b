// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package directory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/lunch-vote/testutil"
)

func TestAuthenticate(t *testing.T) {
	store := testutil.NewTestStore(t)
	svc := NewService(store)
	ctx := context.Background()

	tests := []struct {
		name    string
		email   string
		wantID  string
		wantErr error
	}{
		{"exact", "alice@company.com", "1", nil},
		{"upper case", "ALICE@COMPANY.COM", "1", nil},
		{"mixed case", "Frank@Company.com", "6", nil},
		{"surrounding whitespace", "  bob@company.com ", "2", nil},
		{"unknown", "mallory@company.com", "", ErrUnknownEmail},
		{"prefix only", "alice@company", "", ErrUnknownEmail},
		{"empty", "", "", ErrUnknownEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := svc.Authenticate(ctx, tt.email)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, user.ID)
		})
	}
}

func TestDisplayName(t *testing.T) {
	svc := NewService(testutil.NewTestStore(t))
	ctx := context.Background()

	name, err := svc.DisplayName(ctx, "3")
	require.NoError(t, err)
	assert.Equal(t, "Carol Davis", name)

	name, err = svc.DisplayName(ctx, "deleted-user")
	require.NoError(t, err)
	assert.Equal(t, UnknownName, name)
}

func TestSession(t *testing.T) {
	svc := NewService(testutil.NewTestStore(t))
	ctx := context.Background()

	_, ok, err := svc.CurrentUser(ctx, "")
	require.NoError(t, err)
	assert.False(t, ok, "empty token is never a session")

	_, token, err := svc.Login(ctx, "nobody@company.com")
	assert.ErrorIs(t, err, ErrUnknownEmail)
	assert.Empty(t, token)

	user, token, err := svc.Login(ctx, "EMMA@company.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, "Emma Brown", user.Name)

	current, ok, err := svc.CurrentUser(ctx, token)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, user, current)

	require.NoError(t, svc.Logout(ctx, token))
	_, ok, err = svc.CurrentUser(ctx, token)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSession_SeparateLogins(t *testing.T) {
	svc := NewService(testutil.NewTestStore(t))
	ctx := context.Background()

	alice, aliceToken, err := svc.Login(ctx, "alice@company.com")
	require.NoError(t, err)
	bob, bobToken, err := svc.Login(ctx, "bob@company.com")
	require.NoError(t, err)
	require.NotEqual(t, aliceToken, bobToken)

	current, ok, err := svc.CurrentUser(ctx, aliceToken)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, alice.ID, current.ID, "a later login must not replace an earlier one")

	require.NoError(t, svc.Logout(ctx, aliceToken))
	current, ok, err = svc.CurrentUser(ctx, bobToken)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, bob.ID, current.ID)
}
