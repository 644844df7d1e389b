package users

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/akosarev/notekeeper/internal/common"
	"github.com/akosarev/notekeeper/internal/server/auth"
	"github.com/akosarev/notekeeper/internal/server/config"
)

func newTestService(t *testing.T) (*Service, *InMemoryRepository) {
	t.Helper()
	cfg := &config.Config{
		AccessTokenSecret:           "k",
		AccessTokenValidityDuration: time.Hour,
	}
	repo := NewInMemoryRepository()
	return NewService(repo, cfg), repo
}

func TestRegister_Success(t *testing.T) {
	t.Parallel()

	s, _ := newTestService(t)

	user, token, err := s.Register(context.Background(), "John Doe", "john@example.com", "pass123")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.False(t, user.ID.IsZero())
	require.Equal(t, "John Doe", user.Fullname)
	require.False(t, user.CreatedOn.IsZero())

	claim, err := auth.GetUserFromToken(token, []byte("k"))
	require.NoError(t, err)
	require.Equal(t, user.ID.Hex(), claim.ID)
	require.Equal(t, "john@example.com", claim.Email)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	t.Parallel()

	s, repo := newTestService(t)
	ctx := context.Background()

	_, _, err := s.Register(ctx, "John Doe", "john@example.com", "pass123")
	require.NoError(t, err)

	_, _, err = s.Register(ctx, "Impostor", "john@example.com", "other")
	require.ErrorIs(t, err, common.ErrorAlreadyExists)

	// still exactly one record for the email
	u, err := repo.GetByEmail(ctx, "john@example.com")
	require.NoError(t, err)
	require.Equal(t, "John Doe", u.Fullname)
}

func TestLogin_RoundTrip(t *testing.T) {
	t.Parallel()

	s, _ := newTestService(t)
	ctx := context.Background()

	user, _, err := s.Register(ctx, "John Doe", "john@example.com", "pass123")
	require.NoError(t, err)

	token, err := s.Login(ctx, "john@example.com", "pass123")
	require.NoError(t, err)

	claim, err := auth.GetUserFromToken(token, []byte("k"))
	require.NoError(t, err)
	require.Equal(t, user.ID.Hex(), claim.ID)
	require.Equal(t, user.Email, claim.Email)
}

func TestLogin_UnknownUser(t *testing.T) {
	t.Parallel()

	s, _ := newTestService(t)

	_, err := s.Login(context.Background(), "nobody@example.com", "pass")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected common.ErrorNotFound, got %v", err)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	t.Parallel()

	s, _ := newTestService(t)
	ctx := context.Background()

	_, _, err := s.Register(ctx, "John Doe", "john@example.com", "pass123")
	require.NoError(t, err)

	_, err = s.Login(ctx, "john@example.com", "PASS123")
	require.ErrorIs(t, err, common.ErrorInvalidCredentials)
}

func TestGet_MissingUser(t *testing.T) {
	t.Parallel()

	s, _ := newTestService(t)

	_, err := s.Get(context.Background(), "64f000000000000000000000")
	require.ErrorIs(t, err, common.ErrorNotFound)
}
