package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/akosarev/notekeeper/internal/common"
	"github.com/akosarev/notekeeper/internal/server/auth"
	"github.com/akosarev/notekeeper/internal/server/config"
)

type Service struct {
	repo                        Repository
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
}

func NewService(repo Repository, cfg *config.Config) *Service {
	return &Service{
		repo:                        repo,
		jwtSecret:                   []byte(cfg.AccessTokenSecret),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
	}
}

// Register creates a new account and returns it together with a signed
// access token. Returns common.ErrorAlreadyExists if the email is taken.
// The existence check and the insert are two separate store calls, so a
// concurrent registration race stays open; see DESIGN.md.
func (s *Service) Register(ctx context.Context, fullname, email, password string) (*User, string, error) {

	_, err := s.repo.GetByEmail(ctx, email)
	if err == nil {
		return nil, "", common.ErrorAlreadyExists
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return nil, "", common.ErrorInternal
	}

	user := &User{
		Fullname: fullname,
		Email:    email,
		Password: password,
	}

	user, err = s.repo.Create(ctx, user)
	if err != nil {
		return nil, "", fmt.Errorf("error creating user: %w", err)
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, "", common.ErrorInternal
	}

	return user, token, nil
}

// Login checks the supplied credentials and returns a signed access token.
// The password check is an exact string comparison of the stored plaintext
// value, kept for behavioral parity with the system this replaces.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorNotFound
		}
		return "", common.ErrorInternal
	}

	if user.Password != password {
		return "", common.ErrorInvalidCredentials
	}

	token, err := s.issueToken(user)
	if err != nil {
		return "", common.ErrorInternal
	}

	return token, nil
}

// Get returns the account the given id refers to.
func (s *Service) Get(ctx context.Context, id string) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) issueToken(user *User) (string, error) {
	claim := auth.UserClaim{
		ID:       user.ID.Hex(),
		Fullname: user.Fullname,
		Email:    user.Email,
	}
	return auth.GenerateToken(claim, s.jwtSecret, s.accessTokenValidityDuration)
}
