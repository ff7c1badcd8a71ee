package service

import (
	"context"
	"errors"
	"time"

	"lifeos-backend/crypto"
	"lifeos-backend/models"
	"lifeos-backend/repository"
	"lifeos-backend/store"
)

// TokenTTL is the fixed bearer-token lifetime from issuance
const TokenTTL = 7 * 24 * time.Hour

// TokenService issues and resolves opaque bearer tokens backed by the store.
// Tokens are never revoked or purged; expiry is enforced at resolve time only.
type TokenService struct {
	tokenRepo *repository.TokenRepository
	userRepo  *repository.UserRepository
}

// TokenServiceOption is a functional option for TokenService
type TokenServiceOption func(*TokenService)

// TokenWithTokenRepository sets the token repository
func TokenWithTokenRepository(repo *repository.TokenRepository) TokenServiceOption {
	return func(s *TokenService) {
		s.tokenRepo = repo
	}
}

// TokenWithUserRepository sets the user repository
func TokenWithUserRepository(repo *repository.UserRepository) TokenServiceOption {
	return func(s *TokenService) {
		s.userRepo = repo
	}
}

// NewTokenService creates a new token service
func NewTokenService(opts ...TokenServiceOption) *TokenService {
	s := &TokenService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Issue generates a fresh token for the user and persists its record.
// Previously issued tokens stay valid until their own expiry.
func (s *TokenService) Issue(ctx context.Context, userID string) (string, error) {
	if s.tokenRepo == nil {
		return "", errors.New("token repository not set")
	}

	now := time.Now().UTC()
	record := &models.AuthToken{
		UserID:    userID,
		Token:     crypto.NewToken(),
		CreatedAt: now,
		ExpiresAt: now.Add(TokenTTL),
	}

	if err := s.tokenRepo.Create(ctx, record); err != nil {
		return "", err
	}
	return record.Token, nil
}

// Resolve maps a bearer token to the identity that owns it. It fails when the
// token is unknown, when its expiry is not in the future, or when the owning
// user record no longer exists.
func (s *TokenService) Resolve(ctx context.Context, token string) (*models.AuthUser, error) {
	if s.tokenRepo == nil || s.userRepo == nil {
		return nil, errors.New("token service repositories not set")
	}

	record, err := s.tokenRepo.GetByToken(ctx, token)
	if err != nil {
		if err == store.ErrNotFound {
			return nil, ErrInvalidToken
		}
		return nil, err
	}

	if !record.ExpiresAt.After(time.Now()) {
		return nil, ErrTokenExpired
	}

	user, err := s.userRepo.GetByID(ctx, record.UserID)
	if err != nil {
		if err == store.ErrNotFound || err == store.ErrInvalidID {
			return nil, ErrInvalidToken
		}
		return nil, err
	}

	return &models.AuthUser{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	}, nil
}
