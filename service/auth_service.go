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

// AuthService handles signup and login
type AuthService struct {
	userRepo       *repository.UserRepository
	credentialRepo *repository.CredentialRepository
	tokenService   *TokenService
	passwordHasher *crypto.PasswordHasher
}

// AuthServiceOption is a functional option for AuthService
type AuthServiceOption func(*AuthService)

// AuthWithUserRepository sets the user repository
func AuthWithUserRepository(repo *repository.UserRepository) AuthServiceOption {
	return func(s *AuthService) {
		s.userRepo = repo
	}
}

// AuthWithCredentialRepository sets the credential repository
func AuthWithCredentialRepository(repo *repository.CredentialRepository) AuthServiceOption {
	return func(s *AuthService) {
		s.credentialRepo = repo
	}
}

// AuthWithTokenService sets the token service
func AuthWithTokenService(tokens *TokenService) AuthServiceOption {
	return func(s *AuthService) {
		s.tokenService = tokens
	}
}

// AuthWithPasswordHasher sets the password hasher
func AuthWithPasswordHasher(hasher *crypto.PasswordHasher) AuthServiceOption {
	return func(s *AuthService) {
		s.passwordHasher = hasher
	}
}

// NewAuthService creates a new auth service
func NewAuthService(opts ...AuthServiceOption) *AuthService {
	s := &AuthService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SignupRequest represents a request to create an account
type SignupRequest struct {
	Name     string
	Email    string
	Password string
	Purpose  models.Purpose
	Age      *int
}

// SignupResult represents the result of a signup
type SignupResult struct {
	Token  string
	UserID string
}

// Signup registers a new user with zeroed pillar scores and the default
// session quota, stores the password digest, and issues an initial token
func (s *AuthService) Signup(ctx context.Context, req SignupRequest) (*SignupResult, error) {
	if s.userRepo == nil || s.credentialRepo == nil || s.tokenService == nil || s.passwordHasher == nil {
		return nil, errors.New("auth service dependencies not set")
	}

	_, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err == nil {
		return nil, ErrEmailTaken
	}
	if err != store.ErrNotFound {
		return nil, err
	}

	user := &models.User{
		Name:          req.Name,
		Email:         req.Email,
		Purpose:       req.Purpose,
		Age:           req.Age,
		TanaMind:      0,
		TanaMoney:     0,
		TanaMeaning:   0,
		TotalSessions: models.DefaultTotalSessions,
		SessionsUsed:  0,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	cred := &models.Credential{
		UserID:       user.ID,
		PasswordHash: s.passwordHasher.Hash(req.Password),
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.credentialRepo.Create(ctx, cred); err != nil {
		return nil, err
	}

	token, err := s.tokenService.Issue(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return &SignupResult{Token: token, UserID: user.ID}, nil
}

// LoginRequest represents a login attempt
type LoginRequest struct {
	Email    string
	Password string
}

// LoginResult represents the result of a login
type LoginResult struct {
	Token  string
	UserID string
}

// Login authenticates by email and password and issues a fresh token.
// Unknown email and wrong password report the same generic error.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	if s.userRepo == nil || s.credentialRepo == nil || s.tokenService == nil || s.passwordHasher == nil {
		return nil, errors.New("auth service dependencies not set")
	}

	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if err == store.ErrNotFound {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	cred, err := s.credentialRepo.GetByUserID(ctx, user.ID)
	if err != nil {
		if err == store.ErrNotFound {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.passwordHasher.Verify(req.Password, cred.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokenService.Issue(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return &LoginResult{Token: token, UserID: user.ID}, nil
}
