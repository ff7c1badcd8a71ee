package service

import "errors"

// Authentication errors
var (
	ErrEmailTaken         = errors.New("email already registered")  // 400 Conflict
	ErrInvalidCredentials = errors.New("invalid email or password") // 400
	ErrMissingAuthHeader  = errors.New("missing or invalid authorization header")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")
)

// Domain errors
var (
	ErrUserNotFound = errors.New("user not found") // 404
	ErrForbidden    = errors.New("forbidden")      // 403
)
