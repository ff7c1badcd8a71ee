package service

import (
	"context"
	"errors"
	"time"

	"lifeos-backend/models"
	"lifeos-backend/repository"
	"lifeos-backend/store"
)

// MaxReflectionPageSize caps reflection listings
const MaxReflectionPageSize = 200

// pillarFields maps a declared pillar to its user counter, exact match only
var pillarFields = map[models.Pillar]string{
	models.PillarMind:    "tana_mind",
	models.PillarMoney:   "tana_money",
	models.PillarMeaning: "tana_meaning",
}

// ReflectionService handles reflection creation and listing
type ReflectionService struct {
	reflectionRepo *repository.ReflectionRepository
	userRepo       *repository.UserRepository
}

// ReflectionServiceOption is a functional option for ReflectionService
type ReflectionServiceOption func(*ReflectionService)

// ReflectionWithReflectionRepository sets the reflection repository
func ReflectionWithReflectionRepository(repo *repository.ReflectionRepository) ReflectionServiceOption {
	return func(s *ReflectionService) {
		s.reflectionRepo = repo
	}
}

// ReflectionWithUserRepository sets the user repository
func ReflectionWithUserRepository(repo *repository.UserRepository) ReflectionServiceOption {
	return func(s *ReflectionService) {
		s.userRepo = repo
	}
}

// NewReflectionService creates a new reflection service
func NewReflectionService(opts ...ReflectionServiceOption) *ReflectionService {
	s := &ReflectionService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddReflectionRequest carries a reflection payload and the authenticated caller
type AddReflectionRequest struct {
	CallerID   string
	Reflection *models.Reflection
}

// AddReflectionResult reports the created reflection
type AddReflectionResult struct {
	Created bool
	ID      string
}

// Add persists a reflection. Unlike session booking, the ownership check is
// strict: a payload user reference that differs from the caller is rejected
// and nothing is persisted. On success the declared pillar's score is
// incremented; if the user record is gone by then the increment is silently
// skipped since the reflection itself is already stored.
func (s *ReflectionService) Add(ctx context.Context, req AddReflectionRequest) (*AddReflectionResult, error) {
	if s.reflectionRepo == nil || s.userRepo == nil {
		return nil, errors.New("reflection service repositories not set")
	}

	if req.Reflection.UserID != req.CallerID {
		return nil, ErrForbidden
	}

	req.Reflection.CreatedAt = time.Now().UTC()
	id, err := s.reflectionRepo.Create(ctx, req.Reflection)
	if err != nil {
		return nil, err
	}

	if field, ok := pillarFields[req.Reflection.Pillar]; ok {
		user, err := s.userRepo.GetByID(ctx, req.CallerID)
		if err == nil {
			updates := store.Filter{field: pillarScore(user, field) + 1}
			if err := s.userRepo.ApplyUpdates(ctx, req.CallerID, updates); err != nil {
				return nil, err
			}
		}
	}

	return &AddReflectionResult{Created: true, ID: id}, nil
}

// List returns the caller's own reflections, capped at MaxReflectionPageSize
func (s *ReflectionService) List(ctx context.Context, callerID string) ([]store.Document, error) {
	if s.reflectionRepo == nil {
		return nil, errors.New("reflection repository not set")
	}
	return s.reflectionRepo.ListByUserID(ctx, callerID, MaxReflectionPageSize)
}
