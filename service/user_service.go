package service

import (
	"context"
	"errors"
	"math"

	"lifeos-backend/models"
	"lifeos-backend/repository"
	"lifeos-backend/store"
)

// UserService handles profile reads, partial updates, and the dashboard view
type UserService struct {
	userRepo *repository.UserRepository
}

// UserServiceOption is a functional option for UserService
type UserServiceOption func(*UserService)

// UserWithUserRepository sets the user repository
func UserWithUserRepository(repo *repository.UserRepository) UserServiceOption {
	return func(s *UserService) {
		s.userRepo = repo
	}
}

// NewUserService creates a new user service
func NewUserService(opts ...UserServiceOption) *UserService {
	s := &UserService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Me returns the full profile of the authenticated identity. The backing
// record can vanish between token resolution and this lookup; that is a
// normal not-found path.
func (s *UserService) Me(ctx context.Context, userID string) (*models.User, error) {
	if s.userRepo == nil {
		return nil, errors.New("user repository not set")
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if err == store.ErrNotFound {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// PillarScores holds the three pillar totals
type PillarScores struct {
	Mind    int `json:"mind"`
	Money   int `json:"money"`
	Meaning int `json:"meaning"`
}

// DashboardResult is the derived progress view for one user
type DashboardResult struct {
	Name          string
	Purpose       models.Purpose
	Tana          PillarScores
	Percentages   PillarScores
	SessionsUsed  int
	TotalSessions int
}

// Dashboard computes pillar totals, their integer percentage shares, and the
// session quota usage. The denominator is floored at 1 so an all-zero profile
// yields 0/0/0 rather than a division error.
func (s *UserService) Dashboard(ctx context.Context, userID string) (*DashboardResult, error) {
	if s.userRepo == nil {
		return nil, errors.New("user repository not set")
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if err == store.ErrNotFound {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	total := user.TanaMind + user.TanaMoney + user.TanaMeaning
	if total < 1 {
		total = 1
	}

	return &DashboardResult{
		Name:    user.Name,
		Purpose: user.Purpose,
		Tana: PillarScores{
			Mind:    user.TanaMind,
			Money:   user.TanaMoney,
			Meaning: user.TanaMeaning,
		},
		Percentages: PillarScores{
			Mind:    percentage(user.TanaMind, total),
			Money:   percentage(user.TanaMoney, total),
			Meaning: percentage(user.TanaMeaning, total),
		},
		SessionsUsed:  user.SessionsUsed,
		TotalSessions: user.TotalSessions,
	}, nil
}

func percentage(score, total int) int {
	return int(math.Round(float64(score) / float64(total) * 100))
}

// UpdateProfileRequest carries the optional fields of a partial profile
// update; nil fields are skipped by construction
type UpdateProfileRequest struct {
	UserID  string
	Name    *string
	Purpose *models.Purpose
	Age     *int
}

// UpdateProfileResult reports whether anything was written
type UpdateProfileResult struct {
	Updated bool
}

// UpdateProfile applies the non-nil fields. An all-nil payload is a no-op
// reported as not updated, not an error.
func (s *UserService) UpdateProfile(ctx context.Context, req UpdateProfileRequest) (*UpdateProfileResult, error) {
	if s.userRepo == nil {
		return nil, errors.New("user repository not set")
	}

	updates := store.Filter{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Purpose != nil {
		updates["purpose"] = string(*req.Purpose)
	}
	if req.Age != nil {
		updates["age"] = *req.Age
	}

	if len(updates) == 0 {
		return &UpdateProfileResult{Updated: false}, nil
	}

	if err := s.userRepo.ApplyUpdates(ctx, req.UserID, updates); err != nil {
		return nil, err
	}
	return &UpdateProfileResult{Updated: true}, nil
}
