package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"lifeos-backend/models"
	"lifeos-backend/repository"
	"lifeos-backend/store"
)

// MaxSessionPageSize caps session listings
const MaxSessionPageSize = 100

// defaultNotifyEmail receives the simulated booking notification when
// NOTIFY_EMAIL is not set
const defaultNotifyEmail = "coach@tana.life"

// pillarRule maps a topic keyword to the pillar counter it feeds
type pillarRule struct {
	keyword string
	field   string
}

// topicPillarRules are evaluated in fixed priority order against the
// lowercased topic; the first substring match wins. Keyword matching is
// deliberately literal, not fuzzy.
var topicPillarRules = []pillarRule{
	{"mind", "tana_mind"},
	{"money", "tana_money"},
	{"meaning", "tana_meaning"},
}

// SessionService handles session booking and listing
type SessionService struct {
	sessionRepo  *repository.SessionRepository
	userRepo     *repository.UserRepository
	emailLogRepo *repository.EmailLogRepository
}

// SessionServiceOption is a functional option for SessionService
type SessionServiceOption func(*SessionService)

// SessionWithSessionRepository sets the session repository
func SessionWithSessionRepository(repo *repository.SessionRepository) SessionServiceOption {
	return func(s *SessionService) {
		s.sessionRepo = repo
	}
}

// SessionWithUserRepository sets the user repository
func SessionWithUserRepository(repo *repository.UserRepository) SessionServiceOption {
	return func(s *SessionService) {
		s.userRepo = repo
	}
}

// SessionWithEmailLogRepository sets the email log repository
func SessionWithEmailLogRepository(repo *repository.EmailLogRepository) SessionServiceOption {
	return func(s *SessionService) {
		s.emailLogRepo = repo
	}
}

// NewSessionService creates a new session service
func NewSessionService(opts ...SessionServiceOption) *SessionService {
	s := &SessionService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// BookSessionRequest carries a proposed session and the authenticated caller
type BookSessionRequest struct {
	CallerID string
	Session  *models.Session
}

// BookSessionResult reports either a created booking or a quota soft-limit
type BookSessionResult struct {
	Limited bool
	Created bool
	ID      string
}

// Book persists a session booking for the caller. The session's user
// reference is overwritten with the caller's id regardless of what the
// payload carried. When the quota is exhausted the booking is not created
// and the result reports limited instead of an error. Otherwise the quota
// counter is incremented, the first matching topic keyword bumps its pillar
// score, and an email log entry records the request.
//
// The quota check and the counter increment are a plain read-then-set;
// concurrent bookings for the same user can race. That matches the deployed
// behavior and must not be "fixed" with locking or transactions.
func (s *SessionService) Book(ctx context.Context, req BookSessionRequest) (*BookSessionResult, error) {
	if s.sessionRepo == nil || s.userRepo == nil {
		return nil, errors.New("session service repositories not set")
	}

	req.Session.UserID = req.CallerID
	if req.Session.Status == "" {
		req.Session.Status = models.StatusRequested
	}

	user, err := s.userRepo.GetByID(ctx, req.CallerID)
	if err != nil {
		if err == store.ErrNotFound {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if user.SessionsUsed >= user.TotalSessions {
		return &BookSessionResult{Limited: true}, nil
	}

	id, err := s.sessionRepo.Create(ctx, req.Session)
	if err != nil {
		return nil, err
	}

	updates := store.Filter{"sessions_used": user.SessionsUsed + 1}
	topic := strings.ToLower(req.Session.Topic)
	for _, rule := range topicPillarRules {
		if strings.Contains(topic, rule.keyword) {
			updates[rule.field] = pillarScore(user, rule.field) + 1
			break
		}
	}
	if err := s.userRepo.ApplyUpdates(ctx, req.CallerID, updates); err != nil {
		return nil, err
	}

	s.logBookingEmail(ctx, user, req.Session)

	return &BookSessionResult{Created: true, ID: id}, nil
}

// logBookingEmail simulates the notification side effect. It is pure audit
// logging and never fails the booking.
func (s *SessionService) logBookingEmail(ctx context.Context, user *models.User, session *models.Session) {
	if s.emailLogRepo == nil {
		return
	}

	to := os.Getenv("NOTIFY_EMAIL")
	if to == "" {
		to = defaultNotifyEmail
	}

	entry := &models.EmailLog{
		To:      to,
		Subject: "New TANA Session Request",
		Body: fmt.Sprintf("User %s requested a session on %s for %s %s",
			user.Name, session.Topic, session.Date, session.Time),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.emailLogRepo.Create(ctx, entry); err != nil {
		log.Printf("Warning: failed to record email log: %v", err)
	}
}

func pillarScore(user *models.User, field string) int {
	switch field {
	case "tana_mind":
		return user.TanaMind
	case "tana_money":
		return user.TanaMoney
	case "tana_meaning":
		return user.TanaMeaning
	}
	return 0
}

// List returns the caller's own sessions, capped at MaxSessionPageSize
func (s *SessionService) List(ctx context.Context, callerID string) ([]store.Document, error) {
	if s.sessionRepo == nil {
		return nil, errors.New("session repository not set")
	}
	return s.sessionRepo.ListByUserID(ctx, callerID, MaxSessionPageSize)
}
