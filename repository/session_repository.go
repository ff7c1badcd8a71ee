package repository

import (
	"context"

	"lifeos-backend/models"
	"lifeos-backend/store"
)

// CollectionSession is the logical collection name for booked sessions
const CollectionSession = "session"

// SessionRepository handles store operations for booked sessions
type SessionRepository struct {
	db store.Store
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(db store.Store) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create inserts a new session booking and returns its identifier
func (r *SessionRepository) Create(ctx context.Context, session *models.Session) (string, error) {
	id, err := r.db.Insert(ctx, CollectionSession, session)
	if err != nil {
		return "", err
	}
	session.ID = id
	return id, nil
}

// ListByUserID returns up to limit sessions belonging to a user
func (r *SessionRepository) ListByUserID(ctx context.Context, userID string, limit int) ([]store.Document, error) {
	return r.db.Find(ctx, CollectionSession, store.Filter{"user_id": userID}, limit)
}
