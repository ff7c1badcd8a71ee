package repository

import (
	"context"

	"lifeos-backend/models"
	"lifeos-backend/store"
)

// CollectionAuthToken is the logical collection name for auth tokens
const CollectionAuthToken = "auth_token"

// TokenRepository handles store operations for auth tokens
type TokenRepository struct {
	db store.Store
}

// NewTokenRepository creates a new token repository
func NewTokenRepository(db store.Store) *TokenRepository {
	return &TokenRepository{db: db}
}

// Create inserts a new auth token record
func (r *TokenRepository) Create(ctx context.Context, token *models.AuthToken) error {
	id, err := r.db.Insert(ctx, CollectionAuthToken, token)
	if err != nil {
		return err
	}
	token.ID = id
	return nil
}

// GetByToken retrieves a token record by its opaque value
func (r *TokenRepository) GetByToken(ctx context.Context, token string) (*models.AuthToken, error) {
	record := &models.AuthToken{}
	if err := r.db.FindOne(ctx, CollectionAuthToken, store.Filter{"token": token}, record); err != nil {
		return nil, err
	}
	return record, nil
}
