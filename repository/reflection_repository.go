package repository

import (
	"context"

	"lifeos-backend/models"
	"lifeos-backend/store"
)

// CollectionReflection is the logical collection name for reflections
const CollectionReflection = "reflection"

// ReflectionRepository handles store operations for reflections
type ReflectionRepository struct {
	db store.Store
}

// NewReflectionRepository creates a new reflection repository
func NewReflectionRepository(db store.Store) *ReflectionRepository {
	return &ReflectionRepository{db: db}
}

// Create inserts a new reflection and returns its identifier
func (r *ReflectionRepository) Create(ctx context.Context, reflection *models.Reflection) (string, error) {
	id, err := r.db.Insert(ctx, CollectionReflection, reflection)
	if err != nil {
		return "", err
	}
	reflection.ID = id
	return id, nil
}

// ListByUserID returns up to limit reflections belonging to a user
func (r *ReflectionRepository) ListByUserID(ctx context.Context, userID string, limit int) ([]store.Document, error) {
	return r.db.Find(ctx, CollectionReflection, store.Filter{"user_id": userID}, limit)
}
