package repository

import (
	"context"

	"lifeos-backend/models"
	"lifeos-backend/store"
)

// CollectionUser is the logical collection name for users
const CollectionUser = "user"

// UserRepository handles store operations for users
type UserRepository struct {
	db store.Store
}

// NewUserRepository creates a new user repository
func NewUserRepository(db store.Store) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user and fills in the generated identifier
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	id, err := r.db.Insert(ctx, CollectionUser, user)
	if err != nil {
		return err
	}
	user.ID = id
	return nil
}

// GetByID retrieves a user by identifier
func (r *UserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	user := &models.User{}
	if err := r.db.FindOne(ctx, CollectionUser, store.Filter{"_id": id}, user); err != nil {
		return nil, err
	}
	user.ID = id
	return user, nil
}

// GetByEmail retrieves a user by exact email match
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user := &models.User{}
	if err := r.db.FindOne(ctx, CollectionUser, store.Filter{"email": email}, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ApplyUpdates sets the given fields on the user record
func (r *UserRepository) ApplyUpdates(ctx context.Context, id string, updates store.Filter) error {
	_, err := r.db.Update(ctx, CollectionUser, store.Filter{"_id": id}, updates)
	return err
}
