package repository

import (
	"context"

	"lifeos-backend/models"
	"lifeos-backend/store"
)

// CollectionCredential is the logical collection name for credentials
const CollectionCredential = "credential"

// CredentialRepository handles store operations for password credentials
type CredentialRepository struct {
	db store.Store
}

// NewCredentialRepository creates a new credential repository
func NewCredentialRepository(db store.Store) *CredentialRepository {
	return &CredentialRepository{db: db}
}

// Create inserts a new credential
func (r *CredentialRepository) Create(ctx context.Context, cred *models.Credential) error {
	id, err := r.db.Insert(ctx, CollectionCredential, cred)
	if err != nil {
		return err
	}
	cred.ID = id
	return nil
}

// GetByUserID retrieves the credential belonging to a user
func (r *CredentialRepository) GetByUserID(ctx context.Context, userID string) (*models.Credential, error) {
	cred := &models.Credential{}
	if err := r.db.FindOne(ctx, CollectionCredential, store.Filter{"user_id": userID}, cred); err != nil {
		return nil, err
	}
	return cred, nil
}
