package repository

import (
	"context"

	"lifeos-backend/models"
	"lifeos-backend/store"
)

// CollectionEmailLog is the logical collection name for the email audit trail
const CollectionEmailLog = "email_log"

// EmailLogRepository handles store operations for the email audit trail.
// Records are write-only; nothing in the API reads them back.
type EmailLogRepository struct {
	db store.Store
}

// NewEmailLogRepository creates a new email log repository
func NewEmailLogRepository(db store.Store) *EmailLogRepository {
	return &EmailLogRepository{db: db}
}

// Create appends an email log entry
func (r *EmailLogRepository) Create(ctx context.Context, entry *models.EmailLog) error {
	id, err := r.db.Insert(ctx, CollectionEmailLog, entry)
	if err != nil {
		return err
	}
	entry.ID = id
	return nil
}
