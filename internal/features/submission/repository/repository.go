package repository

import (
	"context"
	"errors"

	catalogmodels "botlist-backend/internal/features/catalog/models"
	"botlist-backend/internal/features/submission/models"
)

var (
	ErrSubmissionNotFound = errors.New("submission not found")
	ErrAlreadyProcessed   = errors.New("submission already processed")
)

// SubmissionRepository persists the moderation queue. Approve promotes
// the submission into the catalog within a single transaction.
type SubmissionRepository interface {
	HasPendingByUsername(ctx context.Context, username string) (bool, error)
	Insert(ctx context.Context, submission *models.Submission) (*models.Submission, error)
	ListPending(ctx context.Context, limit int) ([]*models.Submission, error)
	ListPendingByUser(ctx context.Context, userID int64) ([]*models.Submission, error)
	Approve(ctx context.Context, id int64) (*catalogmodels.Bot, error)
	Reject(ctx context.Context, id int64) error
}
