package repository

import (
	"context"
	"errors"

	"botlist-backend/internal/features/user/models"
)

var ErrUserNotFound = errors.New("user not found")

type UserRepository interface {
	// GetOrCreate inserts the user if the telegram id is unseen; the
	// unique constraint makes concurrent first interactions safe.
	GetOrCreate(ctx context.Context, telegramID int64, username, firstName *string) (*models.User, error)
	GetByTelegramID(ctx context.Context, telegramID int64) (*models.User, error)
	// Ban flags the user, creating the row first if needed so an admin
	// can pre-ban an id that has never interacted.
	Ban(ctx context.Context, telegramID int64) error
	Unban(ctx context.Context, telegramID int64) error
	ListSpamReports(ctx context.Context, userID int64) ([]*models.SpamReportSummary, error)
}
