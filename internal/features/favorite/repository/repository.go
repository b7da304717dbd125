package repository

import (
	"context"
	"errors"

	catalogmodels "botlist-backend/internal/features/catalog/models"
)

var (
	ErrAlreadyFavorited = errors.New("bot already favorited")
	ErrFavoriteNotFound = errors.New("favorite not found")
)

type FavoriteRepository interface {
	// Insert adds the pair; the unique constraint turns a duplicate into
	// ErrAlreadyFavorited without a read-then-write race.
	Insert(ctx context.Context, userID, botID int64) error
	Delete(ctx context.Context, userID, botID int64) error
	ListByTelegramID(ctx context.Context, telegramID int64) ([]*catalogmodels.Bot, error)
}
