package repository

import (
	"context"
	"errors"

	"botlist-backend/internal/features/catalog/models"
)

var (
	ErrBotNotFound = errors.New("bot not found")
	ErrBotExists   = errors.New("bot already exists")
	ErrBotOffline  = errors.New("bot already offline")
)

type BotRepository interface {
	ListAll(ctx context.Context) ([]*models.Bot, error)
	ListByCategory(ctx context.Context, categoryID int) ([]*models.Bot, error)
	Search(ctx context.Context, filter models.SearchFilter) ([]*models.Bot, error)
	Random(ctx context.Context, limit int) ([]*models.Bot, error)
	Newest(ctx context.Context, limit int) ([]*models.Bot, error)
	BestRated(ctx context.Context, limit int) ([]*models.Bot, error)
	GetByUsername(ctx context.Context, username string) (*models.Bot, error)
	ListBySubmitter(ctx context.Context, userID int64) ([]*models.Bot, error)
	Insert(ctx context.Context, bot *models.Bot) (*models.Bot, error)
	Update(ctx context.Context, username string, update models.BotUpdate) (*models.Bot, error)
	SetOffline(ctx context.Context, botID int64) error
}
