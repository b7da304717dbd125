package service

import (
	"context"
	"errors"

	"botlist-backend/internal/common/apperr"
	catalogmodels "botlist-backend/internal/features/catalog/models"
	catalogrepo "botlist-backend/internal/features/catalog/repository"
	catalogservice "botlist-backend/internal/features/catalog/service"
	"botlist-backend/internal/features/favorite/repository"
	usermodels "botlist-backend/internal/features/user/models"
	userrepo "botlist-backend/internal/features/user/repository"
)

// UserResolver looks up or lazily creates the acting user.
type UserResolver interface {
	GetOrCreate(ctx context.Context, telegramID int64, username, firstName *string) (*usermodels.User, error)
}

type FavoriteService interface {
	Add(ctx context.Context, telegramID int64, botUsername string) error
	Remove(ctx context.Context, telegramID int64, botUsername string) error
	List(ctx context.Context, telegramID int64) ([]*catalogmodels.Bot, error)
}

type favoriteService struct {
	repo  repository.FavoriteRepository
	bots  catalogrepo.BotRepository
	users UserResolver
	store userrepo.UserRepository
}

func NewFavoriteService(repo repository.FavoriteRepository, bots catalogrepo.BotRepository, users UserResolver, store userrepo.UserRepository) FavoriteService {
	return &favoriteService{repo: repo, bots: bots, users: users, store: store}
}

func (s *favoriteService) Add(ctx context.Context, telegramID int64, botUsername string) error {
	username := catalogservice.NormalizeHandle(botUsername)
	if username == "" {
		return apperr.Validation("bot_username is required")
	}

	user, err := s.users.GetOrCreate(ctx, telegramID, nil, nil)
	if err != nil {
		return err
	}

	bot, err := s.bots.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, catalogrepo.ErrBotNotFound) {
			return apperr.NotFound("Bot not found in the database")
		}
		return apperr.Internal(err)
	}

	if err := s.repo.Insert(ctx, user.ID, bot.ID); err != nil {
		if errors.Is(err, repository.ErrAlreadyFavorited) {
			return apperr.Conflict("Bot already in favorites")
		}
		return apperr.Internal(err)
	}
	return nil
}

func (s *favoriteService) Remove(ctx context.Context, telegramID int64, botUsername string) error {
	username := catalogservice.NormalizeHandle(botUsername)

	user, err := s.store.GetByTelegramID(ctx, telegramID)
	if err != nil {
		if errors.Is(err, userrepo.ErrUserNotFound) {
			return apperr.NotFound("User not found")
		}
		return apperr.Internal(err)
	}

	bot, err := s.bots.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, catalogrepo.ErrBotNotFound) {
			return apperr.NotFound("Bot not found")
		}
		return apperr.Internal(err)
	}

	if err := s.repo.Delete(ctx, user.ID, bot.ID); err != nil {
		if errors.Is(err, repository.ErrFavoriteNotFound) {
			return apperr.NotFound("Favorite not found")
		}
		return apperr.Internal(err)
	}
	return nil
}

// List returns an empty slice for users who never favorited anything,
// including ids that have no row yet.
func (s *favoriteService) List(ctx context.Context, telegramID int64) ([]*catalogmodels.Bot, error) {
	bots, err := s.repo.ListByTelegramID(ctx, telegramID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return bots, nil
}
