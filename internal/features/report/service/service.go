package service

import (
	"context"
	"errors"

	"botlist-backend/internal/common/apperr"
	catalogmodels "botlist-backend/internal/features/catalog/models"
	catalogrepo "botlist-backend/internal/features/catalog/repository"
	catalogservice "botlist-backend/internal/features/catalog/service"
	"botlist-backend/internal/features/report/repository"
	usermodels "botlist-backend/internal/features/user/models"
)

// UserResolver looks up or lazily creates the reporting user.
type UserResolver interface {
	GetOrCreate(ctx context.Context, telegramID int64, username, firstName *string) (*usermodels.User, error)
}

type ReportService interface {
	ReportSpam(ctx context.Context, telegramID int64, botUsername string, reason *string) error
	ReportOffline(ctx context.Context, telegramID int64, botUsername string) error
}

type reportService struct {
	repo  repository.ReportRepository
	bots  catalogrepo.BotRepository
	users UserResolver
}

func NewReportService(repo repository.ReportRepository, bots catalogrepo.BotRepository, users UserResolver) ReportService {
	return &reportService{repo: repo, bots: bots, users: users}
}

func (s *reportService) ReportSpam(ctx context.Context, telegramID int64, botUsername string, reason *string) error {
	user, bot, err := s.resolve(ctx, telegramID, botUsername)
	if err != nil {
		return err
	}

	if err := s.repo.InsertSpamReport(ctx, bot.ID, user.ID, reason); err != nil {
		if errors.Is(err, repository.ErrAlreadyReported) {
			return apperr.Conflict("You have already reported this bot")
		}
		return apperr.Internal(err)
	}
	return nil
}

func (s *reportService) ReportOffline(ctx context.Context, telegramID int64, botUsername string) error {
	_, bot, err := s.resolve(ctx, telegramID, botUsername)
	if err != nil {
		return err
	}

	if err := s.bots.SetOffline(ctx, bot.ID); err != nil {
		if errors.Is(err, catalogrepo.ErrBotOffline) {
			return apperr.Conflict("This bot has already been reported as offline")
		}
		return apperr.Internal(err)
	}
	return nil
}

// resolve shares the standing and lookup checks both report kinds need.
func (s *reportService) resolve(ctx context.Context, telegramID int64, botUsername string) (*usermodels.User, *catalogmodels.Bot, error) {
	username := catalogservice.NormalizeHandle(botUsername)
	if username == "" {
		return nil, nil, apperr.Validation("bot_username and telegram_id are required")
	}

	user, err := s.users.GetOrCreate(ctx, telegramID, nil, nil)
	if err != nil {
		return nil, nil, err
	}
	if user.Banned {
		return nil, nil, apperr.Forbidden("You are banned from reporting")
	}

	bot, err := s.bots.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, catalogrepo.ErrBotNotFound) {
			return nil, nil, apperr.NotFound("Bot not found in the database")
		}
		return nil, nil, apperr.Internal(err)
	}
	return user, bot, nil
}
