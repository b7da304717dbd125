package service

import (
	"context"
	"errors"

	"botlist-backend/internal/common/apperr"
	"botlist-backend/internal/common/config"
	catalogmodels "botlist-backend/internal/features/catalog/models"
	submissionmodels "botlist-backend/internal/features/submission/models"
	"botlist-backend/internal/features/user/models"
	"botlist-backend/internal/features/user/repository"
)

// SubmittedBotLister exposes the catalog bots a user contributed.
type SubmittedBotLister interface {
	ListBySubmitter(ctx context.Context, userID int64) ([]*catalogmodels.Bot, error)
}

// PendingSubmissionLister exposes a user's open submissions.
type PendingSubmissionLister interface {
	ListPendingByUser(ctx context.Context, userID int64) ([]*submissionmodels.Submission, error)
}

type UserService interface {
	GetOrCreate(ctx context.Context, telegramID int64, username, firstName *string) (*models.User, error)
	Get(ctx context.Context, telegramID int64) (*models.User, error)
	IsBanned(ctx context.Context, telegramID int64) (bool, error)
	IsAdmin(ctx context.Context, telegramID int64) (bool, error)
	Ban(ctx context.Context, adminTelegramID, targetTelegramID int64) error
	Unban(ctx context.Context, adminTelegramID, targetTelegramID int64) error
	UserInfo(ctx context.Context, adminTelegramID, targetTelegramID int64) (*models.UserInfo, error)
}

type userService struct {
	repo        repository.UserRepository
	cfg         *config.Config
	bots        SubmittedBotLister
	submissions PendingSubmissionLister
}

func NewUserService(repo repository.UserRepository, cfg *config.Config, bots SubmittedBotLister, submissions PendingSubmissionLister) UserService {
	return &userService{repo: repo, cfg: cfg, bots: bots, submissions: submissions}
}

func (s *userService) GetOrCreate(ctx context.Context, telegramID int64, username, firstName *string) (*models.User, error) {
	user, err := s.repo.GetOrCreate(ctx, telegramID, username, firstName)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return user, nil
}

func (s *userService) Get(ctx context.Context, telegramID int64) (*models.User, error) {
	user, err := s.repo.GetByTelegramID(ctx, telegramID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, apperr.NotFound("User not found")
		}
		return nil, apperr.Internal(err)
	}
	return user, nil
}

// IsBanned treats an unknown user as not banned; the row appears on their
// first write anyway.
func (s *userService) IsBanned(ctx context.Context, telegramID int64) (bool, error) {
	user, err := s.repo.GetByTelegramID(ctx, telegramID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return false, nil
		}
		return false, apperr.Internal(err)
	}
	return user.Banned, nil
}

// IsAdmin checks the static allow-list before touching the store; either
// source is sufficient proof.
func (s *userService) IsAdmin(ctx context.Context, telegramID int64) (bool, error) {
	if s.cfg.IsConfiguredAdmin(telegramID) {
		return true, nil
	}
	user, err := s.repo.GetByTelegramID(ctx, telegramID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return false, nil
		}
		return false, apperr.Internal(err)
	}
	return user.IsAdmin, nil
}

func (s *userService) Ban(ctx context.Context, adminTelegramID, targetTelegramID int64) error {
	if err := s.authorize(ctx, adminTelegramID); err != nil {
		return err
	}
	if err := s.repo.Ban(ctx, targetTelegramID); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

func (s *userService) Unban(ctx context.Context, adminTelegramID, targetTelegramID int64) error {
	if err := s.authorize(ctx, adminTelegramID); err != nil {
		return err
	}
	if err := s.repo.Unban(ctx, targetTelegramID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return apperr.NotFound("User not found")
		}
		return apperr.Internal(err)
	}
	return nil
}

func (s *userService) UserInfo(ctx context.Context, adminTelegramID, targetTelegramID int64) (*models.UserInfo, error) {
	if err := s.authorize(ctx, adminTelegramID); err != nil {
		return nil, err
	}

	user, err := s.repo.GetByTelegramID(ctx, targetTelegramID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, apperr.NotFound("User not found")
		}
		return nil, apperr.Internal(err)
	}

	bots, err := s.bots.ListBySubmitter(ctx, user.ID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	pending, err := s.submissions.ListPendingByUser(ctx, user.ID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	reports, err := s.repo.ListSpamReports(ctx, user.ID)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	return &models.UserInfo{
		User:               user,
		SubmittedBots:      bots,
		PendingSubmissions: pending,
		SpamReports:        reports,
	}, nil
}

func (s *userService) authorize(ctx context.Context, telegramID int64) error {
	isAdmin, err := s.IsAdmin(ctx, telegramID)
	if err != nil {
		return err
	}
	if !isAdmin {
		return apperr.Forbidden("Unauthorized")
	}
	return nil
}
