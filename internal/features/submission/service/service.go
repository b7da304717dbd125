package service

import (
	"context"
	"errors"

	"botlist-backend/internal/common/apperr"
	catalogmodels "botlist-backend/internal/features/catalog/models"
	catalogrepo "botlist-backend/internal/features/catalog/repository"
	catalogservice "botlist-backend/internal/features/catalog/service"
	"botlist-backend/internal/features/submission/models"
	"botlist-backend/internal/features/submission/repository"
	usermodels "botlist-backend/internal/features/user/models"
)

const (
	defaultPendingLimit = 10
	maxPendingLimit     = 50
)

// UserResolver provides the submitting user and their standing.
type UserResolver interface {
	GetOrCreate(ctx context.Context, telegramID int64, username, firstName *string) (*usermodels.User, error)
	Get(ctx context.Context, telegramID int64) (*usermodels.User, error)
}

// SubmitRequest carries everything needed to queue a bot for review.
type SubmitRequest struct {
	Username    string
	Name        string
	Description string
	CategoryID  int
	TelegramID  int64
}

type SubmissionService interface {
	Submit(ctx context.Context, req SubmitRequest) (*models.Submission, error)
	UserSubmissions(ctx context.Context, telegramID int64) (*models.UserSubmissions, error)
	ListPending(ctx context.Context, adminTelegramID int64, limit int) ([]*models.Submission, error)
	Approve(ctx context.Context, adminTelegramID, submissionID int64) (*catalogmodels.Bot, error)
	Reject(ctx context.Context, adminTelegramID, submissionID int64) error
}

type submissionService struct {
	repo  repository.SubmissionRepository
	bots  catalogrepo.BotRepository
	users UserResolver
	auth  catalogservice.Authorizer
}

func NewSubmissionService(repo repository.SubmissionRepository, bots catalogrepo.BotRepository, users UserResolver, auth catalogservice.Authorizer) SubmissionService {
	return &submissionService{repo: repo, bots: bots, users: users, auth: auth}
}

func (s *submissionService) Submit(ctx context.Context, req SubmitRequest) (*models.Submission, error) {
	username := catalogservice.NormalizeHandle(req.Username)
	if username == "" {
		return nil, apperr.Validation("username and telegram_id are required")
	}

	user, err := s.users.GetOrCreate(ctx, req.TelegramID, nil, nil)
	if err != nil {
		return nil, err
	}
	if user.Banned {
		return nil, apperr.Forbidden("You are banned from submitting bots")
	}

	if _, err := s.bots.GetByUsername(ctx, username); err == nil {
		return nil, apperr.Conflict("This bot is already in the BotList")
	} else if !errors.Is(err, catalogrepo.ErrBotNotFound) {
		return nil, apperr.Internal(err)
	}

	pending, err := s.repo.HasPendingByUsername(ctx, username)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if pending {
		return nil, apperr.Conflict("This bot has already been submitted and is pending review")
	}

	name := req.Name
	if name == "" {
		name = username
	}
	categoryID := req.CategoryID
	if !catalogmodels.ValidCategoryID(categoryID) {
		categoryID = catalogmodels.DefaultCategoryID
	}

	created, err := s.repo.Insert(ctx, &models.Submission{
		Username:    username,
		Name:        name,
		Description: req.Description,
		CategoryID:  categoryID,
		SubmittedBy: user.ID,
	})
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return created, nil
}

// UserSubmissions returns an empty set for unknown users; /mybots should
// never error on a fresh account.
func (s *submissionService) UserSubmissions(ctx context.Context, telegramID int64) (*models.UserSubmissions, error) {
	result := &models.UserSubmissions{
		Approved: []*catalogmodels.Bot{},
		Pending:  []*models.Submission{},
	}

	user, err := s.users.Get(ctx, telegramID)
	if err != nil {
		if apperr.IsCode(err, apperr.CodeNotFound) {
			return result, nil
		}
		return nil, err
	}

	approved, err := s.bots.ListBySubmitter(ctx, user.ID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	pending, err := s.repo.ListPendingByUser(ctx, user.ID)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	result.Approved = approved
	result.Pending = pending
	return result, nil
}

func (s *submissionService) ListPending(ctx context.Context, adminTelegramID int64, limit int) ([]*models.Submission, error) {
	if err := s.authorize(ctx, adminTelegramID); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultPendingLimit
	}
	if limit > maxPendingLimit {
		limit = maxPendingLimit
	}

	submissions, err := s.repo.ListPending(ctx, limit)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return submissions, nil
}

func (s *submissionService) Approve(ctx context.Context, adminTelegramID, submissionID int64) (*catalogmodels.Bot, error) {
	if err := s.authorize(ctx, adminTelegramID); err != nil {
		return nil, err
	}

	bot, err := s.repo.Approve(ctx, submissionID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrSubmissionNotFound):
			return nil, apperr.NotFound("Submission not found")
		case errors.Is(err, repository.ErrAlreadyProcessed):
			return nil, apperr.Conflict("Submission has already been processed")
		case errors.Is(err, catalogrepo.ErrBotExists):
			return nil, apperr.Conflict("This bot is already in the BotList")
		}
		return nil, apperr.Internal(err)
	}
	return bot, nil
}

func (s *submissionService) Reject(ctx context.Context, adminTelegramID, submissionID int64) error {
	if err := s.authorize(ctx, adminTelegramID); err != nil {
		return err
	}

	if err := s.repo.Reject(ctx, submissionID); err != nil {
		switch {
		case errors.Is(err, repository.ErrSubmissionNotFound):
			return apperr.NotFound("Submission not found")
		case errors.Is(err, repository.ErrAlreadyProcessed):
			return apperr.Conflict("Submission has already been processed")
		}
		return apperr.Internal(err)
	}
	return nil
}

func (s *submissionService) authorize(ctx context.Context, telegramID int64) error {
	isAdmin, err := s.auth.IsAdmin(ctx, telegramID)
	if err != nil {
		return err
	}
	if !isAdmin {
		return apperr.Forbidden("Unauthorized")
	}
	return nil
}
