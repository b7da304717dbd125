package service

import (
	"context"
	"errors"
	"strings"

	"botlist-backend/internal/common/apperr"
	"botlist-backend/internal/features/catalog/models"
	"botlist-backend/internal/features/catalog/repository"
)

const (
	minQueryLength = 3

	defaultRandomLimit = 5
	maxRandomLimit     = 20
	defaultListLimit   = 10
	maxListLimit       = 50
)

// Authorizer answers whether a telegram account may perform admin actions.
type Authorizer interface {
	IsAdmin(ctx context.Context, telegramID int64) (bool, error)
}

type CatalogService interface {
	Categories() []models.Category
	ListAll(ctx context.Context) ([]*models.Bot, error)
	ListByCategory(ctx context.Context, categoryID int) ([]*models.Bot, error)
	Search(ctx context.Context, name, username, description string) ([]*models.Bot, error)
	Random(ctx context.Context, limit int) ([]*models.Bot, error)
	Newest(ctx context.Context, limit int) ([]*models.Bot, error)
	BestRated(ctx context.Context, limit int) ([]*models.Bot, error)
	GetByUsername(ctx context.Context, username string) (*models.Bot, error)
	AdminAdd(ctx context.Context, adminTelegramID int64, username, name, description string, categoryID int) (*models.Bot, error)
	AdminUpdate(ctx context.Context, adminTelegramID int64, username string, update models.BotUpdate) (*models.Bot, error)
}

type catalogService struct {
	repo repository.BotRepository
	auth Authorizer
}

func NewCatalogService(repo repository.BotRepository, auth Authorizer) CatalogService {
	return &catalogService{repo: repo, auth: auth}
}

func (s *catalogService) Categories() []models.Category {
	return models.Categories
}

func (s *catalogService) ListAll(ctx context.Context) ([]*models.Bot, error) {
	bots, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return bots, nil
}

// ListByCategory returns the bots in a category. Unknown ids simply match
// nothing; only a malformed id is an input error, and that is caught at
// the transport layer.
func (s *catalogService) ListByCategory(ctx context.Context, categoryID int) ([]*models.Bot, error) {
	bots, err := s.repo.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return bots, nil
}

func (s *catalogService) Search(ctx context.Context, name, username, description string) ([]*models.Bot, error) {
	filter := models.SearchFilter{
		Name:        strings.TrimSpace(name),
		Username:    strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(username), "@")),
		Description: strings.TrimSpace(description),
	}

	for _, term := range []string{filter.Name, filter.Username, filter.Description} {
		if term != "" && len(term) < minQueryLength {
			return nil, apperr.Validation("minimum query length allowed is 3.")
		}
	}
	if strings.EqualFold(filter.Username, "bot") {
		return nil, apperr.Validation("hmm... bot? be specific please!")
	}
	if filter.Empty() {
		return []*models.Bot{}, nil
	}

	bots, err := s.repo.Search(ctx, filter)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return bots, nil
}

func (s *catalogService) Random(ctx context.Context, limit int) ([]*models.Bot, error) {
	bots, err := s.repo.Random(ctx, clamp(limit, defaultRandomLimit, maxRandomLimit))
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return bots, nil
}

func (s *catalogService) Newest(ctx context.Context, limit int) ([]*models.Bot, error) {
	bots, err := s.repo.Newest(ctx, clamp(limit, defaultListLimit, maxListLimit))
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return bots, nil
}

func (s *catalogService) BestRated(ctx context.Context, limit int) ([]*models.Bot, error) {
	bots, err := s.repo.BestRated(ctx, clamp(limit, defaultListLimit, maxListLimit))
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return bots, nil
}

func (s *catalogService) GetByUsername(ctx context.Context, username string) (*models.Bot, error) {
	bot, err := s.repo.GetByUsername(ctx, NormalizeHandle(username))
	if err != nil {
		if errors.Is(err, repository.ErrBotNotFound) {
			return nil, apperr.NotFound("Bot not found")
		}
		return nil, apperr.Internal(err)
	}
	return bot, nil
}

func (s *catalogService) AdminAdd(ctx context.Context, adminTelegramID int64, username, name, description string, categoryID int) (*models.Bot, error) {
	if err := s.authorize(ctx, adminTelegramID); err != nil {
		return nil, err
	}

	handle := NormalizeHandle(username)
	if handle == "" {
		return nil, apperr.Validation("username is required")
	}
	if !models.ValidCategoryID(categoryID) {
		return nil, apperr.Validation("Invalid category ID provided.")
	}
	if name == "" {
		name = handle
	}

	bot, err := s.repo.Insert(ctx, &models.Bot{
		Name:        name,
		Username:    handle,
		Description: description,
		CategoryID:  categoryID,
	})
	if err != nil {
		if errors.Is(err, repository.ErrBotExists) {
			return nil, apperr.Conflict("This bot is already in the BotList")
		}
		return nil, apperr.Internal(err)
	}
	return bot, nil
}

func (s *catalogService) AdminUpdate(ctx context.Context, adminTelegramID int64, username string, update models.BotUpdate) (*models.Bot, error) {
	if err := s.authorize(ctx, adminTelegramID); err != nil {
		return nil, err
	}
	if update.Empty() {
		return nil, apperr.Validation("nothing to update")
	}
	if update.CategoryID != nil && !models.ValidCategoryID(*update.CategoryID) {
		return nil, apperr.Validation("Invalid category ID provided.")
	}

	bot, err := s.repo.Update(ctx, NormalizeHandle(username), update)
	if err != nil {
		if errors.Is(err, repository.ErrBotNotFound) {
			return nil, apperr.NotFound("Bot not found")
		}
		return nil, apperr.Internal(err)
	}
	return bot, nil
}

func (s *catalogService) authorize(ctx context.Context, telegramID int64) error {
	isAdmin, err := s.auth.IsAdmin(ctx, telegramID)
	if err != nil {
		return apperr.Internal(err)
	}
	if !isAdmin {
		return apperr.Forbidden("Unauthorized")
	}
	return nil
}

// NormalizeHandle strips the @ prefix users habitually include.
func NormalizeHandle(username string) string {
	return strings.TrimLeft(strings.TrimSpace(username), "@")
}

// clamp applies the default for out-of-band values (0 means "not given")
// and bounds the result to [1, max].
func clamp(limit, def, max int) int {
	if limit == 0 {
		limit = def
	}
	if limit < 1 {
		return 1
	}
	if limit > max {
		return max
	}
	return limit
}
